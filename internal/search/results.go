package search

import (
	"sort"
	"strings"
)

// Result type discriminators, serialized in every entry so a mixed-entity
// frontend can render each hit without inspecting which list it came from.
const (
	TypeStockProduct     = "stock-product"
	TypeStockCategory    = "stock-category"
	TypeStockSubcategory = "stock-subcategory"
	TypeExternal         = "external"
)

// ProductResult is one ranked stock product hit.
type ProductResult struct {
	Type        string `json:"type"`
	ID          string `json:"id"`
	Title       string `json:"title"`
	CodeNo      string `json:"codeNo"`
	PartNumber  string `json:"partNumber"`
	Brand       string `json:"brand"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Href        string `json:"href"`
	Score       int    `json:"score"`
}

// CategoryResult is one ranked derived stock category hit.
type CategoryResult struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Href        string `json:"href"`
	Score       int    `json:"score"`
}

// SubcategoryResult is one ranked derived stock subcategory hit.
type SubcategoryResult struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Href     string `json:"href"`
	Score    int    `json:"score"`
}

// ExternalResult is one ranked external catalog link hit. PageURL is the raw
// outbound URL, passed through unchanged.
type ExternalResult struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Brand    string `json:"brand"`
	Category string `json:"category"`
	Image    string `json:"image"`
	PageURL  string `json:"pageUrl"`
	Score    int    `json:"score"`
}

func (r ProductResult) rank() (int, string)     { return r.Score, r.Title }
func (r CategoryResult) rank() (int, string)    { return r.Score, r.Title }
func (r SubcategoryResult) rank() (int, string) { return r.Score, r.Title }
func (r ExternalResult) rank() (int, string)    { return r.Score, r.Title }

// Totals carries the pre-truncation size of each ranked list, so a caller
// can render "showing 12 of N results".
type Totals struct {
	StockProducts      int `json:"stockProducts"`
	StockCategories    int `json:"stockCategories"`
	StockSubcategories int `json:"stockSubcategories"`
	External           int `json:"external"`
}

// Response is the assembled output of one search: the original (trimmed)
// query, the four ranked-and-truncated lists, and the pre-truncation totals.
type Response struct {
	Query              string              `json:"query"`
	StockProducts      []ProductResult     `json:"stockProducts"`
	StockCategories    []CategoryResult    `json:"stockCategories"`
	StockSubcategories []SubcategoryResult `json:"stockSubcategories"`
	External           []ExternalResult    `json:"external"`
	Totals             Totals              `json:"totals"`
}

// Limits caps each result list after ranking. Zero is legal and yields an
// empty list while the matching total still reports the full count; negative
// values mean "use the default".
type Limits struct {
	Products      int
	Categories    int
	Subcategories int
	External      int
}

// DefaultLimits returns the per-list caps used when a caller supplies none.
func DefaultLimits() Limits {
	return Limits{Products: 12, Categories: 8, Subcategories: 8, External: 12}
}

// WithFallback replaces negative entries with the matching entry of def,
// leaving explicit zero and positive caps untouched. Callers with configured
// per-list defaults resolve against them here before assembly.
func (l Limits) WithFallback(def Limits) Limits {
	if l.Products < 0 {
		l.Products = def.Products
	}
	if l.Categories < 0 {
		l.Categories = def.Categories
	}
	if l.Subcategories < 0 {
		l.Subcategories = def.Subcategories
	}
	if l.External < 0 {
		l.External = def.External
	}
	return l
}

// withDefaults replaces negative entries with the package defaults.
func (l Limits) withDefaults() Limits {
	return l.WithFallback(DefaultLimits())
}

// EmptyResponse returns the defined result of a query with no usable tokens:
// all lists empty (but non-nil, so they serialize as []), all totals zero.
func EmptyResponse(query string) *Response {
	return &Response{
		Query:              query,
		StockProducts:      []ProductResult{},
		StockCategories:    []CategoryResult{},
		StockSubcategories: []SubcategoryResult{},
		External:           []ExternalResult{},
	}
}

// Assemble ranks the scanner outputs and packages them into a Response.
// Each list is sorted by score descending with ties broken by
// case-insensitive display title ascending, totals are captured before
// truncation, and each list is then cut to its limit.
func Assemble(query string, prods []ProductResult, cats []CategoryResult, subs []SubcategoryResult, ext []ExternalResult, limits Limits) *Response {
	limits = limits.withDefaults()

	sortRanked(prods)
	sortRanked(cats)
	sortRanked(subs)
	sortRanked(ext)

	resp := EmptyResponse(query)
	resp.Totals = Totals{
		StockProducts:      len(prods),
		StockCategories:    len(cats),
		StockSubcategories: len(subs),
		External:           len(ext),
	}
	resp.StockProducts = truncate(prods, limits.Products)
	resp.StockCategories = truncate(cats, limits.Categories)
	resp.StockSubcategories = truncate(subs, limits.Subcategories)
	resp.External = truncate(ext, limits.External)
	return resp
}

// ranked is satisfied by every result type; rank exposes the sort key.
type ranked interface {
	rank() (score int, title string)
}

// sortRanked orders results by score descending, then case-insensitively by
// display title ascending. The sort is stable so equal entries keep their
// scan order.
func sortRanked[T ranked](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		si, ti := items[i].rank()
		sj, tj := items[j].rank()
		if si != sj {
			return si > sj
		}
		return strings.ToLower(ti) < strings.ToLower(tj)
	})
}

// truncate cuts items to at most limit entries, always returning a non-nil
// slice so empty lists serialize as [] rather than null.
func truncate[T any](items []T, limit int) []T {
	if limit < len(items) {
		items = items[:limit]
	}
	if items == nil {
		items = []T{}
	}
	return items
}
