package search

// Detail is one structured attribute of a stock product (label → value).
// Details are carried as an ordered list rather than a map so that the
// flattened "label value" search blob is stable across runs.
type Detail struct {
	Label string
	Value string
}

// ProductRow is the read-only catalog row the product, category, and
// subcategory scanners operate on. The data layer maps its persistence
// models into this shape; the engine never sees a database handle.
type ProductRow struct {
	Slug        string
	Title       string
	Code        string
	OrderNo     string
	Description string
	Brand       string
	Category    string
	Subcategory string

	// Image candidates, in the order the resolver prefers them.
	SubcategoryImageURL string
	CategoryImageURL    string
	CategoryImageURLs   []string

	Details []Detail
}

// LinkRow is a read-only external catalog link with its brand and category
// names already joined in by the data layer.
type LinkRow struct {
	Name     string
	PageURL  string
	ImageURL string
	Brand    string
	Category string
}
