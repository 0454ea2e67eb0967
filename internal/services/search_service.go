// Package services – SearchService
//
// This file implements SearchService, the application-level component that
// answers free-text catalog searches. It tokenizes the query, reads the
// backing row sets, maps persistence models into the engine's row structs,
// runs the four entity scanners, and assembles the ranked, faceted response.
//
// Every invocation is independent and stateless: no cache, no index, no
// shared mutable state, so concurrent searches need no coordination. Either
// backing read failing fails the whole call — there is no partial-result
// mode.
//
// Observability: Search is OpenTelemetry-instrumented and feeds the
// search-specific Prometheus collectors defined below.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/graphityenvato-oss/prime-elec-sub000/internal/domain"
	"github.com/graphityenvato-oss/prime-elec-sub000/internal/repo"
	"github.com/graphityenvato-oss/prime-elec-sub000/internal/search"
)

var (
	// searchesTotal counts search calls by outcome: "ok", "empty" (no usable
	// tokens, short-circuited), or "error" (backing read failed).
	searchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_searches_total",
			Help: "Total number of catalog searches by outcome.",
		},
		[]string{"outcome"},
	)

	// searchResultTotals observes the pre-truncation result count per search,
	// summed across the four entity lists.
	searchResultTotals = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_search_results",
			Help:    "Pre-truncation result counts per search across all entity lists.",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		},
	)
)

func init() {
	prometheus.MustRegister(searchesTotal, searchResultTotals)
}

// SearchService answers catalog searches against the relational store.
//
// Defaults carries the configured per-list result caps applied when a caller
// passes negative limits. A zero-value Defaults means "not configured" and
// falls back to the package defaults; a deployment that genuinely wants every
// default at zero has turned search off and should not run this service.
type SearchService struct {
	DB       *gorm.DB
	Images   *search.ImageResolver
	Defaults search.Limits
}

// limitDefaults resolves the configured defaults, falling back to the
// package defaults when none were injected.
func (s *SearchService) limitDefaults() search.Limits {
	if s.Defaults == (search.Limits{}) {
		return search.DefaultLimits()
	}
	return s.Defaults
}

// Search runs one full catalog search. The query is trimmed and tokenized;
// a query with no usable tokens returns the defined empty response without
// touching the store. Limits entries below zero fall back to the configured
// defaults (12 products, 8 categories, 8 subcategories, 12 external links
// unless overridden); zero is honored as "none of this list, but report the
// total".
func (s *SearchService) Search(ctx context.Context, rawQuery string, limits search.Limits) (*search.Response, error) {
	tr := otel.Tracer("services/SearchService")
	ctx, span := tr.Start(ctx, "Search",
		trace.WithAttributes(attribute.String("query", rawQuery)),
	)
	defer span.End()

	query := strings.TrimSpace(rawQuery)
	tokens := search.Tokenize(query)
	if len(tokens) == 0 {
		searchesTotal.WithLabelValues("empty").Inc()
		return search.EmptyResponse(query), nil
	}

	products, err := repo.ListProducts(ctx, s.DB)
	if err != nil {
		searchesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrStockLoad, err)
	}
	links, err := repo.ListCatalogLinks(ctx, s.DB)
	if err != nil {
		searchesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrCatalogLoad, err)
	}

	prodRows := productRows(products)
	linkRows := catalogRows(links)
	span.SetAttributes(
		attribute.Int("rows.products", len(prodRows)),
		attribute.Int("rows.links", len(linkRows)),
	)

	resp := search.Assemble(query,
		search.ScanProducts(prodRows, tokens, s.Images),
		search.ScanCategories(prodRows, tokens, s.Images),
		search.ScanSubcategories(prodRows, tokens, s.Images),
		search.ScanExternal(linkRows, tokens, s.Images),
		limits.WithFallback(s.limitDefaults()),
	)

	searchesTotal.WithLabelValues("ok").Inc()
	searchResultTotals.Observe(float64(resp.Totals.StockProducts +
		resp.Totals.StockCategories + resp.Totals.StockSubcategories +
		resp.Totals.External))
	return resp, nil
}

// productRows maps persistence models into the engine's row structs.
func productRows(products []domain.Product) []search.ProductRow {
	rows := make([]search.ProductRow, 0, len(products))
	for _, p := range products {
		details := make([]search.Detail, 0, len(p.Details))
		for _, d := range p.Details {
			details = append(details, search.Detail{Label: d.Label, Value: d.Value})
		}
		rows = append(rows, search.ProductRow{
			Slug:                p.Slug,
			Title:               p.Title,
			Code:                p.Code,
			OrderNo:             p.OrderNo,
			Description:         p.Description,
			Brand:               p.Brand,
			Category:            p.Category,
			Subcategory:         p.Subcategory,
			SubcategoryImageURL: p.SubcategoryImageURL,
			CategoryImageURL:    p.CategoryImageURL,
			CategoryImageURLs:   p.CategoryImageURLs,
			Details:             details,
		})
	}
	return rows
}

// catalogRows maps catalog links (with preloaded joins) into engine rows.
func catalogRows(links []domain.CatalogLink) []search.LinkRow {
	rows := make([]search.LinkRow, 0, len(links))
	for _, l := range links {
		rows = append(rows, search.LinkRow{
			Name:     l.Name,
			PageURL:  l.PageURL,
			ImageURL: l.ImageURL,
			Brand:    l.Brand.Name,
			Category: l.Category.Name,
		})
	}
	return rows
}
