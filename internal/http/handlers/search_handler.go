// Catalog search HTTP handlers.
//
// This file exposes the read-only search API:
//   - GET /search         (faceted catalog search)
//   - GET /catalog/stats  (backing-table row counts)
//
// Handlers are transport-thin: they parse query parameters, call application
// services, and translate results into HTTP responses. All ranking and
// grouping logic lives in internal/search; all persistence lives behind the
// service interfaces below.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/graphityenvato-oss/prime-elec-sub000/internal/search"
	"github.com/graphityenvato-oss/prime-elec-sub000/internal/services"
	"github.com/graphityenvato-oss/prime-elec-sub000/internal/utils"
)

//
// Service contracts (context-aware)
//

// SearchService defines the catalog search operation consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type SearchService interface {
	// Search runs a full faceted catalog search for the given query.
	// Negative limits fall back to service defaults; zero suppresses the
	// list while keeping its total.
	Search(ctx context.Context, query string, limits search.Limits) (*search.Response, error)
}

// StatsService defines the catalog row-count operation.
type StatsService interface {
	// Counts reports current row counts for the search-relevant tables.
	Counts(ctx context.Context) (services.CatalogStats, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints of the search API. It depends on
// abstract service interfaces to keep transport concerns separate from
// business logic.
type Handlers struct {
	searchSvc SearchService
	statsSvc  StatsService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(searchSvc SearchService, statsSvc StatsService) *Handlers {
	return &Handlers{searchSvc: searchSvc, statsSvc: statsSvc}
}

//
// Helpers
//

// parseLimits reads the optional per-list limit query parameters. Absent or
// unparsable parameters become -1, which the service maps to its defaults;
// an explicit 0 is preserved (empty list, total still reported).
func parseLimits(c *gin.Context) search.Limits {
	return search.Limits{
		Products:      utils.AtoiDefault(c.Query("limit_products"), -1),
		Categories:    utils.AtoiDefault(c.Query("limit_categories"), -1),
		Subcategories: utils.AtoiDefault(c.Query("limit_subcategories"), -1),
		External:      utils.AtoiDefault(c.Query("limit_external"), -1),
	}
}

//
// Handlers
//

// Search answers GET /search. The q parameter carries the free-text query;
// limit_products, limit_categories, limit_subcategories and limit_external
// optionally cap each result list. A blank or token-free query returns the
// empty response with HTTP 200, not an error.
func (h *Handlers) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	resp, err := h.searchSvc.Search(c.Request.Context(), query, parseLimits(c))
	if err != nil {
		if errors.Is(err, services.ErrStockLoad) || errors.Is(err, services.ErrCatalogLoad) {
			fail(c, http.StatusInternalServerError, ErrCodeSearchFailed, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, resp)
}

// Stats answers GET /catalog/stats with backing-table row counts.
func (h *Handlers) Stats(c *gin.Context) {
	stats, err := h.statsSvc.Counts(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeStatsFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, stats)
}
