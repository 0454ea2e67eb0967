package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"gorm.io/gorm"

	"github.com/graphityenvato-oss/prime-elec-sub000/internal/repo"
)

// CatalogStats reports row counts per backing table. Ops use it as a cheap
// sanity check that imports and seeding landed.
type CatalogStats struct {
	StockProducts int64 `json:"stock_products"`
	CatalogLinks  int64 `json:"catalog_links"`
}

// StatsService exposes catalog row counts.
type StatsService struct {
	DB *gorm.DB
}

// Counts returns the current row counts for the search-relevant tables.
func (s *StatsService) Counts(ctx context.Context) (CatalogStats, error) {
	tr := otel.Tracer("services/StatsService")
	ctx, span := tr.Start(ctx, "Counts")
	defer span.End()

	products, err := repo.CountProducts(ctx, s.DB)
	if err != nil {
		return CatalogStats{}, err
	}
	links, err := repo.CountCatalogLinks(ctx, s.DB)
	if err != nil {
		return CatalogStats{}, err
	}
	return CatalogStats{StockProducts: products, CatalogLinks: links}, nil
}
