// Package repo implements the read-side data access layer for the catalog.
// This file provides the queries the search engine depends on.
//
// All functions are context-aware and accept a *gorm.DB handle. They follow
// the "thin repository" approach: no business logic, only query composition.
// Raw GORM errors are propagated; the service layer wraps them with its
// fixed per-source messages.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/graphityenvato-oss/prime-elec-sub000/internal/domain"
)

// ListProducts returns every stock product row, ordered by slug for a
// deterministic scan order. The search engine treats the result as an
// immutable snapshot for the duration of one query.
func ListProducts(ctx context.Context, db *gorm.DB) ([]domain.Product, error) {
	var out []domain.Product
	err := db.WithContext(ctx).
		Order("slug asc").
		Find(&out).Error
	return out, err
}

// ListCatalogLinks returns every external catalog link with its brand and
// category rows preloaded, ordered by name.
func ListCatalogLinks(ctx context.Context, db *gorm.DB) ([]domain.CatalogLink, error) {
	var out []domain.CatalogLink
	err := db.WithContext(ctx).
		Preload("Brand").
		Preload("Category").
		Order("name asc").
		Find(&out).Error
	return out, err
}

// CountProducts returns the number of stock product rows.
func CountProducts(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Product{}).Count(&total).Error
	return total, err
}

// CountCatalogLinks returns the number of external catalog link rows.
func CountCatalogLinks(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.CatalogLink{}).Count(&total).Error
	return total, err
}
