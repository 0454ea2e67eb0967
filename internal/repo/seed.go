package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/graphityenvato-oss/prime-elec-sub000/internal/domain"
)

// SeedDemoCatalog inserts a small demo catalog when the product table is
// empty. It is a no-op on a populated database, so it is safe to call on
// every startup when SEED_DEMO_DATA is enabled.
func SeedDemoCatalog(ctx context.Context, db *gorm.DB) error {
	n, err := CountProducts(ctx, db)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	products := []domain.Product{
		{
			Slug:        "mccb-nzm2-250a",
			Title:       "Molded Case Circuit Breaker NZM2 250A",
			Code:        "NZM2-A250",
			OrderNo:     "259091",
			Description: "Thermomagnetic MCCB, 3-pole, adjustable overload.",
			Brand:       "Eaton",
			Category:    "Power Distribution",
			Subcategory: "Circuit Breakers",
			Details: domain.DetailList{
				{Label: "Poles", Value: "3"},
				{Label: "Rated current", Value: "250 A"},
			},
			SubcategoryImageURL: "breakers.jpg",
			CategoryImageURL:    "power-distribution.jpg",
		},
		{
			Slug:        "fuse-nh00-100a",
			Title:       "NH00 Fuse Link 100A gG",
			Code:        "3NA3830",
			OrderNo:     "100415",
			Description: "Low-voltage HRC fuse link, size NH00.",
			Brand:       "Siemens",
			Category:    "Power Distribution",
			Subcategory: "Fuses",
			Details: domain.DetailList{
				{Label: "Rated current", Value: "100 A"},
				{Label: "Utilization class", Value: "gG"},
			},
			SubcategoryImageURL: "fuses.jpg",
			CategoryImageURL:    "power-distribution.jpg",
		},
		{
			Slug:        "contactor-lc1d18",
			Title:       "TeSys D Contactor 18A",
			Code:        "LC1D18M7",
			OrderNo:     "034662",
			Description: "3-pole contactor, 230 V AC coil.",
			Brand:       "Schneider Electric",
			Category:    "Control Gear",
			Subcategory: "Contactors",
			SubcategoryImageURL: "contactors.jpg",
		},
	}
	if err := db.WithContext(ctx).Create(&products).Error; err != nil {
		return err
	}

	brand := domain.CatalogBrand{Name: "Eaton"}
	if err := db.WithContext(ctx).Create(&brand).Error; err != nil {
		return err
	}
	cat := domain.CatalogCategory{Name: "Power Distribution"}
	if err := db.WithContext(ctx).Create(&cat).Error; err != nil {
		return err
	}
	link := domain.CatalogLink{
		Name:       "Eaton NZM Catalog",
		PageURL:    "https://catalog.example.com/eaton/nzm",
		ImageURL:   "eaton-nzm.jpg",
		BrandID:    brand.ID,
		CategoryID: cat.ID,
	}
	return db.WithContext(ctx).Create(&link).Error
}
