package repo

import (
	"context"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/graphityenvato-oss/prime-elec-sub000/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:catalog_repo?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM catalog_links")
		db.Exec("DELETE FROM catalog_brands")
		db.Exec("DELETE FROM catalog_categories")
		db.Exec("DELETE FROM stock_products")
	})
	return db
}

func TestListProducts_OrderAndDetailRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	rows := []domain.Product{
		{Slug: "zz-last", Title: "Z", Details: domain.DetailList{{Label: "Poles", Value: "3"}}},
		{Slug: "aa-first", Title: "A", CategoryImageURLs: domain.StringList{"a.jpg"}},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := ListProducts(ctx, db)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].Slug != "aa-first" || got[1].Slug != "zz-last" {
		t.Fatalf("expected slug order, got %+v", got)
	}
	if len(got[1].Details) != 1 || got[1].Details[0].Label != "Poles" {
		t.Fatalf("details did not round-trip: %+v", got[1].Details)
	}
	if len(got[0].CategoryImageURLs) != 1 || got[0].CategoryImageURLs[0] != "a.jpg" {
		t.Fatalf("image list did not round-trip: %+v", got[0].CategoryImageURLs)
	}

	total, err := CountProducts(ctx, db)
	if err != nil || total != 2 {
		t.Fatalf("count: %d %v", total, err)
	}
}

func TestListCatalogLinks_PreloadsJoins(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	brand := domain.CatalogBrand{Name: "Eaton"}
	cat := domain.CatalogCategory{Name: "Breakers"}
	if err := db.Create(&brand).Error; err != nil {
		t.Fatalf("seed brand: %v", err)
	}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	link := domain.CatalogLink{
		Name: "Eaton MCCB Catalog", PageURL: "https://catalog.example.com/eaton",
		BrandID: brand.ID, CategoryID: cat.ID,
	}
	if err := db.Create(&link).Error; err != nil {
		t.Fatalf("seed link: %v", err)
	}

	got, err := ListCatalogLinks(ctx, db)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one link, got %d", len(got))
	}
	if got[0].Brand.Name != "Eaton" || got[0].Category.Name != "Breakers" {
		t.Fatalf("joins not preloaded: %+v", got[0])
	}

	total, err := CountCatalogLinks(ctx, db)
	if err != nil || total != 1 {
		t.Fatalf("count: %d %v", total, err)
	}
}
