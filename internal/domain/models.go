// Package domain defines the persistence models for the product catalog:
// stock products and the external catalog link tables. These types are
// mapped with GORM and are consumed read-only by the search engine — the
// admin CMS owns all writes.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Product is one stock product row. Categories and subcategories are plain
// denormalized names on the row; the search engine derives category and
// subcategory entities by grouping on them at query time, so there are no
// separate tables for either.
//
// Fields:
//   - Slug: stable URL identifier, unique across the catalog.
//   - Title / Code / OrderNo: display name and the two identifier-like
//     fields (manufacturer code, order number) that dominate search ranking.
//   - Brand / Category / Subcategory: denormalized display names.
//   - SubcategoryImageURL / CategoryImageURL / CategoryImageURLs: image
//     references in the order the display-image fallback prefers them.
//   - Details: ordered label→value attribute pairs (JSON column, tolerant
//     of legacy shapes; see DetailList).
type Product struct {
	ID          uint   `json:"id"          gorm:"primaryKey"`
	Slug        string `json:"slug"        gorm:"type:varchar(255);not null;uniqueIndex"`
	Title       string `json:"title"       gorm:"type:varchar(255);not null"`
	Code        string `json:"code"        gorm:"type:varchar(128);index"`
	OrderNo     string `json:"order_no"    gorm:"type:varchar(128);index"`
	Description string `json:"description" gorm:"type:text"`
	Brand       string `json:"brand"       gorm:"type:varchar(128);index"`
	Category    string `json:"category"    gorm:"type:varchar(128);index"`
	Subcategory string `json:"subcategory" gorm:"type:varchar(128);index"`

	SubcategoryImageURL string     `json:"subcategory_image_url" gorm:"type:varchar(512)"`
	CategoryImageURL    string     `json:"category_image_url"    gorm:"type:varchar(512)"`
	CategoryImageURLs   StringList `json:"category_image_urls"   gorm:"type:text"`
	Details             DetailList `json:"details"               gorm:"type:text"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName returns the database table name for Product.
func (Product) TableName() string { return "stock_products" }

// CatalogBrand is a lookup row joined into external catalog links.
type CatalogBrand struct {
	ID   uint   `json:"id"   gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(128);not null;uniqueIndex"`
}

// TableName returns the database table name for CatalogBrand.
func (CatalogBrand) TableName() string { return "catalog_brands" }

// CatalogCategory is a lookup row joined into external catalog links.
type CatalogCategory struct {
	ID   uint   `json:"id"   gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(128);not null;uniqueIndex"`
}

// TableName returns the database table name for CatalogCategory.
func (CatalogCategory) TableName() string { return "catalog_categories" }

// CatalogLink is a brand/category-scoped outbound reference to an external
// catalog page. The search layer reads links with Brand and Category
// preloaded so scoring sees the joined names, not the foreign keys.
type CatalogLink struct {
	ID         uint   `json:"id"        gorm:"primaryKey"`
	Name       string `json:"name"      gorm:"type:varchar(255);not null"`
	PageURL    string `json:"page_url"  gorm:"type:varchar(512);not null"`
	ImageURL   string `json:"image_url" gorm:"type:varchar(512)"`
	BrandID    uint   `json:"brand_id"    gorm:"index"`
	CategoryID uint   `json:"category_id" gorm:"index"`

	Brand    CatalogBrand    `json:"brand"    gorm:"foreignKey:BrandID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	Category CatalogCategory `json:"category" gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName returns the database table name for CatalogLink.
func (CatalogLink) TableName() string { return "catalog_links" }
