package search

import (
	"fmt"
	"strings"
)

// ScanProducts scores every catalog row against the token set across its
// weighted fields (code, order number, title, brand, category, subcategory,
// description, and the flattened detail blob) and emits a stock-product
// result for each row with a positive total. Rows are never mutated.
func ScanProducts(rows []ProductRow, tokens []string, images *ImageResolver) []ProductResult {
	out := make([]ProductResult, 0, len(rows))
	for _, row := range rows {
		score := FieldScore(row.Code, tokens, productCodeWeights) +
			FieldScore(row.OrderNo, tokens, productOrderNoWeights) +
			FieldScore(row.Title, tokens, productTitleWeights) +
			FieldScore(row.Brand, tokens, productBrandWeights) +
			FieldScore(row.Category, tokens, productCategoryWeights) +
			FieldScore(row.Subcategory, tokens, productSubcategoryWeights) +
			FieldScore(row.Description, tokens, productDescriptionWeights) +
			FieldScore(detailBlob(row.Details), tokens, productDetailWeights)
		if score <= 0 {
			continue
		}
		out = append(out, ProductResult{
			Type:        TypeStockProduct,
			ID:          row.Slug,
			Title:       row.Title,
			CodeNo:      row.Code,
			PartNumber:  row.OrderNo,
			Brand:       row.Brand,
			Category:    row.Category,
			Subcategory: row.Subcategory,
			Description: row.Description,
			Image:       images.Resolve(productImage(row), FolderStock),
			Href:        "/stock/product/" + row.Slug,
			Score:       score,
		})
	}
	return out
}

// ScanCategories derives stock categories by grouping rows on their
// normalized category name, scores each group's display title, and emits one
// stock-category result per group with a synthesized description
// ("N subcategories · M products"). Groups whose title scores zero are
// dropped. The displayed title is the first-encountered raw name; grouping
// order follows row order, so the derivation is deterministic for a given
// row set.
func ScanCategories(rows []ProductRow, tokens []string, images *ImageResolver) []CategoryResult {
	type group struct {
		title    string
		products int
		subs     map[string]struct{}
		image    string
	}
	var order []string
	groups := make(map[string]*group)

	for _, row := range rows {
		key := Normalize(row.Category)
		if key == "" {
			continue
		}
		g, ok := groups[key]
		if !ok {
			g = &group{title: row.Category, subs: make(map[string]struct{})}
			groups[key] = g
			order = append(order, key)
		}
		g.products++
		if sub := Normalize(row.Subcategory); sub != "" {
			g.subs[sub] = struct{}{}
		}
		if g.image == "" {
			g.image = categoryImage(row)
		}
	}

	out := make([]CategoryResult, 0, len(order))
	for _, key := range order {
		g := groups[key]
		score := FieldScore(g.title, tokens, categoryTitleWeights)
		if score <= 0 {
			continue
		}
		out = append(out, CategoryResult{
			Type:        TypeStockCategory,
			Title:       g.title,
			Description: fmt.Sprintf("%d subcategories · %d products", len(g.subs), g.products),
			Image:       images.Resolve(g.image, FolderStock),
			Href:        "/stock/" + Slugify(g.title),
			Score:       score,
		})
	}
	return out
}

// ScanSubcategories derives stock subcategories by grouping rows on the
// normalized (category, subcategory) pair, deduplicating so each pair emits
// once. The subcategory title is scored with its own weight table plus a
// secondary score from the parent category name. Rows without a subcategory
// are skipped: they would otherwise surface blank-titled results carried
// only by the parent score.
func ScanSubcategories(rows []ProductRow, tokens []string, images *ImageResolver) []SubcategoryResult {
	type group struct {
		title    string
		category string
		image    string
	}
	var order []string
	groups := make(map[string]*group)

	for _, row := range rows {
		cat, sub := Normalize(row.Category), Normalize(row.Subcategory)
		if sub == "" {
			continue
		}
		key := cat + "\x00" + sub
		g, ok := groups[key]
		if !ok {
			g = &group{title: row.Subcategory, category: row.Category}
			groups[key] = g
			order = append(order, key)
		}
		if g.image == "" {
			g.image = row.SubcategoryImageURL
		}
	}

	out := make([]SubcategoryResult, 0, len(order))
	for _, key := range order {
		g := groups[key]
		score := FieldScore(g.title, tokens, subcategoryTitleWeights) +
			FieldScore(g.category, tokens, subcategoryParentWeights)
		if score <= 0 {
			continue
		}
		out = append(out, SubcategoryResult{
			Type:     TypeStockSubcategory,
			Title:    g.title,
			Category: g.category,
			Image:    images.Resolve(g.image, FolderStock),
			Href:     "/stock/" + Slugify(g.category) + "/" + Slugify(g.title),
			Score:    score,
		})
	}
	return out
}

// ScanExternal scores every external catalog link (brand and category names
// pre-joined by the data layer) on name, brand, category, and page URL, and
// emits an external result per link with a positive total. The outbound page
// URL is passed through unchanged.
func ScanExternal(rows []LinkRow, tokens []string, images *ImageResolver) []ExternalResult {
	out := make([]ExternalResult, 0, len(rows))
	for _, row := range rows {
		score := FieldScore(row.Name, tokens, externalNameWeights) +
			FieldScore(row.Brand, tokens, externalBrandWeights) +
			FieldScore(row.Category, tokens, externalCategoryWeights) +
			FieldScore(row.PageURL, tokens, externalURLWeights)
		if score <= 0 {
			continue
		}
		out = append(out, ExternalResult{
			Type:     TypeExternal,
			Title:    row.Name,
			Brand:    row.Brand,
			Category: row.Category,
			Image:    images.Resolve(row.ImageURL, FolderCatalog),
			PageURL:  row.PageURL,
			Score:    score,
		})
	}
	return out
}

// detailBlob flattens the ordered detail list into one searchable
// "label value" string.
func detailBlob(details []Detail) string {
	if len(details) == 0 {
		return ""
	}
	parts := make([]string, 0, len(details))
	for _, d := range details {
		parts = append(parts, strings.TrimSpace(d.Label+" "+d.Value))
	}
	return strings.Join(parts, " ")
}

// productImage picks the display image reference for a product row:
// subcategory image, then category image, then the first entry of the
// category image list.
func productImage(row ProductRow) string {
	if row.SubcategoryImageURL != "" {
		return row.SubcategoryImageURL
	}
	if row.CategoryImageURL != "" {
		return row.CategoryImageURL
	}
	for _, u := range row.CategoryImageURLs {
		if u != "" {
			return u
		}
	}
	return ""
}

// categoryImage picks the representative image reference a row contributes
// to its category group, preferring the multi-image list over the single
// fallback field.
func categoryImage(row ProductRow) string {
	for _, u := range row.CategoryImageURLs {
		if u != "" {
			return u
		}
	}
	return row.CategoryImageURL
}
