package search

import (
	"strings"
	"testing"
)

// ---------- fixtures ----------

func fixtureRows() []ProductRow {
	return []ProductRow{
		{
			Slug:        "mccb-420x-3p",
			Title:       "Molded Case Circuit Breaker 420A",
			Code:        "MCCB-420X",
			OrderNo:     "ORD-001",
			Description: "Three-pole breaker for power distribution panels",
			Brand:       "Eaton",
			Category:    "Power Distribution",
			Subcategory: "Circuit Breakers",

			SubcategoryImageURL: "breakers.jpg",
			CategoryImageURLs:   []string{"", "power-dist.jpg"},
			Details:             []Detail{{Label: "Poles", Value: "3"}, {Label: "Rated Current", Value: "420A"}},
		},
		{
			Slug:        "fuse-nh00",
			Title:       "NH00 Fuse Link",
			Code:        "FUSE-NH00",
			Brand:       "Siemens",
			Category:    "Power Distribution",
			Subcategory: "Fuses",
		},
		{
			Slug:        "busbar-cu",
			Title:       "Copper Busbar 30x10",
			Code:        "BUS-3010",
			Brand:       "Hager",
			Category:    "power distribution", // same logical category, different casing
			Subcategory: "Fuses",
			CategoryImageURL: "power-single.jpg",
		},
		{
			Slug:     "relay-cafe",
			Title:    "Café Relay",
			Code:     "REL-CAFE",
			Brand:    "Schneider",
			Category: "Control Gear",
			// no subcategory on purpose
		},
	}
}

func fixtureLinks() []LinkRow {
	return []LinkRow{
		{Name: "Eaton MCCB Catalog", PageURL: "https://catalog.example.com/eaton/mccb", ImageURL: "eaton.png", Brand: "Eaton", Category: "Breakers"},
		{Name: "Cable Glands Overview", PageURL: "https://catalog.example.com/glands", Brand: "Lapp", Category: "Cabling"},
	}
}

// ---------- products ----------

func TestScanProducts_ExactCodeIsTopAndDominant(t *testing.T) {
	rows := fixtureRows()
	tokens := Tokenize("MCCB-420X")
	got := ScanProducts(rows, tokens, testResolver())
	if len(got) == 0 {
		t.Fatalf("expected at least one hit")
	}
	top := got[0]
	for _, r := range got[1:] {
		if r.Score > top.Score {
			top = r
		}
	}
	if top.ID != "mccb-420x-3p" {
		t.Fatalf("top product: got %q", top.ID)
	}
	// The code field alone contributes joined exact + joined prefix at
	// minimum, which exceeds the documented 220+220 floor.
	if top.Score < 440 {
		t.Fatalf("exact code match score too low: %d", top.Score)
	}
	if top.PartNumber != "ORD-001" || top.CodeNo != "MCCB-420X" {
		t.Fatalf("identifier fields mangled: %+v", top)
	}
	if top.Href != "/stock/product/mccb-420x-3p" {
		t.Fatalf("href: %q", top.Href)
	}
}

func TestScanProducts_DetailBlobMatches(t *testing.T) {
	got := ScanProducts(fixtureRows(), Tokenize("rated current"), testResolver())
	found := false
	for _, r := range got {
		if r.ID == "mccb-420x-3p" {
			found = true
		}
	}
	if !found {
		t.Fatalf("detail map text should be searchable, got %+v", got)
	}
}

func TestScanProducts_ZeroScoreFiltered(t *testing.T) {
	got := ScanProducts(fixtureRows(), Tokenize("nonexistent-widget"), testResolver())
	if len(got) != 0 {
		t.Fatalf("no row matches; got %d results", len(got))
	}
	for _, r := range ScanProducts(fixtureRows(), Tokenize("power"), testResolver()) {
		if r.Score <= 0 {
			t.Fatalf("zero-score result leaked: %+v", r)
		}
	}
}

func TestScanProducts_ImageFallbackChain(t *testing.T) {
	got := ScanProducts(fixtureRows(), Tokenize("MCCB-420X"), testResolver())
	if len(got) == 0 {
		t.Fatalf("expected a hit")
	}
	if !strings.HasSuffix(got[0].Image, "/stock/breakers.jpg") {
		t.Fatalf("subcategory image should win the fallback chain: %q", got[0].Image)
	}
}

// ---------- categories ----------

func TestScanCategories_AggregationAndDescription(t *testing.T) {
	got := ScanCategories(fixtureRows(), Tokenize("power distribution"), testResolver())
	if len(got) != 1 {
		t.Fatalf("expected one category group, got %d", len(got))
	}
	c := got[0]
	// Three rows share the normalized category, two distinct subcategories.
	if c.Description != "2 subcategories · 3 products" {
		t.Fatalf("description: got %q", c.Description)
	}
	// First-encountered raw casing is displayed.
	if c.Title != "Power Distribution" {
		t.Fatalf("title should keep first-encountered casing: %q", c.Title)
	}
	if c.Href != "/stock/power-distribution" {
		t.Fatalf("href: %q", c.Href)
	}
	// Multi-image list entry ("power-dist.jpg") beats the single field.
	if !strings.HasSuffix(c.Image, "/stock/power-dist.jpg") {
		t.Fatalf("image preference: %q", c.Image)
	}
}

func TestScanCategories_NoMatchNoResult(t *testing.T) {
	if got := ScanCategories(fixtureRows(), Tokenize("hydraulics"), testResolver()); len(got) != 0 {
		t.Fatalf("unexpected category hits: %+v", got)
	}
}

// ---------- subcategories ----------

func TestScanSubcategories_DedupAndParentScore(t *testing.T) {
	got := ScanSubcategories(fixtureRows(), Tokenize("fuses"), testResolver())
	if len(got) != 1 {
		t.Fatalf("(category, subcategory) pair must emit once, got %d", len(got))
	}
	s := got[0]
	if s.Title != "Fuses" || s.Category != "Power Distribution" {
		t.Fatalf("unexpected group: %+v", s)
	}
	if s.Href != "/stock/power-distribution/fuses" {
		t.Fatalf("href: %q", s.Href)
	}

	// Matching only the parent category name still surfaces subcategories
	// via the secondary weight table.
	byParent := ScanSubcategories(fixtureRows(), Tokenize("power distribution"), testResolver())
	if len(byParent) != 2 {
		t.Fatalf("parent-name match should surface both subcategories, got %d", len(byParent))
	}
}

func TestScanSubcategories_SkipsRowsWithoutSubcategory(t *testing.T) {
	got := ScanSubcategories(fixtureRows(), Tokenize("control gear"), testResolver())
	if len(got) != 0 {
		t.Fatalf("rows without a subcategory must not emit groups: %+v", got)
	}
}

// ---------- external links ----------

func TestScanExternal_ScoresAndPassthroughURL(t *testing.T) {
	got := ScanExternal(fixtureLinks(), Tokenize("eaton"), testResolver())
	if len(got) != 1 {
		t.Fatalf("expected one external hit, got %d", len(got))
	}
	e := got[0]
	if e.PageURL != "https://catalog.example.com/eaton/mccb" {
		t.Fatalf("page URL must pass through unchanged: %q", e.PageURL)
	}
	if !strings.HasSuffix(e.Image, "/catalog/eaton.png") {
		t.Fatalf("external images resolve under the catalog folder: %q", e.Image)
	}
	if e.Score <= 0 {
		t.Fatalf("score must be positive: %d", e.Score)
	}
}

func TestScanExternal_URLFieldMatches(t *testing.T) {
	got := ScanExternal(fixtureLinks(), Tokenize("glands"), testResolver())
	if len(got) != 1 || got[0].Title != "Cable Glands Overview" {
		t.Fatalf("URL/name token should match the glands link: %+v", got)
	}
}
