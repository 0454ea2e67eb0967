package search

import "strings"

// Weights holds the three score increments a single field can contribute,
// by match tier. Identifier-like fields carry larger weights than free text
// so that a code hit always outranks a description hit.
type Weights struct {
	Exact      int
	StartsWith int
	Includes   int
}

// Per-entity field weight tables. The calibration is part of the product
// behavior — changing a number here reorders live search results.
var (
	productCodeWeights        = Weights{Exact: 220, StartsWith: 170, Includes: 130}
	productOrderNoWeights     = Weights{Exact: 210, StartsWith: 160, Includes: 120}
	productTitleWeights       = Weights{Exact: 180, StartsWith: 130, Includes: 90}
	productBrandWeights       = Weights{Exact: 100, StartsWith: 70, Includes: 50}
	productCategoryWeights    = Weights{Exact: 90, StartsWith: 65, Includes: 45}
	productSubcategoryWeights = Weights{Exact: 100, StartsWith: 70, Includes: 50}
	productDescriptionWeights = Weights{Exact: 30, StartsWith: 20, Includes: 15}
	productDetailWeights      = Weights{Exact: 20, StartsWith: 15, Includes: 12}

	categoryTitleWeights = Weights{Exact: 140, StartsWith: 100, Includes: 70}

	subcategoryTitleWeights  = Weights{Exact: 130, StartsWith: 95, Includes: 65}
	subcategoryParentWeights = Weights{Exact: 40, StartsWith: 30, Includes: 20}

	externalNameWeights     = Weights{Exact: 120, StartsWith: 90, Includes: 60}
	externalBrandWeights    = Weights{Exact: 70, StartsWith: 50, Includes: 35}
	externalCategoryWeights = Weights{Exact: 65, StartsWith: 45, Includes: 30}
	externalURLWeights      = Weights{Exact: 25, StartsWith: 15, Includes: 10}
)

// FieldScore computes the weighted relevance of one field value against the
// token set. The algorithm is additive and deterministic:
//
//  1. The normalized field value is compared against the tokens joined by a
//     single space: equality adds w.Exact, a prefix match adds w.StartsWith.
//     Both fire for an exact match (equality implies the prefix).
//  2. Each individual token is then checked against the field in priority
//     order — equal, prefix, substring — and only the first matching tier
//     contributes. A token that is both a prefix and a substring scores once.
//
// Multi-token queries therefore reward phrase cohesion and individual keyword
// presence at the same time. A field that normalizes to empty scores 0.
func FieldScore(value string, tokens []string, w Weights) int {
	v := Normalize(value)
	if v == "" || len(tokens) == 0 {
		return 0
	}

	score := 0
	joined := strings.Join(tokens, " ")
	if v == joined {
		score += w.Exact
	}
	if strings.HasPrefix(v, joined) {
		score += w.StartsWith
	}

	for _, t := range tokens {
		switch {
		case v == t:
			score += w.Exact
		case strings.HasPrefix(v, t):
			score += w.StartsWith
		case strings.Contains(v, t):
			score += w.Includes
		}
	}
	return score
}
