// Package search implements the deterministic, rule-based lexical search
// engine behind the catalog's free-text search box. A raw query is normalized
// and tokenized, matched against heterogeneous catalog entities (stock
// products, derived stock categories and subcategories, and external catalog
// links), scored with weighted multi-field heuristics, and assembled into a
// single ranked, faceted result set.
//
// The package is deliberately free of persistence and transport concerns:
// scanners operate on plain row structs supplied by the caller, never mutate
// them, and produce the same output for the same input. There is no index,
// no cache, and no shared state — every call is a full scan over the rows it
// is handed, which is adequate for catalog-sized data sets and keeps the
// engine trivially safe for concurrent use.
//
// Scoring is purely lexical: exact, prefix, and substring matches per field,
// weighted so identifier-like fields (product code, order number) dominate
// over free text. There is no fuzzy matching, synonym expansion, or
// length/IDF normalization.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize produces the canonical comparison form of catalog text: it
// lower-cases the input, strips diacritical marks (so "café" and "cafe"
// compare equal), collapses every run of non-alphanumeric characters to a
// single space, and trims the result. It is total over all inputs; empty
// input normalizes to an empty string.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)

	// NFD + remove combining marks. Transformers carry internal state, so a
	// fresh chain is built per call to stay safe for concurrent use.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
			continue
		}
		pendingSpace = true
	}
	return b.String()
}

// Tokenize normalizes a raw query and splits it into search tokens, dropping
// empty fragments and preserving token order (the field scorer relies on the
// original order for its joined-phrase check). The returned slice may be
// empty; callers must treat an empty token list as "skip scoring entirely"
// rather than as an error.
func Tokenize(query string) []string {
	n := Normalize(query)
	if n == "" {
		return nil
	}
	return strings.Fields(n)
}

// Slugify converts a display name into a URL path segment: normalized text
// with spaces replaced by hyphens ("Power Distribution" → "power-distribution").
func Slugify(s string) string {
	return strings.ReplaceAll(Normalize(s), " ", "-")
}
