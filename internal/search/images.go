package search

import (
	"path"
	"strings"
)

// Storage folders that scope resolved image URLs per entity family.
const (
	FolderStock   = "stock"
	FolderCatalog = "catalog"
)

// imageExts is the set of filename extensions accepted as bare image
// filenames. Anything else degrades to the placeholder.
var imageExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
	".gif":  {},
}

// ImageResolver rewrites raw image references from catalog rows into
// displayable URLs. Catalog data is externally authored, so the resolver is
// total: every string input resolves to something renderable, and no case
// ever errors.
type ImageResolver struct {
	// BaseURL is the public root of the image-hosting service, without a
	// trailing slash (e.g. "https://cdn.example.com/object/public").
	BaseURL string
	// Bucket is the storage bucket all catalog images live in.
	Bucket string
	// Placeholder is the path served when a reference cannot be resolved.
	Placeholder string
}

// Resolve maps a raw image reference to a display URL using an explicit
// ordered case analysis:
//
//  1. Absolute http(s) URLs pass through unchanged.
//  2. Values already starting with "/" pass through unchanged.
//  3. Bare filenames (no path separators) with a recognized image extension
//     are rewritten into the storage-service public URL under the given
//     per-entity folder.
//  4. Everything else — empty input, unrecognized extension, malformed
//     path — falls back to the placeholder.
//
// The case order is load-bearing: reordering it changes which image shows up
// for ambiguous inputs.
func (r *ImageResolver) Resolve(raw, folder string) string {
	raw = strings.TrimSpace(raw)

	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return raw
	}
	if strings.HasPrefix(raw, "/") {
		return raw
	}
	if raw != "" && !strings.ContainsAny(raw, "/\\") {
		if _, ok := imageExts[strings.ToLower(path.Ext(raw))]; ok {
			return strings.TrimRight(r.BaseURL, "/") + "/" + r.Bucket + "/" + folder + "/" + raw
		}
	}
	return r.Placeholder
}
