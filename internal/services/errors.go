// Package services defines the business logic for catalog search. This file
// centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer;
// translation into user-facing messages or HTTP status codes is performed at
// the handler layer.
package services

import "errors"

var (
	// ErrStockLoad indicates that the stock product rows could not be read
	// from the backing store. The search call fails entirely: a broken read
	// must not masquerade as "no matches".
	ErrStockLoad = errors.New("failed to load stock products for search")

	// ErrCatalogLoad indicates that the external catalog link rows could not
	// be read from the backing store.
	ErrCatalogLoad = errors.New("failed to load external catalog links for search")
)
