// Package store reads and writes the storefront's JSON blobs in Redis.
// The storefront owns the data shapes; this backend treats each key as one
// opaque JSON array and decodes it whole.
package store

import "errors"

// Blob keys written by the storefront.
const (
	OrdersKey   = "volubiks_orders"
	ProductsKey = "volubiks_products_cache"
)

// Provider failure classes. Aggregation never runs over a failed read;
// controllers surface both as a "data unavailable" state.
var (
	// ErrUnavailable means the store could not be reached.
	ErrUnavailable = errors.New("store unavailable")
	// ErrCorrupt means the blob exists but is not valid JSON for its shape.
	ErrCorrupt = errors.New("corrupt blob")
)
