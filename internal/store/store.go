// internal/store/store.go

// Package store is the string key-value space every record lives in.
// Values are opaque JSON text; decoding belongs to the records layer.
package store

import "context"

// KeyValueStore is a flat string map with an all-keys reset.
type KeyValueStore interface {
	// Get reports found=false with a nil error for a missing key.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Close() error
}
