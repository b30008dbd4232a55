// Package cache holds rendered pages for a short time so that identical
// requests skip rendering. Entries are never invalidated by writes, they
// only expire or get cleared.
package cache

import (
	"context"
	"time"
)

// Store keeps rendered page bodies keyed by request uri.
type Store interface {
	// Get returns the body and true on a fresh hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, body []byte, ttl time.Duration) error
	// Clear drops every cached page.
	Clear(ctx context.Context) error
}
