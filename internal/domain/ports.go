package domain

import (
	"context"
	"time"
)

// SupplierSource fetches one supplier's full payload of raw hotel records.
type SupplierSource interface {
	// Name identifies the supplier in logs, metrics and merge provenance.
	Name() string
	// Fetch returns every record the supplier currently publishes. The
	// slice preserves the supplier's own payload order.
	Fetch(ctx context.Context) ([]RawRecord, error)
}

// Cache stores raw supplier payloads keyed by supplier name so repeated runs
// can skip the network. Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// Sink renders merged hotels to some destination (stdout, a file, an HTTP
// response body).
type Sink interface {
	Write(hotels []Hotel) error
}
