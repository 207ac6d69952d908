package supplier

import (
	"time"

	"github.com/tienhung-ho/my-hotel-merger/internal/domain"
)

// DefaultSuppliers are the catalog suppliers queried when configuration does
// not name an explicit set. Their order is the ingestion order, which decides
// merge tie-breaks downstream.
var DefaultSuppliers = []string{"acme", "patagonia", "paperflies"}

// HTTPSources builds one source per supplier name on a shared client.
func HTTPSources(c *Client, names []string) []domain.SupplierSource {
	if len(names) == 0 {
		names = DefaultSuppliers
	}
	out := make([]domain.SupplierSource, 0, len(names))
	for _, n := range names {
		out = append(out, NewHTTPSource(n, c))
	}
	return out
}

// FixtureSources builds file-backed sources reading <dir>/<name>.json.
func FixtureSources(dir string, names []string) []domain.SupplierSource {
	if len(names) == 0 {
		names = DefaultSuppliers
	}
	out := make([]domain.SupplierSource, 0, len(names))
	for _, n := range names {
		out = append(out, NewFixtureSource(n, dir))
	}
	return out
}

// WithCache wraps every source with payload caching.
func WithCache(sources []domain.SupplierSource, cache domain.Cache, ttl time.Duration) []domain.SupplierSource {
	out := make([]domain.SupplierSource, 0, len(sources))
	for _, s := range sources {
		out = append(out, NewCachedSource(s, cache, ttl))
	}
	return out
}
