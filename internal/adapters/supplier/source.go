package supplier

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tienhung-ho/my-hotel-merger/internal/domain"
)

// HTTPSource serves one supplier's records from the catalog API.
type HTTPSource struct {
	name string
	c    *Client
}

func NewHTTPSource(name string, c *Client) *HTTPSource {
	return &HTTPSource{name: name, c: c}
}

func (s *HTTPSource) Name() string { return s.name }

func (s *HTTPSource) Fetch(ctx context.Context) ([]domain.RawRecord, error) {
	items, err := s.c.FetchList(ctx, s.name)
	if err != nil {
		return nil, err
	}
	return wrapRecords(s.name, items), nil
}

func wrapRecords(name string, items []map[string]any) []domain.RawRecord {
	recs := make([]domain.RawRecord, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		recs = append(recs, domain.RawRecord{Supplier: name, Data: it})
	}
	return recs
}

// CachedSource keeps a supplier's raw payload in the cache so merges repeated
// within the TTL skip the network. Cache trouble is never fatal, the wrapped
// source is always available as fallback.
type CachedSource struct {
	src   domain.SupplierSource
	cache domain.Cache
	ttl   time.Duration
}

func NewCachedSource(src domain.SupplierSource, cache domain.Cache, ttl time.Duration) *CachedSource {
	return &CachedSource{src: src, cache: cache, ttl: ttl}
}

func (s *CachedSource) Name() string { return s.src.Name() }

func (s *CachedSource) Fetch(ctx context.Context) ([]domain.RawRecord, error) {
	key := "supplier:" + s.src.Name()
	b, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Warn().Str("supplier", s.src.Name()).Err(err).Msg("cache read failed")
	} else if ok {
		var items []map[string]any
		if err := json.Unmarshal(b, &items); err == nil {
			return wrapRecords(s.src.Name(), items), nil
		}
		// corrupt payload: drop it and refetch
		_ = s.cache.Del(ctx, key)
	}

	recs, err := s.src.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]map[string]any, 0, len(recs))
	for _, r := range recs {
		items = append(items, r.Data)
	}
	if b, err := json.Marshal(items); err == nil {
		if err := s.cache.Set(ctx, key, b, s.ttl); err != nil {
			log.Warn().Str("supplier", s.src.Name()).Err(err).Msg("cache write failed")
		}
	}
	return recs, nil
}
