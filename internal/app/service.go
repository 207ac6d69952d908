package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/tienhung-ho/my-hotel-merger/internal/domain"
)

// RunStats summarizes one pipeline execution.
type RunStats struct {
	Suppliers  int
	Failed     int
	RawRecords int
	Skipped    int
	Groups     int
	Matched    int
}

// MergeService runs the whole pipeline: fetch every supplier, normalize,
// group, filter, reconcile, assemble.
type MergeService struct {
	sources []domain.SupplierSource
	norm    *Normalizer
	workers int
}

func NewMergeService(sources []domain.SupplierSource, norm *Normalizer, workers int) *MergeService {
	if workers < 1 {
		workers = 1
	}
	return &MergeService{sources: sources, norm: norm, workers: workers}
}

// Run executes one batch merge. One failing supplier is a warning and the
// run continues on the rest; zero records from all suppliers together is
// fatal (domain.ErrNoSupplierData).
func (s *MergeService) Run(ctx context.Context, hotels, destinations IDFilter) ([]domain.Hotel, RunStats, error) {
	stats := RunStats{Suppliers: len(s.sources)}

	raws, failed, err := s.fetchAll(ctx)
	if err != nil {
		return nil, stats, err
	}
	stats.Failed = failed
	stats.RawRecords = len(raws)
	if len(raws) == 0 {
		return nil, stats, domain.ErrNoSupplierData
	}

	records, skipped := s.norm.Normalize(raws)
	stats.Skipped = skipped

	groups := Group(records)
	stats.Groups = len(groups)

	groups = FilterGroups(groups, hotels, destinations)
	stats.Matched = len(groups)

	merged := make([]domain.Hotel, 0, len(groups))
	for _, g := range groups {
		merged = append(merged, MergeGroup(g))
	}
	return Assemble(merged), stats, nil
}

// fetchAll queries suppliers concurrently, bounded by workers, and stitches
// results back together in registration order. Tie-breaks downstream depend
// on stable ingestion order, so result order must not follow goroutine
// timing.
func (s *MergeService) fetchAll(ctx context.Context) ([]domain.RawRecord, int, error) {
	results := make([][]domain.RawRecord, len(s.sources))
	errs := make([]error, len(s.sources))

	sem := semaphore.NewWeighted(int64(s.workers))
	var wg sync.WaitGroup
	for i, src := range s.sources {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return nil, 0, err
		}
		wg.Add(1)
		go func(i int, src domain.SupplierSource) {
			defer wg.Done()
			defer sem.Release(1)
			recs, err := src.Fetch(ctx)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = recs
		}(i, src)
	}
	wg.Wait()

	failed := 0
	var out []domain.RawRecord
	for i, src := range s.sources {
		if errs[i] != nil {
			failed++
			log.Warn().Str("supplier", src.Name()).Err(errs[i]).Msg("supplier fetch failed")
			continue
		}
		log.Debug().Str("supplier", src.Name()).Int("records", len(results[i])).Msg("supplier fetch ok")
		out = append(out, results[i]...)
	}
	return out, failed, nil
}
