package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/scavhall/scavrack/internal/catalog"
	"github.com/scavhall/scavrack/internal/domain"
	"github.com/scavhall/scavrack/internal/logger"
	"github.com/scavhall/scavrack/internal/metrics"
)

// Service produces normalized catalog snapshots. One fetch covers all readers
// within the cache TTL; render paths never trigger more than one upstream
// call per window.
type Service struct {
	source     Source
	normalizer *catalog.Normalizer
	cache      *expirable.LRU[string, []domain.CanonicalRecord]
}

// NewService creates a snapshot service over the given source. ttl controls
// how long a fetched snapshot is served before the next fetch.
func NewService(source Source, normalizer *catalog.Normalizer, ttl time.Duration) *Service {
	return &Service{
		source:     source,
		normalizer: normalizer,
		cache:      expirable.NewLRU[string, []domain.CanonicalRecord](snapshotCacheSize, nil, ttl),
	}
}

// Records returns the current normalized snapshot, fetching from the source
// when the cached one has expired. The returned slice is shared; callers must
// not mutate it.
func (s *Service) Records(ctx context.Context) ([]domain.CanonicalRecord, error) {
	if cached, ok := s.cache.Get(snapshotCacheKey); ok {
		metrics.FeedFetches.WithLabelValues(metrics.ResultCache).Inc()
		return cached, nil
	}
	return s.refresh(ctx)
}

// Reload drops the cached snapshot and fetches a fresh one.
func (s *Service) Reload(ctx context.Context) ([]domain.CanonicalRecord, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgReloadRequested)

	s.cache.Remove(snapshotCacheKey)
	return s.refresh(ctx)
}

func (s *Service) refresh(ctx context.Context) ([]domain.CanonicalRecord, error) {
	log := logger.FromContext(ctx)

	raw, err := s.source.Fetch(ctx)
	if err != nil {
		metrics.FeedFetches.WithLabelValues(metrics.ResultError).Inc()
		return nil, fmt.Errorf("%w: %w", domain.ErrFeedUnavailable, err)
	}

	records := make([]domain.CanonicalRecord, 0, len(raw))
	for _, r := range raw {
		records = append(records, s.normalizer.Normalize(r))
	}
	metrics.RecordsNormalized.Add(float64(len(records)))
	metrics.FeedFetches.WithLabelValues(metrics.ResultOK).Inc()

	s.cache.Add(snapshotCacheKey, records)
	log.Info(LogMsgSnapshotRefreshed, "record_count", len(records))

	return records, nil
}
