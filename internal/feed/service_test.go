package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scavhall/scavrack/internal/catalog"
	"github.com/scavhall/scavrack/internal/domain"
)

type countingSource struct {
	records []domain.RawRecord
	err     error
	calls   int
}

func (s *countingSource) Fetch(_ context.Context) ([]domain.RawRecord, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func newTestService(source Source, ttl time.Duration) *Service {
	return NewService(source, catalog.NewNormalizer(), ttl)
}

func TestService_Records_NormalizesAll(t *testing.T) {
	source := &countingSource{records: []domain.RawRecord{
		{"id": "a1", "name": "gold-rolex", "category": "premium", "price": "12 SOL"},
		{"id": "a2", "name": "rusty-spoon", "category": "basement"},
	}}
	svc := newTestService(source, time.Minute)

	records, err := svc.Records(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "gold-rolex.sol", records[0].Name)
	assert.Equal(t, domain.TierPremium, records[0].Tier)
	assert.Equal(t, domain.TierScav, records[1].Tier)
}

func TestService_Records_CachesWithinTTL(t *testing.T) {
	source := &countingSource{records: []domain.RawRecord{{"id": "a1"}}}
	svc := newTestService(source, time.Minute)

	_, err := svc.Records(context.Background())
	require.NoError(t, err)
	_, err = svc.Records(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, source.calls)
}

func TestService_Records_FetchErrorWrapsFeedUnavailable(t *testing.T) {
	source := &countingSource{err: errors.New("connection refused")}
	svc := newTestService(source, time.Minute)

	_, err := svc.Records(context.Background())
	assert.ErrorIs(t, err, domain.ErrFeedUnavailable)
}

func TestService_Records_ErrorIsNotCached(t *testing.T) {
	source := &countingSource{err: errors.New("boom")}
	svc := newTestService(source, time.Minute)

	_, err := svc.Records(context.Background())
	require.Error(t, err)

	source.err = nil
	source.records = []domain.RawRecord{{"id": "a1"}}

	records, err := svc.Records(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 2, source.calls)
}

func TestService_Reload_BypassesCache(t *testing.T) {
	source := &countingSource{records: []domain.RawRecord{{"id": "a1"}}}
	svc := newTestService(source, time.Minute)

	_, err := svc.Records(context.Background())
	require.NoError(t, err)

	source.records = []domain.RawRecord{{"id": "a1"}, {"id": "a2"}}
	records, err := svc.Reload(context.Background())
	require.NoError(t, err)

	assert.Len(t, records, 2)
	assert.Equal(t, 2, source.calls)

	// Subsequent reads serve the reloaded snapshot
	records, err = svc.Records(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, 2, source.calls)
}

func TestService_Records_EmptyFeed(t *testing.T) {
	source := &countingSource{records: []domain.RawRecord{}}
	svc := newTestService(source, time.Minute)

	records, err := svc.Records(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}
