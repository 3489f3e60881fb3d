package claims

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scavhall/scavrack/internal/domain"
)

// brokenStore fails every operation, for fail-open behavior tests
type brokenStore struct{}

func (brokenStore) Load(context.Context) ([]string, error) {
	return nil, errors.New("disk on fire")
}

func (brokenStore) Add(context.Context, string) error {
	return errors.New("disk on fire")
}

func records(ids ...string) []domain.CanonicalRecord {
	out := make([]domain.CanonicalRecord, len(ids))
	for i, id := range ids {
		out[i] = domain.CanonicalRecord{ID: id, Name: id + ".sol"}
	}
	return out
}

func TestClaimIsTerminal(t *testing.T) {
	ctx := context.Background()
	svc := NewService(ctx, NewMemoryStore())

	assert.False(t, svc.IsClaimed(ctx, "dom-1"))

	require.NoError(t, svc.Claim(ctx, "dom-1"))

	// Claimed stays claimed for every subsequent call
	for i := 0; i < 5; i++ {
		assert.True(t, svc.IsClaimed(ctx, "dom-1"))
	}
}

func TestClaimIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := NewService(ctx, store)

	require.NoError(t, svc.Claim(ctx, "dom-1"))
	require.NoError(t, svc.Claim(ctx, "dom-1"))
	require.NoError(t, svc.Claim(ctx, "dom-1"))

	ids, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"dom-1"}, ids)
}

func TestFilterAvailablePreservesOrder(t *testing.T) {
	ctx := context.Background()
	svc := NewService(ctx, NewMemoryStore())

	require.NoError(t, svc.Claim(ctx, "b"))
	require.NoError(t, svc.Claim(ctx, "d"))

	available := svc.FilterAvailable(ctx, records("a", "b", "c", "d", "e"))

	got := make([]string, len(available))
	for i, r := range available {
		got[i] = r.ID
	}
	assert.Equal(t, []string{"a", "c", "e"}, got)
}

func TestServiceLoadsPersistedClaims(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Add(ctx, "dom-1"))
	require.NoError(t, store.Add(ctx, "dom-2"))

	svc := NewService(ctx, store)

	assert.True(t, svc.IsClaimed(ctx, "dom-1"))
	assert.True(t, svc.IsClaimed(ctx, "dom-2"))
	assert.False(t, svc.IsClaimed(ctx, "dom-3"))
}

func TestServiceFailsOpenOnLoadError(t *testing.T) {
	ctx := context.Background()

	// A broken store must not prevent the catalog from serving
	svc := NewService(ctx, brokenStore{})

	assert.False(t, svc.IsClaimed(ctx, "dom-1"))
	available := svc.FilterAvailable(ctx, records("a", "b"))
	assert.Len(t, available, 2)
}

func TestClaimSwallowsWriteFailure(t *testing.T) {
	ctx := context.Background()
	svc := NewService(ctx, brokenStore{})

	// The write fails, but the claim still takes effect for this session
	require.NoError(t, svc.Claim(ctx, "dom-1"))
	assert.True(t, svc.IsClaimed(ctx, "dom-1"))
}

func TestCheckHealthDefaultsHealthy(t *testing.T) {
	ctx := context.Background()
	svc := NewService(ctx, NewMemoryStore())

	assert.NoError(t, svc.CheckHealth(ctx))
}
