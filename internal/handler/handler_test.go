package handler

import (
	"context"

	"github.com/scavhall/scavrack/internal/claims"
	"github.com/scavhall/scavrack/internal/domain"
)

// fakeSnapshots is a canned SnapshotProvider for handler tests
type fakeSnapshots struct {
	records []domain.CanonicalRecord
	err     error

	reloads int
}

func (f *fakeSnapshots) Records(_ context.Context) ([]domain.CanonicalRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func (f *fakeSnapshots) Reload(_ context.Context) ([]domain.CanonicalRecord, error) {
	f.reloads++
	return f.Records(context.Background())
}

func newTestClaims(claimed ...string) claims.Service {
	ctx := context.Background()
	svc := claims.NewService(ctx, claims.NewMemoryStore())
	for _, id := range claimed {
		_ = svc.Claim(ctx, id)
	}
	return svc
}

func intPtr(v int) *int { return &v }
