package claims

import (
	"context"
	"sync"

	"github.com/scavhall/scavrack/internal/domain"
	"github.com/scavhall/scavrack/internal/logger"
	"github.com/scavhall/scavrack/internal/metrics"
)

// Store persists the claimed-id set. Implementations must treat Add as
// idempotent for an id already present.
type Store interface {
	// Load returns every claimed id. A missing or empty backing store is a
	// valid empty set, not an error.
	Load(ctx context.Context) ([]string, error)

	// Add durably records one claimed id.
	Add(ctx context.Context, id string) error
}

// Service tracks which domains have been claimed. A claim is one-directional
// and terminal: there is no unclaim. The tracker fails open on persistence
// trouble so the catalog stays browsable even when sold-state is lost.
type Service interface {
	// Claim marks an id as claimed. Claiming an already-claimed id is a no-op.
	Claim(ctx context.Context, id string) error

	// IsClaimed reports whether the id has been claimed.
	IsClaimed(ctx context.Context, id string) bool

	// FilterAvailable removes claimed records, preserving the order of the rest.
	FilterAvailable(ctx context.Context, records []domain.CanonicalRecord) []domain.CanonicalRecord

	// CheckHealth reports whether the backing store is reachable.
	CheckHealth(ctx context.Context) error
}

type service struct {
	store Store

	mu      sync.RWMutex
	claimed map[string]struct{}
}

// NewService creates a claim tracker backed by the given store. A failed
// initial load logs a warning and starts from an empty set rather than
// refusing to serve the catalog.
func NewService(ctx context.Context, store Store) Service {
	s := &service{
		store:   store,
		claimed: make(map[string]struct{}),
	}

	ids, err := store.Load(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgLoadFailed, "error", err)
		return s
	}
	for _, id := range ids {
		s.claimed[id] = struct{}{}
	}

	return s
}

func (s *service) Claim(ctx context.Context, id string) error {
	s.mu.Lock()
	if _, ok := s.claimed[id]; ok {
		s.mu.Unlock()
		// Already claimed: duplicate attempts (retried clicks) are no-ops
		return nil
	}
	s.claimed[id] = struct{}{}
	s.mu.Unlock()

	metrics.DomainsClaimed.Inc()

	// A failed write must not block the user-visible action it records; the
	// in-memory set stays authoritative for this session.
	if err := s.store.Add(ctx, id); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPersistFailed, "id", id, "error", err)
	}

	return nil
}

func (s *service) IsClaimed(_ context.Context, id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.claimed[id]
	return ok
}

func (s *service) FilterAvailable(ctx context.Context, records []domain.CanonicalRecord) []domain.CanonicalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	available := make([]domain.CanonicalRecord, 0, len(records))
	for _, r := range records {
		if _, ok := s.claimed[r.ID]; !ok {
			available = append(available, r)
		}
	}
	return available
}

func (s *service) CheckHealth(ctx context.Context) error {
	if hc, ok := s.store.(interface {
		CheckHealth(ctx context.Context) error
	}); ok {
		return hc.CheckHealth(ctx)
	}
	return nil
}
