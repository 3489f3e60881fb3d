package rotation

import (
	"fmt"
	"sync"
	"time"

	"github.com/scavhall/scavrack/internal/domain"
)

// Manager assigns domains to time-boxed promotional rotation groups and
// answers remaining-time queries. Expiry is always derived from the stored
// ExpiresAt against the current clock; there is no sweep and no countdown
// state to go stale.
type Manager struct {
	mu          sync.RWMutex
	assignments map[string]domain.RotationAssignment // latest assignment per domain id

	now func() time.Time // injectable for tests
}

// NewManager creates an empty rotation manager.
func NewManager() *Manager {
	return &Manager{
		assignments: make(map[string]domain.RotationAssignment),
		now:         time.Now,
	}
}

// Assign places a domain into a rotation group, opening a fresh window of the
// group's lifetime. Re-assigning a domain, expired or not, simply replaces the
// previous window; no history is kept beyond the latest assignment.
func (m *Manager) Assign(domainID string, group domain.RotationGroup) (domain.RotationAssignment, error) {
	lifetime := group.Lifetime()
	if lifetime <= 0 {
		return domain.RotationAssignment{}, fmt.Errorf("%w: %s", domain.ErrUnknownRotationGroup, group)
	}

	now := m.now()
	assignment := domain.RotationAssignment{
		DomainID:   domainID,
		Group:      group,
		AssignedAt: now,
		ExpiresAt:  now.Add(lifetime),
	}

	m.mu.Lock()
	m.assignments[domainID] = assignment
	m.mu.Unlock()

	return assignment, nil
}

// Get returns the latest assignment for a domain, if any.
func (m *Manager) Get(domainID string) (domain.RotationAssignment, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	assignment, ok := m.assignments[domainID]
	return assignment, ok
}

// Active returns the group's assignments whose windows are still open as of
// the current clock. Expired assignments are skipped, not deleted.
func (m *Manager) Active(group domain.RotationGroup) []domain.RotationAssignment {
	now := m.now()

	m.mu.RLock()
	defer m.mu.RUnlock()

	var active []domain.RotationAssignment
	for _, assignment := range m.assignments {
		if assignment.Group == group && !assignment.Expired(now) {
			active = append(active, assignment)
		}
	}
	return active
}

// Remaining computes the time left in the assignment's window against the
// manager's clock.
func (m *Manager) Remaining(assignment domain.RotationAssignment) Countdown {
	return RemainingAt(assignment, m.now())
}

// Countdown is a display-ready decomposition of remaining window time.
type Countdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`

	Total time.Duration `json:"-"`
}

// RemainingAt returns max(0, expiresAt - now) decomposed into day/hour/minute/
// second components. Computed, never stored, so it cannot drift from the
// wall clock between queries.
func RemainingAt(assignment domain.RotationAssignment, now time.Time) Countdown {
	remaining := assignment.ExpiresAt.Sub(now)
	if remaining < 0 {
		remaining = 0
	}

	return Countdown{
		Days:    int(remaining / (24 * time.Hour)),
		Hours:   int(remaining % (24 * time.Hour) / time.Hour),
		Minutes: int(remaining % time.Hour / time.Minute),
		Seconds: int(remaining % time.Minute / time.Second),
		Total:   remaining,
	}
}
