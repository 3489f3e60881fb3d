package domain

import "time"

// RotationGroup is a fixed-lifetime promotional bucket a domain can be
// assigned to.
type RotationGroup string

const (
	RotationDaily  RotationGroup = "daily"
	RotationWeekly RotationGroup = "weekly"
	RotationMythic RotationGroup = "mythic"
)

// Rotation group lifetimes. Expiry is always computed as assignment time plus
// the group lifetime; nothing stores a countdown.
const (
	DailyRotationLifetime  = 24 * time.Hour
	WeeklyRotationLifetime = 7 * 24 * time.Hour
	MythicRotationLifetime = 30 * 24 * time.Hour
)

// Lifetime returns the fixed window duration for the group, or 0 for an
// unknown group.
func (g RotationGroup) Lifetime() time.Duration {
	switch g {
	case RotationDaily:
		return DailyRotationLifetime
	case RotationWeekly:
		return WeeklyRotationLifetime
	case RotationMythic:
		return MythicRotationLifetime
	}
	return 0
}

// IsValidRotationGroup checks if a group string names a known rotation bucket
func IsValidRotationGroup(g string) bool {
	return RotationGroup(g).Lifetime() > 0
}

// RotationAssignment binds a domain id to a rotation group for one promotional
// window. ExpiresAt is absolute; remaining time is recomputed on every read.
type RotationAssignment struct {
	DomainID   string        `json:"domain_id"`
	Group      RotationGroup `json:"group"`
	AssignedAt time.Time     `json:"assigned_at"`
	ExpiresAt  time.Time     `json:"expires_at"`
}

// Expired reports whether the assignment's window has closed as of now.
// Expiry is a derived predicate; assignments are never actively swept.
func (a RotationAssignment) Expired(now time.Time) bool {
	return !now.Before(a.ExpiresAt)
}
