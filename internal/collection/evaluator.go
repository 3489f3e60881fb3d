package collection

import (
	"sort"

	"github.com/scavhall/scavrack/internal/domain"
)

// Spec is one declarative collection rule: a named, filtered, ordered view
// over the catalog. Specs are authored as static configuration, never user
// input. Absent constraints mean "no constraint".
type Spec struct {
	Name           string        `json:"name"`
	Description    string        `json:"description,omitempty"`
	RequiredTags   []string      `json:"required_tags,omitempty"`
	ExcludedTags   []string      `json:"excluded_tags,omitempty"`
	MinRarityScore *int          `json:"min_rarity_score,omitempty"`
	TierWhitelist  []domain.Tier `json:"tier_whitelist,omitempty"`
}

// Evaluate returns the records matching the spec, deterministically ordered.
// Pure: the input slice is never mutated, so concurrent evaluations of
// different specs over the same snapshot cannot interfere.
func Evaluate(records []domain.CanonicalRecord, spec Spec) []domain.CanonicalRecord {
	matched := make([]domain.CanonicalRecord, 0, len(records))
	for _, r := range records {
		if spec.matches(r) {
			matched = append(matched, r)
		}
	}

	// Stable sort: records equal on all three keys keep their input order, so
	// re-evaluating the same snapshot never visibly reorders ties.
	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.IsFeatured != b.IsFeatured {
			return a.IsFeatured
		}
		if a.Rarity() != b.Rarity() {
			return a.Rarity() > b.Rarity()
		}
		return a.PriceAmount > b.PriceAmount
	})

	return matched
}

// matches applies the spec's constraints, all AND'd.
func (s Spec) matches(r domain.CanonicalRecord) bool {
	for _, tag := range s.RequiredTags {
		if !r.HasTag(tag) {
			return false
		}
	}

	for _, tag := range s.ExcludedTags {
		if r.HasTag(tag) {
			return false
		}
	}

	if s.MinRarityScore != nil && r.Rarity() < *s.MinRarityScore {
		return false
	}

	if len(s.TierWhitelist) > 0 {
		allowed := false
		for _, tier := range s.TierWhitelist {
			if r.Tier == tier {
				allowed = true
				break
			}
		}
		if !allowed {
			return false
		}
	}

	return true
}
