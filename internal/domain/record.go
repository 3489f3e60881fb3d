package domain

// RawRecord is one catalog item exactly as the upstream listing feed supplies
// it: a sparse string-keyed bag. Nothing beyond an id/name equivalent is
// guaranteed to be present, and the core never assumes any other field exists.
type RawRecord map[string]any

// Tier is the coarse classification bucket derived from raw category data.
type Tier string

const (
	TierScav    Tier = "scav"
	TierMid     Tier = "mid"
	TierPremium Tier = "premium"
	TierMythic  Tier = "mythic"
)

// IsValidTier checks if a tier string is one of the known buckets
func IsValidTier(t string) bool {
	switch Tier(t) {
	case TierScav, TierMid, TierPremium, TierMythic:
		return true
	}
	return false
}

// Status is the sale status derived from raw status/availability flags.
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusSold      Status = "sold"

	// StatusUnknown marks a record whose raw status label was missing or
	// unrecognized. Callers must not treat it as available.
	StatusUnknown Status = "unknown"
)

// CanonicalRecord is the normalized internal representation of one catalog
// domain. Every field is derivable purely from the source RawRecord, so
// re-normalizing an equivalent raw form yields an identical record.
type CanonicalRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	PriceAmount float64  `json:"price_amount"`
	Tier        Tier     `json:"tier"`
	RarityScore *int     `json:"rarity_score,omitempty"` // nil means "not yet rated", distinct from 0
	Tags        []string `json:"tags"`
	IsVaulted   bool     `json:"is_vaulted"`
	IsFeatured  bool     `json:"is_featured"`
	Status      Status   `json:"status"`
}

// Rarity returns the rarity score with absence treated as 0, the convention
// used for filtering and sorting.
func (r CanonicalRecord) Rarity() int {
	if r.RarityScore == nil {
		return 0
	}
	return *r.RarityScore
}

// HasTag reports whether the record carries the given tag.
func (r CanonicalRecord) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
