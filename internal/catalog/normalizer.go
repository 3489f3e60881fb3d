package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/scavhall/scavrack/internal/domain"
)

// priceRe extracts the first decimal number from free-text price copy,
// e.g. "12 SOL", "~0.5 sol", "ask: 300".
var priceRe = regexp.MustCompile(`\d+(\.\d+)?`)

// Normalizer converts raw listing records into canonical records. It is the
// single place where "anything goes" feed input is handled: every field has a
// documented fallback, so Normalize is total and never fails.
type Normalizer struct {
	suffix string
}

// NewNormalizer creates a Normalizer using the default domain suffix.
func NewNormalizer() *Normalizer {
	return NewNormalizerWithSuffix(DefaultDomainSuffix)
}

// NewNormalizerWithSuffix creates a Normalizer appending the given suffix to
// names that arrive without one.
func NewNormalizerWithSuffix(suffix string) *Normalizer {
	return &Normalizer{suffix: suffix}
}

// Normalize derives a CanonicalRecord from a raw feed record. Pure and
// idempotent: the output is a function of the input alone.
func (n *Normalizer) Normalize(raw domain.RawRecord) domain.CanonicalRecord {
	id := stringField(raw, idKeys)
	name := n.normalizeName(stringField(raw, nameKeys), id)

	return domain.CanonicalRecord{
		ID:          id,
		Name:        name,
		PriceAmount: parsePrice(stringField(raw, priceKeys)),
		Tier:        deriveTier(stringField(raw, categoryKeys)),
		RarityScore: deriveRarity(stringField(raw, rarityKeys)),
		Tags:        normalizeTags(raw["tags"]),
		IsVaulted:   boolField(raw, vaultedKeys),
		IsFeatured:  boolField(raw, featuredKeys),
		Status:      deriveStatus(stringField(raw, statusKeys)),
	}
}

// normalizeName trims and NFC-normalizes the display name, falling back to
// the id when the feed omits a name, and appends the domain suffix if absent.
func (n *Normalizer) normalizeName(name, id string) string {
	name = strings.TrimSpace(norm.NFC.String(name))
	if name == "" {
		name = id
	}
	if name != "" && !strings.HasSuffix(name, n.suffix) {
		name += n.suffix
	}
	return name
}

// parsePrice returns the first decimal number found in the raw price text.
// Malformed or missing prices become 0: a best-guess value keeps the listing
// displayable where rejecting it would not.
func parsePrice(text string) float64 {
	match := priceRe.FindString(text)
	if match == "" {
		return 0
	}
	amount, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return amount
}

// deriveTier maps a raw category label to a tier bucket.
// Unknown and missing categories fall back to mid rather than scav so that
// unrated stock is not under-priced.
func deriveTier(category string) domain.Tier {
	switch fold(category) {
	case CategoryPremium, CategoryVaulted:
		return domain.TierPremium
	case CategoryMid:
		return domain.TierMid
	case CategoryScav, CategoryBasement, CategoryFlashrack, CategoryQuicksnag:
		return domain.TierScav
	}
	return domain.TierMid
}

// deriveRarity maps a raw rarity label to a score, or nil when the label is
// unknown or missing.
func deriveRarity(label string) *int {
	var score int
	switch fold(label) {
	case "epic":
		score = RarityScoreEpic
	case "rare":
		score = RarityScoreRare
	case "base":
		score = RarityScoreBase
	default:
		return nil
	}
	return &score
}

// deriveStatus maps raw status/availability labels to a sale status.
// Unrecognized labels become StatusUnknown so callers cannot mistake an
// evolving upstream vocabulary for availability.
func deriveStatus(status string) domain.Status {
	switch fold(status) {
	case RawStatusAvailable:
		return domain.StatusAvailable
	case RawStatusVaulted, RawStatusNotForSale:
		return domain.StatusPending
	case RawStatusSold:
		return domain.StatusSold
	}
	return domain.StatusUnknown
}

// normalizeTags case-folds and deduplicates the raw tag list, keeping
// first-seen order so repeated normalization is byte-for-byte identical.
func normalizeTags(v any) []string {
	var rawTags []string
	switch tags := v.(type) {
	case []string:
		rawTags = tags
	case []any:
		for _, t := range tags {
			if s, ok := t.(string); ok {
				rawTags = append(rawTags, s)
			}
		}
	}

	seen := make(map[string]bool, len(rawTags))
	out := make([]string, 0, len(rawTags))
	for _, t := range rawTags {
		t = strings.TrimSpace(fold(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// stringField returns the first present key's value rendered as a string.
func stringField(raw domain.RawRecord, keys []string) string {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok {
			continue
		}
		switch s := v.(type) {
		case string:
			return s
		case float64:
			return strconv.FormatFloat(s, 'f', -1, 64)
		case int:
			return strconv.Itoa(s)
		}
	}
	return ""
}

// boolField returns the first present key's value interpreted as a boolean.
func boolField(raw domain.RawRecord, keys []string) bool {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok {
			continue
		}
		switch b := v.(type) {
		case bool:
			return b
		case string:
			return fold(b) == "true"
		}
	}
	return false
}

// fold lower-cases a label with full Unicode case folding. A fresh Caser per
// call keeps this safe for concurrent normalization.
func fold(s string) string {
	return cases.Fold().String(s)
}
