package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scavhall/scavrack/internal/domain"
)

func TestNormalizeFullRecord(t *testing.T) {
	n := NewNormalizer()

	raw := domain.RawRecord{
		"id":       "dom-42",
		"name":     "deadgrid",
		"category": "premium",
		"price":    "12 SOL",
		"rarity":   "epic",
		"tags":     []any{"meme"},
		"status":   "available",
		"featured": true,
	}

	rec := n.Normalize(raw)

	assert.Equal(t, "dom-42", rec.ID)
	assert.Equal(t, "deadgrid.sol", rec.Name)
	assert.Equal(t, domain.TierPremium, rec.Tier)
	assert.Equal(t, 12.0, rec.PriceAmount)
	require.NotNil(t, rec.RarityScore)
	assert.Equal(t, 90, *rec.RarityScore)
	assert.Equal(t, []string{"meme"}, rec.Tags)
	assert.Equal(t, domain.StatusAvailable, rec.Status)
	assert.True(t, rec.IsFeatured)
	assert.False(t, rec.IsVaulted)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	n := NewNormalizer()

	raw := domain.RawRecord{
		"id":     "dom-7",
		"name":   "  Voidmarket.sol ",
		"price":  "about 3.5 sol or so",
		"rarity": "RARE",
		"tags":   []any{"Cyber", "cyber", "market", 7},
	}

	first := n.Normalize(raw)
	second := n.Normalize(raw)

	assert.Equal(t, first, second)
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"plain integer", "12 SOL", 12},
		{"decimal", "0.5 sol", 0.5},
		{"embedded", "ask: 300, or best offer", 300},
		{"no number", "make me an offer", 0},
		{"empty", "", 0},
		{"number only", "42", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parsePrice(tt.text))
		})
	}
}

func TestDeriveTier(t *testing.T) {
	tests := []struct {
		category string
		want     domain.Tier
	}{
		{"premium", domain.TierPremium},
		{"vaulted", domain.TierPremium},
		{"PREMIUM", domain.TierPremium},
		{"mid", domain.TierMid},
		{"scav", domain.TierScav},
		{"basement", domain.TierScav},
		{"flashrack", domain.TierScav},
		{"quicksnag", domain.TierScav},
		// Unknown and missing categories default to mid, not scav
		{"glitchwave", domain.TierMid},
		{"", domain.TierMid},
	}

	for _, tt := range tests {
		t.Run("category "+tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveTier(tt.category))
		})
	}
}

func TestDeriveRarity(t *testing.T) {
	epic := deriveRarity("epic")
	require.NotNil(t, epic)
	assert.Equal(t, 90, *epic)

	rare := deriveRarity("rare")
	require.NotNil(t, rare)
	assert.Equal(t, 60, *rare)

	base := deriveRarity("base")
	require.NotNil(t, base)
	assert.Equal(t, 30, *base)

	// Absence and "common" are distinct: unknown labels mean not yet rated
	assert.Nil(t, deriveRarity("shiny"))
	assert.Nil(t, deriveRarity(""))
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		status string
		want   domain.Status
	}{
		{"available", domain.StatusAvailable},
		{"vaulted", domain.StatusPending},
		{"not_for_sale", domain.StatusPending},
		{"sold", domain.StatusSold},
		{"haggling", domain.StatusUnknown},
		{"", domain.StatusUnknown},
	}

	for _, tt := range tests {
		t.Run("status "+tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveStatus(tt.status))
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	tags := normalizeTags([]any{"Meme", "meme", " NEON ", "", "grid", "grid"})
	assert.Equal(t, []string{"meme", "neon", "grid"}, tags)

	assert.Empty(t, normalizeTags(nil))
	assert.Empty(t, normalizeTags("not-a-list"))
}

func TestNormalizeNameSuffix(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name string
		raw  domain.RawRecord
		want string
	}{
		{"appends suffix", domain.RawRecord{"id": "1", "name": "deadgrid"}, "deadgrid.sol"},
		{"keeps existing suffix", domain.RawRecord{"id": "1", "name": "deadgrid.sol"}, "deadgrid.sol"},
		{"trims whitespace", domain.RawRecord{"id": "1", "name": "  deadgrid  "}, "deadgrid.sol"},
		{"falls back to id", domain.RawRecord{"id": "dom-9"}, "dom-9.sol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.raw).Name)
		})
	}
}

func TestNormalizeEmptyRecord(t *testing.T) {
	n := NewNormalizer()

	rec := n.Normalize(domain.RawRecord{})

	assert.Empty(t, rec.ID)
	assert.Empty(t, rec.Name)
	assert.Zero(t, rec.PriceAmount)
	assert.Equal(t, domain.TierMid, rec.Tier)
	assert.Nil(t, rec.RarityScore)
	assert.Empty(t, rec.Tags)
	assert.Equal(t, domain.StatusUnknown, rec.Status)
}

func TestNormalizeFallbackKeys(t *testing.T) {
	n := NewNormalizer()

	rec := n.Normalize(domain.RawRecord{
		"domain_id":  "dom-3",
		"domain":     "nullspire",
		"price_sol":  7.25,
		"is_vaulted": true,
	})

	assert.Equal(t, "dom-3", rec.ID)
	assert.Equal(t, "nullspire.sol", rec.Name)
	assert.Equal(t, 7.25, rec.PriceAmount)
	assert.True(t, rec.IsVaulted)
}
