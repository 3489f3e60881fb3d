package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tierPayload struct {
	Tier string `validate:"tier"`
}

type groupPayload struct {
	Group string `validate:"required,rotation_group"`
}

func TestValidateTier(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		tier    string
		wantErr bool
	}{
		{"scav", "scav", false},
		{"mid", "mid", false},
		{"premium", "premium", false},
		{"mythic", "mythic", false},
		{"mixed case", "Premium", false},
		{"empty allowed without required", "", false},
		{"unknown", "legendary", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tierPayload{Tier: tt.tier})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRotationGroup(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		group   string
		wantErr bool
	}{
		{"daily", "daily", false},
		{"weekly", "weekly", false},
		{"mythic", "mythic", false},
		{"unknown", "hourly", true},
		{"empty fails required", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(groupPayload{Group: tt.group})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	err := v.ValidateStruct(groupPayload{Group: "hourly"})
	errs := FormatValidationError(err)

	assert.Equal(t, "Invalid rotation group", errs["group"])
}
