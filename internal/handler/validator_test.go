package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test boundaries
const (
	MaxNameLength = 200
	MinStakeValue = 1
)

type TestStruct struct {
	BetType string `validate:"bet_type"`
	Name    string `validate:"required,max=200,excludesall=\x00\n\r\t"`
	Stake   int64  `validate:"min=1"`
}

func TestValidator_BetTypeValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		betType string
		wantErr bool
	}{
		{"valid win", "win", false},
		{"valid superfecta", "superfecta", false},
		{"valid daily double", "daily_double", false},

		// Empty allowed when the field is not required
		{"empty bet type allowed", "", false},

		// Case insensitive
		{"uppercase bet type", "EXACTA", false},

		{"invalid bet type", "parlay", true},
		{"typo", "quinela", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := TestStruct{
				BetType: tt.betType,
				Name:    "valid name",
				Stake:   100,
			}

			err := v.ValidateStruct(input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_NameValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name      string
		raceName  string
		wantErr   bool
	}{
		{"valid name", "Melbourne Cup", false},
		{"one char", "a", false},
		{"exactly max length", strings.Repeat("a", MaxNameLength), false},
		{"over max length", strings.Repeat("a", MaxNameLength+1), true},

		{"empty name", "", true},
		{"with newline", "race\nname", true},
		{"with tab", "race\tname", true},
		{"with null byte", "race\x00name", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := TestStruct{
				BetType: "win",
				Name:    tt.raceName,
				Stake:   100,
			}

			err := v.ValidateStruct(input)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidator_StakeValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		stake   int64
		wantErr bool
	}{
		{"valid stake", 100, false},
		{"at minimum", MinStakeValue, false},
		{"zero", 0, true},
		{"negative", -500, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := TestStruct{
				BetType: "win",
				Name:    "valid name",
				Stake:   tt.stake,
			}

			err := v.ValidateStruct(input)

			if tt.wantErr {
				assert.Error(t, err, "Expected validation error for stake=%d", tt.stake)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_MultipleFieldErrors(t *testing.T) {
	InitValidator()
	v := GetValidator()

	t.Run("all fields invalid", func(t *testing.T) {
		input := TestStruct{
			BetType: "invalid",
			Name:    "", // Required field
			Stake:   0,  // Below minimum
		}

		err := v.ValidateStruct(input)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "BetType")
		assert.Contains(t, err.Error(), "Name")
		assert.Contains(t, err.Error(), "Stake")
	})
}
