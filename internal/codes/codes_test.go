package codes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smt-joen/plunet2peppol/internal/codes"
)

func TestCountryCode(t *testing.T) {
	tests := []struct {
		name     string
		country  string
		fallback string
		expected string
	}{
		{"english name", "Sweden", "", "SE"},
		{"swedish name", "Sverige", "", "SE"},
		{"finland", "Finland", "", "FI"},
		{"empty resolves fallback", "", "Sweden", "SE"},
		{"empty with finnish fallback", "", "Finland", "FI"},
		{"unknown name falls back", "Atlantis", "Sweden", "SE"},
		{"unknown name and fallback", "Atlantis", "Lemuria", "SE"},
		{"no fallback configured", "", "", "SE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, codes.CountryCode(tt.country, tt.fallback))
		})
	}
}

func TestUnitCode(t *testing.T) {
	tests := []struct {
		label    string
		expected string
	}{
		{"hours", "HUR"},
		{"Hours", "HUR"},
		{"timmar", "HUR"},
		{"percent", "P1"},
		{"procent", "P1"},
		{"fixed rate", "1I"},
		{"fast summa", "1I"},
		{"minutes", "MIN"},
		{"minuter", "MIN"},
		{"words", "D68"},
		{"ord", "D68"},
		{"widgets", "EA"},
		{"", "EA"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, codes.UnitCode(tt.label), "label %q", tt.label)
	}
}
