package merchant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  whole foods  ", "WHOLE FOODS"},
		{"7-eleven 123", "-ELEVEN"},
		{"  starbucks   coffee  ", "STARBUCKS COFFEE"},
		{"some store CA", "SOME STORE"},
		{"GREATCLIPS NH", "GREATCLIPS"},
		{"  trader joe's #456  NY  ", "TRADER JOE'S"},
		{"AMAZON.COM", "AMAZON.COM"},
		{"some store tx", "SOME STORE"},
		{"TARGET T- AUSTIN TX", "TARGET T- AUSTIN"},
		{"IN-N-OUT BURGER", "IN-N-OUT BURGER"},
		{"PURCHASE 0924 UBER * PENDING San FranciscoCA", "UBER SAN FRANCISCOCA"},
		{"MOBILE PURCHASE 0928 VONS #2012 SAN DIEGO", "VONS SAN DIEGO"},
		{"MOBILE PURCHASE 1001 SQ *THE BELLA La Jolla", "SQ THE BELLA LA JOLLA"},
		{"CHEVRON CA123", "CHEVRON"},
		{"PENDI NETFLIX.COM", "NETFLIX.COM"},
		{"PENDINGS MARKET", "PENDINGS MARKET"},
		{"strasse", "STRASSE"},
		{"straße", "STRASSE"},
		{"", ""},
		{"   \t\n ", ""},
		{"#*123", ""},
		{"CA", ""},
		{"MONTRÉAL", "MONTRÉAL"},
		{"Café Montréal", "CAFÉ MONTRÉAL"},
		{"JOSÉPENDING SHOP", "JOSÉPENDING SHOP"},
		{"ÉPICERIE PENDING ÉTÉ", "ÉPICERIE ÉTÉ"},
		{"café du monde new orleans la", "CAFÉ DU MONDE NEW ORLEANS"},
		{"PENDING PENDING UBER", "UBER"},
		{"MOBILE-PURCHASE VONS", "- VONS"},
		{"STORE NY CA", "STORE"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"  whole foods  ",
		"7-eleven 123",
		"GREATCLIPS NH",
		"PURCHASE 0924 UBER * PENDING San FranciscoCA",
		"MOBILE PURCHASE 0928 VONS #2012 SAN DIEGO",
		"STORE NY CA",
		"AB CD",
		"-AB CD",
		"café du monde new orleans la",
		"MONTRÉAL",
		"Café Montréal QC",
		"JOSÉPENDING SHOP",
		"SQ *COFFEE  BAR  SF",
		"PENDING",
		"",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			once := Normalize(input)
			assert.Equal(t, once, Normalize(once))
		})
	}
}

func TestNormalize_StateSuffixOnlyWhenBare(t *testing.T) {
	assert.Equal(t, "SAN FRANCISCOCA", Normalize("san franciscoCA"))
	assert.Equal(t, "SAN FRANCISCO", Normalize("san francisco CA"))
	assert.Equal(t, "STORE", Normalize("store ny ca"))
}
