package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	assert.Equal(t, 100.0, Ratio("STARBUCKS", "STARBUCKS"))
	assert.Equal(t, 100.0, Ratio("", ""))
	assert.Equal(t, 0.0, Ratio("ABC", ""))
	assert.Equal(t, 0.0, Ratio("ABC", "XYZ"))
	assert.InDelta(t, 94.12, Ratio("STARBUCK", "STARBUCKS"), 0.01)
	assert.Equal(t, Ratio("NETFLIX", "NETFLX"), Ratio("NETFLX", "NETFLIX"))
}

func TestRatio_CountsRunes(t *testing.T) {
	assert.InDelta(t, 75.0, Ratio("CAFÉ", "CAFE"), 0.01)
}

func TestPartialRatio(t *testing.T) {
	assert.Equal(t, 100.0, PartialRatio("VONS", "VONS SAN DIEGO"))
	assert.Equal(t, 100.0, PartialRatio("VONS SAN DIEGO", "VONS"))
	assert.Equal(t, 0.0, PartialRatio("", "VONS"))
	assert.Less(t, PartialRatio("SBUX", "STARBUCKS"), 60.0)
}

func TestTokenSortRatio(t *testing.T) {
	assert.Equal(t, 100.0, TokenSortRatio("SAN DIEGO VONS", "VONS SAN DIEGO"))
	assert.Less(t, Ratio("SAN DIEGO VONS", "VONS SAN DIEGO"), 100.0)
}

func TestTokenSetRatio(t *testing.T) {
	assert.Equal(t, 100.0, TokenSetRatio("VONS", "VONS SAN DIEGO"))
	assert.Equal(t, 100.0, TokenSetRatio("DIEGO VONS SAN", "VONS SAN DIEGO"))
	assert.Less(t, TokenSetRatio("VONS LA JOLLA", "VONS SAN DIEGO"), 100.0)
}

func TestWeightedRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		min  float64
		max  float64
	}{
		{name: "identical", a: "NETFLIX", b: "NETFLIX", min: 100, max: 100},
		{name: "one letter missing", a: "STARBUCK", b: "STARBUCKS", min: 90, max: 95},
		{name: "abbreviation", a: "SBUX", b: "STARBUCKS", min: 0, max: 60},
		{name: "unrelated", a: "TOTALLY UNRELATED STORE", b: "STARBUCKS", min: 0, max: 60},
		{name: "empty", a: "", b: "STARBUCKS", min: 0, max: 0},
		{name: "reordered tokens", a: "DIEGO SAN VONS", b: "VONS SAN DIEGO", min: 94.9, max: 95.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := WeightedRatio(tt.a, tt.b)
			assert.GreaterOrEqual(t, score, tt.min)
			assert.LessOrEqual(t, score, tt.max)
		})
	}
}
