package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionBuilder(t *testing.T) {
	builder := NewTransactionBuilder()

	assert.NotNil(t, builder)
	assert.Nil(t, builder.err)
	assert.Equal(t, CategoryUncategorized, builder.tx.Category)
	assert.True(t, builder.tx.Amount.IsZero())
}

func TestTransactionBuilder_WithDate(t *testing.T) {
	tests := []struct {
		name         string
		dateStr      string
		layout       string
		expectError  bool
		expectedDate string
	}{
		{
			name:         "default layout",
			dateStr:      "2025-01-15",
			expectedDate: "2025-01-15",
		},
		{
			name:         "statement layout",
			dateStr:      "01/15/25",
			layout:       "01/02/06",
			expectedDate: "2025-01-15",
		},
		{
			name:        "empty date",
			dateStr:     "",
			expectError: true,
		},
		{
			name:        "garbage",
			dateStr:     "yesterday",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := NewTransactionBuilder().WithDate(tt.dateStr, tt.layout).Build()
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedDate, tx.FormattedDate())
		})
	}
}

func TestTransactionBuilder_WithAmountFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{input: "-12.50", expected: "-12.5"},
		{input: "1,024.00", expected: "1024"},
		{input: "$5.25", expected: "5.25"},
		{input: "(42.10)", expected: "-42.1"},
		{input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tx, err := NewTransactionBuilder().
				WithDate("2025-03-01", "").
				WithAmountFromString(tt.input).
				Build()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(tx.Amount), "got %s", tx.Amount)
		})
	}
}

func TestTransactionBuilder_FirstErrorWins(t *testing.T) {
	_, err := NewTransactionBuilder().
		WithDate("", "").
		WithAmountFromString("oops").
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date cannot be empty")
}

func TestTransactionBuilder_Complete(t *testing.T) {
	date := time.Date(2025, 9, 28, 0, 0, 0, 0, time.UTC)
	tx, err := NewTransactionBuilder().
		WithID(7).
		WithDateFromTime(date).
		WithAmount(decimal.NewFromFloat(-5)).
		WithDescription("VONS #2012").
		WithCategory("  ").
		Build()

	require.NoError(t, err)
	assert.Equal(t, int64(7), tx.ID)
	assert.Equal(t, date, tx.Date)
	assert.Equal(t, "VONS #2012", tx.Description)
	assert.Equal(t, CategoryUncategorized, tx.Category)
}

func TestTransactionBuilder_MissingDate(t *testing.T) {
	_, err := NewTransactionBuilder().WithDescription("x").Build()
	assert.Error(t, err)
}
