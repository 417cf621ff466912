package learn_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"fjacquet/expense-tracker/cmd/learn"
	"fjacquet/expense-tracker/internal/categorizer"
	"fjacquet/expense-tracker/internal/fuzzy"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLearnCommand_Flags(t *testing.T) {
	assert.Equal(t, "learn", learn.Cmd.Use)
	for _, name := range []string{"description", "category", "recategorize"} {
		assert.NotNil(t, learn.Cmd.Flags().Lookup(name), name)
	}
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	directory := store.NewMemoryDirectory(nil)
	ledger := store.NewMemoryLedger(models.Transaction{
		Date:        time.Date(2025, time.October, 2, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromInt(-16),
		Description: "NETFLIX.COM",
	})
	cat := categorizer.NewCategorizer(directory, ledger, nil, fuzzy.DefaultThreshold, logging.NewMockLogger())

	var out bytes.Buffer
	require.NoError(t, learn.Run(ctx, cat, &out, "Netflix.com CA", "Subscriptions", false))
	assert.Equal(t, "Learned NETFLIX.COM -> Subscriptions\n", out.String())
	assert.Zero(t, ledger.UpdateCategoryCalls)

	out.Reset()
	require.NoError(t, learn.Run(ctx, cat, &out, "netflix.com", "Subscriptions", true))
	assert.Contains(t, out.String(), "Recategorized 1 transaction(s)")
}
