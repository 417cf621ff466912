package add_test

import (
	"bytes"
	"context"
	"testing"

	"fjacquet/expense-tracker/cmd/add"
	"fjacquet/expense-tracker/internal/categorizer"
	"fjacquet/expense-tracker/internal/fuzzy"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorkflow(ledger *store.MemoryLedger) *categorizer.Workflow {
	logger := logging.NewMockLogger()
	directory := store.NewMemoryDirectory(map[string]string{"STARBUCKS": "Coffee"})
	cat := categorizer.NewCategorizer(directory, ledger, nil, fuzzy.DefaultThreshold, logger)
	return categorizer.NewWorkflow(cat, ledger, true, logger)
}

func TestAddCommand_Flags(t *testing.T) {
	assert.Equal(t, "add", add.Cmd.Use)
	for _, name := range []string{"date", "description", "amount", "category"} {
		assert.NotNil(t, add.Cmd.Flags().Lookup(name), name)
	}
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	ledger := store.NewMemoryLedger()
	workflow := newWorkflow(ledger)

	var out bytes.Buffer
	require.NoError(t, add.Run(ctx, workflow, &out, add.Options{
		Date:        "2025-10-04",
		Description: "STARBUCKS #88",
		Amount:      "-4.25",
	}))
	assert.Contains(t, out.String(), "2025-10-04")
	assert.Contains(t, out.String(), "-4.25")
	assert.Contains(t, out.String(), "Coffee")

	out.Reset()
	require.NoError(t, add.Run(ctx, workflow, &out, add.Options{
		Date:        "10/05/2025",
		DateLayout:  "01/02/2006",
		Description: "Landlord",
		Amount:      "(1800)",
		Category:    "Housing",
	}))
	assert.Contains(t, out.String(), "2025-10-05")
	assert.Contains(t, out.String(), "Housing")

	count, err := ledger.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRun_DefaultsToToday(t *testing.T) {
	ledger := store.NewMemoryLedger()
	var out bytes.Buffer
	require.NoError(t, add.Run(context.Background(), newWorkflow(ledger), &out, add.Options{Description: "x", Amount: "-1"}))

	all, err := ledger.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].Date.IsZero())
}

func TestRun_InvalidInput(t *testing.T) {
	ledger := store.NewMemoryLedger()
	workflow := newWorkflow(ledger)
	var out bytes.Buffer

	assert.Error(t, add.Run(context.Background(), workflow, &out, add.Options{Date: "yesterday", Description: "x", Amount: "-1"}))
	assert.Error(t, add.Run(context.Background(), workflow, &out, add.Options{Date: "2025-10-04", Description: "x", Amount: "a lot"}))

	count, err := ledger.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}
