package categorizer

import (
	"context"
	"fmt"
	"time"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
)

// RecategorizeUncategorized runs every uncategorized transaction through
// Categorize and saves those that now resolve to a category. It returns the
// number of transactions updated. Transactions that stay uncategorized are
// not written.
//
// The first collaborator error stops the pass; updates already made are kept
// and counted.
func (c *Categorizer) RecategorizeUncategorized(ctx context.Context) (int, error) {
	start := time.Now()

	pending, err := c.transactions.GetAllByCategory(ctx, models.CategoryUncategorized)
	if err != nil {
		return 0, fmt.Errorf("load uncategorized transactions: %w", err)
	}

	updated := 0
	for _, tx := range pending {
		if err := ctx.Err(); err != nil {
			return updated, err
		}

		category, err := c.CategorizeTransaction(ctx, tx)
		if err != nil {
			return updated, fmt.Errorf("categorize transaction %d: %w", tx.ID, err)
		}
		if category == models.CategoryUncategorized {
			continue
		}

		if err := c.transactions.UpdateCategory(ctx, tx.ID, category); err != nil {
			return updated, fmt.Errorf("update transaction %d: %w", tx.ID, err)
		}
		updated++

		c.logger.Debug("Recategorized transaction",
			logging.Field{Key: logging.FieldTransactionID, Value: tx.ID},
			logging.Field{Key: logging.FieldCategory, Value: category})
	}

	c.logger.Info("Recategorization pass finished",
		logging.Field{Key: logging.FieldCount, Value: len(pending)},
		logging.Field{Key: logging.FieldUpdated, Value: updated},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})
	return updated, nil
}
