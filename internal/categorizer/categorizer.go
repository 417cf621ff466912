// Package categorizer assigns categories to transactions from the merchant
// directory and re-applies what it learns to the uncategorized backlog.
//
// Categorization order:
//  1. Positive amounts are income, no lookup is made
//  2. Exact match on the normalized merchant key
//  3. Fuzzy match against every known merchant key
//
// Anything else is left uncategorized.
package categorizer

import (
	"context"
	"fmt"

	"fjacquet/expense-tracker/internal/fuzzy"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/merchant"
	"fjacquet/expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// Categorizer resolves descriptions to categories and records manual choices.
type Categorizer struct {
	directory    MerchantDirectory
	transactions TransactionStore
	strategies   []CategorizationStrategy
	logger       logging.Logger
}

// NewCategorizer creates a Categorizer over the given directory and store.
// A nil matcher uses the default weighted scorer.
func NewCategorizer(directory MerchantDirectory, transactions TransactionStore, matcher fuzzy.Matcher, threshold int, logger logging.Logger) *Categorizer {
	logger = logging.OrDefault(logger)
	return &Categorizer{
		directory:    directory,
		transactions: transactions,
		strategies: []CategorizationStrategy{
			NewExactMatchStrategy(directory, logger),
			NewFuzzyMatchStrategy(directory, matcher, threshold, logger),
		},
		logger: logger,
	}
}

// Categorize returns the category for a transaction description.
// It only fails when the merchant directory does.
func (c *Categorizer) Categorize(ctx context.Context, description string, amount decimal.Decimal) (string, error) {
	if amount.IsPositive() {
		return models.CategoryIncome, nil
	}

	key := merchant.Normalize(description)
	for _, strategy := range c.strategies {
		category, found, err := strategy.Categorize(ctx, key)
		if err != nil {
			return "", err
		}
		if found {
			return category, nil
		}
	}

	c.logger.Debug("No category found for merchant",
		logging.Field{Key: logging.FieldMerchantKey, Value: key})
	return models.CategoryUncategorized, nil
}

// CategorizeTransaction is Categorize applied to tx's description and amount.
func (c *Categorizer) CategorizeTransaction(ctx context.Context, tx models.Transaction) (string, error) {
	return c.Categorize(ctx, tx.Description, tx.Amount)
}

// RecordCategoryChoice stores category for the merchant behind description,
// replacing any earlier choice for the same merchant key.
func (c *Categorizer) RecordCategoryChoice(ctx context.Context, description, category string) error {
	entry := models.MerchantCategory{
		MerchantKey: merchant.Normalize(description),
		Category:    category,
	}
	if err := c.directory.SetCategory(ctx, entry); err != nil {
		return fmt.Errorf("record category for %q: %w", entry.MerchantKey, err)
	}

	c.logger.Info("Learned merchant category",
		logging.Field{Key: logging.FieldMerchantKey, Value: entry.MerchantKey},
		logging.Field{Key: logging.FieldCategory, Value: entry.Category})
	return nil
}
