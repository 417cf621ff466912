package categorizer

import (
	"context"
	"fmt"

	"fjacquet/expense-tracker/internal/logging"
)

// ExactMatchStrategy looks the merchant key up in the directory as is.
type ExactMatchStrategy struct {
	directory MerchantDirectory
	logger    logging.Logger
}

// NewExactMatchStrategy creates a new ExactMatchStrategy.
func NewExactMatchStrategy(directory MerchantDirectory, logger logging.Logger) *ExactMatchStrategy {
	return &ExactMatchStrategy{directory: directory, logger: logging.OrDefault(logger)}
}

// Name returns the name of this strategy.
func (s *ExactMatchStrategy) Name() string {
	return "ExactMatch"
}

// Categorize implements CategorizationStrategy.
func (s *ExactMatchStrategy) Categorize(ctx context.Context, key string) (string, bool, error) {
	entry, found, err := s.directory.GetCategory(ctx, key)
	if err != nil {
		return "", false, fmt.Errorf("exact lookup of %q: %w", key, err)
	}
	if !found {
		return "", false, nil
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
		logging.Field{Key: logging.FieldMerchantKey, Value: key},
		logging.Field{Key: logging.FieldCategory, Value: entry.Category},
	).Debug("Merchant categorized by exact key")
	return entry.Category, true, nil
}
