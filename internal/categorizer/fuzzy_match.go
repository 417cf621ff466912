package categorizer

import (
	"context"
	"fmt"

	"fjacquet/expense-tracker/internal/fuzzy"
	"fjacquet/expense-tracker/internal/logging"
)

// FuzzyMatchStrategy finds the closest known merchant key and returns its
// category when the similarity reaches the threshold.
type FuzzyMatchStrategy struct {
	directory MerchantDirectory
	matcher   fuzzy.Matcher
	threshold int
	logger    logging.Logger
}

// NewFuzzyMatchStrategy creates a new FuzzyMatchStrategy. A nil matcher
// uses the default weighted scorer.
func NewFuzzyMatchStrategy(directory MerchantDirectory, matcher fuzzy.Matcher, threshold int, logger logging.Logger) *FuzzyMatchStrategy {
	if matcher == nil {
		matcher = fuzzy.NewMatcher(nil)
	}
	return &FuzzyMatchStrategy{
		directory: directory,
		matcher:   matcher,
		threshold: threshold,
		logger:    logging.OrDefault(logger),
	}
}

// Name returns the name of this strategy.
func (s *FuzzyMatchStrategy) Name() string {
	return "FuzzyMatch"
}

// Categorize implements CategorizationStrategy.
func (s *FuzzyMatchStrategy) Categorize(ctx context.Context, key string) (string, bool, error) {
	entries, err := s.directory.GetAllEntries(ctx)
	if err != nil {
		return "", false, fmt.Errorf("list merchant keys: %w", err)
	}
	if len(entries) == 0 {
		return "", false, nil
	}

	candidates := make([]string, 0, len(entries))
	for _, entry := range entries {
		candidates = append(candidates, entry.MerchantKey)
	}

	match, ok := s.matcher.Match(key, candidates, s.threshold)
	if !ok {
		return "", false, nil
	}

	entry, found, err := s.directory.GetCategory(ctx, match)
	if err != nil {
		return "", false, fmt.Errorf("lookup of matched key %q: %w", match, err)
	}
	if !found {
		return "", false, nil
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
		logging.Field{Key: logging.FieldMerchantKey, Value: key},
		logging.Field{Key: logging.FieldMatchedKey, Value: match},
		logging.Field{Key: logging.FieldCategory, Value: entry.Category},
	).Debug("Merchant categorized by fuzzy match")
	return entry.Category, true, nil
}
