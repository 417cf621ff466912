package categorizer

import "context"

// CategorizationStrategy resolves a merchant key to a category.
// Strategies are tried in order; the first one that finds a category wins.
type CategorizationStrategy interface {
	// Categorize looks up key. It returns the category and true on success,
	// or false when this strategy has no answer. Errors come only from the
	// underlying directory.
	Categorize(ctx context.Context, key string) (string, bool, error)

	// Name returns the name of this strategy for logging.
	Name() string
}
