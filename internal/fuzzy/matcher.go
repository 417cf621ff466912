package fuzzy

// DefaultThreshold is the minimum score a candidate needs to count as a match.
const DefaultThreshold = 90

// Matcher picks the closest candidate for a key. Implementations backed by
// other approximate-matching libraries can be swapped in behind it.
type Matcher interface {
	// Match returns the best-scoring candidate when its score is at least
	// threshold. An empty candidate list never matches.
	Match(key string, candidates []string, threshold int) (string, bool)
}

// BestMatcher scores every candidate with a Scorer and keeps the highest.
// On equal scores the earliest candidate wins.
type BestMatcher struct {
	scorer Scorer
}

// NewMatcher creates a BestMatcher. A nil scorer means WeightedRatio.
func NewMatcher(scorer Scorer) *BestMatcher {
	if scorer == nil {
		scorer = WeightedRatio
	}
	return &BestMatcher{scorer: scorer}
}

// Match implements Matcher.
func (m *BestMatcher) Match(key string, candidates []string, threshold int) (string, bool) {
	best := ""
	bestScore := -1.0
	for _, candidate := range candidates {
		score := m.scorer(key, candidate)
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}

	if bestScore < float64(threshold) {
		return "", false
	}
	return best, true
}

// Score exposes the configured scorer, mostly for diagnostics.
func (m *BestMatcher) Score(a, b string) float64 {
	return m.scorer(a, b)
}
