// Package fuzzy finds the closest known merchant key for a key that has no
// exact entry in the merchant directory.
package fuzzy

import (
	"sort"
	"strings"
)

// Scorer rates the similarity of two strings on a 0-100 scale.
type Scorer func(a, b string) float64

// Ratio is the normalized indel similarity: 100 * 2*LCS / (len(a)+len(b)).
// Two empty strings are identical.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	return ratioRunes(ra, rb)
}

func ratioRunes(a, b []rune) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 100
	}
	return 100 * float64(2*lcsLength(a, b)) / float64(total)
}

// lcsLength returns the length of the longest common subsequence.
func lcsLength(a, b []rune) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// PartialRatio is the best Ratio of the shorter string against every
// window of the same length in the longer one.
func PartialRatio(a, b string) float64 {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		return 0
	}

	best := 0.0
	for start := 0; start+len(short) <= len(long); start++ {
		score := ratioRunes(short, long[start:start+len(short)])
		if score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}
	return best
}

// TokenSortRatio compares the strings after sorting their whitespace tokens.
func TokenSortRatio(a, b string) float64 {
	return Ratio(sortedTokens(a), sortedTokens(b))
}

// TokenSetRatio compares the shared tokens against each side's remainder,
// so "VONS" and "VONS SAN DIEGO" score 100.
func TokenSetRatio(a, b string) float64 {
	tokensA := tokenSet(a)
	tokensB := tokenSet(b)

	var common, onlyA, onlyB []string
	for token := range tokensA {
		if tokensB[token] {
			common = append(common, token)
		} else {
			onlyA = append(onlyA, token)
		}
	}
	for token := range tokensB {
		if !tokensA[token] {
			onlyB = append(onlyB, token)
		}
	}
	sort.Strings(common)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	if len(common) > 0 && (len(onlyA) == 0 || len(onlyB) == 0) {
		return 100
	}

	sect := strings.Join(common, " ")
	combinedA := strings.TrimSpace(sect + " " + strings.Join(onlyA, " "))
	combinedB := strings.TrimSpace(sect + " " + strings.Join(onlyB, " "))

	return max(Ratio(sect, combinedA), Ratio(sect, combinedB), Ratio(combinedA, combinedB))
}

// WeightedRatio blends the scorers above by length ratio, the way
// approximate-matching libraries usually default. Empty input scores 0.
func WeightedRatio(a, b string) float64 {
	lenA, lenB := len([]rune(a)), len([]rune(b))
	if lenA == 0 || lenB == 0 {
		return 0
	}

	lenRatio := float64(max(lenA, lenB)) / float64(min(lenA, lenB))
	best := Ratio(a, b)

	if lenRatio < 1.5 {
		return max(best, TokenSortRatio(a, b)*0.95, TokenSetRatio(a, b)*0.95)
	}

	partialScale := 0.9
	if lenRatio >= 8 {
		partialScale = 0.6
	}
	best = max(best, PartialRatio(a, b)*partialScale)
	partialToken := PartialRatio(sortedTokens(a), sortedTokens(b))
	return max(best, partialToken*0.95*partialScale)
}

func sortedTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range strings.Fields(s) {
		set[token] = true
	}
	return set
}
