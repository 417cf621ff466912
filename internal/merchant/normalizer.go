// Package merchant turns raw bank-statement descriptions into merchant keys.
//
// A merchant key groups the many variants a bank prints for the same merchant
// ("MOBILE PURCHASE 0928 VONS #2012 SAN DIEGO", "VONS #1187 SAN DIEGO") under
// one identity so that a category learned for one applies to the others.
package merchant

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	digitsPattern  = regexp.MustCompile(`\p{Nd}+`)
	symbolsPattern = regexp.MustCompile(`[#*]`)

	// Tokens banks add around the merchant name. Removed in this order.
	noisePatterns = []*regexp.Regexp{
		noiseWord("PENDING"),
		noiseWord("PENDI"),
		noiseWord("MOBILE"),
		noiseWord("PURCHASE"),
	}

	// A bare two-letter token at the very end, usually a US state code.
	// "SAN FRANCISCOCA" and "MONTRÉAL" do not match and keep their suffix.
	stateSuffixPattern = regexp.MustCompile(`(^|` + nonWord + `)[A-Z]{2}$`)
)

// RE2's \b only knows ASCII word characters, so word edges are spelled out
// against Unicode letters and digits.
const nonWord = `[^\p{L}\p{N}_]`

func noiseWord(word string) *regexp.Regexp {
	return regexp.MustCompile(`(^|` + nonWord + `)` + word + `(` + nonWord + `|$)`)
}

// replaceAll applies pattern until the key stops changing. Matches consume
// their delimiters, so adjacent tokens ("PENDING PENDING") need another pass.
func replaceAll(pattern *regexp.Regexp, key, repl string) string {
	for {
		next := pattern.ReplaceAllString(key, repl)
		if next == key {
			return key
		}
		key = next
	}
}

// Normalize returns the merchant key for a raw description. It never fails;
// the result may be empty when nothing survives the stripping.
//
// Steps, in order: uppercase, drop digits, drop '#' and '*', drop the noise
// words, drop trailing two-letter tokens, collapse whitespace. Digits go
// before the state check, so "CA123" ends up stripped as "CA".
//
// Every trailing two-letter token is dropped, not just the last one:
// "STORE NY CA" becomes "STORE". Directories keyed by a single-strip
// normalizer hold "STORE NY" for that description and need their keys
// re-normalized (merchants export, then import) before they match.
func Normalize(description string) string {
	// cases.Caser is stateful, so one per call.
	key := cases.Upper(language.Und).String(description)
	key = digitsPattern.ReplaceAllString(key, "")
	key = symbolsPattern.ReplaceAllString(key, "")

	for _, pattern := range noisePatterns {
		key = strings.TrimSpace(replaceAll(pattern, key, "${1}${2}"))
	}

	// Repeat until no suffix is left so Normalize(Normalize(s)) == Normalize(s).
	for {
		stripped := strings.TrimSpace(stateSuffixPattern.ReplaceAllString(key, "${1}"))
		if stripped == key {
			break
		}
		key = stripped
	}

	return strings.Join(strings.Fields(key), " ")
}
