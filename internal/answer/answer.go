// Package answer normalizes free-text answers and checks them against a
// card's accepted answers.
package answer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Result is the outcome of checking one input against a card.
type Result struct {
	IsCorrect       bool
	MatchedAnswer   string
	NormalizedInput string
}

// Normalize folds an answer for comparison: NFKC (which also folds
// full-width/half-width forms), trimmed, lowercased. Kana scripts are not
// bridged: hiragana and katakana stay distinct.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(s)))
}

// Check compares input against the accepted answers. The match is exact
// after normalization on both sides; the first accepted answer that
// matches is reported verbatim.
func Check(answers []string, input string) Result {
	normalized := Normalize(input)
	for _, a := range answers {
		if Normalize(a) == normalized {
			return Result{IsCorrect: true, MatchedAnswer: a, NormalizedInput: normalized}
		}
	}
	return Result{NormalizedInput: normalized}
}
