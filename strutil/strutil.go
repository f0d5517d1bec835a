// Package strutil provides string normalization and similarity helpers used
// for matching column and block names that were typed by hand.
package strutil

import (
	"strings"

	"github.com/agext/levenshtein"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns s in Unicode NFKC form with surrounding whitespace
// removed and interior whitespace runs collapsed to single spaces.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	return strings.Join(strings.Fields(s), " ")
}

// Fold is Normalize plus lowercasing, for case-insensitive comparison.
func Fold(s string) string {
	return strings.ToLower(Normalize(s))
}

// Similarity scores how alike two strings are after folding, from 0 (no
// resemblance) to 1 (identical).
func Similarity(a, b string) float64 {
	return levenshtein.Similarity(Fold(a), Fold(b), levenshtein.NewParams())
}

// MostSimilar returns the candidate most similar to s and its score. An
// empty candidate list yields ("", 0).
func MostSimilar(s string, candidates []string) (string, float64) {
	best := ""
	bestScore := 0.0
	for _, c := range candidates {
		if score := Similarity(s, c); score > bestScore {
			best, bestScore = c, score
		}
	}
	return best, bestScore
}
