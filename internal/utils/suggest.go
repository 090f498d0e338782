package utils

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the candidate closest to word by edit distance, or ""
// when nothing is close enough to be a plausible typo. Ties prefer a
// candidate that starts with word, then the earlier candidate.
func Suggest(word string, candidates []string) string {
	if word == "" {
		return ""
	}
	maxDist := len(word)/3 + 1

	best := ""
	bestDist := maxDist + 1
	bestPrefix := false
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(word), strings.ToLower(c))
		if d > maxDist {
			continue
		}
		prefix := strings.HasPrefix(strings.ToLower(c), strings.ToLower(word))
		if d < bestDist || (d == bestDist && prefix && !bestPrefix) {
			best, bestDist, bestPrefix = c, d, prefix
		}
	}
	return best
}
