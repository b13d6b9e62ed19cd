package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/antzucaro/matchr"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

var rankRegex = regexp.MustCompile(`\[\d+\]`)

// RemoveRank strips league rank markers like "[3]" from a team name.
func RemoveRank(name string) string {
	return strings.TrimSpace(rankRegex.ReplaceAllString(name, ""))
}

// HanOnly keeps only the Han characters of s.
func HanOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ClosestName returns the index of the candidate most similar to name
// (exact normalized matches first, then jaro-winkler), -1 if there are no candidates.
func ClosestName(name string, candidates []string) (int, float64) {
	target := NormalizeName(RemoveRank(name))
	for i, c := range candidates {
		if NormalizeName(RemoveRank(c)) == target {
			return i, 1
		}
	}

	best := -1
	var bestSimilarity float64
	for i, c := range candidates {
		similarity := matchr.JaroWinkler(target, NormalizeName(RemoveRank(c)), false)
		if similarity > bestSimilarity {
			bestSimilarity = similarity
			best = i
		}
	}
	return best, bestSimilarity
}
