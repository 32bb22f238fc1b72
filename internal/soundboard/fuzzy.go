package soundboard

import (
	"strings"
	"unicode"
)

// tokenSetScore scores how well a search matches a clip name, 0..1. Both
// strings are normalized and split into word tokens; each search token
// contributes the similarity of its closest name token, so word order and
// extra words in the name barely matter.
func tokenSetScore(search, name string) float64 {
	searchTokens := tokenize(search)
	nameTokens := tokenize(name)
	if len(searchTokens) == 0 || len(nameTokens) == 0 {
		return 0
	}

	total := 0.0
	for _, st := range searchTokens {
		best := 0.0
		for _, nt := range nameTokens {
			if s := similarity(st, nt); s > best {
				best = s
			}
		}
		total += best
	}
	return total / float64(len(searchTokens))
}

// tokenize lowercases and splits on anything that is not a letter or digit.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// similarity converts Levenshtein distance to a 0..1 score where 1 means
// identical.
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	dist := levenshteinDistance(a, b)
	maxLen := max(len([]rune(a)), len([]rune(b)))
	return 1.0 - float64(dist)/float64(maxLen)
}

func levenshteinDistance(a, b string) int {
	runesA := []rune(a)
	runesB := []rune(b)
	lenA := len(runesA)
	lenB := len(runesB)

	// Two rolling rows are enough.
	prev := make([]int, lenB+1)
	curr := make([]int, lenB+1)
	for j := 0; j <= lenB; j++ {
		prev[j] = j
	}

	for i := 1; i <= lenA; i++ {
		curr[0] = i
		for j := 1; j <= lenB; j++ {
			cost := 1
			if runesA[i-1] == runesB[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[lenB]
}
