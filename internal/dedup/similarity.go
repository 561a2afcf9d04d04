// Package dedup flags near-duplicate articles within a single run by
// comparing normalized titles.
package dedup

import (
	"regexp"
	"strings"
)

// Not \w: RE2's \w is ASCII-only and would strip every non-Latin letter,
// collapsing Cyrillic or CJK titles to the empty string.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

func normalizeTitle(title string) string {
	title = strings.ToLower(title)
	title = nonWord.ReplaceAllString(title, "")
	return strings.Join(strings.Fields(title), " ")
}

// TitleSimilarity scores two titles in [0, 1].
type TitleSimilarity interface {
	Score(a, b string) float64
}

// ExactNormalized treats titles as duplicates only when they are
// identical after lowercasing and punctuation stripping.
type ExactNormalized struct{}

func (ExactNormalized) Score(a, b string) float64 {
	if normalizeTitle(a) == normalizeTitle(b) {
		return 1
	}
	return 0
}

// Trigram scores titles by Jaccard similarity over rune trigrams of the
// normalized text. Tolerant of small wording changes between outlets
// covering the same story.
type Trigram struct{}

func (Trigram) Score(a, b string) float64 {
	sa := trigramSet(normalizeTitle(a))
	sb := trigramSet(normalizeTitle(b))
	if len(sa) == 0 || len(sb) == 0 {
		return 0
	}

	intersection := 0
	for t := range sa {
		if sb[t] {
			intersection++
		}
	}
	union := len(sa) + len(sb) - intersection
	return float64(intersection) / float64(union)
}

func trigramSet(s string) map[string]bool {
	runes := []rune(s)
	set := make(map[string]bool)
	if len(runes) < 3 {
		if len(runes) > 0 {
			set[string(runes)] = true
		}
		return set
	}
	for i := 0; i+3 <= len(runes); i++ {
		set[string(runes[i:i+3])] = true
	}
	return set
}
