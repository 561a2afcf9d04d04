package summary

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// Verbs that mark the load-bearing sentence of a breaking story.
var actionVerbs = []string{
	"announced", "launched", "released", "acquired", "raised", "partnered",
}

// Fallback builds a deterministic extractive summary: keep substantial
// sentences, prefer action-verb sentences for breaking news, then join the
// first two well-sized ones. It never returns an empty string.
func Fallback(content string, isBreaking bool) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return notAvailable
	}

	raw := sentenceSplit.Split(strings.ReplaceAll(content, "\n", " "), -1)
	sentences := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if utf8.RuneCountInString(s) > 20 {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) == 0 {
		return notAvailable
	}

	if isBreaking {
		sentences = prioritizeActionSentences(sentences)
	}

	var picked []string
	for _, s := range sentences[:min(5, len(sentences))] {
		if n := utf8.RuneCountInString(s); n > 30 && n < 200 {
			picked = append(picked, s)
			if len(picked) >= 2 {
				break
			}
		}
	}
	if len(picked) == 0 {
		picked = sentences[:min(2, len(sentences))]
	}

	result := strings.Join(picked, ". ") + "."
	result = strings.Join(strings.Fields(result), " ")

	if utf8.RuneCountInString(result) <= minSummaryChars {
		return notAvailable
	}
	return result
}

// prioritizeActionSentences moves sentences mentioning an action verb
// (checked within the first 10 sentences) to the front, preserving
// relative order in both groups.
func prioritizeActionSentences(sentences []string) []string {
	checked := min(10, len(sentences))
	priority := make(map[int]bool, checked)

	for i := 0; i < checked; i++ {
		lower := strings.ToLower(sentences[i])
		for _, verb := range actionVerbs {
			if strings.Contains(lower, verb) {
				priority[i] = true
				break
			}
		}
	}
	if len(priority) == 0 {
		return sentences
	}

	reordered := make([]string, 0, len(sentences))
	for i := 0; i < checked; i++ {
		if priority[i] {
			reordered = append(reordered, sentences[i])
		}
	}
	for i, s := range sentences {
		if !priority[i] {
			reordered = append(reordered, s)
		}
	}
	return reordered
}
