package score

import (
	"regexp"
	"strings"
)

// Indicator phrases that mark an article as breaking news on their own.
var breakingIndicators = []string{
	"breaking", "urgent", "just in", "developing", "alert", "emergency",
	"critical", "major", "significant", "important update", "announcement",
	"launches", "releases", "acquires", "partnership", "funding", "ipo",
	"vulnerability", "breach", "outage", "incident", "crisis",
}

// Patterns for launch, funding, acquisition, and IPO phrasing. The input
// is lowercased before matching.
var breakingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(announced|launches|released|introduces)\b.*\b(today|yesterday|this week)\b`),
	regexp.MustCompile(`\$\d+[mb].*\b(funding|investment|round)\b`),
	regexp.MustCompile(`\b(acquired|acquisition|merger)\b`),
	regexp.MustCompile(`\b(ipo|public offering)\b`),
}

// Breaking reports whether the article reads like breaking news: a fixed
// indicator phrase, any source-supplied keyword, or one of the pattern
// matches. It short-circuits on the first hit.
func Breaking(title, content string, keywords []string) bool {
	text := strings.ToLower(title) + " " + strings.ToLower(content)

	for _, indicator := range breakingIndicators {
		if strings.Contains(text, indicator) {
			return true
		}
	}

	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword != "" && strings.Contains(text, keyword) {
			return true
		}
	}

	for _, pattern := range breakingPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}

	return false
}
