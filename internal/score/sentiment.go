package score

import (
	"strings"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

// Sentiment returns the VADER compound polarity of the text, a finite
// value in [-1, 1]. Empty input scores 0. The lexicon backend is
// deterministic: identical input always yields the identical score.
func Sentiment(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	return sentitext.PolarityScore(parsed).Compound
}
