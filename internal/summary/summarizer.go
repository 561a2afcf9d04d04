// Package summary produces the human-readable digest text for each
// article: an external text-generation call when a client and budget are
// available, and a deterministic extractive fallback otherwise.
package summary

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"newsdigest/internal/logger"
	"newsdigest/internal/metrics"
	"newsdigest/internal/ratelimit"
	"newsdigest/internal/retry"
)

const (
	// Sentinels; these exact strings may appear in persisted digests, so
	// they are part of the output contract.
	insufficientContent = "Summary not available - insufficient content."
	notAvailable        = "Summary not available."

	minContentChars = 50
	maxContentChars = 8000
	minSummaryChars = 20
)

// Generator is the external text-generation call. A nil Generator is
// valid and routes every article through the extractive fallback.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Summarizer struct {
	gen     Generator
	limiter *ratelimit.Limiter
	retry   retry.Config
}

func New(gen Generator, limiter *ratelimit.Limiter, retryCfg retry.Config) *Summarizer {
	return &Summarizer{gen: gen, limiter: limiter, retry: retryCfg}
}

// Summarize returns a non-empty summary for the article text. It never
// returns an error: external failures, refusals, and low-quality output
// all degrade to the extractive fallback, and hopeless input yields a
// fixed sentinel string.
func (s *Summarizer) Summarize(ctx context.Context, url, content string, isBreaking bool, relevance float64) string {
	content = strings.TrimSpace(content)
	if utf8.RuneCountInString(content) < minContentChars {
		return insufficientContent
	}

	// Bound prompt size before any external call.
	if utf8.RuneCountInString(content) > maxContentChars {
		runes := []rune(content)
		content = string(runes[:maxContentChars]) + "..."
	}

	if s.gen == nil {
		metrics.Global.IncrementSummaryFallbacks()
		return Fallback(content, isBreaking)
	}

	if s.limiter != nil && !s.limiter.TryAcquire() {
		logger.Debug("generation budget exhausted, using fallback", "url", url)
		metrics.Global.IncrementSummaryFallbacks()
		return Fallback(content, isBreaking)
	}

	prompt := buildPrompt(content, isBreaking, relevance)

	var text string
	err := retry.WithRetry(ctx, s.retry, func() error {
		out, genErr := s.gen.Generate(ctx, prompt)
		if genErr != nil {
			return genErr
		}
		text = out
		return nil
	})
	if err != nil {
		logger.Warn("summarization failed, using fallback", "url", url, "error", err)
		metrics.Global.IncrementSummaryFallbacks()
		return Fallback(content, isBreaking)
	}

	if !acceptable(text) {
		logger.Debug("generated summary failed quality check, using fallback", "url", url)
		metrics.Global.IncrementSummaryFallbacks()
		return Fallback(content, isBreaking)
	}

	metrics.Global.IncrementSummariesGenerated()
	return strings.TrimSpace(text)
}

// acceptable rejects summaries that are too short to be useful or look
// like a model refusal.
func acceptable(text string) bool {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < minSummaryChars {
		return false
	}
	if strings.Contains(text, "I cannot") || strings.Contains(text, "unable to") {
		return false
	}
	return true
}

const promptPreamble = "You are an expert technical writer who creates concise, informative summaries for a tech-savvy audience.\n\n"

// buildPrompt picks the framing by classification: breaking news first,
// then high-relevance technical, then generic.
func buildPrompt(content string, isBreaking bool, relevance float64) string {
	content = strings.Join(strings.Fields(content), " ")

	switch {
	case isBreaking:
		return promptPreamble + fmt.Sprintf(`Summarize this breaking news article in 2-3 concise sentences, focusing on:
1. What happened (the main event/announcement)
2. Why it's significant
3. Key implications or next steps

Article: %s`, content)
	case relevance > 0.7:
		return promptPreamble + fmt.Sprintf(`Summarize this technical article in 2-3 sentences, focusing on:
1. The main technical concept or innovation
2. Practical applications or benefits
3. Target audience or use cases

Article: %s`, content)
	default:
		return promptPreamble + fmt.Sprintf(`Summarize this article in 2 clear sentences focusing on the key points and main takeaways:

Article: %s`, content)
	}
}
