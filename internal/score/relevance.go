// Package score implements the pure per-article classifiers: relevance,
// breaking-news detection, and sentiment.
package score

import (
	"strings"
	"unicode/utf8"
)

// Domain keywords that establish baseline AI/tech relevance regardless of
// source configuration.
var domainKeywords = []string{
	"artificial intelligence", "ai", "machine learning", "ml", "deep learning",
	"neural network", "llm", "large language model", "gpt", "transformer",
	"chatbot", "generative", "computer vision", "nlp", "natural language",
	"automation", "robotics", "algorithm", "data science", "predictive",
	"classification", "regression", "reinforcement learning", "supervised",
	"unsupervised", "tensorflow", "pytorch", "hugging face", "openai",
	"anthropic", "google ai", "microsoft ai", "nvidia ai", "stable diffusion",
	"midjourney", "dalle", "claude", "bard", "copilot", "embedding",
	"fine-tuning", "prompt engineering", "rag", "vector database",
}

// Terms that indicate technical depth in longer articles.
var technicalTerms = []string{
	"api", "framework", "algorithm", "model", "data", "system", "platform",
}

// Relevance scores an article in [0, 1] from keyword and topic overlap.
// Each term is capped independently before summing:
//
//	domain keywords  x0.10, cap 0.50
//	source topics    x0.15, cap 0.30
//	custom keywords  x0.10, cap 0.20
//	technical terms  x0.05, cap 0.20 (only when combined text > 2000 chars)
//
// Text under 500 chars is penalized by x0.7 after summing. Matching is
// case-insensitive substring containment; missing content is treated as
// empty.
func Relevance(title, content string, topics, keywords []string) float64 {
	text := strings.ToLower(title + " " + content)

	score := min(float64(countContained(text, domainKeywords))*0.1, 0.5)
	score += min(float64(countContainedFold(text, topics))*0.15, 0.3)
	score += min(float64(countContainedFold(text, keywords))*0.1, 0.2)

	length := utf8.RuneCountInString(text)

	if length > 2000 {
		score += min(float64(countContained(text, technicalTerms))*0.05, 0.2)
	}

	if length < 500 {
		score *= 0.7
	}

	if score > 1.0 {
		score = 1.0
	}
	if score < 0 {
		score = 0
	}
	return score
}

// countContained counts how many of the (already lowercase) needles occur
// in text.
func countContained(text string, needles []string) int {
	count := 0
	for _, needle := range needles {
		if needle != "" && strings.Contains(text, needle) {
			count++
		}
	}
	return count
}

// countContainedFold lowercases each needle before matching; used for
// caller-supplied topic and keyword lists.
func countContainedFold(text string, needles []string) int {
	count := 0
	for _, needle := range needles {
		needle = strings.ToLower(strings.TrimSpace(needle))
		if needle != "" && strings.Contains(text, needle) {
			count++
		}
	}
	return count
}
