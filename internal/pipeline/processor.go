// Package pipeline drives a run: fetch each source, filter and score its
// entries, then merge, deduplicate and rank the combined result.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"newsdigest/internal/article"
	"newsdigest/internal/config"
	"newsdigest/internal/feed"
	"newsdigest/internal/logger"
	"newsdigest/internal/metrics"
	"newsdigest/internal/score"
	"newsdigest/internal/store"
	"newsdigest/internal/summary"
)

// Articles with relevance below this are dropped unless classified as
// breaking news.
const minRelevance = 0.3

// ContentExtractor fetches readable body text for an article URL.
type ContentExtractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// Processor turns one configured source into scored articles.
type Processor struct {
	Fetcher    feed.Fetcher
	Extractor  ContentExtractor
	Summarizer *summary.Summarizer
	Dates      *article.Normalizer
	Seen       *store.HashSet
}

// Result is the outcome for a single source. Err is set when the source
// could not be fetched at all; partial per-entry failures are absorbed.
type Result struct {
	Source   string
	Articles []article.Article
	Err      error
}

// Process fetches one source and returns its admitted articles. Entries
// older than cutoff, already seen, or below the relevance gate are
// skipped.
func (p *Processor) Process(ctx context.Context, src config.Source, cutoff time.Time) Result {
	if !strings.EqualFold(src.Type, "rss") {
		return Result{Source: src.Name, Err: fmt.Errorf("unsupported source type %q", src.Type)}
	}

	parsed, err := p.Fetcher.Fetch(ctx, src.URL)
	if err != nil {
		return Result{Source: src.Name, Err: err}
	}

	items := parsed.Items
	if limit := src.EntryCap(); len(items) > limit {
		items = items[:limit]
	}

	var articles []article.Article
	for _, item := range items {
		metrics.Global.IncrementFeedEntriesSeen()

		published := item.Published
		if published == "" {
			published = item.Updated
		}
		publishedAt := p.Dates.Parse(published)
		if !article.Recent(publishedAt, cutoff) {
			continue
		}

		hash := article.Fingerprint(item.Title, item.Link)
		if p.Seen.Contains(hash) {
			metrics.Global.IncrementDuplicatesFiltered()
			continue
		}

		content, err := p.Extractor.Extract(ctx, item.Link)
		if err != nil {
			logger.Debug("content extraction failed", "url", item.Link, "error", err)
			content = ""
		}

		isBreaking := score.Breaking(item.Title, content, src.RelevanceKeywords)
		relevance := score.Relevance(item.Title, content, src.Topics, src.RelevanceKeywords)
		if relevance < minRelevance && !isBreaking {
			continue
		}

		// When scraping failed, fall back to whatever text the feed
		// itself carried.
		feedText := item.Description
		if feedText == "" {
			feedText = item.Content
		}
		best := content
		if best == "" {
			best = feedText
		}

		a := article.Article{
			Source:         src.Name,
			Title:          item.Title,
			URL:            item.Link,
			Published:      published,
			PublishedAt:    publishedAt,
			Summary:        p.Summarizer.Summarize(ctx, item.Link, best, isBreaking, relevance),
			Topics:         src.Topics,
			ContentHash:    hash,
			RelevanceScore: relevance,
			SentimentScore: score.Sentiment(best),
			IsBreaking:     isBreaking,
		}
		articles = append(articles, a)
		p.Seen.Add(hash)
		metrics.Global.IncrementArticlesAccepted()
	}

	return Result{Source: src.Name, Articles: articles}
}
