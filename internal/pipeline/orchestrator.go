package pipeline

import (
	"context"
	"sort"
	"sync"
	"time"

	"newsdigest/internal/article"
	"newsdigest/internal/config"
	"newsdigest/internal/dedup"
	"newsdigest/internal/logger"
	"newsdigest/internal/metrics"
)

// Orchestrator runs the whole pipeline over all configured sources.
type Orchestrator struct {
	Processor     *Processor
	Detector      *dedup.Detector
	MaxTotal      int
	RecencyWindow time.Duration
	Now           func() time.Time // nil means time.Now
}

// Run fetches every source concurrently, merges the results in priority
// order, removes near duplicates and returns the ranked, capped list.
// One source failing does not abort the others.
func (o *Orchestrator) Run(ctx context.Context, sources []config.Source) []article.Article {
	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	start := now()
	cutoff := start.Add(-o.RecencyWindow)

	ordered := make([]config.Source, len(sources))
	copy(ordered, sources)
	config.SortByPriority(ordered)

	// Each worker writes its own slot so the merge order stays
	// deterministic regardless of completion order.
	collected := make([]Result, len(ordered))
	var wg sync.WaitGroup
	for i, src := range ordered {
		wg.Add(1)
		go func(i int, src config.Source) {
			defer wg.Done()
			collected[i] = o.Processor.Process(ctx, src, cutoff)
		}(i, src)
	}
	wg.Wait()

	var merged []article.Article
	for _, res := range collected {
		if res.Err != nil {
			metrics.Global.IncrementSourceFailures()
			logger.Error("source failed", "source", res.Source, "error", res.Err)
			continue
		}
		merged = append(merged, res.Articles...)
	}

	merged = o.removeNearDuplicates(merged)
	rank(merged)

	if o.MaxTotal > 0 && len(merged) > o.MaxTotal {
		merged = merged[:o.MaxTotal]
	}

	metrics.Global.RecordRunDuration(time.Since(start))
	metrics.Global.SetLastRun()
	return merged
}

func (o *Orchestrator) removeNearDuplicates(articles []article.Article) []article.Article {
	if o.Detector == nil || len(articles) < 2 {
		return articles
	}

	entries := make([]dedup.Entry, len(articles))
	for i, a := range articles {
		entries[i] = dedup.Entry{Title: a.Title, URL: a.URL}
	}

	flagged := o.Detector.Detect(entries)
	if len(flagged) == 0 {
		return articles
	}
	drop := make(map[string]bool, len(flagged))
	for _, url := range flagged {
		drop[url] = true
	}

	kept := articles[:0]
	for _, a := range articles {
		if drop[a.URL] {
			metrics.Global.IncrementDuplicatesFiltered()
			continue
		}
		kept = append(kept, a)
	}
	return kept
}

// rank orders breaking news first, then higher relevance, then older
// articles first. Articles without a parsable date sort as oldest.
func rank(articles []article.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		a, b := articles[i], articles[j]
		if a.IsBreaking != b.IsBreaking {
			return a.IsBreaking
		}
		if a.RelevanceScore != b.RelevanceScore {
			return a.RelevanceScore > b.RelevanceScore
		}
		return timeOrMin(a.PublishedAt).Before(timeOrMin(b.PublishedAt))
	})
}

func timeOrMin(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
