// Package feed retrieves and parses RSS/Atom sources.
package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"newsdigest/internal/retry"
)

// Fetcher retrieves one feed by URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*gofeed.Feed, error)
}

type HTTPFetcher struct {
	parser *gofeed.Parser
	retry  retry.Config
}

func NewHTTPFetcher(timeout time.Duration, userAgent string, retryCfg retry.Config) *HTTPFetcher {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	parser.UserAgent = userAgent

	return &HTTPFetcher{parser: parser, retry: retryCfg}
}

// Fetch parses the feed at url, retrying transient failures.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*gofeed.Feed, error) {
	var parsed *gofeed.Feed
	err := retry.WithRetry(ctx, f.retry, func() error {
		feed, parseErr := f.parser.ParseURLWithContext(url, ctx)
		if parseErr != nil {
			return fmt.Errorf("parse feed %s: %w", url, parseErr)
		}
		parsed = feed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return parsed, nil
}
