// Package scrape extracts readable article text from web pages.
package scrape

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Selectors tried in order for the main content area of a page.
var contentSelectors = []string{
	"article",
	"[role=\"main\"]",
	".post-content",
	".entry-content",
	".article-content",
	".content",
	"main",
	".post-body",
}

const (
	minSelectorText = 200 // selector result shorter than this: try the next one
	minUsableText   = 100 // anything shorter is reported as an extraction failure
)

type Client struct {
	http      *http.Client
	userAgent string
}

func New(timeout time.Duration, userAgent string) *Client {
	return &Client{
		http:      &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Extract fetches the page and returns its readable body text. Failures
// are returned as errors; the caller treats any error as "no content" and
// falls back to feed-provided text.
func (c *Client) Extract(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	text := FromDocument(doc)
	if len(text) < minUsableText {
		return "", fmt.Errorf("extracted only %d chars from %s", len(text), url)
	}
	return text, nil
}

// FromDocument pulls article text out of a parsed page: strip chrome
// elements, try the known content selectors, then fall back to gathering
// every paragraph.
func FromDocument(doc *goquery.Document) string {
	doc.Find("script, style, nav, footer, aside").Remove()

	for _, selector := range contentSelectors {
		area := doc.Find(selector).First()
		if area.Length() == 0 {
			continue
		}
		text := normalizeSpace(area.Text())
		if len(text) > minSelectorText {
			return text
		}
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	return normalizeSpace(strings.Join(paragraphs, " "))
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
