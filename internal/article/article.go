// Package article holds the processed-article value type and the pure
// identity and date helpers shared across the pipeline.
package article

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"time"
)

// Article is one processed feed entry. Instances are built once by the
// source processor and not mutated afterwards.
type Article struct {
	Source      string
	Title       string
	URL         string
	Published   string     // raw date string as the feed provided it
	PublishedAt *time.Time // canonical instant, nil when unparsable
	Summary     string
	Topics      []string
	ContentHash string

	RelevanceScore float64
	SentimentScore float64
	IsBreaking     bool
}

// Fingerprint returns the stable cross-run identity of an entry. It hashes
// the normalized title plus the URL, so the same story re-fetched on a
// later run maps to the same hash. Collision resistance does not need to
// be adversarial-grade; stability across runs is what matters, and the
// format must keep matching hashes persisted by earlier runs.
func Fingerprint(title, url string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(title)) + url))
	return hex.EncodeToString(sum[:])
}
