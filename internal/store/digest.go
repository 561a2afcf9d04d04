// Package store persists the daily digest and recovers previously seen
// article hashes from earlier digest files.
package store

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"newsdigest/internal/article"
	"newsdigest/internal/logger"
)

const digestFilePattern = "summaries_*.json"

// DigestArticle is the persisted form of one article.
type DigestArticle struct {
	Source         string   `json:"source"`
	Title          string   `json:"title"`
	URL            string   `json:"url"`
	Published      string   `json:"published,omitempty"`
	Summary        string   `json:"summary"`
	Topics         []string `json:"topics"`
	ContentHash    string   `json:"content_hash"`
	RelevanceScore float64  `json:"relevance_score"`
	SentimentScore float64  `json:"sentiment_score"`
	IsBreaking     bool     `json:"is_breaking"`
}

type Digest struct {
	GeneratedAt       string          `json:"generated_at"`
	TotalArticles     int             `json:"total_articles"`
	BreakingNewsCount int             `json:"breaking_news_count"`
	Articles          []DigestArticle `json:"articles"`
}

// BuildDigest converts ranked articles into the persisted document.
// Scores are rounded to two decimals at this boundary only.
func BuildDigest(articles []article.Article, now time.Time) Digest {
	out := make([]DigestArticle, 0, len(articles))
	breaking := 0

	for _, a := range articles {
		if a.IsBreaking {
			breaking++
		}
		topics := a.Topics
		if topics == nil {
			topics = []string{}
		}
		out = append(out, DigestArticle{
			Source:         a.Source,
			Title:          a.Title,
			URL:            a.URL,
			Published:      a.Published,
			Summary:        a.Summary,
			Topics:         topics,
			ContentHash:    a.ContentHash,
			RelevanceScore: round2(a.RelevanceScore),
			SentimentScore: round2(a.SentimentScore),
			IsBreaking:     a.IsBreaking,
		})
	}

	return Digest{
		GeneratedAt:       now.Format(time.RFC3339),
		TotalArticles:     len(out),
		BreakingNewsCount: breaking,
		Articles:          out,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// WriteDigest writes the digest under dir, named by the run's UTC date.
// Running twice on the same day overwrites the earlier file.
func WriteDigest(dir string, digest Digest, day time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}

	name := fmt.Sprintf("summaries_%s.json", day.UTC().Format("2006-01-02"))
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(digest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal digest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write digest: %w", err)
	}
	return path, nil
}

// LoadSeenHashes collects content hashes from every digest file in dir.
// Malformed or unreadable files are skipped so one bad file cannot block
// a run.
func LoadSeenHashes(dir string) *HashSet {
	set := NewHashSet()

	paths, err := filepath.Glob(filepath.Join(dir, digestFilePattern))
	if err != nil {
		return set
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("skipping unreadable digest file", "path", path, "error", err)
			continue
		}
		hashes, err := hashesFromDigest(data)
		if err != nil {
			logger.Warn("skipping malformed digest file", "path", path, "error", err)
			continue
		}
		for _, h := range hashes {
			set.Add(h)
		}
	}

	logger.Debug("loaded seen hashes", "count", set.Len(), "files", len(paths))
	return set
}

// hashesFromDigest accepts both the document shape and a bare article
// array, which earlier versions of the digest file used.
func hashesFromDigest(data []byte) ([]string, error) {
	var doc Digest
	if err := json.Unmarshal(data, &doc); err == nil && doc.Articles != nil {
		return collectHashes(doc.Articles), nil
	}

	var bare []DigestArticle
	if err := json.Unmarshal(data, &bare); err != nil {
		return nil, err
	}
	return collectHashes(bare), nil
}

func collectHashes(articles []DigestArticle) []string {
	hashes := make([]string, 0, len(articles))
	for _, a := range articles {
		if a.ContentHash != "" {
			hashes = append(hashes, a.ContentHash)
		}
	}
	return hashes
}
