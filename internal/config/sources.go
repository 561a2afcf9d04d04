package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Priority values, in ranking order.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Source describes one configured feed. Fields left empty in the YAML get
// explicit defaults from applyDefaults; the struct is read-only after Load.
type Source struct {
	Name              string   `yaml:"name"`
	Type              string   `yaml:"type"`
	URL               string   `yaml:"url"`
	Topics            []string `yaml:"topics"`
	Priority          string   `yaml:"priority"`           // high, medium, low (default medium)
	RelevanceKeywords []string `yaml:"relevance_keywords"` // default empty
	MaxArticles       int      `yaml:"max_articles"`       // default 5
	UpdateFrequency   string   `yaml:"update_frequency"`   // hourly, daily, weekly (default daily)
	ContentType       string   `yaml:"content_type"`       // breaking, research, analysis (default general)
}

type sourcesFile struct {
	Sources []Source `yaml:"sources"`
}

// LoadSources reads the source list from a YAML file and applies defaults.
// A missing or unreadable file is a fatal condition for the caller.
func LoadSources(path string) ([]Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sources config: %w", err)
	}
	defer f.Close()

	var cfg sourcesFile
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse sources config: %w", err)
	}
	if len(cfg.Sources) == 0 {
		return nil, fmt.Errorf("sources config %s lists no sources", path)
	}

	for i := range cfg.Sources {
		cfg.Sources[i].applyDefaults()
	}
	return cfg.Sources, nil
}

func (s *Source) applyDefaults() {
	if s.Type == "" {
		s.Type = "rss"
	}
	if s.Priority == "" {
		s.Priority = PriorityMedium
	}
	if s.MaxArticles <= 0 {
		s.MaxArticles = 5
	}
	if s.UpdateFrequency == "" {
		s.UpdateFrequency = "daily"
	}
	if s.ContentType == "" {
		s.ContentType = "general"
	}
	if s.RelevanceKeywords == nil {
		s.RelevanceKeywords = []string{}
	}
}

// EntryCap returns how many feed entries to consider for this source.
// High-priority sources get double their configured cap.
func (s Source) EntryCap() int {
	n := s.MaxArticles
	if s.Priority == PriorityHigh {
		n *= 2
	}
	return n
}

func priorityRank(p string) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityLow:
		return 2
	default:
		return 1
	}
}

// SortByPriority orders sources high before medium before low, keeping the
// configured order for equal priorities.
func SortByPriority(sources []Source) {
	sort.SliceStable(sources, func(i, j int) bool {
		return priorityRank(sources[i].Priority) < priorityRank(sources[j].Priority)
	})
}
