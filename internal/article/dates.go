package article

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Normalizer parses the heterogeneous date strings feeds put in their
// published/updated fields (RFC 822 variants, ISO 8601, with or without
// zone) into instants in a fixed reference location.
type Normalizer struct {
	loc *time.Location
}

func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.Local
	}
	return &Normalizer{loc: loc}
}

// Parse returns nil for empty or unparsable input; it never returns an
// error. Zone-less timestamps are assumed to be in the reference location,
// zone-aware ones are converted to it.
func (n *Normalizer) Parse(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	t, err := dateparse.ParseIn(raw, n.loc)
	if err != nil {
		return nil
	}

	t = t.In(n.loc)
	return &t
}

// Recent reports whether a published instant falls on or after the cutoff.
// A nil instant is treated as recent: an article whose date we could not
// parse is admitted rather than dropped.
func Recent(ts *time.Time, cutoff time.Time) bool {
	if ts == nil {
		return true
	}
	return !ts.Before(cutoff)
}
