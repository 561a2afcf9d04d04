package article

import (
	"testing"
	"time"
)

func TestNormalizer_Parse(t *testing.T) {
	n := NewNormalizer(time.UTC)

	tests := []struct {
		name string
		raw  string
		want *time.Time
	}{
		{
			name: "rfc822 with zone",
			raw:  "Tue, 10 Jun 2025 10:30:00 GMT",
			want: timePtr(time.Date(2025, 6, 10, 10, 30, 0, 0, time.UTC)),
		},
		{
			name: "iso8601 with offset",
			raw:  "2025-06-10T12:30:00+02:00",
			want: timePtr(time.Date(2025, 6, 10, 10, 30, 0, 0, time.UTC)),
		},
		{
			name: "naive assumed reference zone",
			raw:  "2025-06-10 10:30:00",
			want: timePtr(time.Date(2025, 6, 10, 10, 30, 0, 0, time.UTC)),
		},
		{
			name: "empty",
			raw:  "",
			want: nil,
		},
		{
			name: "whitespace only",
			raw:  "   ",
			want: nil,
		},
		{
			name: "garbage",
			raw:  "not a date at all",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Parse(tt.raw)
			if tt.want == nil {
				if got != nil {
					t.Errorf("Parse(%q) = %v, want nil", tt.raw, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Parse(%q) = nil, want %v", tt.raw, tt.want)
			}
			if !got.Equal(*tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestRecent(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	cutoff := now.Add(-7 * 24 * time.Hour)

	eightDaysOld := now.Add(-8 * 24 * time.Hour)
	if Recent(&eightDaysOld, cutoff) {
		t.Error("article 8 days old should be excluded by a 7-day window")
	}

	sixDaysOld := now.Add(-6 * 24 * time.Hour)
	if !Recent(&sixDaysOld, cutoff) {
		t.Error("article 6 days old should be admitted")
	}

	exactlyCutoff := cutoff
	if !Recent(&exactlyCutoff, cutoff) {
		t.Error("article exactly at the cutoff should be admitted")
	}

	if !Recent(nil, cutoff) {
		t.Error("article with no parseable date should always be admitted")
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
