package summary

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"newsdigest/internal/ratelimit"
	"newsdigest/internal/retry"
)

type stubGenerator struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func quickRetry() retry.Config {
	return retry.Config{MaxAttempts: 1, Delay: time.Millisecond}
}

// Article-length filler that clears the 50-char minimum.
const longContent = "The research team published detailed benchmark results across twelve workloads. " +
	"Their evaluation covered both throughput and latency under sustained load. " +
	"Independent reviewers confirmed the findings in a separate replication study."

func TestSummarize_InsufficientContent(t *testing.T) {
	gen := &stubGenerator{response: "should not be called"}
	s := New(gen, nil, quickRetry())

	got := s.Summarize(context.Background(), "http://x", "too short", false, 0.5)
	if got != "Summary not available - insufficient content." {
		t.Errorf("got %q", got)
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times for insufficient content", gen.calls)
	}
}

func TestSummarize_UsesGeneratedText(t *testing.T) {
	gen := &stubGenerator{response: "A clear and useful summary of the article."}
	s := New(gen, nil, quickRetry())

	got := s.Summarize(context.Background(), "http://x", longContent, false, 0.5)
	if got != gen.response {
		t.Errorf("got %q, want generator output", got)
	}
}

func TestSummarize_FallbackOnError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("backend down")}
	s := New(gen, nil, quickRetry())

	got := s.Summarize(context.Background(), "http://x", longContent, false, 0.5)
	if !strings.Contains(got, "benchmark results") {
		t.Errorf("expected extractive fallback, got %q", got)
	}
}

func TestSummarize_FallbackOnRefusal(t *testing.T) {
	gen := &stubGenerator{response: "I cannot summarize this article for you."}
	s := New(gen, nil, quickRetry())

	got := s.Summarize(context.Background(), "http://x", longContent, false, 0.5)
	if strings.Contains(got, "I cannot") {
		t.Errorf("refusal text passed through: %q", got)
	}
}

func TestSummarize_FallbackOnShortOutput(t *testing.T) {
	gen := &stubGenerator{response: "Too brief."}
	s := New(gen, nil, quickRetry())

	got := s.Summarize(context.Background(), "http://x", longContent, false, 0.5)
	if got == gen.response {
		t.Errorf("short output should be rejected, got %q", got)
	}
}

func TestSummarize_NilGeneratorUsesFallback(t *testing.T) {
	s := New(nil, nil, quickRetry())

	got := s.Summarize(context.Background(), "http://x", longContent, false, 0.5)
	if got == "" || strings.HasPrefix(got, "Summary not available") {
		t.Errorf("expected extractive summary, got %q", got)
	}
}

func TestSummarize_LimiterExhaustedFallsBack(t *testing.T) {
	gen := &stubGenerator{response: "A clear and useful summary of the article."}
	s := New(gen, ratelimit.New(1), quickRetry())

	first := s.Summarize(context.Background(), "http://a", longContent, false, 0.5)
	if first != gen.response {
		t.Fatalf("first call should use generator, got %q", first)
	}
	second := s.Summarize(context.Background(), "http://b", longContent, false, 0.5)
	if second == gen.response {
		t.Errorf("second call should fall back, got generator output")
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
}

func TestSummarize_InsufficientMultibyteContent(t *testing.T) {
	gen := &stubGenerator{response: "should not be called"}
	s := New(gen, nil, quickRetry())

	// 30 runes but roughly 56 bytes; still under the 50-character minimum.
	got := s.Summarize(context.Background(), "http://x", "Коротка нотатка без подробиць.", false, 0.5)
	if got != "Summary not available - insufficient content." {
		t.Errorf("got %q", got)
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times for insufficient content", gen.calls)
	}
}

func TestSummarize_RejectsShortMultibyteOutput(t *testing.T) {
	// 16 runes but about 30 bytes; fails the 20-character quality gate.
	gen := &stubGenerator{response: "Занадто коротко."}
	s := New(gen, nil, quickRetry())

	got := s.Summarize(context.Background(), "http://x", longContent, false, 0.5)
	if got == gen.response {
		t.Errorf("short multibyte output should be rejected, got %q", got)
	}
}

func TestSummarize_TruncatesLongContent(t *testing.T) {
	gen := &stubGenerator{response: "A clear and useful summary of the article."}
	s := New(gen, nil, quickRetry())

	long := strings.Repeat("word ", 2000) // 10000 chars
	s.Summarize(context.Background(), "http://x", long, false, 0.5)

	if len(gen.prompts) != 1 {
		t.Fatalf("expected one prompt, got %d", len(gen.prompts))
	}
	prompt := gen.prompts[0]
	if !strings.Contains(prompt, "...") {
		t.Errorf("truncated content should carry an ellipsis marker")
	}
	if len(prompt) > maxContentChars+1000 {
		t.Errorf("prompt length %d suggests content was not truncated", len(prompt))
	}
}

func TestBuildPrompt_Selection(t *testing.T) {
	tests := []struct {
		name       string
		isBreaking bool
		relevance  float64
		want       string
	}{
		{"breaking", true, 0.9, "breaking news article"},
		{"technical", false, 0.8, "technical article"},
		{"generic", false, 0.4, "2 clear sentences"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildPrompt("some article text", tt.isBreaking, tt.relevance)
			if !strings.Contains(got, tt.want) {
				t.Errorf("prompt missing %q:\n%s", tt.want, got)
			}
		})
	}
}
