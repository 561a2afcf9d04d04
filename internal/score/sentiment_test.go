package score

import "testing"

func TestSentiment_Polarity(t *testing.T) {
	pos := Sentiment("This is a great, wonderful and amazing result!")
	if pos <= 0 {
		t.Errorf("positive text scored %f, want > 0", pos)
	}

	neg := Sentiment("This is a terrible, horrible and awful failure.")
	if neg >= 0 {
		t.Errorf("negative text scored %f, want < 0", neg)
	}
}

func TestSentiment_Bounded(t *testing.T) {
	for _, text := range []string{
		"",
		"   ",
		"neutral factual statement about infrastructure",
		"great great great great great great great great",
		"awful awful awful awful awful awful awful awful",
	} {
		got := Sentiment(text)
		if got < -1 || got > 1 {
			t.Errorf("Sentiment(%q) = %f, out of [-1, 1]", text, got)
		}
	}
}

func TestSentiment_Deterministic(t *testing.T) {
	text := "The launch went remarkably well despite earlier concerns."
	if Sentiment(text) != Sentiment(text) {
		t.Error("identical input must produce identical scores")
	}
}

func TestSentiment_EmptyIsZero(t *testing.T) {
	if got := Sentiment(""); got != 0 {
		t.Errorf("empty text scored %f, want 0", got)
	}
}
