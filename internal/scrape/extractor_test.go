package scrape

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func TestFromDocument_PrefersArticleElement(t *testing.T) {
	body := strings.Repeat("Relevant article text goes here. ", 10)
	html := `<html><body>
		<nav>Site navigation links</nav>
		<article>` + body + `</article>
		<footer>Copyright notice</footer>
	</body></html>`

	got := FromDocument(parse(t, html))
	if !strings.Contains(got, "Relevant article text") {
		t.Errorf("expected article body, got %q", got)
	}
	if strings.Contains(got, "navigation") || strings.Contains(got, "Copyright") {
		t.Errorf("chrome elements should be stripped, got %q", got)
	}
}

func TestFromDocument_SkipsShortSelectorHits(t *testing.T) {
	long := strings.Repeat("Paragraph content with enough length to matter. ", 10)
	html := `<html><body>
		<article>Too short.</article>
		<div class="content">` + long + `</div>
	</body></html>`

	got := FromDocument(parse(t, html))
	if !strings.Contains(got, "Paragraph content") {
		t.Errorf("short article should be skipped for the next selector, got %q", got)
	}
}

func TestFromDocument_ParagraphFallback(t *testing.T) {
	html := `<html><body>
		<p>First paragraph of plain text.</p>
		<p>Second paragraph of plain text.</p>
	</body></html>`

	got := FromDocument(parse(t, html))
	want := "First paragraph of plain text. Second paragraph of plain text."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFromDocument_StripsScriptText(t *testing.T) {
	html := `<html><body>
		<article><p>Visible text only here, padded to pass the length gate.</p>
		<script>var hidden = "should not appear";</script>
		<p>` + strings.Repeat("More visible text. ", 15) + `</p></article>
	</body></html>`

	got := FromDocument(parse(t, html))
	if strings.Contains(got, "hidden") {
		t.Errorf("script content leaked into extraction: %q", got)
	}
}
