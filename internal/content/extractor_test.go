package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Volcanex/kindle-server/internal/feed"
)

func TestClean_StripsScriptAndStyle(t *testing.T) {
	e := NewExtractor()

	raw := `<p>Real text</p><script>alert("x")</script><style>.a{color:red}</style>`
	cleaned := e.Clean(raw)

	assert.Contains(t, cleaned, "Real text")
	assert.NotContains(t, cleaned, "alert")
	assert.NotContains(t, cleaned, "color:red")
}

func TestClean_DropsImages(t *testing.T) {
	e := NewExtractor()

	cleaned := e.Clean(`<p>Before <img src="https://example.com/x.png" alt="pic"> after</p>`)

	assert.Contains(t, cleaned, "Before")
	assert.Contains(t, cleaned, "after")
	assert.NotContains(t, cleaned, "x.png")
}

func TestClean_KeepsLinkText(t *testing.T) {
	e := NewExtractor()

	cleaned := e.Clean(`<p>Read <a href="https://example.com">the full story</a> here</p>`)

	assert.Contains(t, cleaned, "the full story")
	assert.NotContains(t, cleaned, "href")
}

func TestClean_DecodesEntities(t *testing.T) {
	e := NewExtractor()

	cleaned := e.Clean(`<p>Fish &amp; chips &mdash; cheap</p>`)

	assert.Contains(t, cleaned, "Fish & chips")
}

func TestClean_SeparatesBlocks(t *testing.T) {
	e := NewExtractor()

	cleaned := e.Clean(`<p>First paragraph</p><p>Second paragraph</p>`)

	assert.Contains(t, cleaned, "First paragraph")
	assert.Contains(t, cleaned, "Second paragraph")
	assert.NotContains(t, cleaned, "First paragraphSecond")
}

func TestClean_StripsArtifacts(t *testing.T) {
	e := NewExtractor()

	cleaned := e.Clean(`<p>Good text Unknown Operation more text [Unknown tag] end</p>`)

	assert.Contains(t, cleaned, "Good text")
	assert.Contains(t, cleaned, "end")
	assert.NotContains(t, cleaned, "Unknown Operation")
	assert.NotContains(t, cleaned, "[Unknown")
}

func TestClean_PlainTextPassesThrough(t *testing.T) {
	e := NewExtractor()

	assert.Equal(t, "Just plain text", e.Clean("Just plain text"))
}

func TestClean_CollapsesBlankLines(t *testing.T) {
	e := NewExtractor()

	cleaned := e.Clean("<div>One</div><div></div><div></div><div></div><div>Two</div>")

	assert.NotContains(t, cleaned, "\n\n\n")
}

func TestExtract_PrefersContent(t *testing.T) {
	e := NewExtractor()

	entry := feed.Entry{
		Content:     "<p>Full content body</p>",
		Description: "<p>Short description</p>",
	}

	assert.Contains(t, e.Extract(entry), "Full content body")
}

func TestExtract_FallsBackToDescription(t *testing.T) {
	e := NewExtractor()

	entry := feed.Entry{Description: "<p>Only a description</p>"}

	assert.Contains(t, e.Extract(entry), "Only a description")
}

func TestExtract_EmptyEntry(t *testing.T) {
	e := NewExtractor()

	assert.Equal(t, "", e.Extract(feed.Entry{}))
}

func TestSummary_UsesDescription(t *testing.T) {
	e := NewExtractor()

	entry := feed.Entry{Description: "<p>A feed-supplied summary</p>"}

	assert.Equal(t, "A feed-supplied summary", e.Summary(entry, "cleaned content here"))
}

func TestSummary_TruncatesLongDescription(t *testing.T) {
	e := NewExtractor()

	entry := feed.Entry{Description: strings.Repeat("word ", 200)}

	summary := e.Summary(entry, "")
	assert.LessOrEqual(t, len([]rune(summary)), 500)
	assert.True(t, strings.HasSuffix(summary, "..."))
}

func TestSummary_FallsBackToFirstSentences(t *testing.T) {
	e := NewExtractor()

	cleaned := "One sentence. Two sentence. Three sentence. Four sentence. Five sentence."
	summary := e.Summary(feed.Entry{}, cleaned)

	assert.Contains(t, summary, "One sentence")
	assert.Contains(t, summary, "Three sentence")
	assert.NotContains(t, summary, "Four sentence")
}

func TestSummary_EmptyWhenNothingAvailable(t *testing.T) {
	e := NewExtractor()

	assert.Equal(t, "", e.Summary(feed.Entry{}, ""))
}
