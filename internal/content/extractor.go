// Package content turns raw feed entry HTML into clean plain text.
package content

import (
	stdhtml "html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/Volcanex/kindle-server/internal/feed"
)

const summaryLimit = 500

// transform is one named step of the cleaning pipeline. Steps are pure
// string functions applied in order; any failure aborts the pipeline and
// triggers the naive fallback instead of surfacing an error.
type transform struct {
	name string
	fn   func(string) (string, error)
}

var pipeline = []transform{
	{"drop_unsafe_html", dropUnsafeHTML},
	{"html_to_text", htmlToText},
	{"strip_artifacts", stripArtifacts},
	{"collapse_blank_lines", collapseBlankLines},
}

// Extractor selects and cleans entry content.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract picks the best available content field (full content first, then
// summary/description) and returns it as cleaned plain text. The first
// field producing non-empty text wins.
func (e *Extractor) Extract(entry feed.Entry) string {
	for _, raw := range []string{entry.Content, entry.Description} {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		if cleaned := e.Clean(raw); cleaned != "" {
			return cleaned
		}
	}
	return ""
}

// Clean runs the cleaning pipeline. It never fails: if any step errors the
// raw input goes through a naive tag-strip and entity-decode pass instead.
func (e *Extractor) Clean(raw string) string {
	out := raw
	for _, step := range pipeline {
		next, err := step.fn(out)
		if err != nil {
			return naiveStrip(raw)
		}
		out = next
	}
	return strings.TrimSpace(out)
}

// Summary returns the feed-supplied summary cleaned and truncated when one
// exists, otherwise the first sentences of the cleaned content under the
// same cap, otherwise the empty string.
func (e *Extractor) Summary(entry feed.Entry, cleaned string) string {
	if strings.TrimSpace(entry.Description) != "" {
		if summary := e.Clean(entry.Description); summary != "" {
			return truncate(summary, summaryLimit)
		}
	}

	if cleaned == "" {
		return ""
	}

	sentences := strings.Split(cleaned, ". ")
	n := len(sentences)
	if n > 3 {
		n = 3
	}
	return truncate(strings.Join(sentences[:n], ". "), summaryLimit)
}

// dropUnsafeHTML removes script/style/noscript blocks and images, then
// strips inline event-handler and tracking data-* attributes.
func dropUnsafeHTML(raw string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript, img").Remove()

	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			kept := n.Attr[:0]
			for _, a := range n.Attr {
				if strings.HasPrefix(a.Key, "on") || strings.HasPrefix(a.Key, "data-") {
					continue
				}
				kept = append(kept, a)
			}
			n.Attr = kept
		}
	})

	return doc.Find("body").Html()
}

var blockTags = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"ul": true, "ol": true, "li": true, "blockquote": true, "pre": true,
	"table": true, "tr": true, "figure": true, "header": true, "footer": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// htmlToText flattens markup to plain text, keeping link text and
// separating block elements with newlines.
func htmlToText(fragment string) (string, error) {
	root, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	walk(root, &sb)
	return sb.String(), nil
}

func walk(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript", "img":
			return
		case "br":
			sb.WriteString("\n")
			return
		}
		if blockTags[n.Data] {
			sb.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, sb)
	}
	if n.Type == html.ElementNode && blockTags[n.Data] {
		sb.WriteString("\n")
	}
}

var (
	unknownOpRe      = regexp.MustCompile(`(?i)Unknown Operation`)
	unknownBracketRe = regexp.MustCompile(`(?i)\[Unknown[^\]]*\]`)
)

// stripArtifacts removes marker tokens left behind by broken converters.
func stripArtifacts(text string) (string, error) {
	text = unknownOpRe.ReplaceAllString(text, "")
	text = unknownBracketRe.ReplaceAllString(text, "")
	return text, nil
}

var (
	trailingSpaceRe = regexp.MustCompile(`[ \t]+\n`)
	leadingSpaceRe  = regexp.MustCompile(`\n[ \t]+`)
	blankLinesRe    = regexp.MustCompile(`\n{3,}`)
)

func collapseBlankLines(text string) (string, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = trailingSpaceRe.ReplaceAllString(text, "\n")
	text = leadingSpaceRe.ReplaceAllString(text, "\n")
	text = blankLinesRe.ReplaceAllString(text, "\n\n")
	return text, nil
}

var (
	tagRe   = regexp.MustCompile(`<[^>]+>`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// naiveStrip is the non-throwing fallback: drop every tag, decode
// entities, squash whitespace.
func naiveStrip(raw string) string {
	text := tagRe.ReplaceAllString(raw, "")
	text = stdhtml.UnescapeString(text)
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
