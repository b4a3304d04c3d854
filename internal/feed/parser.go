package feed

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// ParsedFeed is the normalized result of parsing a feed document.
type ParsedFeed struct {
	Title       string
	Description string
	Updated     *time.Time
	FeedType    string
	Generator   string
	Language    string
	Entries     []Entry
}

// Entry is one raw feed item, pre-extraction. GUID may be empty; identity
// fallback to link and title happens in the dedup layer.
type Entry struct {
	GUID        string
	Title       string
	Link        string
	Author      string
	Category    string
	Content     string
	Description string
	Published   *time.Time
}

// Parser parses RSS 2.0 and Atom documents without a format flag.
type Parser struct {
	inner *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{inner: gofeed.NewParser()}
}

// Parse turns raw bytes into a ParsedFeed. A malformed-but-recoverable
// document yields best-effort entries plus a warning describing the
// defect; a document with no identifiable feed structure yields
// ErrInvalidFeed.
func (p *Parser) Parse(raw []byte) (*ParsedFeed, []string, error) {
	var warnings []string

	parsed, err := p.inner.Parse(bytes.NewReader(raw))
	if err != nil {
		// Retry once on a sanitized copy. Feeds in the wild carry stray
		// control characters and junk ahead of the XML declaration.
		parsed, retryErr := p.inner.Parse(bytes.NewReader(sanitize(raw)))
		if retryErr != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFeed, err)
		}
		warnings = append(warnings, fmt.Sprintf("recovered from malformed feed: %v", err))
		return p.convert(parsed), warnings, nil
	}

	return p.convert(parsed), warnings, nil
}

func (p *Parser) convert(gf *gofeed.Feed) *ParsedFeed {
	pf := &ParsedFeed{
		Title:       gf.Title,
		Description: gf.Description,
		FeedType:    gf.FeedType,
		Generator:   gf.Generator,
		Language:    gf.Language,
		Entries:     make([]Entry, 0, len(gf.Items)),
	}

	if gf.UpdatedParsed != nil {
		pf.Updated = gf.UpdatedParsed
	} else if gf.PublishedParsed != nil {
		pf.Updated = gf.PublishedParsed
	}

	for _, item := range gf.Items {
		pf.Entries = append(pf.Entries, convertItem(item))
	}

	return pf
}

func convertItem(item *gofeed.Item) Entry {
	entry := Entry{
		GUID:        item.GUID,
		Title:       strings.TrimSpace(item.Title),
		Link:        item.Link,
		Content:     item.Content,
		Description: item.Description,
	}

	if item.PublishedParsed != nil {
		entry.Published = item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		entry.Published = item.UpdatedParsed
	}

	entry.Author = authorOf(item)

	if len(item.Categories) > 0 {
		entry.Category = strings.TrimSpace(item.Categories[0])
	}

	return entry
}

// authorOf joins at most two author names.
func authorOf(item *gofeed.Item) string {
	var names []string
	for _, a := range item.Authors {
		if a != nil && strings.TrimSpace(a.Name) != "" {
			names = append(names, strings.TrimSpace(a.Name))
		}
		if len(names) == 2 {
			break
		}
	}
	if len(names) == 0 && item.Author != nil {
		if name := strings.TrimSpace(item.Author.Name); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

// sanitize drops control characters XML forbids and anything ahead of the
// first angle bracket.
func sanitize(raw []byte) []byte {
	if i := bytes.IndexByte(raw, '<'); i > 0 {
		raw = raw[i:]
	}
	out := make([]byte, 0, len(raw))
	for _, b := range raw {
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' {
			continue
		}
		out = append(out, b)
	}
	return out
}
