package tester

import (
	"bytes"
	"context"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Volcanex/kindle-server/internal/feed"
)

var commonFeedPaths = []string{
	"/rss",
	"/rss.xml",
	"/feed",
	"/feed.xml",
	"/feeds/all.atom.xml",
	"/atom.xml",
	"/index.xml",
	"/rss/index.xml",
	"/feed/index.xml",
}

// SuggestFeedURLs proposes feed URLs for a website: the common feed paths
// plus any <link rel="alternate"> feed declarations found in its HTML.
func (t *Tester) SuggestFeedURLs(ctx context.Context, siteURL string) ([]string, error) {
	base, err := url.Parse(siteURL)
	if err != nil || base.Host == "" {
		return nil, feed.ErrInvalidURL
	}

	seen := map[string]bool{}
	var suggestions []string
	add := func(raw string) {
		if raw == "" || seen[raw] {
			return
		}
		seen[raw] = true
		suggestions = append(suggestions, raw)
	}

	for _, path := range commonFeedPaths {
		add(base.Scheme + "://" + base.Host + path)
	}

	// Best effort: declared feeds in the page beat guessed paths, but a
	// failed fetch still leaves the guesses usable.
	raw, _, err := t.client.Fetch(ctx, siteURL, 10*time.Second, nil)
	if err != nil {
		t.logger.Warn("could not fetch site for feed discovery", "url", siteURL, "error", err)
		return suggestions, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return suggestions, nil
	}

	doc.Find(`link[type="application/rss+xml"], link[type="application/atom+xml"]`).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		add(base.ResolveReference(ref).String())
	})

	return suggestions, nil
}
