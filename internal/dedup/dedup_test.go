package dedup

import (
	"crypto/md5"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Volcanex/kindle-server/internal/domain"
	"github.com/Volcanex/kindle-server/internal/feed"
)

func md5hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestIdentityKey_PrefersGUID(t *testing.T) {
	entry := feed.Entry{GUID: "guid-1", Link: "https://example.com/a", Title: "Title"}
	key := IdentityKey("https://example.com/feed.xml", entry)
	assert.Equal(t, md5hex("https://example.com/feed.xml:guid-1"), key)
}

func TestIdentityKey_FallsBackToLink(t *testing.T) {
	entry := feed.Entry{Link: "https://example.com/a", Title: "Title"}
	key := IdentityKey("https://example.com/feed.xml", entry)
	assert.Equal(t, md5hex("https://example.com/feed.xml:https://example.com/a"), key)
}

func TestIdentityKey_FallsBackToTitle(t *testing.T) {
	entry := feed.Entry{Title: "Title Only"}
	key := IdentityKey("https://example.com/feed.xml", entry)
	assert.Equal(t, md5hex("https://example.com/feed.xml:Title Only"), key)
}

func TestIdentityKey_Deterministic(t *testing.T) {
	entry := feed.Entry{GUID: "guid-1"}
	first := IdentityKey("https://example.com/feed.xml", entry)
	second := IdentityKey("https://example.com/feed.xml", entry)
	assert.Equal(t, first, second)
}

func TestIdentityKey_ScopedToFeed(t *testing.T) {
	entry := feed.Entry{GUID: "guid-1"}
	a := IdentityKey("https://a.example.com/feed.xml", entry)
	b := IdentityKey("https://b.example.com/feed.xml", entry)
	assert.NotEqual(t, a, b)
}

func TestResolve_Added(t *testing.T) {
	assert.Equal(t, OutcomeAdded, Resolve(nil, "Title", "Content"))
}

func TestResolve_Unchanged(t *testing.T) {
	existing := &domain.Article{Title: "Title", Content: "Content"}
	assert.Equal(t, OutcomeUnchanged, Resolve(existing, "Title", "Content"))
}

func TestResolve_UpdatedOnTitleChange(t *testing.T) {
	existing := &domain.Article{Title: "Old Title", Content: "Content"}
	assert.Equal(t, OutcomeUpdated, Resolve(existing, "New Title", "Content"))
}

func TestResolve_UpdatedOnContentChange(t *testing.T) {
	existing := &domain.Article{Title: "Title", Content: "Old content"}
	assert.Equal(t, OutcomeUpdated, Resolve(existing, "Title", "New content"))
}
