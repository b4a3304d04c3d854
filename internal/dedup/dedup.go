// Package dedup derives stable article identities and classifies repeat
// sightings of an entry.
package dedup

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/Volcanex/kindle-server/internal/domain"
	"github.com/Volcanex/kindle-server/internal/feed"
)

// Outcome classifies one processed entry.
type Outcome string

const (
	OutcomeAdded     Outcome = "added"
	OutcomeUpdated   Outcome = "updated"
	OutcomeUnchanged Outcome = "unchanged"
	OutcomeSkipped   Outcome = "skipped"
)

// IdentityKey derives the deterministic dedup key for an entry. Identity
// falls back from GUID to link to title for feeds that omit GUIDs.
func IdentityKey(feedURL string, entry feed.Entry) string {
	id := entry.GUID
	if id == "" {
		id = entry.Link
	}
	if id == "" {
		id = entry.Title
	}
	sum := md5.Sum([]byte(feedURL + ":" + id))
	return hex.EncodeToString(sum[:])
}

// Resolve classifies a sighting against the stored article sharing its
// key. Content comparison is exact string equality on the cleaned text.
func Resolve(existing *domain.Article, title, content string) Outcome {
	if existing == nil {
		return OutcomeAdded
	}
	if existing.Title != title || existing.Content != content {
		return OutcomeUpdated
	}
	return OutcomeUnchanged
}
