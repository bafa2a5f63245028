// ABOUTME: FeedEntry domain model represents an individual entry within a feed
// ABOUTME: Entries are immutable snapshots identified by the service-assigned id

package domain

import (
	"time"

	"greader-client/core/errors"
)

// FeedEntry represents one entry fetched from a feed stream.
type FeedEntry struct {
	// ID is the opaque identifier assigned by the service, never empty
	ID string

	// StreamID is the id of the owning feed ("feed/" + URL)
	StreamID string

	// Published is when the entry was published
	Published time.Time

	// Title is the entry's headline, may be empty
	Title string

	// Link is the URL to the full article, may be empty
	Link string

	// Content is the HTML/text body, may be empty
	Content string

	// Summary is a plain-text rendering of Content, may be empty
	Summary string
}

// NewFeedEntry constructs a FeedEntry, requiring the service-assigned id.
func NewFeedEntry(id, streamID string, published time.Time) (FeedEntry, error) {
	if id == "" {
		return FeedEntry{}, &errors.ValidationError{
			Field:   "id",
			Message: "entry id cannot be empty",
		}
	}

	return FeedEntry{
		ID:        id,
		StreamID:  streamID,
		Published: published,
	}, nil
}

// Equal reports whether two entries denote the same item, by id only.
func (e FeedEntry) Equal(other FeedEntry) bool {
	return e.ID == other.ID
}
