// ABOUTME: Feed domain model represents one subscribed feed on the reader service
// ABOUTME: Provides validation logic for the canonical feed/<url> identifier

package domain

import (
	"net/url"
	"strings"

	"greader-client/core/errors"
)

// FeedIDPrefix is the prefix every feed stream id carries on the wire.
const FeedIDPrefix = "feed/"

// DefaultFeedTitle is used when the service reports no title for a subscription.
const DefaultFeedTitle = "(no title)"

// Feed represents a subscribed feed with its unread state.
// Feeds are immutable after construction and identified by ID alone.
type Feed struct {
	// ID is the canonical stream identifier, always "feed/" + absolute URL
	ID string

	// Title is the human-readable subscription title
	Title string

	// UnreadCount is the number of unread entries, never negative
	UnreadCount int
}

// NewFeed constructs a Feed and validates its identifier.
// A missing title falls back to DefaultFeedTitle and a negative unread count
// is clamped to zero.
func NewFeed(id, title string, unreadCount int) (Feed, error) {
	if err := ValidateFeedID(id); err != nil {
		return Feed{}, err
	}

	if title == "" {
		title = DefaultFeedTitle
	}
	if unreadCount < 0 {
		unreadCount = 0
	}

	return Feed{
		ID:          id,
		Title:       title,
		UnreadCount: unreadCount,
	}, nil
}

// ValidateFeedID checks the "feed/" + absolute-URL wire format.
func ValidateFeedID(id string) error {
	if !strings.HasPrefix(id, FeedIDPrefix) {
		return &errors.ValidationError{
			Field:   "id",
			Message: "feed id must start with " + FeedIDPrefix,
		}
	}

	rawURL := strings.TrimPrefix(id, FeedIDPrefix)
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return &errors.ValidationError{
			Field:   "id",
			Message: "feed id must embed an absolute URL",
		}
	}

	return nil
}

// URL returns the feed's source URL, the id minus the "feed/" prefix.
func (f Feed) URL() string {
	return strings.TrimPrefix(f.ID, FeedIDPrefix)
}

// Equal reports whether two feeds denote the same subscription.
// Identity is by id only; title and unread count do not participate.
func (f Feed) Equal(other Feed) bool {
	return f.ID == other.ID
}
