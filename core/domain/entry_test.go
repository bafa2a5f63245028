package domain

import (
	"testing"
	"time"

	"greader-client/core/errors"
)

func TestNewFeedEntry_Valid(t *testing.T) {
	published := time.Unix(1700000000, 0)
	entry, err := NewFeedEntry("tag:google.com,2005:reader/item/abc", "feed/https://example.com/rss", published)

	if err != nil {
		t.Fatalf("NewFeedEntry returned error: %v", err)
	}
	if entry.ID != "tag:google.com,2005:reader/item/abc" {
		t.Errorf("FeedEntry.ID = %v", entry.ID)
	}
	if entry.StreamID != "feed/https://example.com/rss" {
		t.Errorf("FeedEntry.StreamID = %v", entry.StreamID)
	}
	if !entry.Published.Equal(published) {
		t.Errorf("FeedEntry.Published = %v, want %v", entry.Published, published)
	}
}

func TestNewFeedEntry_EmptyID(t *testing.T) {
	_, err := NewFeedEntry("", "feed/https://example.com/rss", time.Now())

	if err == nil {
		t.Fatal("NewFeedEntry should reject an empty id")
	}
	if !errors.IsValidation(err) {
		t.Errorf("NewFeedEntry error should be a ValidationError, got %T", err)
	}
}

func TestFeedEntry_Equal(t *testing.T) {
	a, _ := NewFeedEntry("item-1", "feed/https://example.com/rss", time.Now())
	b, _ := NewFeedEntry("item-1", "feed/https://example.org/other", time.Time{})
	c, _ := NewFeedEntry("item-2", "feed/https://example.com/rss", time.Now())

	if !a.Equal(b) {
		t.Error("entries with the same id should compare equal")
	}
	if a.Equal(c) {
		t.Error("entries with different ids should not compare equal")
	}
}
