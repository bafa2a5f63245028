package reader

import (
	"testing"
	"time"

	"greader-client/core/errors"
)

const unreadCountsBody = `{
	"max": 1000,
	"unreadcounts": [
		{"id": "feed/https://example.com/a", "count": 3, "newestItemTimestampUsec": "0"},
		{"id": "user/-/state/com.google/reading-list", "count": 10},
		{"id": "feed/https://example.com/b", "count": 0}
	]
}`

const subscriptionsBody = `{
	"subscriptions": [
		{"id": "feed/https://example.com/a", "title": "Alpha", "categories": []},
		{"id": "feed/https://example.com/b", "title": "Beta"},
		{"id": "user/-/label/News", "title": "News folder"}
	]
}`

func TestParseUnreadCounts(t *testing.T) {
	counts, err := parseUnreadCounts("api/0/unread-count", unreadCountsBody)

	if err != nil {
		t.Fatalf("parseUnreadCounts returned error: %v", err)
	}
	if len(counts) != 2 {
		t.Errorf("parseUnreadCounts returned %d feeds, want 2", len(counts))
	}
	if counts["feed/https://example.com/a"] != 3 {
		t.Errorf("count[a] = %d, want 3", counts["feed/https://example.com/a"])
	}
	if counts["feed/https://example.com/b"] != 0 {
		t.Errorf("count[b] = %d, want 0", counts["feed/https://example.com/b"])
	}
	if _, ok := counts["user/-/state/com.google/reading-list"]; ok {
		t.Error("non-feed stream ids should be filtered out")
	}
}

func TestParseUnreadCounts_InvalidJSON(t *testing.T) {
	_, err := parseUnreadCounts("api/0/unread-count", "<html>oops</html>")

	if !errors.IsResponseFormat(err) {
		t.Errorf("invalid JSON should surface a ResponseFormatError, got %T: %v", err, err)
	}
}

func TestParseUnreadCounts_MissingSection(t *testing.T) {
	counts, err := parseUnreadCounts("api/0/unread-count", `{"max": 1000}`)

	if err != nil {
		t.Fatalf("parseUnreadCounts returned error: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("missing unreadcounts section should yield no counts, got %d", len(counts))
	}
}

func TestParseSubscriptions(t *testing.T) {
	subs, err := parseSubscriptions("api/0/subscription/list", subscriptionsBody)

	if err != nil {
		t.Fatalf("parseSubscriptions returned error: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("parseSubscriptions returned %d rows, want 2 (labels filtered)", len(subs))
	}
	if subs[0].ID != "feed/https://example.com/a" || subs[0].Title != "Alpha" {
		t.Errorf("subs[0] = %+v", subs[0])
	}
	if subs[1].ID != "feed/https://example.com/b" || subs[1].Title != "Beta" {
		t.Errorf("subs[1] = %+v", subs[1])
	}
}

func TestParseSubscriptions_InvalidJSON(t *testing.T) {
	_, err := parseSubscriptions("api/0/subscription/list", "not json at all")

	if !errors.IsResponseFormat(err) {
		t.Errorf("invalid JSON should surface a ResponseFormatError, got %T: %v", err, err)
	}
}

func TestParseEntries(t *testing.T) {
	body := `{
		"items": [
			{
				"id": "tag:google.com,2005:reader/item/1",
				"published": 1700000000,
				"title": "First",
				"alternate": [{"href": "https://example.com/posts/1", "type": "text/html"}],
				"content": {"direction": "ltr", "content": "<p>Hello <b>there</b></p>"}
			},
			{
				"id": "tag:google.com,2005:reader/item/2",
				"published": 1700000100,
				"summary": {"content": "summary only"}
			}
		]
	}`

	entries, err := parseEntries("api/0/stream/contents/feed", body, "feed/https://example.com/a")

	if err != nil {
		t.Fatalf("parseEntries returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("parseEntries returned %d entries, want 2", len(entries))
	}

	first := entries[0]
	if first.ID != "tag:google.com,2005:reader/item/1" {
		t.Errorf("first.ID = %v", first.ID)
	}
	if first.StreamID != "feed/https://example.com/a" {
		t.Errorf("first.StreamID = %v", first.StreamID)
	}
	if !first.Published.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("first.Published = %v", first.Published)
	}
	if first.Title != "First" {
		t.Errorf("first.Title = %v", first.Title)
	}
	if first.Link != "https://example.com/posts/1" {
		t.Errorf("first.Link = %v", first.Link)
	}
	if first.Content != "<p>Hello <b>there</b></p>" {
		t.Errorf("first.Content = %v", first.Content)
	}
	if first.Summary != "Hello there" {
		t.Errorf("first.Summary = %v", first.Summary)
	}

	second := entries[1]
	if second.Title != "" || second.Link != "" {
		t.Errorf("absent optional fields should stay empty, got %+v", second)
	}
	if second.Content != "summary only" {
		t.Errorf("second.Content = %v, want summary fallback", second.Content)
	}
}

func TestParseEntries_AbsentIntermediateNodes(t *testing.T) {
	body := `{
		"items": [
			{"id": "item-1", "published": 1700000000, "alternate": null, "content": null}
		]
	}`

	entries, err := parseEntries("path", body, "feed/https://example.com/a")

	if err != nil {
		t.Fatalf("parseEntries returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("parseEntries returned %d entries, want 1", len(entries))
	}
	if entries[0].Link != "" || entries[0].Content != "" || entries[0].Summary != "" {
		t.Errorf("null intermediate nodes should yield absent fields, got %+v", entries[0])
	}
}

func TestParseEntries_DropsItemsWithoutID(t *testing.T) {
	body := `{
		"items": [
			{"published": 1700000000, "title": "no id"},
			{"id": "item-2", "published": 1700000000}
		]
	}`

	entries, err := parseEntries("path", body, "feed/https://example.com/a")

	if err != nil {
		t.Fatalf("parseEntries returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "item-2" {
		t.Errorf("items without an id should be dropped, got %+v", entries)
	}
}

func TestParseEntries_InvalidJSON(t *testing.T) {
	_, err := parseEntries("path", "oops", "feed/https://example.com/a")

	if !errors.IsResponseFormat(err) {
		t.Errorf("invalid JSON should surface a ResponseFormatError, got %T: %v", err, err)
	}
}

func TestParseEntries_EmptyItems(t *testing.T) {
	entries, err := parseEntries("path", `{"items": []}`, "feed/https://example.com/a")

	if err != nil {
		t.Fatalf("parseEntries returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("empty items should yield no entries, got %d", len(entries))
	}
}
