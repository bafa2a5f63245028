// ABOUTME: Maps raw JSON reader responses onto domain records
// ABOUTME: Navigation is null-safe so absent fields stay absent, never panic

package reader

import (
	"encoding/json"
	"strings"
	"time"

	"greader-client/core/domain"
	"greader-client/core/errors"
	htmlutil "greader-client/pkg/utils/html"
)

// subscription is one row of the subscription-list response before joining
// with the unread counts.
type subscription struct {
	ID    string
	Title string
}

// parseJSONObject decodes body into a generic JSON object. A body that is not
// valid JSON, or not an object, means the remote API contract changed.
func parseJSONObject(path, body string) (map[string]interface{}, error) {
	var node map[string]interface{}
	if err := json.Unmarshal([]byte(body), &node); err != nil {
		return nil, &errors.ResponseFormatError{
			Path:    path,
			Message: "body is not a JSON object",
		}
	}
	return node, nil
}

// objectField navigates to a nested object; absence yields nil, not an error.
func objectField(node map[string]interface{}, key string) map[string]interface{} {
	if node == nil {
		return nil
	}
	child, _ := node[key].(map[string]interface{})
	return child
}

// arrayField navigates to a nested array; absence yields nil.
func arrayField(node map[string]interface{}, key string) []interface{} {
	if node == nil {
		return nil
	}
	child, _ := node[key].([]interface{})
	return child
}

// stringField reads a string leaf; absent or null yields the empty string.
func stringField(node map[string]interface{}, key string) string {
	if node == nil {
		return ""
	}
	value, _ := node[key].(string)
	return value
}

// intField reads a numeric leaf. encoding/json decodes numbers as float64.
func intField(node map[string]interface{}, key string) (int64, bool) {
	if node == nil {
		return 0, false
	}
	value, ok := node[key].(float64)
	if !ok {
		return 0, false
	}
	return int64(value), true
}

// parseUnreadCounts extracts per-feed unread counts, keyed by stream id.
// Non-feed stream ids (folders, tags, reading state) are filtered out.
func parseUnreadCounts(path, body string) (map[string]int, error) {
	node, err := parseJSONObject(path, body)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, raw := range arrayField(node, "unreadcounts") {
		row, _ := raw.(map[string]interface{})
		id := stringField(row, "id")
		if !strings.HasPrefix(id, domain.FeedIDPrefix) {
			continue
		}
		if count, ok := intField(row, "count"); ok && count > 0 {
			counts[id] = int(count)
		} else {
			counts[id] = 0
		}
	}
	return counts, nil
}

// parseSubscriptions extracts the subscribed feeds in response order.
// Only feed/ stream ids are considered.
func parseSubscriptions(path, body string) ([]subscription, error) {
	node, err := parseJSONObject(path, body)
	if err != nil {
		return nil, err
	}

	var subs []subscription
	for _, raw := range arrayField(node, "subscriptions") {
		row, _ := raw.(map[string]interface{})
		id := stringField(row, "id")
		if !strings.HasPrefix(id, domain.FeedIDPrefix) {
			continue
		}
		subs = append(subs, subscription{
			ID:    id,
			Title: stringField(row, "title"),
		})
	}
	return subs, nil
}

// parseEntries extracts the entries of one stream-contents response.
// Optional fields navigate null-safely: a missing intermediate node yields an
// absent field rather than a failure. Items without an id are dropped.
func parseEntries(path, body, streamID string) ([]domain.FeedEntry, error) {
	node, err := parseJSONObject(path, body)
	if err != nil {
		return nil, err
	}

	var entries []domain.FeedEntry
	for _, raw := range arrayField(node, "items") {
		item, _ := raw.(map[string]interface{})
		id := stringField(item, "id")
		if id == "" {
			continue
		}

		var published time.Time
		if unix, ok := intField(item, "published"); ok {
			published = time.Unix(unix, 0)
		}

		entry, err := domain.NewFeedEntry(id, streamID, published)
		if err != nil {
			continue
		}

		entry.Title = stringField(item, "title")
		entry.Link = firstAlternateHref(item)
		entry.Content = entryContent(item)
		if entry.Content != "" {
			entry.Summary = htmlutil.StripHTML(entry.Content)
		}

		entries = append(entries, entry)
	}
	return entries, nil
}

// firstAlternateHref returns the href of the first alternate link, if any.
func firstAlternateHref(item map[string]interface{}) string {
	alternates := arrayField(item, "alternate")
	if len(alternates) == 0 {
		return ""
	}
	first, _ := alternates[0].(map[string]interface{})
	return stringField(first, "href")
}

// entryContent prefers the full content node and falls back to the summary.
func entryContent(item map[string]interface{}) string {
	if content := stringField(objectField(item, "content"), "content"); content != "" {
		return content
	}
	return stringField(objectField(item, "summary"), "content")
}
