// ABOUTME: Reader service is the façade over the authenticated request pipeline
// ABOUTME: Lists subscriptions with unread counts, fetches entries, marks read

package reader

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"greader-client/core/auth"
	"greader-client/core/domain"
	"greader-client/core/errors"
	"greader-client/core/expiring"
	"greader-client/core/interfaces"
)

const (
	unreadCountPath    = "api/0/unread-count?output=json"
	subscriptionsPath  = "api/0/subscription/list?output=json"
	streamContentsPath = "api/0/stream/contents/"
	markAllReadPath    = "api/0/mark-all-as-read"
	editTagPath        = "api/0/edit-tag"

	// readStateTag is the read-state tag used both as the unread exclusion
	// filter and as the tag added by mark-as-read.
	readStateTag = "user/-/state/com.google/read"

	// successMarker is the literal body the service returns for a
	// successful mutating call.
	successMarker = "OK"

	// maxEntryCount is the largest entry count one stream fetch may request.
	maxEntryCount = 1000
)

const (
	feedsCacheKey = "greader:feeds"
	feedsCacheTTL = time.Minute
)

// Service composes the auth strategy, the request executor, the edit-token
// cell, and the response mapping into the client façade. One Service owns one
// authenticated session; independent sessions take independent Services.
type Service struct {
	deps     interfaces.Dependencies
	strategy auth.Strategy
	baseURL  string

	editToken *expiring.Value[string]
}

// NewService creates a reader service against the given base URL.
func NewService(deps interfaces.Dependencies, strategy auth.Strategy, baseURL string) *Service {
	s := &Service{
		deps:     deps,
		strategy: strategy,
		baseURL:  strings.TrimSuffix(baseURL, "/") + "/",
	}
	s.editToken = expiring.New(EditTokenTTL, s.fetchEditToken)
	return s
}

// EnsureAuthenticated performs the auth handshake if needed, without issuing
// any other request.
func (s *Service) EnsureAuthenticated(ctx context.Context) error {
	return s.strategy.EnsureAuthenticated(ctx)
}

// Reset discards the session credential, the edit token, and any cached
// responses. The next operation re-authenticates from scratch.
func (s *Service) Reset() {
	s.strategy.Reset()
	s.editToken.Reset()
	if s.deps.Cache != nil {
		_ = s.deps.Cache.Delete(context.Background(), feedsCacheKey)
	}
}

// GetFeeds returns one Feed per distinct subscribed feed id, with unread
// counts joined in. Feeds with no unread-count row report zero unread.
func (s *Service) GetFeeds(ctx context.Context) ([]domain.Feed, error) {
	if cached := s.cachedFeeds(ctx); cached != nil {
		return cached, nil
	}

	countsBody, err := s.send(ctx, unreadCountPath, nil)
	if err != nil {
		return nil, err
	}
	counts, err := parseUnreadCounts(unreadCountPath, countsBody)
	if err != nil {
		return nil, err
	}

	subsBody, err := s.send(ctx, subscriptionsPath, nil)
	if err != nil {
		return nil, err
	}
	subs, err := parseSubscriptions(subscriptionsPath, subsBody)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(subs))
	feeds := make([]domain.Feed, 0, len(subs))
	for _, sub := range subs {
		if seen[sub.ID] {
			continue
		}
		seen[sub.ID] = true

		feed, err := domain.NewFeed(sub.ID, sub.Title, counts[sub.ID])
		if err != nil {
			if s.deps.Logger != nil {
				s.deps.Logger.Warn("Skipping malformed subscription id", map[string]interface{}{
					"id":    sub.ID,
					"error": err.Error(),
				})
			}
			continue
		}
		feeds = append(feeds, feed)
	}

	s.cacheFeeds(ctx, feeds)
	return feeds, nil
}

// GetEntries fetches entries for one feed. A count between 1 and 1000
// requests that many most-recent entries; any other value requests up to
// 1000 unread entries, excluding everything tagged read.
func (s *Service) GetEntries(ctx context.Context, feedID string, count int) ([]domain.FeedEntry, error) {
	if err := domain.ValidateFeedID(feedID); err != nil {
		return nil, err
	}

	path := streamContentsPath + url.QueryEscape(feedID) + "?output=json"
	if count >= 1 && count <= maxEntryCount {
		path += "&n=" + strconv.Itoa(count)
	} else {
		path += "&n=" + strconv.Itoa(maxEntryCount) + "&xt=" + readStateTag
	}

	body, err := s.send(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	entries, err := parseEntries(path, body, feedID)
	if err != nil {
		return nil, err
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Fetched entries", map[string]interface{}{
			"feed":  feedID,
			"count": len(entries),
		})
	}
	return entries, nil
}

// MarkFeedAsRead marks every entry of the feed as read, bounded by the
// current time so entries arriving mid-call stay unread.
func (s *Service) MarkFeedAsRead(ctx context.Context, feedID string) error {
	if err := domain.ValidateFeedID(feedID); err != nil {
		return err
	}

	token, err := s.editToken.Get(ctx)
	if err != nil {
		return err
	}

	params := Params{}.
		Add("s", feedID).
		Add("ts", fmt.Sprintf("%d", time.Now().UnixMicro())).
		Add("T", token)

	return s.mutate(ctx, markAllReadPath, params, feedID)
}

// MarkEntryAsRead adds the read-state tag to a single entry.
func (s *Service) MarkEntryAsRead(ctx context.Context, entryID string) error {
	if entryID == "" {
		return &errors.ValidationError{Field: "id", Message: "entry id cannot be empty"}
	}

	token, err := s.editToken.Get(ctx)
	if err != nil {
		return err
	}

	params := Params{}.
		Add("i", entryID).
		Add("a", readStateTag).
		Add("T", token)

	return s.mutate(ctx, editTagPath, params, entryID)
}

// mutate issues one mutating request and requires the literal success marker.
func (s *Service) mutate(ctx context.Context, path string, params Params, targetID string) error {
	body, err := s.send(ctx, path, params)
	if err != nil {
		return err
	}

	if strings.TrimSpace(body) != successMarker {
		return &errors.OperationFailure{TargetID: targetID, Body: strings.TrimSpace(body)}
	}

	// Unread counts changed; drop the cached join
	if s.deps.Cache != nil {
		_ = s.deps.Cache.Delete(ctx, feedsCacheKey)
	}
	return nil
}

// cachedFeeds serves the subscription join from cache when present.
// Cache errors are treated as misses.
func (s *Service) cachedFeeds(ctx context.Context) []domain.Feed {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, feedsCacheKey)
	if err != nil || data == nil {
		return nil
	}

	var feeds []domain.Feed
	if err := json.Unmarshal(data, &feeds); err != nil {
		return nil
	}
	return feeds
}

// cacheFeeds stores the join briefly; failures are ignored.
func (s *Service) cacheFeeds(ctx context.Context, feeds []domain.Feed) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(feeds)
	if err != nil {
		return
	}
	_ = s.deps.Cache.Set(ctx, feedsCacheKey, data, feedsCacheTTL)
}
