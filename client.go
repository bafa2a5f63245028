// ABOUTME: Main client for the greader library, a Reader-API feed aggregation client
// ABOUTME: Offers a clean façade over authentication, fetching, and mark-as-read

package greader

import (
	"context"
	"errors"
	"time"

	"greader-client/core/auth"
	"greader-client/core/domain"
	"greader-client/core/interfaces"
	"greader-client/core/reader"
)

// Feed is a subscribed feed with its unread count.
type Feed = domain.Feed

// FeedEntry is one entry fetched from a feed stream.
type FeedEntry = domain.FeedEntry

// Client is the main entry point for the greader library. One Client owns one
// authenticated session; create separate Clients for independent sessions.
type Client struct {
	service *reader.Service
	deps    interfaces.Dependencies
	config  Config
}

// Config holds the configuration for the client
type Config struct {
	// BaseURL is the root of the Reader-compatible API
	BaseURL string

	// HTTP client configuration
	HTTPClient interfaces.HTTPClient

	// Logger configuration
	Logger interfaces.Logger

	// Cache enables short-lived response caching when set
	Cache interfaces.Cache

	// Per-request timeout used when HTTPClient is not supplied
	Timeout time.Duration

	// Password strategy credentials
	Username string
	Password string

	// OAuth strategy credentials
	ClientID     string
	ClientSecret string
	RefreshToken string

	// AccessTokenTTL overrides the OAuth access-token validity window
	AccessTokenTTL time.Duration
}

// NewClient creates a new greader client with the given options.
// Exactly one auth strategy must be configured, via WithPasswordAuth or
// WithOAuth.
func NewClient(baseURL string, options ...Option) (*Client, error) {
	config := defaultConfig()
	config.BaseURL = baseURL

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	if config.HTTPClient == nil {
		config.HTTPClient = DefaultHTTPClient(config.Timeout)
	}
	if config.Logger == nil {
		config.Logger = DefaultLogger()
	}

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
		Cache:      config.Cache,
	}

	var strategy auth.Strategy
	if config.Username != "" {
		strategy = auth.NewPasswordStrategy(deps, config.BaseURL, config.Username, config.Password)
	} else {
		strategy = auth.NewOAuthStrategy(deps, config.BaseURL,
			config.ClientID, config.ClientSecret, config.RefreshToken, config.AccessTokenTTL)
	}

	return &Client{
		service: reader.NewService(deps, strategy, config.BaseURL),
		deps:    deps,
		config:  config,
	}, nil
}

// validateConfig checks the configuration before the client is built
func validateConfig(config *Config) error {
	if config.BaseURL == "" {
		return errors.New("greader: base URL cannot be empty")
	}

	hasPassword := config.Username != ""
	hasOAuth := config.RefreshToken != ""
	if hasPassword == hasOAuth {
		return errors.New("greader: exactly one of password auth and OAuth must be configured")
	}
	return nil
}

// EnsureAuthenticated performs the auth handshake eagerly. Calling it is
// optional; every operation authenticates on demand.
func (c *Client) EnsureAuthenticated(ctx context.Context) error {
	return c.service.EnsureAuthenticated(ctx)
}

// GetFeeds returns all subscribed feeds with their unread counts.
func (c *Client) GetFeeds(ctx context.Context) ([]Feed, error) {
	return c.service.GetFeeds(ctx)
}

// GetEntries fetches entries for one feed. A count between 1 and 1000
// requests that many most-recent entries; any other value (including zero)
// requests up to 1000 unread entries.
func (c *Client) GetEntries(ctx context.Context, feed Feed, count int) ([]FeedEntry, error) {
	return c.service.GetEntries(ctx, feed.ID, count)
}

// GetEntriesByID is GetEntries addressed by feed id.
func (c *Client) GetEntriesByID(ctx context.Context, feedID string, count int) ([]FeedEntry, error) {
	return c.service.GetEntries(ctx, feedID, count)
}

// GetEntriesForFeeds fans entry fetching out across feeds with bounded
// concurrency and groups the results by feed id.
func (c *Client) GetEntriesForFeeds(ctx context.Context, feeds []Feed, count int) (map[string][]FeedEntry, error) {
	return c.service.GetEntriesBatch(ctx, feeds, count)
}

// MarkFeedAsRead marks every entry of the feed as read.
func (c *Client) MarkFeedAsRead(ctx context.Context, feed Feed) error {
	return c.service.MarkFeedAsRead(ctx, feed.ID)
}

// MarkFeedAsReadByID is MarkFeedAsRead addressed by feed id.
func (c *Client) MarkFeedAsReadByID(ctx context.Context, feedID string) error {
	return c.service.MarkFeedAsRead(ctx, feedID)
}

// MarkEntryAsRead marks a single entry as read.
func (c *Client) MarkEntryAsRead(ctx context.Context, entry FeedEntry) error {
	return c.service.MarkEntryAsRead(ctx, entry.ID)
}

// MarkEntryAsReadByID is MarkEntryAsRead addressed by entry id.
func (c *Client) MarkEntryAsReadByID(ctx context.Context, entryID string) error {
	return c.service.MarkEntryAsRead(ctx, entryID)
}

// MarkFeedsAsRead marks many feeds as read with bounded concurrency.
func (c *Client) MarkFeedsAsRead(ctx context.Context, feeds []Feed) error {
	return c.service.MarkFeedsAsRead(ctx, feeds)
}

// MarkEntriesAsRead marks many entries as read with bounded concurrency.
func (c *Client) MarkEntriesAsRead(ctx context.Context, entries []FeedEntry) error {
	return c.service.MarkEntriesAsRead(ctx, entries)
}

// Reset discards the session credential and edit token. The next operation
// re-authenticates from scratch.
func (c *Client) Reset() {
	c.service.Reset()
}
