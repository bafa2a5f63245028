// ABOUTME: Functional options for configuring the greader client
// ABOUTME: Each option tweaks one aspect of the Config before construction

package greader

import (
	"errors"
	"time"

	"greader-client/core/interfaces"
)

// Option configures the client
type Option func(*Config) error

// WithPasswordAuth authenticates with the ClientLogin username/password flow.
func WithPasswordAuth(username, password string) Option {
	return func(c *Config) error {
		if username == "" {
			return errors.New("greader: username cannot be empty")
		}
		c.Username = username
		c.Password = password
		return nil
	}
}

// WithOAuth authenticates with an OAuth refresh token.
func WithOAuth(clientID, clientSecret, refreshToken string) Option {
	return func(c *Config) error {
		if refreshToken == "" {
			return errors.New("greader: refresh token cannot be empty")
		}
		c.ClientID = clientID
		c.ClientSecret = clientSecret
		c.RefreshToken = refreshToken
		return nil
	}
}

// WithAccessTokenTTL overrides how long a fetched OAuth access token is
// reused before a fresh one is requested.
func WithAccessTokenTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		if ttl <= 0 {
			return errors.New("greader: access token TTL must be positive")
		}
		c.AccessTokenTTL = ttl
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		if client == nil {
			return errors.New("greader: HTTP client cannot be nil")
		}
		c.HTTPClient = client
		return nil
	}
}

// WithTimeout sets the per-request timeout used by the default HTTP client.
// Ignored when WithHTTPClient is also supplied.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return errors.New("greader: timeout must be positive")
		}
		c.Timeout = timeout
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		if logger == nil {
			return errors.New("greader: logger cannot be nil")
		}
		c.Logger = logger
		return nil
	}
}

// WithQuietMode discards all log output.
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// WithCache enables response caching on the given backend.
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		if cache == nil {
			return errors.New("greader: cache cannot be nil")
		}
		c.Cache = cache
		return nil
	}
}
