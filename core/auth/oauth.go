// ABOUTME: OAuth strategy exchanges a refresh token for short-lived bearer tokens
// ABOUTME: The access token is time-boxed and refreshed proactively on expiry

package auth

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"time"

	"greader-client/core/errors"
	"greader-client/core/expiring"
	"greader-client/core/interfaces"
)

const tokenPath = "o/oauth2/token"

// DefaultAccessTokenTTL is how long an access token is trusted before a
// proactive refresh. Kept below the service's one-hour validity.
const DefaultAccessTokenTTL = 45 * time.Minute

// OAuthStrategy authenticates by exchanging a long-lived refresh token for a
// short-lived access token. There is no login state machine: the access token
// cell itself carries the expiry.
type OAuthStrategy struct {
	deps         interfaces.Dependencies
	baseURL      string
	clientID     string
	clientSecret string
	refreshToken string

	access *expiring.Value[string]
}

// NewOAuthStrategy creates the refresh-token-based strategy. A non-positive
// ttl falls back to DefaultAccessTokenTTL.
func NewOAuthStrategy(deps interfaces.Dependencies, baseURL, clientID, clientSecret, refreshToken string, ttl time.Duration) *OAuthStrategy {
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}
	s := &OAuthStrategy{
		deps:         deps,
		baseURL:      strings.TrimSuffix(baseURL, "/") + "/",
		clientID:     clientID,
		clientSecret: clientSecret,
		refreshToken: refreshToken,
	}
	s.access = expiring.New(ttl, s.refresh)
	return s
}

// EnsureAuthenticated obtains an access token if none is held or the held one
// has expired.
func (s *OAuthStrategy) EnsureAuthenticated(ctx context.Context) error {
	_, err := s.access.Get(ctx)
	return err
}

// Headers returns the bearer Authorization header.
func (s *OAuthStrategy) Headers(ctx context.Context) (map[string]string, error) {
	token, err := s.access.Get(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"Authorization": "Bearer " + token,
	}, nil
}

// Reset discards the access token so the next call refreshes.
func (s *OAuthStrategy) Reset() {
	s.access.Reset()
}

// refresh exchanges the refresh token for a new access token.
// Unlike the password strategy, a 403 here carries no special meaning.
func (s *OAuthStrategy) refresh(ctx context.Context) (string, error) {
	body := "client_id=" + s.clientID +
		"&client_secret=" + s.clientSecret +
		"&refresh_token=" + s.refreshToken +
		"&grant_type=refresh_token"

	resp, err := s.deps.HTTPClient.PostForm(ctx, s.baseURL+tokenPath, body, nil)
	if err != nil {
		return "", &errors.RequestFailure{Path: tokenPath, HasBody: true, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", &errors.RequestFailure{
			Path:       tokenPath,
			StatusCode: resp.StatusCode(),
			HasBody:    true,
		}
	}

	raw, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", &errors.RequestFailure{Path: tokenPath, HasBody: true, Err: err}
	}

	var parsed struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &errors.ResponseFormatError{
			Path:    tokenPath,
			Message: "token response is not valid JSON",
		}
	}
	if parsed.AccessToken == "" {
		return "", &errors.ResponseFormatError{
			Path:    tokenPath,
			Message: "token response missing access_token",
		}
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Refreshed access token", map[string]interface{}{
			"client_id": s.clientID,
		})
	}
	return parsed.AccessToken, nil
}
