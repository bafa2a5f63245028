// ABOUTME: Password strategy authenticates via the ClientLogin endpoint
// ABOUTME: Parses the SID/Auth cookie pair and presents it on every request

package auth

import (
	"context"
	"io"
	"strings"

	"greader-client/core/errors"
	"greader-client/core/expiring"
	"greader-client/core/interfaces"
)

const (
	loginPath = "accounts/ClientLogin"

	// authScheme is the custom Authorization scheme the service expects
	// from cookie-based sessions.
	authScheme = "GoogleLogin"
)

// credential is the cookie pair produced by a successful ClientLogin.
type credential struct {
	SID  string
	Auth string
}

// PasswordStrategy authenticates with username and password and holds the
// resulting session cookie pair. The pair is valid until the service
// invalidates it, so the cell carries no client-side expiry.
type PasswordStrategy struct {
	deps     interfaces.Dependencies
	baseURL  string
	username string
	password string

	session *expiring.Value[credential]
}

// NewPasswordStrategy creates the ClientLogin-based strategy.
func NewPasswordStrategy(deps interfaces.Dependencies, baseURL, username, password string) *PasswordStrategy {
	s := &PasswordStrategy{
		deps:     deps,
		baseURL:  strings.TrimSuffix(baseURL, "/") + "/",
		username: username,
		password: password,
	}
	s.session = expiring.New(0, s.login)
	return s
}

// EnsureAuthenticated logs in if no session is held.
func (s *PasswordStrategy) EnsureAuthenticated(ctx context.Context) error {
	_, err := s.session.Get(ctx)
	return err
}

// Headers returns the GoogleLogin Authorization header plus the SID cookie.
func (s *PasswordStrategy) Headers(ctx context.Context) (map[string]string, error) {
	cred, err := s.session.Get(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"Authorization": authScheme + " auth=" + cred.Auth,
		"Cookie":        "SID=" + cred.SID,
	}, nil
}

// Reset discards the session so the next call logs in again.
func (s *PasswordStrategy) Reset() {
	s.session.Reset()
}

// login submits the credentials and parses the SID/Auth markers.
// A 403 means the credentials themselves were rejected; any other non-2xx
// status is a transport-level failure.
func (s *PasswordStrategy) login(ctx context.Context) (credential, error) {
	body := "accountType=HOSTED_OR_GOOGLE" +
		"&Email=" + s.username +
		"&Passwd=" + s.password +
		"&service=reader"

	resp, err := s.deps.HTTPClient.PostForm(ctx, s.baseURL+loginPath, body, nil)
	if err != nil {
		return credential{}, &errors.RequestFailure{Path: loginPath, HasBody: true, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() == 403 {
		return credential{}, &errors.CredentialError{Username: s.username}
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return credential{}, &errors.RequestFailure{
			Path:       loginPath,
			StatusCode: resp.StatusCode(),
			HasBody:    true,
		}
	}

	raw, err := io.ReadAll(resp.Body())
	if err != nil {
		return credential{}, &errors.RequestFailure{Path: loginPath, HasBody: true, Err: err}
	}

	cred, err := parseLoginBody(string(raw))
	if err != nil {
		return credential{}, err
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Logged in", map[string]interface{}{
			"user": s.username,
		})
	}
	return cred, nil
}

// parseLoginBody extracts the SID= and Auth= markers from the login response.
func parseLoginBody(body string) (credential, error) {
	var cred credential
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "SID="):
			cred.SID = strings.TrimPrefix(line, "SID=")
		case strings.HasPrefix(line, "Auth="):
			cred.Auth = strings.TrimPrefix(line, "Auth=")
		}
	}

	if cred.SID == "" || cred.Auth == "" {
		return credential{}, &errors.ResponseFormatError{
			Path:    loginPath,
			Message: "response missing SID/Auth markers",
		}
	}
	return cred, nil
}
