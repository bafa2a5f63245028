// ABOUTME: Authentication strategy contract for the reader service
// ABOUTME: Strategies own the handshake and supply per-request auth headers

package auth

import "context"

// Strategy is the pluggable authentication capability of a client.
// Two variants exist: the password strategy (ClientLogin cookie pair) and the
// OAuth strategy (refresh token exchanged for a bearer token). A strategy is
// chosen at client construction time and owns its credential lifecycle.
type Strategy interface {
	// EnsureAuthenticated performs the strategy-specific handshake if no
	// valid credential is held. It is a no-op when already authenticated.
	EnsureAuthenticated(ctx context.Context) error

	// Headers returns the auth presentation for one request, performing the
	// handshake first if necessary.
	Headers(ctx context.Context) (map[string]string, error)

	// Reset discards the held credential so the next call re-authenticates.
	Reset()
}
