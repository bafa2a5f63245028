// ABOUTME: Edit token management for mutating reader requests
// ABOUTME: The token lives in a 10-minute expiring cell, fetched lazily

package reader

import (
	"context"
	"strings"
	"time"

	"greader-client/core/errors"
)

const editTokenPath = "api/0/token"

// EditTokenTTL is the validity window of an edit token, counted from the
// moment it was fetched.
const EditTokenTTL = 10 * time.Minute

// fetchEditToken retrieves a fresh edit token. The session handshake happens
// first as a side effect of the executor asking the strategy for headers.
func (s *Service) fetchEditToken(ctx context.Context) (string, error) {
	body, err := s.send(ctx, editTokenPath, nil)
	if err != nil {
		return "", err
	}

	token := strings.TrimSpace(body)
	if token == "" {
		return "", &errors.ResponseFormatError{
			Path:    editTokenPath,
			Message: "token response is empty",
		}
	}
	return token, nil
}
