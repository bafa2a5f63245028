// ABOUTME: Request executor builds and sends one authenticated reader request
// ABOUTME: GET by default, form-encoded POST when parameters are present

package reader

import (
	"context"
	"io"

	"greader-client/core/errors"
	"greader-client/core/interfaces"
)

// send executes one request against the service. The active auth strategy
// supplies the auth presentation; params, when non-empty, force a form POST.
// The raw body text is returned on success; every failure mode is classified,
// nothing is silently dropped.
func (s *Service) send(ctx context.Context, path string, params Params) (string, error) {
	headers, err := s.strategy.Headers(ctx)
	if err != nil {
		return "", err
	}

	hasBody := len(params) > 0

	var resp interfaces.Response
	if hasBody {
		resp, err = s.deps.HTTPClient.PostForm(ctx, s.baseURL+path, params.Encode(), headers)
	} else {
		resp, err = s.deps.HTTPClient.Get(ctx, s.baseURL+path, headers)
	}
	if err != nil {
		return "", &errors.RequestFailure{Path: path, HasBody: hasBody, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", &errors.RequestFailure{
			Path:       path,
			StatusCode: resp.StatusCode(),
			HasBody:    hasBody,
		}
	}

	raw, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", &errors.RequestFailure{Path: path, HasBody: hasBody, Err: err}
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Request completed", map[string]interface{}{
			"path": path,
			"post": hasBody,
		})
	}
	return string(raw), nil
}
