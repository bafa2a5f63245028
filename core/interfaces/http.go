package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for making HTTP requests.
// This abstraction allows for easy mocking in tests and switching between
// different HTTP client implementations (standard library, instrumented
// client, etc.) The headers map carries the per-request auth presentation
// (Authorization header, session cookie) chosen by the active strategy.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL with the given
	// headers. Returns a Response interface or an error if the request fails.
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)

	// PostForm performs an HTTP POST request with a form-encoded body.
	// The body is sent verbatim; callers are responsible for its encoding.
	PostForm(ctx context.Context, url string, body string, headers map[string]string) (Response, error)
}

// Response defines the interface for HTTP responses.
// This abstraction allows different HTTP client implementations to provide
// their own response types while maintaining a consistent interface.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Returns an empty string if the header is not present.
	// Header names are case-insensitive.
	Header(key string) string
}
