package reader

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"greader-client/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc      func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error)
	postFormFunc func(ctx context.Context, url string, body string, headers map[string]string) (interfaces.Response, error)

	mu       sync.Mutex
	getURLs  []string
	postURLs []string
}

func (m *mockHTTPClient) Get(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	m.mu.Lock()
	m.getURLs = append(m.getURLs, url)
	m.mu.Unlock()

	if m.getFunc != nil {
		return m.getFunc(ctx, url, headers)
	}
	return &mockResponse{statusCode: 200, body: "{}"}, nil
}

func (m *mockHTTPClient) PostForm(ctx context.Context, url string, body string, headers map[string]string) (interfaces.Response, error) {
	m.mu.Lock()
	m.postURLs = append(m.postURLs, url)
	m.mu.Unlock()

	if m.postFormFunc != nil {
		return m.postFormFunc(ctx, url, body, headers)
	}
	return &mockResponse{statusCode: 200, body: "OK"}, nil
}

func (m *mockHTTPClient) requestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.getURLs) + len(m.postURLs)
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMockCache() *mockCache {
	return &mockCache{items: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if data, ok := m.items[key]; ok {
		return data, nil
	}
	return nil, errCacheMiss
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

var errCacheMiss = &cacheMissError{}

type cacheMissError struct{}

func (e *cacheMissError) Error() string { return "key not found" }

// fakeStrategy is a canned auth.Strategy for exercising the executor
type fakeStrategy struct {
	headers     map[string]string
	headersErr  error
	ensureCalls int
	resetCalls  int
}

func (f *fakeStrategy) EnsureAuthenticated(ctx context.Context) error {
	f.ensureCalls++
	return f.headersErr
}

func (f *fakeStrategy) Headers(ctx context.Context) (map[string]string, error) {
	if f.headersErr != nil {
		return nil, f.headersErr
	}
	if f.headers != nil {
		return f.headers, nil
	}
	return map[string]string{"Authorization": "GoogleLogin auth=test"}, nil
}

func (f *fakeStrategy) Reset() {
	f.resetCalls++
}

func newTestService(client *mockHTTPClient) *Service {
	deps := interfaces.Dependencies{HTTPClient: client}
	return NewService(deps, &fakeStrategy{}, "https://reader.example.com")
}
