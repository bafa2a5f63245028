package auth

import (
	"context"
	"errors"
	"testing"

	coreerrors "greader-client/core/errors"
	"greader-client/core/interfaces"
)

const loginBody = "SID=sid-value\nLSID=ignored\nAuth=auth-value\n"

func passwordDeps(client *mockHTTPClient) interfaces.Dependencies {
	return interfaces.Dependencies{HTTPClient: client}
}

func TestPasswordStrategy_Login(t *testing.T) {
	var gotURL, gotBody string
	client := &mockHTTPClient{
		postFormFunc: func(ctx context.Context, url string, body string, headers map[string]string) (interfaces.Response, error) {
			gotURL = url
			gotBody = body
			return &mockResponse{statusCode: 200, body: loginBody}, nil
		},
	}
	s := NewPasswordStrategy(passwordDeps(client), "https://reader.example.com", "alice", "secret")

	headers, err := s.Headers(context.Background())

	if err != nil {
		t.Fatalf("Headers returned error: %v", err)
	}
	if gotURL != "https://reader.example.com/accounts/ClientLogin" {
		t.Errorf("login URL = %v", gotURL)
	}
	expectedBody := "accountType=HOSTED_OR_GOOGLE&Email=alice&Passwd=secret&service=reader"
	if gotBody != expectedBody {
		t.Errorf("login body = %v, want %v", gotBody, expectedBody)
	}
	if headers["Authorization"] != "GoogleLogin auth=auth-value" {
		t.Errorf("Authorization = %v", headers["Authorization"])
	}
	if headers["Cookie"] != "SID=sid-value" {
		t.Errorf("Cookie = %v", headers["Cookie"])
	}
}

func TestPasswordStrategy_LoginOnce(t *testing.T) {
	calls := 0
	client := &mockHTTPClient{
		postFormFunc: func(ctx context.Context, url string, body string, headers map[string]string) (interfaces.Response, error) {
			calls++
			return &mockResponse{statusCode: 200, body: loginBody}, nil
		},
	}
	s := NewPasswordStrategy(passwordDeps(client), "https://reader.example.com", "alice", "secret")

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if err := s.EnsureAuthenticated(ctx); err != nil {
			t.Fatalf("EnsureAuthenticated returned error: %v", err)
		}
	}

	if calls != 1 {
		t.Errorf("login performed %d times, want 1", calls)
	}
}

func TestPasswordStrategy_Forbidden(t *testing.T) {
	client := &mockHTTPClient{
		postFormFunc: func(ctx context.Context, url string, body string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 403, body: "Error=BadAuthentication"}, nil
		},
	}
	s := NewPasswordStrategy(passwordDeps(client), "https://reader.example.com", "alice", "wrong")

	err := s.EnsureAuthenticated(context.Background())

	if err == nil {
		t.Fatal("EnsureAuthenticated should fail on 403")
	}
	if !coreerrors.IsCredential(err) {
		t.Errorf("403 should surface a CredentialError, got %T: %v", err, err)
	}
}

func TestPasswordStrategy_ServerError(t *testing.T) {
	client := &mockHTTPClient{
		postFormFunc: func(ctx context.Context, url string, body string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 503, body: "unavailable"}, nil
		},
	}
	s := NewPasswordStrategy(passwordDeps(client), "https://reader.example.com", "alice", "secret")

	err := s.EnsureAuthenticated(context.Background())

	if !coreerrors.IsRequestFailure(err) {
		t.Errorf("non-403 status should surface a RequestFailure, got %T: %v", err, err)
	}
}

func TestPasswordStrategy_TransportError(t *testing.T) {
	client := &mockHTTPClient{
		postFormFunc: func(ctx context.Context, url string, body string, headers map[string]string) (interfaces.Response, error) {
			return nil, errors.New("connection refused")
		},
	}
	s := NewPasswordStrategy(passwordDeps(client), "https://reader.example.com", "alice", "secret")

	err := s.EnsureAuthenticated(context.Background())

	if !coreerrors.IsRequestFailure(err) {
		t.Errorf("transport error should surface a RequestFailure, got %T: %v", err, err)
	}
}

func TestPasswordStrategy_MissingMarkers(t *testing.T) {
	client := &mockHTTPClient{
		postFormFunc: func(ctx context.Context, url string, body string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: "SID=only-sid\n"}, nil
		},
	}
	s := NewPasswordStrategy(passwordDeps(client), "https://reader.example.com", "alice", "secret")

	err := s.EnsureAuthenticated(context.Background())

	if !coreerrors.IsResponseFormat(err) {
		t.Errorf("missing markers should surface a ResponseFormatError, got %T: %v", err, err)
	}
}

func TestPasswordStrategy_FailureNotCached(t *testing.T) {
	calls := 0
	client := &mockHTTPClient{
		postFormFunc: func(ctx context.Context, url string, body string, headers map[string]string) (interfaces.Response, error) {
			calls++
			if calls == 1 {
				return &mockResponse{statusCode: 503, body: ""}, nil
			}
			return &mockResponse{statusCode: 200, body: loginBody}, nil
		},
	}
	s := NewPasswordStrategy(passwordDeps(client), "https://reader.example.com", "alice", "secret")

	ctx := context.Background()
	if err := s.EnsureAuthenticated(ctx); err == nil {
		t.Fatal("first attempt should fail")
	}
	if err := s.EnsureAuthenticated(ctx); err != nil {
		t.Fatalf("second attempt should log in again, got %v", err)
	}
	if calls != 2 {
		t.Errorf("login attempted %d times, want 2", calls)
	}
}

func TestPasswordStrategy_Reset(t *testing.T) {
	calls := 0
	client := &mockHTTPClient{
		postFormFunc: func(ctx context.Context, url string, body string, headers map[string]string) (interfaces.Response, error) {
			calls++
			return &mockResponse{statusCode: 200, body: loginBody}, nil
		},
	}
	s := NewPasswordStrategy(passwordDeps(client), "https://reader.example.com", "alice", "secret")

	ctx := context.Background()
	if err := s.EnsureAuthenticated(ctx); err != nil {
		t.Fatalf("EnsureAuthenticated returned error: %v", err)
	}

	s.Reset()

	if err := s.EnsureAuthenticated(ctx); err != nil {
		t.Fatalf("EnsureAuthenticated after Reset returned error: %v", err)
	}
	if calls != 2 {
		t.Errorf("login performed %d times, want 2 after Reset", calls)
	}
}

func TestParseLoginBody_WindowsLineEndings(t *testing.T) {
	cred, err := parseLoginBody("SID=s\r\nAuth=a\r\n")

	if err != nil {
		t.Fatalf("parseLoginBody returned error: %v", err)
	}
	if cred.SID != "s" || cred.Auth != "a" {
		t.Errorf("parseLoginBody = %+v, want SID=s Auth=a", cred)
	}
}
