package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ssakpotato/pkg/config"

	"go.uber.org/zap"
)

func newTestClient(serverURL string) *Client {
	return New(&config.ClientConfig{
		BaseURL:      serverURL,
		AIServiceURL: serverURL,
		ProgressTick: 0,
	}, zap.NewNop())
}

func TestRequestAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	c.tokens.Set("token-123")

	if _, err := c.ListItems(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer token-123" {
		t.Errorf("Authorization = %q, want Bearer token-123", gotAuth)
	}
}

func TestRequestSessionExpiry(t *testing.T) {
	var lastAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastAuth = r.Header.Get("Authorization")
		if lastAuth != "" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"token expired"}`))
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	c.tokens.Set("stale-token")

	_, err := c.ListItems(context.Background())
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("err = %v, want ErrSessionExpired", err)
	}
	if c.tokens.Get() != "" {
		t.Fatal("token not cleared after 401")
	}

	// The next call goes out without the stale credential.
	if _, err := c.ListItems(context.Background()); err != nil {
		t.Fatalf("unexpected error after session expiry: %v", err)
	}
	if lastAuth != "" {
		t.Errorf("Authorization after clear = %q, want empty", lastAuth)
	}
}

func TestRequestAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"User already exists"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Register(context.Background(), "demo", "demo@example.com", "pw")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusConflict {
		t.Errorf("Status = %d, want 409", apiErr.Status)
	}
	if apiErr.Message != "User already exists" {
		t.Errorf("Message = %q, want server error text", apiErr.Message)
	}
}

func TestRequestAPIErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.ListItems(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Message != http.StatusText(http.StatusBadGateway) {
		t.Errorf("Message = %q, want status text fallback", apiErr.Message)
	}
}

func TestRequestNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if err := c.DeleteItem(context.Background(), "some-id"); err != nil {
		t.Fatalf("DeleteItem on 204 = %v, want nil", err)
	}
}

func TestRequestNetworkError(t *testing.T) {
	c := newTestClient("http://127.0.0.1:1") // nothing listens here

	_, err := c.ListItems(context.Background())
	if err == nil {
		t.Fatal("expected a transport error")
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("transport failure surfaced as *APIError: %v", err)
	}
	if errors.Is(err, ErrSessionExpired) {
		t.Fatalf("transport failure surfaced as session expiry: %v", err)
	}
}

func TestLoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"accessToken":"fresh-token","refreshToken":"r","tokenType":"Bearer","expiresIn":3600,"user":{"id":"1","username":"demo","email":"demo@example.com"}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	resp, err := c.Login(context.Background(), "demo@example.com", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.User.Username != "demo" {
		t.Errorf("Username = %q, want demo", resp.User.Username)
	}
	if c.tokens.Get() != "fresh-token" {
		t.Errorf("stored token = %q, want fresh-token", c.tokens.Get())
	}

	c.Logout()
	if c.tokens.Get() != "" {
		t.Error("Logout did not clear token")
	}
}
