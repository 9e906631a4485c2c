package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ssakpotato/internal/dto"
	"ssakpotato/pkg/config"

	"go.uber.org/zap"
)

// ErrSessionExpired is returned when the server answers 401. The stored
// token is cleared first, so the next call goes out unauthenticated and the
// caller can decide how to re-authenticate.
var ErrSessionExpired = errors.New("session expired, please log in again")

// APIError is a non-2xx response from the server.
type APIError struct {
	Message string
	Status  int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Client is the SDK for the refrigerator server and the recipe service.
type Client struct {
	baseURL      string
	aiBaseURL    string
	httpClient   *http.Client
	tokens       TokenStore
	progressTick time.Duration
	logger       *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithTokenStore(store TokenStore) Option {
	return func(c *Client) { c.tokens = store }
}

func New(cfg *config.ClientConfig, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		aiBaseURL:    strings.TrimRight(cfg.AIServiceURL, "/"),
		httpClient:   &http.Client{Timeout: 60 * time.Second},
		tokens:       NewMemoryTokenStore(),
		progressTick: cfg.ProgressTick,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// request performs one JSON API call. There is no retry: a transport
// failure or error status surfaces to the caller as is.
func (c *Client) request(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Get(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	return c.decodeResponse(resp)
}

// decodeResponse applies the shared response contract: 401 ends the
// session, 204 and empty bodies decode to nil, other non-2xx statuses
// become an *APIError.
func (c *Client) decodeResponse(resp *http.Response) (json.RawMessage, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.tokens.Clear()
		c.logger.Warn("Session expired, token cleared")
		return nil, ErrSessionExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			Message: errorMessage(data, resp.StatusCode),
			Status:  resp.StatusCode,
		}
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	return data, nil
}

// errorMessage pulls the server's error field out of the body, falling back
// to the HTTP status text.
func errorMessage(data []byte, status int) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return http.StatusText(status)
}

// Register creates an account and starts a session.
func (c *Client) Register(ctx context.Context, username, email, password string) (*dto.AuthResponse, error) {
	return c.authenticate(ctx, "/api/auth/register", dto.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
}

// Login starts a session; the returned token is stored for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	return c.authenticate(ctx, "/api/auth/login", dto.LoginRequest{
		Email:    email,
		Password: password,
	})
}

func (c *Client) authenticate(ctx context.Context, endpoint string, body any) (*dto.AuthResponse, error) {
	raw, err := c.request(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, err
	}

	var resp dto.AuthResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %w", err)
	}

	c.tokens.Set(resp.AccessToken)
	return &resp, nil
}

// Logout drops the stored token.
func (c *Client) Logout() {
	c.tokens.Clear()
}
