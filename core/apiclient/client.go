package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/creditdost/portal/core/logger"
)

// TokenSource supplies the bearer token attached to authenticated
// requests. Any error from the source is treated as "no token": the
// request goes out unauthenticated and the backend decides.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client is the shared Credit Dost backend API client.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithTokenSource wires the durable token store into the client so the
// Authorization header tracks the persisted session automatically.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates the backend client. The base URL is required; failing
// fast here beats a confusing connection error later.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: BaseURL is required", ErrInvalidConfig)
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// apiError is the backend's 4xx payload: either a single message or a
// list of per-field details.
type apiError struct {
	Message string   `json:"message"`
	Details []string `json:"details"`
}

// do performs one round trip: marshal, send, classify, decode.
func (c *Client) do(ctx context.Context, method, path string, body, target any) error {
	start := time.Now()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		if token, terr := c.tokens.Token(ctx); terr == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.classifyFailure(ctx, method, path, resp, start)
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return errors.Join(ErrServer, fmt.Errorf("failed to decode response: %w", err))
		}
	}

	c.log.DebugContext(ctx, "backend request completed",
		logger.Component("apiclient"),
		logger.Endpoint(method+" "+path),
		logger.StatusCode(resp.StatusCode),
		logger.Elapsed(start),
	)
	return nil
}

func (c *Client) classifyFailure(ctx context.Context, method, path string, resp *http.Response, start time.Time) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	c.log.DebugContext(ctx, "backend request failed",
		logger.Component("apiclient"),
		logger.Endpoint(method+" "+path),
		logger.StatusCode(resp.StatusCode),
		logger.Elapsed(start),
	)

	var payload apiError
	_ = json.Unmarshal(data, &payload)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if payload.Message != "" {
			return fmt.Errorf("%w: %s", ErrUnauthorized, payload.Message)
		}
		return ErrUnauthorized
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrServer, resp.StatusCode)
	default:
		return &APIError{
			Status:  resp.StatusCode,
			Message: payload.Message,
			Details: payload.Details,
		}
	}
}
