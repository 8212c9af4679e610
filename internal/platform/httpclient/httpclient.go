// Package httpclient is a small JSON-over-HTTP client for service-to-service
// and third-party calls.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// StatusError is returned for non-2xx responses. Body holds up to 64 KiB of
// the response.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, strings.TrimSpace(string(e.Body)))
}

// Client issues JSON requests against a base URL.
type Client struct {
	baseURL string
	headers http.Header
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds every request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHeader sets a header on every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Set(key, value) }
}

// WithHTTPClient replaces the underlying client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// NewClient creates a client for baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: make(http.Header),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Post sends req as JSON to path and decodes a 2xx response into resp (if
// non-nil). Non-2xx responses return *StatusError; when resp is non-nil the
// body is decoded into it as well so callers can read error payloads.
func (c *Client) Post(ctx context.Context, path string, req, resp any) error {
	return c.do(ctx, http.MethodPost, path, req, resp)
}

// Get issues a GET and decodes the response into resp.
func (c *Client) Get(ctx context.Context, path string, resp any) error {
	return c.do(ctx, http.MethodGet, path, nil, resp)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	for k, v := range c.headers {
		req.Header[k] = v
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(io.LimitReader(res.Body, 64<<10))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if jerr := json.Unmarshal(data, out); jerr != nil && res.StatusCode < 300 {
			return fmt.Errorf("decode response: %w", jerr)
		}
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &StatusError{StatusCode: res.StatusCode, Body: data}
	}
	return nil
}
