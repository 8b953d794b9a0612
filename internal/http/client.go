package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/text/encoding/unicode"
)

const (
	// DefaultUserAgent identifies playlist-filter to playlist hosts.
	DefaultUserAgent = "Mozilla/5.0 (playlist-filter/1.0)"

	// DefaultTimeout bounds a single request.
	DefaultTimeout = 30 * time.Second
)

// Client wraps HTTP operations with playlist-filter configuration.
//
// Client provides:
//   - Configured User-Agent header
//   - Timeout handling
//   - Text retrieval with lenient UTF-8 decoding
//
// Example usage:
//
//	client := NewClient()
//
//	// Fetch playlist content
//	text, err := client.GetString(ctx, "https://example.com/channels.m3u")
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient replaces the underlying *http.Client. Options applied
// after it still adjust the timeout of the new client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new HTTP client.
//
// The client is configured with:
//   - 30 second timeout
//   - "Mozilla/5.0 (playlist-filter/1.0)" User-Agent header
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured User-Agent header.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 2xx
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// GetString performs a GET request and returns the body decoded as UTF-8.
//
// See DecodeUTF8 for the decoding rules.
//
// Example:
//
//	text, err := client.GetString(ctx, "https://example.com/channels.m3u")
func (c *Client) GetString(ctx context.Context, url string) (string, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return "", err
	}
	return DecodeUTF8(body), nil
}

var utf8BOM = []byte("\xef\xbb\xbf")

// DecodeUTF8 decodes data as UTF-8. A leading byte-order mark is removed
// and invalid byte sequences are replaced with U+FFFD. It never fails.
func DecodeUTF8(data []byte) string {
	out, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return string(bytes.ToValidUTF8(bytes.TrimPrefix(data, utf8BOM), []byte("\ufffd")))
	}
	return string(out)
}
