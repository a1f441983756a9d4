package oembed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"vidembed/internal/httputil"
)

const (
	// DefaultEndpoint is Vimeo's XML oEmbed endpoint.
	DefaultEndpoint = "http://vimeo.com/api/oembed.xml"

	// DefaultWidth is the player width requested from the provider.
	DefaultWidth = 640

	maxBodySize = 1 << 20
)

// Fetcher looks up oEmbed metadata for a content URL.
type Fetcher interface {
	Fetch(ctx context.Context, videoURL string) (*Video, error)
}

// FetcherFunc adapts an ordinary function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, videoURL string) (*Video, error)

// Fetch calls f(ctx, videoURL).
func (f FetcherFunc) Fetch(ctx context.Context, videoURL string) (*Video, error) {
	return f(ctx, videoURL)
}

// StatusError reports a non-200 response from the endpoint.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("oembed: unexpected status %d for %s", e.Code, e.URL)
}

// Client fetches oEmbed XML records over HTTP.
type Client struct {
	endpoint string
	width    int
	client   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the oEmbed endpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithWidth overrides the requested player width.
func WithWidth(width int) Option {
	return func(c *Client) { c.width = width }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithTimeout replaces the underlying HTTP client with a hardened one using timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.client = httputil.NewClient(timeout) }
}

// NewClient creates a Client for Vimeo's endpoint unless overridden.
// It fails when the endpoint is not an absolute http(s) URL or width is not positive.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		endpoint: DefaultEndpoint,
		width:    DefaultWidth,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = httputil.NewClient(httputil.DefaultTimeout)
	}

	if err := httputil.ValidateURL(c.endpoint); err != nil {
		return nil, fmt.Errorf("oembed endpoint %q: %w", c.endpoint, err)
	}
	if c.width <= 0 {
		return nil, fmt.Errorf("oembed width must be positive, got %d", c.width)
	}
	return c, nil
}

// Endpoint returns the configured endpoint.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// RequestURL builds the lookup URL for videoURL.
func (c *Client) RequestURL(videoURL string) (string, error) {
	return httputil.WithQuery(c.endpoint, url.Values{
		"url":   {videoURL},
		"width": {strconv.Itoa(c.width)},
	})
}

// Fetch performs a single GET against the endpoint and decodes the record.
func (c *Client) Fetch(ctx context.Context, videoURL string) (*Video, error) {
	reqURL, err := c.RequestURL(videoURL)
	if err != nil {
		return nil, fmt.Errorf("building oembed request: %w", err)
	}

	resp, err := httputil.Get(ctx, c.client, reqURL, "text/xml, application/xml;q=0.9")
	if err != nil {
		return nil, fmt.Errorf("oembed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, URL: reqURL}
	}

	return Decode(io.LimitReader(resp.Body, maxBodySize))
}
