// Package client talks to the catalog proxy's HTTP API, translating its
// error envelope back into the catalog error taxonomy.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"ziktok/catalog"
)

// Config holds client configuration.
type Config struct {
	// BaseURL is the proxy base URL (e.g., "http://localhost:3000").
	BaseURL string

	// Timeout for individual HTTP requests.
	Timeout time.Duration

	// UserAgent for HTTP requests.
	UserAgent string

	// Transport configures the connection pool.
	Transport TransportConfig
}

// TransportConfig configures the HTTP transport (connection pooling).
type TransportConfig struct {
	// MaxIdleConns is the maximum number of idle connections across all hosts.
	MaxIdleConns int

	// MaxIdleConnsPerHost is the maximum idle connections per host.
	MaxIdleConnsPerHost int

	// MaxConnsPerHost is the maximum concurrent connections per host.
	MaxConnsPerHost int

	// IdleConnTimeout is the maximum time an idle connection stays open.
	IdleConnTimeout time.Duration

	// ForceAttemptHTTP2 forces HTTP/2 where the server allows it.
	ForceAttemptHTTP2 bool
}

// DefaultConfig returns sensible defaults for client configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:   "http://localhost:3000",
		Timeout:   30 * time.Second,
		UserAgent: "ziktok/1.0",
		Transport: DefaultTransportConfig(),
	}
}

// DefaultTransportConfig returns sensible defaults for the transport.
func DefaultTransportConfig() TransportConfig {
	return TransportConfig{
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     20,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}
}

// Client is an HTTP client for the catalog proxy. It implements the same
// provider surface as the catalog package, so the feed aggregator can run
// against either the proxy or the catalog directly.
type Client struct {
	baseURL   string
	userAgent string
	base      *http.Client
}

// New creates a client with the given configuration. A nil config uses
// defaults.
func New(cfg *Config) *Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	transport := &http.Transport{
		MaxIdleConns:        cfg.Transport.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.Transport.MaxIdleConnsPerHost,
		MaxConnsPerHost:     cfg.Transport.MaxConnsPerHost,
		IdleConnTimeout:     cfg.Transport.IdleConnTimeout,
		ForceAttemptHTTP2:   cfg.Transport.ForceAttemptHTTP2,
	}

	return &Client{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		base: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
	}
}

// GetShorts fetches a channel's assembled shorts result from the proxy.
func (c *Client) GetShorts(ctx context.Context, channelID string, maxResults int64) (*catalog.ShortsResult, error) {
	endpoint := fmt.Sprintf("%s/api/channel/%s/shorts", c.baseURL, url.PathEscape(channelID))
	if maxResults > 0 {
		endpoint += fmt.Sprintf("?maxResults=%d", maxResults)
	}

	var result catalog.ShortsResult
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	if result.Shorts == nil {
		result.Shorts = []catalog.ShortVideo{}
	}
	return &result, nil
}

// SearchChannels queries the proxy's channel search.
func (c *Client) SearchChannels(ctx context.Context, query string) ([]catalog.ChannelInfo, error) {
	endpoint := fmt.Sprintf("%s/api/channel/search/%s", c.baseURL, url.PathEscape(query))

	var result struct {
		Channels []catalog.ChannelInfo `json:"channels"`
	}
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return result.Channels, nil
}

// errorEnvelope mirrors the proxy's error responses.
type errorEnvelope struct {
	Error   string `json:"error"`
	Details string `json:"details"`
	Reason  string `json:"reason"`
}

// getJSON performs a GET and decodes either the success body or the error
// envelope. Non-2xx responses map onto the catalog error taxonomy: 404 is
// an absent channel, an envelope with details is a structured upstream
// failure, everything else is a fetch failure.
func (c *Client) getJSON(ctx context.Context, endpoint string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", catalog.ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.base.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", catalog.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return catalog.ErrChannelNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope errorEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Details != "" {
			return &catalog.UpstreamError{Message: envelope.Details, Reason: envelope.Reason}
		}
		return fmt.Errorf("%w: status %d", catalog.ErrFetchFailed, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: decode response: %v", catalog.ErrFetchFailed, err)
	}

	return nil
}

// Close releases idle connections held by the client.
func (c *Client) Close() error {
	c.base.CloseIdleConnections()
	return nil
}
