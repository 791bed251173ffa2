// Package statsbomb reads competitions, matches and events from the
// StatsBomb open-data repository over HTTP.
package statsbomb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/okian/futebol/internal/domain/types"
	"github.com/okian/futebol/pkg/logger"
	"github.com/okian/futebol/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultTimeout   = 20 * time.Second
	defaultUserAgent = "futebol-api/1.0"
	maxErrorBody     = 512
)

// Client fetches open-data JSON documents.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
	logger    logger.Logger
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a client rooted at baseURL, e.g.
// https://raw.githubusercontent.com/statsbomb/open-data/master/data.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: defaultTimeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logger.Get().Named("statsbomb")
	}
	return c
}

// getJSON downloads path and decodes it into v. A 404 maps to
// types.ErrNotFound; every other failure maps to types.ErrUnavailable.
func (c *Client) getJSON(ctx context.Context, op, path string, v any) error {
	start := time.Now()
	outcome := "ok"
	defer func() {
		metrics.RecordProviderRequest(op, outcome, float64(time.Since(start).Milliseconds()))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		outcome = "error"
		return types.WrapKind("statsbomb."+op, types.ErrInternal, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		outcome = "error"
		return types.WrapKind("statsbomb."+op, types.ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		outcome = "not_found"
		return types.WrapKind("statsbomb."+op, types.ErrNotFound, fmt.Errorf("GET %s: %d", path, resp.StatusCode))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		outcome = "error"
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return types.WrapKind("statsbomb."+op, types.ErrUnavailable,
			fmt.Errorf("GET %s failed: %d body=%s", path, resp.StatusCode, strings.TrimSpace(string(body))))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		outcome = "decode_error"
		c.logger.Warn(ctx, "malformed provider document", logger.String("path", path), logger.Error(err))
		return types.WrapKind("statsbomb."+op, types.ErrUnavailable, fmt.Errorf("decode %s: %w", path, err))
	}
	return nil
}
