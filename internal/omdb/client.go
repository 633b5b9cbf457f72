// Package omdb is a small client for the OMDb movie database API.
package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rshade/moviefinder/internal/engine"
	"github.com/rshade/moviefinder/internal/logging"
)

// Defaults for NewClient.
const (
	DefaultEndpoint = "http://www.omdbapi.com/"
	DefaultTimeout  = 10 * time.Second
)

// maxBodyBytes caps how much of a response body is decoded.
const maxBodyBytes = 1 << 20

// Client talks to one OMDb endpoint with one API key. It is safe for
// concurrent use.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	fullPlot   bool
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the API base URL.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithFullPlot requests the long plot on detail lookups.
func WithFullPlot(full bool) Option {
	return func(c *Client) { c.fullPlot = full }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient returns a client authenticating with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		endpoint:   DefaultEndpoint,
		apiKey:     apiKey,
		userAgent:  "moviefinder",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ engine.MovieClient = (*Client)(nil)

// Search looks up titles matching query. Zero matches and upstream error
// envelopes both produce an empty page without an error.
func (c *Client) Search(ctx context.Context, query string) (engine.SearchPage, error) {
	params := url.Values{}
	params.Set("s", query)

	raw, err := c.get(ctx, "search", params)
	if err != nil {
		return engine.SearchPage{}, err
	}
	body := decodeSearch(raw)

	if len(body.Search) == 0 && body.Error != "" {
		logging.FromContext(ctx).Warn().
			Ctx(ctx).
			Str("component", "omdb").
			Str("operation", "search").
			Str("query", query).
			Str("upstream_error", string(body.Error)).
			Msg("search returned an error envelope")
	}
	return body.toPage(), nil
}

// Detail fetches the full record for id. The id is sent as given.
func (c *Client) Detail(ctx context.Context, id string) (engine.MovieDetail, error) {
	params := url.Values{}
	params.Set("i", id)
	if c.fullPlot {
		params.Set("plot", "full")
	}

	raw, err := c.get(ctx, "detail", params)
	if err != nil {
		return engine.MovieDetail{}, err
	}
	body := decodeDetail(raw)

	if isFalse(string(body.Response)) {
		logging.FromContext(ctx).Warn().
			Ctx(ctx).
			Str("component", "omdb").
			Str("operation", "detail").
			Str("id", id).
			Str("upstream_error", string(body.Error)).
			Msg("detail returned an error envelope")
	}
	return body.toDetail(id), nil
}

// get issues one GET with the API key and params and returns the body as a
// single JSON value. Only syntactically invalid JSON is a ParseError; the
// shape of the value is left to the caller.
func (c *Client) get(ctx context.Context, op string, params url.Values) (json.RawMessage, error) {
	reqURL, err := c.buildURL(params)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}

	log := logging.FromContext(ctx)
	safeURL := logging.SanitizeURL(reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().
			Ctx(ctx).
			Str("component", "omdb").
			Str("operation", op).
			Str("url", safeURL).
			Err(err).
			Msg("request failed")
		return nil, &NetworkError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	log.Debug().
		Ctx(ctx).
		Str("component", "omdb").
		Str("operation", op).
		Str("url", safeURL).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &NetworkError{Op: op, StatusCode: resp.StatusCode}
	}

	var raw json.RawMessage
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&raw); err != nil {
		log.Warn().
			Ctx(ctx).
			Str("component", "omdb").
			Str("operation", op).
			Err(err).
			Msg("could not decode response")
		return nil, &ParseError{Op: op, Err: err}
	}
	return raw, nil
}

func (c *Client) buildURL(params url.Values) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint %q: %w", c.endpoint, err)
	}
	q := u.Query()
	q.Set("apikey", c.apiKey)
	for k, vs := range params {
		for _, v := range vs {
			q.Set(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
