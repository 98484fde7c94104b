// Package lookup implements the client for the external search API.
// A single query is posted as JSON with bearer authentication and the
// structured results come back as findings. Failures are classified
// into a closed set of error kinds so callers can map each one to a
// user-facing message.
package lookup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds a single API call, including connection setup
// and reading the response body.
const DefaultTimeout = 30 * time.Second

// Finding is one structured record returned by the search API.
type Finding struct {
	Type    string            `json:"type"`
	Value   string            `json:"value"`
	Details map[string]string `json:"details,omitempty"`
}

// Result holds the findings for a single query. It is produced fresh
// per call and never retained by the client.
type Result struct {
	Query    string
	Findings []Finding
}

// Client issues authenticated queries against a single search endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client. Useful for
// tests and for callers that need custom transports.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("lookup: base URL is required")
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the configured endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// KeyConfigured reports whether key is usable, i.e. not the
// unconfigured sentinel (blank).
func KeyConfigured(key string) bool {
	return strings.TrimSpace(key) != ""
}

type lookupRequest struct {
	Query string `json:"query"`
}

type lookupResponse struct {
	Results []Finding `json:"results"`
}

// Lookup posts query to the search endpoint using apiKey for
// authentication. An unconfigured key short-circuits with
// ErrNotConfigured before any network activity. The call makes exactly
// one attempt; transient failures are surfaced, not retried.
func (c *Client) Lookup(ctx context.Context, query, apiKey string) (*Result, error) {
	if !KeyConfigured(apiKey) {
		return nil, ErrNotConfigured
	}

	payload, err := json.Marshal(lookupRequest{Query: query})
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusUnauthorized:
		return nil, ErrInvalidKey
	case http.StatusPaymentRequired:
		return nil, ErrQuotaExceeded
	default:
		return nil, &UpstreamError{Status: resp.StatusCode}
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("decode response: %w", err)}
	}

	return &Result{Query: query, Findings: body.Results}, nil
}
