package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// defaultTimeout bounds every request issued by a Client unless the
	// caller supplies its own http.Client.
	defaultTimeout = 30 * time.Second

	// maxErrorBody caps how much of a failed response body is retained
	// in a StatusError.
	maxErrorBody = 512
)

// Options configures a Client.
type Options struct {
	// Endpoint is the full GraphQL endpoint URL. Required.
	Endpoint string

	// Headers are set on every request unless the request already
	// carries the header. Use for access tokens.
	Headers map[string]string

	// HTTPClient overrides the default client. The default applies a
	// 30 second timeout.
	HTTPClient *http.Client
}

// Client executes GraphQL requests against one HTTP endpoint. It
// implements Executor.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a Client for the given endpoint.
func NewClient(opts Options) (*Client, error) {
	if opts.Endpoint == "" {
		return nil, ErrNoEndpoint
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if len(opts.Headers) > 0 {
		base := httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		clone := *httpClient
		clone.Transport = headerRoundTripper{base: base, headers: opts.Headers}
		httpClient = &clone
	}

	return &Client{endpoint: opts.Endpoint, http: httpClient}, nil
}

// AdminEndpoint returns the Shopify Admin GraphQL endpoint for a store
// domain and API version, e.g.
// https://demo.myshopify.com/admin/api/2025-07/graphql.json.
func AdminEndpoint(storeDomain, apiVersion string) string {
	domain := strings.TrimSuffix(strings.TrimPrefix(storeDomain, "https://"), "/")
	return fmt.Sprintf("https://%s/admin/api/%s/graphql.json", domain, apiVersion)
}

// NewAdminClient creates a Client for a store's Admin GraphQL API,
// authenticating every request with the store access token.
func NewAdminClient(storeDomain, accessToken, apiVersion string) (*Client, error) {
	if storeDomain == "" {
		return nil, ErrNoEndpoint
	}
	return NewClient(Options{
		Endpoint: AdminEndpoint(storeDomain, apiVersion),
		Headers:  map[string]string{"X-Shopify-Access-Token": accessToken},
	})
}

// Endpoint returns the endpoint URL the client was built with.
func (c *Client) Endpoint() string {
	return c.endpoint
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// Execute posts the query and variables to the endpoint and returns the
// parsed envelope. Non-2xx responses return a *StatusError; GraphQL-level
// errors are left in the Response for the caller to inspect.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any) (*Response, error) {
	body, err := json.Marshal(request{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("graphql: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("graphql: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("graphql: request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("graphql: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		excerpt := string(data)
		if len(excerpt) > maxErrorBody {
			excerpt = excerpt[:maxErrorBody]
		}
		return nil, &StatusError{
			Code:   resp.StatusCode,
			Status: resp.Status,
			Body:   strings.TrimSpace(excerpt),
		}
	}

	var out Response
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("graphql: decode response: %w", err)
	}
	return &out, nil
}

// headerRoundTripper injects headers into each request unless the
// request already set them.
type headerRoundTripper struct {
	base    http.RoundTripper
	headers map[string]string
}

func (h headerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	for key, value := range h.headers {
		if clone.Header.Get(key) == "" {
			clone.Header.Set(key, value)
		}
	}
	return h.base.RoundTrip(clone)
}
