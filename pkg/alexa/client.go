// Package alexa is the client for the upstream home-automation API: a
// cookie-authenticated JSON state endpoint, a GraphQL endpoint for endpoint
// discovery and power control, and assorted REST endpoints for volume, DND,
// announcements and media status. The API is undocumented; the shapes here
// are tolerated, not designed.
package alexa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/beacondev/echobridge/pkg/cache"
	"github.com/beacondev/echobridge/pkg/device"
)

// DefaultBaseURL is the upstream host.
const DefaultBaseURL = "https://alexa.amazon.com"

// bodySnippetLimit caps how much of an error response body is retained.
const bodySnippetLimit = 1024

// UpstreamError is a non-2xx response from the upstream API. It is never
// retried; the status and a body snippet surface to the caller verbatim.
type UpstreamError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: status %d: %s", e.Op, e.StatusCode, e.Body)
}

// Client issues authenticated calls against the upstream API and memoizes
// discovery results in a TTL cache.
type Client struct {
	baseURL string
	http    *http.Client
	creds   Credentials
	cache   *cache.Cache
}

// NewClient creates a Client. An empty baseURL uses DefaultBaseURL; a nil
// memo creates a fresh cache with the default TTL.
func NewClient(baseURL string, creds Credentials, memo *cache.Cache) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if memo == nil {
		memo = cache.New(0)
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		creds:   creds,
		cache:   memo,
	}
}

// BaseURL returns the upstream host this client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// HasCredentials reports whether both session tokens are configured.
func (c *Client) HasCredentials() bool { return c.creds.Valid() }

// do issues one request. body (if non-nil) is JSON-encoded; out (if non-nil)
// receives the decoded response. Non-2xx becomes an *UpstreamError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if !c.creds.Valid() {
		return device.ErrCredentialsMissing
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}

	extra := map[string]string{"Accept": "application/json"}
	if body != nil {
		extra["Content-Type"] = "application/json"
	}
	for k, v := range Headers(c.creds, extra) {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, bodySnippetLimit))
		uerr := &UpstreamError{
			Op:         method + " " + path,
			StatusCode: resp.StatusCode,
			Body:       string(snippet),
		}
		log.Warn().Str("op", uerr.Op).Int("status", uerr.StatusCode).Msg("upstream call failed")
		return uerr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// graphQLRequest is the envelope for calls to the graph endpoint.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

// graphql posts a named operation to the graph endpoint and decodes its
// data payload into out. Graph-level errors surface as an UpstreamError with
// the original 200 status, since the transport succeeded but the operation
// did not.
func (c *Client) graphql(ctx context.Context, op, query string, vars map[string]any, out any) error {
	var envelope graphQLResponse
	if err := c.do(ctx, http.MethodPost, "/api/nexus/v1/graphql", graphQLRequest{Query: query, Variables: vars}, &envelope); err != nil {
		return err
	}
	if len(envelope.Errors) > 0 {
		return &UpstreamError{
			Op:         "graphql " + op,
			StatusCode: http.StatusOK,
			Body:       envelope.Errors[0].Message,
		}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode graphql %s: %w", op, err)
	}
	return nil
}
