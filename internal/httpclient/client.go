// Package httpclient is the single HTTP surface of the probe harness.
// It issues JSON requests against the SUT and separates transport errors
// (connection refused, timeout, DNS, TLS) from ordinary HTTP responses:
// 4xx/5xx statuses are responses, never errors.
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
)

// RequestTimeout bounds one call end to end.
const RequestTimeout = 10 * time.Second

// TokenSource supplies the current bearer token, empty when unauthenticated.
// *run.Context satisfies this.
type TokenSource interface {
	Token() string
}

// Response is the outcome of one successful exchange with the SUT.
// Body is always fully read; JSON is the best-effort parse of it and is nil
// when the body is not a JSON object.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	JSON       map[string]any
}

// IsJSONObject reports whether the body parsed as a JSON object.
func (r *Response) IsJSONObject() bool { return r.JSON != nil }

// LooksHTML reports whether the response is HTML rather than JSON, either
// by content type or by body prefix. An expected-JSON endpoint answering
// HTML indicates a routing misconfiguration on the SUT.
func (r *Response) LooksHTML() bool {
	ct := r.Headers.Get("Content-Type")
	if strings.Contains(ct, "text/html") {
		return true
	}
	t := strings.ToLower(strings.TrimSpace(string(r.Body)))
	return strings.HasPrefix(t, "<!doctype") || strings.HasPrefix(t, "<html")
}

// Client issues authenticated JSON requests against one base URL.
type Client struct {
	baseURL string
	tokens  TokenSource
	http    *http.Client
}

// New creates a Client for baseURL. If tokens is non-nil its current token
// is injected as a bearer Authorization header on every request that does
// not supply its own.
func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    &http.Client{Timeout: RequestTimeout},
	}
}

var supportedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
}

// Request performs one HTTP call. path must start with "/" and is joined to
// the base URL. body, when non-nil, is serialized as JSON; GET and DELETE
// never send a body. A non-nil error is always a transport-level failure.
func (c *Client) Request(ctx context.Context, method, path string, body any, extraHeaders map[string]string) (*Response, error) {
	if !supportedMethods[method] {
		return nil, fmt.Errorf("unsupported HTTP method %q", method)
	}

	var reader io.Reader
	if body != nil && method != http.MethodGet && method != http.MethodDelete {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range extraHeaders {
		req.Header.Set(k, v)
	}
	if req.Header.Get("Authorization") == "" && c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	out := &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       data,
	}
	var parsed map[string]any
	if json.Unmarshal(data, &parsed) == nil {
		out.JSON = parsed
	}
	return out, nil
}
