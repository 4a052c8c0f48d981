// Package proxy forwards validated requests to the external application
// server and relays the upstream response verbatim.
package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/buzzdeck/buzzdeck/internal/config"
	"github.com/buzzdeck/buzzdeck/internal/domain"
)

// callbackErrorCode lands in the dashboard query string when an OAuth
// callback cannot be relayed.
const callbackErrorCode = "callback_failed"

// Result is an upstream response to be relayed: status and body exactly as
// received. A 204 carries an empty body, no JSON parse is attempted.
type Result struct {
	Status      int
	Body        []byte
	ContentType string
}

// Forwarder sends requests to the backend with the caller's bearer token
// attached.
type Forwarder struct {
	baseURL      string
	dashboardURL string
	client       *http.Client
}

// NewForwarder creates a forwarder from backend configuration
func NewForwarder(cfg config.BackendConfig) *Forwarder {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Forwarder{
		baseURL:      strings.TrimSuffix(cfg.BaseURL, "/"),
		dashboardURL: cfg.DashboardURL,
		client: &http.Client{
			Timeout: timeout,
			// Redirects are surfaced to the caller, not followed.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Configured reports whether a backend base URL is set
func (f *Forwarder) Configured() bool {
	return f.baseURL != ""
}

// Forward relays one request to the backend. The upstream status code is
// returned unchanged; the bearer token is attached and never echoed back
// in errors.
func (f *Forwarder) Forward(ctx context.Context, method, path string, query url.Values, body any, bearer string) (*Result, error) {
	if !f.Configured() {
		return nil, domain.ConfigurationError("Backend service not configured")
	}

	resp, err := f.do(ctx, method, path, query, body, bearer)
	if err != nil {
		return nil, domain.UpstreamError(0, "backend unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return &Result{Status: http.StatusNoContent}, nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.UpstreamError(0, "failed to read backend response")
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}

	return &Result{Status: resp.StatusCode, Body: respBody, ContentType: contentType}, nil
}

// ForwardCallback relays an OAuth callback and returns the URL the browser
// should land on. Redirect-range upstream responses are converted into a
// client-side redirect; anything malformed degrades to the dashboard error
// page rather than a raw 500, since the caller is a browser mid-navigation.
func (f *Forwarder) ForwardCallback(ctx context.Context, path string, query url.Values) string {
	fallback := f.dashboardErrorURL()

	if !f.Configured() {
		return fallback
	}

	resp, err := f.do(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return fallback
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 && resp.StatusCode <= 399 {
		if location := resp.Header.Get("Location"); location != "" {
			return location
		}
		return fallback
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return f.dashboardURL
	}

	return fallback
}

func (f *Forwarder) do(ctx context.Context, method, path string, query url.Values, body any, bearer string) (*http.Response, error) {
	endpoint := f.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	return f.client.Do(req)
}

func (f *Forwarder) dashboardErrorURL() string {
	separator := "?"
	if strings.Contains(f.dashboardURL, "?") {
		separator = "&"
	}
	return f.dashboardURL + separator + "x_error=" + callbackErrorCode
}
