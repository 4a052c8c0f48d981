package meta

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/buzzdeck/buzzdeck/internal/platform"
)

const defaultGraphURL = "https://graph.facebook.com"

// Adapter implements platform.Adapter for the Meta Graph API. It serves
// both Facebook and Instagram comment moderation; the Graph API does not
// support comment deletion through this surface, only hiding.
type Adapter struct {
	name         domain.Platform
	appSecret    string
	graphVersion string
	baseURL      string
	client       *http.Client
}

// NewAdapter creates a Meta adapter for one platform tag
func NewAdapter(name domain.Platform, appSecret, graphVersion string) platform.Adapter {
	if graphVersion == "" {
		graphVersion = "v25.0"
	}
	return &Adapter{
		name:         name,
		appSecret:    appSecret,
		graphVersion: graphVersion,
		baseURL:      defaultGraphURL,
		client:       &http.Client{Timeout: 30 * time.Second},
	}
}

// NewAdapterWithBaseURL creates an adapter against a custom Graph URL,
// used in tests
func NewAdapterWithBaseURL(name domain.Platform, appSecret, graphVersion, baseURL string) platform.Adapter {
	a := NewAdapter(name, appSecret, graphVersion).(*Adapter)
	a.baseURL = strings.TrimSuffix(baseURL, "/")
	return a
}

// Name returns the platform identifier
func (a *Adapter) Name() domain.Platform {
	return a.name
}

// AppSecretProof computes the HMAC-SHA256 proof the Graph API requires on
// server-side calls: the bearer token keyed by the app secret.
func AppSecretProof(token, appSecret string) string {
	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

type graphError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type replyResponse struct {
	ID string `json:"id"`
}

type hideResponse struct {
	Success bool `json:"success"`
}

// Reply posts a reply under a comment
func (a *Adapter) Reply(ctx context.Context, commentID, message, token string) (string, error) {
	form := url.Values{}
	form.Set("message", message)

	body, err := a.post(ctx, commentID+"/comments", form, token)
	if err != nil {
		return "", err
	}

	var reply replyResponse
	if err := json.Unmarshal(body, &reply); err != nil || reply.ID == "" {
		return "", domain.UpstreamError(0, "unexpected response from Meta")
	}

	return reply.ID, nil
}

// Hide marks a comment hidden. Re-hiding an already hidden comment is
// accepted by the Graph API and reported as success.
func (a *Adapter) Hide(ctx context.Context, commentID, token string) (bool, error) {
	form := url.Values{}
	form.Set("is_hidden", "true")

	body, err := a.post(ctx, commentID, form, token)
	if err != nil {
		return false, err
	}

	var hide hideResponse
	if err := json.Unmarshal(body, &hide); err != nil {
		return false, domain.UpstreamError(0, "unexpected response from Meta")
	}

	return hide.Success, nil
}

// post sends a signed form-encoded request and returns the response body
// on 2xx, or an upstream error carrying Meta's message when present.
func (a *Adapter) post(ctx context.Context, path string, form url.Values, token string) ([]byte, error) {
	form.Set("access_token", token)
	form.Set("appsecret_proof", AppSecretProof(token, a.appSecret))

	endpoint := fmt.Sprintf("%s/%s/%s", a.baseURL, a.graphVersion, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, domain.UpstreamError(0, "meta request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.UpstreamError(0, "failed to read meta response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var ge graphError
		if err := json.Unmarshal(body, &ge); err == nil && ge.Error.Message != "" {
			return nil, domain.UpstreamError(resp.StatusCode, ge.Error.Message)
		}
		return nil, domain.UpstreamError(resp.StatusCode, "meta request failed")
	}

	return body, nil
}
