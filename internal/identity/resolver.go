// Package identity resolves the caller's session against the external
// identity provider. Sessions are created, refreshed, and destroyed by the
// provider; this package only reads them, one round trip per request.
package identity

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/buzzdeck/buzzdeck/internal/config"
	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Resolver checks inbound session tokens against the identity provider.
type Resolver struct {
	baseURL    string
	apiKey     string
	cookieName string
	client     *http.Client
}

// NewResolver creates a resolver from identity provider configuration.
func NewResolver(cfg config.IdentityConfig) *Resolver {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Resolver{
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		apiKey:     cfg.APIKey,
		cookieName: cfg.CookieName,
		client:     &http.Client{Timeout: timeout},
	}
}

// Configured reports whether the identity provider is reachable by
// configuration. Protected routes answer 503 when it is not.
func (r *Resolver) Configured() bool {
	return r.baseURL != "" && r.apiKey != ""
}

type userResponse struct {
	ID string `json:"id"`
}

// Resolve extracts the session token from the request and validates it
// with the identity provider. Tokens that are already expired by their own
// claims are rejected without a network call.
func (r *Resolver) Resolve(req *http.Request) (*domain.Session, error) {
	if !r.Configured() {
		return nil, domain.ConfigurationError("Authentication service not configured")
	}

	token := r.extractToken(req)
	if token == "" {
		return nil, domain.AuthError("Not authenticated")
	}

	if expired(token) {
		return nil, domain.AuthError("Session expired")
	}

	checkReq, err := http.NewRequestWithContext(req.Context(), http.MethodGet, r.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, domain.AuthError("Not authenticated")
	}
	checkReq.Header.Set("Authorization", "Bearer "+token)
	checkReq.Header.Set("apikey", r.apiKey)

	resp, err := r.client.Do(checkReq)
	if err != nil {
		return nil, domain.UpstreamError(0, "identity provider unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.AuthError("Not authenticated")
	}

	var user userResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, domain.AuthError("Not authenticated")
	}

	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return nil, domain.AuthError("Not authenticated")
	}

	return &domain.Session{UserID: userID, AccessToken: token}, nil
}

// extractToken prefers the Authorization header, then the session cookie.
func (r *Resolver) extractToken(req *http.Request) string {
	if authHeader := req.Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}
	if r.cookieName != "" {
		if cookie, err := req.Cookie(r.cookieName); err == nil {
			return cookie.Value
		}
	}
	return ""
}

// expired checks the token's own exp claim without verifying the
// signature; the provider round trip remains the source of truth for
// anything not obviously stale.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Opaque tokens are allowed through to the provider check.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
