package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/buzzdeck/buzzdeck/internal/api/middleware"
	"github.com/buzzdeck/buzzdeck/internal/config"
	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/buzzdeck/buzzdeck/internal/proxy"
	"github.com/buzzdeck/buzzdeck/internal/render"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthCheck(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ok", body["status"])
}

func TestRemoved(t *testing.T) {
	handler := Removed("Autopilot has been discontinued")

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/api/v1/autopilot", nil))

	assert.Equal(t, http.StatusGone, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Autopilot has been discontinued", body["error"])
}

func TestRenderHandler_Preview(t *testing.T) {
	h := NewRenderHandler(render.NewRenderer(render.NewCache(10, nil)))

	t.Run("renders sanitized html", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/render/preview",
			strings.NewReader(`{"content":"# Title\n\n<script>alert(1)</script>"}`))
		rec := httptest.NewRecorder()
		h.Preview(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		html := body["html"].(string)
		assert.Contains(t, html, "<h1")
		assert.NotContains(t, html, "<script>")
	})

	t.Run("missing content fails validation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/render/preview", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		h.Preview(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, false, body["success"])
		fields := body["fields"].(map[string]any)
		assert.Contains(t, fields, "content")
	})

	t.Run("malformed json answers 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/render/preview", strings.NewReader(`{`))
		rec := httptest.NewRecorder()
		h.Preview(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func authedRequest(req *http.Request, workspaceID uuid.UUID) *http.Request {
	session := &domain.Session{UserID: uuid.New(), AccessToken: "session-token"}
	ctx := middleware.WithSession(req.Context(), session)
	ctx = middleware.WithWorkspaceID(ctx, workspaceID)
	return req.WithContext(ctx)
}

func TestMetaAdsHandler_Proxy(t *testing.T) {
	workspaceID := uuid.New()

	t.Run("relays upstream status and body", func(t *testing.T) {
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/meta-ads/campaigns", r.URL.Path)
			assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"camp-1"}`))
		}))
		defer backend.Close()

		h := NewMetaAdsHandler(proxy.NewForwarder(config.BackendConfig{BaseURL: backend.URL}))

		router := chi.NewRouter()
		router.HandleFunc("/api/v1/meta-ads/*", h.Proxy)

		req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/v1/meta-ads/campaigns",
			strings.NewReader(`{"name":"Summer"}`)), workspaceID)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":"camp-1"}`, rec.Body.String())
	})

	t.Run("204 is relayed with an empty body", func(t *testing.T) {
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer backend.Close()

		h := NewMetaAdsHandler(proxy.NewForwarder(config.BackendConfig{BaseURL: backend.URL}))

		router := chi.NewRouter()
		router.HandleFunc("/api/v1/meta-ads/*", h.Proxy)

		req := authedRequest(httptest.NewRequest(http.MethodDelete, "/api/v1/meta-ads/campaigns/1", nil), workspaceID)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.Bytes())
	})

	t.Run("unauthenticated answers 401", func(t *testing.T) {
		h := NewMetaAdsHandler(proxy.NewForwarder(config.BackendConfig{BaseURL: "http://127.0.0.1:1"}))

		router := chi.NewRouter()
		router.HandleFunc("/api/v1/meta-ads/*", h.Proxy)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/meta-ads/campaigns", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestOAuthHandler_Callback(t *testing.T) {
	t.Run("redirects to the upstream Location", func(t *testing.T) {
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/connect/youtube/callback", r.URL.Path)
			assert.Equal(t, "abc", r.URL.Query().Get("code"))
			w.Header().Set("Location", "https://app.example.com/dashboard?connected=youtube")
			w.WriteHeader(http.StatusFound)
		}))
		defer backend.Close()

		h := NewOAuthHandler(proxy.NewForwarder(config.BackendConfig{
			BaseURL:      backend.URL,
			DashboardURL: "https://app.example.com/dashboard",
		}))

		router := chi.NewRouter()
		router.Get("/api/v1/connect/{platform}/callback", h.Callback)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/connect/youtube/callback?"+url.Values{"code": {"abc"}}.Encode(), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://app.example.com/dashboard?connected=youtube", rec.Header().Get("Location"))
	})

	t.Run("backend failure redirects to the dashboard error page", func(t *testing.T) {
		h := NewOAuthHandler(proxy.NewForwarder(config.BackendConfig{
			BaseURL:      "http://127.0.0.1:1",
			DashboardURL: "https://app.example.com/dashboard",
		}))

		router := chi.NewRouter()
		router.Get("/api/v1/connect/{platform}/callback", h.Callback)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/connect/youtube/callback?code=abc", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://app.example.com/dashboard?x_error=callback_failed", rec.Header().Get("Location"))
	})
}
