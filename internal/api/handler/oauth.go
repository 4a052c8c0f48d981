package handler

import (
	"net/http"

	"github.com/buzzdeck/buzzdeck/internal/api/response"
	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/buzzdeck/buzzdeck/internal/proxy"
	"github.com/go-chi/chi/v5"
)

// OAuthHandler relays the connect flow to the backend, which owns the
// provider apps and token exchange.
type OAuthHandler struct {
	forwarder *proxy.Forwarder
}

// NewOAuthHandler creates a new OAuth handler
func NewOAuthHandler(forwarder *proxy.Forwarder) *OAuthHandler {
	return &OAuthHandler{forwarder: forwarder}
}

// Connect handles GET /api/v1/connect/{platform}. The backend responds
// with the provider authorization URL; status and body are relayed
// verbatim.
func (h *OAuthHandler) Connect(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionContext(w, r)
	if !ok {
		return
	}

	platform := domain.Platform(chi.URLParam(r, "platform"))
	if !platform.Valid() {
		response.BadRequest(w, "Unsupported platform")
		return
	}

	result, err := h.forwarder.Forward(r.Context(), http.MethodGet, "/api/v1/connect/"+string(platform), r.URL.Query(), nil, session.AccessToken)
	if err != nil {
		response.FromError(w, err)
		return
	}

	relay(w, result)
}

// Callback handles GET /api/v1/connect/{platform}/callback. The caller is
// a browser arriving from the provider, so every outcome is a redirect:
// to wherever the backend says, or to the dashboard error page.
func (h *OAuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	platform := domain.Platform(chi.URLParam(r, "platform"))

	target := h.forwarder.ForwardCallback(r.Context(), "/api/v1/connect/"+string(platform)+"/callback", r.URL.Query())
	http.Redirect(w, r, target, http.StatusFound)
}

// relay writes an upstream result without reinterpreting it
func relay(w http.ResponseWriter, result *proxy.Result) {
	if result.Status == http.StatusNoContent {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.WriteHeader(result.Status)
	w.Write(result.Body)
}
