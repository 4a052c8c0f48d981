package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/buzzdeck/buzzdeck/internal/api/response"
	"github.com/buzzdeck/buzzdeck/internal/proxy"
	"github.com/go-chi/chi/v5"
)

// MetaAdsHandler is a verbatim passthrough for the ads management API,
// which lives entirely on the backend.
type MetaAdsHandler struct {
	forwarder *proxy.Forwarder
}

// NewMetaAdsHandler creates a new meta ads handler
func NewMetaAdsHandler(forwarder *proxy.Forwarder) *MetaAdsHandler {
	return &MetaAdsHandler{forwarder: forwarder}
}

// Proxy handles every method under /api/v1/meta-ads/*. The upstream
// status and body come back unchanged, including 204s.
func (h *MetaAdsHandler) Proxy(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionContext(w, r)
	if !ok {
		return
	}

	var body any
	if r.Body != nil && r.Method != http.MethodGet && r.Method != http.MethodDelete {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			response.BadRequest(w, "Invalid request body")
			return
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &body); err != nil {
				response.BadRequest(w, "Invalid request body")
				return
			}
		}
	}

	path := "/api/v1/meta-ads/" + chi.URLParam(r, "*")
	result, err := h.forwarder.Forward(r.Context(), r.Method, path, r.URL.Query(), body, session.AccessToken)
	if err != nil {
		response.FromError(w, err)
		return
	}

	relay(w, result)
}
