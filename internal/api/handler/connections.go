package handler

import (
	"net/http"

	"github.com/buzzdeck/buzzdeck/internal/api/response"
	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/buzzdeck/buzzdeck/internal/service"
	"github.com/go-chi/chi/v5"
)

// ConnectionHandler reports and removes platform connections
type ConnectionHandler struct {
	credentialService *service.CredentialService
}

// NewConnectionHandler creates a new connection handler
func NewConnectionHandler(credentialService *service.CredentialService) *ConnectionHandler {
	return &ConnectionHandler{credentialService: credentialService}
}

// List handles GET /api/v1/connections
func (h *ConnectionHandler) List(w http.ResponseWriter, r *http.Request) {
	_, workspaceID, ok := requestContext(w, r)
	if !ok {
		return
	}

	connections, err := h.credentialService.List(r.Context(), workspaceID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, struct {
		Success     bool                      `json:"success"`
		Connections []domain.ConnectionStatus `json:"connections"`
	}{true, connections})
}

// Disconnect handles DELETE /api/v1/connections/{platform}
func (h *ConnectionHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	_, workspaceID, ok := requestContext(w, r)
	if !ok {
		return
	}

	platform := domain.Platform(chi.URLParam(r, "platform"))
	if !platform.Valid() {
		response.BadRequest(w, "Unsupported platform")
		return
	}

	if err := h.credentialService.Disconnect(r.Context(), workspaceID, platform); err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{true, "Platform disconnected"})
}
