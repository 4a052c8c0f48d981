package handler

import (
	"net/http"

	"github.com/buzzdeck/buzzdeck/internal/api/response"
	"github.com/buzzdeck/buzzdeck/internal/render"
)

// RenderHandler serves markdown previews
type RenderHandler struct {
	renderer *render.Renderer
}

// NewRenderHandler creates a new render handler
func NewRenderHandler(renderer *render.Renderer) *RenderHandler {
	return &RenderHandler{renderer: renderer}
}

type renderRequest struct {
	Content string `json:"content" validate:"required,max=100000"`
}

// Preview handles POST /api/v1/render/preview
func (h *RenderHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	html, err := h.renderer.Render(req.Content)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		HTML    string `json:"html"`
	}{true, html})
}
