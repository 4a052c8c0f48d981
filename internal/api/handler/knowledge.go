package handler

import (
	"net/http"

	"github.com/buzzdeck/buzzdeck/internal/api/response"
	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/buzzdeck/buzzdeck/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// KnowledgeHandler handles knowledge entry requests
type KnowledgeHandler struct {
	knowledgeService *service.KnowledgeService
}

// NewKnowledgeHandler creates a new knowledge handler
func NewKnowledgeHandler(knowledgeService *service.KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{knowledgeService: knowledgeService}
}

type knowledgeResponse struct {
	Success bool                   `json:"success"`
	Entry   *domain.KnowledgeEntry `json:"entry"`
}

// Create handles POST /api/v1/knowledge
func (h *KnowledgeHandler) Create(w http.ResponseWriter, r *http.Request) {
	_, workspaceID, ok := requestContext(w, r)
	if !ok {
		return
	}

	var req domain.KnowledgeCreate
	if !decodeAndValidate(w, r, &req) {
		return
	}

	entry, err := h.knowledgeService.Create(r.Context(), workspaceID, req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, knowledgeResponse{Success: true, Entry: entry})
}

// Get handles GET /api/v1/knowledge/{id}
func (h *KnowledgeHandler) Get(w http.ResponseWriter, r *http.Request) {
	_, workspaceID, ok := requestContext(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid knowledge entry ID")
		return
	}

	entry, err := h.knowledgeService.Get(r.Context(), workspaceID, id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, knowledgeResponse{Success: true, Entry: entry})
}

// List handles GET /api/v1/knowledge
func (h *KnowledgeHandler) List(w http.ResponseWriter, r *http.Request) {
	_, workspaceID, ok := requestContext(w, r)
	if !ok {
		return
	}

	entries, err := h.knowledgeService.List(r.Context(), workspaceID)
	if err != nil {
		response.FromError(w, err)
		return
	}
	if entries == nil {
		entries = []domain.KnowledgeEntry{}
	}

	response.JSON(w, http.StatusOK, struct {
		Success bool                    `json:"success"`
		Entries []domain.KnowledgeEntry `json:"entries"`
		Count   int                     `json:"count"`
	}{true, entries, len(entries)})
}

// Update handles PUT /api/v1/knowledge/{id}
func (h *KnowledgeHandler) Update(w http.ResponseWriter, r *http.Request) {
	_, workspaceID, ok := requestContext(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid knowledge entry ID")
		return
	}

	var req domain.KnowledgeUpdate
	if !decodeAndValidate(w, r, &req) {
		return
	}

	entry, err := h.knowledgeService.Update(r.Context(), workspaceID, id, req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, knowledgeResponse{Success: true, Entry: entry})
}

// Delete handles DELETE /api/v1/knowledge/{id}
func (h *KnowledgeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	_, workspaceID, ok := requestContext(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid knowledge entry ID")
		return
	}

	if err := h.knowledgeService.Delete(r.Context(), workspaceID, id); err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{true, "Knowledge entry deleted"})
}
