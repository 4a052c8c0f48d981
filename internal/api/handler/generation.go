package handler

import (
	"net/http"
	"strconv"

	"github.com/buzzdeck/buzzdeck/internal/api/response"
	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/buzzdeck/buzzdeck/internal/service"
)

const defaultHistoryLimit = 50

// GenerationHandler handles media generation requests
type GenerationHandler struct {
	generationService *service.GenerationService
}

// NewGenerationHandler creates a new generation handler
func NewGenerationHandler(generationService *service.GenerationService) *GenerationHandler {
	return &GenerationHandler{generationService: generationService}
}

type generationResponse struct {
	Success bool                     `json:"success"`
	Record  *domain.GenerationRecord `json:"record"`
}

// GenerateAudio handles POST /api/v1/generate/audio
func (h *GenerationHandler) GenerateAudio(w http.ResponseWriter, r *http.Request) {
	session, workspaceID, ok := requestContext(w, r)
	if !ok {
		return
	}

	var req domain.AudioGenerateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	record, err := h.generationService.GenerateAudio(r.Context(), workspaceID, session.UserID, req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, generationResponse{Success: true, Record: record})
}

// GenerateDesign handles POST /api/v1/generate/design
func (h *GenerationHandler) GenerateDesign(w http.ResponseWriter, r *http.Request) {
	session, workspaceID, ok := requestContext(w, r)
	if !ok {
		return
	}

	var req domain.DesignGenerateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	record, err := h.generationService.GenerateDesign(r.Context(), workspaceID, session.UserID, req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, generationResponse{Success: true, Record: record})
}

// History handles GET /api/v1/generate/history
func (h *GenerationHandler) History(w http.ResponseWriter, r *http.Request) {
	_, workspaceID, ok := requestContext(w, r)
	if !ok {
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 200 {
			response.BadRequest(w, "Invalid limit")
			return
		}
		limit = parsed
	}

	records, err := h.generationService.History(r.Context(), workspaceID, limit)
	if err != nil {
		response.FromError(w, err)
		return
	}
	if records == nil {
		records = []domain.GenerationRecord{}
	}

	response.JSON(w, http.StatusOK, struct {
		Success bool                      `json:"success"`
		Records []domain.GenerationRecord `json:"records"`
		Count   int                       `json:"count"`
	}{true, records, len(records)})
}
