package handler

import (
	"net/http"

	"github.com/buzzdeck/buzzdeck/internal/api/response"
	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/buzzdeck/buzzdeck/internal/service"
)

// CommentHandler handles comment moderation requests
type CommentHandler struct {
	commentService *service.CommentService
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Reply handles POST /api/v1/comments/reply
func (h *CommentHandler) Reply(w http.ResponseWriter, r *http.Request) {
	_, workspaceID, ok := requestContext(w, r)
	if !ok {
		return
	}

	var req domain.ReplyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	replyID, err := h.commentService.Reply(r.Context(), workspaceID, req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		ReplyID string `json:"replyId"`
		Message string `json:"message"`
	}{true, replyID, "Reply posted successfully"})
}

// Hide handles POST /api/v1/comments/hide
func (h *CommentHandler) Hide(w http.ResponseWriter, r *http.Request) {
	_, workspaceID, ok := requestContext(w, r)
	if !ok {
		return
	}

	var req domain.HideRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	hidden, err := h.commentService.Hide(r.Context(), workspaceID, req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		Hidden  bool   `json:"hidden"`
		Message string `json:"message"`
	}{true, hidden, "Comment hidden successfully"})
}

// ListPending handles GET /api/v1/comments/pending
func (h *CommentHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	_, workspaceID, ok := requestContext(w, r)
	if !ok {
		return
	}

	comments, err := h.commentService.ListPending(r.Context(), workspaceID)
	if err != nil {
		response.FromError(w, err)
		return
	}
	if comments == nil {
		comments = []domain.PendingComment{}
	}

	response.JSON(w, http.StatusOK, struct {
		Success  bool                    `json:"success"`
		Comments []domain.PendingComment `json:"comments"`
		Count    int                     `json:"count"`
	}{true, comments, len(comments)})
}

// BulkDeletePending handles DELETE /api/v1/comments/pending
func (h *CommentHandler) BulkDeletePending(w http.ResponseWriter, r *http.Request) {
	_, workspaceID, ok := requestContext(w, r)
	if !ok {
		return
	}

	deleted, err := h.commentService.BulkDeletePending(r.Context(), workspaceID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, struct {
		Success bool  `json:"success"`
		Deleted int64 `json:"deleted"`
	}{true, deleted})
}

// Suggest handles POST /api/v1/comments/suggest
func (h *CommentHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	_, workspaceID, ok := requestContext(w, r)
	if !ok {
		return
	}

	var req domain.SuggestRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	suggestion, err := h.commentService.Suggest(r.Context(), workspaceID, req.CommentText)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, struct {
		Success    bool   `json:"success"`
		Suggestion string `json:"suggestion"`
	}{true, suggestion})
}
