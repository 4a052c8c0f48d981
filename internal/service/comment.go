package service

import (
	"context"
	"fmt"

	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/buzzdeck/buzzdeck/internal/platform"
	"github.com/google/uuid"
)

// ReplySuggester drafts a reply for a comment
type ReplySuggester interface {
	Suggest(ctx context.Context, commentText string, knowledge []domain.KnowledgeEntry) (string, error)
	IsConfigured() bool
}

// CommentService performs moderation actions through the platform
// adapters and maintains the pending-comment queue.
type CommentService struct {
	credentials   CredentialSource
	registry      *platform.Registry
	pendingRepo   domain.PendingCommentRepository
	knowledgeRepo domain.KnowledgeRepository
	suggester     ReplySuggester
}

// NewCommentService creates a new comment service
func NewCommentService(
	credentials CredentialSource,
	registry *platform.Registry,
	pendingRepo domain.PendingCommentRepository,
	knowledgeRepo domain.KnowledgeRepository,
	suggester ReplySuggester,
) *CommentService {
	return &CommentService{
		credentials:   credentials,
		registry:      registry,
		pendingRepo:   pendingRepo,
		knowledgeRepo: knowledgeRepo,
		suggester:     suggester,
	}
}

// Reply posts a reply to a platform comment and clears its pending row
func (s *CommentService) Reply(ctx context.Context, workspaceID uuid.UUID, req domain.ReplyRequest) (string, error) {
	token, adapter, err := s.resolve(ctx, workspaceID, req.Platform)
	if err != nil {
		return "", err
	}

	replyID, err := adapter.Reply(ctx, req.CommentID, req.Message, token)
	if err != nil {
		return "", err
	}

	// The reply already landed upstream; a stale pending row is harmless.
	_ = s.pendingRepo.DeleteByPlatformCommentID(ctx, workspaceID, req.Platform, req.CommentID)

	return replyID, nil
}

// Hide hides a platform comment and clears its pending row. Repeating a
// hide on an already-hidden comment succeeds.
func (s *CommentService) Hide(ctx context.Context, workspaceID uuid.UUID, req domain.HideRequest) (bool, error) {
	token, adapter, err := s.resolve(ctx, workspaceID, req.Platform)
	if err != nil {
		return false, err
	}

	hidden, err := adapter.Hide(ctx, req.CommentID, token)
	if err != nil {
		return false, err
	}

	_ = s.pendingRepo.DeleteByPlatformCommentID(ctx, workspaceID, req.Platform, req.CommentID)

	return hidden, nil
}

func (s *CommentService) resolve(ctx context.Context, workspaceID uuid.UUID, p domain.Platform) (string, platform.Adapter, error) {
	token, err := s.credentials.Token(ctx, workspaceID, p)
	if err != nil {
		return "", nil, err
	}
	if token == "" {
		return "", nil, domain.BadRequestError(fmt.Sprintf("%s is not connected", p))
	}

	adapter, err := s.registry.Get(p)
	if err != nil {
		return "", nil, domain.BadRequestError(err.Error())
	}

	return token, adapter, nil
}

// ListPending returns the workspace's pending comments
func (s *CommentService) ListPending(ctx context.Context, workspaceID uuid.UUID) ([]domain.PendingComment, error) {
	return s.pendingRepo.ListByWorkspace(ctx, workspaceID)
}

// BulkDeletePending removes every pending comment for the workspace and
// returns the deleted count
func (s *CommentService) BulkDeletePending(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	return s.pendingRepo.DeleteAllByWorkspace(ctx, workspaceID)
}

// Suggest drafts a reply for a comment using the workspace's active
// knowledge entries
func (s *CommentService) Suggest(ctx context.Context, workspaceID uuid.UUID, commentText string) (string, error) {
	if s.suggester == nil || !s.suggester.IsConfigured() {
		return "", domain.ConfigurationError("Suggestion service not configured")
	}

	knowledge, err := s.knowledgeRepo.ListActiveByWorkspace(ctx, workspaceID)
	if err != nil {
		return "", fmt.Errorf("failed to load knowledge entries: %w", err)
	}

	return s.suggester.Suggest(ctx, commentText, knowledge)
}
