package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PendingComment is a comment ingested from a platform that is awaiting a
// moderation action. Rows are created by an external ingestion process and
// deleted here once a reply or hide succeeds.
type PendingComment struct {
	ID                uuid.UUID `json:"id"`
	WorkspaceID       uuid.UUID `json:"workspace_id"`
	Platform          Platform  `json:"platform"`
	PlatformCommentID string    `json:"platform_comment_id"`
	Author            string    `json:"author"`
	Text              string    `json:"text"`
	CreatedAt         time.Time `json:"created_at"`
}

// ReplyRequest is the body of POST /comments/reply
type ReplyRequest struct {
	Platform  Platform `json:"platform" validate:"required,oneof=youtube facebook instagram"`
	CommentID string   `json:"comment_id" validate:"required,max=255"`
	Message   string   `json:"message" validate:"required,max=10000"`
}

// HideRequest is the body of POST /comments/hide
type HideRequest struct {
	Platform  Platform `json:"platform" validate:"required,oneof=youtube facebook instagram"`
	CommentID string   `json:"comment_id" validate:"required,max=255"`
}

// SuggestRequest is the body of POST /comments/suggest
type SuggestRequest struct {
	CommentText string `json:"comment_text" validate:"required,max=10000"`
}

// PendingCommentRepository handles pending comment data access
type PendingCommentRepository interface {
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]PendingComment, error)
	DeleteByPlatformCommentID(ctx context.Context, workspaceID uuid.UUID, platform Platform, platformCommentID string) error
	DeleteAllByWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error)
	CountByWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error)
}
