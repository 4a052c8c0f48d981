package postgres

import (
	"context"
	"fmt"

	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/google/uuid"
)

// PendingCommentRepository handles pending comment data access. Rows are
// inserted by the external ingestion pipeline; this side only reads and
// deletes.
type PendingCommentRepository struct {
	db *DB
}

// NewPendingCommentRepository creates a new pending comment repository
func NewPendingCommentRepository(db *DB) *PendingCommentRepository {
	return &PendingCommentRepository{db: db}
}

// ListByWorkspace retrieves all pending comments for a workspace
func (r *PendingCommentRepository) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.PendingComment, error) {
	query := `
		SELECT id, workspace_id, platform, platform_comment_id, author, text, created_at
		FROM pending_comments
		WHERE workspace_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.PendingComment
	for rows.Next() {
		var c domain.PendingComment
		if err := rows.Scan(
			&c.ID,
			&c.WorkspaceID,
			&c.Platform,
			&c.PlatformCommentID,
			&c.Author,
			&c.Text,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pending comment: %w", err)
		}
		comments = append(comments, c)
	}

	return comments, nil
}

// DeleteByPlatformCommentID removes the pending row matching a platform
// comment after a moderation action succeeds. Deleting a row that is
// already gone is not an error.
func (r *PendingCommentRepository) DeleteByPlatformCommentID(ctx context.Context, workspaceID uuid.UUID, platform domain.Platform, platformCommentID string) error {
	query := `
		DELETE FROM pending_comments
		WHERE workspace_id = $1 AND platform = $2 AND platform_comment_id = $3
	`

	if _, err := r.db.Pool.Exec(ctx, query, workspaceID, platform, platformCommentID); err != nil {
		return fmt.Errorf("failed to delete pending comment: %w", err)
	}

	return nil
}

// DeleteAllByWorkspace removes every pending comment for a workspace and
// returns the number deleted
func (r *PendingCommentRepository) DeleteAllByWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	query := `DELETE FROM pending_comments WHERE workspace_id = $1`

	tag, err := r.db.Pool.Exec(ctx, query, workspaceID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete pending comments: %w", err)
	}

	return tag.RowsAffected(), nil
}

// CountByWorkspace counts pending comments for a workspace
func (r *PendingCommentRepository) CountByWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM pending_comments WHERE workspace_id = $1`

	var count int64
	if err := r.db.Pool.QueryRow(ctx, query, workspaceID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending comments: %w", err)
	}

	return count, nil
}
