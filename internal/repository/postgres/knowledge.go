package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// KnowledgeRepository handles knowledge entry data access
type KnowledgeRepository struct {
	db *DB
}

// NewKnowledgeRepository creates a new knowledge repository
func NewKnowledgeRepository(db *DB) *KnowledgeRepository {
	return &KnowledgeRepository{db: db}
}

// Create inserts a new knowledge entry
func (r *KnowledgeRepository) Create(ctx context.Context, entry *domain.KnowledgeEntry) error {
	query := `
		INSERT INTO knowledge_entries (
			id, workspace_id, category, title, question, answer, is_active, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		entry.ID,
		entry.WorkspaceID,
		entry.Category,
		entry.Title,
		entry.Question,
		entry.Answer,
		entry.IsActive,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create knowledge entry: %w", err)
	}

	return nil
}

// GetByIDAndWorkspace retrieves a knowledge entry scoped to a workspace
func (r *KnowledgeRepository) GetByIDAndWorkspace(ctx context.Context, id, workspaceID uuid.UUID) (*domain.KnowledgeEntry, error) {
	query := `
		SELECT id, workspace_id, category, title, question, answer, is_active, created_at, updated_at
		FROM knowledge_entries
		WHERE id = $1 AND workspace_id = $2
	`

	var entry domain.KnowledgeEntry
	err := r.db.Pool.QueryRow(ctx, query, id, workspaceID).Scan(
		&entry.ID,
		&entry.WorkspaceID,
		&entry.Category,
		&entry.Title,
		&entry.Question,
		&entry.Answer,
		&entry.IsActive,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get knowledge entry: %w", err)
	}

	return &entry, nil
}

// ListByWorkspace retrieves all knowledge entries for a workspace
func (r *KnowledgeRepository) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.KnowledgeEntry, error) {
	return r.list(ctx, workspaceID, false)
}

// ListActiveByWorkspace retrieves only active entries for a workspace
func (r *KnowledgeRepository) ListActiveByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.KnowledgeEntry, error) {
	return r.list(ctx, workspaceID, true)
}

func (r *KnowledgeRepository) list(ctx context.Context, workspaceID uuid.UUID, activeOnly bool) ([]domain.KnowledgeEntry, error) {
	query := `
		SELECT id, workspace_id, category, title, question, answer, is_active, created_at, updated_at
		FROM knowledge_entries
		WHERE workspace_id = $1
	`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list knowledge entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.KnowledgeEntry
	for rows.Next() {
		var entry domain.KnowledgeEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.WorkspaceID,
			&entry.Category,
			&entry.Title,
			&entry.Question,
			&entry.Answer,
			&entry.IsActive,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan knowledge entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Update rewrites a knowledge entry
func (r *KnowledgeRepository) Update(ctx context.Context, entry *domain.KnowledgeEntry) error {
	query := `
		UPDATE knowledge_entries
		SET category = $3,
		    title = $4,
		    question = $5,
		    answer = $6,
		    is_active = $7,
		    updated_at = NOW()
		WHERE id = $1 AND workspace_id = $2
	`

	_, err := r.db.Pool.Exec(ctx, query,
		entry.ID,
		entry.WorkspaceID,
		entry.Category,
		entry.Title,
		entry.Question,
		entry.Answer,
		entry.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update knowledge entry: %w", err)
	}

	return nil
}

// Delete removes a knowledge entry. Returns false when no row existed.
func (r *KnowledgeRepository) Delete(ctx context.Context, id, workspaceID uuid.UUID) (bool, error) {
	query := `DELETE FROM knowledge_entries WHERE id = $1 AND workspace_id = $2`

	tag, err := r.db.Pool.Exec(ctx, query, id, workspaceID)
	if err != nil {
		return false, fmt.Errorf("failed to delete knowledge entry: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
