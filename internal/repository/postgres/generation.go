package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/google/uuid"
)

// GenerationRepository handles generation history data access
type GenerationRepository struct {
	db *DB
}

// NewGenerationRepository creates a new generation repository
func NewGenerationRepository(db *DB) *GenerationRepository {
	return &GenerationRepository{db: db}
}

// Create inserts a new generation record in the processing state
func (r *GenerationRepository) Create(ctx context.Context, record *domain.GenerationRecord) error {
	configJSON, err := json.Marshal(record.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	query := `
		INSERT INTO generation_history (
			id, workspace_id, user_id, type, action, status, prompt, config, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.db.Pool.Exec(ctx, query,
		record.ID,
		record.WorkspaceID,
		record.UserID,
		record.Type,
		record.Action,
		record.Status,
		record.Prompt,
		configJSON,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create generation record: %w", err)
	}

	return nil
}

// MarkCompleted moves a record to the completed state, stamping completed_at
func (r *GenerationRepository) MarkCompleted(ctx context.Context, id uuid.UUID, outputURL string) error {
	query := `
		UPDATE generation_history
		SET status = $2, output_url = $3, completed_at = NOW()
		WHERE id = $1
	`

	if _, err := r.db.Pool.Exec(ctx, query, id, domain.GenerationCompleted, outputURL); err != nil {
		return fmt.Errorf("failed to mark generation completed: %w", err)
	}

	return nil
}

// MarkFailed moves a record to the failed state, stamping completed_at
func (r *GenerationRepository) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	query := `
		UPDATE generation_history
		SET status = $2, error = $3, completed_at = NOW()
		WHERE id = $1
	`

	if _, err := r.db.Pool.Exec(ctx, query, id, domain.GenerationFailed, errMsg); err != nil {
		return fmt.Errorf("failed to mark generation failed: %w", err)
	}

	return nil
}

// ListByWorkspace retrieves the most recent generation records for a workspace
func (r *GenerationRepository) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID, limit int) ([]domain.GenerationRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, workspace_id, user_id, type, action, status, prompt, config,
		       COALESCE(output_url, ''), COALESCE(error, ''), created_at, completed_at
		FROM generation_history
		WHERE workspace_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Pool.Query(ctx, query, workspaceID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list generation records: %w", err)
	}
	defer rows.Close()

	var records []domain.GenerationRecord
	for rows.Next() {
		var record domain.GenerationRecord
		var configJSON []byte
		if err := rows.Scan(
			&record.ID,
			&record.WorkspaceID,
			&record.UserID,
			&record.Type,
			&record.Action,
			&record.Status,
			&record.Prompt,
			&configJSON,
			&record.OutputURL,
			&record.Error,
			&record.CreatedAt,
			&record.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan generation record: %w", err)
		}
		if len(configJSON) > 0 {
			if err := json.Unmarshal(configJSON, &record.Config); err != nil {
				return nil, fmt.Errorf("failed to unmarshal config: %w", err)
			}
		}
		records = append(records, record)
	}

	return records, nil
}
