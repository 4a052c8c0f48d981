package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CredentialRepository handles platform credential data access
type CredentialRepository struct {
	db *DB
}

// NewCredentialRepository creates a new credential repository
func NewCredentialRepository(db *DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// GetByWorkspaceAndPlatform retrieves the credential row for one platform
// in one workspace, or nil when absent
func (r *CredentialRepository) GetByWorkspaceAndPlatform(ctx context.Context, workspaceID uuid.UUID, platform domain.Platform) (*domain.PlatformCredential, error) {
	query := `
		SELECT id, workspace_id, platform, credentials_encrypted, connected, created_at, updated_at
		FROM platform_credentials
		WHERE workspace_id = $1 AND platform = $2
	`

	var cred domain.PlatformCredential
	err := r.db.Pool.QueryRow(ctx, query, workspaceID, platform).Scan(
		&cred.ID,
		&cred.WorkspaceID,
		&cred.Platform,
		&cred.CredentialsEncrypted,
		&cred.Connected,
		&cred.CreatedAt,
		&cred.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}

	return &cred, nil
}

// ListByWorkspace retrieves all credential rows for a workspace
func (r *CredentialRepository) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.PlatformCredential, error) {
	query := `
		SELECT id, workspace_id, platform, credentials_encrypted, connected, created_at, updated_at
		FROM platform_credentials
		WHERE workspace_id = $1
		ORDER BY platform ASC
	`

	rows, err := r.db.Pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}
	defer rows.Close()

	var creds []domain.PlatformCredential
	for rows.Next() {
		var cred domain.PlatformCredential
		if err := rows.Scan(
			&cred.ID,
			&cred.WorkspaceID,
			&cred.Platform,
			&cred.CredentialsEncrypted,
			&cred.Connected,
			&cred.CreatedAt,
			&cred.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan credential: %w", err)
		}
		creds = append(creds, cred)
	}

	return creds, nil
}

// Delete removes the credential row for one platform in one workspace.
// Returns false when no row existed.
func (r *CredentialRepository) Delete(ctx context.Context, workspaceID uuid.UUID, platform domain.Platform) (bool, error) {
	query := `DELETE FROM platform_credentials WHERE workspace_id = $1 AND platform = $2`

	tag, err := r.db.Pool.Exec(ctx, query, workspaceID, platform)
	if err != nil {
		return false, fmt.Errorf("failed to delete credential: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
