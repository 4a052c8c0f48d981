package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MembershipRepository reads workspace memberships. Membership writes
// happen in the external invitation flow, not here.
type MembershipRepository struct {
	db *DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// ListByUser retrieves all memberships for a user, oldest first
func (r *MembershipRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WorkspaceMembership, error) {
	query := `
		SELECT user_id, workspace_id, role
		FROM workspace_memberships
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	var memberships []domain.WorkspaceMembership
	for rows.Next() {
		var m domain.WorkspaceMembership
		if err := rows.Scan(&m.UserID, &m.WorkspaceID, &m.Role); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, m)
	}

	return memberships, nil
}

// Get retrieves one membership, or nil when the user does not belong to
// the workspace
func (r *MembershipRepository) Get(ctx context.Context, workspaceID, userID uuid.UUID) (*domain.WorkspaceMembership, error) {
	query := `
		SELECT user_id, workspace_id, role
		FROM workspace_memberships
		WHERE workspace_id = $1 AND user_id = $2
	`

	var m domain.WorkspaceMembership
	err := r.db.Pool.QueryRow(ctx, query, workspaceID, userID).Scan(&m.UserID, &m.WorkspaceID, &m.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}
