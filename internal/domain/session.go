package domain

import (
	"context"

	"github.com/google/uuid"
)

// Session is the authenticated caller as resolved from the identity
// provider. It is read per-request and never persisted here.
type Session struct {
	UserID      uuid.UUID
	AccessToken string
}

// WorkspaceMembership links a user to a workspace. Membership rows are
// written by an external invitation flow; this system only reads them.
type WorkspaceMembership struct {
	UserID      uuid.UUID `json:"user_id"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	Role        string    `json:"role"`
}

// MembershipRepository reads workspace memberships
type MembershipRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]WorkspaceMembership, error)
	Get(ctx context.Context, workspaceID, userID uuid.UUID) (*WorkspaceMembership, error)
}
