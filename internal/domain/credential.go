package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Platform identifies an external social network. The set is closed:
// adapters are registered per platform and an unknown value is a caller
// error, never a fallthrough.
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
)

// Valid reports whether p names a supported platform.
func (p Platform) Valid() bool {
	switch p {
	case PlatformYouTube, PlatformFacebook, PlatformInstagram:
		return true
	}
	return false
}

// PlatformCredential is a per-workspace OAuth credential, written when a
// user completes a connect flow and deleted on disconnect. The token blob
// is encrypted at rest.
type PlatformCredential struct {
	ID                   uuid.UUID `json:"id"`
	WorkspaceID          uuid.UUID `json:"workspace_id"`
	Platform             Platform  `json:"platform"`
	CredentialsEncrypted []byte    `json:"-"`
	Connected            bool      `json:"connected"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// ConnectionStatus is the caller-visible view of a credential row.
type ConnectionStatus struct {
	Platform  Platform  `json:"platform"`
	Connected bool      `json:"connected"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CredentialRepository handles platform credential data access
type CredentialRepository interface {
	GetByWorkspaceAndPlatform(ctx context.Context, workspaceID uuid.UUID, platform Platform) (*PlatformCredential, error)
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]PlatformCredential, error)
	Delete(ctx context.Context, workspaceID uuid.UUID, platform Platform) (bool, error)
}
