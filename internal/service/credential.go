package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/buzzdeck/buzzdeck/internal/security"
	"github.com/google/uuid"
)

// CredentialSource resolves a platform access token for a workspace. An
// empty token with a nil error means the platform is not connected.
type CredentialSource interface {
	Token(ctx context.Context, workspaceID uuid.UUID, platform domain.Platform) (string, error)
}

// CredentialService reads and removes per-workspace platform credentials
type CredentialService struct {
	credentialRepo domain.CredentialRepository
	encryptor      *security.Encryptor
}

// NewCredentialService creates a new credential service
func NewCredentialService(credentialRepo domain.CredentialRepository, encryptor *security.Encryptor) *CredentialService {
	return &CredentialService{
		credentialRepo: credentialRepo,
		encryptor:      encryptor,
	}
}

// Token returns the decrypted access token for a platform, or "" when the
// platform is not connected. Absent rows, disconnected rows, and blobs
// that fail to decrypt or parse all read as not connected; none of them is
// a server error.
func (s *CredentialService) Token(ctx context.Context, workspaceID uuid.UUID, platform domain.Platform) (string, error) {
	cred, err := s.credentialRepo.GetByWorkspaceAndPlatform(ctx, workspaceID, platform)
	if err != nil {
		return "", fmt.Errorf("failed to look up credential: %w", err)
	}
	if cred == nil || !cred.Connected {
		return "", nil
	}

	plaintext, err := s.encryptor.Decrypt(cred.CredentialsEncrypted)
	if err != nil {
		return "", nil
	}

	return parseTokenBlob(plaintext), nil
}

// parseTokenBlob accepts both blob shapes seen in the wild: a JSON object
// carrying access_token, or the bare token string.
func parseTokenBlob(plaintext []byte) string {
	var blob struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(plaintext, &blob); err == nil && blob.AccessToken != "" {
		return blob.AccessToken
	}

	token := strings.TrimSpace(string(plaintext))
	if strings.HasPrefix(token, "{") {
		// JSON that didn't carry a token is malformed, not a bare token.
		return ""
	}
	return strings.Trim(token, `"`)
}

// List reports connection status for every supported platform, including
// the ones without a credential row.
func (s *CredentialService) List(ctx context.Context, workspaceID uuid.UUID) ([]domain.ConnectionStatus, error) {
	creds, err := s.credentialRepo.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}

	byPlatform := make(map[domain.Platform]domain.PlatformCredential, len(creds))
	for _, cred := range creds {
		byPlatform[cred.Platform] = cred
	}

	platforms := []domain.Platform{domain.PlatformYouTube, domain.PlatformFacebook, domain.PlatformInstagram}
	statuses := make([]domain.ConnectionStatus, 0, len(platforms))
	for _, p := range platforms {
		status := domain.ConnectionStatus{Platform: p}
		if cred, ok := byPlatform[p]; ok {
			status.Connected = cred.Connected
			status.UpdatedAt = cred.UpdatedAt
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// Disconnect deletes the credential row for a platform
func (s *CredentialService) Disconnect(ctx context.Context, workspaceID uuid.UUID, platform domain.Platform) error {
	deleted, err := s.credentialRepo.Delete(ctx, workspaceID, platform)
	if err != nil {
		return fmt.Errorf("failed to disconnect platform: %w", err)
	}
	if !deleted {
		return domain.NotFoundError(fmt.Sprintf("%s is not connected", platform))
	}
	return nil
}
