package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// GenerationStatus is the lifecycle of a media generation record:
// processing until the upstream call and upload finish, then completed or
// failed. No retries; a failed record stays failed.
type GenerationStatus string

const (
	GenerationProcessing GenerationStatus = "processing"
	GenerationCompleted  GenerationStatus = "completed"
	GenerationFailed     GenerationStatus = "failed"
)

// GenerationType identifies which media pipeline produced the record.
type GenerationType string

const (
	GenerationAudio  GenerationType = "audio"
	GenerationDesign GenerationType = "design"
)

// GenerationRecord tracks one media generation request end to end.
// CompletedAt is set exactly once, on the terminal transition.
type GenerationRecord struct {
	ID          uuid.UUID        `json:"id"`
	WorkspaceID uuid.UUID        `json:"workspace_id"`
	UserID      uuid.UUID        `json:"user_id"`
	Type        GenerationType   `json:"type"`
	Action      string           `json:"action"`
	Status      GenerationStatus `json:"status"`
	Prompt      string           `json:"prompt"`
	Config      map[string]any   `json:"config,omitempty"`
	OutputURL   string           `json:"output_url,omitempty"`
	Error       string           `json:"error,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
}

// AudioGenerateRequest is the body of POST /generate/audio
type AudioGenerateRequest struct {
	Prompt  string `json:"prompt" validate:"required,max=5000"`
	VoiceID string `json:"voice_id,omitempty" validate:"omitempty,max=100"`
}

// DesignGenerateRequest is the body of POST /generate/design
type DesignGenerateRequest struct {
	Title  string `json:"title" validate:"required,max=255"`
	Prompt string `json:"prompt,omitempty" validate:"omitempty,max=5000"`
}

// GenerationRepository handles generation history data access
type GenerationRepository interface {
	Create(ctx context.Context, record *GenerationRecord) error
	MarkCompleted(ctx context.Context, id uuid.UUID, outputURL string) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID, limit int) ([]GenerationRecord, error)
}
