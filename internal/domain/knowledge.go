package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// KnowledgeEntry is a workspace-scoped Q&A record used to ground reply
// suggestions.
type KnowledgeEntry struct {
	ID          uuid.UUID `json:"id"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Question    string    `json:"question"`
	Answer      string    `json:"answer"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// KnowledgeCreate is the body of POST /knowledge
type KnowledgeCreate struct {
	Category string `json:"category" validate:"required,max=100"`
	Title    string `json:"title" validate:"required,max=255"`
	Question string `json:"question" validate:"required,max=2000"`
	Answer   string `json:"answer" validate:"required,max=10000"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// KnowledgeUpdate is the body of PUT /knowledge/{id}
type KnowledgeUpdate struct {
	Category *string `json:"category,omitempty" validate:"omitempty,max=100"`
	Title    *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Question *string `json:"question,omitempty" validate:"omitempty,max=2000"`
	Answer   *string `json:"answer,omitempty" validate:"omitempty,max=10000"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// KnowledgeRepository handles knowledge entry data access
type KnowledgeRepository interface {
	Create(ctx context.Context, entry *KnowledgeEntry) error
	GetByIDAndWorkspace(ctx context.Context, id, workspaceID uuid.UUID) (*KnowledgeEntry, error)
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]KnowledgeEntry, error)
	ListActiveByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]KnowledgeEntry, error)
	Update(ctx context.Context, entry *KnowledgeEntry) error
	Delete(ctx context.Context, id, workspaceID uuid.UUID) (bool, error)
}
