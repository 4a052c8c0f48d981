package service

import (
	"context"
	"fmt"
	"time"

	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/google/uuid"
)

// KnowledgeService handles knowledge entry operations
type KnowledgeService struct {
	knowledgeRepo domain.KnowledgeRepository
}

// NewKnowledgeService creates a new knowledge service
func NewKnowledgeService(knowledgeRepo domain.KnowledgeRepository) *KnowledgeService {
	return &KnowledgeService{knowledgeRepo: knowledgeRepo}
}

// Create creates a new knowledge entry
func (s *KnowledgeService) Create(ctx context.Context, workspaceID uuid.UUID, input domain.KnowledgeCreate) (*domain.KnowledgeEntry, error) {
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := time.Now()
	entry := &domain.KnowledgeEntry{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		Category:    input.Category,
		Title:       input.Title,
		Question:    input.Question,
		Answer:      input.Answer,
		IsActive:    isActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.knowledgeRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create knowledge entry: %w", err)
	}

	return entry, nil
}

// Get retrieves a knowledge entry by ID
func (s *KnowledgeService) Get(ctx context.Context, workspaceID, id uuid.UUID) (*domain.KnowledgeEntry, error) {
	entry, err := s.knowledgeRepo.GetByIDAndWorkspace(ctx, id, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get knowledge entry: %w", err)
	}
	if entry == nil {
		return nil, domain.NotFoundError("knowledge entry not found")
	}
	return entry, nil
}

// List retrieves all knowledge entries for a workspace
func (s *KnowledgeService) List(ctx context.Context, workspaceID uuid.UUID) ([]domain.KnowledgeEntry, error) {
	return s.knowledgeRepo.ListByWorkspace(ctx, workspaceID)
}

// Update applies partial updates to a knowledge entry
func (s *KnowledgeService) Update(ctx context.Context, workspaceID, id uuid.UUID, input domain.KnowledgeUpdate) (*domain.KnowledgeEntry, error) {
	entry, err := s.knowledgeRepo.GetByIDAndWorkspace(ctx, id, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get knowledge entry: %w", err)
	}
	if entry == nil {
		return nil, domain.NotFoundError("knowledge entry not found")
	}

	if input.Category != nil {
		entry.Category = *input.Category
	}
	if input.Title != nil {
		entry.Title = *input.Title
	}
	if input.Question != nil {
		entry.Question = *input.Question
	}
	if input.Answer != nil {
		entry.Answer = *input.Answer
	}
	if input.IsActive != nil {
		entry.IsActive = *input.IsActive
	}
	entry.UpdatedAt = time.Now()

	if err := s.knowledgeRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update knowledge entry: %w", err)
	}

	return entry, nil
}

// Delete removes a knowledge entry
func (s *KnowledgeService) Delete(ctx context.Context, workspaceID, id uuid.UUID) error {
	deleted, err := s.knowledgeRepo.Delete(ctx, id, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to delete knowledge entry: %w", err)
	}
	if !deleted {
		return domain.NotFoundError("knowledge entry not found")
	}
	return nil
}
