package service

import (
	"context"
	"fmt"
	"time"

	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/buzzdeck/buzzdeck/internal/media/canva"
	"github.com/buzzdeck/buzzdeck/internal/storage"
	"github.com/google/uuid"
)

// AudioSynthesizer converts text to speech
type AudioSynthesizer interface {
	Synthesize(ctx context.Context, text, voiceID string) ([]byte, error)
	IsConfigured() bool
}

// DesignCreator creates a design document
type DesignCreator interface {
	CreateDesign(ctx context.Context, title string) (*canva.Design, error)
	IsConfigured() bool
}

// GenerationService runs media generation pipelines. Each request is a
// single sequential pass: record the attempt, call the provider, store
// the output, mark the terminal state. Failed records stay failed; there
// are no retries.
type GenerationService struct {
	generationRepo domain.GenerationRepository
	audio          AudioSynthesizer
	design         DesignCreator
	store          storage.ObjectStore
}

// NewGenerationService creates a new generation service
func NewGenerationService(
	generationRepo domain.GenerationRepository,
	audio AudioSynthesizer,
	design DesignCreator,
	store storage.ObjectStore,
) *GenerationService {
	return &GenerationService{
		generationRepo: generationRepo,
		audio:          audio,
		design:         design,
		store:          store,
	}
}

// GenerateAudio synthesizes speech for the prompt and stores the result
func (s *GenerationService) GenerateAudio(ctx context.Context, workspaceID, userID uuid.UUID, input domain.AudioGenerateRequest) (*domain.GenerationRecord, error) {
	if s.audio == nil || !s.audio.IsConfigured() {
		return nil, domain.ConfigurationError("Audio generation not configured")
	}

	record := &domain.GenerationRecord{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		UserID:      userID,
		Type:        domain.GenerationAudio,
		Action:      "text_to_speech",
		Status:      domain.GenerationProcessing,
		Prompt:      input.Prompt,
		Config:      map[string]any{"voice_id": input.VoiceID},
		CreatedAt:   time.Now(),
	}
	if err := s.generationRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create generation record: %w", err)
	}

	audio, err := s.audio.Synthesize(ctx, input.Prompt, input.VoiceID)
	if err != nil {
		return nil, s.fail(ctx, record, err)
	}

	key := fmt.Sprintf("audio/%s/%s.mp3", workspaceID, record.ID)
	outputURL, err := s.store.Upload(ctx, key, audio, "audio/mpeg")
	if err != nil {
		return nil, s.fail(ctx, record, fmt.Errorf("failed to store audio: %w", err))
	}

	return s.complete(ctx, record, outputURL)
}

// GenerateDesign creates a design document for the request
func (s *GenerationService) GenerateDesign(ctx context.Context, workspaceID, userID uuid.UUID, input domain.DesignGenerateRequest) (*domain.GenerationRecord, error) {
	if s.design == nil || !s.design.IsConfigured() {
		return nil, domain.ConfigurationError("Design generation not configured")
	}

	record := &domain.GenerationRecord{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		UserID:      userID,
		Type:        domain.GenerationDesign,
		Action:      "create_design",
		Status:      domain.GenerationProcessing,
		Prompt:      input.Prompt,
		Config:      map[string]any{"title": input.Title},
		CreatedAt:   time.Now(),
	}
	if err := s.generationRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create generation record: %w", err)
	}

	design, err := s.design.CreateDesign(ctx, input.Title)
	if err != nil {
		return nil, s.fail(ctx, record, err)
	}

	return s.complete(ctx, record, design.EditURL)
}

// History retrieves the workspace's recent generation records
func (s *GenerationService) History(ctx context.Context, workspaceID uuid.UUID, limit int) ([]domain.GenerationRecord, error) {
	return s.generationRepo.ListByWorkspace(ctx, workspaceID, limit)
}

func (s *GenerationService) complete(ctx context.Context, record *domain.GenerationRecord, outputURL string) (*domain.GenerationRecord, error) {
	if err := s.generationRepo.MarkCompleted(ctx, record.ID, outputURL); err != nil {
		return nil, fmt.Errorf("failed to mark generation completed: %w", err)
	}

	now := time.Now()
	record.Status = domain.GenerationCompleted
	record.OutputURL = outputURL
	record.CompletedAt = &now
	return record, nil
}

func (s *GenerationService) fail(ctx context.Context, record *domain.GenerationRecord, cause error) error {
	_ = s.generationRepo.MarkFailed(ctx, record.ID, cause.Error())
	return cause
}
