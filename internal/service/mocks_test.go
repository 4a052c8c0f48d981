package service

import (
	"context"

	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/buzzdeck/buzzdeck/internal/media/canva"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCredentialRepository mocks the CredentialRepository interface
type MockCredentialRepository struct {
	mock.Mock
}

func (m *MockCredentialRepository) GetByWorkspaceAndPlatform(ctx context.Context, workspaceID uuid.UUID, platform domain.Platform) (*domain.PlatformCredential, error) {
	args := m.Called(ctx, workspaceID, platform)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlatformCredential), args.Error(1)
}

func (m *MockCredentialRepository) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.PlatformCredential, error) {
	args := m.Called(ctx, workspaceID)
	return args.Get(0).([]domain.PlatformCredential), args.Error(1)
}

func (m *MockCredentialRepository) Delete(ctx context.Context, workspaceID uuid.UUID, platform domain.Platform) (bool, error) {
	args := m.Called(ctx, workspaceID, platform)
	return args.Bool(0), args.Error(1)
}

// MockPendingCommentRepository mocks the PendingCommentRepository interface
type MockPendingCommentRepository struct {
	mock.Mock
}

func (m *MockPendingCommentRepository) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.PendingComment, error) {
	args := m.Called(ctx, workspaceID)
	return args.Get(0).([]domain.PendingComment), args.Error(1)
}

func (m *MockPendingCommentRepository) DeleteByPlatformCommentID(ctx context.Context, workspaceID uuid.UUID, platform domain.Platform, platformCommentID string) error {
	args := m.Called(ctx, workspaceID, platform, platformCommentID)
	return args.Error(0)
}

func (m *MockPendingCommentRepository) DeleteAllByWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	args := m.Called(ctx, workspaceID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPendingCommentRepository) CountByWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	args := m.Called(ctx, workspaceID)
	return args.Get(0).(int64), args.Error(1)
}

// MockKnowledgeRepository mocks the KnowledgeRepository interface
type MockKnowledgeRepository struct {
	mock.Mock
}

func (m *MockKnowledgeRepository) Create(ctx context.Context, entry *domain.KnowledgeEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockKnowledgeRepository) GetByIDAndWorkspace(ctx context.Context, id, workspaceID uuid.UUID) (*domain.KnowledgeEntry, error) {
	args := m.Called(ctx, id, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KnowledgeEntry), args.Error(1)
}

func (m *MockKnowledgeRepository) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.KnowledgeEntry, error) {
	args := m.Called(ctx, workspaceID)
	return args.Get(0).([]domain.KnowledgeEntry), args.Error(1)
}

func (m *MockKnowledgeRepository) ListActiveByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.KnowledgeEntry, error) {
	args := m.Called(ctx, workspaceID)
	return args.Get(0).([]domain.KnowledgeEntry), args.Error(1)
}

func (m *MockKnowledgeRepository) Update(ctx context.Context, entry *domain.KnowledgeEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockKnowledgeRepository) Delete(ctx context.Context, id, workspaceID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, workspaceID)
	return args.Bool(0), args.Error(1)
}

// MockGenerationRepository mocks the GenerationRepository interface
type MockGenerationRepository struct {
	mock.Mock
}

func (m *MockGenerationRepository) Create(ctx context.Context, record *domain.GenerationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockGenerationRepository) MarkCompleted(ctx context.Context, id uuid.UUID, outputURL string) error {
	args := m.Called(ctx, id, outputURL)
	return args.Error(0)
}

func (m *MockGenerationRepository) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	args := m.Called(ctx, id, errMsg)
	return args.Error(0)
}

func (m *MockGenerationRepository) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID, limit int) ([]domain.GenerationRecord, error) {
	args := m.Called(ctx, workspaceID, limit)
	return args.Get(0).([]domain.GenerationRecord), args.Error(1)
}

// MockCredentialSource mocks the CredentialSource interface
type MockCredentialSource struct {
	mock.Mock
}

func (m *MockCredentialSource) Token(ctx context.Context, workspaceID uuid.UUID, platform domain.Platform) (string, error) {
	args := m.Called(ctx, workspaceID, platform)
	return args.String(0), args.Error(1)
}

// MockAdapter mocks the platform.Adapter interface
type MockAdapter struct {
	mock.Mock
	name domain.Platform
}

func (m *MockAdapter) Name() domain.Platform {
	return m.name
}

func (m *MockAdapter) Reply(ctx context.Context, commentID, message, token string) (string, error) {
	args := m.Called(ctx, commentID, message, token)
	return args.String(0), args.Error(1)
}

func (m *MockAdapter) Hide(ctx context.Context, commentID, token string) (bool, error) {
	args := m.Called(ctx, commentID, token)
	return args.Bool(0), args.Error(1)
}

// MockSuggester mocks the ReplySuggester interface
type MockSuggester struct {
	mock.Mock
	configured bool
}

func (m *MockSuggester) IsConfigured() bool {
	return m.configured
}

func (m *MockSuggester) Suggest(ctx context.Context, commentText string, knowledge []domain.KnowledgeEntry) (string, error) {
	args := m.Called(ctx, commentText, knowledge)
	return args.String(0), args.Error(1)
}

// MockAudioSynthesizer mocks the AudioSynthesizer interface
type MockAudioSynthesizer struct {
	mock.Mock
	configured bool
}

func (m *MockAudioSynthesizer) IsConfigured() bool {
	return m.configured
}

func (m *MockAudioSynthesizer) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	args := m.Called(ctx, text, voiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockDesignCreator mocks the DesignCreator interface
type MockDesignCreator struct {
	mock.Mock
	configured bool
}

func (m *MockDesignCreator) IsConfigured() bool {
	return m.configured
}

func (m *MockDesignCreator) CreateDesign(ctx context.Context, title string) (*canva.Design, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*canva.Design), args.Error(1)
}

// MockObjectStore mocks the storage.ObjectStore interface
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}
