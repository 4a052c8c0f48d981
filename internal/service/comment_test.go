package service

import (
	"context"
	"testing"

	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/buzzdeck/buzzdeck/internal/platform"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCommentFixture(t *testing.T) (*CommentService, *MockCredentialSource, *MockAdapter, *MockPendingCommentRepository, *MockKnowledgeRepository, *MockSuggester) {
	t.Helper()

	creds := new(MockCredentialSource)
	adapter := &MockAdapter{name: domain.PlatformYouTube}
	pendingRepo := new(MockPendingCommentRepository)
	knowledgeRepo := new(MockKnowledgeRepository)
	suggester := &MockSuggester{configured: true}

	registry := platform.NewRegistry()
	registry.Register(domain.PlatformYouTube, adapter)

	svc := NewCommentService(creds, registry, pendingRepo, knowledgeRepo, suggester)
	return svc, creds, adapter, pendingRepo, knowledgeRepo, suggester
}

func TestCommentService_Reply(t *testing.T) {
	ctx := context.Background()
	workspaceID := uuid.New()

	t.Run("success deletes pending row", func(t *testing.T) {
		svc, creds, adapter, pendingRepo, _, _ := newCommentFixture(t)

		creds.On("Token", ctx, workspaceID, domain.PlatformYouTube).Return("tok-123", nil)
		adapter.On("Reply", ctx, "comment-1", "Thanks!", "tok-123").Return("reply-9", nil)
		pendingRepo.On("DeleteByPlatformCommentID", ctx, workspaceID, domain.PlatformYouTube, "comment-1").Return(nil)

		replyID, err := svc.Reply(ctx, workspaceID, domain.ReplyRequest{
			Platform:  domain.PlatformYouTube,
			CommentID: "comment-1",
			Message:   "Thanks!",
		})

		assert.NoError(t, err)
		assert.Equal(t, "reply-9", replyID)
		pendingRepo.AssertExpectations(t)
	})

	t.Run("not connected returns 400", func(t *testing.T) {
		svc, creds, adapter, pendingRepo, _, _ := newCommentFixture(t)

		creds.On("Token", ctx, workspaceID, domain.PlatformYouTube).Return("", nil)

		_, err := svc.Reply(ctx, workspaceID, domain.ReplyRequest{
			Platform:  domain.PlatformYouTube,
			CommentID: "comment-1",
			Message:   "Thanks!",
		})

		assert.Error(t, err)
		derr := domain.AsError(err)
		assert.Equal(t, 400, derr.Status)
		assert.Equal(t, "youtube is not connected", derr.Message)
		adapter.AssertNotCalled(t, "Reply", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		pendingRepo.AssertNotCalled(t, "DeleteByPlatformCommentID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("adapter failure keeps pending row", func(t *testing.T) {
		svc, creds, adapter, pendingRepo, _, _ := newCommentFixture(t)

		creds.On("Token", ctx, workspaceID, domain.PlatformYouTube).Return("tok-123", nil)
		adapter.On("Reply", ctx, "comment-1", "Thanks!", "tok-123").
			Return("", domain.UpstreamError(403, "insufficient permissions"))

		_, err := svc.Reply(ctx, workspaceID, domain.ReplyRequest{
			Platform:  domain.PlatformYouTube,
			CommentID: "comment-1",
			Message:   "Thanks!",
		})

		assert.Error(t, err)
		assert.Equal(t, 403, domain.AsError(err).Status)
		pendingRepo.AssertNotCalled(t, "DeleteByPlatformCommentID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCommentService_Hide(t *testing.T) {
	ctx := context.Background()
	workspaceID := uuid.New()

	t.Run("success", func(t *testing.T) {
		svc, creds, adapter, pendingRepo, _, _ := newCommentFixture(t)

		creds.On("Token", ctx, workspaceID, domain.PlatformYouTube).Return("tok-123", nil)
		adapter.On("Hide", ctx, "comment-1", "tok-123").Return(true, nil)
		pendingRepo.On("DeleteByPlatformCommentID", ctx, workspaceID, domain.PlatformYouTube, "comment-1").Return(nil)

		hidden, err := svc.Hide(ctx, workspaceID, domain.HideRequest{
			Platform:  domain.PlatformYouTube,
			CommentID: "comment-1",
		})

		assert.NoError(t, err)
		assert.True(t, hidden)
	})
}

func TestCommentService_BulkDeletePending(t *testing.T) {
	ctx := context.Background()
	workspaceID := uuid.New()

	svc, _, _, pendingRepo, _, _ := newCommentFixture(t)
	pendingRepo.On("DeleteAllByWorkspace", ctx, workspaceID).Return(int64(7), nil)

	deleted, err := svc.BulkDeletePending(ctx, workspaceID)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), deleted)
}

func TestCommentService_Suggest(t *testing.T) {
	ctx := context.Background()
	workspaceID := uuid.New()

	t.Run("uses active knowledge", func(t *testing.T) {
		svc, _, _, _, knowledgeRepo, suggester := newCommentFixture(t)

		knowledge := []domain.KnowledgeEntry{{Question: "Shipping?", Answer: "3-5 days"}}
		knowledgeRepo.On("ListActiveByWorkspace", ctx, workspaceID).Return(knowledge, nil)
		suggester.On("Suggest", ctx, "When does it ship?", knowledge).Return("It ships in 3-5 days!", nil)

		got, err := svc.Suggest(ctx, workspaceID, "When does it ship?")
		assert.NoError(t, err)
		assert.Equal(t, "It ships in 3-5 days!", got)
	})

	t.Run("unconfigured returns 503", func(t *testing.T) {
		svc, _, _, _, knowledgeRepo, suggester := newCommentFixture(t)
		suggester.configured = false

		_, err := svc.Suggest(ctx, workspaceID, "hello")
		assert.Error(t, err)
		assert.Equal(t, 503, domain.AsError(err).Status)
		knowledgeRepo.AssertNotCalled(t, "ListActiveByWorkspace", mock.Anything, mock.Anything)
	})
}
