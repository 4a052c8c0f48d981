package youtube

import (
	"context"
	"errors"
	"fmt"

	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/buzzdeck/buzzdeck/internal/platform"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	youtube "google.golang.org/api/youtube/v3"
)

// rejected removes a comment from public view. The Data API offers no hard
// delete for third-party comments, so hide means moderation status.
const moderationRejected = "rejected"

// Adapter implements platform.Adapter for the YouTube Data API v3
type Adapter struct {
	endpoint string
}

// NewAdapter creates a new YouTube adapter
func NewAdapter() platform.Adapter {
	return &Adapter{}
}

// NewAdapterWithEndpoint creates an adapter against a custom API endpoint,
// used in tests
func NewAdapterWithEndpoint(endpoint string) platform.Adapter {
	return &Adapter{endpoint: endpoint}
}

// Name returns the platform identifier
func (a *Adapter) Name() domain.Platform {
	return domain.PlatformYouTube
}

// service builds a per-request client authenticated with the caller's
// token. No token is cached between requests.
func (a *Adapter) service(ctx context.Context, token string) (*youtube.Service, error) {
	opts := []option.ClientOption{
		option.WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})),
	}
	if a.endpoint != "" {
		opts = append(opts, option.WithEndpoint(a.endpoint))
	}

	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube client: %w", err)
	}
	return svc, nil
}

// Reply posts a reply under a parent comment
func (a *Adapter) Reply(ctx context.Context, commentID, message, token string) (string, error) {
	svc, err := a.service(ctx, token)
	if err != nil {
		return "", err
	}

	comment := &youtube.Comment{
		Snippet: &youtube.CommentSnippet{
			ParentId:     commentID,
			TextOriginal: message,
		},
	}

	reply, err := svc.Comments.Insert([]string{"snippet"}, comment).Context(ctx).Do()
	if err != nil {
		return "", upstreamError(err)
	}

	return reply.Id, nil
}

// Hide sets the comment's moderation status to rejected
func (a *Adapter) Hide(ctx context.Context, commentID, token string) (bool, error) {
	svc, err := a.service(ctx, token)
	if err != nil {
		return false, err
	}

	if err := svc.Comments.SetModerationStatus([]string{commentID}, moderationRejected).Context(ctx).Do(); err != nil {
		return false, upstreamError(err)
	}

	return true, nil
}

func upstreamError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return domain.UpstreamError(apiErr.Code, apiErr.Message)
	}
	return domain.UpstreamError(0, "youtube request failed")
}
