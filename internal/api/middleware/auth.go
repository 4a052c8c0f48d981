package middleware

import (
	"context"
	"net/http"

	"github.com/buzzdeck/buzzdeck/internal/api/response"
	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/buzzdeck/buzzdeck/internal/identity"
	"github.com/google/uuid"
)

type contextKey string

const (
	sessionKey   contextKey = "session"
	workspaceKey contextKey = "workspace_id"
)

// WorkspaceHeader selects a workspace the caller is a member of. Without
// it the caller's first membership is used.
const WorkspaceHeader = "X-Workspace-ID"

// Auth resolves the caller's session through the identity provider and
// rejects unauthenticated requests.
func Auth(resolver *identity.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := resolver.Resolve(r)
			if err != nil {
				response.FromError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Workspace resolves the caller's workspace from the X-Workspace-ID
// header, verified against their memberships, or falls back to the first
// membership.
func Workspace(memberships domain.MembershipRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := GetSession(r.Context())
			if !ok {
				response.Unauthorized(w, "Not authenticated")
				return
			}

			workspaceID, err := resolveWorkspace(r, memberships, session.UserID)
			if err != nil {
				response.FromError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), workspaceKey, workspaceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveWorkspace(r *http.Request, memberships domain.MembershipRepository, userID uuid.UUID) (uuid.UUID, error) {
	if header := r.Header.Get(WorkspaceHeader); header != "" {
		workspaceID, err := uuid.Parse(header)
		if err != nil {
			return uuid.Nil, domain.BadRequestError("Invalid workspace ID")
		}

		membership, err := memberships.Get(r.Context(), workspaceID, userID)
		if err != nil {
			return uuid.Nil, err
		}
		if membership == nil {
			return uuid.Nil, domain.NotFoundError("Workspace not found")
		}
		return workspaceID, nil
	}

	list, err := memberships.ListByUser(r.Context(), userID)
	if err != nil {
		return uuid.Nil, err
	}
	if len(list) == 0 {
		return uuid.Nil, domain.NotFoundError("Workspace not found")
	}
	return list[0].WorkspaceID, nil
}

// WithSession returns a context carrying the session, as the Auth
// middleware would set it
func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// WithWorkspaceID returns a context carrying the resolved workspace, as
// the Workspace middleware would set it
func WithWorkspaceID(ctx context.Context, workspaceID uuid.UUID) context.Context {
	return context.WithValue(ctx, workspaceKey, workspaceID)
}

// GetSession retrieves the session from the request context
func GetSession(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(sessionKey).(*domain.Session)
	return session, ok
}

// GetWorkspaceID retrieves the resolved workspace ID from the request context
func GetWorkspaceID(ctx context.Context) (uuid.UUID, bool) {
	workspaceID, ok := ctx.Value(workspaceKey).(uuid.UUID)
	return workspaceID, ok
}
