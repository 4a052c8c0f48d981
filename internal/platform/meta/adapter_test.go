package meta

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppSecretProof(t *testing.T) {
	// hex(HMAC-SHA256(key="secret", msg="token"))
	proof := AppSecretProof("token", "secret")
	assert.Equal(t, "e941110e3d2bfe82621f0e3e1434730d7305d106c5f68c87165d0b27a4611a4a", proof)
}

func TestAdapter_Reply(t *testing.T) {
	ctx := context.Background()

	t.Run("signs the form and returns the reply id", func(t *testing.T) {
		var gotPath string
		var gotForm map[string][]string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			gotPath = r.URL.Path
			gotForm = r.PostForm
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

			json.NewEncoder(w).Encode(map[string]string{"id": "reply-42"})
		}))
		defer server.Close()

		a := NewAdapterWithBaseURL(domain.PlatformFacebook, "app-secret", "v25.0", server.URL)

		replyID, err := a.Reply(ctx, "comment-1", "Thanks for watching!", "user-token")
		require.NoError(t, err)
		assert.Equal(t, "reply-42", replyID)

		assert.Equal(t, "/v25.0/comment-1/comments", gotPath)
		assert.Equal(t, "Thanks for watching!", gotForm["message"][0])
		assert.Equal(t, "user-token", gotForm["access_token"][0])
		assert.Equal(t, AppSecretProof("user-token", "app-secret"), gotForm["appsecret_proof"][0])
	})

	t.Run("relays the graph error message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]string{"message": "(#200) Permissions error"},
			})
		}))
		defer server.Close()

		a := NewAdapterWithBaseURL(domain.PlatformFacebook, "app-secret", "v25.0", server.URL)

		_, err := a.Reply(ctx, "comment-1", "hi", "user-token")
		require.Error(t, err)

		derr := domain.AsError(err)
		assert.Equal(t, http.StatusForbidden, derr.Status)
		assert.Equal(t, "(#200) Permissions error", derr.Message)
		assert.NotContains(t, derr.Message, "user-token")
	})
}

func TestAdapter_Hide(t *testing.T) {
	ctx := context.Background()

	t.Run("sets is_hidden on the comment node", func(t *testing.T) {
		var gotPath string
		var gotForm map[string][]string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			gotPath = r.URL.Path
			gotForm = r.PostForm
			json.NewEncoder(w).Encode(map[string]bool{"success": true})
		}))
		defer server.Close()

		a := NewAdapterWithBaseURL(domain.PlatformInstagram, "app-secret", "v25.0", server.URL)

		hidden, err := a.Hide(ctx, "comment-7", "user-token")
		require.NoError(t, err)
		assert.True(t, hidden)

		assert.Equal(t, "/v25.0/comment-7", gotPath)
		assert.Equal(t, "true", gotForm["is_hidden"][0])
	})

	t.Run("re-hiding an already hidden comment succeeds", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// The Graph API answers success for a no-op hide.
			json.NewEncoder(w).Encode(map[string]bool{"success": true})
		}))
		defer server.Close()

		a := NewAdapterWithBaseURL(domain.PlatformFacebook, "app-secret", "v25.0", server.URL)

		hidden, err := a.Hide(ctx, "comment-7", "user-token")
		require.NoError(t, err)
		assert.True(t, hidden)

		hidden, err = a.Hide(ctx, "comment-7", "user-token")
		require.NoError(t, err)
		assert.True(t, hidden)
	})
}
