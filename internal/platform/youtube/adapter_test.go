package youtube

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

func TestAdapter_Reply(t *testing.T) {
	ctx := context.Background()

	t.Run("posts a snippet reply and returns the new id", func(t *testing.T) {
		var gotAuth string
		var gotBody struct {
			Snippet struct {
				ParentID     string `json:"parentId"`
				TextOriginal string `json:"textOriginal"`
			} `json:"snippet"`
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			assert.Equal(t, "snippet", r.URL.Query().Get("part"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			json.NewEncoder(w).Encode(map[string]any{"id": "reply-1"})
		}))
		defer server.Close()

		a := NewAdapterWithEndpoint(server.URL)

		replyID, err := a.Reply(ctx, "parent-comment", "Great video!", "yt-token")
		require.NoError(t, err)
		assert.Equal(t, "reply-1", replyID)

		assert.Equal(t, "Bearer yt-token", gotAuth)
		assert.Equal(t, "parent-comment", gotBody.Snippet.ParentID)
		assert.Equal(t, "Great video!", gotBody.Snippet.TextOriginal)
	})

	t.Run("maps api errors to their status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"code": 403, "message": "The comment thread is closed"},
			})
		}))
		defer server.Close()

		a := NewAdapterWithEndpoint(server.URL)

		_, err := a.Reply(ctx, "parent-comment", "hi", "yt-token")
		require.Error(t, err)

		derr := domain.AsError(err)
		assert.Equal(t, http.StatusForbidden, derr.Status)
		assert.NotContains(t, derr.Message, "yt-token")
	})
}

func TestAdapter_Hide(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects the comment", func(t *testing.T) {
		var gotQuery map[string][]string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		a := NewAdapterWithEndpoint(server.URL)

		hidden, err := a.Hide(ctx, "comment-5", "yt-token")
		require.NoError(t, err)
		assert.True(t, hidden)

		assert.Equal(t, []string{"comment-5"}, gotQuery["id"])
		assert.Equal(t, []string{"rejected"}, gotQuery["moderationStatus"])
	})

	t.Run("rejecting an already rejected comment succeeds", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		a := NewAdapterWithEndpoint(server.URL)

		for i := 0; i < 2; i++ {
			hidden, err := a.Hide(ctx, "comment-5", "yt-token")
			require.NoError(t, err)
			assert.True(t, hidden)
		}
	})
}
