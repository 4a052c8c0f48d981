package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, requestsPerMinute, burst int) *RateLimiter {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := NewClientFromAddr(mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return NewRateLimiter(client, requestsPerMinute, burst)
}

func TestRateLimiter_Allow(t *testing.T) {
	ctx := context.Background()

	t.Run("allows up to the limit plus burst", func(t *testing.T) {
		limiter := newTestLimiter(t, 3, 1)

		for i := 0; i < 4; i++ {
			allowed, _, _, err := limiter.Allow(ctx, "user:a")
			require.NoError(t, err)
			assert.True(t, allowed, "request %d should be allowed", i+1)
		}

		allowed, remaining, _, err := limiter.Allow(ctx, "user:a")
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Equal(t, 0, remaining)
	})

	t.Run("keys are independent", func(t *testing.T) {
		limiter := newTestLimiter(t, 1, 0)

		allowed, _, _, err := limiter.Allow(ctx, "user:a")
		require.NoError(t, err)
		assert.True(t, allowed)

		allowed, _, _, err = limiter.Allow(ctx, "user:a")
		require.NoError(t, err)
		assert.False(t, allowed)

		allowed, _, _, err = limiter.Allow(ctx, "user:b")
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("reset clears the counter", func(t *testing.T) {
		limiter := newTestLimiter(t, 1, 0)

		_, _, _, err := limiter.Allow(ctx, "user:a")
		require.NoError(t, err)

		allowed, _, _, err := limiter.Allow(ctx, "user:a")
		require.NoError(t, err)
		assert.False(t, allowed)

		require.NoError(t, limiter.Reset(ctx, "user:a"))

		allowed, _, _, err = limiter.Allow(ctx, "user:a")
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("remaining counts down", func(t *testing.T) {
		limiter := newTestLimiter(t, 5, 0)

		_, remaining, _, err := limiter.Allow(ctx, "user:c")
		require.NoError(t, err)
		assert.Equal(t, 4, remaining)

		_, remaining, _, err = limiter.Allow(ctx, "user:c")
		require.NoError(t, err)
		assert.Equal(t, 3, remaining)
	})
}
