package middleware

import (
	"fmt"
	"net"
	"net/http"

	"github.com/buzzdeck/buzzdeck/internal/api/response"
	redisrepo "github.com/buzzdeck/buzzdeck/internal/repository/redis"
	"github.com/rs/zerolog/log"
)

// RateLimit applies a fixed-window per-client limit. When redis is
// unreachable the request is allowed through.
func RateLimit(limiter *redisrepo.RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)

			allowed, remaining, resetTime, err := limiter.Allow(r.Context(), key)
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
			w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", resetTime.Unix()))

			if !allowed {
				response.Error(w, http.StatusTooManyRequests, "Rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientKey prefers the authenticated user, falling back to the remote IP
// for unauthenticated endpoints.
func clientKey(r *http.Request) string {
	if session, ok := GetSession(r.Context()); ok {
		return "user:" + session.UserID.String()
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
