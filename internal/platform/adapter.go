// Package platform defines the moderation adapter contract for external
// social networks and the registry that dispatches on the platform tag.
package platform

import (
	"context"
	"fmt"
	"sync"

	"github.com/buzzdeck/buzzdeck/internal/domain"
)

// Adapter performs moderation actions against one social platform using a
// caller-supplied bearer token. Implementations convert every upstream
// failure into an error; they never panic past this boundary and never
// embed the token in error text.
type Adapter interface {
	// Name returns the platform identifier
	Name() domain.Platform

	// Reply posts a reply to a comment and returns the new reply's ID
	Reply(ctx context.Context, commentID, message, token string) (string, error)

	// Hide hides a comment from public view. Hiding an already-hidden
	// comment succeeds.
	Hide(ctx context.Context, commentID, token string) (bool, error)
}

// Registry maps platform tags to adapters. The platform set is closed;
// resolving an unregistered platform is a caller error.
type Registry struct {
	adapters map[domain.Platform]Adapter
	mu       sync.RWMutex
}

// NewRegistry creates an empty adapter registry
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[domain.Platform]Adapter)}
}

// Register binds an adapter to a platform tag. The same adapter may back
// several tags (Meta serves both facebook and instagram).
func (r *Registry) Register(p domain.Platform, adapter Adapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adapters[p] = adapter
}

// Get returns the adapter for a platform
func (r *Registry) Get(p domain.Platform) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, ok := r.adapters[p]
	if !ok {
		return nil, fmt.Errorf("unsupported platform: %s", p)
	}
	return adapter, nil
}
