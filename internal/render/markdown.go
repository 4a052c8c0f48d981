// Package render converts post-preview markdown to sanitized HTML through
// an explicit bounded cache.
package render

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer converts markdown to HTML and sanitizes the result. The cache
// is injected rather than held as package state, so callers control its
// bounds and eviction.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	cache  *Cache
}

// NewRenderer creates a renderer backed by the given cache
func NewRenderer(cache *Cache) *Renderer {
	// Raw HTML passes through the markdown stage; sanitization is the
	// policy's job, applied to the final output.
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
		),
		policy: bluemonday.UGCPolicy(),
		cache:  cache,
	}
}

// Render returns sanitized HTML for the markdown source. Repeated content
// is served from the cache.
func (r *Renderer) Render(source string) (string, error) {
	key := contentKey(source)
	if html, ok := r.cache.Get(key); ok {
		return html, nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	html := r.policy.Sanitize(buf.String())
	r.cache.Set(key, html)
	return html, nil
}

func contentKey(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}
