// Package assist drafts reply suggestions for pending comments, grounded
// on the workspace's active knowledge entries.
package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/buzzdeck/buzzdeck/internal/config"
	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const systemPrompt = "You draft short, friendly replies to social media comments on behalf of a brand. " +
	"Use the provided knowledge base when it answers the comment. Respond with ONLY the reply text."

// Suggester generates reply drafts with Gemini
type Suggester struct {
	apiKey string
	model  string
}

// NewSuggester creates a new suggester
func NewSuggester(cfg config.GeminiConfig) *Suggester {
	return &Suggester{apiKey: cfg.APIKey, model: cfg.Model}
}

// IsConfigured checks if the suggester has credentials
func (s *Suggester) IsConfigured() bool {
	return s.apiKey != ""
}

// Suggest drafts a reply to commentText, seeding the prompt with the
// workspace's active knowledge entries.
func (s *Suggester) Suggest(ctx context.Context, commentText string, knowledge []domain.KnowledgeEntry) (string, error) {
	if !s.IsConfigured() {
		return "", domain.ConfigurationError("Suggestion service not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(commentText, knowledge)))
	if err != nil {
		return "", domain.UpstreamError(0, "suggestion generation failed")
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", domain.UpstreamError(0, "no suggestion returned")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	suggestion := strings.TrimSpace(sb.String())
	if suggestion == "" {
		return "", domain.UpstreamError(0, "no suggestion returned")
	}
	return suggestion, nil
}

func buildPrompt(commentText string, knowledge []domain.KnowledgeEntry) string {
	var sb strings.Builder

	if len(knowledge) > 0 {
		sb.WriteString("Knowledge base:\n")
		for _, entry := range knowledge {
			fmt.Fprintf(&sb, "- Q: %s\n  A: %s\n", entry.Question, entry.Answer)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Comment:\n")
	sb.WriteString(commentText)
	return sb.String()
}
