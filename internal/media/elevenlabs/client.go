package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/buzzdeck/buzzdeck/internal/config"
	"github.com/buzzdeck/buzzdeck/internal/domain"
)

const defaultModelID = "eleven_multilingual_v2"

// Client calls the ElevenLabs text-to-speech API
type Client struct {
	apiKey         string
	baseURL        string
	defaultVoiceID string
	client         *http.Client
}

// NewClient creates a new ElevenLabs client
func NewClient(cfg config.ElevenLabsConfig) *Client {
	return &Client{
		apiKey:         cfg.APIKey,
		baseURL:        strings.TrimSuffix(cfg.BaseURL, "/"),
		defaultVoiceID: cfg.DefaultVoiceID,
		client:         &http.Client{Timeout: 120 * time.Second},
	}
}

// IsConfigured checks if the client has credentials
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

type ttsRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

type apiError struct {
	Detail struct {
		Message string `json:"message"`
	} `json:"detail"`
}

// Synthesize converts text to speech and returns the audio bytes (MPEG)
func (c *Client) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	if !c.IsConfigured() {
		return nil, domain.ConfigurationError("Audio generation not configured")
	}
	if voiceID == "" {
		voiceID = c.defaultVoiceID
	}

	payload, err := json.Marshal(ttsRequest{Text: text, ModelID: defaultModelID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/text-to-speech/%s", c.baseURL, voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, domain.UpstreamError(0, "audio service unreachable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.UpstreamError(0, "failed to read audio response")
	}

	if resp.StatusCode != http.StatusOK {
		var ae apiError
		if err := json.Unmarshal(body, &ae); err == nil && ae.Detail.Message != "" {
			return nil, domain.UpstreamError(resp.StatusCode, ae.Detail.Message)
		}
		return nil, domain.UpstreamError(resp.StatusCode, "audio generation failed")
	}

	return body, nil
}
