package canva

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

// Client calls the Canva Connect API
type Client struct {
	token   string
	baseURL string
	client  *http.Client
}

// NewClient creates a new Canva client
func NewClient(cfg config.CanvaConfig) *Client {
	return &Client{
		token:   cfg.Token,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// IsConfigured checks if the client has credentials
func (c *Client) IsConfigured() bool {
	return c.token != ""
}

// Design is a created design with its edit URL
type Design struct {
	ID      string
	EditURL string
}

type createRequest struct {
	Title string `json:"title"`
}

type createResponse struct {
	Design struct {
		ID   string `json:"id"`
		URLs struct {
			EditURL string `json:"edit_url"`
		} `json:"urls"`
	} `json:"design"`
}

type apiError struct {
	Message string `json:"message"`
}

// CreateDesign creates a new design and returns its id and edit URL
func (c *Client) CreateDesign(ctx context.Context, title string) (*Design, error) {
	if !c.IsConfigured() {
		return nil, domain.ConfigurationError("Design generation not configured")
	}

	payload, err := json.Marshal(createRequest{Title: title})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rest/v1/designs", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, domain.UpstreamError(0, "design service unreachable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.UpstreamError(0, "failed to read design response")
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var ae apiError
		if err := json.Unmarshal(body, &ae); err == nil && ae.Message != "" {
			return nil, domain.UpstreamError(resp.StatusCode, ae.Message)
		}
		return nil, domain.UpstreamError(resp.StatusCode, "design generation failed")
	}

	var created createResponse
	if err := json.Unmarshal(body, &created); err != nil || created.Design.ID == "" {
		return nil, domain.UpstreamError(0, "unexpected response from design service")
	}

	return &Design{ID: created.Design.ID, EditURL: created.Design.URLs.EditURL}, nil
}
