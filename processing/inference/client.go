package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"cowriter/internal/models"
)

var (
	ErrEmptyInput        = errors.New("empty input")
	ErrMalformedResponse = errors.New("response has no message.content string")
)

// StatusError is returned when the server answers with anything but 200.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API returned status %d", e.Code)
}

type Client struct {
	client       *http.Client
	endpoint     string
	model        string
	systemPrompt string
}

// NewClient builds a client for an Ollama-style /api/chat endpoint. The
// underlying http.Client has no timeout; the call lasts as long as the
// server takes or until ctx is done.
func NewClient(endpoint, model, systemPrompt string) *Client {
	return &Client{
		client:       &http.Client{},
		endpoint:     endpoint,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

func (c *Client) Endpoint() string { return c.endpoint }
func (c *Client) Model() string    { return c.model }

func (c *Client) buildRequest(draft string) models.ChatRequest {
	return models.ChatRequest{
		Model: c.model,
		Messages: []models.ChatMessage{
			{Role: models.RoleSystem, Content: c.systemPrompt},
			{Role: models.RoleUser, Content: draft},
		},
		Stream: false,
	}
}

// Rewrite sends draft to the model and returns the improved text.
// Whitespace-only drafts are rejected with ErrEmptyInput before any I/O.
func (c *Client) Rewrite(ctx context.Context, draft string) (string, error) {
	if strings.TrimSpace(draft) == "" {
		return "", ErrEmptyInput
	}

	body, err := json.Marshal(c.buildRequest(draft))
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("inference server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", &StatusError{Code: resp.StatusCode}
	}

	var res models.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if res.Message == nil || res.Message.Content == nil {
		log.Printf("inference: model %q replied without message.content", res.Model)
		return "", ErrMalformedResponse
	}

	return *res.Message.Content, nil
}
