// Package gemini provides the language model client used by the application.
// This is part of the platform layer and contains no business logic.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Config for the Gemini client.
type Config struct {
	APIKey string
	Model  string
}

// Client wraps the Gemini SDK behind a small completion interface.
type Client struct {
	config Config
	genai  *genai.Client
}

// NewClient creates a Gemini client against the Gemini API backend.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{config: cfg, genai: client}, nil
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.config.Model
}

// GenerateContent sends a single completion request. The system instruction
// constrains the model, the prompt carries the user content, and genCfg tunes
// generation (temperature, response MIME type). The response text is returned
// trimmed; an empty response is an error.
func (c *Client) GenerateContent(ctx context.Context, system, prompt string, genCfg *genai.GenerateContentConfig) (string, error) {
	if genCfg == nil {
		genCfg = &genai.GenerateContentConfig{}
	}
	if system != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	result, err := c.genai.Models.GenerateContent(ctx, c.config.Model, genai.Text(prompt), genCfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}

	return text, nil
}
