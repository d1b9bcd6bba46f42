// Package gemini serves llm.ChatModel from Google Gemini through langchaingo.
package gemini

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/artem13815/career/pkg/llm"
)

const defaultModel = "gemini-2.5-flash"

type Client struct {
	model llms.Model
}

func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, llm.ErrNoAPIKey
	}
	if model == "" {
		model = defaultModel
	}
	m, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("googleai.New: %w", err)
	}
	return &Client{model: m}, nil
}

// NewWithModel wraps an already configured langchaingo model.
func NewWithModel(m llms.Model) *Client { return &Client{model: m} }

func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	prompt := systemPrompt + "\n\n" + userPrompt
	out, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt, llms.WithTemperature(0.7))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return out, nil
}
