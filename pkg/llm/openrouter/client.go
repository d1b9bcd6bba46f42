// Package openrouter talks to OpenRouter through its OpenAI-compatible API.
package openrouter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/artem13815/career/pkg/llm"
)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultModel   = "openai/gpt-4o-mini"
)

type Client struct {
	client *goopenai.Client
	model  string
}

// attribution adds the optional OpenRouter app headers to every request.
type attribution struct {
	base     http.RoundTripper
	referer  string
	appTitle string
}

func (a attribution) RoundTrip(r *http.Request) (*http.Response, error) {
	if a.referer == "" && a.appTitle == "" {
		return a.base.RoundTrip(r)
	}
	r = r.Clone(r.Context())
	if a.referer != "" {
		r.Header.Set("HTTP-Referer", a.referer)
	}
	if a.appTitle != "" {
		r.Header.Set("X-Title", a.appTitle)
	}
	return a.base.RoundTrip(r)
}

func New(apiKey, baseURL, model, appTitle, referer string, timeout time.Duration) *Client {
	if apiKey == "" {
		return &Client{}
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	cfg := goopenai.DefaultConfig(apiKey)
	cfg.BaseURL = strings.TrimRight(baseURL, "/")
	cfg.HTTPClient = &http.Client{
		Timeout:   timeout,
		Transport: attribution{base: http.DefaultTransport, referer: referer, appTitle: appTitle},
	}
	return &Client{client: goopenai.NewClientWithConfig(cfg), model: model}
}

func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.client == nil {
		return "", llm.ErrNoAPIKey
	}
	resp, err := c.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.7,
		MaxTokens:   2000,
	})
	if err != nil {
		return "", fmt.Errorf("openrouter chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned by model")
	}
	return resp.Choices[0].Message.Content, nil
}
