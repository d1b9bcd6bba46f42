// Package llm defines the chat model port used by the AI gateway.
package llm

import (
	"context"
	"errors"
)

// ChatModel answers one system+user prompt pair with plain text.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ErrNoAPIKey is returned by providers constructed without credentials.
var ErrNoAPIKey = errors.New("llm api key is empty")
