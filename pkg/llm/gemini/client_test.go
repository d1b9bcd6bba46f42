package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/artem13815/career/pkg/llm"
)

type fakeModel struct {
	prompt string
	err    error
}

func (f *fakeModel) GenerateContent(_ context.Context, msgs []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, m := range msgs {
		for _, p := range m.Parts {
			if tc, ok := p.(llms.TextContent); ok {
				f.prompt += tc.Text
			}
		}
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: "answer"}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, opts ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, opts...)
}

func TestAsk(t *testing.T) {
	m := &fakeModel{}
	got, err := NewWithModel(m).Ask(context.Background(), "be brief", "hi")
	require.NoError(t, err)
	assert.Equal(t, "answer", got)
	assert.Equal(t, "be brief\n\nhi", m.prompt)

	_, err = NewWithModel(&fakeModel{err: errors.New("quota")}).Ask(context.Background(), "s", "u")
	assert.ErrorContains(t, err, "quota")
}

func TestNewWithoutKey(t *testing.T) {
	_, err := New(context.Background(), "", "")
	assert.ErrorIs(t, err, llm.ErrNoAPIKey)
}
