package linkedin

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/career/pkg/ai"
	"github.com/artem13815/career/pkg/apperr"
)

type memPosts struct{ byID map[uuid.UUID]Post }

func (m *memPosts) CreatePost(_ context.Context, p Post) (Post, error) {
	p.ID = uuid.New()
	p.CreatedAt = time.Now().UTC()
	m.byID[p.ID] = p
	return p, nil
}

func (m *memPosts) ListPosts(_ context.Context, userID uuid.UUID) ([]Post, error) {
	out := []Post{}
	for _, p := range m.byID {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPosts) UpdatePost(_ context.Context, userID, id uuid.UUID, patch PostPatch) (Post, error) {
	p, ok := m.byID[id]
	if !ok || p.UserID != userID {
		return Post{}, apperr.ErrNotFound
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Status != nil {
		p.Status = *patch.Status
		if p.Status == PostPublished && p.PublishedAt == nil {
			now := time.Now().UTC()
			p.PublishedAt = &now
		}
	}
	m.byID[id] = p
	return p, nil
}

type topics []string

func (t *topics) Publish(_ context.Context, topic string, _ any) error {
	*t = append(*t, topic)
	return nil
}

func TestPostLifecycle(t *testing.T) {
	repo := &memPosts{byID: map[uuid.UUID]Post{}}
	pub := &topics{}
	svc := NewPostService(repo, ai.New(nil, nil), pub)
	user := uuid.New()

	d, err := svc.Generate(context.Background(), user, "Remote work", "", nil)
	require.NoError(t, err)
	assert.Equal(t, PostDraft, d.Post.Status)
	assert.Equal(t, ai.SourceFallback, d.Source)
	assert.Equal(t, d.Content, d.Post.Content)
	assert.Contains(t, d.Content, "#RemoteWork")
	assert.Nil(t, d.Post.PublishedAt)

	_, err = svc.Generate(context.Background(), user, "  ", "", nil)
	assert.True(t, apperr.IsValidation(err))

	published := "published"
	p, err := svc.Update(context.Background(), user, d.Post.ID, nil, &published)
	require.NoError(t, err)
	assert.Equal(t, PostPublished, p.Status)
	assert.NotNil(t, p.PublishedAt)
	assert.Equal(t, topics{"linkedin.post.published"}, *pub)

	bad := "scheduled"
	_, err = svc.Update(context.Background(), user, d.Post.ID, nil, &bad)
	assert.True(t, apperr.IsValidation(err))

	text := "edited"
	_, err = svc.Update(context.Background(), uuid.New(), d.Post.ID, &text, nil)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	list, err := svc.List(context.Background(), user)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
