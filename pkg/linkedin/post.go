package linkedin

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/career/pkg/ai"
	"github.com/artem13815/career/pkg/apperr"
	"github.com/artem13815/career/pkg/events"
)

type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostPublished PostStatus = "published"
)

func ParsePostStatus(s string) (PostStatus, error) {
	switch st := PostStatus(s); st {
	case "":
		return PostDraft, nil
	case PostDraft, PostPublished:
		return st, nil
	}
	return "", apperr.Validation("status", "must be draft or published")
}

type Post struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	Content     string     `json:"content"`
	Topic       string     `json:"topic"`
	Status      PostStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	PublishedAt *time.Time `json:"publishedAt"`
}

type PostPatch struct {
	Content *string
	Status  *PostStatus
}

type PostRepository interface {
	CreatePost(ctx context.Context, p Post) (Post, error)
	// ListPosts returns the user's posts, newest first.
	ListPosts(ctx context.Context, userID uuid.UUID) ([]Post, error)
	// UpdatePost sets publishedAt when the status becomes published.
	UpdatePost(ctx context.Context, userID, id uuid.UUID, p PostPatch) (Post, error)
}

// PostWriter drafts post text.
type PostWriter interface {
	GeneratePost(ctx context.Context, req ai.PostRequest) (ai.PostResult, error)
}

type Drafted struct {
	Post    Post
	Content string
	Source  ai.Source
}

type PostService struct {
	repo   PostRepository
	writer PostWriter
	events events.Publisher
}

func NewPostService(repo PostRepository, writer PostWriter, pub events.Publisher) *PostService {
	if pub == nil {
		pub = events.Nop{}
	}
	return &PostService{repo: repo, writer: writer, events: pub}
}

// Generate drafts a post about topic and stores it as a draft.
func (s *PostService) Generate(ctx context.Context, userID uuid.UUID, topic, details string, profile *ai.UserProfile) (Drafted, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return Drafted{}, apperr.Validation("topic", "is required")
	}
	res, err := s.writer.GeneratePost(ctx, ai.PostRequest{Topic: topic, Details: strings.TrimSpace(details), Profile: profile})
	if err != nil {
		return Drafted{}, apperr.Validation("topic", err.Error())
	}
	p, err := s.repo.CreatePost(ctx, Post{UserID: userID, Content: res.Content, Topic: topic, Status: PostDraft})
	if err != nil {
		return Drafted{}, err
	}
	return Drafted{Post: p, Content: res.Content, Source: res.Source}, nil
}

func (s *PostService) List(ctx context.Context, userID uuid.UUID) ([]Post, error) {
	return s.repo.ListPosts(ctx, userID)
}

func (s *PostService) Update(ctx context.Context, userID, id uuid.UUID, content, status *string) (Post, error) {
	var patch PostPatch
	if content != nil {
		c := strings.TrimSpace(*content)
		if c == "" {
			return Post{}, apperr.Validation("content", "must not be empty")
		}
		patch.Content = &c
	}
	if status != nil {
		st, err := ParsePostStatus(*status)
		if err != nil {
			return Post{}, err
		}
		patch.Status = &st
	}
	if patch.Content == nil && patch.Status == nil {
		return Post{}, apperr.Validation("", "content or status is required")
	}
	p, err := s.repo.UpdatePost(ctx, userID, id, patch)
	if err != nil {
		return Post{}, err
	}
	if p.Status == PostPublished && patch.Status != nil {
		events.Emit(ctx, s.events, events.PostPublished, map[string]string{
			"postId": p.ID.String(),
			"userId": userID.String(),
		})
	}
	return p, nil
}
