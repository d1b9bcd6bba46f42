// Package chat stores career-advice conversations.
package chat

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/career/pkg/ai"
	"github.com/artem13815/career/pkg/apperr"
)

type Type string

const (
	General   Type = "general"
	Resume    Type = "resume"
	JobSearch Type = "job_search"
	Skills    Type = "skills"
)

func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case "":
		return General, nil
	case General, Resume, JobSearch, Skills:
		return t, nil
	}
	return "", apperr.Validation("type", "must be one of general, resume, job_search, skills")
}

type Message struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Type      Type      `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

type Repository interface {
	CreateChatMessage(ctx context.Context, m Message) (Message, error)
	// ListChatMessages returns the conversation oldest first.
	ListChatMessages(ctx context.Context, userID uuid.UUID) ([]Message, error)
}

type Advisor interface {
	CareerAdvice(ctx context.Context, req ai.AdviceRequest) (ai.AdviceResult, error)
}

// Profile supplies the context sent along with a question.
type Profile func(ctx context.Context, userID uuid.UUID) map[string]any

type Service struct {
	repo    Repository
	advisor Advisor
	profile Profile
}

// NewService wires the chat flow; profile may be nil.
func NewService(repo Repository, advisor Advisor, profile Profile) *Service {
	return &Service{repo: repo, advisor: advisor, profile: profile}
}

// Send answers message and stores the exchange.
func (s *Service) Send(ctx context.Context, userID uuid.UUID, message, typ string) (Message, ai.Source, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Message{}, "", apperr.Validation("message", "is required")
	}
	t, err := ParseType(typ)
	if err != nil {
		return Message{}, "", err
	}
	req := ai.AdviceRequest{Message: message, Type: string(t)}
	if s.profile != nil {
		req.Context = s.profile(ctx, userID)
	}
	res, err := s.advisor.CareerAdvice(ctx, req)
	if err != nil {
		return Message{}, "", apperr.Validation("message", err.Error())
	}
	m, err := s.repo.CreateChatMessage(ctx, Message{UserID: userID, Message: message, Response: res.Response, Type: t})
	if err != nil {
		return Message{}, "", err
	}
	return m, res.Source, nil
}

func (s *Service) History(ctx context.Context, userID uuid.UUID) ([]Message, error) {
	return s.repo.ListChatMessages(ctx, userID)
}
