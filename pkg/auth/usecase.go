package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/artem13815/career/pkg/apperr"
)

// AuthUseCase describes identity resolution, registration and login.
type AuthUseCase interface {
	Register(ctx context.Context, email, password string) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	EnsureUser(ctx context.Context, u User) (User, error)
	Get(ctx context.Context, id uuid.UUID) (User, error)
}

type AuthResult struct {
	User  User
	Token string
}

type authService struct {
	repo   UserRepository
	tokens TokenGenerator
}

// NewAuthService returns default implementation of AuthUseCase.
// tokens may be nil when only EnsureUser and Get are used.
func NewAuthService(repo UserRepository, tokens TokenGenerator) AuthUseCase {
	return &authService{repo: repo, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, email, password string) (AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, err
	}

	user, err := s.repo.CreateUser(ctx, User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(passwordHash),
	})
	if err != nil {
		if errors.Is(err, apperr.ErrConstraintViolation) {
			return AuthResult{}, ErrUserAlreadyExists
		}
		return AuthResult{}, err
	}
	return s.issue(ctx, user)
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if user.PasswordHash == "" || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	return s.issue(ctx, user)
}

// EnsureUser creates u, or returns the stored row when its email is already taken.
func (s *authService) EnsureUser(ctx context.Context, u User) (User, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	created, err := s.repo.CreateUser(ctx, u)
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, apperr.ErrConstraintViolation) || u.Email == "" {
		return User{}, err
	}
	existing, err := s.repo.GetUserByEmail(ctx, u.Email)
	if err != nil {
		return User{}, err
	}
	return existing, nil
}

func (s *authService) Get(ctx context.Context, id uuid.UUID) (User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *authService) issue(ctx context.Context, user User) (AuthResult, error) {
	if s.tokens == nil {
		return AuthResult{}, errors.New("token generator is not configured")
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}
