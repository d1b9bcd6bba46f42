package main

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/google/uuid"

	"github.com/artem13815/career/pkg/auth"
	"github.com/artem13815/career/pkg/chat"
	"github.com/artem13815/career/pkg/config"
	"github.com/artem13815/career/pkg/llm"
	"github.com/artem13815/career/pkg/llm/gemini"
	"github.com/artem13815/career/pkg/llm/openai"
	"github.com/artem13815/career/pkg/llm/openrouter"
	"github.com/artem13815/career/pkg/security/jwt"
	"github.com/artem13815/career/pkg/seed"
	"github.com/artem13815/career/pkg/skills"
)

func setupLogger(cfg config.Config) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	var h slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if cfg.Production() {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(h))
}

// identityMiddleware resolves who acts on /api requests. In demo mode the demo
// user is created or looked up once and stamped on every request.
func identityMiddleware(ctx context.Context, cfg config.Config, users auth.AuthUseCase) (fiber.Handler, error) {
	if cfg.AuthMode == config.AuthJWT {
		return jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer), nil
	}
	demo := seed.Default().User
	demo.Email = cfg.DemoUserEmail
	u, err := users.EnsureUser(ctx, demo)
	if err != nil {
		return nil, err
	}
	if u.ID == uuid.Nil {
		return nil, errors.New("demo user has no id")
	}
	slog.Info("demo identity resolved", "user_id", u.ID, "email", u.Email)
	return jwt.DemoIdentity(u.ID), nil
}

// newChatModel builds the secondary LLM. A missing key disables the step instead of failing startup.
func newChatModel(ctx context.Context, cfg config.Config) (llm.ChatModel, error) {
	switch cfg.LLMProvider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			break
		}
		return openai.New(cfg.OpenAIAPIKey, "", cfg.LLMModel), nil
	case "openrouter":
		if cfg.OpenRouterAPIKey == "" {
			break
		}
		return openrouter.New(cfg.OpenRouterAPIKey, cfg.OpenRouterBase, cfg.LLMModel,
			cfg.OpenRouterAppTitle, cfg.OpenRouterReferer, cfg.GAITimeout), nil
	case "gemini":
		m, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.LLMModel)
		if errors.Is(err, llm.ErrNoAPIKey) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("gemini: %w", err)
		}
		return m, nil
	case "none":
		return nil, nil
	}
	slog.Warn("LLM provider has no API key; AI requests fall back to static content when the GAI service is down",
		"provider", cfg.LLMProvider)
	return nil, nil
}

// chatProfile feeds the acting user's name, title and skills to the advisor.
func chatProfile(users auth.AuthUseCase, sk skills.UseCase) chat.Profile {
	return func(ctx context.Context, userID uuid.UUID) map[string]any {
		out := map[string]any{}
		if u, err := users.Get(ctx, userID); err == nil {
			out["name"] = u.FullName()
			out["title"] = u.Title
			out["location"] = u.Location
		}
		if names, err := sk.UserSkillNames(ctx, userID); err == nil {
			out["skills"] = names
		}
		return out
	}
}

// cookieKey derives the AES key of encrypted cookies from SESSION_SECRET.
func cookieKey(secret string) string {
	if secret == "" {
		slog.Warn("SESSION_SECRET is not set; OAuth state cookies will not survive a restart")
		return encryptcookie.GenerateKey()
	}
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}
