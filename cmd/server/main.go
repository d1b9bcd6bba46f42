// @title         career-service API
// @version       1.0
// @description   Career companion backend: resumes, job matching, skills, LinkedIn content and career chat with AI fallbacks.
// @BasePath      /api
// @schemes       http
// @host          localhost:5000
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Only used with AUTH_MODE=jwt. Supported formats: "Bearer <JWT>" or "<JWT>".
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"

	_ "github.com/artem13815/career/docs"

	// internal imports
	"github.com/artem13815/career/api/http"
	"github.com/artem13815/career/api/http/handlers"
	"github.com/artem13815/career/api/http/presenter"
	"github.com/artem13815/career/pkg/ai"
	"github.com/artem13815/career/pkg/ai/gai"
	"github.com/artem13815/career/pkg/auth"
	"github.com/artem13815/career/pkg/chat"
	"github.com/artem13815/career/pkg/config"
	"github.com/artem13815/career/pkg/dashboard"
	"github.com/artem13815/career/pkg/events"
	"github.com/artem13815/career/pkg/health"
	"github.com/artem13815/career/pkg/health/checkers"
	"github.com/artem13815/career/pkg/jobs"
	"github.com/artem13815/career/pkg/linkedin"
	pgrepo "github.com/artem13815/career/pkg/repository/postgres"
	"github.com/artem13815/career/pkg/resume"
	"github.com/artem13815/career/pkg/security/jwt"
	"github.com/artem13815/career/pkg/seed"
	"github.com/artem13815/career/pkg/skills"
	"github.com/artem13815/career/pkg/storage"
	"github.com/artem13815/career/pkg/storage/files"
	"github.com/artem13815/career/pkg/storage/postgres"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()
	setupLogger(cfg)

	if err := cfg.Validate(); err != nil {
		fatal("invalid configuration", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to PostgreSQL
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		fatal("postgres connect", err)
	}
	defer pool.Close()

	if cfg.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool); err != nil {
			fatal("migrate", err)
		}
	}

	var store storage.Storage = pgrepo.NewStore(pool)
	if cfg.SeedOnStart {
		if err := store.Seed(ctx, seed.Default()); err != nil {
			fatal("seed", err)
		}
	}
	if cfg.StorageMode == config.StorageMinimal {
		slog.Warn("storage running in minimal mode: catalog and history lists are empty")
		store = storage.Degrade(store)
	}

	// Optional Redis: event stream and OAuth state
	var rdb *redis.Client
	var publisher events.Publisher = events.Nop{}
	var states linkedin.StateStore = linkedin.NewMemoryStateStore(linkedin.StateTTL)
	if cfg.RedisURL != "" {
		rdb, err = events.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			fatal("redis connect", err)
		}
		defer rdb.Close()
		publisher = events.NewRedisPublisher(rdb, "career")
		states = linkedin.NewRedisStateStore(rdb, "career:oauth:", linkedin.StateTTL)
	}

	// Identity
	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	authUC := auth.NewAuthService(store, jwtGen)
	identity, err := identityMiddleware(ctx, cfg, authUC)
	if err != nil {
		fatal("resolve identity", err)
	}

	// AI gateway: GAI service, then the configured LLM, then static content
	model, err := newChatModel(ctx, cfg)
	if err != nil {
		fatal("llm provider", err)
	}
	gaiClient := gai.New(cfg.GAIServiceURL, cfg.GAITimeout)
	probe := ai.NewProbe(gaiClient, cfg.GAIHealthSchedule, 5*time.Second)
	cache := ai.NewCache(cfg.AICacheTTL)
	if err := probe.Every("@every 5m", cache.CleanExpired); err != nil {
		fatal("schedule cache cleanup", err)
	}
	if err := probe.Start(ctx); err != nil {
		fatal("start gai probe", err)
	}
	gateway := ai.New(gaiClient, model, ai.WithProbe(probe), ai.WithCache(cache))

	// LinkedIn
	li := linkedin.NewClient(linkedin.Config{
		ClientID:     cfg.LinkedInClientID,
		ClientSecret: cfg.LinkedInClientSecret,
		RedirectURI:  cfg.LinkedInRedirectURI,
		Timeout:      cfg.LinkedInTimeout,
	})
	if !li.IsConfigured() {
		slog.Warn("LinkedIn OAuth is not configured; OAuth endpoints will answer 400")
	}

	// Services
	uploads, err := files.NewDisk(cfg.UploadDir)
	if err != nil {
		fatal("upload dir", err)
	}
	resumeUC := resume.NewService(store, gateway, uploads, model)
	skillsUC := skills.NewService(store)
	jobsUC := jobs.NewService(store, skillsUC, gateway, publisher)
	posts := linkedin.NewPostService(store, gateway, publisher)
	chatSvc := chat.NewService(store, gateway, chatProfile(authUC, skillsUC))
	stats := dashboard.NewService(store, store)

	// Health service: compose checkers
	probes := []health.Checker{checkers.NewPostgresChecker(pool)}
	if rdb != nil {
		probes = append(probes, checkers.NewRedisChecker(rdb))
	}
	readiness := health.NewService(probes...)

	app := fiber.New(fiber.Config{
		AppName:      "career-service",
		ErrorHandler: presenter.ErrorHandler,
		BodyLimit:    int(cfg.UploadMaxBytes) + 1<<20,
	})
	app.Use(recover.New(recover.Config{EnableStackTrace: !cfg.Production()}))
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{AllowCredentials: false}))
	app.Use(encryptcookie.New(encryptcookie.Config{Key: cookieKey(cfg.SessionSecret)}))

	// Register routes
	http.Register(app, http.Handlers{
		Health:    handlers.NewHealthHandler(readiness),
		Auth:      handlers.NewAuthHandler(authUC),
		Dashboard: handlers.NewDashboardHandler(stats),
		Resume:    handlers.NewResumeHandler(resumeUC, authUC, li, cfg.UploadMaxBytes),
		Jobs:      handlers.NewJobsHandler(jobsUC),
		Skills:    handlers.NewSkillsHandler(skillsUC),
		Linkedin:  handlers.NewLinkedinHandler(li, states, posts, authUC, cfg.Production()),
		Chat:      handlers.NewChatHandler(chatSvc),
	}, identity, cfg.AuthMode == config.AuthJWT)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	go func() {
		slog.Info("HTTP server listening", "port", cfg.Port, "env", cfg.AppEnv, "auth", cfg.AuthMode)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
	probe.Stop()
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("shutdown", "err", err)
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}
