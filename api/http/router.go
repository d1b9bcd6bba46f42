package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/career/api/http/handlers"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Dashboard *handlers.DashboardHandler
	Resume    *handlers.ResumeHandler
	Jobs      *handlers.JobsHandler
	Skills    *handlers.SkillsHandler
	Linkedin  *handlers.LinkedinHandler
	Chat      *handlers.ChatHandler
}

// Register wires all HTTP routes onto given Fiber app. identity resolves the
// acting user for every route below it; registration routes are mounted only
// when withAccounts is set.
func Register(app *fiber.App, h Handlers, identity fiber.Handler, withAccounts bool) {
	// Browser-facing OAuth redirects live outside /api.
	app.Get("/auth/linkedin", h.Linkedin.Redirect)
	app.Get("/auth/linkedin/callback", h.Linkedin.Callback)

	api := app.Group("/api")

	// Health and readiness endpoints for probes/monitoring
	api.Get("/health", h.Health.Health)
	api.Get("/ready", h.Health.Ready)

	if withAccounts {
		a := api.Group("/auth")
		a.Post("/register", h.Auth.Register)
		a.Post("/login", h.Auth.Login)
	}

	// LinkedIn OAuth helpers do not act on behalf of a stored user.
	api.Get("/linkedin/auth-url", h.Linkedin.AuthURL)
	api.Post("/linkedin/token", h.Linkedin.Token)
	api.Post("/linkedin/profile", h.Linkedin.Profile)
	api.Get("/companies", h.Jobs.Companies)
	api.Get("/jobs", h.Jobs.Jobs)
	api.Get("/jobs/:id", h.Jobs.Job)
	api.Get("/skills", h.Skills.Catalog)
	api.Post("/resume/polish", h.Resume.Polish)

	me := api.Group("", identity)
	me.Get("/user", h.Auth.Me)
	me.Get("/dashboard/stats", h.Dashboard.Stats)

	me.Get("/resumes", h.Resume.List)
	me.Get("/resumes/:id", h.Resume.Get)
	me.Patch("/resumes/:id", h.Resume.Update)
	me.Post("/resume/generate", h.Resume.Generate)
	me.Post("/resume/generate-with-profile", h.Resume.GenerateWithProfile)
	me.Post("/resume/improve", h.Resume.Improve)
	me.Post("/resume/upload", h.Resume.Upload)
	me.Get("/resume/:id/export/:format", h.Resume.Export)

	me.Post("/jobs/:id/analyze", h.Jobs.Analyze)
	me.Get("/applications", h.Jobs.Applications)
	me.Post("/applications", h.Jobs.Apply)
	me.Patch("/applications/:id", h.Jobs.UpdateApplication)

	me.Get("/user-skills", h.Skills.UserSkills)
	me.Post("/user-skills", h.Skills.AddUserSkill)
	me.Get("/learning-paths", h.Skills.LearningPaths)
	me.Post("/learning-paths", h.Skills.StartLearningPath)
	me.Patch("/learning-paths/:id", h.Skills.RecordProgress)
	me.Get("/badges", h.Skills.Badges)

	me.Post("/linkedin/generate", h.Linkedin.GeneratePost)
	me.Get("/linkedin/posts", h.Linkedin.Posts)
	me.Patch("/linkedin/posts/:id", h.Linkedin.UpdatePost)

	me.Post("/chat", h.Chat.Send)
	me.Get("/chat/history", h.Chat.History)
}
