package handlers

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/career/api/http/presenter"
	"github.com/artem13815/career/pkg/ai"
	"github.com/artem13815/career/pkg/apperr"
	"github.com/artem13815/career/pkg/auth"
	"github.com/artem13815/career/pkg/export"
	"github.com/artem13815/career/pkg/linkedin"
	"github.com/artem13815/career/pkg/resume"
	"github.com/artem13815/career/pkg/resume/content"
)

// ProfileSource resolves LinkedIn profiles for resume generation.
type ProfileSource interface {
	IsConfigured() bool
	Profile(ctx context.Context, accessToken string) (linkedin.Profile, error)
	ScrapePublicProfile(linkedinURL string) (linkedin.Profile, error)
}

type ResumeHandler struct {
	svc      resume.UseCase
	users    auth.AuthUseCase
	profiles ProfileSource
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewResumeHandler(svc resume.UseCase, users auth.AuthUseCase, profiles ProfileSource, maxBytes int64) *ResumeHandler {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &ResumeHandler{svc: svc, users: users, profiles: profiles, maxBytes: maxBytes}
}

type generateRequest struct {
	LinkedinURL string `json:"linkedinUrl" validate:"required"`
	TargetRole  string `json:"targetRole"`
	AccessToken string `json:"accessToken"`
}

func generatedBody(g resume.Generated) fiber.Map {
	body := fiber.Map{
		"success": true,
		"content": g.Content,
		"source":  g.Source,
		"message": g.Message(),
	}
	if g.Resume != nil {
		body["resume"] = g.Resume
	}
	return body
}

// Generate builds a resume from a LinkedIn URL and saves it.
// @Summary Generate resume
// @Description Falls back to a template document when the AI providers are unavailable.
// @Tags    resume
// @Accept  json
// @Produce json
// @Param   input body generateRequest true "LinkedIn URL and optional target role"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resume/generate [post]
func (h *ResumeHandler) Generate(c *fiber.Ctx) error {
	uid, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	var req generateRequest
	if err := bind(c, &req); err != nil {
		return presenter.Fail(c, err, "invalid payload")
	}
	g, err := h.svc.Generate(c.Context(), uid, resume.GenerateInput{
		LinkedinURL: req.LinkedinURL,
		TargetRole:  req.TargetRole,
	})
	if err != nil {
		return presenter.Fail(c, err, "Failed to generate resume")
	}
	return presenter.JSON(c, http.StatusOK, generatedBody(g))
}

// GenerateWithProfile enriches generation with a LinkedIn profile.
// @Summary Generate resume with LinkedIn profile
// @Description With an access token the OAuth profile is fetched; otherwise an unverified placeholder is derived from the URL.
// @Tags    resume
// @Accept  json
// @Produce json
// @Param   input body generateRequest true "LinkedIn URL, optional target role and access token"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resume/generate-with-profile [post]
func (h *ResumeHandler) GenerateWithProfile(c *fiber.Ctx) error {
	uid, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	var req generateRequest
	if err := bind(c, &req); err != nil {
		return presenter.Fail(c, err, "invalid payload")
	}

	var profile *linkedin.Profile
	if token := strings.TrimSpace(req.AccessToken); token != "" && h.profiles != nil && h.profiles.IsConfigured() {
		p, err := h.profiles.Profile(c.Context(), token)
		if err != nil {
			return presenter.Fail(c, err, "Failed to fetch LinkedIn profile")
		}
		profile = &p
	} else if h.profiles != nil {
		if p, err := h.profiles.ScrapePublicProfile(req.LinkedinURL); err == nil {
			profile = &p
		}
	}

	in := resume.GenerateInput{LinkedinURL: req.LinkedinURL, TargetRole: req.TargetRole}
	if profile != nil {
		in.Profile = profile.AsAIProfile()
	}
	g, err := h.svc.Generate(c.Context(), uid, in)
	if err != nil {
		return presenter.Fail(c, err, "Failed to generate resume")
	}
	body := generatedBody(g)
	if profile != nil {
		body["linkedinProfile"] = profile
	}
	return presenter.JSON(c, http.StatusOK, body)
}

type polishRequest struct {
	ResumeData *content.Document `json:"resumeData" validate:"required"`
	JobData    *ai.JobDescriptor `json:"jobData" validate:"required"`
}

// Polish critiques a resume against one job.
// @Summary Polish resume for a job
// @Tags    resume
// @Accept  json
// @Produce json
// @Param   input body polishRequest true "resume document and target job"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resume/polish [post]
func (h *ResumeHandler) Polish(c *fiber.Ctx) error {
	var req polishRequest
	if err := bind(c, &req); err != nil {
		return presenter.Fail(c, err, "invalid payload")
	}
	res, err := h.svc.Polish(c.Context(), *req.ResumeData, *req.JobData)
	if err != nil {
		return presenter.Fail(c, err, "Failed to polish resume")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success":              true,
		"polishingSuggestions": res,
	})
}

type improveRequest struct {
	ResumeID string `json:"resumeId" validate:"required,uuid"`
}

// Improve lists generic improvement suggestions for a stored resume.
// @Summary Improvement suggestions
// @Tags    resume
// @Accept  json
// @Produce json
// @Param   input body improveRequest true "resume id"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resume/improve [post]
func (h *ResumeHandler) Improve(c *fiber.Ctx) error {
	uid, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	var req improveRequest
	if err := bind(c, &req); err != nil {
		return presenter.Fail(c, err, "invalid payload")
	}
	res, err := h.svc.Improve(c.Context(), uid, parseUUID(req.ResumeID))
	if err != nil {
		return presenter.Fail(c, err, "Failed to improve resume")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"suggestions": res.Suggestions, "source": res.Source})
}

// Upload stores a resume file and turns its text into a document.
// @Summary Upload resume file
// @Tags    resume
// @Accept  multipart/form-data
// @Produce json
// @Param   resume formData file true "Resume (.pdf, .doc, .docx)"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resume/upload [post]
func (h *ResumeHandler) Upload(c *fiber.Ctx) error {
	uid, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	fh, err := c.FormFile("resume")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "No file uploaded")
	}
	if fh.Size > h.maxBytes {
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("file too large: limit is %d bytes", h.maxBytes))
	}
	if !resume.AllowedExtension(fh.Filename) {
		return presenter.Error(c, http.StatusBadRequest, "Invalid file type. Only PDF, DOC, and DOCX files are allowed.")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	owner := ""
	if u, err := h.users.Get(c.Context(), uid); err == nil {
		owner = u.FullName()
	}
	r, err := h.svc.Upload(c.Context(), uid, resume.UploadInput{
		Filename:  fh.Filename,
		MimeType:  fh.Header.Get("Content-Type"),
		Data:      data,
		OwnerName: owner,
	})
	if err != nil {
		return presenter.Fail(c, err, "Failed to upload resume")
	}
	return presenter.JSON(c, http.StatusCreated, fiber.Map{"resume": r})
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}

// Export streams a resume as PDF or DOCX.
// @Summary Export resume
// @Tags    resume
// @Produce application/pdf
// @Produce application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param   id path string true "Resume ID (UUID)"
// @Param   format path string true "pdf or docx"
// @Success 200 {file} binary
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resume/{id}/export/{format} [get]
func (h *ResumeHandler) Export(c *fiber.Ctx) error {
	uid, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.Fail(c, err, "invalid id")
	}
	f, err := export.ParseFormat(c.Params("format"))
	if err != nil {
		return presenter.Fail(c, err, "invalid format")
	}
	data, r, err := h.svc.Export(c.Context(), uid, id, f)
	if err != nil {
		if apperr.HTTPStatus(err) == http.StatusNotFound {
			return presenter.Error(c, http.StatusNotFound, "Resume not found")
		}
		return presenter.Fail(c, err, "Failed to export resume")
	}
	c.Set(fiber.HeaderContentType, f.ContentType())
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", f.Filename(r.Title)))
	return c.Status(http.StatusOK).Send(data)
}

// List returns the acting user's resumes, most recently updated first.
// @Summary List resumes
// @Tags    resume
// @Produce json
// @Param   limit query int false "page size (max 200)"
// @Param   offset query int false "offset"
// @Success 200 {array} resume.Resume
// @Router  /resumes [get]
func (h *ResumeHandler) List(c *fiber.Ctx) error {
	uid, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	items, err := h.svc.List(c.Context(), uid)
	if err != nil {
		return presenter.Fail(c, err, "Failed to fetch resumes")
	}
	return presenter.JSON(c, http.StatusOK, page(c, items))
}

// Get returns one resume.
// @Summary Get resume
// @Tags    resume
// @Produce json
// @Param   id path string true "Resume ID (UUID)"
// @Success 200 {object} resume.Resume
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [get]
func (h *ResumeHandler) Get(c *fiber.Ctx) error {
	uid, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.Fail(c, err, "invalid id")
	}
	r, err := h.svc.Get(c.Context(), uid, id)
	if err != nil {
		return presenter.Fail(c, err, "Failed to fetch resume")
	}
	return presenter.JSON(c, http.StatusOK, r)
}

type updateResumeRequest struct {
	Title   *string           `json:"title"`
	Content *content.Document `json:"content"`
	Format  *string           `json:"format"`
}

// Update patches title, content or format.
// @Summary Update resume
// @Tags    resume
// @Accept  json
// @Produce json
// @Param   id path string true "Resume ID (UUID)"
// @Param   input body updateResumeRequest true "fields to change"
// @Success 200 {object} resume.Resume
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [patch]
func (h *ResumeHandler) Update(c *fiber.Ctx) error {
	uid, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.Fail(c, err, "invalid id")
	}
	var req updateResumeRequest
	if err := bind(c, &req); err != nil {
		return presenter.Fail(c, err, "invalid payload")
	}
	p := resume.Patch{Title: req.Title, Content: req.Content}
	if req.Format != nil {
		f := resume.Format(*req.Format)
		p.Format = &f
	}
	r, err := h.svc.Update(c.Context(), uid, id, p)
	if err != nil {
		return presenter.Fail(c, err, "Failed to update resume")
	}
	return presenter.JSON(c, http.StatusOK, r)
}
