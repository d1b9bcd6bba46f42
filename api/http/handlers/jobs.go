package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/career/api/http/presenter"
	"github.com/artem13815/career/pkg/jobs"
)

type JobsHandler struct {
	uc jobs.UseCase
}

func NewJobsHandler(uc jobs.UseCase) *JobsHandler { return &JobsHandler{uc: uc} }

// Companies lists the company directory.
// @Summary List companies
// @Tags    jobs
// @Produce json
// @Success 200 {array} jobs.Company
// @Router  /companies [get]
func (h *JobsHandler) Companies(c *fiber.Ctx) error {
	items, err := h.uc.ListCompanies(c.Context())
	if err != nil {
		return presenter.Fail(c, err, "Failed to fetch companies")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Jobs lists active jobs, newest first.
// @Summary List jobs
// @Tags    jobs
// @Produce json
// @Success 200 {array} jobs.JobWithCompany
// @Router  /jobs [get]
func (h *JobsHandler) Jobs(c *fiber.Ctx) error {
	items, err := h.uc.ListJobs(c.Context())
	if err != nil {
		return presenter.Fail(c, err, "Failed to fetch jobs")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// @Summary Get job
// @Tags    jobs
// @Produce json
// @Param   id path string true "Job ID (UUID)"
// @Success 200 {object} jobs.JobWithCompany
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [get]
func (h *JobsHandler) Job(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.Fail(c, err, "invalid id")
	}
	j, err := h.uc.GetJob(c.Context(), id)
	if err != nil {
		return presenter.Fail(c, err, "Failed to fetch job")
	}
	return presenter.JSON(c, http.StatusOK, j)
}

// Analyze scores the acting user's skills against a job.
// @Summary Analyze job match
// @Tags    jobs
// @Produce json
// @Param   id path string true "Job ID (UUID)"
// @Success 200 {object} ai.MatchAnalysis
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id}/analyze [post]
func (h *JobsHandler) Analyze(c *fiber.Ctx) error {
	uid, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.Fail(c, err, "invalid id")
	}
	m, err := h.uc.Analyze(c.Context(), uid, id)
	if err != nil {
		return presenter.Fail(c, err, "Failed to analyze job match")
	}
	return presenter.JSON(c, http.StatusOK, m)
}

// Applications lists the acting user's applications with their jobs.
// @Summary List applications
// @Tags    applications
// @Produce json
// @Success 200 {array} jobs.ApplicationWithJob
// @Router  /applications [get]
func (h *JobsHandler) Applications(c *fiber.Ctx) error {
	uid, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	items, err := h.uc.ListApplications(c.Context(), uid)
	if err != nil {
		return presenter.Fail(c, err, "Failed to fetch applications")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

type applyRequest struct {
	JobID  string `json:"jobId" validate:"required,uuid"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// Apply records an application.
// @Summary Create application
// @Tags    applications
// @Accept  json
// @Produce json
// @Param   input body applyRequest true "job id, optional status and notes"
// @Success 201 {object} jobs.Application
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications [post]
func (h *JobsHandler) Apply(c *fiber.Ctx) error {
	uid, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	var req applyRequest
	if err := bind(c, &req); err != nil {
		return presenter.Fail(c, err, "invalid payload")
	}
	a, err := h.uc.Apply(c.Context(), uid, parseUUID(req.JobID), req.Status, req.Notes)
	if err != nil {
		return presenter.Fail(c, err, "Failed to create application")
	}
	return presenter.JSON(c, http.StatusCreated, a)
}

type updateApplicationRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// @Summary Update application
// @Tags    applications
// @Accept  json
// @Produce json
// @Param   id path string true "Application ID (UUID)"
// @Param   input body updateApplicationRequest true "status and/or notes"
// @Success 200 {object} jobs.Application
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications/{id} [patch]
func (h *JobsHandler) UpdateApplication(c *fiber.Ctx) error {
	uid, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.Fail(c, err, "invalid id")
	}
	var req updateApplicationRequest
	if err := bind(c, &req); err != nil {
		return presenter.Fail(c, err, "invalid payload")
	}
	a, err := h.uc.UpdateApplication(c.Context(), uid, id, req.Status, req.Notes)
	if err != nil {
		return presenter.Fail(c, err, "Failed to update application")
	}
	return presenter.JSON(c, http.StatusOK, a)
}
