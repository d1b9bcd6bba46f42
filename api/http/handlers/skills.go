package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/career/api/http/presenter"
	"github.com/artem13815/career/pkg/skills"
)

type SkillsHandler struct {
	uc skills.UseCase
}

func NewSkillsHandler(uc skills.UseCase) *SkillsHandler { return &SkillsHandler{uc: uc} }

// @Summary Skill catalog
// @Tags    skills
// @Produce json
// @Success 200 {array} skills.Skill
// @Router  /skills [get]
func (h *SkillsHandler) Catalog(c *fiber.Ctx) error {
	items, err := h.uc.Catalog(c.Context())
	if err != nil {
		return presenter.Fail(c, err, "Failed to fetch skills")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// @Summary User skills
// @Tags    skills
// @Produce json
// @Success 200 {array} skills.UserSkill
// @Router  /user-skills [get]
func (h *SkillsHandler) UserSkills(c *fiber.Ctx) error {
	uid, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	items, err := h.uc.UserSkills(c.Context(), uid)
	if err != nil {
		return presenter.Fail(c, err, "Failed to fetch user skills")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

type addUserSkillRequest struct {
	SkillID string `json:"skillId" validate:"required,uuid"`
	Level   string `json:"level"`
}

// @Summary Add a skill to the acting user
// @Tags    skills
// @Accept  json
// @Produce json
// @Param   input body addUserSkillRequest true "skill id and level"
// @Success 201 {object} skills.UserSkill
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /user-skills [post]
func (h *SkillsHandler) AddUserSkill(c *fiber.Ctx) error {
	uid, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	var req addUserSkillRequest
	if err := bind(c, &req); err != nil {
		return presenter.Fail(c, err, "invalid payload")
	}
	us, err := h.uc.AddUserSkill(c.Context(), uid, parseUUID(req.SkillID), req.Level)
	if err != nil {
		return presenter.Fail(c, err, "Failed to add skill")
	}
	return presenter.JSON(c, http.StatusCreated, us)
}

// @Summary Active learning paths
// @Tags    learning
// @Produce json
// @Success 200 {array} skills.LearningPath
// @Router  /learning-paths [get]
func (h *SkillsHandler) LearningPaths(c *fiber.Ctx) error {
	uid, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	items, err := h.uc.LearningPaths(c.Context(), uid)
	if err != nil {
		return presenter.Fail(c, err, "Failed to fetch learning paths")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

type startPathRequest struct {
	Title          string `json:"title" validate:"required"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	TotalModules   int    `json:"totalModules" validate:"gte=1"`
	EstimatedHours int    `json:"estimatedHours" validate:"gte=0"`
}

// @Summary Start a learning path
// @Tags    learning
// @Accept  json
// @Produce json
// @Param   input body startPathRequest true "path definition"
// @Success 201 {object} skills.LearningPath
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /learning-paths [post]
func (h *SkillsHandler) StartLearningPath(c *fiber.Ctx) error {
	uid, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	var req startPathRequest
	if err := bind(c, &req); err != nil {
		return presenter.Fail(c, err, "invalid payload")
	}
	p, err := h.uc.StartLearningPath(c.Context(), uid, skills.LearningPath{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		TotalModules:   req.TotalModules,
		EstimatedHours: req.EstimatedHours,
	})
	if err != nil {
		return presenter.Fail(c, err, "Failed to create learning path")
	}
	return presenter.JSON(c, http.StatusCreated, p)
}

type progressRequest struct {
	CompletedModules *int `json:"completedModules" validate:"required"`
}

// @Summary Record learning progress
// @Tags    learning
// @Accept  json
// @Produce json
// @Param   id path string true "Learning path ID (UUID)"
// @Param   input body progressRequest true "completed module count"
// @Success 200 {object} skills.LearningPath
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /learning-paths/{id} [patch]
func (h *SkillsHandler) RecordProgress(c *fiber.Ctx) error {
	uid, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.Fail(c, err, "invalid id")
	}
	var req progressRequest
	if err := bind(c, &req); err != nil {
		return presenter.Fail(c, err, "invalid payload")
	}
	p, err := h.uc.RecordProgress(c.Context(), uid, id, *req.CompletedModules)
	if err != nil {
		return presenter.Fail(c, err, "Failed to update learning path")
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// @Summary Earned badges
// @Tags    learning
// @Produce json
// @Success 200 {array} skills.Badge
// @Router  /badges [get]
func (h *SkillsHandler) Badges(c *fiber.Ctx) error {
	uid, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	items, err := h.uc.Badges(c.Context(), uid)
	if err != nil {
		return presenter.Fail(c, err, "Failed to fetch badges")
	}
	return presenter.JSON(c, http.StatusOK, items)
}
