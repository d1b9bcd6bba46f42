package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/career/api/http/presenter"
	"github.com/artem13815/career/pkg/dashboard"
)

type DashboardHandler struct {
	svc *dashboard.Service
}

func NewDashboardHandler(svc *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Stats returns the home screen counters.
// @Summary Dashboard statistics
// @Tags    dashboard
// @Produce json
// @Success 200 {object} dashboard.Stats
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	uid, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	st, err := h.svc.Stats(c.Context(), uid)
	if err != nil {
		return presenter.Fail(c, err, "Failed to fetch dashboard stats")
	}
	return presenter.JSON(c, http.StatusOK, st)
}
