package presenter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/career/pkg/apperr"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// Fail writes err using the application error taxonomy. Client errors carry
// their own text; server errors are logged and answered with msg.
func Fail(c *fiber.Ctx, err error, msg string) error {
	status := apperr.HTTPStatus(err)
	switch {
	case status >= http.StatusInternalServerError:
		slog.Error(msg, "method", c.Method(), "path", c.Path(), "err", err)
		return Error(c, status, msg)
	case errors.Is(err, apperr.ErrNotFound):
		return Error(c, status, "Not found")
	}
	return Error(c, status, err.Error())
}

// ErrorHandler is the last-resort Fiber error handler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return Error(c, fe.Code, fe.Message)
	}
	return Fail(c, err, "Internal server error")
}
