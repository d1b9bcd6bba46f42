package presenter

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/career/pkg/apperr"
)

func TestFail(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", apperr.Validation("linkedinUrl", "is required"), 400, "linkedinUrl: is required"},
		{"configuration", &apperr.ConfigurationError{Msg: "not configured"}, 400, "not configured"},
		{"no content", apperr.ErrNoContent, 400, "resume has no content"},
		{"not found", apperr.ErrNotFound, 404, "Not found"},
		{"conflict", apperr.ErrConstraintViolation, 409, "constraint violation"},
		{"unhandled", errors.New("pq: connection reset"), 500, "Failed to do it"},
		{"fiber", fiber.NewError(fiber.StatusRequestEntityTooLarge, "too big"), 413, "too big"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
			app.Get("/", func(c *fiber.Ctx) error {
				var fe *fiber.Error
				if errors.As(tt.err, &fe) {
					return tt.err
				}
				return Fail(c, tt.err, "Failed to do it")
			})
			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			var body ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.message, body.Message)
		})
	}
}
