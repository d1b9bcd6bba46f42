package jwt

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/career/pkg/auth"
)

func echoApp(mw fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/me", mw, func(c *fiber.Ctx) error {
		id, _ := c.Locals("userId").(string)
		return c.SendString(id)
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	gen := NewGenerator("secret", "career-service", time.Minute)
	user := auth.User{ID: uuid.New(), Email: "a@example.com"}
	token, err := gen.Generate(context.Background(), user)
	require.NoError(t, err)

	app := echoApp(NewAuthMiddleware("secret", "career-service"))
	tests := []struct {
		name   string
		header string
		status int
	}{
		{"bearer", "Bearer " + token, fiber.StatusOK},
		{"bare token", token, fiber.StatusOK},
		{"missing", "", fiber.StatusUnauthorized},
		{"garbage", "Bearer nope", fiber.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.status == fiber.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, user.ID.String(), string(body))
			}
		})
	}

	wrongIssuer := echoApp(NewAuthMiddleware("secret", "other"))
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := wrongIssuer.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestDemoIdentity(t *testing.T) {
	id := uuid.New()
	resp, err := echoApp(DemoIdentity(id)).Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, id.String(), string(body))
}
