package handlers

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/career/api/http/presenter"
	"github.com/artem13815/career/pkg/apperr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bind parses the JSON body into dst and validates its struct tags.
func bind(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return apperr.Validation("", "invalid JSON payload")
	}
	if err := validate.Struct(dst); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			fe := errs[0]
			switch fe.Tag() {
			case "required":
				return apperr.Validation(fe.Field(), "is required")
			case "uuid":
				return apperr.Validation(fe.Field(), "must be a UUID")
			default:
				return apperr.Validation(fe.Field(), "failed "+fe.Tag()+" check")
			}
		}
		return apperr.Validation("", err.Error())
	}
	return nil
}

// actor returns the acting user set by the identity middleware.
func actor(c *fiber.Ctx) (uuid.UUID, bool) {
	s, _ := c.Locals("userId").(string)
	id, err := uuid.Parse(s)
	return id, err == nil
}

func unauthorized(c *fiber.Ctx) error {
	return presenter.Error(c, http.StatusUnauthorized, "could not resolve user")
}

func pathID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, apperr.Validation(name, "must be a UUID")
	}
	return id, nil
}

// page trims items by the optional limit/offset query; no limit returns everything after offset.
func page[T any](c *fiber.Ctx, items []T) []T {
	offset := 0
	if v := strings.TrimSpace(c.Query("offset")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	if offset >= len(items) {
		return items[:0]
	}
	items = items[offset:]
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 && n < len(items) {
			items = items[:n]
		}
	}
	return items
}

// parseUUID is for values already checked by the uuid validator tag.
func parseUUID(s string) uuid.UUID {
	id, _ := uuid.Parse(s)
	return id
}
