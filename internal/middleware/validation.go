package middleware

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// Listing limits shared by the paginated admin endpoints.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	MaxSearchLen = 100
)

var validate = validator.New()

// ErrorResponse writes the standard failure envelope.
func ErrorResponse(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// ValidateStruct runs validator tags over a request body. Returns "" when
// valid, otherwise a message naming the first offending field.
func ValidateStruct(v any) string {
	err := validate.Struct(v)
	if err == nil {
		return ""
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return "Invalid input data: " + strings.ToLower(errs[0].Field())
	}
	return "Invalid input data"
}

// ValidateUUID checks that a path or body ID is a well-formed UUID.
func ValidateUUID(id string) (string, string) {
	id = strings.TrimSpace(strings.ToLower(id))
	if id == "" {
		return "", "id is required"
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", "id must be a valid UUID"
	}
	return id, ""
}

// ValidatePagination parses page/limit query values, clamping them to
// sane bounds.
func ValidatePagination(pageStr, limitStr string) (int, int) {
	page := DefaultPage
	if n, err := strconv.Atoi(pageStr); err == nil && n > 0 {
		page = n
	}
	limit := DefaultLimit
	if n, err := strconv.Atoi(limitStr); err == nil && n > 0 {
		limit = min(n, MaxLimit)
	}
	return page, limit
}

// ValidateSearch trims and truncates a free-text search filter.
func ValidateSearch(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > MaxSearchLen {
		s = s[:MaxSearchLen]
	}
	return s
}
