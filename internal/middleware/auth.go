package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/Dharmub376/Digital-Chunab/internal/repository"
	"github.com/Dharmub376/Digital-Chunab/pkg/token"
)

const principalKey = "principal"

// Principal is the authenticated caller stashed in request locals.
type Principal struct {
	ID        string
	Role      string
	Name      string
	Email     string
	StudentID string
}

// Authenticate parses and verifies the bearer token, loads the principal
// from the collection matching its role claim, and stores it in Locals.
// Tokens naming a principal that no longer exists are rejected.
func Authenticate(secret string, admins *repository.AdminRepo, students *repository.StudentRepo) fiber.Handler {
	return func(c fiber.Ctx) error {
		authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return ErrorResponse(c, fiber.StatusUnauthorized, "No token provided")
		}
		raw := strings.TrimSpace(authz[7:])

		claims, err := token.Parse(secret, raw)
		if err != nil {
			return ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token")
		}

		p := Principal{ID: claims.ID, Role: claims.Role}
		switch claims.Role {
		case token.RoleAdmin:
			a, err := admins.FindByID(c.Context(), claims.ID)
			if err != nil {
				return ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token")
			}
			p.Name, p.Email = a.Name, a.Email
		case token.RoleStudent:
			st, err := students.FindByID(c.Context(), claims.ID)
			if err != nil {
				return ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token")
			}
			p.Name, p.Email, p.StudentID = st.Name, st.Email, st.StudentID
		}

		c.Locals(principalKey, p)
		return c.Next()
	}
}

// RequireAdmin rejects non-admin principals with 403.
func RequireAdmin() fiber.Handler {
	return func(c fiber.Ctx) error {
		if PrincipalFrom(c).Role != token.RoleAdmin {
			return ErrorResponse(c, fiber.StatusForbidden, "Admin access required")
		}
		return c.Next()
	}
}

// RequireStudent rejects non-student principals with 403.
func RequireStudent() fiber.Handler {
	return func(c fiber.Ctx) error {
		if PrincipalFrom(c).Role != token.RoleStudent {
			return ErrorResponse(c, fiber.StatusForbidden, "Student access required")
		}
		return c.Next()
	}
}

// PrincipalFrom returns the authenticated principal, or a zero Principal
// when called outside an authenticated route.
func PrincipalFrom(c fiber.Ctx) Principal {
	if p, ok := c.Locals(principalKey).(Principal); ok {
		return p
	}
	return Principal{}
}
