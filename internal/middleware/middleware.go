package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"
	"pantry-pilot/domain"
	"pantry-pilot/internal/api/presenters"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		UserContextMiddleware() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, X-User-ID",
	})
}

// UserContextMiddleware resolves the acting user from the X-User-ID header,
// falling back to the user_id query parameter, and stores it in locals.
func (m *middleware) UserContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get("X-User-ID")
		if userID == "" {
			userID = c.Query("user_id")
		}

		if _, err := uuid.Parse(userID); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUserContext, domain.ErrMissingUserID)
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}
