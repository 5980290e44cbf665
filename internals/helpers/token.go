package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserUUID reads the caller id the auth middleware stored in Locals.
func GetUserUUID(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Locals("user_id")
	if raw == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing user identity")
	}

	switch v := raw.(type) {
	case uuid.UUID:
		return v, nil
	case string:
		parsed, err := uuid.Parse(v)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid user id in token")
		}
		return parsed, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - unrecognized user id")
	}
}

// GetUserRole reads the role claim stored by the auth middleware.
func GetUserRole(c *fiber.Ctx) string {
	if role, ok := c.Locals("user_role").(string); ok {
		return role
	}
	return ""
}
