package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError maps an error coming out of a service (usually *fiber.Error)
// onto the consistent JSON envelope. Anything else becomes a 500 so storage
// details never leak past the boundary.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, fiber.StatusInternalServerError, "Internal server error")
}
