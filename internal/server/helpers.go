package server

import (
	"strconv"

	"devconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

// currentUserID returns the authenticated user's ID. Only valid on routes
// behind AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	return c.Locals("userID").(uint)
}

// parseIDParam reads a numeric route parameter. A malformed or non-positive
// value maps to NotFound for the named resource, the same answer as an ID
// that matches nothing.
func parseIDParam(c *fiber.Ctx, name, resource string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewNotFoundError(resource)
	}
	return uint(id), nil
}
