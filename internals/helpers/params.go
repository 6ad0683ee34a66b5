package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseUUIDParam parses a path parameter that must be a uuid. A malformed
// value cannot name an existing row, so it renders as the caller's not-found
// error instead of reaching the database as a failed uuid cast.
func ParseUUIDParam(c *fiber.Ctx, name, notFoundMessage string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusNotFound, notFoundMessage)
	}
	return id, nil
}
