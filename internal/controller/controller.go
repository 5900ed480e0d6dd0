package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// callerID extracts the authenticated user id set by the JWT middleware.
// Returns uuid.Nil when the request is anonymous; services treat that as
// unauthenticated where it matters.
func callerID(ctx *fiber.Ctx) uuid.UUID {
	raw := ctx.Locals("user_id")
	if raw == nil {
		return uuid.Nil
	}
	str, ok := raw.(string)
	if !ok {
		return uuid.Nil
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil
	}
	return id
}
