package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"vocably.app/internal/domain"
)

// handleError maps service errors onto the wire taxonomy: client input
// errors → 400, missing backend → 500, conflicts → 409, everything
// else → 500. Nothing richer than a string message crosses the request
// boundary.
func handleError(c *fiber.Ctx, err error) error {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.Code).JSON(fiber.Map{"error": appErr.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func notConfigured(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "backend not configured"})
}
