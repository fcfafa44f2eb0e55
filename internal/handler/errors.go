package handler

import (
	"errors"

	"absensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// respondError memetakan error domain dari usecase ke status HTTP.
func respondError(c *fiber.Ctx, err error) error {
	var validationErr *usecase.ValidationError
	var conflictErr *usecase.ConflictError
	var notFoundErr *usecase.NotFoundError
	var quotaErr *usecase.QuotaExceededError

	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &conflictErr),
		errors.As(err, &quotaErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
