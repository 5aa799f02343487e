package handler

import (
	"errors"
	"log"

	"go-bengkel-api/internal/service"
	"go-bengkel-api/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Helper untuk parse UUID dari string
func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// respondError maps service failures onto the right status class: bad input,
// not found, or server fault. Internal errors are logged, not leaked.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, validator.ErrValidation),
		errors.Is(err, service.ErrDuplicateCode),
		errors.Is(err, service.ErrDuplicateInvoice),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrAmountExceedsRemaining),
		errors.Is(err, service.ErrTotalsMismatch):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("internal error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}
