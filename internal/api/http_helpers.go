package api

import (
	"errors"
	"log"
	"strconv"

	"github.com/beatburn/server/internal/services"
	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func validationFailed(c *fiber.Ctx, validationError *services.ValidationError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationError.Violations})
}

// serviceError maps domain errors onto the JSON envelopes the client expects.
// Anything unrecognized is logged and hidden behind a plain 500.
func serviceError(c *fiber.Ctx, err error) error {
	if validationError, ok := services.AsValidationError(err); ok {
		return validationFailed(c, validationError)
	}
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return apiError(c, fiber.StatusNotFound, "user not found")
	case errors.Is(err, services.ErrUsernameTaken):
		return apiError(c, fiber.StatusConflict, "username already exists")
	case errors.Is(err, services.ErrInvalidLogin):
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	log.Printf("api: unexpected error: %v", err)
	return apiError(c, fiber.StatusInternalServerError, "internal error")
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || raw == 0 {
		return 0, errors.New("invalid id parameter")
	}
	return uint(raw), nil
}
