package api

import (
	"time"

	"github.com/beatburn/server/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) RecordWeight(c *fiber.Ctx) error {
	var input services.NewWeightInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, err := handler.progressService.RecordWeight(input, time.Now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) WeightHistory(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	history, err := handler.progressService.History(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(history)
}
