package api

import (
	"time"

	"github.com/beatburn/server/internal/models"
	"github.com/beatburn/server/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) CreateUser(c *fiber.Ctx) error {
	var input services.NewProfileInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.profileService.Create(input)
	if err != nil {
		return serviceError(c, err)
	}

	handler.setActiveProfile(user)
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (handler *Handler) GetUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	user, err := handler.profileService.Get(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(user)
}

func (handler *Handler) UpdateUserStats(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	var patch models.StatsPatch
	if err := c.BodyParser(&patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if patch.IsEmpty() {
		return apiError(c, fiber.StatusBadRequest, "no fields to update")
	}

	user, err := handler.profileService.UpdateStats(userID, patch, time.Now())
	if err != nil {
		return serviceError(c, err)
	}

	handler.mirrorActiveProfile(user)
	return c.JSON(user)
}

func (handler *Handler) GetUserMacros(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	targets, err := handler.profileService.MacroTargets(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(targets)
}
