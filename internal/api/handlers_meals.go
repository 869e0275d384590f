package api

import (
	"log"
	"time"

	"github.com/beatburn/server/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) CreateMeal(c *fiber.Ctx) error {
	var input services.NewMealInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	meal, err := handler.nutritionService.LogMeal(input, time.Now())
	if err != nil {
		return serviceError(c, err)
	}

	if user, err := handler.profileService.Get(input.UserID); err == nil {
		handler.mirrorActiveProfile(user)
	} else {
		log.Printf("api: reload owner after meal: %v", err)
	}
	return c.Status(fiber.StatusCreated).JSON(meal)
}

func (handler *Handler) ListMeals(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	meals, err := handler.nutritionService.ListMeals(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(meals)
}
