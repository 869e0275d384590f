package api

import (
	"log"
	"time"

	"github.com/beatburn/server/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) CreateWorkout(c *fiber.Ctx) error {
	var input services.NewWorkoutInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	workout, err := handler.activityService.LogWorkout(input, time.Now())
	if err != nil {
		return serviceError(c, err)
	}

	// The owner's calories_burned total moved with the insert.
	if user, err := handler.profileService.Get(input.UserID); err == nil {
		handler.mirrorActiveProfile(user)
	} else {
		log.Printf("api: reload owner after workout: %v", err)
	}
	return c.Status(fiber.StatusCreated).JSON(workout)
}

func (handler *Handler) ListWorkouts(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	workouts, err := handler.activityService.ListWorkouts(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(workouts)
}
