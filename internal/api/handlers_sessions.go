package api

import (
	"errors"
	"time"

	"github.com/beatburn/server/internal/models"
	"github.com/beatburn/server/internal/services"
	"github.com/beatburn/server/internal/session"
	"github.com/gofiber/fiber/v2"
)

// StartSession begins a live tracked session for the user. The calorie burn
// rate comes from the user's stored weight, so the profile must exist.
func (handler *Handler) StartSession(c *fiber.Ctx) error {
	var input startSessionInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.UserID == 0 {
		return apiError(c, fiber.StatusBadRequest, "userId is required")
	}
	if input.Intensity == "" {
		input.Intensity = models.IntensityMedium
	}

	user, err := handler.profileService.Get(input.UserID)
	if err != nil {
		return serviceError(c, err)
	}

	if err := handler.sessions.Start(user.ID, user.WeightKg, input.Intensity, time.Now()); err != nil {
		if errors.Is(err, session.ErrSessionActive) {
			return apiError(c, fiber.StatusConflict, "session already running")
		}
		return apiError(c, fiber.StatusBadRequest, "invalid intensity")
	}
	return c.Status(fiber.StatusCreated).JSON(handler.sessions.Snapshot(user.ID))
}

func (handler *Handler) GetSession(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}
	return c.JSON(handler.sessions.Snapshot(userID))
}

// StopSession freezes the session and flushes its aggregate into a stored
// workout, which also bumps the owner's calories_burned total. Stopping with
// no running session returns a zeroed summary and stores nothing.
func (handler *Handler) StopSession(c *fiber.Ctx) error {
	var input stopSessionInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.UserID == 0 {
		return apiError(c, fiber.StatusBadRequest, "userId is required")
	}

	summary, wasRunning := handler.sessions.Stop(input.UserID)
	if !wasRunning {
		return c.JSON(fiber.Map{"session": summary})
	}

	workoutType := input.Type
	if workoutType == "" {
		workoutType = "Dance"
	}
	moves := summary.Moves
	workout, err := handler.activityService.LogWorkout(services.NewWorkoutInput{
		UserID:         input.UserID,
		Type:           workoutType,
		DurationMin:    summary.DurationMin,
		CaloriesBurned: summary.CaloriesBurned,
		Accuracy:       input.Accuracy,
		Moves:          &moves,
	}, time.Now())
	if err != nil {
		return serviceError(c, err)
	}

	user, err := handler.profileService.Get(input.UserID)
	if err != nil {
		return serviceError(c, err)
	}
	handler.mirrorActiveProfile(user)

	return c.JSON(fiber.Map{"session": summary, "workout": workout, "user": user})
}
