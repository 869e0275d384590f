package services

import (
	"errors"
	"time"

	"github.com/beatburn/server/internal/models"
	"gorm.io/gorm"
)

type ActivityWorkoutRepository interface {
	Create(workout *models.WorkoutSession) error
	ListByUserDesc(userID uint) ([]models.WorkoutSession, error)
}

type ActivityService struct {
	workouts ActivityWorkoutRepository
}

func NewActivityService(workouts ActivityWorkoutRepository) *ActivityService {
	return &ActivityService{workouts: workouts}
}

type NewWorkoutInput struct {
	UserID         uint   `json:"userId" validate:"required"`
	Type           string `json:"type" validate:"required"`
	DurationMin    int    `json:"duration" validate:"gte=0"`
	CaloriesBurned int    `json:"caloriesBurned" validate:"gte=0"`
	Accuracy       *int   `json:"accuracy" validate:"omitempty,gte=0,lte=100"`
	Moves          *int   `json:"moves" validate:"omitempty,gte=0"`
}

// LogWorkout records a finished session. The storage layer bumps the owner's
// calories_burned total in the same transaction.
func (service *ActivityService) LogWorkout(input NewWorkoutInput, now time.Time) (models.WorkoutSession, error) {
	if err := validateStruct(input); err != nil {
		return models.WorkoutSession{}, err
	}

	workout := models.WorkoutSession{
		UserID:         input.UserID,
		Type:           input.Type,
		DurationMin:    input.DurationMin,
		CaloriesBurned: input.CaloriesBurned,
		Accuracy:       input.Accuracy,
		Moves:          input.Moves,
		Date:           now,
	}
	err := service.workouts.Create(&workout)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.WorkoutSession{}, ErrUserNotFound
	}
	if err != nil {
		return models.WorkoutSession{}, err
	}
	return workout, nil
}

func (service *ActivityService) ListWorkouts(userID uint) ([]models.WorkoutSession, error) {
	return service.workouts.ListByUserDesc(userID)
}
