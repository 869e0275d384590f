package db

import (
	"github.com/beatburn/server/internal/models"
	"gorm.io/gorm"
)

type WorkoutRepository struct {
	database *gorm.DB
}

func NewWorkoutRepository(database *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{database: database}
}

// Create inserts the session and bumps the owner's calories_burned total in
// the same transaction. A missing owner fails the whole operation with
// gorm.ErrRecordNotFound, so a session can never exist without its total
// having been applied.
func (repo *WorkoutRepository) Create(workout *models.WorkoutSession) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var owner models.User
		if err := tx.First(&owner, workout.UserID).Error; err != nil {
			return err
		}
		if err := tx.Create(workout).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", workout.UserID).
			Update("calories_burned", gorm.Expr("calories_burned + ?", workout.CaloriesBurned)).Error
	})
}

func (repo *WorkoutRepository) ListByUserDesc(userID uint) ([]models.WorkoutSession, error) {
	workouts := make([]models.WorkoutSession, 0)
	if err := repo.database.Where("user_id = ?", userID).
		Order("date DESC, id DESC").Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}
