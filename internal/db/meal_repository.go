package db

import (
	"github.com/beatburn/server/internal/models"
	"gorm.io/gorm"
)

type MealRepository struct {
	database *gorm.DB
}

func NewMealRepository(database *gorm.DB) *MealRepository {
	return &MealRepository{database: database}
}

// Create inserts the meal and bumps the owner's calories_consumed total in
// the same transaction.
func (repo *MealRepository) Create(meal *models.Meal) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var owner models.User
		if err := tx.First(&owner, meal.UserID).Error; err != nil {
			return err
		}
		if err := tx.Create(meal).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", meal.UserID).
			Update("calories_consumed", gorm.Expr("calories_consumed + ?", meal.Calories)).Error
	})
}

func (repo *MealRepository) ListByUserDesc(userID uint) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	if err := repo.database.Where("user_id = ?", userID).
		Order("date DESC, id DESC").Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}
