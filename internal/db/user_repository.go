package db

import (
	"time"

	"github.com/beatburn/server/internal/metrics"
	"github.com/beatburn/server/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("username = ?", username).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByUsername(username string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("username = ?", username).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

// UpdateStats merges the patch into the user record. A weight change also
// appends a WeightProgress entry carrying the signed difference, and the
// derived fields are recomputed from the new biometrics. Both writes happen
// in one transaction so the history can never drift from the user record.
func (repo *UserRepository) UpdateStats(userID uint, patch models.StatsPatch, now time.Time) (models.User, error) {
	var updated models.User
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		if patch.CaloriesBurned != nil {
			user.CaloriesBurned = *patch.CaloriesBurned
		}
		if patch.CaloriesConsumed != nil {
			user.CaloriesConsumed = *patch.CaloriesConsumed
		}

		weightChanged := patch.WeightKg != nil && *patch.WeightKg != user.WeightKg
		if weightChanged {
			previous := user.WeightKg
			user.WeightKg = *patch.WeightKg

			bmi, err := metrics.BMI(user.WeightKg, user.HeightCm)
			if err != nil {
				return err
			}
			bmr, err := metrics.BMR(user.WeightKg, user.HeightCm, user.Age, user.Gender)
			if err != nil {
				return err
			}
			calorieGoal, err := metrics.CalorieGoal(bmr, metrics.ActivityModerate, metrics.GoalFromLabel(user.Goal))
			if err != nil {
				return err
			}
			user.BMI = bmi
			user.BMR = bmr
			user.CalorieGoal = calorieGoal

			entry := models.WeightProgress{
				UserID:   userID,
				WeightKg: user.WeightKg,
				Change:   user.WeightKg - previous,
				Date:     now,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}

		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return models.User{}, err
	}
	return updated, nil
}
