package db

import (
	"github.com/beatburn/server/internal/models"
	"gorm.io/gorm"
)

type WeightRepository struct {
	database *gorm.DB
}

func NewWeightRepository(database *gorm.DB) *WeightRepository {
	return &WeightRepository{database: database}
}

func (repo *WeightRepository) Create(entry *models.WeightProgress) error {
	return repo.database.Create(entry).Error
}

// Latest returns the most recent entry for the user, or
// gorm.ErrRecordNotFound when the history is empty.
func (repo *WeightRepository) Latest(userID uint) (models.WeightProgress, error) {
	var entry models.WeightProgress
	if err := repo.database.Where("user_id = ?", userID).
		Order("date DESC, id DESC").First(&entry).Error; err != nil {
		return models.WeightProgress{}, err
	}
	return entry, nil
}

func (repo *WeightRepository) ListByUserAsc(userID uint) ([]models.WeightProgress, error) {
	entries := make([]models.WeightProgress, 0)
	if err := repo.database.Where("user_id = ?", userID).
		Order("date ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
