package services

import (
	"errors"
	"time"

	"github.com/beatburn/server/internal/models"
	"gorm.io/gorm"
)

type ProgressWeightRepository interface {
	Create(entry *models.WeightProgress) error
	Latest(userID uint) (models.WeightProgress, error)
	ListByUserAsc(userID uint) ([]models.WeightProgress, error)
}

type ProgressService struct {
	weights ProgressWeightRepository
}

func NewProgressService(weights ProgressWeightRepository) *ProgressService {
	return &ProgressService{weights: weights}
}

type NewWeightInput struct {
	UserID   uint     `json:"userId" validate:"required"`
	WeightKg float64  `json:"weight" validate:"required,gte=30,lte=250"`
	Change   *float64 `json:"change"`
}

// RecordWeight appends a history entry. When the caller does not supply the
// change it is derived from the previous entry; the first entry gets zero.
// This endpoint records history only, it never touches the user's weight
// stat - that goes through ProfileService.UpdateStats.
func (service *ProgressService) RecordWeight(input NewWeightInput, now time.Time) (models.WeightProgress, error) {
	if err := validateStruct(input); err != nil {
		return models.WeightProgress{}, err
	}

	change := 0.0
	if input.Change != nil {
		change = *input.Change
	} else {
		previous, err := service.weights.Latest(input.UserID)
		if err == nil {
			change = input.WeightKg - previous.WeightKg
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.WeightProgress{}, err
		}
	}

	entry := models.WeightProgress{
		UserID:   input.UserID,
		WeightKg: input.WeightKg,
		Change:   change,
		Date:     now,
	}
	if err := service.weights.Create(&entry); err != nil {
		return models.WeightProgress{}, err
	}
	return entry, nil
}

func (service *ProgressService) History(userID uint) ([]models.WeightProgress, error) {
	return service.weights.ListByUserAsc(userID)
}
