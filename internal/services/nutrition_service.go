package services

import (
	"errors"
	"time"

	"github.com/beatburn/server/internal/models"
	"gorm.io/gorm"
)

type NutritionMealRepository interface {
	Create(meal *models.Meal) error
	ListByUserDesc(userID uint) ([]models.Meal, error)
}

type NutritionService struct {
	meals NutritionMealRepository
}

func NewNutritionService(meals NutritionMealRepository) *NutritionService {
	return &NutritionService{meals: meals}
}

type NewMealInput struct {
	UserID   uint   `json:"userId" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=Breakfast Lunch Dinner Snack"`
	Name     string `json:"name" validate:"required"`
	Calories int    `json:"calories" validate:"gte=0"`
	Protein  *int   `json:"protein" validate:"omitempty,gte=0"`
	Carbs    *int   `json:"carbs" validate:"omitempty,gte=0"`
	Fats     *int   `json:"fats" validate:"omitempty,gte=0"`
	Fiber    *int   `json:"fiber" validate:"omitempty,gte=0"`
	Time     string `json:"time" validate:"required"`
}

// LogMeal records a meal. The storage layer bumps the owner's
// calories_consumed total in the same transaction.
func (service *NutritionService) LogMeal(input NewMealInput, now time.Time) (models.Meal, error) {
	if err := validateStruct(input); err != nil {
		return models.Meal{}, err
	}

	meal := models.Meal{
		UserID:   input.UserID,
		Type:     input.Type,
		Name:     input.Name,
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fats:     input.Fats,
		Fiber:    input.Fiber,
		Time:     input.Time,
		Date:     now,
	}
	err := service.meals.Create(&meal)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Meal{}, ErrUserNotFound
	}
	if err != nil {
		return models.Meal{}, err
	}
	return meal, nil
}

func (service *NutritionService) ListMeals(userID uint) ([]models.Meal, error) {
	return service.meals.ListByUserDesc(userID)
}
