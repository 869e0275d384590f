package services

import (
	"errors"
	"time"

	"github.com/beatburn/server/internal/metrics"
	"github.com/beatburn/server/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ProfileUserRepository interface {
	Create(user *models.User) error
	FindByID(userID uint) (models.User, error)
	ExistsByUsername(username string) (bool, error)
	UpdateStats(userID uint, patch models.StatsPatch, now time.Time) (models.User, error)
}

type ProfileService struct {
	users ProfileUserRepository
}

func NewProfileService(users ProfileUserRepository) *ProfileService {
	return &ProfileService{users: users}
}

// NewProfileInput is the onboarding payload. Validation bounds mirror the
// form the client shows: no value reaches the metrics engine unchecked.
type NewProfileInput struct {
	Username   string  `json:"username" validate:"required,min=3,max=40"`
	Password   string  `json:"password" validate:"required,min=6"`
	Name       string  `json:"name" validate:"required"`
	Age        int     `json:"age" validate:"required,gte=16,lte=100"`
	Gender     string  `json:"gender" validate:"required,oneof=Male Female Non-binary"`
	HeightCm   float64 `json:"height" validate:"required,gte=100,lte=250"`
	WeightKg   float64 `json:"weight" validate:"required,gte=30,lte=250"`
	Goal       string  `json:"goal" validate:"required"`
	DanceStyle string  `json:"danceStyle" validate:"required"`
}

// Create validates the biometrics, derives BMI/BMR/calorie goal from them
// and persists the profile with zeroed running totals.
func (service *ProfileService) Create(input NewProfileInput) (models.User, error) {
	if err := validateStruct(input); err != nil {
		return models.User{}, err
	}

	taken, err := service.users.ExistsByUsername(input.Username)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrUsernameTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	bmi, err := metrics.BMI(input.WeightKg, input.HeightCm)
	if err != nil {
		return models.User{}, err
	}
	bmr, err := metrics.BMR(input.WeightKg, input.HeightCm, input.Age, input.Gender)
	if err != nil {
		return models.User{}, err
	}
	calorieGoal, err := metrics.CalorieGoal(bmr, metrics.ActivityModerate, metrics.GoalFromLabel(input.Goal))
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:     input.Username,
		PasswordHash: string(passwordHash),
		Name:         input.Name,
		Age:          input.Age,
		Gender:       input.Gender,
		HeightCm:     input.HeightCm,
		WeightKg:     input.WeightKg,
		Goal:         input.Goal,
		DanceStyle:   input.DanceStyle,
		BMI:          bmi,
		BMR:          bmr,
		CalorieGoal:  calorieGoal,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (service *ProfileService) Get(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UpdateStats merges a partial stats patch. Totals can be set but never to a
// negative value; a weight change is range-checked like onboarding input.
func (service *ProfileService) UpdateStats(userID uint, patch models.StatsPatch, now time.Time) (models.User, error) {
	violations := make([]FieldViolation, 0, 3)
	if patch.CaloriesBurned != nil && *patch.CaloriesBurned < 0 {
		violations = append(violations, FieldViolation{Field: "caloriesBurned", Message: "must not be negative"})
	}
	if patch.CaloriesConsumed != nil && *patch.CaloriesConsumed < 0 {
		violations = append(violations, FieldViolation{Field: "caloriesConsumed", Message: "must not be negative"})
	}
	if patch.WeightKg != nil && (*patch.WeightKg < models.MinWeightKg || *patch.WeightKg > models.MaxWeightKg) {
		violations = append(violations, FieldViolation{Field: "weight", Message: "must be between 30 and 250"})
	}
	if len(violations) > 0 {
		return models.User{}, &ValidationError{Violations: violations}
	}

	user, err := service.users.UpdateStats(userID, patch, now)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// MacroTargets returns the macro gram split for the user's calorie goal.
func (service *ProfileService) MacroTargets(userID uint) (metrics.MacroSplit, error) {
	user, err := service.Get(userID)
	if err != nil {
		return metrics.MacroSplit{}, err
	}
	return metrics.Macros(user.CalorieGoal, user.Goal), nil
}
