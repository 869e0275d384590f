package models

import "time"

const (
	GenderMale      = "Male"
	GenderFemale    = "Female"
	GenderNonBinary = "Non-binary"
)

// Validation bounds for biometric inputs, shared by the API boundary and tests.
const (
	MinAge      = 16
	MaxAge      = 100
	MinHeightCm = 100
	MaxHeightCm = 250
	MinWeightKg = 30
	MaxWeightKg = 250
)

type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Username     string  `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string  `gorm:"not null" json:"-"`
	Name         string  `gorm:"not null" json:"name"`
	Age          int     `gorm:"not null" json:"age"`
	Gender       string  `gorm:"not null" json:"gender"`
	HeightCm     float64 `gorm:"not null" json:"height"`
	WeightKg     float64 `gorm:"not null" json:"weight"`
	Goal         string  `gorm:"not null" json:"goal"`
	DanceStyle   string  `gorm:"not null" json:"danceStyle"`

	// Derived fields, always recomputed from the biometrics above.
	BMI         float64 `gorm:"not null" json:"bmi"`
	BMR         int     `gorm:"not null" json:"bmr"`
	CalorieGoal int     `gorm:"not null" json:"calorieGoal"`

	CaloriesBurned   int `gorm:"not null;default:0" json:"caloriesBurned"`
	CaloriesConsumed int `gorm:"not null;default:0" json:"caloriesConsumed"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StatsPatch carries the optional fields of a stats update. Nil means
// "leave unchanged".
type StatsPatch struct {
	CaloriesBurned   *int     `json:"caloriesBurned"`
	CaloriesConsumed *int     `json:"caloriesConsumed"`
	WeightKg         *float64 `json:"weight"`
}

func (patch StatsPatch) IsEmpty() bool {
	return patch.CaloriesBurned == nil && patch.CaloriesConsumed == nil && patch.WeightKg == nil
}

func IsValidGender(value string) bool {
	switch value {
	case GenderMale, GenderFemale, GenderNonBinary:
		return true
	default:
		return false
	}
}
