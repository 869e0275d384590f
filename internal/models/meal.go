package models

import "time"

const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSnack     = "Snack"
)

// Meal is immutable after creation. Creating one bumps the owning user's
// calories_consumed total in the same transaction.
type Meal struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"not null;index" json:"userId"`
	Type     string    `gorm:"not null" json:"type"`
	Name     string    `gorm:"not null" json:"name"`
	Calories int       `gorm:"not null" json:"calories"`
	Protein  *int      `json:"protein,omitempty"`
	Carbs    *int      `json:"carbs,omitempty"`
	Fats     *int      `json:"fats,omitempty"`
	Fiber    *int      `json:"fiber,omitempty"`
	Time     string    `gorm:"not null" json:"time"`
	Date     time.Time `gorm:"not null" json:"date"`
}

func IsValidMealType(value string) bool {
	switch value {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	default:
		return false
	}
}
