package models

import "time"

const (
	IntensityLow    = "low"
	IntensityMedium = "medium"
	IntensityHigh   = "high"
)

// WorkoutSession is immutable after creation. Creating one also bumps the
// owning user's calories_burned total in the same transaction.
type WorkoutSession struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"userId"`
	Type           string    `gorm:"not null" json:"type"`
	DurationMin    int       `gorm:"not null" json:"duration"`
	CaloriesBurned int       `gorm:"not null" json:"caloriesBurned"`
	Accuracy       *int      `json:"accuracy,omitempty"`
	Moves          *int      `json:"moves,omitempty"`
	Date           time.Time `gorm:"not null" json:"date"`
}

func IsValidIntensity(value string) bool {
	switch value {
	case IntensityLow, IntensityMedium, IntensityHigh:
		return true
	default:
		return false
	}
}
