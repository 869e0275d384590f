package models

import "time"

// WeightProgress is an append-only history entry. Change carries the signed
// difference from the previously recorded weight.
type WeightProgress struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"not null;index" json:"userId"`
	WeightKg float64   `gorm:"not null" json:"weight"`
	Change   float64   `gorm:"not null;default:0" json:"change"`
	Date     time.Time `gorm:"not null" json:"date"`
}
