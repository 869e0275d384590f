// Package metrics holds the derived health metric formulas shared by every
// layer of the app. There is exactly one BMR implementation (Mifflin-St Jeor)
// so the value the client displays and the value the store persists can never
// disagree.
package metrics

import (
	"errors"
	"math"
	"strings"

	"github.com/beatburn/server/internal/models"
)

var ErrInvalidInput = errors.New("metrics: invalid input")

const (
	ActivitySedentary = "sedentary"
	ActivityLight     = "light"
	ActivityModerate  = "moderate"
	ActivityActive    = "active"
	ActivityVery      = "very"
)

const (
	GoalWeightLoss  = "weight_loss"
	GoalMaintenance = "maintenance"
	GoalMuscleGain  = "muscle_gain"
)

var activityMultipliers = map[string]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityActive:    1.725,
	ActivityVery:      1.9,
}

var metValues = map[string]float64{
	models.IntensityLow:    4.5,
	models.IntensityMedium: 6.0,
	models.IntensityHigh:   7.5,
}

// BMI returns weight / height_m^2 rounded to one decimal place.
func BMI(weightKg float64, heightCm float64) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, ErrInvalidInput
	}
	heightM := heightCm / 100
	return math.Round(weightKg/(heightM*heightM)*10) / 10, nil
}

// BMICategory maps a BMI value onto the standard WHO bands. Bounds are
// inclusive below, exclusive above.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// BMR estimates resting daily energy expenditure with the Mifflin-St Jeor
// equation. Non-binary users get the mean of the male and female results,
// rounded only once at the end.
func BMR(weightKg float64, heightCm float64, age int, gender string) (int, error) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return 0, ErrInvalidInput
	}

	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch gender {
	case models.GenderMale:
		return int(math.Round(base + 5)), nil
	case models.GenderFemale:
		return int(math.Round(base - 161)), nil
	case models.GenderNonBinary:
		male := base + 5
		female := base - 161
		return int(math.Round((male + female) / 2)), nil
	default:
		return 0, ErrInvalidInput
	}
}

// CalorieGoal scales BMR by activity level into TDEE, rounds it, then applies
// the goal adjustment (-500 for weight loss, +300 for muscle gain).
func CalorieGoal(bmr int, activityLevel string, goal string) (int, error) {
	multiplier, ok := activityMultipliers[activityLevel]
	if !ok {
		return 0, ErrInvalidInput
	}

	tdee := int(math.Round(float64(bmr) * multiplier))
	switch goal {
	case GoalWeightLoss:
		return tdee - 500, nil
	case GoalMuscleGain:
		return tdee + 300, nil
	case GoalMaintenance:
		return tdee, nil
	default:
		return 0, ErrInvalidInput
	}
}

// GoalFromLabel maps a free-form fitness goal label onto the calorie goal
// adjustment buckets.
func GoalFromLabel(label string) string {
	lowered := strings.ToLower(label)
	switch {
	case strings.Contains(lowered, "loss"):
		return GoalWeightLoss
	case strings.Contains(lowered, "muscle") || strings.Contains(lowered, "strength"):
		return GoalMuscleGain
	default:
		return GoalMaintenance
	}
}

type MacroSplit struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

// Macros splits a calorie goal into grams of protein, carbs and fat. The
// split is picked by inspecting the free-form goal label. Each gram figure is
// rounded independently, so the totals may not recompose the calorie goal
// exactly.
func Macros(calorieGoal int, goalLabel string) MacroSplit {
	proteinPct, carbsPct, fatsPct := 0.30, 0.40, 0.30

	label := strings.ToLower(goalLabel)
	switch {
	case strings.Contains(label, "muscle") || strings.Contains(label, "strength"):
		proteinPct, carbsPct, fatsPct = 0.35, 0.40, 0.25
	case strings.Contains(label, "weight loss") || strings.Contains(label, "fat loss"):
		proteinPct, carbsPct, fatsPct = 0.35, 0.35, 0.30
	case strings.Contains(label, "endurance") || strings.Contains(label, "cardio"):
		proteinPct, carbsPct, fatsPct = 0.25, 0.50, 0.25
	}

	return MacroSplit{
		Protein: int(math.Round(float64(calorieGoal) * proteinPct / 4)),
		Carbs:   int(math.Round(float64(calorieGoal) * carbsPct / 4)),
		Fats:    int(math.Round(float64(calorieGoal) * fatsPct / 9)),
	}
}

// CaloriesBurned estimates workout expenditure as MET x weight x hours.
func CaloriesBurned(weightKg float64, durationMin int, intensity string) (int, error) {
	if weightKg <= 0 || durationMin < 0 {
		return 0, ErrInvalidInput
	}
	met, ok := metValues[intensity]
	if !ok {
		return 0, ErrInvalidInput
	}
	return int(math.Round(met * weightKg * float64(durationMin) / 60)), nil
}

// BurnRatePerSecond is the continuous form of CaloriesBurned, used by the
// live session tracker to accumulate calories tick by tick.
func BurnRatePerSecond(weightKg float64, intensity string) (float64, error) {
	met, ok := metValues[intensity]
	if !ok || weightKg <= 0 {
		return 0, ErrInvalidInput
	}
	return met * weightKg / 3600, nil
}
