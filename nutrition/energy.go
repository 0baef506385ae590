package nutrition

import (
	"math"
	"strings"
)

// Intensity multipliers for workout calorie estimates.
const (
	IntensityLowFactor    = 0.8
	IntensityMediumFactor = 1.0
	IntensityHighFactor   = 1.3
)

// IntensityFactor maps an intensity label to its multiplier. Unknown
// labels fall back to medium.
func IntensityFactor(intensity string) float64 {
	switch strings.ToLower(intensity) {
	case "low":
		return IntensityLowFactor
	case "high":
		return IntensityHighFactor
	default:
		return IntensityMediumFactor
	}
}

// CaloriesBurned estimates the energy cost of a workout, rounded to the
// nearest kcal.
func CaloriesBurned(caloriesPerMinute, durationMin float64, intensity string) float64 {
	if caloriesPerMinute < 0 || durationMin < 0 {
		return 0
	}
	return math.Round(caloriesPerMinute * durationMin * IntensityFactor(intensity))
}

// Activity level multipliers applied to BMR to get TDEE.
var activityFactors = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// BMR computes basal metabolic rate with the Mifflin-St Jeor equation.
func BMR(gender string, weightKg, heightCm float64, age int) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if strings.ToLower(gender) == "female" {
		return math.Round(base - 161)
	}
	return math.Round(base + 5)
}

// TDEE scales BMR by the activity level; unknown levels count as sedentary.
func TDEE(bmr float64, activityLevel string) float64 {
	f, ok := activityFactors[strings.ToLower(activityLevel)]
	if !ok {
		f = activityFactors["sedentary"]
	}
	return math.Round(bmr * f)
}

// TargetCalories adjusts TDEE for the member's goal: a 500 kcal deficit
// for weight loss, a 500 kcal surplus for gaining, TDEE as-is otherwise.
func TargetCalories(tdee float64, goal string) float64 {
	switch strings.ToLower(goal) {
	case "lose":
		return tdee - 500
	case "gain":
		return tdee + 500
	default:
		return tdee
	}
}
