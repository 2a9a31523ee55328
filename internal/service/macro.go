package service

import (
	"math"
	"strings"

	"github.com/dbicalho1/TempleCals/internal/dto"
)

// Recommended macros are derived from the Mifflin-St Jeor basal metabolic
// rate, scaled by an activity multiplier and shifted for the weight goal.
// The macro split is 30/40/30 protein/carbs/fat by calories (protein and
// carbs at 4 kcal/g, fat at 9 kcal/g), so the calorie-equivalents of the
// returned grams always add back up to the calorie target.
const minDailyCalories = 1200

// CalculateMacros computes a daily macro recommendation from the profile
// attributes. Returns nil when age, weight, height or gender is missing —
// insufficient data, not an error. Deterministic and defined for all inputs:
// unrecognized gender/activity/goal strings fall back to neutral defaults.
func CalculateMacros(age *int, weightKg, heightCm *float64, gender, activityLevel, goal *string) *dto.MacroRecommendation {
	if age == nil || weightKg == nil || heightCm == nil || gender == nil {
		return nil
	}
	if *age <= 0 || *weightKg <= 0 || *heightCm <= 0 {
		return nil
	}

	bmr := 10*(*weightKg) + 6.25*(*heightCm) - 5*float64(*age)
	switch strings.ToLower(*gender) {
	case "male", "m":
		bmr += 5
	case "female", "f":
		bmr -= 161
	default:
		bmr -= 78 // midpoint of the male/female offsets
	}

	multiplier := 1.2 // sedentary
	if activityLevel != nil {
		switch strings.ToLower(*activityLevel) {
		case "light", "lightly_active":
			multiplier = 1.375
		case "moderate", "moderately_active":
			multiplier = 1.55
		case "active", "very_active":
			multiplier = 1.725
		case "extra_active", "athlete":
			multiplier = 1.9
		}
	}

	calories := bmr * multiplier
	if goal != nil {
		switch strings.ToLower(*goal) {
		case "lose", "lose_weight", "cut":
			calories -= 500
		case "gain", "gain_weight", "gain_muscle", "bulk":
			calories += 500
		}
	}
	if calories < minDailyCalories {
		calories = minDailyCalories
	}

	target := int(math.Round(calories))
	return &dto.MacroRecommendation{
		Calories: target,
		Protein:  round1(float64(target) * 0.30 / 4),
		Carbs:    round1(float64(target) * 0.40 / 4),
		Fat:      round1(float64(target) * 0.30 / 9),
	}
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
