package planner

import (
	"math"

	"github.com/pulsefit/coach-backend/internal/models"
)

// activityFactors maps activity level to its TDEE multiplier. This is the
// single source of truth for valid activity levels.
var activityFactors = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// objectiveFactors scales total intake according to the user's goal.
var objectiveFactors = map[models.Objective]float64{
	models.ObjectiveCutting:       0.8,
	models.ObjectiveRecomposition: 0.9,
	models.ObjectiveMaintenance:   1.0,
}

// trainingDayBonus is the intake bump applied on scheduled training days.
const trainingDayBonus = 1.1

// CalculateDailyCalories computes the day's calorie target from the revised
// Harris-Benedict BMR, scaled by activity level, the training-day bonus and
// the objective factor. Inputs are not validated; a zero-value profile
// produces a (meaningless) number rather than an error.
func CalculateDailyCalories(profile *models.UserProfile, objective models.Objective, dayType models.DayType) int {
	var bmr float64
	if profile.Gender == models.GenderFemale {
		bmr = 447.593 + 9.247*profile.WeightKG + 3.098*profile.HeightCM - 4.330*float64(profile.Age)
	} else {
		bmr = 88.362 + 13.397*profile.WeightKG + 4.799*profile.HeightCM - 5.677*float64(profile.Age)
	}

	factor, ok := activityFactors[profile.ActivityLevel]
	if !ok {
		factor = activityFactors[models.ActivitySedentary]
	}
	tdee := bmr * factor

	if dayType == models.DayTraining {
		tdee *= trainingDayBonus
	}

	goal, ok := objectiveFactors[objective]
	if !ok {
		goal = objectiveFactors[models.ObjectiveMaintenance]
	}

	return int(math.Round(tdee * goal))
}
