package planner

import (
	"github.com/pulsefit/coach-backend/internal/models"
)

// Fixed intake times. Pre/post-workout times depend on whether the day's
// session is in the morning.
const (
	timeMorningIntake     = "08:00"
	timePreWorkoutAM      = "07:30"
	timePreWorkoutPM      = "17:30"
	timePostWorkoutAM     = "10:00"
	timePostWorkoutPM     = "18:00"
)

// GenerateSupplementPlan routes each available supplement into one of the
// four intake slots by type. Routing is per-supplement: entries never
// interact, and slot order follows input order. Types without a routing rule
// are dropped. trainingDay may be nil on rest days.
func GenerateSupplementPlan(supplements []models.Supplement, dayType models.DayType, trainingDay *models.TrainingDay) models.SupplementPlan {
	var plan models.SupplementPlan

	morningSession := trainingDay != nil && trainingDay.TimeSlot == models.SlotMorning

	for _, s := range supplements {
		if !s.Available {
			continue
		}

		switch s.Type {
		case models.SupplementMultivitamin, models.SupplementCreatine, models.SupplementFatBurner:
			plan.Morning = append(plan.Morning, scheduled(s, timeMorningIntake))
		case models.SupplementProtein:
			if dayType != models.DayTraining {
				continue
			}
			t := timePostWorkoutPM
			if morningSession {
				t = timePostWorkoutAM
			}
			plan.PostWorkout = append(plan.PostWorkout, scheduled(s, t))
		case models.SupplementPreWorkout:
			if dayType != models.DayTraining {
				continue
			}
			t := timePreWorkoutPM
			if morningSession {
				t = timePreWorkoutAM
			}
			plan.PreWorkout = append(plan.PreWorkout, scheduled(s, t))
		}
	}

	return plan
}

func scheduled(s models.Supplement, at string) models.ScheduledSupplement {
	return models.ScheduledSupplement{
		SupplementID: s.ID,
		Name:         s.Name,
		Type:         s.Type,
		Dosage:       s.Dosage,
		Time:         at,
	}
}
