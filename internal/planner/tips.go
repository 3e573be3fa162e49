package planner

import (
	"math/rand"

	"github.com/pulsefit/coach-backend/internal/models"
)

var trainingTips = []string{
	"Warm up for at least five minutes before your first working set.",
	"Hit your post-workout protein within an hour of finishing.",
	"Log your weights so next session you know exactly what to beat.",
	"Hydrate before you feel thirsty; aim for water between every set.",
	"Quality reps beat heavy reps. Leave your ego at the door.",
	"Eat your biggest carb meal around your training window.",
	"Film one set per exercise and check your form honestly.",
	"Finish with five minutes of easy stretching while muscles are warm.",
}

var restTips = []string{
	"Rest days build muscle. Training only provides the stimulus.",
	"Aim for 7-9 hours of sleep tonight; recovery happens in bed.",
	"A 20-30 minute walk keeps blood flowing without adding fatigue.",
	"Keep protein intake up even on rest days.",
	"Use the extra time to prep meals for your next training day.",
	"Light stretching or foam rolling eases next-day stiffness.",
	"Rest-day hunger is normal on a cut; fill up on vegetables.",
	"Review this week's sessions and set one goal for the next one.",
}

// DailyTip returns a motivational tip for the day type, picked uniformly
// from a fixed list. The RNG is injected so callers can seed it for
// reproducible output.
func DailyTip(rng *rand.Rand, dayType models.DayType) string {
	tips := restTips
	if dayType == models.DayTraining {
		tips = trainingTips
	}
	return tips[rng.Intn(len(tips))]
}
