// Package planner generates daily nutrition, supplement and tip plans from a
// user's health profile and weekly training schedule. All computation is pure
// arithmetic and table lookups; the only side effect is the final persistence
// write through the injected PlanStore.
package planner

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/pulsefit/coach-backend/internal/models"
)

// PlanStore persists generated plans. Writes are upserts keyed by plan id,
// so two concurrent generations for the same user and day resolve to
// last-write-wins.
type PlanStore interface {
	SavePlan(ctx context.Context, plan *models.DailyPlan) error
}

// Input carries everything the generator needs for one user's day. DayType
// and TrainingDay must be resolved by the caller, in one place, via
// DayTypeFor.
type Input struct {
	UserID      uuid.UUID
	Profile     *models.UserProfile
	Supplements []models.Supplement
	DayType     models.DayType
	TrainingDay *models.TrainingDay
}

// Generator assembles and persists daily plans. The clock and RNG are
// injected so tests can pin "today" and the tip choice.
type Generator struct {
	store PlanStore
	now   func() time.Time
	rng   *rand.Rand
}

// Option customizes a Generator.
type Option func(*Generator)

// WithClock overrides the time source used for the plan date and timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithRand overrides the RNG used for tip selection.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) { g.rng = rng }
}

// NewGenerator creates a Generator backed by the given store.
func NewGenerator(store PlanStore, opts ...Option) *Generator {
	g := &Generator{
		store: store,
		now:   time.Now,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// DayTypeFor matches a date's weekday against the configured training days.
// The first matching entry wins; no match means a rest day.
func DayTypeFor(days []models.TrainingDay, date time.Time) (models.DayType, *models.TrainingDay) {
	weekday := int(date.Weekday())
	for i := range days {
		if days[i].DayOfWeek == weekday {
			return models.DayTraining, &days[i]
		}
	}
	return models.DayRest, nil
}

// Generate builds today's plan for the given input and persists it. The plan
// id is deterministic ("{userID}_{YYYY-MM-DD}"), so regenerating the same day
// overwrites rather than duplicates.
func (g *Generator) Generate(ctx context.Context, in Input) (*models.DailyPlan, error) {
	now := g.now()

	totalCalories := CalculateDailyCalories(in.Profile, in.Profile.Objective, in.DayType)
	nutrition := GenerateNutritionPlan(in.Profile, in.Profile.Objective, totalCalories, in.DayType)
	supplements := GenerateSupplementPlan(in.Supplements, in.DayType, in.TrainingDay)
	tip := DailyTip(g.rng, in.DayType)

	plan := &models.DailyPlan{
		ID:          models.PlanID(in.UserID, now),
		UserID:      in.UserID,
		Date:        now.Format("2006-01-02"),
		DayType:     in.DayType,
		Nutrition:   datatypes.NewJSONType(nutrition),
		Supplements: datatypes.NewJSONType(supplements),
		Tip:         tip,
		Completed:   false,
		CreatedAt:   now,
	}

	if err := g.store.SavePlan(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to save daily plan: %w", err)
	}
	return plan, nil
}
