package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pulsefit/coach-backend/internal/models"
	"github.com/pulsefit/coach-backend/internal/planner"
	"github.com/pulsefit/coach-backend/internal/service"
	"github.com/pulsefit/coach-backend/internal/testhelpers"
	"github.com/pulsefit/coach-backend/internal/types"
)

// Monday
var planTestNow = time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)

func planClock() time.Time { return planTestNow }

func setupPlanTest(t *testing.T) (*gorm.DB, *service.PlanService, uuid.UUID) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()

	auth := service.NewAuthService(db, "test-secret")
	user, _, err := auth.Register(ctx, registerRequest())
	require.NoError(t, err)

	profiles := service.NewProfileService(db)
	objective := models.ObjectiveCutting
	activity := models.ActivityModerate
	gender := models.GenderMale
	_, err = profiles.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{
		WeightKG:      floatPtr(80),
		HeightCM:      floatPtr(180),
		Age:           intPtr(30),
		Gender:        &gender,
		ActivityLevel: &activity,
		Objective:     &objective,
	})
	require.NoError(t, err)

	_, err = profiles.ReplaceTrainingDays(ctx, user.ID, []types.TrainingDayRequest{
		{DayOfWeek: 1, Type: "push", TimeSlot: models.SlotMorning, DurationMinutes: 60},
	})
	require.NoError(t, err)

	_, err = profiles.CreateSupplement(ctx, user.ID, &types.SupplementRequest{
		Name: "Whey", Type: models.SupplementProtein, Dosage: "30g",
	})
	require.NoError(t, err)
	_, err = profiles.CreateSupplement(ctx, user.ID, &types.SupplementRequest{
		Name: "Creatine", Type: models.SupplementCreatine, Dosage: "5g",
	})
	require.NoError(t, err)

	plans := service.NewPlanService(db, nil, service.WithPlanClock(planClock))
	return db, plans, user.ID
}

func TestPlanServiceTodayPlanGenerates(t *testing.T) {
	_, plans, userID := setupPlanTest(t)
	ctx := context.Background()

	plan, err := plans.TodayPlan(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, models.PlanID(userID, planTestNow), plan.ID)
	assert.Equal(t, "2024-03-11", plan.Date)
	assert.Equal(t, models.DayTraining, plan.DayType)
	assert.False(t, plan.Completed)

	nutrition := plan.Nutrition.Data()
	// 80kg male, moderate, cutting, training day.
	assert.Equal(t, 2528, nutrition.TotalCalories)
	assert.Len(t, nutrition.Meals, 4)

	supplements := plan.Supplements.Data()
	require.Len(t, supplements.PostWorkout, 1)
	assert.Equal(t, "10:00", supplements.PostWorkout[0].Time, "morning session moves the protein intake forward")
	require.Len(t, supplements.Morning, 1)
}

func TestPlanServiceTodayPlanIdempotent(t *testing.T) {
	db, plans, userID := setupPlanTest(t)
	ctx := context.Background()

	first, err := plans.TodayPlan(ctx, userID)
	require.NoError(t, err)

	second, err := plans.TodayPlan(ctx, userID)
	require.NoError(t, err)

	// Same plan row, including the tip: the second call reads, it does not
	// regenerate.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Tip, second.Tip)
	assert.Equal(t, first.Nutrition.Data(), second.Nutrition.Data())

	var count int64
	require.NoError(t, db.Model(&models.DailyPlan{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestPlanServicePlanByDate(t *testing.T) {
	_, plans, userID := setupPlanTest(t)
	ctx := context.Background()

	_, err := plans.PlanByDate(ctx, userID, "2024-03-11")
	assert.ErrorIs(t, err, service.ErrPlanNotFound, "reads never generate")

	_, err = plans.TodayPlan(ctx, userID)
	require.NoError(t, err)

	plan, err := plans.PlanByDate(ctx, userID, "2024-03-11")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-11", plan.Date)

	_, err = plans.PlanByDate(ctx, userID, "11-03-2024")
	assert.ErrorIs(t, err, service.ErrInvalidDate)
}

func TestPlanServiceMarkSupplementTaken(t *testing.T) {
	_, plans, userID := setupPlanTest(t)
	ctx := context.Background()

	plan, err := plans.TodayPlan(ctx, userID)
	require.NoError(t, err)

	supplements := plan.Supplements.Data()
	wheyID := supplements.PostWorkout[0].SupplementID
	creatineID := supplements.Morning[0].SupplementID

	updated, err := plans.MarkSupplementTaken(ctx, userID, wheyID)
	require.NoError(t, err)
	assert.True(t, updated.Supplements.Data().PostWorkout[0].Taken)
	assert.False(t, updated.Completed, "one of two supplements taken")

	updated, err = plans.MarkSupplementTaken(ctx, userID, creatineID)
	require.NoError(t, err)
	assert.True(t, updated.Completed, "all supplements taken completes the plan")

	_, err = plans.MarkSupplementTaken(ctx, userID, uuid.New())
	assert.ErrorIs(t, err, service.ErrSupplementNotFound)
}

func TestPlanServiceMarkTakenWithoutPlan(t *testing.T) {
	_, plans, userID := setupPlanTest(t)

	_, err := plans.MarkSupplementTaken(context.Background(), userID, uuid.New())
	assert.ErrorIs(t, err, service.ErrPlanNotFound)
}

func TestPlanServiceSavePlanUpserts(t *testing.T) {
	_, plans, userID := setupPlanTest(t)
	ctx := context.Background()

	first, err := plans.TodayPlan(ctx, userID)
	require.NoError(t, err)

	// A second write to the same id overwrites, it does not duplicate.
	clone := *first
	clone.Tip = "updated tip"
	require.NoError(t, plans.SavePlan(ctx, &clone))

	stored, err := plans.PlanByDate(ctx, userID, "2024-03-11")
	require.NoError(t, err)
	assert.Equal(t, "updated tip", stored.Tip)
}

func TestPlanServiceRestDay(t *testing.T) {
	db, _, userID := setupPlanTest(t)
	ctx := context.Background()

	// Tuesday: no scheduled session.
	tuesday := planTestNow.AddDate(0, 0, 1)
	plans := service.NewPlanService(db, nil, service.WithPlanClock(func() time.Time { return tuesday }))

	plan, err := plans.TodayPlan(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, models.DayRest, plan.DayType)

	nutrition := plan.Nutrition.Data()
	assert.Len(t, nutrition.Meals, 3, "rest days have no snack")

	supplements := plan.Supplements.Data()
	assert.Empty(t, supplements.PostWorkout, "protein is training-day only")
	assert.Empty(t, supplements.PreWorkout)

	dayType, _ := planner.DayTypeFor(nil, tuesday)
	assert.Equal(t, models.DayRest, dayType)
}
