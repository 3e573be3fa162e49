package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pulsefit/coach-backend/internal/models"
	"github.com/pulsefit/coach-backend/internal/service"
	"github.com/pulsefit/coach-backend/internal/testhelpers"
	"github.com/pulsefit/coach-backend/internal/types"
)

func setupProfileTest(t *testing.T) (*gorm.DB, *service.ProfileService, uuid.UUID) {
	db := testhelpers.SetupTestDatabase(t)
	auth := service.NewAuthService(db, "test-secret")
	user, _, err := auth.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	return db, service.NewProfileService(db), user.ID
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestProfileServiceUpdateProfile(t *testing.T) {
	_, svc, userID := setupProfileTest(t)

	objective := models.ObjectiveCutting
	activity := models.ActivityModerate
	profile, err := svc.UpdateProfile(context.Background(), userID, &types.UpdateProfileRequest{
		WeightKG:      floatPtr(80),
		HeightCM:      floatPtr(180),
		Age:           intPtr(30),
		ActivityLevel: &activity,
		Objective:     &objective,
	})
	require.NoError(t, err)
	assert.Equal(t, 80.0, profile.WeightKG)
	assert.Equal(t, models.ObjectiveCutting, profile.Objective)

	// Absent fields keep their value.
	profile, err = svc.UpdateProfile(context.Background(), userID, &types.UpdateProfileRequest{
		WeightKG: floatPtr(78.5),
	})
	require.NoError(t, err)
	assert.Equal(t, 78.5, profile.WeightKG)
	assert.Equal(t, 180.0, profile.HeightCM)
	assert.Equal(t, models.ActivityModerate, profile.ActivityLevel)
}

func TestProfileServiceReplaceTrainingDays(t *testing.T) {
	_, svc, userID := setupProfileTest(t)

	days, err := svc.ReplaceTrainingDays(context.Background(), userID, []types.TrainingDayRequest{
		{DayOfWeek: 1, Type: "push", TimeSlot: models.SlotMorning, DurationMinutes: 60},
		{DayOfWeek: 4, Type: "pull", TimeSlot: models.SlotEvening, DurationMinutes: 45},
	})
	require.NoError(t, err)
	assert.Len(t, days, 2)

	// Replacement is total, not additive.
	days, err = svc.ReplaceTrainingDays(context.Background(), userID, []types.TrainingDayRequest{
		{DayOfWeek: 2, Type: "full body", TimeSlot: models.SlotEvening, DurationMinutes: 90},
	})
	require.NoError(t, err)
	assert.Len(t, days, 1)

	stored, err := svc.GetTrainingDays(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 2, stored[0].DayOfWeek)

	// Clearing the schedule is allowed.
	days, err = svc.ReplaceTrainingDays(context.Background(), userID, nil)
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestProfileServiceSupplementCRUD(t *testing.T) {
	_, svc, userID := setupProfileTest(t)
	ctx := context.Background()

	created, err := svc.CreateSupplement(ctx, userID, &types.SupplementRequest{
		Name:   "Creatine",
		Type:   models.SupplementCreatine,
		Dosage: "5g",
	})
	require.NoError(t, err)
	assert.True(t, created.Available, "supplements default to available")

	off := false
	updated, err := svc.UpdateSupplement(ctx, userID, created.ID, &types.SupplementRequest{
		Name:      "Creatine",
		Type:      models.SupplementCreatine,
		Dosage:    "3g",
		Available: &off,
	})
	require.NoError(t, err)
	assert.Equal(t, "3g", updated.Dosage)
	assert.False(t, updated.Available)

	list, err := svc.ListSupplements(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.DeleteSupplement(ctx, userID, created.ID))

	list, err = svc.ListSupplements(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, list)

	err = svc.DeleteSupplement(ctx, userID, created.ID)
	assert.ErrorIs(t, err, service.ErrSupplementNotFound)
}

func TestProfileServiceSupplementOwnership(t *testing.T) {
	db, svc, userID := setupProfileTest(t)
	ctx := context.Background()

	auth := service.NewAuthService(db, "test-secret")
	other, _, err := auth.Register(ctx, &types.RegisterRequest{
		Name:     "Other",
		Email:    "other@example.com",
		Username: "otheruser",
		Password: "password123",
	})
	require.NoError(t, err)

	created, err := svc.CreateSupplement(ctx, userID, &types.SupplementRequest{
		Name: "Whey", Type: models.SupplementProtein,
	})
	require.NoError(t, err)

	// Another user cannot touch it.
	_, err = svc.UpdateSupplement(ctx, other.ID, created.ID, &types.SupplementRequest{
		Name: "Whey", Type: models.SupplementProtein,
	})
	assert.ErrorIs(t, err, service.ErrSupplementNotFound)
	assert.ErrorIs(t, svc.DeleteSupplement(ctx, other.ID, created.ID), service.ErrSupplementNotFound)
}
