package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsefit/coach-backend/internal/api"
	"github.com/pulsefit/coach-backend/internal/models"
	"github.com/pulsefit/coach-backend/internal/router"
	"github.com/pulsefit/coach-backend/internal/service"
	"github.com/pulsefit/coach-backend/internal/testhelpers"
)

// TestDailyPlanFlow walks the whole API on a real postgres: register, fill
// the profile and schedule, add supplements, fetch today's plan twice and
// mark a supplement taken.
func TestDailyPlanFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := testhelpers.SetupPostgres(t)

	gin.SetMode(gin.TestMode)
	authService := service.NewAuthService(db, "integration-secret")
	profileService := service.NewProfileService(db)
	planService := service.NewPlanService(db, nil)

	engine := router.SetupRouter(
		api.NewAuthHandler(authService),
		api.NewProfileHandler(profileService),
		api.NewSupplementHandler(profileService),
		api.NewPlanHandler(planService),
		api.NewHealthHandler(db),
		authService,
	)

	do := func(method, path, token string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w
	}

	// Liveness
	w := do(http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Register
	w = do(http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":     "Integration Tester",
		"email":    "it@example.com",
		"username": "ittester",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var auth struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &auth))
	require.NotEmpty(t, auth.Token)

	// Profile
	w = do(http.MethodPut, "/api/v1/profile", auth.Token, gin.H{
		"weight_kg":      75,
		"height_cm":      178,
		"age":            28,
		"gender":         "male",
		"activity_level": "active",
		"objective":      "recomposition",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Degenerate values are rejected at the boundary.
	w = do(http.MethodPut, "/api/v1/profile", auth.Token, gin.H{"weight_kg": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Train every day so today is a training day regardless of weekday.
	days := make([]gin.H, 7)
	for i := range days {
		days[i] = gin.H{"day_of_week": i, "type": "full body", "time_slot": "evening", "duration_minutes": 60}
	}
	w = do(http.MethodPut, "/api/v1/profile/training-days", auth.Token, days)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Supplements
	w = do(http.MethodPost, "/api/v1/supplements", auth.Token, gin.H{
		"name": "Whey", "type": "protein", "dosage": "30g",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Today's plan generates on first read.
	w = do(http.MethodGet, "/api/v1/plans/today", auth.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var plan models.DailyPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Equal(t, models.DayTraining, plan.DayType)
	assert.False(t, plan.Completed)
	require.NotEmpty(t, plan.Supplements.Data().PostWorkout)

	// Second read returns the same plan (tip included).
	w = do(http.MethodGet, "/api/v1/plans/today", auth.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var again models.DailyPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &again))
	assert.Equal(t, plan.ID, again.ID)
	assert.Equal(t, plan.Tip, again.Tip)

	// Mark the protein taken; it is the only supplement, so the plan
	// completes.
	wheyID := plan.Supplements.Data().PostWorkout[0].SupplementID
	w = do(http.MethodPost, "/api/v1/plans/today/supplements/"+wheyID.String()+"/taken", auth.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.DailyPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.True(t, updated.Supplements.Data().PostWorkout[0].Taken)
	assert.True(t, updated.Completed)

	// Historic reads never generate.
	w = do(http.MethodGet, "/api/v1/plans/1999-01-01", auth.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// No token, no plan.
	w = do(http.MethodGet, "/api/v1/plans/today", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
