package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/pulsefit/coach-backend/internal/api"
	"github.com/pulsefit/coach-backend/internal/models"
	"github.com/pulsefit/coach-backend/internal/service"
)

type stubPlanService struct {
	plan *models.DailyPlan
	err  error
}

func (s *stubPlanService) TodayPlan(ctx context.Context, userID uuid.UUID) (*models.DailyPlan, error) {
	return s.plan, s.err
}

func (s *stubPlanService) PlanByDate(ctx context.Context, userID uuid.UUID, date string) (*models.DailyPlan, error) {
	return s.plan, s.err
}

func (s *stubPlanService) MarkSupplementTaken(ctx context.Context, userID uuid.UUID, supplementID uuid.UUID) (*models.DailyPlan, error) {
	return s.plan, s.err
}

func planRouter(svc service.IPlanService, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	group := router.Group("/api/v1")
	group.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
	})
	api.NewPlanHandler(svc).RegisterRoutes(group)
	return router
}

func samplePlan(userID uuid.UUID) *models.DailyPlan {
	return &models.DailyPlan{
		ID:      models.PlanID(userID, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)),
		UserID:  userID,
		Date:    "2024-03-11",
		DayType: models.DayTraining,
		Nutrition: datatypes.NewJSONType(models.NutritionPlan{
			TotalCalories: 2528,
			Macros:        models.Macros{Protein: 176, Carbs: 316, Fat: 70},
		}),
		Tip: "Warm up first.",
	}
}

func TestPlanHandlerToday(t *testing.T) {
	userID := uuid.New()
	router := planRouter(&stubPlanService{plan: samplePlan(userID)}, userID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans/today", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got models.DailyPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "2024-03-11", got.Date)
	assert.Equal(t, 2528, got.Nutrition.Data().TotalCalories)
}

func TestPlanHandlerByDateNotFound(t *testing.T) {
	userID := uuid.New()
	router := planRouter(&stubPlanService{err: service.ErrPlanNotFound}, userID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans/2024-03-10", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlanHandlerByDateInvalid(t *testing.T) {
	userID := uuid.New()
	router := planRouter(&stubPlanService{err: service.ErrInvalidDate}, userID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans/tomorrow", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlanHandlerMarkTaken(t *testing.T) {
	userID := uuid.New()
	router := planRouter(&stubPlanService{plan: samplePlan(userID)}, userID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans/today/supplements/"+uuid.NewString()+"/taken", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPlanHandlerMarkTakenBadID(t *testing.T) {
	userID := uuid.New()
	router := planRouter(&stubPlanService{plan: samplePlan(userID)}, userID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans/today/supplements/not-a-uuid/taken", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlanHandlerUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/api/v1")
	api.NewPlanHandler(&stubPlanService{}).RegisterRoutes(group)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans/today", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
