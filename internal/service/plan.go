package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pulsefit/coach-backend/internal/models"
	"github.com/pulsefit/coach-backend/internal/planner"
)

var (
	ErrPlanNotFound = errors.New("plan not found")
	ErrInvalidDate  = errors.New("invalid date")
)

// PlanService generates, caches and updates daily plans. The database is the
// source of truth; redis holds a same-day copy keyed by plan id. A nil cache
// client disables caching (unit tests run without redis).
type PlanService struct {
	db        *gorm.DB
	cache     *redis.Client
	generator *planner.Generator
	now       func() time.Time
}

var _ IPlanService = (*PlanService)(nil)
var _ planner.PlanStore = (*PlanService)(nil)

// PlanOption customizes a PlanService.
type PlanOption func(*PlanService)

// WithPlanClock overrides the time source, shared with the generator.
func WithPlanClock(now func() time.Time) PlanOption {
	return func(s *PlanService) { s.now = now }
}

func NewPlanService(db *gorm.DB, cache *redis.Client, opts ...PlanOption) *PlanService {
	s := &PlanService{
		db:    db,
		cache: cache,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.generator = planner.NewGenerator(s, planner.WithClock(s.now))
	return s
}

// SavePlan upserts a plan by id and refreshes the cache. Concurrent
// generations for the same user and day resolve to last-write-wins.
func (s *PlanService) SavePlan(ctx context.Context, plan *models.DailyPlan) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(plan).Error
	if err != nil {
		return err
	}
	s.cachePlan(ctx, plan)
	return nil
}

// TodayPlan returns today's plan, generating and persisting one if none
// exists yet. A missing plan is not an error here; it is the trigger to
// generate.
func (s *PlanService) TodayPlan(ctx context.Context, userID uuid.UUID) (*models.DailyPlan, error) {
	id := models.PlanID(userID, s.now())

	if plan := s.cachedPlan(ctx, id); plan != nil {
		return plan, nil
	}

	var plan models.DailyPlan
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error
	if err == nil {
		s.cachePlan(ctx, &plan)
		return &plan, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return s.generate(ctx, userID)
}

// PlanByDate returns the stored plan for a past or present date. It never
// generates; historic days stay as they were.
func (s *PlanService) PlanByDate(ctx context.Context, userID uuid.UUID, date string) (*models.DailyPlan, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	id := models.PlanID(userID, parsed)

	if plan := s.cachedPlan(ctx, id); plan != nil {
		return plan, nil
	}

	var plan models.DailyPlan
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// MarkSupplementTaken flips the taken flag on one supplement entry in
// today's plan and derives the plan's completed flag. Past plans are never
// touched.
func (s *PlanService) MarkSupplementTaken(ctx context.Context, userID uuid.UUID, supplementID uuid.UUID) (*models.DailyPlan, error) {
	id := models.PlanID(userID, s.now())

	var plan models.DailyPlan
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	supplements := plan.Supplements.Data()
	found := false
	allTaken := true
	for _, slot := range supplements.Slots() {
		for i := range *slot {
			if (*slot)[i].SupplementID == supplementID {
				(*slot)[i].Taken = true
				found = true
			}
			if !(*slot)[i].Taken {
				allTaken = false
			}
		}
	}
	if !found {
		return nil, ErrSupplementNotFound
	}

	plan.Supplements = datatypes.NewJSONType(supplements)
	plan.Completed = allTaken

	if err := s.db.WithContext(ctx).Save(&plan).Error; err != nil {
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}
	s.cachePlan(ctx, &plan)
	return &plan, nil
}

// generate assembles planner input from stored state and runs the generator.
func (s *PlanService) generate(ctx context.Context, userID uuid.UUID) (*models.DailyPlan, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	var days []models.TrainingDay
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&days).Error; err != nil {
		return nil, fmt.Errorf("failed to load training days: %w", err)
	}

	var supplements []models.Supplement
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&supplements).Error; err != nil {
		return nil, fmt.Errorf("failed to load supplements: %w", err)
	}

	dayType, trainingDay := planner.DayTypeFor(days, s.now())

	return s.generator.Generate(ctx, planner.Input{
		UserID:      userID,
		Profile:     &profile,
		Supplements: supplements,
		DayType:     dayType,
		TrainingDay: trainingDay,
	})
}

// cachePlan writes the plan through to redis with an end-of-day TTL.
func (s *PlanService) cachePlan(ctx context.Context, plan *models.DailyPlan) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(plan)
	if err != nil {
		return
	}
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	if err := s.cache.Set(ctx, cacheKey(plan.ID), data, midnight.Sub(now)).Err(); err != nil {
		log.Printf("Failed to cache plan %s: %v", plan.ID, err)
	}
}

// cachedPlan returns the cached plan or nil; cache failures fall through to
// the database.
func (s *PlanService) cachedPlan(ctx context.Context, id string) *models.DailyPlan {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		return nil
	}
	var plan models.DailyPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil
	}
	return &plan
}

func cacheKey(planID string) string {
	return "plan:" + planID
}
