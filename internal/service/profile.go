package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pulsefit/coach-backend/internal/models"
	"github.com/pulsefit/coach-backend/internal/types"
)

var ErrSupplementNotFound = errors.New("supplement not found")

// ProfileService handles health profiles, training schedules and the
// supplement cabinet.
type ProfileService struct {
	db *gorm.DB
}

var _ IProfileService = (*ProfileService)(nil)

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile retrieves a user's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies the provided fields to a user's profile. The request
// must already be validated.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}

	if req.WeightKG != nil {
		profile.WeightKG = *req.WeightKG
	}
	if req.HeightCM != nil {
		profile.HeightCM = *req.HeightCM
	}
	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.Gender != nil {
		profile.Gender = *req.Gender
	}
	if req.ActivityLevel != nil {
		profile.ActivityLevel = *req.ActivityLevel
	}
	if req.Objective != nil {
		profile.Objective = *req.Objective
	}

	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetTrainingDays returns the user's weekly schedule ordered by weekday.
func (s *ProfileService) GetTrainingDays(ctx context.Context, userID uuid.UUID) ([]models.TrainingDay, error) {
	var days []models.TrainingDay
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("day_of_week").Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

// ReplaceTrainingDays swaps the user's whole weekly schedule in one
// transaction.
func (s *ProfileService) ReplaceTrainingDays(ctx context.Context, userID uuid.UUID, reqs []types.TrainingDayRequest) ([]models.TrainingDay, error) {
	days := make([]models.TrainingDay, len(reqs))
	for i, r := range reqs {
		days[i] = models.TrainingDay{
			UserID:          userID,
			DayOfWeek:       r.DayOfWeek,
			Type:            r.Type,
			TimeSlot:        r.TimeSlot,
			DurationMinutes: r.DurationMinutes,
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.TrainingDay{}).Error; err != nil {
			return err
		}
		if len(days) == 0 {
			return nil
		}
		return tx.Create(&days).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to replace training days: %w", err)
	}
	return days, nil
}

// ListSupplements returns the user's supplements, available or not.
func (s *ProfileService) ListSupplements(ctx context.Context, userID uuid.UUID) ([]models.Supplement, error) {
	var supplements []models.Supplement
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&supplements).Error; err != nil {
		return nil, err
	}
	return supplements, nil
}

// CreateSupplement adds a supplement to the user's cabinet.
func (s *ProfileService) CreateSupplement(ctx context.Context, userID uuid.UUID, req *types.SupplementRequest) (*models.Supplement, error) {
	supplement := models.Supplement{
		UserID:    userID,
		Name:      req.Name,
		Type:      req.Type,
		Dosage:    req.Dosage,
		Timing:    req.Timing,
		Available: true,
	}
	if req.Available != nil {
		supplement.Available = *req.Available
	}

	if err := s.db.WithContext(ctx).Create(&supplement).Error; err != nil {
		return nil, err
	}
	return &supplement, nil
}

// UpdateSupplement modifies a supplement the user owns.
func (s *ProfileService) UpdateSupplement(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *types.SupplementRequest) (*models.Supplement, error) {
	var supplement models.Supplement
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&supplement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplementNotFound
		}
		return nil, err
	}

	supplement.Name = req.Name
	supplement.Type = req.Type
	supplement.Dosage = req.Dosage
	supplement.Timing = req.Timing
	if req.Available != nil {
		supplement.Available = *req.Available
	}

	if err := s.db.WithContext(ctx).Save(&supplement).Error; err != nil {
		return nil, err
	}
	return &supplement, nil
}

// DeleteSupplement soft-deletes a supplement the user owns.
func (s *ProfileService) DeleteSupplement(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Supplement{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSupplementNotFound
	}
	return nil
}
