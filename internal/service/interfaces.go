package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pulsefit/coach-backend/internal/models"
	"github.com/pulsefit/coach-backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IProfileService defines the interface for profile and schedule operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error)
	GetTrainingDays(ctx context.Context, userID uuid.UUID) ([]models.TrainingDay, error)
	ReplaceTrainingDays(ctx context.Context, userID uuid.UUID, days []types.TrainingDayRequest) ([]models.TrainingDay, error)
	ListSupplements(ctx context.Context, userID uuid.UUID) ([]models.Supplement, error)
	CreateSupplement(ctx context.Context, userID uuid.UUID, req *types.SupplementRequest) (*models.Supplement, error)
	UpdateSupplement(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *types.SupplementRequest) (*models.Supplement, error)
	DeleteSupplement(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

// IPlanService defines the interface for daily plan operations
type IPlanService interface {
	TodayPlan(ctx context.Context, userID uuid.UUID) (*models.DailyPlan, error)
	PlanByDate(ctx context.Context, userID uuid.UUID, date string) (*models.DailyPlan, error)
	MarkSupplementTaken(ctx context.Context, userID uuid.UUID, supplementID uuid.UUID) (*models.DailyPlan, error)
}
