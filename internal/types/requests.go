package types

import (
	"fmt"

	"github.com/pulsefit/coach-backend/internal/models"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the session token back to the client.
type AuthResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// UpdateProfileRequest is the body of PUT /profile. Pointer fields are
// optional; absent fields keep their stored value.
type UpdateProfileRequest struct {
	WeightKG      *float64              `json:"weight_kg"`
	HeightCM      *float64              `json:"height_cm"`
	Age           *int                  `json:"age"`
	Gender        *models.Gender        `json:"gender"`
	ActivityLevel *models.ActivityLevel `json:"activity_level"`
	Objective     *models.Objective     `json:"objective"`
}

// Validate rejects degenerate numeric values at the boundary so the planner
// never sees them. The planner itself stays permissive.
func (r *UpdateProfileRequest) Validate() error {
	if r.WeightKG != nil && *r.WeightKG <= 0 {
		return fmt.Errorf("weight_kg must be positive")
	}
	if r.HeightCM != nil && *r.HeightCM <= 0 {
		return fmt.Errorf("height_cm must be positive")
	}
	if r.Age != nil && *r.Age <= 0 {
		return fmt.Errorf("age must be positive")
	}
	if r.Gender != nil && *r.Gender != models.GenderMale && *r.Gender != models.GenderFemale {
		return fmt.Errorf("gender must be male or female")
	}
	return nil
}

// TrainingDayRequest is one entry of PUT /profile/training-days.
type TrainingDayRequest struct {
	DayOfWeek       int                 `json:"day_of_week" binding:"min=0,max=6"`
	Type            string              `json:"type" binding:"required"`
	TimeSlot        models.TrainingSlot `json:"time_slot" binding:"required,oneof=morning afternoon evening"`
	DurationMinutes int                 `json:"duration_minutes" binding:"required,gt=0"`
}

// SupplementRequest is the body of POST /supplements and PUT /supplements/:id.
type SupplementRequest struct {
	Name      string                `json:"name" binding:"required,max=100"`
	Type      models.SupplementType `json:"type" binding:"required,oneof=protein creatine pre_workout post_workout fat_burner multivitamin other"`
	Dosage    string                `json:"dosage" binding:"max=100"`
	Timing    string                `json:"timing" binding:"max=100"`
	Available *bool                 `json:"available"`
}
