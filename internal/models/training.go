package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrainingSlot is the time of day a session is scheduled for.
type TrainingSlot string

const (
	SlotMorning   TrainingSlot = "morning"
	SlotAfternoon TrainingSlot = "afternoon"
	SlotEvening   TrainingSlot = "evening"
)

// TrainingDay is one entry of a user's weekly training schedule.
// DayOfWeek follows time.Weekday numbering (0 = Sunday).
type TrainingDay struct {
	ID              uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	DayOfWeek       int            `gorm:"not null;check:day_of_week >= 0 AND day_of_week <= 6" json:"day_of_week"`
	Type            string         `gorm:"size:50;not null" json:"type"`
	TimeSlot        TrainingSlot   `gorm:"size:20;not null;default:'evening'" json:"time_slot"`
	DurationMinutes int            `gorm:"not null;default:60" json:"duration_minutes"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (d *TrainingDay) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
