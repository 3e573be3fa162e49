package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupplementType drives the scheduler's slot routing.
type SupplementType string

const (
	SupplementProtein      SupplementType = "protein"
	SupplementCreatine     SupplementType = "creatine"
	SupplementPreWorkout   SupplementType = "pre_workout"
	SupplementPostWorkout  SupplementType = "post_workout"
	SupplementFatBurner    SupplementType = "fat_burner"
	SupplementMultivitamin SupplementType = "multivitamin"
	SupplementOther        SupplementType = "other"
)

// Supplement is one product a user owns. Only Available supplements are
// scheduled into daily plans.
type Supplement struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Type      SupplementType `gorm:"size:20;not null;default:'other'" json:"type"`
	Dosage    string         `gorm:"size:100" json:"dosage"`
	Timing    string         `gorm:"size:100" json:"timing"`
	Available bool           `gorm:"not null;default:true" json:"available"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *Supplement) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
