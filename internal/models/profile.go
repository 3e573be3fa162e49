package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gender values accepted by the calorie calculator.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel describes habitual activity outside of scheduled training.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Objective selects the calorie multiplier and macro ratios for plan generation.
type Objective string

const (
	ObjectiveCutting       Objective = "cutting"
	ObjectiveRecomposition Objective = "recomposition"
	ObjectiveMaintenance   Objective = "maintenance"
)

// UserProfile holds the health and goal data the plan generator consumes.
type UserProfile struct {
	ID            uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID        uuid.UUID      `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	Username      string         `gorm:"size:50;not null;uniqueIndex" json:"username"`
	WeightKG      float64        `gorm:"not null;default:0" json:"weight_kg"`
	HeightCM      float64        `gorm:"not null;default:0" json:"height_cm"`
	Age           int            `gorm:"not null;default:0" json:"age"`
	Gender        Gender         `gorm:"size:10;not null;default:'male'" json:"gender"`
	ActivityLevel ActivityLevel  `gorm:"size:20;not null;default:'sedentary'" json:"activity_level"`
	Objective     Objective      `gorm:"size:20;not null;default:'maintenance'" json:"objective"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
