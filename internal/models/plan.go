package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DayType classifies a calendar day against the user's training schedule.
type DayType string

const (
	DayTraining DayType = "training"
	DayRest     DayType = "rest"
)

// Macros is a set of macronutrient targets in grams.
type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// Food is a single portion inside a meal. Quantity is in grams unless Unit
// says otherwise.
type Food struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Calories int     `json:"calories"`
	Macros   Macros  `json:"macros"`
}

// Meal is one named slot of the day with its foods and calorie share.
type Meal struct {
	Name     string `json:"name"`
	Time     string `json:"time"`
	Foods    []Food `json:"foods"`
	Calories int    `json:"calories"`
	Macros   Macros `json:"macros"`
}

// NutritionPlan is the food half of a daily plan.
type NutritionPlan struct {
	TotalCalories int    `json:"total_calories"`
	Macros        Macros `json:"macros"`
	Meals         []Meal `json:"meals"`
}

// ScheduledSupplement is one supplement placed into an intake slot.
type ScheduledSupplement struct {
	SupplementID uuid.UUID      `json:"supplement_id"`
	Name         string         `json:"name"`
	Type         SupplementType `json:"type"`
	Dosage       string         `json:"dosage"`
	Time         string         `json:"time"`
	Taken        bool           `json:"taken"`
}

// SupplementPlan buckets the day's supplements into four fixed slots.
type SupplementPlan struct {
	Morning     []ScheduledSupplement `json:"morning"`
	PreWorkout  []ScheduledSupplement `json:"pre_workout"`
	PostWorkout []ScheduledSupplement `json:"post_workout"`
	Evening     []ScheduledSupplement `json:"evening"`
}

// Slots returns pointers to the four buckets in intake order.
func (p *SupplementPlan) Slots() []*[]ScheduledSupplement {
	return []*[]ScheduledSupplement{&p.Morning, &p.PreWorkout, &p.PostWorkout, &p.Evening}
}

// DailyPlan is the generator's output, one row per user per calendar day.
// The primary key is "{userID}_{YYYY-MM-DD}" so regeneration upserts instead
// of duplicating.
type DailyPlan struct {
	ID          string                                `gorm:"primarykey;size:100" json:"id"`
	UserID      uuid.UUID                             `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Date        string                                `gorm:"size:10;not null" json:"date"`
	DayType     DayType                               `gorm:"size:10;not null" json:"day_type"`
	Nutrition   datatypes.JSONType[NutritionPlan]     `json:"nutrition"`
	Supplements datatypes.JSONType[SupplementPlan]    `json:"supplements"`
	Tip         string                                `gorm:"type:text" json:"tip"`
	Completed   bool                                  `gorm:"not null;default:false" json:"completed"`
	CreatedAt   time.Time                             `json:"created_at"`
	UpdatedAt   time.Time                             `json:"updated_at"`
}

// PlanID builds the deterministic plan key for a user and date.
func PlanID(userID uuid.UUID, date time.Time) string {
	return userID.String() + "_" + date.Format("2006-01-02")
}
