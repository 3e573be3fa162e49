package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/pulsefit/coach-backend/internal/models"
)

// Migrate runs gorm automigration for all persisted models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.TrainingDay{},
		&models.Supplement{},
		&models.DailyPlan{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
