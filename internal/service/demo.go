package service

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pulsefit/coach-backend/internal/models"
)

const (
	DemoEmail    = "demo@pulsefit.app"
	demoPassword = "demo-password"
)

// SeedDemoUser creates a ready-to-use demo account with a filled profile,
// a three-day split and a small supplement cabinet. Idempotent: an existing
// demo user is left untouched.
func SeedDemoUser(ctx context.Context, db *gorm.DB) error {
	var existing models.User
	if err := db.WithContext(ctx).Where("email = ?", DemoEmail).First(&existing).Error; err == nil {
		log.Printf("Demo user already present, skipping seed")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Name:         "Demo User",
			Email:        DemoEmail,
			PasswordHash: string(hashed),
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		profile := models.UserProfile{
			UserID:        user.ID,
			Username:      "demo",
			WeightKG:      80,
			HeightCM:      180,
			Age:           30,
			Gender:        models.GenderMale,
			ActivityLevel: models.ActivityModerate,
			Objective:     models.ObjectiveCutting,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		days := []models.TrainingDay{
			{UserID: user.ID, DayOfWeek: 1, Type: "push", TimeSlot: models.SlotEvening, DurationMinutes: 60},
			{UserID: user.ID, DayOfWeek: 3, Type: "pull", TimeSlot: models.SlotEvening, DurationMinutes: 60},
			{UserID: user.ID, DayOfWeek: 5, Type: "legs", TimeSlot: models.SlotMorning, DurationMinutes: 75},
		}
		if err := tx.Create(&days).Error; err != nil {
			return err
		}

		supplements := []models.Supplement{
			{UserID: user.ID, Name: "Whey protein", Type: models.SupplementProtein, Dosage: "30g", Available: true},
			{UserID: user.ID, Name: "Creatine monohydrate", Type: models.SupplementCreatine, Dosage: "5g", Available: true},
			{UserID: user.ID, Name: "Multivitamin", Type: models.SupplementMultivitamin, Dosage: "1 tablet", Available: true},
		}
		return tx.Create(&supplements).Error
	})
}
