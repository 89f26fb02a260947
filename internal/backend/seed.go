package backend

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/handygo/tenant-client/internal/models"
)

const (
	DemoEmail    = "tenant@handygo.ae"
	DemoPassword = "tenant123"
)

// Seed creates the demo account with its four requests and one review. It does
// nothing when the demo account already exists.
func Seed(db *gorm.DB, now time.Time) error {
	var existing models.User
	err := db.Where("email = ?", DemoEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up demo account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Email:       DemoEmail,
			Password:    string(hash),
			FirstName:   "Sarah",
			LastName:    "Johnson",
			PhoneNumber: "+971551234567",
			Role:        "tenant",
		}
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create demo user: %w", err)
		}

		t := models.Tenant{
			UserID:          user.ID,
			Name:            "Sarah Johnson",
			Email:           DemoEmail,
			Phone:           "+971551234567",
			PropertyAddress: "Marina Towers, Apt 1204",
			Unit:            "1204",
			Latitude:        25.0780,
			Longitude:       55.1350,
		}
		if err := tx.Create(&t).Error; err != nil {
			return fmt.Errorf("failed to create demo tenant: %w", err)
		}

		requests := demoRequests(&t, now)
		if err := tx.Create(&requests).Error; err != nil {
			return fmt.Errorf("failed to seed requests: %w", err)
		}

		painting := requests[3]
		review := models.Review{
			JobID:        painting.ID,
			HandymanID:   painting.AssignedHandymanID,
			HandymanName: painting.AssignedHandymanName,
			TenantID:     t.ID,
			Rating:       5,
			Comment:      "Excellent work, very professional!",
			CreatedAt:    now.Add(-3 * 24 * time.Hour),
		}
		if err := tx.Create(&review).Error; err != nil {
			return fmt.Errorf("failed to seed review: %w", err)
		}

		slog.Info("sandbox seeded", "email", DemoEmail, "requests", len(requests))
		return nil
	})
}

func demoRequests(t *models.Tenant, now time.Time) []models.MaintenanceRequest {
	base := func(title, desc, category, priority, status string, age time.Duration) models.MaintenanceRequest {
		return models.MaintenanceRequest{
			TenantID:    t.ID,
			Title:       title,
			Description: desc,
			Category:    category,
			Priority:    priority,
			Status:      status,
			PhotoURLs:   encodePhotos(nil),
			Address:     t.PropertyAddress,
			Latitude:    t.Latitude,
			Longitude:   t.Longitude,
			CreatedAt:   now.Add(-age),
		}
	}

	sink := base("Leaking kitchen sink", "Kitchen sink is leaking under the cabinet. Water pooling on the floor.",
		"PLUMBING", "HIGH", StatusInProgress, time.Hour)
	sink.AssignedHandymanID = "h1"
	sink.AssignedHandymanName = "Mohammed Al-Rashid"
	sink.HandymanPhone = "+971501112233"
	cost := 250.0
	sink.EstimatedCost = &cost

	ac := base("Bedroom AC not cooling", "AC unit in bedroom not cooling properly. Making unusual noise.",
		"AC_HVAC", "MEDIUM", StatusAssigned, 24*time.Hour)
	ac.AssignedHandymanID = "h2"
	ac.AssignedHandymanName = "Ahmed Hassan"
	ac.HandymanPhone = "+971501234567"

	outlet := base("Sparking power outlet", "Power outlet in living room sparking when plugging in devices.",
		"ELECTRICAL", "URGENT", StatusPending, 2*time.Hour)

	paint := base("Peeling bathroom paint", "Wall paint peeling in bathroom due to moisture.",
		"PAINTING", "LOW", StatusCompleted, 7*24*time.Hour)
	paint.AssignedHandymanID = "h3"
	paint.AssignedHandymanName = "Omar Farooq"
	done := now.Add(-3 * 24 * time.Hour)
	paint.CompletedAt = &done

	return []models.MaintenanceRequest{sink, ac, outlet, paint}
}
