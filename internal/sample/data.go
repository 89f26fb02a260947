package sample

import (
	"time"

	"github.com/handygo/tenant-client/internal/domain"
)

// Demo account accepted by the offline login.
const (
	DemoEmail    = "tenant@handygo.ae"
	DemoPassword = "tenant123"
	DemoToken    = "mock-tenant-token"
)

const (
	demoAddress = "Marina Towers, Apt 1204"
	demoLat     = 25.0780
	demoLng     = 55.1350
)

func DemoUser() domain.User {
	return domain.User{
		ID:        "tu1",
		Email:     DemoEmail,
		FirstName: "Sarah",
		LastName:  "Johnson",
		Phone:     "+971551234567",
		Role:      domain.RoleTenant,
	}
}

func DemoTenant() domain.Tenant {
	return domain.Tenant{
		ID:              "t1",
		UserID:          "tu1",
		Name:            "Sarah Johnson",
		Email:           DemoEmail,
		Phone:           "+971551234567",
		PropertyAddress: "Marina Towers, Apt 1204, Dubai Marina",
		Unit:            "1204",
	}
}

func seedRequests(now time.Time) []domain.MaintenanceRequest {
	tenant := DemoTenant()
	base := func(id string, cat domain.Category, prio domain.Priority, status domain.Status, desc string, age time.Duration) domain.MaintenanceRequest {
		return domain.MaintenanceRequest{
			ID:              id,
			TenantID:        tenant.ID,
			TenantName:      tenant.Name,
			TenantPhone:     tenant.Phone,
			PropertyAddress: demoAddress,
			Category:        cat,
			Description:     desc,
			Images:          []string{},
			Priority:        prio,
			Status:          status,
			CreatedAt:       now.Add(-age),
			Lat:             demoLat,
			Lng:             demoLng,
		}
	}

	r1 := base("r1", domain.CategoryPlumbing, domain.PriorityHigh, domain.StatusInProgress,
		"Kitchen sink is leaking under the cabinet. Water pooling on the floor.", time.Hour)
	r1.AssignedHandymanID = "h1"
	r1.AssignedHandymanName = "Mohammed Al-Rashid"
	r1.HandymanPhone = "+971501112233"
	cost := 250.0
	r1.EstimatedCost = &cost

	r2 := base("r2", domain.CategoryAC, domain.PriorityMedium, domain.StatusAssigned,
		"AC unit in bedroom not cooling properly. Making unusual noise.", 24*time.Hour)
	r2.AssignedHandymanID = "h2"
	r2.AssignedHandymanName = "Ahmed Hassan"
	r2.HandymanPhone = "+971501234567"

	r3 := base("r3", domain.CategoryElectrical, domain.PriorityUrgent, domain.StatusPending,
		"Power outlet in living room sparking when plugging in devices.", 2*time.Hour)

	r4 := base("r4", domain.CategoryPainting, domain.PriorityLow, domain.StatusCompleted,
		"Wall paint peeling in bathroom due to moisture.", 7*24*time.Hour)
	r4.AssignedHandymanID = "h3"
	r4.AssignedHandymanName = "Omar Farooq"
	completed := now.Add(-3 * 24 * time.Hour)
	r4.CompletedAt = &completed

	return []domain.MaintenanceRequest{r1, r2, r3, r4}
}

func seedReviews(now time.Time) []domain.Review {
	return []domain.Review{{
		ID:           "rev1",
		RequestID:    "r4",
		HandymanID:   "h3",
		HandymanName: "Omar Farooq",
		TenantID:     DemoTenant().ID,
		Rating:       5,
		Comment:      "Excellent work, very professional!",
		CreatedAt:    now.Add(-3 * 24 * time.Hour),
	}}
}
