package domain

import "time"

type Category string

const (
	CategoryPlumbing   Category = "plumbing"
	CategoryElectrical Category = "electrical"
	CategoryAC         Category = "ac"
	CategoryPainting   Category = "painting"
	CategoryCarpentry  Category = "carpentry"
	CategoryCleaning   Category = "cleaning"
	CategoryGeneral    Category = "general"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Default coordinate used when the backend omits a location (Dubai city centre).
const (
	DefaultLat = 25.2048
	DefaultLng = 55.2708
)

var statusTransitions = map[Status][]Status{
	StatusPending:    {StatusAssigned, StatusCancelled},
	StatusAssigned:   {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted},
}

// CanTransitionTo reports whether next is a legal forward step from s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Active is true for requests still waiting on work: pending, assigned or in progress.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusAssigned || s == StatusInProgress
}

type MaintenanceRequest struct {
	ID                   string     `json:"id"`
	TenantID             string     `json:"tenantId"`
	TenantName           string     `json:"tenantName"`
	TenantPhone          string     `json:"tenantPhone"`
	CompanyID            string     `json:"companyId,omitempty"`
	PropertyAddress      string     `json:"propertyAddress"`
	Category             Category   `json:"category"`
	Description          string     `json:"description"`
	Images               []string   `json:"images"`
	Priority             Priority   `json:"priority"`
	Status               Status     `json:"status"`
	CreatedAt            time.Time  `json:"createdAt"`
	AssignedHandymanID   string     `json:"assignedHandymanId,omitempty"`
	AssignedHandymanName string     `json:"assignedHandymanName,omitempty"`
	HandymanPhone        string     `json:"handymanPhone,omitempty"`
	Lat                  float64    `json:"lat"`
	Lng                  float64    `json:"lng"`
	EstimatedCost        *float64   `json:"estimatedCost,omitempty"`
	CompletedAt          *time.Time `json:"completedAt,omitempty"`
}

// CanCancel mirrors the transition table: only pending and assigned requests may be cancelled.
func (r *MaintenanceRequest) CanCancel() bool {
	return r.Status.CanTransitionTo(StatusCancelled)
}

// CanRate is true once the work is completed by an assigned handyman.
func (r *MaintenanceRequest) CanRate() bool {
	return r.Status == StatusCompleted && r.AssignedHandymanID != ""
}

type CreateRequestInput struct {
	Category    Category `json:"category" validate:"required,oneof=plumbing electrical ac painting carpentry cleaning general"`
	Description string   `json:"description" validate:"required"`
	Priority    Priority `json:"priority" validate:"required,oneof=low medium high urgent"`
	Images      []string `json:"images"`
}
