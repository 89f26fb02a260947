// Package sample holds the offline dataset the services serve when the backend
// cannot be reached. Each Repository is an isolated, mutable copy.
package sample

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/handygo/tenant-client/internal/domain"
)

type Repository struct {
	mu       sync.RWMutex
	now      func() time.Time
	requests []domain.MaintenanceRequest
	reviews  []domain.Review
}

// NewRepository seeds a fresh dataset relative to now(). A nil now uses time.Now.
func NewRepository(now func() time.Time) *Repository {
	if now == nil {
		now = time.Now
	}
	t := now().UTC()
	return &Repository{
		now:      now,
		requests: seedRequests(t),
		reviews:  seedReviews(t),
	}
}

// Login accepts only the demo account.
func (r *Repository) Login(creds domain.Credentials) (domain.AuthResult, bool) {
	if creds.Email != DemoEmail || creds.Password != DemoPassword {
		return domain.AuthResult{}, false
	}
	tenant := DemoTenant()
	return domain.AuthResult{Token: DemoToken, User: DemoUser(), Tenant: &tenant}, true
}

// Requests returns requests in dataset order, optionally filtered by status.
func (r *Repository) Requests(status domain.Status) []domain.MaintenanceRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.MaintenanceRequest, 0, len(r.requests))
	for _, req := range r.requests {
		if status == "" || req.Status == status {
			out = append(out, cloneRequest(req))
		}
	}
	return out
}

func (r *Repository) Request(id string) (domain.MaintenanceRequest, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.MaintenanceRequest{}, false
	}
	return cloneRequest(r.requests[i]), true
}

// CreateRequest synthesizes a pending request for the demo tenant and puts it first.
func (r *Repository) CreateRequest(in domain.CreateRequestInput) domain.MaintenanceRequest {
	now := r.now().UTC()
	tenant := DemoTenant()
	images := slices.Clone(in.Images)
	if images == nil {
		images = []string{}
	}
	req := domain.MaintenanceRequest{
		ID:              fmt.Sprintf("r%d", now.UnixMilli()),
		TenantID:        tenant.ID,
		TenantName:      tenant.Name,
		TenantPhone:     tenant.Phone,
		PropertyAddress: demoAddress,
		Category:        in.Category,
		Description:     in.Description,
		Images:          images,
		Priority:        in.Priority,
		Status:          domain.StatusPending,
		CreatedAt:       now,
		Lat:             demoLat,
		Lng:             demoLng,
	}

	r.mu.Lock()
	r.requests = append([]domain.MaintenanceRequest{req}, r.requests...)
	r.mu.Unlock()

	return cloneRequest(req)
}

// CancelRequest cancels a pending or assigned request. It reports the status the
// request had before the call; found is false for unknown ids.
func (r *Repository) CancelRequest(id string) (previous domain.Status, found bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return "", false
	}
	previous = r.requests[i].Status
	if previous.CanTransitionTo(domain.StatusCancelled) {
		r.requests[i].Status = domain.StatusCancelled
	}
	return previous, true
}

func (r *Repository) Reviews() []domain.Review {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.reviews)
}

// CreateReview records a review by the demo tenant.
func (r *Repository) CreateReview(in domain.CreateReviewInput) domain.Review {
	now := r.now().UTC()
	rev := domain.Review{
		ID:           fmt.Sprintf("rev%d", now.UnixMilli()),
		RequestID:    in.RequestID,
		HandymanID:   in.HandymanID,
		HandymanName: "Handyman",
		TenantID:     DemoTenant().ID,
		Rating:       in.Rating,
		Comment:      in.Comment,
		CreatedAt:    now,
	}

	r.mu.Lock()
	r.reviews = append(r.reviews, rev)
	r.mu.Unlock()

	return rev
}

func (r *Repository) indexOf(id string) int {
	return slices.IndexFunc(r.requests, func(req domain.MaintenanceRequest) bool {
		return req.ID == id
	})
}

func cloneRequest(req domain.MaintenanceRequest) domain.MaintenanceRequest {
	req.Images = slices.Clone(req.Images)
	if req.Images == nil {
		req.Images = []string{}
	}
	if req.EstimatedCost != nil {
		cost := *req.EstimatedCost
		req.EstimatedCost = &cost
	}
	if req.CompletedAt != nil {
		at := *req.CompletedAt
		req.CompletedAt = &at
	}
	return req
}
