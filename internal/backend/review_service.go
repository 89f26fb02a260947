package backend

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/handygo/tenant-client/internal/apperr"
	"github.com/handygo/tenant-client/internal/dto"
	"github.com/handygo/tenant-client/internal/models"
	"github.com/handygo/tenant-client/internal/tenant"
)

var (
	ErrNotReviewable    = apperr.Conflict("only completed requests can be reviewed")
	ErrHandymanMismatch = apperr.BadRequest("handymanId does not match the handyman assigned to this request", nil)
)

type ReviewService struct {
	db       *gorm.DB
	requests *RequestService
	filter   *ContentFilter
}

func NewReviewService(db *gorm.DB, requests *RequestService, filter *ContentFilter) *ReviewService {
	return &ReviewService{db: db, requests: requests, filter: filter}
}

func (s *ReviewService) List(t *models.Tenant) ([]dto.ReviewResponse, error) {
	var rows []models.Review
	if err := s.db.Scopes(tenant.ForTenant(t.ID)).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	out := make([]dto.ReviewResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToReviewResponse(&rows[i]))
	}
	return out, nil
}

// Create stores a rating for one of the tenant's completed jobs. The handyman is
// taken from the job; a body naming someone else is rejected.
func (s *ReviewService) Create(t *models.Tenant, body *dto.CreateReviewBody) (*dto.ReviewResponse, error) {
	if body.Rating < 1 || body.Rating > 5 {
		return nil, apperr.BadRequest("rating must be between 1 and 5", nil)
	}
	comment := strings.TrimSpace(body.Comment)
	if ok, reason := s.filter.Check(comment); !ok {
		return nil, apperr.BadRequest(s.filter.RejectionMessage(reason), nil)
	}

	job, err := s.requests.find(t.ID, body.RequestID)
	if err != nil {
		return nil, err
	}
	if job.Status != StatusCompleted || job.AssignedHandymanID == "" {
		return nil, ErrNotReviewable
	}
	if body.HandymanID != "" && body.HandymanID != job.AssignedHandymanID {
		return nil, ErrHandymanMismatch
	}

	review := models.Review{
		JobID:        job.ID,
		HandymanID:   job.AssignedHandymanID,
		HandymanName: job.AssignedHandymanName,
		TenantID:     t.ID,
		Rating:       body.Rating,
		Comment:      comment,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	resp := ToReviewResponse(&review)
	return &resp, nil
}
