package backend

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/handygo/tenant-client/internal/apperr"
	"github.com/handygo/tenant-client/internal/dto"
	"github.com/handygo/tenant-client/internal/models"
	"github.com/handygo/tenant-client/internal/tenant"
)

var (
	ErrRequestNotFound = apperr.NotFound("request", nil)
	ErrNotCancellable  = apperr.Conflict("only pending or assigned requests can be cancelled")
)

type RequestService struct {
	db     *gorm.DB
	filter *ContentFilter
}

func NewRequestService(db *gorm.DB, filter *ContentFilter) *RequestService {
	return &RequestService{db: db, filter: filter}
}

// List returns the tenant's requests newest first. status may use either vocabulary.
func (s *RequestService) List(t *models.Tenant, status string) ([]dto.RequestResponse, error) {
	query := s.db.Scopes(tenant.ForTenant(t.ID))
	if status != "" {
		query = query.Where("status = ?", BackendStatus(status))
	}

	var rows []models.MaintenanceRequest
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	out := make([]dto.RequestResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToRequestResponse(&rows[i], t))
	}
	return out, nil
}

func (s *RequestService) Get(t *models.Tenant, id string) (*dto.RequestResponse, error) {
	m, err := s.find(t.ID, id)
	if err != nil {
		return nil, err
	}
	resp := ToRequestResponse(m, t)
	return &resp, nil
}

func (s *RequestService) Create(t *models.Tenant, body *dto.CreateRequestBody) (*dto.RequestResponse, error) {
	description := strings.TrimSpace(body.Description)
	if description == "" {
		return nil, apperr.BadRequest("description is required", nil)
	}
	if body.Category == "" {
		return nil, apperr.BadRequest("category is required", nil)
	}
	if ok, reason := s.filter.Check(description); !ok {
		return nil, apperr.BadRequest(s.filter.RejectionMessage(reason), nil)
	}

	title := strings.TrimSpace(body.Title)
	if title == "" {
		title = truncateRunes(description, 50)
	}

	m := models.MaintenanceRequest{
		TenantID:    t.ID,
		CompanyID:   t.CompanyID,
		Title:       title,
		Description: description,
		Category:    BackendCategory(body.Category),
		Priority:    BackendPriority(body.Priority),
		Status:      StatusPending,
		PhotoURLs:   encodePhotos(body.PhotoURLs),
		Address:     t.PropertyAddress,
		Latitude:    t.Latitude,
		Longitude:   t.Longitude,
	}
	if err := s.db.Create(&m).Error; err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp := ToRequestResponse(&m, t)
	return &resp, nil
}

// Cancel moves a pending or assigned request to cancelled. Cancelling twice is a no-op.
func (s *RequestService) Cancel(t *models.Tenant, id string) (*dto.RequestResponse, error) {
	m, err := s.find(t.ID, id)
	if err != nil {
		return nil, err
	}

	switch m.Status {
	case StatusCancelled:
	case StatusPending, StatusAssigned:
		if err := s.db.Model(m).Update("status", StatusCancelled).Error; err != nil {
			return nil, fmt.Errorf("failed to cancel request: %w", err)
		}
		m.Status = StatusCancelled
	default:
		return nil, ErrNotCancellable
	}

	resp := ToRequestResponse(m, t)
	return &resp, nil
}

func (s *RequestService) find(tenantID, id string) (*models.MaintenanceRequest, error) {
	var m models.MaintenanceRequest
	err := s.db.Scopes(tenant.ForTenant(tenantID)).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load request: %w", err)
	}
	return &m, nil
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
