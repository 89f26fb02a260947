package backend

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/handygo/tenant-client/internal/dto"
	"github.com/handygo/tenant-client/internal/models"
)

// Backend statuses are upper case with spaces.
const (
	StatusPending    = "PENDING"
	StatusAssigned   = "ASSIGNED"
	StatusInProgress = "IN PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusCancelled  = "CANCELLED"
)

var backendCategories = map[string]string{
	"plumbing":   "PLUMBING",
	"electrical": "ELECTRICAL",
	"ac":         "AC_HVAC",
	"painting":   "PAINTING",
	"carpentry":  "CARPENTRY",
	"cleaning":   "CLEANING",
	"general":    "GENERAL",
}

// BackendStatus accepts either vocabulary ("in_progress" or "IN PROGRESS").
func BackendStatus(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "_", " "))
}

// BackendCategory maps a client category key; unknown keys are upper-cased as is.
func BackendCategory(c string) string {
	key := strings.ToLower(strings.TrimSpace(c))
	if v, ok := backendCategories[key]; ok {
		return v
	}
	return strings.ToUpper(key)
}

func BackendPriority(p string) string {
	p = strings.ToUpper(strings.TrimSpace(p))
	if p == "" {
		return "MEDIUM"
	}
	return p
}

func encodePhotos(urls []string) datatypes.JSON {
	if urls == nil {
		urls = []string{}
	}
	b, _ := json.Marshal(urls)
	return datatypes.JSON(b)
}

func decodePhotos(raw datatypes.JSON) []string {
	urls := []string{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &urls)
	}
	return urls
}

func ToRequestResponse(m *models.MaintenanceRequest, t *models.Tenant) dto.RequestResponse {
	resp := dto.RequestResponse{
		RequestID:   m.ID,
		TenantID:    m.TenantID,
		CompanyID:   m.CompanyID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		Priority:    m.Priority,
		Status:      m.Status,
		PhotoURLs:   decodePhotos(m.PhotoURLs),
		Location: dto.Location{
			Address:   m.Address,
			Latitude:  m.Latitude,
			Longitude: m.Longitude,
		},
		AssignedHandymanID:   m.AssignedHandymanID,
		AssignedHandymanName: m.AssignedHandymanName,
		HandymanPhone:        m.HandymanPhone,
		EstimatedCost:        m.EstimatedCost,
		CreatedAt:            m.CreatedAt.UTC().Format(time.RFC3339),
	}
	if t != nil {
		resp.TenantName = t.Name
		resp.TenantPhone = t.Phone
	}
	if m.CompletedAt != nil {
		resp.CompletedAt = m.CompletedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func ToReviewResponse(r *models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ReviewID:     r.ID,
		JobID:        r.JobID,
		HandymanID:   r.HandymanID,
		HandymanName: r.HandymanName,
		TenantID:     r.TenantID,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
