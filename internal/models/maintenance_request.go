package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MaintenanceRequest is stored in the backend's own vocabulary: upper-case
// categories such as AC_HVAC and statuses such as "IN PROGRESS".
type MaintenanceRequest struct {
	ID                   string         `gorm:"primaryKey;size:36" json:"requestId"`
	TenantID             string         `gorm:"size:36;not null;index" json:"tenantId"`
	CompanyID            string         `gorm:"size:36" json:"companyId,omitempty"`
	Title                string         `gorm:"size:200" json:"title"`
	Description          string         `gorm:"type:text" json:"description"`
	Category             string         `gorm:"size:30;not null" json:"category"`
	Priority             string         `gorm:"size:20;not null" json:"priority"`
	Status               string         `gorm:"size:20;not null;index" json:"status"`
	PhotoURLs            datatypes.JSON `json:"photoUrls"`
	Address              string         `gorm:"size:500" json:"address"`
	Latitude             float64        `json:"latitude"`
	Longitude            float64        `json:"longitude"`
	AssignedHandymanID   string         `gorm:"size:36" json:"assignedHandymanId,omitempty"`
	AssignedHandymanName string         `gorm:"size:200" json:"assignedHandymanName,omitempty"`
	HandymanPhone        string         `gorm:"size:32" json:"handymanPhone,omitempty"`
	EstimatedCost        *float64       `json:"estimatedCost,omitempty"`
	CompletedAt          *time.Time     `json:"completedAt,omitempty"`
	CreatedAt            time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
}

func (r *MaintenanceRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
