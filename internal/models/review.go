package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID           string    `gorm:"primaryKey;size:36" json:"reviewId"`
	JobID        string    `gorm:"size:36;not null;index" json:"jobId"`
	HandymanID   string    `gorm:"size:36;index" json:"handymanId"`
	HandymanName string    `gorm:"size:200" json:"handymanName"`
	TenantID     string    `gorm:"size:36;not null;index" json:"tenantId"`
	Rating       int       `gorm:"not null" json:"rating"`
	Comment      string    `gorm:"type:text" json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
