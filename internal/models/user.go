package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a sandbox backend account. Only tenants log in through this client.
type User struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	Email       string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password    string         `gorm:"not null" json:"-"`
	FirstName   string         `gorm:"size:100" json:"firstName"`
	LastName    string         `gorm:"size:100" json:"lastName"`
	PhoneNumber string         `gorm:"size:32" json:"phoneNumber"`
	Role        string         `gorm:"size:20;default:'tenant'" json:"role"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Tenant is the occupancy record tied to a user.
type Tenant struct {
	ID              string  `gorm:"primaryKey;size:36" json:"id"`
	UserID          string  `gorm:"size:36;not null;uniqueIndex" json:"userId"`
	Name            string  `gorm:"size:200" json:"name"`
	Email           string  `gorm:"size:255" json:"email"`
	Phone           string  `gorm:"size:32" json:"phone"`
	PropertyAddress string  `gorm:"size:500" json:"propertyAddress"`
	Unit            string  `gorm:"size:50" json:"unit,omitempty"`
	CompanyID       string  `gorm:"size:36" json:"companyId,omitempty"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
}

func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
