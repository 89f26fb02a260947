package domain

import "time"

type Review struct {
	ID           string    `json:"id"`
	RequestID    string    `json:"requestId"`
	HandymanID   string    `json:"handymanId"`
	HandymanName string    `json:"handymanName"`
	TenantID     string    `json:"tenantId"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateReviewInput struct {
	RequestID  string `json:"requestId" validate:"required"`
	HandymanID string `json:"handymanId" validate:"required"`
	Rating     int    `json:"rating" validate:"min=1,max=5"`
	Comment    string `json:"comment"`
}
