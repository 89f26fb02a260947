package dto

// CreateReviewBody is the body of POST /reviews.
type CreateReviewBody struct {
	RequestID  string `json:"requestId"`
	HandymanID string `json:"handymanId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// ReviewResponse is the backend review shape (reviewId/jobId rather than id/requestId).
type ReviewResponse struct {
	ReviewID     string `json:"reviewId"`
	JobID        string `json:"jobId"`
	HandymanID   string `json:"handymanId"`
	HandymanName string `json:"handymanName"`
	TenantID     string `json:"tenantId"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	CreatedAt    string `json:"createdAt"`
}
