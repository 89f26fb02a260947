package dto

// CreateRequestBody is the backend's CreateRequestDTO.
type CreateRequestBody struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Priority    string   `json:"priority"`
	PhotoURLs   []string `json:"photoUrls"`
}

type Location struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RequestResponse is the backend's MaintenanceRequest shape, which differs from the client model.
type RequestResponse struct {
	RequestID            string   `json:"requestId"`
	TenantID             string   `json:"tenantId"`
	TenantName           string   `json:"tenantName"`
	TenantPhone          string   `json:"tenantPhone"`
	CompanyID            string   `json:"companyId,omitempty"`
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	Category             string   `json:"category"`
	Priority             string   `json:"priority"`
	Status               string   `json:"status"`
	PhotoURLs            []string `json:"photoUrls"`
	Location             Location `json:"location"`
	AssignedHandymanID   string   `json:"assignedHandymanId,omitempty"`
	AssignedHandymanName string   `json:"assignedHandymanName,omitempty"`
	HandymanPhone        string   `json:"handymanPhone,omitempty"`
	EstimatedCost        *float64 `json:"estimatedCost,omitempty"`
	CreatedAt            string   `json:"createdAt"`
	CompletedAt          string   `json:"completedAt,omitempty"`
}
