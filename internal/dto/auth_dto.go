package dto

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the flat shape the backend answers login with.
type LoginResponse struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	Name        string          `json:"name"`
	Role        string          `json:"role"`
	PhoneNumber string          `json:"phoneNumber"`
	Token       string          `json:"token"`
	Tenant      *TenantResponse `json:"tenant,omitempty"`
}

type TenantResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	PropertyAddress string `json:"propertyAddress"`
	Unit            string `json:"unit,omitempty"`
	CompanyID       string `json:"companyId,omitempty"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
