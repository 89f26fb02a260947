package domain

const RoleTenant = "tenant"

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

// FullName joins first and last name, skipping empty parts.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

type Tenant struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	PropertyAddress string `json:"propertyAddress"`
	Unit            string `json:"unit,omitempty"`
	CompanyID       string `json:"companyId,omitempty"`
}

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResult struct {
	Token  string  `json:"token"`
	User   User    `json:"user"`
	Tenant *Tenant `json:"tenant,omitempty"`
}

// Session is what survives a restart: the stored user and, when known, the tenant record.
type Session struct {
	User   User
	Tenant *Tenant
}
