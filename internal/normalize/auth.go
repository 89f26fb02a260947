package normalize

import "github.com/handygo/tenant-client/internal/domain"

// syntheticTokenPrefix marks tokens made up when the backend omits one. Such a token
// only keeps the session alive locally; it authenticates nothing.
const syntheticTokenPrefix = "backend-"

// Auth accepts either a flat user object or a {user: {...}} wrapper.
func Auth(raw map[string]any) domain.AuthResult {
	src := raw
	if nested := object(raw["user"]); nested != nil {
		src = nested
	}

	user := domain.User{
		ID:        firstText(src, "id"),
		Email:     firstText(src, "email"),
		FirstName: firstText(src, "firstName"),
		LastName:  firstText(src, "lastName"),
		Phone:     firstText(src, "phoneNumber", "phone"),
		Role:      textOr(first(src, "role"), domain.RoleTenant),
	}

	res := domain.AuthResult{
		Token: firstText(raw, "token"),
		User:  user,
	}
	if res.Token == "" {
		res.Token = syntheticTokenPrefix + user.ID
	}
	if t := object(raw["tenant"]); t != nil {
		tenant := Tenant(t)
		res.Tenant = &tenant
	}
	return res
}

func Tenant(raw map[string]any) domain.Tenant {
	return domain.Tenant{
		ID:              firstText(raw, "id"),
		UserID:          firstText(raw, "userId"),
		Name:            firstText(raw, "name"),
		Email:           firstText(raw, "email"),
		Phone:           firstText(raw, "phone"),
		PropertyAddress: firstText(raw, "propertyAddress"),
		Unit:            firstText(raw, "unit"),
		CompanyID:       firstText(raw, "companyId"),
	}
}
