// Package normalize maps loosely typed backend JSON onto the canonical client model.
// Every function here is total: missing or mistyped fields fall back to defaults.
package normalize

import (
	"strings"

	"github.com/handygo/tenant-client/internal/domain"
	"github.com/handygo/tenant-client/internal/dto"
)

const titleDescriptionLimit = 50

// Request maps one backend request object. Field precedence is fixed per field;
// see the package tests for the accepted historical shapes.
func Request(raw map[string]any) domain.MaintenanceRequest {
	location := object(raw["location"])

	category := strings.ToLower(textOr(first(raw, "category"), string(domain.CategoryGeneral)))
	category = strings.Replace(category, "ac_hvac", "ac", 1)

	status := strings.ToLower(textOr(first(raw, "status"), string(domain.StatusPending)))
	status = strings.ReplaceAll(status, " ", "_")

	images := stringList(first(raw, "photoUrls", "images"))
	if images == nil {
		images = []string{}
	}

	req := domain.MaintenanceRequest{
		ID:                   firstText(raw, "requestId", "id"),
		TenantID:             firstText(raw, "tenantId"),
		TenantName:           firstText(raw, "tenantName"),
		TenantPhone:          firstText(raw, "tenantPhone"),
		CompanyID:            firstText(raw, "companyId"),
		PropertyAddress:      firstText(location, "address"),
		Category:             domain.Category(category),
		Description:          firstText(raw, "description", "title"),
		Images:               images,
		Priority:             domain.Priority(strings.ToLower(textOr(first(raw, "priority"), string(domain.PriorityMedium)))),
		Status:               domain.Status(status),
		CreatedAt:            timestampOrNow(raw["createdAt"]),
		AssignedHandymanID:   firstText(raw, "assignedHandymanId"),
		AssignedHandymanName: firstText(raw, "assignedHandymanName"),
		HandymanPhone:        firstText(raw, "handymanPhone"),
		Lat:                  coordinate(location, raw, "latitude", "lat", domain.DefaultLat),
		Lng:                  coordinate(location, raw, "longitude", "lng", domain.DefaultLng),
	}
	if req.PropertyAddress == "" {
		req.PropertyAddress = firstText(raw, "propertyAddress", "area")
	}
	if cost, ok := number(raw["estimatedCost"]); ok {
		req.EstimatedCost = &cost
	}
	if completed, ok := timestamp(raw["completedAt"]); ok {
		req.CompletedAt = &completed
	}
	return req
}

func coordinate(location, raw map[string]any, nestedKey, flatKey string, fallback float64) float64 {
	for _, v := range []any{location[nestedKey], raw[flatKey]} {
		if f, ok := number(v); ok && f != 0 {
			return f
		}
	}
	return fallback
}

// Requests maps a list response. Anything other than a JSON array yields an empty list.
func Requests(raw any) []domain.MaintenanceRequest {
	list, _ := raw.([]any)
	out := make([]domain.MaintenanceRequest, 0, len(list))
	for _, item := range list {
		out = append(out, Request(object(item)))
	}
	return out
}

// CreatePayload projects a tenant submission onto the backend's create body.
// The title is "{category} - {first 50 characters of description}".
func CreatePayload(in domain.CreateRequestInput) dto.CreateRequestBody {
	images := in.Images
	if images == nil {
		images = []string{}
	}
	return dto.CreateRequestBody{
		Title:       string(in.Category) + " - " + truncate(in.Description, titleDescriptionLimit),
		Description: in.Description,
		Category:    string(in.Category),
		Priority:    string(in.Priority),
		PhotoURLs:   images,
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
