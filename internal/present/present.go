// Package present holds the list, search and formatting rules the tenant screens apply
// on top of the domain services.
package present

import (
	"fmt"
	"strings"
	"time"

	"github.com/handygo/tenant-client/internal/domain"
)

// FilterAll is the status chip that disables status filtering.
const FilterAll = "all"

// StatusFilters lists the chips in display order.
var StatusFilters = []string{
	FilterAll,
	string(domain.StatusPending),
	string(domain.StatusAssigned),
	string(domain.StatusInProgress),
	string(domain.StatusCompleted),
}

// FilterRequests keeps requests matching the status chip and whose description or
// category contains search, case-insensitively. Order is preserved.
func FilterRequests(reqs []domain.MaintenanceRequest, status, search string) []domain.MaintenanceRequest {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]domain.MaintenanceRequest, 0, len(reqs))
	for _, r := range reqs {
		if status != "" && status != FilterAll && string(r.Status) != status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(r.Description), needle) &&
			!strings.Contains(strings.ToLower(string(r.Category)), needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// TimeAgo renders the whole minutes, hours or days between t and now.
func TimeAgo(t, now time.Time) string {
	mins := int(now.Sub(t) / time.Minute)
	if mins < 0 {
		mins = 0
	}
	switch {
	case mins < 60:
		return fmt.Sprintf("%dm ago", mins)
	case mins < 24*60:
		return fmt.Sprintf("%dh ago", mins/60)
	}
	return fmt.Sprintf("%dd ago", mins/(24*60))
}

// Dubai is the display zone. UAE has no daylight saving, so a fixed offset is exact.
var Dubai = time.FixedZone("GST", 4*60*60)

// FormatDate renders t the way the en-AE locale does, e.g. "1 Mar 2026, 01:30 pm".
func FormatDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = Dubai
	}
	return t.In(loc).Format("2 Jan 2006, 03:04 pm")
}

type Dashboard struct {
	Active    int
	Completed int
	Recent    []domain.MaintenanceRequest
}

// Summarize counts active and completed requests and keeps the first three as listed.
func Summarize(reqs []domain.MaintenanceRequest) Dashboard {
	d := Dashboard{}
	for _, r := range reqs {
		switch {
		case r.Status.Active():
			d.Active++
		case r.Status == domain.StatusCompleted:
			d.Completed++
		}
	}
	n := min(3, len(reqs))
	d.Recent = append([]domain.MaintenanceRequest{}, reqs[:n]...)
	return d
}
