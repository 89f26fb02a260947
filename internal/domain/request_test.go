package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusAssigned, true},
		{StatusAssigned, StatusInProgress, true},
		{StatusInProgress, StatusCompleted, true},
		{StatusPending, StatusCancelled, true},
		{StatusAssigned, StatusCancelled, true},
		{StatusInProgress, StatusCancelled, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusPending, false},
		{StatusAssigned, StatusPending, false},
		{StatusCancelled, StatusPending, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestRequestActions(t *testing.T) {
	r := MaintenanceRequest{Status: StatusCompleted}
	assert.False(t, r.CanRate(), "no handyman, nothing to rate")
	assert.False(t, r.CanCancel())

	r.AssignedHandymanID = "h3"
	assert.True(t, r.CanRate())

	r.Status = StatusAssigned
	assert.True(t, r.CanCancel())
	assert.False(t, r.CanRate())
}

func TestCategoryInfoFor(t *testing.T) {
	assert.Equal(t, "AC / HVAC", CategoryInfoFor(CategoryAC).Label)
	assert.Equal(t, "roofing", CategoryInfoFor(Category("roofing")).Label)
}

func TestUserFullName(t *testing.T) {
	assert.Equal(t, "Sarah Johnson", User{FirstName: "Sarah", LastName: "Johnson"}.FullName())
	assert.Equal(t, "Sarah", User{FirstName: "Sarah"}.FullName())
	assert.Equal(t, "", User{}.FullName())
}
