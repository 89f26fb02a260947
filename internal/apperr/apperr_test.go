package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsByCode(t *testing.T) {
	err := fmt.Errorf("loading request: %w", NotFound("Request", nil))
	assert.True(t, Is(err, CodeNotFound))
	assert.False(t, Is(err, CodeConflict))
	assert.False(t, Is(errors.New("plain"), CodeNotFound))
}

func TestWrapKeepsSentinelIdentity(t *testing.T) {
	sentinel := Unauthorized("Invalid credentials", nil)
	cause := errors.New("connection refused")
	err := Wrap(sentinel, cause)

	assert.True(t, errors.Is(err, sentinel))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusUnauthorized, err.Status)
	assert.Equal(t, "UNAUTHORIZED: Invalid credentials: connection refused", err.Error())
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "CONFLICT: request cannot be cancelled", Conflict("request cannot be cancelled").Error())
}
