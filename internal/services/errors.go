package services

import (
	"net/http"

	"github.com/handygo/tenant-client/internal/apperr"
)

var (
	ErrInvalidCredentials = apperr.New(apperr.CodeUnauthorized, "Invalid credentials", http.StatusUnauthorized, nil)
	ErrRequestNotFound    = apperr.NotFound("request", nil)
	ErrNotCancellable     = apperr.Conflict("only pending or assigned requests can be cancelled")
	ErrNotRateable        = apperr.Conflict("only completed requests with an assigned handyman can be rated")
)
