// Package apperr carries domain errors with a stable code and an HTTP-ish status.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeNotFound     = "NOT_FOUND"
	CodeBadRequest   = "BAD_REQUEST"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL_ERROR"
)

type Error struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match two *Error values by code and message, so package sentinels
// still match after being wrapped with a cause.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

func New(code, message string, status int, err error) *Error {
	return &Error{Code: code, Message: message, Status: status, Err: err}
}

func NotFound(resource string, err error) *Error {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound, err)
}

func BadRequest(message string, err error) *Error {
	return New(CodeBadRequest, message, http.StatusBadRequest, err)
}

func Unauthorized(message string, err error) *Error {
	return New(CodeUnauthorized, message, http.StatusUnauthorized, err)
}

func Conflict(message string) *Error {
	return New(CodeConflict, message, http.StatusConflict, nil)
}

func Internal(message string, err error) *Error {
	return New(CodeInternal, message, http.StatusInternalServerError, err)
}

// Is reports whether err carries an *Error with the given code anywhere in its chain.
func Is(err error, code string) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Wrap returns a copy of sentinel carrying cause, keeping errors.Is(result, sentinel) true.
func Wrap(sentinel *Error, cause error) *Error {
	return &Error{Code: sentinel.Code, Message: sentinel.Message, Status: sentinel.Status, Err: cause}
}
