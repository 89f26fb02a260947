package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/handygo/tenant-client/internal/apperr"
	"github.com/handygo/tenant-client/internal/transport"
)

// API is the slice of the transport the services depend on.
type API interface {
	Get(ctx context.Context, path string) (any, error)
	Post(ctx context.Context, path string, body any) (any, error)
	Put(ctx context.Context, path string, body any) (any, error)
}

var _ API = (*transport.Client)(nil)

// outcome is the result of the live attempt of one operation. A non-nil err means
// the caller serves the sample dataset instead.
type outcome[T any] struct {
	value T
	err   error
}

func live[T any](value T, err error) outcome[T] {
	return outcome[T]{value: value, err: err}
}

// degraded logs why the live attempt was abandoned. It returns the context error
// when the caller gave up, which is not a reason to serve sample data.
func degraded(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	slog.WarnContext(ctx, "live call failed, serving sample data", "op", op, "error", err)
	return nil
}

var errUnexpectedShape = errors.New("unexpected response shape")

// asObject turns a decoded body into an object, or reports a malformed response.
func asObject(raw any, err error) (map[string]any, error) {
	if err != nil {
		return nil, err
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %w", transport.ErrMalformedResponse, errUnexpectedShape)
	}
	return obj, nil
}

var validate = validator.New()

func validateInput(in any) error {
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return apperr.BadRequest(fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag()), err)
		}
		return apperr.BadRequest("invalid input", err)
	}
	return nil
}
