package services

import (
	"context"
	"net/url"
	"strings"

	"github.com/handygo/tenant-client/internal/domain"
	"github.com/handygo/tenant-client/internal/normalize"
	"github.com/handygo/tenant-client/internal/sample"
)

type RequestService struct {
	api    API
	sample *sample.Repository
}

func NewRequestService(api API, repo *sample.Repository) *RequestService {
	return &RequestService{api: api, sample: repo}
}

// List returns the tenant's requests, optionally filtered by status. A successful
// response that is not a list yields an empty slice.
func (s *RequestService) List(ctx context.Context, status domain.Status) ([]domain.MaintenanceRequest, error) {
	path := "/requests"
	if status != "" {
		path += "?status=" + url.QueryEscape(string(status))
	}

	res := live(s.api.Get(ctx, path))
	if res.err == nil {
		return normalize.Requests(res.value), nil
	}
	if err := degraded(ctx, "requests.list", res.err); err != nil {
		return nil, err
	}
	return s.sample.Requests(status), nil
}

func (s *RequestService) Get(ctx context.Context, id string) (*domain.MaintenanceRequest, error) {
	res := live(asObject(s.api.Get(ctx, "/requests/"+url.PathEscape(id))))
	if res.err == nil {
		req := normalize.Request(res.value)
		return &req, nil
	}
	if err := degraded(ctx, "requests.get", res.err); err != nil {
		return nil, err
	}
	req, ok := s.sample.Request(id)
	if !ok {
		return nil, ErrRequestNotFound
	}
	return &req, nil
}

// Create submits a new request. The description is trimmed first, so a blank one
// fails validation.
func (s *RequestService) Create(ctx context.Context, in domain.CreateRequestInput) (*domain.MaintenanceRequest, error) {
	in.Description = strings.TrimSpace(in.Description)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	res := live(asObject(s.api.Post(ctx, "/requests", normalize.CreatePayload(in))))
	if res.err == nil {
		req := normalize.Request(res.value)
		return &req, nil
	}
	if err := degraded(ctx, "requests.create", res.err); err != nil {
		return nil, err
	}
	req := s.sample.CreateRequest(in)
	return &req, nil
}

// Cancel asks the backend to cancel a request. Offline, a request that is already
// cancelled is left alone, and started or finished work is refused. Unknown ids
// are reported the same way Get reports them.
func (s *RequestService) Cancel(ctx context.Context, id string) error {
	res := live(s.api.Put(ctx, "/requests/"+url.PathEscape(id)+"/cancel", nil))
	if res.err == nil {
		return nil
	}
	if err := degraded(ctx, "requests.cancel", res.err); err != nil {
		return err
	}

	previous, found := s.sample.CancelRequest(id)
	switch {
	case !found:
		return ErrRequestNotFound
	case previous == domain.StatusCancelled:
		return nil
	case !previous.CanTransitionTo(domain.StatusCancelled):
		return ErrNotCancellable
	}
	return nil
}
