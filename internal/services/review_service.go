package services

import (
	"context"
	"net/url"

	"github.com/handygo/tenant-client/internal/domain"
	"github.com/handygo/tenant-client/internal/normalize"
	"github.com/handygo/tenant-client/internal/sample"
	"github.com/handygo/tenant-client/internal/session"
)

type ReviewService struct {
	api      API
	keychain *session.Keychain
	sample   *sample.Repository
}

func NewReviewService(api API, keychain *session.Keychain, repo *sample.Repository) *ReviewService {
	return &ReviewService{api: api, keychain: keychain, sample: repo}
}

// List fetches the logged-in tenant's reviews, or every review visible to the
// caller when no user is stored.
func (s *ReviewService) List(ctx context.Context) ([]domain.Review, error) {
	path := "/reviews"
	if user, err := s.keychain.User(ctx); err == nil && user != nil && user.ID != "" {
		path = "/reviews/tenant/" + url.PathEscape(user.ID)
	}

	res := live(s.api.Get(ctx, path))
	if res.err == nil {
		return normalize.Reviews(res.value), nil
	}
	if err := degraded(ctx, "reviews.list", res.err); err != nil {
		return nil, err
	}
	return s.sample.Reviews(), nil
}

func (s *ReviewService) Create(ctx context.Context, in domain.CreateReviewInput) (*domain.Review, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	res := live(asObject(s.api.Post(ctx, "/reviews", normalize.ReviewPayload(in))))
	if res.err == nil {
		rev := normalize.Review(res.value)
		return &rev, nil
	}
	if err := degraded(ctx, "reviews.create", res.err); err != nil {
		return nil, err
	}
	rev := s.sample.CreateReview(in)
	return &rev, nil
}
