package services

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handygo/tenant-client/internal/apperr"
	"github.com/handygo/tenant-client/internal/domain"
)

func TestListReviews_LiveUsesTenantPathWhenLoggedIn(t *testing.T) {
	var paths []string
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		respond(http.StatusOK, `[{"reviewId":"x1","jobId":"b1","rating":4,"comment":"ok"}]`)(w, r)
	})
	svc := NewReviewService(f.api, f.keychain, f.repo)

	revs, err := svc.List(ctx())
	require.NoError(t, err)
	require.Len(t, revs, 1)
	assert.Equal(t, "x1", revs[0].ID)
	assert.Equal(t, "b1", revs[0].RequestID)

	require.NoError(t, f.keychain.Save(ctx(), domain.AuthResult{Token: "t", User: domain.User{ID: "u-42"}}))
	_, err = svc.List(ctx())
	require.NoError(t, err)

	assert.Equal(t, []string{"/reviews", "/reviews/tenant/u-42"}, paths)
}

func TestListReviews_Fallback(t *testing.T) {
	f := newFixture(t, respond(http.StatusBadGateway, ``))

	revs, err := NewReviewService(f.api, f.keychain, f.repo).List(ctx())
	require.NoError(t, err)
	require.Len(t, revs, 1)
	assert.Equal(t, "rev1", revs[0].ID)
	assert.Equal(t, "Omar Farooq", revs[0].HandymanName)
}

func TestCreateReview_Live(t *testing.T) {
	var body map[string]any
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		respond(http.StatusCreated, `{"reviewId":"x9","jobId":"r4","handymanId":"h3","rating":5,"comment":"Great"}`)(w, r)
	})

	rev, err := NewReviewService(f.api, f.keychain, f.repo).Create(ctx(), domain.CreateReviewInput{
		RequestID: "r4", HandymanID: "h3", Rating: 5, Comment: "Great",
	})
	require.NoError(t, err)
	assert.Equal(t, "x9", rev.ID)
	assert.Equal(t, "r4", rev.RequestID)
	assert.Equal(t, map[string]any{"requestId": "r4", "handymanId": "h3", "rating": float64(5), "comment": "Great"}, body)
	assert.Len(t, f.repo.Reviews(), 1)
}

func TestCreateReview_Fallback(t *testing.T) {
	f := newFixture(t, nil)
	svc := NewReviewService(f.api, f.keychain, f.repo)

	rev, err := svc.Create(ctx(), domain.CreateReviewInput{RequestID: "r4", HandymanID: "h3", Rating: 3})
	require.NoError(t, err)
	assert.Equal(t, "rev1772357400000", rev.ID)
	assert.Equal(t, "Handyman", rev.HandymanName)
	assert.Equal(t, "t1", rev.TenantID)

	revs, err := svc.List(ctx())
	require.NoError(t, err)
	assert.Len(t, revs, 2)
}

func TestCreateReview_RatingOutOfRange(t *testing.T) {
	f := newFixture(t, nil)
	svc := NewReviewService(f.api, f.keychain, f.repo)

	for _, rating := range []int{0, 6} {
		_, err := svc.Create(ctx(), domain.CreateReviewInput{RequestID: "r4", HandymanID: "h3", Rating: rating})
		assert.True(t, apperr.Is(err, apperr.CodeBadRequest), rating)
	}
	assert.Len(t, f.repo.Reviews(), 1)
}
