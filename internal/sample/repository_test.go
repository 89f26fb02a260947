package sample

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handygo/tenant-client/internal/domain"
)

var fixedNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func newRepo() *Repository {
	return NewRepository(func() time.Time { return fixedNow })
}

func ids(reqs []domain.MaintenanceRequest) []string {
	out := make([]string, len(reqs))
	for i, r := range reqs {
		out[i] = r.ID
	}
	return out
}

func TestSeededRequests(t *testing.T) {
	reqs := newRepo().Requests("")

	require.Equal(t, []string{"r1", "r2", "r3", "r4"}, ids(reqs))
	assert.Equal(t, domain.StatusInProgress, reqs[0].Status)
	assert.Equal(t, fixedNow.Add(-time.Hour), reqs[0].CreatedAt)
	require.NotNil(t, reqs[0].EstimatedCost)
	assert.Equal(t, 250.0, *reqs[0].EstimatedCost)
	require.NotNil(t, reqs[3].CompletedAt)
	assert.Equal(t, fixedNow.Add(-72*time.Hour), *reqs[3].CompletedAt)
	assert.True(t, reqs[3].CanRate())
}

func TestRequestsStatusFilterKeepsOrder(t *testing.T) {
	repo := newRepo()
	repo.CreateRequest(domain.CreateRequestInput{Category: domain.CategoryCleaning, Description: "Deep clean", Priority: domain.PriorityLow})

	assert.Equal(t, []string{"r1"}, ids(repo.Requests(domain.StatusInProgress)))
	pending := repo.Requests(domain.StatusPending)
	require.Len(t, pending, 2)
	assert.Equal(t, "r3", pending[1].ID)
	assert.Empty(t, repo.Requests(domain.StatusCancelled))
}

func TestRequestUnknown(t *testing.T) {
	_, ok := newRepo().Request("zzz")
	assert.False(t, ok)
}

func TestCreateRequestPrepends(t *testing.T) {
	repo := newRepo()

	created := repo.CreateRequest(domain.CreateRequestInput{
		Category:    domain.CategoryPlumbing,
		Description: "Leaking pipe",
		Priority:    domain.PriorityHigh,
	})

	assert.Equal(t, "r1772357400000", created.ID)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, "t1", created.TenantID)
	assert.Equal(t, "Sarah Johnson", created.TenantName)
	assert.Equal(t, "Marina Towers, Apt 1204", created.PropertyAddress)
	assert.Equal(t, 25.0780, created.Lat)
	assert.Equal(t, 55.1350, created.Lng)
	assert.NotNil(t, created.Images)

	all := repo.Requests("")
	require.Len(t, all, 5)
	assert.Equal(t, created.ID, all[0].ID)

	got, ok := repo.Request(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)
}

func TestCancelRequest(t *testing.T) {
	repo := newRepo()

	prev, found := repo.CancelRequest("r3")
	assert.True(t, found)
	assert.Equal(t, domain.StatusPending, prev)
	r3, _ := repo.Request("r3")
	assert.Equal(t, domain.StatusCancelled, r3.Status)
	assert.Equal(t, "Power outlet in living room sparking when plugging in devices.", r3.Description)

	prev, found = repo.CancelRequest("r3")
	assert.True(t, found)
	assert.Equal(t, domain.StatusCancelled, prev)

	prev, found = repo.CancelRequest("r1")
	assert.True(t, found)
	assert.Equal(t, domain.StatusInProgress, prev)
	r1, _ := repo.Request("r1")
	assert.Equal(t, domain.StatusInProgress, r1.Status)

	_, found = repo.CancelRequest("nope")
	assert.False(t, found)
	assert.Len(t, repo.Requests(""), 4)
}

func TestRepositoriesAreIsolated(t *testing.T) {
	a, b := newRepo(), newRepo()
	a.CancelRequest("r2")

	r2, _ := b.Request("r2")
	assert.Equal(t, domain.StatusAssigned, r2.Status)
}

func TestReturnedValuesAreCopies(t *testing.T) {
	repo := newRepo()
	reqs := repo.Requests("")
	*reqs[0].EstimatedCost = 1
	reqs[0].Status = domain.StatusCancelled

	r1, _ := repo.Request("r1")
	assert.Equal(t, 250.0, *r1.EstimatedCost)
	assert.Equal(t, domain.StatusInProgress, r1.Status)
}

func TestReviews(t *testing.T) {
	repo := newRepo()
	revs := repo.Reviews()
	require.Len(t, revs, 1)
	assert.Equal(t, "rev1", revs[0].ID)
	assert.Equal(t, 5, revs[0].Rating)

	rev := repo.CreateReview(domain.CreateReviewInput{RequestID: "r4", HandymanID: "h3", Rating: 4, Comment: "Good"})
	assert.Equal(t, "rev1772357400000", rev.ID)
	assert.Equal(t, "Handyman", rev.HandymanName)
	assert.Equal(t, "t1", rev.TenantID)
	assert.Len(t, repo.Reviews(), 2)
}

func TestLogin(t *testing.T) {
	repo := newRepo()

	res, ok := repo.Login(domain.Credentials{Email: DemoEmail, Password: DemoPassword})
	require.True(t, ok)
	assert.Equal(t, DemoToken, res.Token)
	assert.Equal(t, "tu1", res.User.ID)
	require.NotNil(t, res.Tenant)
	assert.Equal(t, "t1", res.Tenant.ID)

	_, ok = repo.Login(domain.Credentials{Email: DemoEmail, Password: "wrong"})
	assert.False(t, ok)
}

func TestConcurrentAccess(t *testing.T) {
	repo := NewRepository(nil)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			repo.CreateRequest(domain.CreateRequestInput{Category: domain.CategoryGeneral, Description: "x", Priority: domain.PriorityLow})
		}()
		go func() {
			defer wg.Done()
			_ = repo.Requests(domain.StatusPending)
		}()
	}
	wg.Wait()
	assert.Len(t, repo.Requests(""), 24)
}
