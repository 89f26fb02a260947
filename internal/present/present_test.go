package present

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/handygo/tenant-client/internal/domain"
	"github.com/handygo/tenant-client/internal/sample"
)

var now = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func seeded() []domain.MaintenanceRequest {
	return sample.NewRepository(func() time.Time { return now }).Requests("")
}

func ids(reqs []domain.MaintenanceRequest) []string {
	out := []string{}
	for _, r := range reqs {
		out = append(out, r.ID)
	}
	return out
}

func TestFilterRequests(t *testing.T) {
	reqs := seeded()

	cases := []struct {
		name, status, search string
		want                 []string
	}{
		{"all", FilterAll, "", []string{"r1", "r2", "r3", "r4"}},
		{"empty status means all", "", "", []string{"r1", "r2", "r3", "r4"}},
		{"status chip", "in_progress", "", []string{"r1"}},
		{"search description case-insensitive", FilterAll, "KITCHEN", []string{"r1"}},
		{"search category", FilterAll, "paint", []string{"r4"}},
		{"status and search", "pending", "outlet", []string{"r3"}},
		{"no match", "completed", "sink", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(FilterRequests(reqs, tc.status, tc.search)))
		})
	}
}

func TestTimeAgo(t *testing.T) {
	assert.Equal(t, "0m ago", TimeAgo(now, now))
	assert.Equal(t, "59m ago", TimeAgo(now.Add(-59*time.Minute-30*time.Second), now))
	assert.Equal(t, "1h ago", TimeAgo(now.Add(-time.Hour), now))
	assert.Equal(t, "23h ago", TimeAgo(now.Add(-(24*time.Hour-time.Minute)), now))
	assert.Equal(t, "1d ago", TimeAgo(now.Add(-24*time.Hour), now))
	assert.Equal(t, "7d ago", TimeAgo(now.Add(-7*24*time.Hour), now))
	assert.Equal(t, "0m ago", TimeAgo(now.Add(time.Hour), now))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "1 Mar 2026, 01:30 pm", FormatDate(now, nil))
	assert.Equal(t, "1 Mar 2026, 09:30 am", FormatDate(now, time.UTC))
}

func TestSummarize(t *testing.T) {
	d := Summarize(seeded())
	assert.Equal(t, 3, d.Active)
	assert.Equal(t, 1, d.Completed)
	assert.Equal(t, []string{"r1", "r2", "r3"}, ids(d.Recent))

	empty := Summarize(nil)
	assert.Zero(t, empty.Active)
	assert.Empty(t, empty.Recent)
}
