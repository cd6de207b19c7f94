package stats

import (
	"testing"
	"time"

	"gitcards/internal/github"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int {
	return &n
}

func pushEvent(repoFullName string, at time.Time, size int) github.Event {
	return github.Event{
		Type:      github.PushEventType,
		CreatedAt: at,
		Repo:      github.EventRepo{Name: repoFullName},
		Payload:   github.PushPayload{Size: intPtr(size)},
	}
}

func TestBuildAggregate_LanguageCounts(t *testing.T) {
	in := Input{
		Repositories: []github.Repository{
			{Name: "a", Language: "Go", StargazersCount: 1, Size: 100},
			{Name: "b", Language: "Go", StargazersCount: 2, Size: 50},
			{Name: "c", Language: "Rust", StargazersCount: 3, Size: 10},
			{Name: "d", Language: "", StargazersCount: 4, Size: 999},
		},
	}

	agg := BuildAggregate(in, time.UTC)

	// * Values sum to the count of repos WITH a language, not all repos
	sum := 0
	for _, n := range agg.Languages.ByRepoCount {
		sum += n
	}
	assert.Equal(t, 3, sum)
	assert.Equal(t, map[string]int{"Go": 2, "Rust": 1}, agg.Languages.ByRepoCount)
	assert.Equal(t, map[string]int{"Go": 150, "Rust": 10}, agg.Languages.BySize)
	assert.Equal(t, 10, agg.TotalStars)
}

func TestBuildAggregate_HourlyHistogram(t *testing.T) {
	const hour = 9
	var events []github.Event
	for i := 0; i < 5; i++ {
		events = append(events, pushEvent("me/x", time.Date(2024, 3, 4+i, hour, 30, 0, 0, time.UTC), 1))
	}

	agg := BuildAggregate(Input{Events: events}, time.UTC)

	assert.Len(t, agg.HourlyCommits, 24)
	for h, count := range agg.HourlyCommits {
		if h == hour {
			assert.Equal(t, 5, count)
		} else {
			assert.Zero(t, count, "hour %d", h)
		}
	}
}

func TestBuildAggregate_HourBucketUsesInjectedZone(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	events := []github.Event{
		pushEvent("me/x", time.Date(2024, 3, 4, 22, 0, 0, 0, time.UTC), 2),
	}

	agg := BuildAggregate(Input{Events: events}, loc)

	assert.Equal(t, 2, agg.HourlyCommits[1], "22:00 UTC is 01:00 in UTC+3")
	assert.Zero(t, agg.HourlyCommits[22])
}

func TestBuildAggregate_WeeklyDensification(t *testing.T) {
	// * Three distinct weeks with a two-week gap in the middle
	events := []github.Event{
		pushEvent("me/x", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), 2),  // Mon Jan 1
		pushEvent("me/x", time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC), 1), // Wed Jan 10 -> week of Jan 8
		pushEvent("me/x", time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC), 4), // Wed Jan 31 -> week of Jan 29
	}

	agg := BuildAggregate(Input{Events: events}, time.UTC)

	require.Len(t, agg.WeeklyActivity, 5)
	labels := make([]string, 0, 5)
	counts := make([]int, 0, 5)
	for _, wp := range agg.WeeklyActivity {
		labels = append(labels, wp.Label)
		counts = append(counts, wp.Count)
	}
	assert.Equal(t, []string{"Jan 01", "Jan 08", "Jan 15", "Jan 22", "Jan 29"}, labels)
	assert.Equal(t, []int{2, 1, 0, 0, 4}, counts)
}

func TestBuildAggregate_SundayBelongsToPreviousWeek(t *testing.T) {
	events := []github.Event{
		pushEvent("me/x", time.Date(2024, 1, 7, 10, 0, 0, 0, time.UTC), 1), // Sunday
	}

	agg := BuildAggregate(Input{Events: events}, time.UTC)

	require.Len(t, agg.WeeklyActivity, 1)
	assert.Equal(t, "Jan 01", agg.WeeklyActivity[0].Label)
}

func TestBuildAggregate_Idempotent(t *testing.T) {
	in := Input{
		Repositories: []github.Repository{
			{Name: "a", Language: "Go", StargazersCount: 5, Size: 10},
			{Name: "b", Language: "Python", StargazersCount: 1, Size: 20},
		},
		Events: []github.Event{
			pushEvent("me/a", time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC), 3),
			pushEvent("me/b", time.Date(2024, 5, 14, 23, 0, 0, 0, time.UTC), 2),
		},
		Search: SearchCounts{TotalIssues: 7, TotalPRs: 9, ContributedTo: 2},
	}

	first := BuildAggregate(in, time.UTC)
	second := BuildAggregate(in, time.UTC)

	assert.Equal(t, first, second)
}

func TestBuildAggregate_EmptyEventsDegradation(t *testing.T) {
	agg := BuildAggregate(Input{
		Repositories: []github.Repository{{Name: "a", Language: "Go", StargazersCount: 1}},
	}, time.UTC)

	assert.False(t, agg.HasRecentActivity)
	assert.Equal(t, [24]int{}, agg.HourlyCommits)
	assert.Empty(t, agg.CommitsByLanguage)
	assert.Empty(t, agg.DailyActivity)
	assert.Empty(t, agg.WeeklyActivity)
	assert.Zero(t, agg.YearCommitCount)
}

func TestBuildAggregate_EndToEndExample(t *testing.T) {
	in := Input{
		Repositories: []github.Repository{
			{Name: "a", Language: "Go", StargazersCount: 5},
			{Name: "b", Language: "", StargazersCount: 2},
		},
		Events: []github.Event{
			pushEvent("owner/a", time.Date(2024, 6, 3, 14, 15, 0, 0, time.UTC), 3),
		},
	}

	agg := BuildAggregate(in, time.UTC)

	assert.Equal(t, map[string]int{"Go": 1}, agg.Languages.ByRepoCount)
	assert.Equal(t, map[string]int{"Go": 3}, agg.CommitsByLanguage)
	assert.Equal(t, 3, agg.HourlyCommits[14])
	assert.Equal(t, 7, agg.TotalStars)
	assert.Equal(t, 3, agg.YearCommitCount)
	assert.True(t, agg.HasRecentActivity)
}

func TestBuildAggregate_UnknownRepoContributesToNoLanguageBucket(t *testing.T) {
	in := Input{
		Repositories: []github.Repository{
			{Name: "known", Language: "Go"},
			{Name: "nolang", Language: ""},
		},
		Events: []github.Event{
			pushEvent("me/unknown", time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC), 2),
			pushEvent("me/nolang", time.Date(2024, 6, 3, 11, 0, 0, 0, time.UTC), 2),
		},
	}

	agg := BuildAggregate(in, time.UTC)

	assert.Empty(t, agg.CommitsByLanguage)
	// * Commits still count toward the histogram and totals
	assert.Equal(t, 4, agg.YearCommitCount)
}

func TestBuildAggregate_NonPushEventsIgnored(t *testing.T) {
	in := Input{
		Events: []github.Event{
			{Type: "WatchEvent", CreatedAt: time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)},
			{Type: "IssuesEvent", CreatedAt: time.Date(2024, 6, 3, 11, 0, 0, 0, time.UTC)},
		},
	}

	agg := BuildAggregate(in, time.UTC)

	assert.False(t, agg.HasRecentActivity)
	assert.Zero(t, agg.YearCommitCount)
}

func TestBuildAggregate_DailyActivitySortedByDay(t *testing.T) {
	events := []github.Event{
		pushEvent("me/x", time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC), 1),
		pushEvent("me/x", time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC), 2),
		pushEvent("me/x", time.Date(2024, 6, 3, 20, 0, 0, 0, time.UTC), 1),
	}

	agg := BuildAggregate(Input{Events: events}, time.UTC)

	require.Len(t, agg.DailyActivity, 2)
	assert.Equal(t, ActivityPoint{Date: "2024-06-03", Commits: 3}, agg.DailyActivity[0])
	assert.Equal(t, ActivityPoint{Date: "2024-06-05", Commits: 1}, agg.DailyActivity[1])
}

func TestPushCommitCount(t *testing.T) {
	tests := []struct {
		name     string
		payload  github.PushPayload
		expected int
	}{
		{
			name:     "explicit size wins",
			payload:  github.PushPayload{Size: intPtr(7), Commits: []github.EventCommit{{SHA: "a"}}},
			expected: 7,
		},
		{
			name:     "explicit zero size is honored",
			payload:  github.PushPayload{Size: intPtr(0), Commits: []github.EventCommit{{SHA: "a"}}},
			expected: 0,
		},
		{
			name:     "commit list length when size absent",
			payload:  github.PushPayload{Commits: []github.EventCommit{{SHA: "a"}, {SHA: "b"}}},
			expected: 2,
		},
		{
			name:     "last-resort default of one",
			payload:  github.PushPayload{},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pushCommitCount(tt.payload))
		})
	}
}

func TestExtractCommitEmail(t *testing.T) {
	events := []github.Event{
		{
			Type: github.PushEventType,
			Payload: github.PushPayload{Commits: []github.EventCommit{
				{Author: github.CommitAuthor{Email: "12345+me@users.noreply.github.com"}},
				{Author: github.CommitAuthor{Email: "real@example.com"}},
			}},
		},
	}

	assert.Equal(t, "real@example.com", ExtractCommitEmail(events))
	assert.Equal(t, "", ExtractCommitEmail(nil))
}

func TestShortRepoName(t *testing.T) {
	assert.Equal(t, "repo", shortRepoName("owner/repo"))
	assert.Equal(t, "repo", shortRepoName("repo"))
	assert.Equal(t, "c", shortRepoName("a/b/c"))
}
