package stats

import (
	"sort"
	"strings"
	"time"

	"gitcards/internal/github"
)

const dayFormat = "2006-01-02"

// * BuildAggregate is the aggregation engine: a pure transformation from the
// * fetched inputs to the derived summary. No I/O and no ambient clock reads;
// * the local zone used for hour bucketing is injected so identical inputs
// * always produce identical output. A nil loc falls back to time.Local.
func BuildAggregate(in Input, loc *time.Location) *Aggregate {
	if loc == nil {
		loc = time.Local
	}

	agg := &Aggregate{
		Languages: LanguageAggregates{
			ByRepoCount: make(map[string]int),
			BySize:      make(map[string]int),
		},
		CommitsByLanguage: make(map[string]int),
		DailyActivity:     []ActivityPoint{},
		WeeklyActivity:    []WeeklyPoint{},
		TotalIssues:       in.Search.TotalIssues,
		TotalPRs:          in.Search.TotalPRs,
		ContributedTo:     in.Search.ContributedTo,
	}

	// * Repos with no language are excluded from every language bucket.
	// * Names are unique within an account, so last-write-wins is moot.
	langByRepo := make(map[string]string, len(in.Repositories))
	for _, r := range in.Repositories {
		agg.TotalStars += r.StargazersCount
		if r.Language == "" {
			continue
		}
		langByRepo[r.Name] = r.Language
		agg.Languages.ByRepoCount[r.Language]++
		agg.Languages.BySize[r.Language] += r.Size
	}

	daily := make(map[string]int)
	weekly := make(map[string]int)

	for _, ev := range in.Events {
		if ev.Type != github.PushEventType {
			continue
		}

		count := pushCommitCount(ev.Payload)
		agg.YearCommitCount += count
		agg.HasRecentActivity = true

		local := ev.CreatedAt.In(loc)
		agg.HourlyCommits[local.Hour()] += count

		daily[ev.CreatedAt.UTC().Format(dayFormat)] += count
		weekly[mondayOf(local).Format(dayFormat)] += count

		// * Events on repos outside the fetched list, or on repos without a
		// * language, contribute to no language bucket
		if lang, ok := langByRepo[shortRepoName(ev.Repo.Name)]; ok {
			agg.CommitsByLanguage[lang] += count
		}
	}

	agg.DailyActivity = sortedDaily(daily)
	agg.WeeklyActivity = densifyWeekly(weekly)

	return agg
}

// * Commit count for one push: explicit payload size if present, else the
// * length of the commit list, else 1 as a last resort
func pushCommitCount(p github.PushPayload) int {
	switch {
	case p.Size != nil:
		return *p.Size
	case p.Commits != nil:
		return len(p.Commits)
	default:
		return 1
	}
}

// * ExtractCommitEmail returns the first commit author email in the push
// * sample that is not a GitHub noreply address, or "" when none exists.
// * Used to backfill a profile whose public email is hidden.
func ExtractCommitEmail(events []github.Event) string {
	for _, ev := range events {
		if ev.Type != github.PushEventType {
			continue
		}
		for _, c := range ev.Payload.Commits {
			if c.Author.Email != "" && !strings.Contains(c.Author.Email, "noreply.github.com") {
				return c.Author.Email
			}
		}
	}
	return ""
}

func shortRepoName(fullName string) string {
	if i := strings.LastIndex(fullName, "/"); i >= 0 {
		return fullName[i+1:]
	}
	return fullName
}

// * Monday of the week containing t, normalized to a UTC midnight so the
// * week-by-week walk in densifyWeekly is immune to DST transitions
func mondayOf(t time.Time) time.Time {
	diff := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		diff = 6
	}
	y, m, d := t.AddDate(0, 0, -diff).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sortedDaily(daily map[string]int) []ActivityPoint {
	days := make([]string, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}
	sort.Strings(days)

	out := make([]ActivityPoint, 0, len(days))
	for _, day := range days {
		out = append(out, ActivityPoint{Date: day, Commits: daily[day]})
	}
	return out
}

// * densifyWeekly walks Monday to Monday from the earliest to the latest
// * observed week, emitting zero-filled points for gap weeks so the series
// * has uniform 7-day spacing
func densifyWeekly(weekly map[string]int) []WeeklyPoint {
	if len(weekly) == 0 {
		return []WeeklyPoint{}
	}

	keys := make([]string, 0, len(weekly))
	for k := range weekly {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	start, _ := time.Parse(dayFormat, keys[0])
	end, _ := time.Parse(dayFormat, keys[len(keys)-1])

	var out []WeeklyPoint
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 7) {
		out = append(out, WeeklyPoint{
			Label: cur.Format("Jan 02"),
			Count: weekly[cur.Format(dayFormat)],
		})
	}
	return out
}
