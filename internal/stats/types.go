package stats

import (
	"time"

	"gitcards/internal/github"
)

// * Normalized profile identity, shaped for presentation consumers
type Profile struct {
	Login           string    `json:"login"`
	Name            string    `json:"name"`
	AvatarURL       string    `json:"avatarUrl"`
	HTMLURL         string    `json:"htmlUrl"`
	Email           string    `json:"email"`
	Bio             string    `json:"bio"`
	Location        string    `json:"location"`
	Company         string    `json:"company"`
	Blog            string    `json:"blog"`
	TwitterUsername string    `json:"twitterUsername"`
	PublicRepos     int       `json:"publicRepos"`
	Followers       int       `json:"followers"`
	Following       int       `json:"following"`
	CreatedAt       time.Time `json:"createdAt"`
}

type Repo struct {
	Name     string `json:"name"`
	Language string `json:"language"`
	Stars    int    `json:"stars"`
	Forks    int    `json:"forks"`
	Size     int    `json:"size"`
	HTMLURL  string `json:"htmlUrl"`
}

type LanguageAggregates struct {
	ByRepoCount map[string]int `json:"byRepoCount"`
	BySize      map[string]int `json:"bySize"`
}

// * One calendar day (UTC) of push-commit activity
type ActivityPoint struct {
	Date    string `json:"date"`
	Commits int    `json:"commits"`
}

// * One Monday-anchored week; Label is a short month name plus zero-padded day
type WeeklyPoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type SearchCounts struct {
	TotalIssues   int `json:"totalIssues"`
	TotalPRs      int `json:"totalPRs"`
	ContributedTo int `json:"contributedTo"`
}

// * Aggregate is the derived, read-only summary produced by BuildAggregate.
// * All counts are estimates based on a bounded recent-event sample.
type Aggregate struct {
	Languages         LanguageAggregates `json:"languages"`
	CommitsByLanguage map[string]int     `json:"commitsByLanguage"`
	HourlyCommits     [24]int            `json:"hourlyCommits"`
	DailyActivity     []ActivityPoint    `json:"activity"`
	WeeklyActivity    []WeeklyPoint      `json:"weeklyActivity"`
	TotalStars        int                `json:"totalStars"`
	YearCommitCount   int                `json:"yearCommitCount"`
	TotalIssues       int                `json:"totalIssues"`
	TotalPRs          int                `json:"totalPRs"`
	ContributedTo     int                `json:"contributedTo"`

	// * False when no push events were observed, either because the account
	// * has no recent activity or because the event fetch degraded. Drives
	// * the preview/sample-data treatment instead of claiming real zeros.
	HasRecentActivity bool `json:"hasRecentActivity"`
}

// * ProfileData is the complete payload handed to every presentation surface
type ProfileData struct {
	Profile Profile `json:"profile"`
	Repos   []Repo  `json:"repos"`
	Aggregate
}

type Input struct {
	Repositories []github.Repository
	Events       []github.Event
	Search       SearchCounts
}

func ProfileFromUser(u *github.User) Profile {
	return Profile{
		Login:           u.Login,
		Name:            u.Name,
		AvatarURL:       u.AvatarURL,
		HTMLURL:         u.HTMLURL,
		Email:           u.Email,
		Bio:             u.Bio,
		Location:        u.Location,
		Company:         u.Company,
		Blog:            u.Blog,
		TwitterUsername: u.TwitterUsername,
		PublicRepos:     u.PublicRepos,
		Followers:       u.Followers,
		Following:       u.Following,
		CreatedAt:       u.CreatedAt,
	}
}

func ReposFromRepositories(repos []github.Repository) []Repo {
	out := make([]Repo, 0, len(repos))
	for _, r := range repos {
		out = append(out, Repo{
			Name:     r.Name,
			Language: r.Language,
			Stars:    r.StargazersCount,
			Forks:    r.ForksCount,
			Size:     r.Size,
			HTMLURL:  r.HTMLURL,
		})
	}
	return out
}
