package github

import "time"

// * Public profile record from GET /users/{username}.
// * Optional text fields come back as JSON null and decode to "".
type User struct {
	Login           string    `json:"login"`
	Name            string    `json:"name"`
	AvatarURL       string    `json:"avatar_url"`
	HTMLURL         string    `json:"html_url"`
	Email           string    `json:"email"`
	Bio             string    `json:"bio"`
	Location        string    `json:"location"`
	Company         string    `json:"company"`
	Blog            string    `json:"blog"`
	TwitterUsername string    `json:"twitter_username"`
	PublicRepos     int       `json:"public_repos"`
	Followers       int       `json:"followers"`
	Following       int       `json:"following"`
	CreatedAt       time.Time `json:"created_at"`
}

type Repository struct {
	Name            string `json:"name"`
	FullName        string `json:"full_name"`
	Language        string `json:"language"`
	HTMLURL         string `json:"html_url"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	Size            int    `json:"size"`
}

// * One public activity record. Only PushEventType carries a payload we read.
type Event struct {
	Type      string      `json:"type"`
	CreatedAt time.Time   `json:"created_at"`
	Repo      EventRepo   `json:"repo"`
	Payload   PushPayload `json:"payload"`
}

const PushEventType = "PushEvent"

type EventRepo struct {
	Name string `json:"name"` // "owner/repo"
}

type PushPayload struct {
	Size    *int          `json:"size,omitempty"`
	Commits []EventCommit `json:"commits"`
}

type EventCommit struct {
	SHA     string       `json:"sha"`
	Message string       `json:"message"`
	Author  CommitAuthor `json:"author"`
}

type CommitAuthor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type searchResult struct {
	TotalCount int `json:"total_count"`
}
