package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"gitcards/internal/github"
	"gitcards/internal/stats"
	"gitcards/pkg/errors"
	"gitcards/pkg/logger"
)

// * GitHubClient is the fetch surface needed by the pipeline
type GitHubClient interface {
	GetUser(ctx context.Context, username string) (*github.User, error)
	ListRepositories(ctx context.Context, username string) ([]github.Repository, error)
	ListPublicEvents(ctx context.Context, username string) ([]github.Event, error)
	CountSearchIssues(ctx context.Context, query string) (int, error)
}

type ProfileService struct {
	client GitHubClient
	loc    *time.Location
}

func NewProfileService(client GitHubClient) *ProfileService {
	return &ProfileService{
		client: client,
		loc:    time.Local,
	}
}

// * WithLocation overrides the zone used for hour bucketing. Tests use this
// * to pin the histogram to a known zone.
func (s *ProfileService) WithLocation(loc *time.Location) *ProfileService {
	s.loc = loc
	return s
}

// * Outcome of one best-effort fetch: either the events arrived or the fetch
// * degraded and the sample is empty. Collected here and merged once so the
// * degraded-vs-healthy distinction stays explicit.
type eventFetch struct {
	events   []github.Event
	degraded bool
}

// * FetchProfileData runs the whole pipeline for one account: profile first
// * (fatal on failure), then repositories, events and search counts
// * concurrently, then the pure aggregation pass. Events and search failures
// * degrade to empty/zero values; only profile failure, an unexpected
// * repository exception, or cancellation abort the pipeline.
func (s *ProfileService) FetchProfileData(ctx context.Context, username string) (*stats.ProfileData, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.InvalidUsername(username)
	}

	user, err := s.client.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}

	var (
		wg       sync.WaitGroup
		repos    []github.Repository
		reposErr error
		events   eventFetch
		counts   stats.SearchCounts
	)

	wg.Add(3)

	go func() {
		defer wg.Done()
		repos, reposErr = s.client.ListRepositories(ctx, username)
	}()

	go func() {
		defer wg.Done()
		evs, err := s.client.ListPublicEvents(ctx, username)
		if err != nil {
			logger.Warn("Event fetch for %s degraded to empty sample: %v", username, err)
			events = eventFetch{degraded: true}
			return
		}
		events = eventFetch{events: evs}
	}()

	go func() {
		defer wg.Done()
		counts = s.fetchSearchCounts(ctx, username)
	}()

	wg.Wait()

	// * An aborted run must not surface anything but the cancellation itself
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if reposErr != nil {
		return nil, reposErr
	}

	profile := stats.ProfileFromUser(user)
	if profile.Email == "" {
		if email := stats.ExtractCommitEmail(events.events); email != "" {
			profile.Email = email
		}
	}

	agg := stats.BuildAggregate(stats.Input{
		Repositories: repos,
		Events:       events.events,
		Search:       counts,
	}, s.loc)

	if events.degraded {
		logger.Info("Serving degraded snapshot for %s (no event sample)", username)
	}

	return &stats.ProfileData{
		Profile:   profile,
		Repos:     stats.ReposFromRepositories(repos),
		Aggregate: *agg,
	}, nil
}

// * Three independent counting queries; failure of any one yields 0 for that
// * metric only. "Contributed to" is approximated by PRs authored on repos
// * the user does not own (PRs only, a documented product approximation).
func (s *ProfileService) fetchSearchCounts(ctx context.Context, username string) stats.SearchCounts {
	var (
		wg     sync.WaitGroup
		counts stats.SearchCounts
	)

	wg.Add(3)

	go func() {
		defer wg.Done()
		counts.TotalIssues = s.countOrZero(ctx, fmt.Sprintf("author:%s type:issue", username), "issues")
	}()

	go func() {
		defer wg.Done()
		counts.TotalPRs = s.countOrZero(ctx, fmt.Sprintf("author:%s type:pr", username), "pull requests")
	}()

	go func() {
		defer wg.Done()
		counts.ContributedTo = s.countOrZero(ctx, fmt.Sprintf("author:%s type:pr -user:%s", username, username), "contributed-to")
	}()

	wg.Wait()
	return counts
}

func (s *ProfileService) countOrZero(ctx context.Context, query, metric string) int {
	n, err := s.client.CountSearchIssues(ctx, query)
	if err != nil {
		logger.Warn("Search metric %q degraded to 0: %v", metric, err)
		return 0
	}
	return n
}
