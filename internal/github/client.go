package github

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"gitcards/pkg/errors"
	"gitcards/pkg/logger"

	"github.com/codeGROOVE-dev/retry"
)

var (
	baseURL = "https://api.github.com"
)

const userAgent = "gitcards"

type Client struct {
	httpClient *http.Client
	token      string
}

func NewClient(token string) *Client {
	client := &http.Client{
		Timeout:   30 * time.Second,
		Transport: newRateLimitTransport(http.DefaultTransport),
	}

	return &Client{
		httpClient: client,
		token:      token,
	}
}

// * statusError marks a response that stayed non-2xx after retries were exhausted
type statusError struct {
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("GitHub API returned status %d", e.status)
}

func (c *Client) makeRequest(ctx context.Context, method, path string) (*http.Response, error) {
	var resp *http.Response

	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, method, baseURL+path, nil)
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("failed to create HTTP request: %w", err))
			}

			if c.token != "" {
				req.Header.Set("Authorization", "Bearer "+c.token)
			}
			req.Header.Set("Accept", "application/vnd.github.v3+json")
			req.Header.Set("User-Agent", userAgent)

			resp, err = c.httpClient.Do(req)
			if err != nil {
				return err
			}

			// * Server errors are worth another attempt; everything else is final
			if resp.StatusCode >= http.StatusInternalServerError {
				status := resp.StatusCode
				if _, err := io.Copy(io.Discard, resp.Body); err != nil {
					logger.Debug("failed to drain response body: %v", err)
				}
				resp.Body.Close()
				return &statusError{status: status}
			}

			return nil
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(200*time.Millisecond),
		retry.MaxDelay(2*time.Second),
		retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		retry.MaxJitter(100*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Debug("Retrying GitHub request %s (attempt %d): %v", path, n+2, err)
		}),
	)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func decodeBody(resp *http.Response, out any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read GitHub API response: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse GitHub API response: %w", err)
	}

	return nil
}

// * GetUser fetches the public profile. Its failure is fatal to the whole pipeline.
func (c *Client) GetUser(ctx context.Context, username string) (*User, error) {
	resp, err := c.makeRequest(ctx, http.MethodGet, "/users/"+url.PathEscape(username))
	if err != nil {
		if se := asStatusError(err); se != nil {
			return nil, errors.Upstream(se.status)
		}
		return nil, errors.New(
			errors.RefGitHubAPI,
			"Failed to reach GitHub",
			fmt.Sprintf("Could not retrieve profile for %q from GitHub API", username),
			err,
			errors.LevelFatal,
		)
	}

	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, errors.UserNotFound(username)
	}

	if resp.StatusCode != http.StatusOK {
		status := resp.StatusCode
		resp.Body.Close()
		return nil, errors.Upstream(status)
	}

	var user User
	if err := decodeBody(resp, &user); err != nil {
		return nil, errors.New(
			errors.RefGitHubAPI,
			"Failed to parse GitHub profile",
			"Could not understand the profile data returned by GitHub API",
			err,
			errors.LevelError,
		)
	}

	return &user, nil
}

// * ListRepositories fetches up to 100 public repos, most recently updated first.
// * A non-success status degrades to an empty list; only transport-level failures
// * after retries surface as errors.
func (c *Client) ListRepositories(ctx context.Context, username string) ([]Repository, error) {
	path := "/users/" + url.PathEscape(username) + "/repos?per_page=100&sort=updated"

	resp, err := c.makeRequest(ctx, http.MethodGet, path)
	if err != nil {
		if se := asStatusError(err); se != nil {
			logger.Warn("Repository listing for %s degraded to empty (status %d)", username, se.status)
			return []Repository{}, nil
		}
		return nil, errors.New(
			errors.RefGitHubAPI,
			"Failed to fetch repositories from GitHub",
			fmt.Sprintf("Could not retrieve repositories for %q from GitHub API", username),
			err,
			errors.LevelError,
		)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Repository listing for %s degraded to empty (status %d)", username, resp.StatusCode)
		resp.Body.Close()
		return []Repository{}, nil
	}

	var repos []Repository
	if err := decodeBody(resp, &repos); err != nil {
		return nil, errors.New(
			errors.RefGitHubAPI,
			"Failed to parse repositories from GitHub",
			"Could not understand the repository data returned by GitHub API",
			err,
			errors.LevelError,
		)
	}

	if repos == nil {
		repos = []Repository{}
	}

	return repos, nil
}

// * ListPublicEvents fetches up to 100 recent public events. The caller treats
// * any returned error as a degraded (non-fatal) fetch.
func (c *Client) ListPublicEvents(ctx context.Context, username string) ([]Event, error) {
	path := "/users/" + url.PathEscape(username) + "/events/public?per_page=100"

	resp, err := c.makeRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch public events: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		status := resp.StatusCode
		resp.Body.Close()
		return nil, fmt.Errorf("public events fetch returned status %d", status)
	}

	var events []Event
	if err := decodeBody(resp, &events); err != nil {
		return nil, err
	}

	return events, nil
}

// * CountSearchIssues runs one counting query against the search endpoint and
// * returns the total_count. Failures are the caller's to absorb.
func (c *Client) CountSearchIssues(ctx context.Context, query string) (int, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("per_page", "1")

	resp, err := c.makeRequest(ctx, http.MethodGet, "/search/issues?"+params.Encode())
	if err != nil {
		return 0, fmt.Errorf("failed to run search query: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		status := resp.StatusCode
		resp.Body.Close()
		return 0, fmt.Errorf("search query returned status %d", status)
	}

	var result searchResult
	if err := decodeBody(resp, &result); err != nil {
		return 0, err
	}

	return result.TotalCount, nil
}

func asStatusError(err error) *statusError {
	var se *statusError
	if stderrors.As(err, &se) {
		return se
	}
	return nil
}
