package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"gitcards/internal/cache"
	"gitcards/internal/github"
	"gitcards/internal/service"
	"gitcards/pkg/errors"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// * Canned-response client; call counters make cache hits observable
type fakeGitHubClient struct {
	user     *github.User
	userErr  error
	repos    []github.Repository
	events   []github.Event
	getCalls int64
}

func (f *fakeGitHubClient) GetUser(ctx context.Context, username string) (*github.User, error) {
	atomic.AddInt64(&f.getCalls, 1)
	if f.userErr != nil {
		return nil, f.userErr
	}
	return f.user, nil
}

func (f *fakeGitHubClient) ListRepositories(ctx context.Context, username string) ([]github.Repository, error) {
	return f.repos, nil
}

func (f *fakeGitHubClient) ListPublicEvents(ctx context.Context, username string) ([]github.Event, error) {
	return f.events, nil
}

func (f *fakeGitHubClient) CountSearchIssues(ctx context.Context, query string) (int, error) {
	return 2, nil
}

var _ service.GitHubClient = (*fakeGitHubClient)(nil)

func newTestRouter(client *fakeGitHubClient) *mux.Router {
	svc := service.NewProfileService(client).WithLocation(time.UTC)
	h := NewCardHandler(svc, cache.NewCardCache(time.Minute))
	h.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }

	router := mux.NewRouter()
	h.RegisterRoutes(router.PathPrefix("/v1").Subrouter())
	return router
}

func healthyClient() *fakeGitHubClient {
	return &fakeGitHubClient{
		user: &github.User{
			Login:     "octocat",
			Name:      "The Octocat",
			CreatedAt: time.Date(2011, 1, 25, 0, 0, 0, 0, time.UTC),
		},
		repos: []github.Repository{
			{Name: "alpha", Language: "Go", StargazersCount: 5},
		},
	}
}

func TestGetCard(t *testing.T) {
	router := newTestRouter(healthyClient())

	req := httptest.NewRequest("GET", "/v1/card/octocat/stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=1800, s-maxage=1800, stale-while-revalidate=3600", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), "GitHub Stats")
}

func TestGetCard_ThemeQueryParam(t *testing.T) {
	router := newTestRouter(healthyClient())

	req := httptest.NewRequest("GET", "/v1/card/octocat/stats?theme=dracula", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	// * Dracula background color
	assert.Contains(t, rec.Body.String(), "#282a36")
}

func TestGetCard_SecondRequestServedFromCache(t *testing.T) {
	client := healthyClient()
	router := newTestRouter(client)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/v1/card/octocat/stats", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, int64(1), atomic.LoadInt64(&client.getCalls))
}

func TestGetCard_UnknownType(t *testing.T) {
	router := newTestRouter(healthyClient())

	req := httptest.NewRequest("GET", "/v1/card/octocat/contributions-calendar", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Unknown chart type")
}

func TestGetCard_UserNotFound(t *testing.T) {
	client := &fakeGitHubClient{userErr: errors.UserNotFound("ghost")}
	router := newTestRouter(client)

	req := httptest.NewRequest("GET", "/v1/card/ghost/stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	// * Failures are delivered as an error SVG so embedded <img> tags show them
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "not found")
	assert.Empty(t, rec.Header().Get("Cache-Control"))
}

func TestGetProfileStats(t *testing.T) {
	router := newTestRouter(healthyClient())

	req := httptest.NewRequest("GET", "/v1/profiles/octocat/stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "Successfully fetched profile stats", resp.Message)

	payload := resp.Data.(map[string]any)
	profile := payload["profile"].(map[string]any)
	assert.Equal(t, "octocat", profile["login"])
	assert.Equal(t, float64(5), payload["totalStars"])
}

func TestGetProfileStats_NotFoundReturnsJSONError(t *testing.T) {
	client := &fakeGitHubClient{userErr: errors.UserNotFound("ghost")}
	router := newTestRouter(client)

	req := httptest.NewRequest("GET", "/v1/profiles/ghost/stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp errors.HTTPErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, errors.RefUserNotFound, resp.ErrorRef)
}

func TestGetThemes(t *testing.T) {
	router := newTestRouter(healthyClient())

	req := httptest.NewRequest("GET", "/v1/themes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)

	names := resp.Data.([]any)
	assert.Len(t, names, 6)
	assert.Contains(t, names, "default")
	assert.Contains(t, names, "dracula")
}

func TestGetHealth(t *testing.T) {
	router := newTestRouter(healthyClient())

	req := httptest.NewRequest("GET", "/v1/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestGetCard_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(healthyClient())

	req := httptest.NewRequest("POST", "/v1/card/octocat/stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
