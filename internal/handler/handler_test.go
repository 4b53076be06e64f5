package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shariq7739/GitExplore/internal/models"
	"github.com/Shariq7739/GitExplore/internal/service"
)

// stubService scripts the gateway service for HTTP-layer tests.
type stubService struct {
	repo     *models.Repository
	search   *models.SearchResult
	trending []models.Repository
	err      error

	gotOwner, gotRepo, gotQuery string
	gotPage, gotPerPage         int
}

func (s *stubService) GetRepository(_ context.Context, owner, repo string) (*models.Repository, error) {
	s.gotOwner, s.gotRepo = owner, repo
	return s.repo, s.err
}

func (s *stubService) SearchRepositories(_ context.Context, query string, page, perPage int) (*models.SearchResult, error) {
	s.gotQuery, s.gotPage, s.gotPerPage = query, page, perPage
	return s.search, s.err
}

func (s *stubService) GetTrending(_ context.Context, page, perPage int) ([]models.Repository, error) {
	s.gotPage, s.gotPerPage = page, perPage
	return s.trending, s.err
}

func newTestApp(svc service.ExploreService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	RegisterRoutes(app, svc)
	return app
}

func doRequest(t *testing.T, app *fiber.App, target string) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestGetRepoReturnsTheRepository(t *testing.T) {
	svc := &stubService{repo: &models.Repository{ID: 42, FullName: "facebook/react"}}
	app := newTestApp(svc)

	resp, body := doRequest(t, app, "/api/v1/github/repo?owner=facebook&repo=react")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got models.Repository
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "facebook/react", got.FullName)
	assert.Equal(t, "facebook", svc.gotOwner)
	assert.Equal(t, "react", svc.gotRepo)
}

func TestServiceErrorsRenderAsMessageBodies(t *testing.T) {
	cases := []struct {
		name string
		err  *service.StatusError
	}{
		{"missing token", &service.StatusError{Code: 500, Message: "GitHub token not configured"}},
		{"missing params", &service.StatusError{Code: 400, Message: "Owner and repo are required"}},
		{"not found", &service.StatusError{Code: 404, Message: "Repository not found"}},
		{"upstream failure", &service.StatusError{Code: 502, Message: "Failed to fetch from GitHub API"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(&stubService{err: tc.err})

			resp, body := doRequest(t, app, "/api/v1/github/repo?owner=a&repo=b")

			assert.Equal(t, tc.err.Code, resp.StatusCode)
			var got map[string]string
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, map[string]string{"message": tc.err.Message}, got)
		})
	}
}

func TestSearchPassesQueryAndPagination(t *testing.T) {
	svc := &stubService{search: &models.SearchResult{
		TotalCount: 1,
		Items:      []models.Repository{{ID: 1, Name: "react"}},
	}}
	app := newTestApp(svc)

	resp, body := doRequest(t, app, "/api/v1/github/search?q=react&page=3&per_page=5")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "react", svc.gotQuery)
	assert.Equal(t, 3, svc.gotPage)
	assert.Equal(t, 5, svc.gotPerPage)
	var got models.SearchResult
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, 1, got.TotalCount)
}

func TestSearchDefaultsPagination(t *testing.T) {
	svc := &stubService{search: &models.SearchResult{Items: []models.Repository{}}}
	app := newTestApp(svc)

	doRequest(t, app, "/api/v1/github/search?q=react")

	assert.Equal(t, service.DefaultPage, svc.gotPage)
	assert.Equal(t, service.DefaultPerPage, svc.gotPerPage)
}

func TestSearchEmptyQueryIsAValidRequest(t *testing.T) {
	svc := &stubService{search: &models.SearchResult{Items: []models.Repository{}}}
	app := newTestApp(svc)

	resp, body := doRequest(t, app, "/api/v1/github/search")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"total_count":0,"incomplete_results":false,"items":[]}`, string(body))
}

func TestTrendingWrapsItems(t *testing.T) {
	svc := &stubService{trending: []models.Repository{{ID: 1, Name: "hot"}}}
	app := newTestApp(svc)

	resp, body := doRequest(t, app, "/api/v1/github/trending")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got struct {
		Items []models.Repository `json:"items"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got.Items, 1)
	assert.Equal(t, "hot", got.Items[0].Name)
}

func TestHealthReportsTokenState(t *testing.T) {
	app := fiber.New()
	NewHealthHandler(false).Register(app)

	resp, body := doRequest(t, app, "/health")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","github":"missing_token"}`, string(body))
}
