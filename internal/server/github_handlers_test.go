package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"devconnect/internal/github"
	"devconnect/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGithubRepos(t *testing.T) {
	upstreamHits := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamHits++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"dotfiles"}]`))
	}))
	defer upstream.Close()

	mr := miniredis.RunT(t)

	s, app := setupTestServer(t)
	s.redis = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s.github = github.NewClientWithBaseURL(upstream.URL, "", "")

	resp := doJSON(t, app, http.MethodGet, "/api/profile/github/octocat", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var repos []map[string]any
	decodeBody(t, resp, &repos)
	require.Len(t, repos, 1)
	assert.Equal(t, "dotfiles", repos[0]["name"])
	assert.Equal(t, 1, upstreamHits)

	// Second request is served from the cache.
	resp = doJSON(t, app, http.MethodGet, "/api/profile/github/octocat", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &repos)
	require.Len(t, repos, 1)
	assert.Equal(t, 1, upstreamHits)

	// A different username misses the cache.
	resp = doJSON(t, app, http.MethodGet, "/api/profile/github/other", "", nil)
	_ = resp.Body.Close()
	assert.Equal(t, 2, upstreamHits)
}

func TestGetGithubReposUnknownUser(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	s, app := setupTestServer(t)
	s.github = github.NewClientWithBaseURL(upstream.URL, "", "")

	resp := doJSON(t, app, http.MethodGet, "/api/profile/github/no-such-user", "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body models.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "No GitHub profile found", body.Error)
}

func TestGetGithubReposWorksWithoutRedis(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer upstream.Close()

	s, app := setupTestServer(t)
	s.github = github.NewClientWithBaseURL(upstream.URL, "", "")

	resp := doJSON(t, app, http.MethodGet, "/api/profile/github/octocat", "", nil)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
