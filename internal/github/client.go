// Package github proxies the public GitHub API for profile repo listings.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"devconnect/internal/middleware"
	"devconnect/internal/models"
	"devconnect/internal/observability"
)

const (
	defaultBaseURL = "https://api.github.com"
	requestTimeout = 10 * time.Second
)

// Client fetches a user's public repositories from GitHub. Credentials are
// optional; without them the upstream applies its unauthenticated rate limit.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
}

// NewClient creates a GitHub client. clientID and clientSecret may be empty.
func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: requestTimeout},
		baseURL:      defaultBaseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(baseURL, clientID, clientSecret string) *Client {
	c := NewClient(clientID, clientSecret)
	c.baseURL = baseURL
	return c
}

// Repos returns the user's five most recently created public repositories as
// raw JSON. The payload is passed through untouched so the response shape
// tracks the upstream API.
func (c *Client) Repos(ctx context.Context, username string) (json.RawMessage, error) {
	reqURL := c.reposURL(username)

	body, status, err := c.fetch(ctx, reqURL)
	if err != nil {
		// One retry on transport failure. Upstream errors here are
		// almost always transient connection resets.
		observability.GithubRetriesTotal.Inc()
		body, status, err = c.fetch(ctx, reqURL)
	}
	if err != nil {
		observability.GithubRequestsTotal.WithLabelValues("error").Inc()
		middleware.Logger.ErrorContext(ctx, "github request failed",
			"error", err.Error(), "username", username)
		return nil, models.NewUpstreamError(err)
	}

	if status != http.StatusOK {
		observability.GithubRequestsTotal.WithLabelValues("not_found").Inc()
		return nil, &models.AppError{Code: models.CodeNotFound, Message: "No GitHub profile found"}
	}

	observability.GithubRequestsTotal.WithLabelValues("ok").Inc()
	return json.RawMessage(body), nil
}

func (c *Client) reposURL(username string) string {
	q := url.Values{}
	q.Set("per_page", "5")
	q.Set("sort", "created:asc")
	if c.clientID != "" && c.clientSecret != "" {
		q.Set("client_id", c.clientID)
		q.Set("client_secret", c.clientSecret)
	}
	return fmt.Sprintf("%s/users/%s/repos?%s", c.baseURL, url.PathEscape(username), q.Encode())
}

func (c *Client) fetch(ctx context.Context, reqURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "devconnect")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}
