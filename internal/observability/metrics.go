// Package observability provides Prometheus metrics for the application.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GithubRequestsTotal counts outbound GitHub API calls by outcome.
	GithubRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnect_github_requests_total",
		Help: "Total number of outbound GitHub API requests by outcome",
	}, []string{"outcome"})

	// GithubCacheHitsTotal counts GitHub repo lookups served from Redis.
	GithubCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devconnect_github_cache_hits_total",
		Help: "Total number of GitHub repo lookups served from cache",
	})

	// GithubRetriesTotal counts transport-level retries against GitHub.
	GithubRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devconnect_github_retries_total",
		Help: "Total number of retried GitHub API requests",
	})
)
