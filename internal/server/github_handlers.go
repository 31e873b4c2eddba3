package server

import (
	"encoding/json"
	"time"

	"devconnect/internal/cache"
	"devconnect/internal/observability"

	"github.com/gofiber/fiber/v2"
)

const githubCacheTTL = 10 * time.Minute

// GetGithubRepos proxies the user's five most recent public GitHub repos,
// serving from Redis when a fresh copy exists.
func (s *Server) GetGithubRepos(c *fiber.Ctx) error {
	username := c.Params("username")
	ctx := c.UserContext()
	key := "gh:repos:" + username

	var cached json.RawMessage
	if found, err := cache.GetJSON(ctx, s.redis, key, &cached); err == nil && found {
		observability.GithubCacheHitsTotal.Inc()
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(cached)
	}

	repos, err := s.github.Repos(ctx, username)
	if err != nil {
		return respondAppError(c, err)
	}

	_ = cache.SetJSON(ctx, s.redis, key, repos, githubCacheTTL)

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(repos)
}
