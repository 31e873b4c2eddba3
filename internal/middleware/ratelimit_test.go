package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestCheckRateLimitAllowsUpToLimit(t *testing.T) {
	rdb := newTestRedis(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, err := CheckRateLimit(ctx, rdb, "login", "1.2.3.4", 2, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should pass", i+1)
	}

	allowed, err := CheckRateLimit(ctx, rdb, "login", "1.2.3.4", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed, "third request should be blocked")
}

func TestCheckRateLimitScopesByResourceAndID(t *testing.T) {
	rdb := newTestRedis(t)
	ctx := context.Background()

	allowed, err := CheckRateLimit(ctx, rdb, "login", "1.2.3.4", 1, time.Minute)
	require.NoError(t, err)
	require.True(t, allowed)

	// Same ID, different resource: independent counter.
	allowed, err = CheckRateLimit(ctx, rdb, "register", "1.2.3.4", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)

	// Same resource, different ID: independent counter.
	allowed, err = CheckRateLimit(ctx, rdb, "login", "5.6.7.8", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestCheckRateLimitFailsOpenWithoutRedis(t *testing.T) {
	for i := 0; i < 10; i++ {
		allowed, err := CheckRateLimit(context.Background(), nil, "login", "1.2.3.4", 1, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}
