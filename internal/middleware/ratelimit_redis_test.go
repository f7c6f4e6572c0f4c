package middleware

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinetrack-web/internal/config"
)

func redisBucket(t *testing.T, capacity int) (*miniredis.Miniredis, *echo.Echo) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := config.RateLimitConfig{
		Enabled:        true,
		Capacity:       capacity,
		RefillTokens:   1,
		RefillInterval: time.Hour,
		TTL:            2 * time.Hour,
		KeyStrategy:    "ip_route",
		Prefix:         "rl",
	}
	e := echo.New()
	e.POST("/login", okHandler, NewTokenBucket(cfg, rdb))
	return mr, e
}

func TestRedisBucketDeniesOverCapacity(t *testing.T) {
	mr, e := redisBucket(t, 2)

	rec := serve(e, http.MethodPost, "/login")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))

	rec = serve(e, http.MethodPost, "/login")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = serve(e, http.MethodPost, "/login")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "3600", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "Too many requests")

	// httptest requests come from 192.0.2.1.
	key := "rl:ip:192.0.2.1:route:POST /login"
	require.True(t, mr.Exists(key))
	assert.Equal(t, 2*time.Hour, mr.TTL(key))
	assert.Equal(t, "0", mr.HGet(key, "tokens"))
}

func TestRedisBucketRefills(t *testing.T) {
	mr, e := redisBucket(t, 1)
	key := "rl:ip:192.0.2.1:route:POST /login"

	assert.Equal(t, http.StatusOK, serve(e, http.MethodPost, "/login").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(e, http.MethodPost, "/login").Code)

	// Pretend the last refill happened more than one interval ago.
	ts := time.Now().Add(-61 * time.Minute).UnixMilli()
	mr.HSet(key, "ts", strconv.FormatInt(ts, 10))

	assert.Equal(t, http.StatusOK, serve(e, http.MethodPost, "/login").Code)
}

func TestRedisBucketFailsOpen(t *testing.T) {
	mr, e := redisBucket(t, 1)
	mr.Close()

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, serve(e, http.MethodPost, "/login").Code)
	}
}
