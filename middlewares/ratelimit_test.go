package middlewares

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dugun.link/pkg/ratelimit"
)

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time { return c.now }

func newRateLimitedApp(limiter *ratelimit.Limiter, bucket ratelimit.Bucket) *fiber.App {
	app := fiber.New()
	app.Get("/test", RateLimitWith(limiter, bucket), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	return app
}

func TestRateLimit_BlocksAboveMaxAndSetsHeaders(t *testing.T) {
	clock := &manualClock{now: time.Unix(1_700_000_000, 0)}
	limiter := ratelimit.NewWithPolicies(
		ratelimit.NewMemoryStoreWithClock(clock.Now),
		map[ratelimit.Bucket]ratelimit.Policy{
			ratelimit.BucketRSVP: {Max: 5, Window: time.Hour},
		},
	)
	app := newRateLimitedApp(limiter, ratelimit.BucketRSVP)

	for i := 1; i <= 5; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "istek %d", i)
		assert.Equal(t, "5", resp.Header.Get("RateLimit-Limit"))
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "0", resp.Header.Get("RateLimit-Remaining"))
	assert.NotEmpty(t, resp.Header.Get("RateLimit-Reset"))
}

func TestRateLimit_NewWindowAllowsAgain(t *testing.T) {
	clock := &manualClock{now: time.Unix(1_700_000_000, 0)}
	limiter := ratelimit.NewWithPolicies(
		ratelimit.NewMemoryStoreWithClock(clock.Now),
		map[ratelimit.Bucket]ratelimit.Policy{
			ratelimit.BucketRSVP: {Max: 1, Window: time.Hour},
		},
	)
	app := newRateLimitedApp(limiter, ratelimit.BucketRSVP)

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	clock.now = clock.now.Add(time.Hour + time.Second)

	resp, err = app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "yeni pencerede istek kabul edilmeli")
}

func TestRateLimit_UndefinedBucketOmitsHeaders(t *testing.T) {
	limiter := ratelimit.NewWithPolicies(ratelimit.NewMemoryStore(), map[ratelimit.Bucket]ratelimit.Policy{})
	app := newRateLimitedApp(limiter, ratelimit.BucketRSVP)

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("RateLimit-Limit"), "sınırsız kararda başlık yazılmamalı")
	assert.Empty(t, resp.Header.Get("RateLimit-Remaining"))
	assert.Empty(t, resp.Header.Get("RateLimit-Reset"))
}

type failingStore struct{}

func (failingStore) Incr(context.Context, string, time.Duration) (int64, time.Time, error) {
	return 0, time.Time{}, errors.New("depo erişilemez")
}

func TestRateLimit_FailsOpenOnStoreError(t *testing.T) {
	limiter := ratelimit.NewWithPolicies(failingStore{}, map[ratelimit.Bucket]ratelimit.Policy{
		ratelimit.BucketRSVP: {Max: 1, Window: time.Hour},
	})
	app := newRateLimitedApp(limiter, ratelimit.BucketRSVP)

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "depo hatasında istekler geçirilmeli")
	}
}
