package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// The limiter must refill continuously across the minute; a refill rate
// of one token per minute would stall every caller after the first burst.
func TestRequestLimiterRefillRate(t *testing.T) {
	limiter := newRequestLimiter()

	assert.Equal(t, requestsPerMinute, limiter.Burst())
	assert.Equal(t, rate.Every(time.Minute/requestsPerMinute), limiter.Limit())

	// Draining the burst must leave the limiter refilling well before
	// the minute is up.
	for i := 0; i < requestsPerMinute; i++ {
		require.True(t, limiter.Allow())
	}
	reservation := limiter.Reserve()
	defer reservation.Cancel()
	assert.LessOrEqual(t, reservation.Delay(), time.Minute/requestsPerMinute)
}

func TestIsRetryableError(t *testing.T) {
	cases := []struct {
		err       error
		retryable bool
	}{
		{errors.New("googleapi: Error 429: rate limit exceeded"), true},
		{errors.New("upstream 503 service unavailable"), true},
		{errors.New("connection reset by peer"), true},
		{errors.New("invalid API key"), false},
		{errors.New("content blocked by safety settings"), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.retryable, isRetryableError(tc.err), tc.err.Error())
	}
}

func TestResponseCacheExpiry(t *testing.T) {
	service := &GeminiService{cache: make(map[string]*CachedResponse)}

	service.cacheResponse("key", "value")
	assert.Equal(t, "value", service.getFromCache("key"))
	assert.Empty(t, service.getFromCache("other"))

	service.cache["key"].ExpiresAt = time.Now().Add(-time.Second)
	assert.Empty(t, service.getFromCache("key"))

	service.cleanupExpiredCache()
	_, exists := service.cache["key"]
	assert.False(t, exists)
}
