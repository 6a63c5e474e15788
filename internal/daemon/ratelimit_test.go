package daemon

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thand-io/console/internal/models"
)

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(rate float64, burst int) (*RateLimiter, *manualClock) {
	clock := &manualClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(rate, burst)
	rl.now = clock.Now
	return rl, clock
}

func TestNewRateLimiterFromConfig(t *testing.T) {
	tests := []struct {
		name      string
		cfg       models.RateLimitConfig
		wantNil   bool
		wantRate  float64
		wantBurst int
	}{
		{"disabled", models.RateLimitConfig{}, true, 0, 0},
		{"per minute", models.RateLimitConfig{RequestsPerMinute: 120, Burst: 10}, false, 2.0, 10},
		{"burst defaults to one", models.RateLimitConfig{RequestsPerMinute: 60}, false, 1.0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewRateLimiterFromConfig(tt.cfg)
			if tt.wantNil {
				assert.Nil(t, rl)
				return
			}
			require.NotNil(t, rl)
			assert.Equal(t, tt.wantRate, rl.rate)
			assert.Equal(t, tt.wantBurst, rl.burst)
		})
	}
}

func TestRateLimiter_Burst(t *testing.T) {
	rl, _ := newTestLimiter(5.0, 10)

	for i := range 10 {
		assert.True(t, rl.Allow("10.0.0.1"), "request %d should be allowed within burst", i+1)
	}
	assert.False(t, rl.Allow("10.0.0.1"), "request exceeding burst should be denied")
}

func TestRateLimiter_Refill(t *testing.T) {
	rl, clock := newTestLimiter(5.0, 10)

	for range 10 {
		rl.Allow("10.0.0.1")
	}
	require.False(t, rl.Allow("10.0.0.1"))

	// 200ms is one token at 5 tokens per second
	clock.Advance(200 * time.Millisecond)
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiter_TokensCapAtBurst(t *testing.T) {
	rl, clock := newTestLimiter(5.0, 10)

	for range 5 {
		rl.Allow("10.0.0.1")
	}

	clock.Advance(time.Hour)

	for i := range 10 {
		assert.True(t, rl.Allow("10.0.0.1"), "request %d should be allowed", i+1)
	}
	assert.False(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiter_IndependentIPs(t *testing.T) {
	rl, _ := newTestLimiter(1.0, 2)

	rl.Allow("10.0.0.1")
	rl.Allow("10.0.0.1")
	assert.False(t, rl.Allow("10.0.0.1"))

	assert.True(t, rl.Allow("10.0.0.2"))
	assert.Equal(t, 2, rl.Size())
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl, clock := newTestLimiter(5.0, 10)

	rl.Allow("10.0.0.1")
	clock.Advance(8 * time.Minute)
	rl.Allow("10.0.0.2")
	clock.Advance(3 * time.Minute)

	assert.Equal(t, 1, rl.Cleanup(rateLimiterStaleAfter))
	assert.Equal(t, 1, rl.Size())

	_, ok := rl.buckets.Load("10.0.0.2")
	assert.True(t, ok)
}

func TestRateLimiter_StartAndStop(t *testing.T) {
	rl, _ := newTestLimiter(5.0, 10)

	require.NoError(t, rl.StartCleanup())
	assert.NotNil(t, rl.scheduler)

	rl.Stop()
	assert.Nil(t, rl.scheduler)

	// Stopping twice is safe
	rl.Stop()

	var disabled *RateLimiter
	assert.NoError(t, disabled.StartCleanup())
	disabled.Stop()
}

func TestRateLimiter_ConcurrentAccess(t *testing.T) {
	rl, _ := newTestLimiter(100.0, 200)

	var wg sync.WaitGroup
	for range 100 {
		wg.Go(func() {
			rl.Allow("10.0.0.1")
		})
	}
	wg.Wait()

	assert.Equal(t, 1, rl.Size())
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl, _ := newTestLimiter(1.0, 1)

	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Rate limit exceeded")
}

func TestRateLimiter_NilMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var rl *RateLimiter

	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for range 5 {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
