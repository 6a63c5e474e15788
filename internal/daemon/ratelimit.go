package daemon

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/thand-io/console/internal/models"
)

const (
	rateLimiterCleanupInterval = 5 * time.Minute
	rateLimiterStaleAfter      = 10 * time.Minute
)

// RateLimiter limits API requests per client IP with a token bucket. Each
// client may burst up to burst requests and then rate requests per second.
type RateLimiter struct {
	buckets   sync.Map // client IP -> *bucket
	rate      float64
	burst     int
	now       func() time.Time
	scheduler *gocron.Scheduler
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
}

// NewRateLimiter creates a limiter adding rate tokens per second with a
// bucket capacity of burst.
func NewRateLimiter(rate float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		rate:  rate,
		burst: burst,
		now:   time.Now,
	}

	logrus.WithFields(logrus.Fields{
		"rate":  rate,
		"burst": burst,
	}).Info("Rate limiter initialized")

	return rl
}

// NewRateLimiterFromConfig converts a per minute limit. A zero limit
// disables rate limiting and returns nil.
func NewRateLimiterFromConfig(cfg models.RateLimitConfig) *RateLimiter {
	if cfg.RequestsPerMinute <= 0 {
		return nil
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return NewRateLimiter(float64(cfg.RequestsPerMinute)/60.0, burst)
}

// Middleware rejects requests over the limit with 429. A nil limiter lets
// every request through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()

		if !rl.Allow(ip) {
			logrus.WithFields(logrus.Fields{
				"ip":     ip,
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
			}).Warn("Rate limit exceeded")

			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse{
				Code:    http.StatusTooManyRequests,
				Title:   "Too Many Requests",
				Message: "Rate limit exceeded. Please try again later.",
			})
			return
		}

		c.Next()
	}
}

// Allow refills the client's bucket for the time elapsed since its last
// request and consumes one token if available.
func (rl *RateLimiter) Allow(ip string) bool {
	now := rl.now()

	value, _ := rl.buckets.LoadOrStore(ip, &bucket{
		tokens:     float64(rl.burst),
		lastRefill: now,
	})

	b := value.(*bucket)
	b.mu.Lock()
	defer b.mu.Unlock()

	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens = min(b.tokens+elapsed*rl.rate, float64(rl.burst))
	b.lastRefill = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		return true
	}

	return false
}

// Cleanup removes buckets idle for longer than maxIdle and returns how many
// were removed.
func (rl *RateLimiter) Cleanup(maxIdle time.Duration) int {
	cutoff := rl.now().Add(-maxIdle)
	count := 0

	rl.buckets.Range(func(key, value any) bool {
		b := value.(*bucket)
		b.mu.Lock()
		stale := b.lastRefill.Before(cutoff)
		b.mu.Unlock()

		if stale {
			rl.buckets.Delete(key)
			count++
		}
		return true
	})

	if count > 0 {
		logrus.WithField("count", count).Debug("Cleaned up stale rate limiter buckets")
	}

	return count
}

// StartCleanup periodically drops stale buckets until Stop is called.
func (rl *RateLimiter) StartCleanup() error {
	if rl == nil || rl.scheduler != nil {
		return nil
	}

	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.SingletonModeAll()

	_, err := scheduler.Every(rateLimiterCleanupInterval).
		WaitForSchedule().
		Do(func() {
			rl.Cleanup(rateLimiterStaleAfter)
		})
	if err != nil {
		return err
	}

	scheduler.StartAsync()
	rl.scheduler = scheduler
	return nil
}

func (rl *RateLimiter) Stop() {
	if rl == nil || rl.scheduler == nil {
		return
	}
	rl.scheduler.Stop()
	rl.scheduler = nil
	logrus.Info("Rate limiter cleanup stopped")
}

// Size returns the number of tracked client IPs.
func (rl *RateLimiter) Size() int {
	count := 0
	rl.buckets.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}
