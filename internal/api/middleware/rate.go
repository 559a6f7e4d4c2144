package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/osa911/clipdesk/internal/api/dto/common"
	"github.com/osa911/clipdesk/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines configuration for the rate limiter
type RateLimitConfig struct {
	// Requests per second
	RPS int
	// Burst size (number of requests that can be made in a single burst)
	Burst int
}

// limiters keeps one token bucket per client IP
type limiters struct {
	mu      sync.Mutex
	config  RateLimitConfig
	buckets map[string]*bucket
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const bucketIdle = 10 * time.Minute

func (l *limiters) get(ip string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[ip]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rate.Limit(l.config.RPS), l.config.Burst)}
		l.buckets[ip] = b
	}
	b.lastSeen = now

	// Opportunistic sweep so the map stays bounded by active clients
	if len(l.buckets) > 1024 {
		for k, v := range l.buckets {
			if now.Sub(v.lastSeen) > bucketIdle {
				delete(l.buckets, k)
			}
		}
	}
	return b.limiter
}

// RateLimitMiddleware limits each client IP to the given rate
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	l := &limiters{config: config, buckets: make(map[string]*bucket)}

	return func(c *gin.Context) {
		limiter := l.get(utils.GetRealIP(c), time.Now())

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, common.NewErrorResponse(
				common.ErrCodeTooManyRequests,
				"Rate limit exceeded. Please try again later.",
				nil,
			))
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.RPS))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))

		c.Next()
	}
}
