package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// idle limiters are dropped after an hour
const limiterIdleTTL = time.Hour

// UserLimiter hands out one token bucket per user so HTTP and websocket
// callers draw from the same budget.
type UserLimiter struct {
	prefix    string
	perMinute int

	mu       sync.Mutex
	limiters *cache.Cache
}

// NewUserLimiter allows perMinute events per user with a burst of the same
// size. perMinute <= 0 disables limiting. prefix separates budgets that share
// user keys.
func NewUserLimiter(prefix string, perMinute int) *UserLimiter {
	return &UserLimiter{
		prefix:    prefix,
		perMinute: perMinute,
		limiters:  cache.New(limiterIdleTTL, 2*limiterIdleTTL),
	}
}

func (l *UserLimiter) enabled() bool {
	return l != nil && l.perMinute > 0
}

// Limiter returns the bucket for key, creating it on first use.
func (l *UserLimiter) Limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	if v, ok := l.limiters.Get(key); ok {
		lim := v.(*rate.Limiter)
		l.limiters.Set(key, lim, cache.DefaultExpiration)
		return lim
	}
	lim := rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.perMinute)), l.perMinute)
	l.limiters.Set(key, lim, cache.DefaultExpiration)
	return lim
}

// Allow consumes one event from key's bucket.
func (l *UserLimiter) Allow(key string) bool {
	if !l.enabled() {
		return true
	}
	return l.Limiter(key).Allow()
}

// PerUserRateLimit enforces l per authenticated user (client IP when there is
// none). Must run after AuthMiddleware.
func PerUserRateLimit(l *UserLimiter) gin.HandlerFunc {
	if !l.enabled() {
		return func(c *gin.Context) { c.Next() }
	}
	return limit.NewRateLimiter(func(c *gin.Context) string {
		key := limiterKey(c)
		// keeps the shared bucket alive while only HTTP is used
		l.Limiter(key)
		return l.prefix + ":" + key
	}, func(c *gin.Context) (*rate.Limiter, time.Duration) {
		return l.Limiter(limiterKey(c)), limiterIdleTTL
	}, func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
	})
}

func limiterKey(c *gin.Context) string {
	if id := c.GetString(ContextUserID); id != "" {
		return id
	}
	return c.ClientIP()
}
