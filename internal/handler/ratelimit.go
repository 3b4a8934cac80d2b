package handler

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/plsapi/backend/internal/model"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// LoginRateLimiter throttles POST /auth/token per client IP.
type LoginRateLimiter struct {
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewLoginRateLimiter allows perMinute requests per IP with the given burst.
// Idle entries are dropped in the background until Stop is called.
func NewLoginRateLimiter(perMinute float64, burst int) *LoginRateLimiter {
	rl := &LoginRateLimiter{
		limit:    rate.Limit(perMinute / 60.0),
		burst:    burst,
		idleTTL:  10 * time.Minute,
		limiters: make(map[string]*clientLimiter),
		stopCh:   make(chan struct{}),
	}
	go rl.cleanupLoop(time.Minute)
	return rl
}

func (rl *LoginRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

func (rl *LoginRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.get(ip).Allow() {
			retryAfter := int(math.Ceil(1 / float64(rl.limit)))
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			loggerFrom(c).Warn("rate limit exceeded", "client_ip", ip, "limit_type", "login")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, model.ErrorResponse{Error: "too many requests"})
			return
		}
		c.Next()
	}
}

func (rl *LoginRateLimiter) get(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if cl, ok := rl.limiters[key]; ok {
		cl.lastAccess = time.Now()
		return cl.limiter
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.limiters[key] = &clientLimiter{limiter: limiter, lastAccess: time.Now()}
	return limiter
}

func (rl *LoginRateLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup(time.Now())
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *LoginRateLimiter) cleanup(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, cl := range rl.limiters {
		if now.Sub(cl.lastAccess) > rl.idleTTL {
			delete(rl.limiters, key)
		}
	}
}

func (rl *LoginRateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}
