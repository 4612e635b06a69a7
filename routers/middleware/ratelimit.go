package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pawtel/pawtel_api/config"
	"github.com/pawtel/pawtel_api/routers/api/models"
	"github.com/pawtel/pawtel_api/utils"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a token bucket per client IP
type RateLimiter struct {
	logger       *zap.Logger
	timeProvider utils.TimeProvider
	limit        rate.Limit
	burst        int

	mu        sync.Mutex
	clients   map[string]*clientLimiter
	lastPrune time.Time
}

func NewRateLimiter(logger *zap.Logger, cfg config.RateLimitConfig, timeProvider utils.TimeProvider) *RateLimiter {
	return &RateLimiter{
		logger:       logger,
		timeProvider: timeProvider,
		limit:        rate.Limit(float64(cfg.RequestsPerMinute) / 60),
		burst:        cfg.Burst,
		clients:      map[string]*clientLimiter{},
		lastPrune:    timeProvider.Now(),
	}
}

// Allow reports whether the client with the given key may make a request now
func (l *RateLimiter) Allow(key string) bool {
	now := l.timeProvider.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.pruneIdle(now)

	client, ok := l.clients[key]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = client
	}
	client.lastSeen = now

	return client.limiter.AllowN(now, 1)
}

// Middleware rejects requests above the limit with 429
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		clientIP := ctx.ClientIP()
		if !l.Allow(clientIP) {
			l.logger.Debug("rate limit exceeded", zap.String("client", clientIP), zap.String("path", ctx.Request.URL.Path))
			ctx.Header("Retry-After", strconv.Itoa(l.retryAfterSeconds()))
			models.SendAPIError(ctx, http.StatusTooManyRequests, "too many requests, please try again later")
			return
		}
		ctx.Next()
	}
}

func (l *RateLimiter) retryAfterSeconds() int {
	if l.limit <= 0 {
		return 60
	}
	return int(math.Ceil(1 / float64(l.limit)))
}

// pruneIdle drops clients not seen within limiterIdleTTL. l.mu must be held.
func (l *RateLimiter) pruneIdle(now time.Time) {
	if now.Sub(l.lastPrune) < limiterIdleTTL {
		return
	}

	for key, client := range l.clients {
		if now.Sub(client.lastSeen) >= limiterIdleTTL {
			delete(l.clients, key)
		}
	}
	l.lastPrune = now
}
