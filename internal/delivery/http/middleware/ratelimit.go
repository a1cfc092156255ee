package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines a per-client request budget.
type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
	Burst             int
}

// AuthLimit guards the public auth endpoints against credential
// brute-forcing.
var AuthLimit = RateLimitConfig{
	RequestsPerWindow: 10,
	Window:            time.Minute,
	Burst:             10,
}

type RateLimitMiddleware struct {
	limiters sync.Map // client IP -> *rate.Limiter
	limit    rate.Limit
	burst    int
}

func NewRateLimitMiddleware(cfg RateLimitConfig) *RateLimitMiddleware {
	if cfg.RequestsPerWindow <= 0 || cfg.Window <= 0 {
		cfg = AuthLimit
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerWindow
	}
	return &RateLimitMiddleware{
		limit: rate.Limit(float64(cfg.RequestsPerWindow) / cfg.Window.Seconds()),
		burst: cfg.Burst,
	}
}

func (m *RateLimitMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if !m.limiterFor(c.IP()).Allow() {
			return NewAppError(fiber.StatusTooManyRequests, "Too many requests", nil)
		}
		return c.Next()
	}
}

func (m *RateLimitMiddleware) limiterFor(key string) *rate.Limiter {
	if l, ok := m.limiters.Load(key); ok {
		return l.(*rate.Limiter)
	}
	l, _ := m.limiters.LoadOrStore(key, rate.NewLimiter(m.limit, m.burst))
	return l.(*rate.Limiter)
}
