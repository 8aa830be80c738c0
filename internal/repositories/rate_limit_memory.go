package repository

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/papela-rentals/internal/api/middleware"
	"github.com/aaravmahajanofficial/papela-rentals/internal/config"
	"golang.org/x/time/rate"
)

type visitorLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// memoryRateLimitRepository is the single-process login throttle used when
// redis is not configured: a token bucket per email refilling MaxAttempts
// tokens over WindowSize.
type memoryRateLimitRepository struct {
	mu       sync.Mutex
	limiters map[string]*visitorLimiter
	cfg      *config.RateConfig
	now      func() time.Time
}

func NewMemoryRateLimitRepo(cfg *config.RateConfig) RateLimitRepository {
	return &memoryRateLimitRepository{
		limiters: make(map[string]*visitorLimiter),
		cfg:      cfg,
		now:      time.Now,
	}
}

func (r *memoryRateLimitRepository) getLimiter(email string, now time.Time) *rate.Limiter {

	r.mu.Lock()
	defer r.mu.Unlock()

	// drop limiters that have fully refilled
	for key, v := range r.limiters {
		if now.Sub(v.lastSeen) > r.cfg.WindowSize {
			delete(r.limiters, key)
		}
	}

	if v, exists := r.limiters[email]; exists {
		v.lastSeen = now
		return v.limiter
	}

	every := rate.Every(r.cfg.WindowSize / time.Duration(max(r.cfg.MaxAttempts, 1)))
	limiter := rate.NewLimiter(every, int(r.cfg.MaxAttempts))
	r.limiters[email] = &visitorLimiter{limiter: limiter, lastSeen: now}

	return limiter
}

func (r *memoryRateLimitRepository) CheckLoginRateLimit(ctx context.Context, email string) (bool, int, int, error) {

	logger := middleware.LoggerFromContext(ctx)

	now := r.now()
	limiter := r.getLimiter(email, now)

	reservation := limiter.ReserveN(now, 1)
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)

		retryAfter := int(math.Ceil(delay.Seconds()))
		logger.Warn("Login rate limit exceeded", slog.String("email", email), slog.Int("retry_after", retryAfter))

		return false, 0, retryAfter, nil
	}

	remaining := int(math.Floor(limiter.TokensAt(now)))

	return true, max(remaining, 0), 0, nil
}
