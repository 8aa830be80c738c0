package repository

import "time"

// SetClock pins the time source of a rate limiter built by this package.
func SetClock(repo RateLimitRepository, now func() time.Time) {
	switch r := repo.(type) {
	case *redisRateLimitRepository:
		r.now = now
	case *memoryRateLimitRepository:
		r.now = now
	}
}
