package tp

import (
	"context"
	"sync"
	"time"
)

// TrainingPeaks does not publish rate limits, but the site throttles
// aggressive clients hard. We self-limit: a rolling hourly budget plus a
// minimum interval between requests.

// RateLimiter paces requests to the TrainingPeaks API
type RateLimiter struct {
	mu sync.Mutex

	hourlyLimit    int
	hourlyUsage    int
	hourlyResetsAt time.Time

	minInterval time.Duration
	lastRequest time.Time
}

// NewRateLimiter creates a rate limiter with conservative defaults
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		hourlyLimit:    600,
		hourlyResetsAt: time.Now().Add(time.Hour),
		minInterval:    200 * time.Millisecond, // 5 req/s max
	}
}

// Wait blocks until a request can be made without exceeding the budget
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if now.After(r.hourlyResetsAt) {
		r.hourlyUsage = 0
		r.hourlyResetsAt = now.Add(time.Hour)
	}

	if r.hourlyUsage >= r.hourlyLimit {
		waitTime := time.Until(r.hourlyResetsAt)
		r.mu.Unlock()
		select {
		case <-time.After(waitTime):
		case <-ctx.Done():
			r.mu.Lock()
			return ctx.Err()
		}
		r.mu.Lock()
		r.hourlyUsage = 0
		r.hourlyResetsAt = time.Now().Add(time.Hour)
	}

	elapsed := time.Since(r.lastRequest)
	if elapsed < r.minInterval {
		waitTime := r.minInterval - elapsed
		r.mu.Unlock()
		select {
		case <-time.After(waitTime):
		case <-ctx.Done():
			r.mu.Lock()
			return ctx.Err()
		}
		r.mu.Lock()
	}

	r.hourlyUsage++
	r.lastRequest = time.Now()
	return nil
}

// Status returns the remaining hourly budget
func (r *RateLimiter) Status() (remaining int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hourlyLimit - r.hourlyUsage
}

// Usage returns the current usage count
func (r *RateLimiter) Usage() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hourlyUsage
}
