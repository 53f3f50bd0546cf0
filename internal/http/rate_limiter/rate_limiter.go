package rate_limiter

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*clientLimiter)
	mu       sync.Mutex

	limit rate.Limit = 1 // requests per second
	burst            = 3
)

// Configure sets the per-client rate. Existing limiters keep their old rate
// until they are cleaned up.
func Configure(rps float64, b int) {
	mu.Lock()
	defer mu.Unlock()
	limit = rate.Limit(rps)
	burst = b
}

func GetVisitor(ip string) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(limit, burst)
		visitors[ip] = &clientLimiter{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// StartVisitorCleanupLoop forgets clients idle for more than five minutes
// until ctx is cancelled.
func StartVisitorCleanupLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			mu.Lock()
			for ip, v := range visitors {
				if time.Since(v.lastSeen) > 5*time.Minute {
					delete(visitors, ip)
				}
			}
			mu.Unlock()
		}
	}
}

func CleanupAllVisitors() {
	mu.Lock()
	visitors = make(map[string]*clientLimiter)
	mu.Unlock()
}
