// pkg/memcache/limiters.go
package mem

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type LimiterStore interface {
	// Get returns the limiter for key, creating it on first use. Each call
	// extends the entry's lifetime by the store TTL.
	Get(key string) *rate.Limiter

	// Sweep drops entries idle for longer than the TTL and reports how many
	// were removed.
	Sweep() int

	Len() int
}

type entry struct {
	limiter   *rate.Limiter
	expiresAt time.Time
}

type Limiters struct {
	mu        sync.Mutex
	data      map[string]entry
	limit     rate.Limit
	burst     int
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewLimiters allows perMinute events per key with the given burst. Idle keys
// are forgotten after ttl.
func NewLimiters(perMinute, burst int, ttl time.Duration) *Limiters {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Limit(float64(perMinute) / 60)
	}
	if burst <= 0 {
		burst = 1
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Limiters{
		data:  make(map[string]entry),
		limit: limit,
		burst: burst,
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *Limiters) Get(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) > s.ttl {
		s.sweepLocked(now)
	}

	e, ok := s.data[key]
	if !ok || now.After(e.expiresAt) {
		e = entry{limiter: rate.NewLimiter(s.limit, s.burst)}
	}
	e.expiresAt = now.Add(s.ttl)
	s.data[key] = e
	return e.limiter
}

func (s *Limiters) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.now())
}

func (s *Limiters) sweepLocked(now time.Time) int {
	removed := 0
	for k, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, k)
			removed++
		}
	}
	s.lastSweep = now
	return removed
}

func (s *Limiters) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}
