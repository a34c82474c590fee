package worker

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
	pinned   bool // set by SetClientRate; never pruned
}

// Limiter implements a token bucket per client key
type Limiter struct {
	clients      map[string]*clientLimiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
	now          func() time.Time
}

// NewLimiter creates a new rate limiter. A non-positive rate disables limiting.
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 5
	}

	limit := rate.Limit(requestsPerSecond)
	if requestsPerSecond <= 0 {
		limit = rate.Inf
	}

	return &Limiter{
		clients:      make(map[string]*clientLimiter),
		defaultRate:  limit,
		defaultBurst: burst,
		now:          time.Now,
	}
}

// Allow reports whether the client may proceed now, consuming a token if so
func (l *Limiter) Allow(client string) bool {
	return l.get(client).Allow()
}

func (l *Limiter) get(client string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[client]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(l.defaultRate, l.defaultBurst)}
		l.clients[client] = c
	}
	c.lastSeen = l.now()
	return c.limiter
}

// SetClientRate sets a custom rate limit for one client. A non-positive rate
// lets the client through unlimited. Clients set this way survive Prune.
func (l *Limiter) SetClientRate(client string, requestsPerSecond float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if burst <= 0 {
		burst = l.defaultBurst
	}

	limit := rate.Limit(requestsPerSecond)
	if requestsPerSecond <= 0 {
		limit = rate.Inf
	}

	l.clients[client] = &clientLimiter{
		limiter:  rate.NewLimiter(limit, burst),
		lastSeen: l.now(),
		pinned:   true,
	}
}

// Prune forgets clients idle for longer than idle and returns how many were dropped
func (l *Limiter) Prune(idle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-idle)
	n := 0
	for key, c := range l.clients {
		if !c.pinned && c.lastSeen.Before(cutoff) {
			delete(l.clients, key)
			n++
		}
	}
	return n
}

// Len returns the number of tracked clients
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}
