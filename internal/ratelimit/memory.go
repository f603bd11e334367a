package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	start time.Time
	count int
}

// MemoryLimiter is a fixed-window limiter backed by an in-process map.
// Windows are relative to the first request in each cycle, not wall-clock
// aligned, so a burst around a boundary can briefly see up to ~2x the rate.
type MemoryLimiter struct {
	mu    sync.Mutex
	state map[string]window

	max    int
	window time.Duration
	now    func() time.Time
}

func NewMemoryLimiter(maxRequests int, win time.Duration) *MemoryLimiter {
	if win <= 0 {
		win = time.Minute
	}
	return &MemoryLimiter{
		state:  make(map[string]window),
		max:    maxRequests,
		window: win,
		now:    time.Now,
	}
}

var _ Limiter = (*MemoryLimiter)(nil)

// Allow increments the counter for key within the current window and
// reports whether the updated count is still within the limit.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.state[key]
	if !ok || now.Sub(w.start) >= l.window {
		w = window{start: now}
	}
	w.count++
	l.state[key] = w

	return w.count <= l.max, nil
}

// Sweep drops entries whose window expired at least one full window ago
// and returns how many were removed. Keeps the map bounded for long-lived
// processes with many distinct clients.
func (l *MemoryLimiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for key, w := range l.state {
		if now.Sub(w.start) >= 2*l.window {
			delete(l.state, key)
			removed++
		}
	}
	return removed
}

// Run sweeps on a ticker until ctx is done. Intended to run in its own
// goroutine alongside the HTTP server.
func (l *MemoryLimiter) Run(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = 5 * time.Minute
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			l.Sweep()
		}
	}
}
