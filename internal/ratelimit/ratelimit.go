package ratelimit

import "sync"

// Limiter caps the number of external text-generation calls made during a
// single run. A zero or negative max means unlimited.
type Limiter struct {
	mu   sync.Mutex
	max  int
	used int
}

func New(max int) *Limiter {
	return &Limiter{max: max}
}

// TryAcquire reserves one call from the budget. It returns false when the
// budget is exhausted; the caller is expected to degrade to its fallback.
func (l *Limiter) TryAcquire() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.max > 0 && l.used >= l.max {
		return false
	}
	l.used++
	return true
}

func (l *Limiter) Used() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.used
}

func (l *Limiter) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.max <= 0 {
		return -1
	}
	if l.used >= l.max {
		return 0
	}
	return l.max - l.used
}
