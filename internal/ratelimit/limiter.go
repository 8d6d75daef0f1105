// Package ratelimit keeps one token bucket per key (client host).
package ratelimit

import (
	"sync"

	"golang.org/x/time/rate"
)

// KeyLimiter rate-limits per key. A zero rate disables limiting.
type KeyLimiter struct {
	mu sync.Mutex
	m  map[string]*rate.Limiter
	r  rate.Limit
	b  int
}

func New(reqPerSec float64, burst int) *KeyLimiter {
	return &KeyLimiter{
		m: make(map[string]*rate.Limiter),
		r: rate.Limit(reqPerSec),
		b: burst,
	}
}

func (kl *KeyLimiter) limiterFor(key string) *rate.Limiter {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	if lim, ok := kl.m[key]; ok {
		return lim
	}
	lim := rate.NewLimiter(kl.r, kl.b)
	kl.m[key] = lim
	return lim
}

// Allow reports whether a request for key may proceed now.
func (kl *KeyLimiter) Allow(key string) bool {
	if kl == nil || kl.r <= 0 {
		return true
	}
	if key == "" {
		key = "_"
	}
	return kl.limiterFor(key).Allow()
}
