package httpapi

import "earn-recycle-engine/internal/ratelimit"

// one request, then nothing for a long time
func ratelimitForTest() *ratelimit.KeyLimiter {
	return ratelimit.New(0.001, 1)
}
