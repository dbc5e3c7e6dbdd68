package api

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimit returns middleware enforcing a per-client request rate keyed by
// remote address. Mount it behind middleware.RealIP so the key is the real
// client IP. Idle clients are pruned on the fly.
func RateLimit(rps rate.Limit, burst int) func(http.Handler) http.Handler {
	type visitor struct {
		limiter *rate.Limiter
		seen    time.Time
	}

	var (
		mu       sync.Mutex
		visitors = make(map[string]*visitor)
		swept    = time.Now()
	)

	const idleTTL = 3 * time.Minute

	allow := func(key string) bool {
		mu.Lock()
		defer mu.Unlock()

		now := time.Now()
		if now.Sub(swept) > idleTTL {
			for k, v := range visitors {
				if now.Sub(v.seen) > idleTTL {
					delete(visitors, k)
				}
			}
			swept = now
		}

		v, ok := visitors[key]
		if !ok {
			v = &visitor{limiter: rate.NewLimiter(rps, burst)}
			visitors[key] = v
		}
		v.seen = now

		return v.limiter.Allow()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !allow(r.RemoteAddr) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"code":429,"message":"too many requests"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
