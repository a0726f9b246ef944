package server

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/juju/ratelimit"

	"github.com/medebd/medicine-api/config"
	"github.com/medebd/medicine-api/handlers"
	"github.com/medebd/medicine-api/logging"
	"github.com/medebd/medicine-api/metrics"
)

// RealIPMiddleware extracts the real IP from X-Forwarded-For header
func RealIPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			// Take the first IP from the comma-separated list
			if idx := strings.Index(xff, ","); idx != -1 {
				xff = xff[:idx]
			}
			r.RemoteAddr = strings.TrimSpace(xff)
		}
		next.ServeHTTP(w, r)
	})
}

// RequestSizeMiddleware limits the size of request headers and body
func RequestSizeMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if contentLength := r.Header.Get("Content-Length"); contentLength != "" {
				if length, err := strconv.ParseInt(contentLength, 10, 64); err == nil {
					if length > cfg.MaxRequestBody {
						logging.Warn("Request body too large",
							"content_length", length,
							"max_allowed", cfg.MaxRequestBody,
							"remote_addr", r.RemoteAddr)
						handlers.RespondWithError(w, http.StatusRequestEntityTooLarge, "Request body too large")
						return
					}
				}
			}

			headerSize := int64(0)
			for key, values := range r.Header {
				headerSize += int64(len(key))
				for _, value := range values {
					headerSize += int64(len(value))
				}
			}

			if headerSize > cfg.MaxHeaderSize {
				logging.Warn("Request headers too large",
					"header_size", headerSize,
					"max_allowed", cfg.MaxHeaderSize,
					"remote_addr", r.RemoteAddr)
				handlers.RespondWithError(w, http.StatusRequestHeaderFieldsTooLarge, "Request headers too large")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimiter manages per-client token buckets. It is constructed per server
// and injected into the access policy rather than living as a package-level
// singleton.
type RateLimiter struct {
	clients  map[string]*ratelimit.Bucket
	mu       sync.RWMutex
	rate     float64
	capacity int64
	stopCh   chan struct{}
}

// NewRateLimiter creates a rate limiter handing out buckets that refill at
// rate tokens per second up to capacity.
func NewRateLimiter(rate float64, capacity int64) *RateLimiter {
	rl := &RateLimiter{
		clients:  make(map[string]*ratelimit.Bucket),
		rate:     rate,
		capacity: capacity,
		stopCh:   make(chan struct{}),
	}
	rl.startCleanup()
	return rl
}

func (rl *RateLimiter) getBucket(clientIP string) *ratelimit.Bucket {
	rl.mu.RLock()
	bucket, exists := rl.clients[clientIP]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		if bucket, exists = rl.clients[clientIP]; !exists {
			bucket = ratelimit.NewBucketWithRate(rl.rate, rl.capacity)
			rl.clients[clientIP] = bucket
		}
		rl.mu.Unlock()
	}

	return bucket
}

// startCleanup removes idle clients periodically
func (rl *RateLimiter) startCleanup() {
	ticker := time.NewTicker(30 * time.Minute)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-rl.stopCh:
				return
			case <-ticker.C:
				rl.mu.Lock()
				// A full bucket means the client has been idle long enough
				for ip, bucket := range rl.clients {
					if bucket.Available() == bucket.Capacity() {
						delete(rl.clients, ip)
					}
				}
				metrics.RateLimiterBucketsTotal.Set(float64(len(rl.clients)))
				rl.mu.Unlock()
			}
		}
	}()
}

// Stop stops the background cleanup goroutine
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// tokenCost prices a request by how expensive the endpoint is to serve. The
// search endpoints fan out joins per row and cost the most.
func tokenCost(r *http.Request) int64 {
	path := r.URL.Path

	switch path {
	case "/", "/favicon.ico":
		return 0
	case "/health", "/metrics":
		return 5
	}

	switch {
	case strings.HasPrefix(path, "/api/v2/medicine/search"),
		strings.HasPrefix(path, "/api/v2/medicine/searchByGeneric"),
		strings.HasPrefix(path, "/api/v2/medicine/searchByCompanyId"):
		return 50
	case strings.HasPrefix(path, "/api/v2/medicine"):
		return 20
	}

	return 20
}

// Allow consumes the request's token cost from the client's bucket and
// reports whether the request may proceed. The returned remaining count
// feeds the rate limit headers.
func (rl *RateLimiter) Allow(r *http.Request) (bool, int64) {
	bucket := rl.getBucket(r.RemoteAddr)
	cost := tokenCost(r)

	if bucket.TakeAvailable(cost) < cost {
		return false, 0
	}

	return true, bucket.Available()
}

// Middleware applies rate limiting to every request using the token bucket
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(rl.capacity, 10))

		allowed, remaining := rl.Allow(r)
		if !allowed {
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.Header().Set("Retry-After", "60")
			handlers.RespondWithError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}

		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		next.ServeHTTP(w, r)
	})
}
