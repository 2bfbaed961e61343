// Package ratelimiter implements token bucket rate limiting for HTTP handlers.
//
// A Bucket holds at most Config.Capacity tokens and gains Config.RefillRate
// tokens every Config.RefillInterval. Each allowed request takes one token;
// a request that finds too few tokens is denied without taking any.
//
// Bucket state lives in a Store. MemoryStore keeps it in process and sweeps
// idle buckets; RedisStore runs the same algorithm as a Lua script so several
// server instances share one limit.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       10,
//		RefillRate:     1,
//		RefillInterval: 6 * time.Second,
//	})
//
//	r.With(ratelimiter.Middleware(limiter, ratelimiter.ByClientIP("notes-write:"))).Post("/notes", h)
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every response, and Retry-After on 429.
package ratelimiter
