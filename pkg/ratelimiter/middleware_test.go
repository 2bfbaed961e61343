package ratelimiter_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sealnote/pkg/clientip"
	"github.com/dmitrymomot/sealnote/pkg/ratelimiter"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithClock(newClock().Now), ratelimiter.WithCleanupInterval(0))
	defer store.Close()
	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Minute})
	require.NoError(t, err)

	h := clientip.Middleware(false)(ratelimiter.Middleware(limiter, ratelimiter.ByClientIP("write:"))(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }),
	))

	do := func(addr string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodPost, "/notes", nil)
		r.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		return rec
	}

	rec := do("10.0.0.1:1000")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))

	assert.Equal(t, http.StatusOK, do("10.0.0.1:1001").Code)

	rec = do("10.0.0.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "too_many_requests", strings.TrimSpace(rec.Body.String()))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, do("10.0.0.2:1000").Code, "other clients have their own bucket")
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (*ratelimiter.Result, error) {
	return nil, errors.New("redis down")
}

func (failingLimiter) AllowN(context.Context, string, int) (*ratelimiter.Result, error) {
	return nil, errors.New("redis down")
}

func TestMiddleware_StoreFailure(t *testing.T) {
	t.Parallel()
	called := false
	h := ratelimiter.Middleware(failingLimiter{}, ratelimiter.ByClientIP(""))(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }),
	)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/notes", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.False(t, called)
}

func TestByClientIP(t *testing.T) {
	t.Parallel()
	key := ratelimiter.ByClientIP("p:")

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.1:5555"
	assert.Equal(t, "p:192.0.2.1", key(r))

	r = r.WithContext(clientip.WithContext(r.Context(), "203.0.113.9"))
	assert.Equal(t, "p:203.0.113.9", key(r))
}
