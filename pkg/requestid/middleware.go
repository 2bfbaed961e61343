package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
	idPattern   = "^[a-zA-Z0-9_-]+$"
)

var validIDRegex = regexp.MustCompile(idPattern)

// Middleware reuses a valid client-supplied X-Request-ID or generates a new
// one, stores it in the request context and echoes it in the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if !isValidRequestID(requestID) {
			requestID = New()
		}
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
	})
}

// New returns a fresh request ID.
func New() string {
	return uuid.New().String()
}

// Transport wraps base so every outgoing request carries an X-Request-ID.
// The ID stored in the request context is used when present, otherwise a new
// one is generated. A nil base means http.DefaultTransport.
func Transport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return roundTripper{base: base}
}

type roundTripper struct {
	base http.RoundTripper
}

func (rt roundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	if r.Header.Get(Header) != "" {
		return rt.base.RoundTrip(r)
	}
	id := FromContext(r.Context())
	if id == "" {
		id = New()
	}
	// RoundTrippers must not mutate the caller's request.
	r = r.Clone(r.Context())
	r.Header.Set(Header, id)
	return rt.base.RoundTrip(r)
}

func isValidRequestID(id string) bool {
	if len(id) == 0 || len(id) > maxIDLength {
		return false
	}
	return validIDRegex.MatchString(id)
}
