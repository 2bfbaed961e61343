// Package clientip resolves the address of the client behind an HTTP request.
//
// GetIP checks CF-Connecting-IP, X-Forwarded-For (first valid entry) and
// X-Real-IP before falling back to the TCP peer; RemoteIP uses only the peer.
// Trust the headers only when a reverse proxy in front of the server sets
// them, otherwise clients can pick their own address.
//
// Middleware stores the resolved address in the request context, where
// FromContext, the rate limiter key function and LoggerExtractor read it:
//
//	r.Use(clientip.Middleware(cfg.TrustProxy))
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
//
// Invalid addresses resolve to "".
package clientip
