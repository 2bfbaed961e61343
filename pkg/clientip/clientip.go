package clientip

import (
	"net"
	"net/http"
	"strings"
)

// proxyHeaders are consulted in order when proxy headers are trusted.
var proxyHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// GetIP returns the client address, preferring proxy headers over the TCP
// peer. Only use it behind a proxy that overwrites these headers.
// X-Forwarded-For yields its first valid entry.
func GetIP(r *http.Request) string {
	for _, h := range proxyHeaders {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		for ip := range strings.SplitSeq(v, ",") {
			if parsed := parseIP(ip); parsed != "" {
				return parsed
			}
		}
	}
	return RemoteIP(r)
}

// RemoteIP returns the TCP peer address of r.
func RemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP returns the normalized form of s, or "" if s is not an IP.
func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
