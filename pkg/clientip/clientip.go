// Package clientip resolves the real client address of an HTTP request
// behind the usual chain of reverse proxies. Session records keep the
// resolved address for audit purposes.
package clientip

import (
	"net"
	"net/http"
	"strings"
)

// GetIP returns the client IP for the request. Proxy headers are
// consulted before falling back to the socket address: X-Forwarded-For
// (first valid entry), then X-Real-IP, then RemoteAddr. Invalid header
// values are skipped rather than trusted.
func GetIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		for ip := range strings.SplitSeq(forwarded, ",") {
			if parsed := parseIP(ip); parsed != "" {
				return parsed
			}
		}
	}

	if parsed := parseIP(r.Header.Get("X-Real-IP")); parsed != "" {
		return parsed
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr without a port is already a bare IP.
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP validates and normalizes one address, returning "" when the
// input is not a valid IP.
func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}
