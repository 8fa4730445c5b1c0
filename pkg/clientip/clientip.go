// Package clientip resolves the submitting client's IP address from
// forwarding headers so intake logs record who sent a lead.
package clientip

import (
	"net"
	"net/http"
	"strings"
)

// GetIP returns the client's IP address from an HTTP request.
// Priority order:
//  1. CF-Connecting-IP (Cloudflare)
//  2. X-Forwarded-For (standard proxy header, first valid IP)
//  3. X-Real-IP (Nginx reverse proxy)
//  4. RemoteAddr (direct connection fallback)
func GetIP(r *http.Request) string {
	if ip := parseIP(r.Header.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// X-Forwarded-For can contain multiple IPs, find the first valid one.
		for ip := range strings.SplitSeq(forwarded, ",") {
			if parsed := parseIP(ip); parsed != "" {
				return parsed
			}
		}
	}

	if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// If SplitHostPort fails, assume it's already just an IP.
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP validates and normalizes an IP address string.
// Returns empty string if the IP is invalid.
func parseIP(ipStr string) string {
	ipStr = strings.TrimSpace(ipStr)
	if ipStr == "" {
		return ""
	}

	ip := net.ParseIP(ipStr)
	if ip == nil {
		return ""
	}
	return ip.String()
}
