package shared

import (
	"net"
	"net/http"
	"strings"

	"hotel/shared/constant"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins the non-empty parts into a single cache key.
func BuildCacheKey(parts ...string) string {
	filtered := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != constant.Empty {
			filtered = append(filtered, part)
		}
	}

	return strings.Join(filtered, cacheKeySeparator)
}

// UserAgent returns the request's User-Agent, or "unknown".
func UserAgent(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == constant.Empty {
		ua = "unknown"
	}

	return ua
}

// ClientIP returns the host part of RemoteAddr. Proxy headers are already
// folded into RemoteAddr by chi's RealIP middleware.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
