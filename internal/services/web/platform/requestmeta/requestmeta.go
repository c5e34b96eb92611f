// Package requestmeta resolves request scheme and origin facts.
package requestmeta

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/louisbranch/crowdfund/internal/services/web/platform/httpx"
)

// SchemePolicy controls whether X-Forwarded-Proto is trusted.
//
// Only enable TrustForwardedProto behind a proxy that overwrites the header.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// Scheme returns "https" or "http" for r under policy.
func (p SchemePolicy) Scheme(r *http.Request) string {
	if r == nil {
		return ""
	}
	if p.TrustForwardedProto {
		switch forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded {
		case "http", "https":
			return forwarded
		}
	}
	if r.URL != nil {
		switch scheme := strings.ToLower(r.URL.Scheme); scheme {
		case "http", "https":
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// IsHTTPS reports whether r should be treated as HTTPS under policy.
func (p SchemePolicy) IsHTTPS(r *http.Request) bool {
	return p.Scheme(r) == "https"
}

// SameOrigin reports whether the Origin header (or, failing that, Referer)
// names the same scheme, host and port as r.
func (p SchemePolicy) SameOrigin(r *http.Request) bool {
	if r == nil {
		return false
	}
	source := strings.TrimSpace(r.Header.Get("Origin"))
	if source == "" {
		source = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if source == "" {
		return false
	}
	claimed, err := url.Parse(source)
	if err != nil || claimed.Host == "" {
		return false
	}
	scheme := p.Scheme(r)
	if !strings.EqualFold(claimed.Scheme, scheme) {
		return false
	}
	host, port := splitHost(r.Host, scheme)
	if host == "" {
		return false
	}
	claimedHost, claimedPort := splitHost(claimed.Host, strings.ToLower(claimed.Scheme))
	return claimedHost == host && claimedPort == port
}

// RequireSameOrigin rejects unsafe-method requests without same-origin proof.
func RequireSameOrigin(policy SchemePolicy) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}
			if !policy.SameOrigin(r) {
				log.Printf("cross-origin request rejected method=%s path=%s origin=%q request_id=%s",
					r.Method, r.URL.Path, r.Header.Get("Origin"), httpx.RequestIDFrom(r))
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func splitHost(raw string, scheme string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(raw))
	if err != nil {
		return "", ""
	}
	port := parsed.Port()
	if port == "" {
		switch scheme {
		case "https":
			port = "443"
		case "http":
			port = "80"
		}
	}
	return strings.ToLower(parsed.Hostname()), port
}
