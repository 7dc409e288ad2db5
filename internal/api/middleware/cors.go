package middleware

import (
	"fmt"
	"log"
	"net/http"
	"regexp"

	"github.com/asif/shops-platform/internal/observability"
)

// OriginGuard admits browser requests only from the configured base domain
// and its direct subdomains. Requests without an Origin header (curl,
// server-to-server) pass through untouched.
type OriginGuard struct {
	exact     string
	subdomain *regexp.Regexp
}

// NewOriginGuard builds the matcher once at startup. The base domain is
// quoted before it enters the pattern so a dot or other metacharacter in
// configuration cannot widen the match.
func NewOriginGuard(scheme, baseDomain string) (*OriginGuard, error) {
	if baseDomain == "" {
		return nil, fmt.Errorf("origin guard requires a base domain")
	}

	// Exactly one subdomain label: a.b.baseDomain must not match.
	subdomain, err := regexp.Compile(`^` + regexp.QuoteMeta(scheme+"://") + `[a-z0-9][a-z0-9-]*\.` + regexp.QuoteMeta(baseDomain) + `$`)
	if err != nil {
		return nil, fmt.Errorf("origin guard pattern: %w", err)
	}

	return &OriginGuard{
		exact:     scheme + "://" + baseDomain,
		subdomain: subdomain,
	}, nil
}

// Allowed reports whether the given Origin header value is admitted.
// The empty string (header absent) is always admitted.
func (g *OriginGuard) Allowed(origin string) bool {
	if origin == "" {
		return true
	}
	return origin == g.exact || g.subdomain.MatchString(origin)
}

// Handler enforces the origin policy and emits CORS response headers for
// admitted browser origins. Rejected origins get a generic denial; the
// offending origin is logged server-side only, never echoed back.
func (g *OriginGuard) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if !g.Allowed(origin) {
			log.Printf("WARN [middleware.OriginGuard] rejected origin %q", origin)
			observability.CrossOriginRejected.Inc()
			http.Error(w, "Cross-origin request denied", http.StatusForbidden)
			return
		}

		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
