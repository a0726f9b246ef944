package server

import (
	"net/http"

	"github.com/medebd/medicine-api/config"
	"github.com/medebd/medicine-api/handlers"
)

// AccessPolicy decides how strictly a caller is rate limited. Allow-listed
// origins (the site's own frontends) and holders of the configured API key
// skip the limiter; everyone else pays the token cost per request. A caller
// that presents a wrong key is rejected outright. Origins and key come from
// configuration, never from code.
type AccessPolicy struct {
	apiKey         string
	trustedOrigins map[string]struct{}
}

// NewAccessPolicy builds the policy from configuration
func NewAccessPolicy(cfg *config.Config) *AccessPolicy {
	trusted := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		trusted[origin] = struct{}{}
	}

	return &AccessPolicy{
		apiKey:         cfg.APIKey,
		trustedOrigins: trusted,
	}
}

// IsTrustedOrigin reports whether the request comes from an allow-listed origin
func (p *AccessPolicy) IsTrustedOrigin(r *http.Request) bool {
	_, ok := p.trustedOrigins[r.Header.Get("Origin")]
	return ok
}

// Middleware gates requests through the rate limiter according to the policy
func (p *AccessPolicy) Middleware(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		limited := limiter.Middleware(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p.IsTrustedOrigin(r) {
				next.ServeHTTP(w, r)
				return
			}

			apiKey := r.URL.Query().Get("apikey")
			switch {
			case apiKey == "" || p.apiKey == "":
				limited.ServeHTTP(w, r)
			case apiKey == p.apiKey:
				next.ServeHTTP(w, r)
			default:
				handlers.RespondWithError(w, http.StatusForbidden, "Invalid API key")
			}
		})
	}
}
