package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/petmemorial-backend/internal/config"
)

// originMatcher holds the parsed allow-list. Entries are exact origins,
// "*" for any origin, or a subdomain pattern such as "https://*.example.org".
type originMatcher struct {
	any      bool
	exact    map[string]struct{}
	suffixes []struct{ scheme, suffix string }
}

func newOriginMatcher(origins []string) originMatcher {
	m := originMatcher{exact: make(map[string]struct{}, len(origins))}
	for _, o := range origins {
		switch {
		case o == "*":
			m.any = true
		case strings.Contains(o, "://*."):
			scheme, host, _ := strings.Cut(o, "://*")
			m.suffixes = append(m.suffixes, struct{ scheme, suffix string }{scheme + "://", host})
		default:
			m.exact[strings.TrimSuffix(o, "/")] = struct{}{}
		}
	}
	return m
}

func (m originMatcher) allows(origin string) bool {
	if origin == "" {
		return false
	}
	if m.any {
		return true
	}
	if _, ok := m.exact[origin]; ok {
		return true
	}
	for _, s := range m.suffixes {
		rest, ok := strings.CutPrefix(origin, s.scheme)
		if ok && len(rest) > len(s.suffix) && strings.HasSuffix(rest, s.suffix) {
			return true
		}
	}
	return false
}

// CORS answers preflight requests with 204 and decorates other responses
// with the allow headers. A matching origin is echoed back; with credentials
// disabled a wildcard list answers with "*" instead.
func CORS(cfg config.CORSConfig) Middleware {
	match := newOriginMatcher(cfg.AllowedOriginList())
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			allowed := match.allows(origin)
			switch {
			case allowed && match.any && !cfg.AllowCredentials:
				h.Set("Access-Control-Allow-Origin", "*")
			case allowed:
				h.Set("Access-Control-Allow-Origin", origin)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			preflight := r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
			if !preflight {
				next.ServeHTTP(w, r)
				return
			}

			if allowed {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
			}
			w.WriteHeader(http.StatusNoContent)
		})
	}
}
