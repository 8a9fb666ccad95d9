package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// Paths that never require the API key: preflight handled separately, the
// rest are documentation/health surfaces.
var bypassPrefixes = []string{
	"/swagger-ui",
	"/v3/api-docs",
	"/health",
}

// APIKeyMiddleware verifies the static X-API-KEY header against the
// configured secret. OPTIONS requests and documentation paths pass through
// unchecked.
func APIKeyMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || bypassed(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			requestKey := r.Header.Get("X-API-KEY")
			if subtle.ConstantTimeCompare([]byte(requestKey), []byte(apiKey)) != 1 {
				zerolog.Ctx(r.Context()).Warn().
					Str("path", r.URL.Path).
					Msg("invalid or missing API key")
				w.Header().Set("Content-Type", "text/plain; charset=utf-8")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte("Invalid or missing API key"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bypassed(path string) bool {
	for _, prefix := range bypassPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
