// Package middleware provides HTTP middleware for the Material Engine API.
package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
)

// Context keys for request-scoped values.
type contextKey string

// CallerKey is the context key for the authenticated caller label.
const CallerKey contextKey = "caller"

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	Enabled bool
	// APIKeys are the accepted keys. Clients send one via the X-API-Key
	// header or as a bearer token.
	APIKeys []string
}

// Auth returns an API-key authentication middleware. When disabled, requests
// pass through with a development caller label.
func Auth(cfg AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled {
				ctx := context.WithValue(r.Context(), CallerKey, "dev")
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			key := r.Header.Get("X-API-Key")
			if key == "" {
				authHeader := r.Header.Get("Authorization")
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
					key = parts[1]
				}
			}
			if key == "" {
				http.Error(w, `{"error": "missing API key"}`, http.StatusUnauthorized)
				return
			}

			if !keyAccepted(key, cfg.APIKeys) {
				http.Error(w, `{"error": "invalid API key"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), CallerKey, "api-key")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func keyAccepted(key string, accepted []string) bool {
	for _, k := range accepted {
		if subtle.ConstantTimeCompare([]byte(key), []byte(k)) == 1 {
			return true
		}
	}
	return false
}

// CallerFromContext extracts the caller label from context.
func CallerFromContext(ctx context.Context) string {
	if v := ctx.Value(CallerKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// CORS returns CORS middleware for browser clients.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			allowed := false
			for _, o := range allowedOrigins {
				if o == "*" || o == origin {
					allowed = true
					break
				}
			}
			if allowed {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-API-Key")
				w.Header().Set("Access-Control-Max-Age", "86400")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
