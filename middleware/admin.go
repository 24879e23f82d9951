package middleware

import (
	"encoding/json"
	"net/http"
)

// AdminMiddleware gates mutating endpoints behind the shared admin secret.
// The raw Authorization header is compared verbatim against the configured
// token — no "Bearer " prefix, no parsing. A rejected request stops here
// with no side effects.
func AdminMiddleware(adminToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("Authorization")
			if token == "" || token != adminToken {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized - Invalid admin token"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
