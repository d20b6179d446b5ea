package middleware

import (
	"encoding/json"
	"net/http"

	"lumak-be/internal/auth"
)

// RequireAuth rejects requests without a valid admin token. The login and
// health endpoints are mounted outside of this middleware.
func RequireAuth(secret string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := auth.ExtractAccessToken(r)
		if tokenStr == "" {
			unauthorized(w)
			return
		}

		if _, err := auth.ParseToken(secret, tokenStr); err != nil {
			unauthorized(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "unauthorized"})
}
