package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/teppen-ops/venue-backend/internal/handler/http/response"
)

// AuthRequired rejects requests without a valid access token. Refresh
// tokens carry type "refresh" and must not pass here.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.Unauthorized(w, "Authentication required")
				return
			}

			if tokenType, ok := claims["type"].(string); !ok || tokenType != "access" {
				response.Unauthorized(w, "Access token required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
