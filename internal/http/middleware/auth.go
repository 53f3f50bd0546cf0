package middleware

import (
	"context"
	"net/http"

	"github.com/rogerio-castellano/surgery-tracker/internal/auth"
)

type contextKey string

const (
	userIDKey = contextKey("user_id")
	roleKey   = contextKey("role")
)

// AuthMiddleware rejects requests without a valid bearer token and stores the
// token subject and role on the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := auth.TokenClaims(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		userID := 0
		if sub, ok := claims["sub"].(float64); ok {
			userID = int(sub)
		}
		role, _ := claims["role"].(string)

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, roleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole lets only users with role through. It must run after AuthMiddleware.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if GetRole(r) != role {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func GetUserID(r *http.Request) int {
	if val, ok := r.Context().Value(userIDKey).(int); ok {
		return val
	}
	return 0
}

func GetRole(r *http.Request) string {
	role, _ := r.Context().Value(roleKey).(string)
	return role
}
