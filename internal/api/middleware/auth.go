package middleware

import (
	"context"
	"net/http"
	"strings"

	"ideator/internal/auth"
	"ideator/internal/pkg/errors"
	"ideator/internal/pkg/utils"
)

type contextKey string

const userIDKey contextKey = "user_id"

// Authenticator validates the bearer token on protected routes and
// injects the resolved user id into the request context.
func Authenticator(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				utils.WriteErrorMessage(w, http.StatusUnauthorized, errors.ErrCodeUnauthorized, "No token provided")
				return
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")
			claims, err := auth.ParseClaims(tokenStr, jwtSecret)
			if err != nil {
				utils.WriteErrorMessage(w, http.StatusUnauthorized, errors.ErrCodeUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID extracts the authenticated user id from the request context
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// WithUserID injects a user id into a context (used by tests)
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
