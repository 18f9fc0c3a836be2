package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"ideator/internal/pkg/errors"
	"ideator/internal/pkg/logger"
	"ideator/internal/pkg/utils"
)

// Recovery turns panics into 500 responses instead of dropped
// connections.
func Recovery(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.WithFields(map[string]interface{}{
						"request_id": GetRequestID(r.Context()),
						"panic":      fmt.Sprintf("%v", rec),
						"stack":      string(debug.Stack()),
					}).Error("panic recovered")

					utils.WriteErrorMessage(w, http.StatusInternalServerError,
						errors.ErrCodeInternal, "Internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
