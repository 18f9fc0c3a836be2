package handlers

import (
	"net/http"

	"ideator/internal/pkg/errors"
	"ideator/internal/pkg/utils"
)

// writeServiceError writes an AppError as-is and wraps anything else
// as an internal error.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	if appErr, ok := err.(*errors.AppError); ok {
		utils.WriteError(w, appErr)
		return
	}
	utils.WriteError(w, errors.Internal(fallback, err))
}
