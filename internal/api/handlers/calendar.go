package handlers

import (
	"net/http"
	"strconv"

	"ideator/internal/api/dto"
	"ideator/internal/api/middleware"
	"ideator/internal/domain/idea"
	"ideator/internal/pkg/errors"
	"ideator/internal/pkg/logger"
	"ideator/internal/pkg/utils"
)

type CalendarHandler struct {
	service idea.Service
	logger  *logger.Logger
}

func NewCalendarHandler(service idea.Service, log *logger.Logger) *CalendarHandler {
	return &CalendarHandler{service: service, logger: log}
}

// List returns scheduled ideas with a calendar date, optionally
// restricted to one month via ?month=&year=.
func (h *CalendarHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	month, err := parseOptionalInt(r.URL.Query().Get("month"))
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid month"))
		return
	}
	year, err := parseOptionalInt(r.URL.Query().Get("year"))
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid year"))
		return
	}

	ideas, err := h.service.Calendar(r.Context(), userID, month, year)
	if err != nil {
		writeServiceError(w, err, "Failed to list calendar")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"ideas": dto.NewIdeaResponses(ideas),
	})
}

func parseOptionalInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
