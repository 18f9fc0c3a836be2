package handlers

import (
	"net/http"

	"ideator/internal/pkg/logger"
	"ideator/internal/pkg/utils"
	"ideator/internal/services"
)

type TrendHandler struct {
	service *services.TrendService
	logger  *logger.Logger
}

func NewTrendHandler(service *services.TrendService, log *logger.Logger) *TrendHandler {
	return &TrendHandler{service: service, logger: log}
}

// trendDTO is the wire shape of one trend entry
type trendDTO struct {
	Keyword    string  `json:"keyword"`
	TrendScore float64 `json:"trendScore"`
	Industry   string  `json:"industry"`
}

// List returns trending topics
func (h *TrendHandler) List(w http.ResponseWriter, r *http.Request) {
	trends, err := h.service.Trending(r.Context(), 10)
	if err != nil {
		writeServiceError(w, err, "Failed to list trends")
		return
	}

	dtos := make([]trendDTO, 0, len(trends))
	for _, t := range trends {
		dtos = append(dtos, trendDTO{
			Keyword:    t.Keyword,
			TrendScore: t.TrendScore,
			Industry:   t.Industry,
		})
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Trends API endpoint (to be implemented)",
		"trends":  dtos,
	})
}
