package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ideator/internal/api/dto"
	"ideator/internal/api/middleware"
	"ideator/internal/domain/idea"
	"ideator/internal/pkg/errors"
	"ideator/internal/pkg/logger"
	"ideator/internal/pkg/utils"
	"ideator/internal/pkg/validator"
)

type IdeaHandler struct {
	service   idea.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewIdeaHandler(service idea.Service, log *logger.Logger, val *validator.Validator) *IdeaHandler {
	return &IdeaHandler{service: service, logger: log, validator: val}
}

// Generate creates a batch of ideas from the generation API
func (h *IdeaHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	var req dto.GenerateIdeasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if verrs := h.validator.Validate(req); len(verrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", verrs))
		return
	}
	req.Normalize()

	ideas, err := h.service.Generate(r.Context(), userID, req.ContentType, req.Keywords, req.Count)
	if err != nil {
		writeServiceError(w, err, "Failed to generate ideas")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"ideas": dto.NewIdeaResponses(ideas),
	})
}

// List returns the user's ideas with filters and pagination
func (h *IdeaHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	params := utils.ParsePaginationParams(r)

	filter := idea.Filter{
		ContentType: r.URL.Query().Get("contentType"),
		Status:      r.URL.Query().Get("status"),
	}
	if filter.ContentType != "" && !idea.ValidContentType(filter.ContentType) {
		utils.WriteError(w, errors.BadRequest("Invalid contentType filter"))
		return
	}
	if filter.Status != "" && !idea.ValidStatus(filter.Status) {
		utils.WriteError(w, errors.BadRequest("Invalid status filter"))
		return
	}

	ideas, total, err := h.service.List(r.Context(), userID, filter, params.Limit, params.Offset)
	if err != nil {
		writeServiceError(w, err, "Failed to list ideas")
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.IdeaListResponse{
		Ideas:      dto.NewIdeaResponses(ideas),
		Pagination: utils.NewPagination(total, params.Page, params.Limit),
	})
}

// Get returns one idea owned by the user
func (h *IdeaHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	id, err := parseIDParam(r)
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid idea id"))
		return
	}

	ci, err := h.service.GetByID(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, err, "Failed to get idea")
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.NewIdeaResponse(ci))
}

// Update merges the supplied fields into an idea owned by the user
func (h *IdeaHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	id, err := parseIDParam(r)
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid idea id"))
		return
	}

	var req dto.UpdateIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if verrs := h.validator.Validate(req); len(verrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", verrs))
		return
	}

	ci, err := h.service.Update(r.Context(), userID, id, req.ToUpdate())
	if err != nil {
		writeServiceError(w, err, "Failed to update idea")
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.NewIdeaResponse(ci))
}

// Delete removes an idea owned by the user
func (h *IdeaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	id, err := parseIDParam(r)
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid idea id"))
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, err, "Failed to delete idea")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Idea removed",
	})
}

func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
