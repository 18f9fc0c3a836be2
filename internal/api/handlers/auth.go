package handlers

import (
	"encoding/json"
	"net/http"

	"ideator/internal/api/dto"
	"ideator/internal/api/middleware"
	"ideator/internal/domain/user"
	"ideator/internal/pkg/errors"
	"ideator/internal/pkg/logger"
	"ideator/internal/pkg/utils"
	"ideator/internal/pkg/validator"
)

type AuthHandler struct {
	service   user.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewAuthHandler(service user.Service, log *logger.Logger, val *validator.Validator) *AuthHandler {
	return &AuthHandler{service: service, logger: log, validator: val}
}

// Register creates a new account and returns a token with the profile
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if verrs := h.validator.Validate(req); len(verrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", verrs))
		return
	}

	u, token, err := h.service.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		writeServiceError(w, err, "Failed to register user")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(u),
	})
}

// Login authenticates credentials and returns a fresh token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if verrs := h.validator.Validate(req); len(verrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", verrs))
		return
	}

	u, token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err, "Failed to log in")
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(u),
	})
}

// GetProfile returns the authenticated user's profile
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	u, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "Failed to get profile")
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.NewUserResponse(u))
}

// UpdateProfile merges the supplied fields into the profile
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	u, err := h.service.UpdateProfile(r.Context(), userID, user.ProfileUpdate{
		Name:        req.Name,
		Preferences: req.Preferences,
	})
	if err != nil {
		writeServiceError(w, err, "Failed to update profile")
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.NewUserResponse(u))
}
