package dto

import "ideator/internal/domain/user"

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is the partial profile update payload
type UpdateProfileRequest struct {
	Name        *string                `json:"name,omitempty"`
	Preferences map[string]interface{} `json:"preferences,omitempty"`
}

// UserResponse is the user representation returned by the API
type UserResponse struct {
	ID           int64                  `json:"id"`
	Name         string                 `json:"name"`
	Email        string                 `json:"email"`
	Subscription string                 `json:"subscription"`
	Preferences  map[string]interface{} `json:"preferences,omitempty"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NewUserResponse maps a domain user to its API representation
func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Subscription: u.Subscription,
		Preferences:  u.Preferences,
	}
}
