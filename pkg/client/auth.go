package client

import (
	"context"
	"net/http"
)

// AuthService handles registration, login and profile calls
type AuthService struct {
	client *Client
}

// Auth returns the auth service
func (c *Client) Auth() *AuthService {
	return &AuthService{client: c}
}

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account and stores the returned token on the client
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := s.client.doRequest(ctx, http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	s.client.SetToken(resp.Token)
	return &resp, nil
}

// Login authenticates and stores the returned token on the client
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	body := map[string]string{"email": email, "password": password}
	if err := s.client.doRequest(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}
	s.client.SetToken(resp.Token)
	return &resp, nil
}

// Profile retrieves the authenticated user's profile
func (s *AuthService) Profile(ctx context.Context) (*User, error) {
	var u User
	if err := s.client.doRequest(ctx, http.MethodGet, "/api/auth/profile", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfileRequest is the partial profile update payload
type UpdateProfileRequest struct {
	Name        *string                `json:"name,omitempty"`
	Preferences map[string]interface{} `json:"preferences,omitempty"`
}

// UpdateProfile merges the supplied fields into the profile
func (s *AuthService) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	var u User
	if err := s.client.doRequest(ctx, http.MethodPut, "/api/auth/profile", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
