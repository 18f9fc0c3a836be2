package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ideator/internal/api/dto"
	"ideator/internal/api/middleware"
	"ideator/internal/config"
	"ideator/internal/pkg/logger"
	"ideator/internal/pkg/utils"
	"ideator/internal/pkg/validator"
	"ideator/internal/services"
	"ideator/internal/testutil"
)

func newAuthHandler(repo *testutil.MockUserRepository) *AuthHandler {
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	svc := services.NewAuthService(repo, config.AuthConfig{
		JWTSecret:   "test-secret",
		TokenExpiry: time.Hour,
		BCryptCost:  4,
	}, log)
	return NewAuthHandler(svc, log, validator.New())
}

func TestRegisterHandler(t *testing.T) {
	h := newAuthHandler(testutil.NewMockUserRepository())

	body := `{"name": "Alice", "email": "alice@example.com", "password": "password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp.Token == "" {
		t.Error("Expected a token")
	}
	if resp.User.Email != "alice@example.com" {
		t.Errorf("Unexpected user: %+v", resp.User)
	}
}

func TestRegisterValidation(t *testing.T) {
	h := newAuthHandler(testutil.NewMockUserRepository())

	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"name": "A", "password": "password123"}`},
		{"bad email", `{"name": "A", "email": "not-an-email", "password": "password123"}`},
		{"short password", `{"name": "A", "email": "a@example.com", "password": "123"}`},
		{"missing name", `{"email": "a@example.com", "password": "password123"}`},
		{"invalid json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			h.Register(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestLoginHandlerWrongPassword(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	h := newAuthHandler(repo)

	register := `{"name": "Bob", "email": "bob@example.com", "password": "password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(register))
	h.Register(httptest.NewRecorder(), req)

	login := `{"email": "bob@example.com", "password": "wrong"}`
	req = httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(login))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", rec.Code)
	}

	var errResp utils.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("Failed to parse error response: %v", err)
	}
	if errResp.Message != "Invalid email or password" {
		t.Errorf("Unexpected message: %q", errResp.Message)
	}
}

func TestProfileHandlers(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	h := newAuthHandler(repo)

	register := `{"name": "Carol", "email": "carol@example.com", "password": "password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(register))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	var auth dto.AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &auth); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), auth.User.ID))
	rec = httptest.NewRecorder()

	h.GetProfile(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	update := `{"name": "Caroline", "preferences": {"tone": "witty"}}`
	req = httptest.NewRequest(http.MethodPut, "/api/auth/profile", bytes.NewBufferString(update))
	req = req.WithContext(middleware.WithUserID(req.Context(), auth.User.ID))
	rec = httptest.NewRecorder()

	h.UpdateProfile(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var updated dto.UserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if updated.Name != "Caroline" {
		t.Errorf("Expected updated name, got %s", updated.Name)
	}
	if updated.Preferences["tone"] != "witty" {
		t.Errorf("Preferences not applied: %v", updated.Preferences)
	}
}
