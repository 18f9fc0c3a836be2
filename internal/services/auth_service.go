package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"ideator/internal/auth"
	"ideator/internal/config"
	"ideator/internal/domain/user"
	"ideator/internal/pkg/errors"
	"ideator/internal/pkg/logger"
)

// Deliberately identical for unknown email and wrong password so a
// caller cannot probe which accounts exist.
const msgInvalidCredentials = "Invalid email or password"

// AuthService implements user.Service
type AuthService struct {
	repo user.Repository
	cfg  config.AuthConfig
	log  *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(repo user.Repository, cfg config.AuthConfig, log *logger.Logger) user.Service {
	return &AuthService{repo: repo, cfg: cfg, log: log}
}

// Register creates an account and returns it with a signed token
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*user.User, string, error) {
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); !ok || appErr.Code != errors.ErrCodeNotFound {
			return nil, "", err
		}
	}
	if existing != nil {
		return nil, "", errors.Conflict("User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BCryptCost)
	if err != nil {
		return nil, "", errors.Internal("Failed to hash password", err)
	}

	u := &user.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Subscription: user.SubscriptionFree,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := auth.MintToken(u.ID, s.cfg.JWTSecret, s.cfg.TokenExpiry)
	if err != nil {
		return nil, "", errors.Internal("Failed to sign token", err)
	}

	s.log.WithFields(map[string]interface{}{"user_id": u.ID}).Info("User registered")

	return u, token, nil
}

// Login authenticates credentials and returns the user with a fresh token
func (s *AuthService) Login(ctx context.Context, email, password string) (*user.User, string, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok && appErr.Code == errors.ErrCodeNotFound {
			return nil, "", errors.Unauthorized(msgInvalidCredentials)
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", errors.Unauthorized(msgInvalidCredentials)
	}

	token, err := auth.MintToken(u.ID, s.cfg.JWTSecret, s.cfg.TokenExpiry)
	if err != nil {
		return nil, "", errors.Internal("Failed to sign token", err)
	}

	s.log.WithFields(map[string]interface{}{"user_id": u.ID}).Info("User logged in")

	return u, token, nil
}

// GetProfile retrieves a user's profile
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*user.User, error) {
	return s.repo.GetByID(ctx, userID)
}

// UpdateProfile merges the supplied fields into the profile
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, update user.ProfileUpdate) (*user.User, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Preferences != nil {
		u.Preferences = update.Preferences
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}
