package user

import "context"

// ProfileUpdate carries the optional fields of a profile update.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Name        *string
	Preferences map[string]interface{}
}

// Service defines the interface for account business logic
type Service interface {
	// Register creates an account and returns it together with a signed token
	Register(ctx context.Context, email, password, name string) (*User, string, error)

	// Login authenticates credentials and returns the user with a fresh token
	Login(ctx context.Context, email, password string) (*User, string, error)

	// GetProfile retrieves a user's profile
	GetProfile(ctx context.Context, userID int64) (*User, error)

	// UpdateProfile merges the supplied fields into the profile
	UpdateProfile(ctx context.Context, userID int64, update ProfileUpdate) (*User, error)
}
