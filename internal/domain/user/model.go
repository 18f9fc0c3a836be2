package user

import "time"

// User represents a registered account
type User struct {
	ID           int64                  `json:"id"`
	Email        string                 `json:"email"`
	Name         string                 `json:"name"`
	PasswordHash string                 `json:"-"` // Not exposed in JSON
	Subscription string                 `json:"subscription"`
	Preferences  map[string]interface{} `json:"preferences,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// Subscription tiers
const (
	SubscriptionFree       = "free"
	SubscriptionPro        = "pro"
	SubscriptionEnterprise = "enterprise"
)
