package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"ideator/internal/domain/user"
	"ideator/internal/pkg/errors"
)

// UserRepository implements user.Repository
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *DB) user.Repository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	prefs, err := encodePreferences(u.Preferences)
	if err != nil {
		return errors.DatabaseError("Failed to encode preferences", err)
	}

	query := `
		INSERT INTO users (email, name, password_hash, subscription, preferences, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	id, err := r.db.InsertReturningID(ctx, query,
		u.Email, u.Name, u.PasswordHash, u.Subscription, prefs, now.Unix(), now.Unix(),
	)
	if err != nil {
		return errors.DatabaseError("Failed to create user", err)
	}

	u.ID = id
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	query := `
		SELECT id, email, name, password_hash, subscription, preferences, created_at, updated_at
		FROM users WHERE id = ?
	`
	return r.scanOne(r.db.QueryRowContext(ctx, r.db.Rebind(query), id))
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT id, email, name, password_hash, subscription, preferences, created_at, updated_at
		FROM users WHERE email = ?
	`
	return r.scanOne(r.db.QueryRowContext(ctx, r.db.Rebind(query), email))
}

// Update updates a user
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	u.UpdatedAt = time.Now()

	prefs, err := encodePreferences(u.Preferences)
	if err != nil {
		return errors.DatabaseError("Failed to encode preferences", err)
	}

	query := `
		UPDATE users
		SET email = ?, name = ?, password_hash = ?, subscription = ?, preferences = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		u.Email, u.Name, u.PasswordHash, u.Subscription, prefs, u.UpdatedAt.Unix(), u.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update user", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}

	if rows == 0 {
		return errors.NotFound("User")
	}

	return nil
}

func (r *UserRepository) scanOne(row *sql.Row) (*user.User, error) {
	var u user.User
	var prefs sql.NullString
	var createdAt, updatedAt int64

	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Subscription, &prefs, &createdAt, &updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NotFound("User")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get user", err)
	}

	if prefs.Valid && prefs.String != "" {
		if err := json.Unmarshal([]byte(prefs.String), &u.Preferences); err != nil {
			return nil, errors.DatabaseError("Failed to decode preferences", err)
		}
	}
	u.CreatedAt = time.Unix(createdAt, 0)
	u.UpdatedAt = time.Unix(updatedAt, 0)

	return &u, nil
}

func encodePreferences(prefs map[string]interface{}) (string, error) {
	if prefs == nil {
		return "{}", nil
	}
	b, err := json.Marshal(prefs)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
