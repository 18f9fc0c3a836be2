package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"ideator/internal/domain/trend"
	"ideator/internal/pkg/errors"
)

// TrendRepository implements trend.Repository
type TrendRepository struct {
	db *DB
}

// NewTrendRepository creates a new trend repository
func NewTrendRepository(db *DB) trend.Repository {
	return &TrendRepository{db: db}
}

// Create stores a trend observation
func (r *TrendRepository) Create(ctx context.Context, t *trend.TrendData) error {
	t.CreatedAt = time.Now()

	points, err := json.Marshal(t.Points)
	if err != nil {
		return errors.DatabaseError("Failed to encode trend points", err)
	}

	query := `
		INSERT INTO trend_data (keyword, industry, trend_score, points, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	id, err := r.db.InsertReturningID(ctx, query,
		t.Keyword, t.Industry, t.TrendScore, string(points), t.Source, t.CreatedAt.Unix(),
	)
	if err != nil {
		return errors.DatabaseError("Failed to create trend", err)
	}

	t.ID = id
	return nil
}

// List retrieves the most recent trends, highest score first
func (r *TrendRepository) List(ctx context.Context, limit int) ([]*trend.TrendData, error) {
	query := `
		SELECT id, keyword, industry, trend_score, points, source, created_at
		FROM trend_data
		ORDER BY trend_score DESC, created_at DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), limit)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list trends", err)
	}
	defer rows.Close()

	var trends []*trend.TrendData
	for rows.Next() {
		var t trend.TrendData
		var points sql.NullString
		var createdAt int64

		if err := rows.Scan(&t.ID, &t.Keyword, &t.Industry, &t.TrendScore, &points, &t.Source, &createdAt); err != nil {
			return nil, errors.DatabaseError("Failed to scan trend", err)
		}

		if points.Valid && points.String != "" {
			if err := json.Unmarshal([]byte(points.String), &t.Points); err != nil {
				return nil, errors.DatabaseError("Failed to decode trend points", err)
			}
		}
		t.CreatedAt = time.Unix(createdAt, 0)
		trends = append(trends, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate trends", err)
	}

	return trends, nil
}

// DeleteExpired removes rows created before the cutoff
func (r *TrendRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM trend_data WHERE created_at < ?`

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), cutoff.Unix())
	if err != nil {
		return 0, errors.DatabaseError("Failed to delete expired trends", err)
	}

	return result.RowsAffected()
}
