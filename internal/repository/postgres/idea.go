package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"ideator/internal/domain/idea"
	"ideator/internal/pkg/errors"
)

// IdeaRepository implements idea.Repository
type IdeaRepository struct {
	db *DB
}

// NewIdeaRepository creates a new idea repository
func NewIdeaRepository(db *DB) idea.Repository {
	return &IdeaRepository{db: db}
}

const ideaColumns = "id, user_id, title, description, content_type, keywords, status, calendar_date, created_at, updated_at"

// Create creates a new idea
func (r *IdeaRepository) Create(ctx context.Context, ci *idea.ContentIdea) error {
	now := time.Now()
	ci.CreatedAt = now
	ci.UpdatedAt = now

	keywords, err := encodeKeywords(ci.Keywords)
	if err != nil {
		return errors.DatabaseError("Failed to encode keywords", err)
	}

	query := `
		INSERT INTO content_ideas (user_id, title, description, content_type, keywords, status, calendar_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	id, err := r.db.InsertReturningID(ctx, query,
		ci.UserID, ci.Title, ci.Description, ci.ContentType, keywords, ci.Status,
		nullUnix(ci.CalendarDate), now.Unix(), now.Unix(),
	)
	if err != nil {
		return errors.DatabaseError("Failed to create idea", err)
	}

	ci.ID = id
	return nil
}

// GetByID retrieves an idea owned by the user. A missing row and a row
// owned by someone else are the same NotFound.
func (r *IdeaRepository) GetByID(ctx context.Context, userID, id int64) (*idea.ContentIdea, error) {
	query := `SELECT ` + ideaColumns + ` FROM content_ideas WHERE id = ? AND user_id = ?`

	ci, err := scanIdea(r.db.QueryRowContext(ctx, r.db.Rebind(query), id, userID))
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Content idea")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get idea", err)
	}
	return ci, nil
}

// Update updates an idea; the row must belong to idea.UserID
func (r *IdeaRepository) Update(ctx context.Context, ci *idea.ContentIdea) error {
	ci.UpdatedAt = time.Now()

	keywords, err := encodeKeywords(ci.Keywords)
	if err != nil {
		return errors.DatabaseError("Failed to encode keywords", err)
	}

	query := `
		UPDATE content_ideas
		SET title = ?, description = ?, content_type = ?, keywords = ?, status = ?, calendar_date = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		ci.Title, ci.Description, ci.ContentType, keywords, ci.Status,
		nullUnix(ci.CalendarDate), ci.UpdatedAt.Unix(), ci.ID, ci.UserID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update idea", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}

	if rows == 0 {
		return errors.NotFound("Content idea")
	}

	return nil
}

// Delete deletes an idea owned by the user
func (r *IdeaRepository) Delete(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM content_ideas WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), id, userID)
	if err != nil {
		return errors.DatabaseError("Failed to delete idea", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}

	if rows == 0 {
		return errors.NotFound("Content idea")
	}

	return nil
}

// List retrieves ideas with filters and offset pagination, newest first
func (r *IdeaRepository) List(ctx context.Context, userID int64, filter idea.Filter, limit, offset int) ([]*idea.ContentIdea, int64, error) {
	where := []string{"user_id = ?"}
	args := []interface{}{userID}

	if filter.ContentType != "" {
		where = append(where, "content_type = ?")
		args = append(args, filter.ContentType)
	}
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, filter.Status)
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM content_ideas WHERE " + whereClause
	if err := r.db.QueryRowContext(ctx, r.db.Rebind(countQuery), args...).Scan(&total); err != nil {
		return nil, 0, errors.DatabaseError("Failed to count ideas", err)
	}

	query := "SELECT " + ideaColumns + " FROM content_ideas WHERE " + whereClause +
		" ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list ideas", err)
	}
	defer rows.Close()

	ideas, err := collectIdeas(rows)
	if err != nil {
		return nil, 0, err
	}

	return ideas, total, nil
}

// ListCalendar retrieves scheduled ideas with a calendar date, date ascending
func (r *IdeaRepository) ListCalendar(ctx context.Context, userID int64, month, year int) ([]*idea.ContentIdea, error) {
	where := []string{"user_id = ?", "status = ?", "calendar_date IS NOT NULL"}
	args := []interface{}{userID, idea.StatusScheduled}

	if month != 0 && year != 0 {
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		where = append(where, "calendar_date >= ?", "calendar_date < ?")
		args = append(args, start.Unix(), end.Unix())
	}

	query := "SELECT " + ideaColumns + " FROM content_ideas WHERE " +
		strings.Join(where, " AND ") + " ORDER BY calendar_date ASC"

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list calendar", err)
	}
	defer rows.Close()

	return collectIdeas(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanIdea(row rowScanner) (*idea.ContentIdea, error) {
	var ci idea.ContentIdea
	var keywords sql.NullString
	var calendarDate sql.NullInt64
	var createdAt, updatedAt int64

	err := row.Scan(
		&ci.ID, &ci.UserID, &ci.Title, &ci.Description, &ci.ContentType,
		&keywords, &ci.Status, &calendarDate, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	ci.Keywords = []string{}
	if keywords.Valid && keywords.String != "" {
		if err := json.Unmarshal([]byte(keywords.String), &ci.Keywords); err != nil {
			return nil, err
		}
	}
	if calendarDate.Valid {
		t := time.Unix(calendarDate.Int64, 0).UTC()
		ci.CalendarDate = &t
	}
	ci.CreatedAt = time.Unix(createdAt, 0)
	ci.UpdatedAt = time.Unix(updatedAt, 0)

	return &ci, nil
}

func collectIdeas(rows *sql.Rows) ([]*idea.ContentIdea, error) {
	var ideas []*idea.ContentIdea
	for rows.Next() {
		ci, err := scanIdea(rows)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan idea", err)
		}
		ideas = append(ideas, ci)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate ideas", err)
	}
	return ideas, nil
}

func encodeKeywords(keywords []string) (string, error) {
	if keywords == nil {
		keywords = []string{}
	}
	b, err := json.Marshal(keywords)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func nullUnix(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Unix()
}
