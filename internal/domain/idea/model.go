package idea

import "time"

// ContentIdea represents one generated or manually entered content suggestion
type ContentIdea struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"user_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ContentType  string     `json:"content_type"`
	Keywords     []string   `json:"keywords"`
	Status       string     `json:"status"`
	CalendarDate *time.Time `json:"calendar_date"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Content types
const (
	TypeBlog   = "blog"
	TypeVideo  = "video"
	TypeSocial = "social"
)

// Idea status
const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusPublished = "published"
)

// ValidContentType reports whether t is one of the content type enum values.
func ValidContentType(t string) bool {
	return t == TypeBlog || t == TypeVideo || t == TypeSocial
}

// ValidStatus reports whether s is one of the status enum values.
func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusScheduled || s == StatusPublished
}

// Filter contains idea listing filters; empty fields are ignored
type Filter struct {
	ContentType string
	Status      string
}

// Update carries the optional fields of a partial idea update. Nil
// pointers are left untouched. CalendarDate distinguishes "absent"
// (Set false) from an explicit null (Set true, Date nil).
type Update struct {
	Title        *string
	Description  *string
	Status       *string
	Keywords     []string
	CalendarDate CalendarDateUpdate
}

// CalendarDateUpdate is the tri-state calendar date field of an Update
type CalendarDateUpdate struct {
	Set  bool
	Date *time.Time
}
