package client

import "time"

// User is the API's user representation
type User struct {
	ID           int64                  `json:"id"`
	Name         string                 `json:"name"`
	Email        string                 `json:"email"`
	Subscription string                 `json:"subscription"`
	Preferences  map[string]interface{} `json:"preferences,omitempty"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Idea is the API's content idea representation
type Idea struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ContentType  string     `json:"contentType"`
	Keywords     []string   `json:"keywords"`
	Status       string     `json:"status"`
	CalendarDate *time.Time `json:"calendarDate"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Pagination is the pagination block of list responses
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// IdeaList is the paginated idea list response
type IdeaList struct {
	Ideas      []Idea     `json:"ideas"`
	Pagination Pagination `json:"pagination"`
}

// Trend is one trending topic
type Trend struct {
	Keyword    string  `json:"keyword"`
	TrendScore float64 `json:"trendScore"`
	Industry   string  `json:"industry"`
}
