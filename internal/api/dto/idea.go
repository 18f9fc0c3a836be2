package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"ideator/internal/domain/idea"
	"ideator/internal/pkg/utils"
)

// GenerateIdeasRequest is the idea generation payload
type GenerateIdeasRequest struct {
	ContentType string   `json:"contentType" validate:"required,oneof=blog video social"`
	Keywords    []string `json:"keywords,omitempty"`
	Count       int      `json:"count,omitempty" validate:"omitempty,gte=1,lte=10"`
}

// Normalize applies the default count
func (r *GenerateIdeasRequest) Normalize() {
	if r.Count == 0 {
		r.Count = 5
	}
}

// OptionalTime is a tri-state timestamp field: absent, explicit null,
// or a value. Accepts RFC 3339 timestamps and bare dates.
type OptionalTime struct {
	Set  bool
	Time *time.Time
}

// UnmarshalJSON records that the field was present
func (o *OptionalTime) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Time = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			o.Time = &t
			return nil
		}
	}
	return fmt.Errorf("invalid date: %q", s)
}

// UpdateIdeaRequest is the partial idea update payload
type UpdateIdeaRequest struct {
	Title        *string      `json:"title,omitempty"`
	Description  *string      `json:"description,omitempty"`
	Status       *string      `json:"status,omitempty" validate:"omitempty,oneof=draft scheduled published"`
	Keywords     []string     `json:"keywords,omitempty"`
	CalendarDate OptionalTime `json:"calendarDate"`
}

// ToUpdate maps the request onto the domain update struct
func (r *UpdateIdeaRequest) ToUpdate() idea.Update {
	return idea.Update{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Keywords:    r.Keywords,
		CalendarDate: idea.CalendarDateUpdate{
			Set:  r.CalendarDate.Set,
			Date: r.CalendarDate.Time,
		},
	}
}

// IdeaResponse is the idea representation returned by the API
type IdeaResponse struct {
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

// IdeaListResponse is the paginated list envelope
type IdeaListResponse struct {
	Ideas      []IdeaResponse   `json:"ideas"`
	Pagination utils.Pagination `json:"pagination"`
}

// NewIdeaResponse maps a domain idea to its API representation
func NewIdeaResponse(ci *idea.ContentIdea) IdeaResponse {
	keywords := ci.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return IdeaResponse{
		ID:           ci.ID,
		Title:        ci.Title,
		Description:  ci.Description,
		ContentType:  ci.ContentType,
		Keywords:     keywords,
		Status:       ci.Status,
		CalendarDate: ci.CalendarDate,
		CreatedAt:    ci.CreatedAt,
		UpdatedAt:    ci.UpdatedAt,
	}
}

// NewIdeaResponses maps a slice of domain ideas
func NewIdeaResponses(ideas []*idea.ContentIdea) []IdeaResponse {
	out := make([]IdeaResponse, 0, len(ideas))
	for _, ci := range ideas {
		out = append(out, NewIdeaResponse(ci))
	}
	return out
}
