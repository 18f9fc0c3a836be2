package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// IdeaService handles idea generation and CRUD calls
type IdeaService struct {
	client *Client
}

// Ideas returns the idea service
func (c *Client) Ideas() *IdeaService {
	return &IdeaService{client: c}
}

// GenerateRequest is the idea generation payload
type GenerateRequest struct {
	ContentType string   `json:"contentType"`
	Keywords    []string `json:"keywords,omitempty"`
	Count       int      `json:"count,omitempty"`
}

// Generate creates a batch of ideas
func (s *IdeaService) Generate(ctx context.Context, req GenerateRequest) ([]Idea, error) {
	var resp struct {
		Ideas []Idea `json:"ideas"`
	}
	if err := s.client.doRequest(ctx, http.MethodPost, "/api/ideas/generate", req, &resp); err != nil {
		return nil, err
	}
	return resp.Ideas, nil
}

// ListOptions narrows and pages the idea listing
type ListOptions struct {
	ContentType string
	Status      string
	Page        int
	Limit       int
}

// List retrieves ideas with optional filters and pagination
func (s *IdeaService) List(ctx context.Context, opts ListOptions) (*IdeaList, error) {
	q := url.Values{}
	if opts.ContentType != "" {
		q.Set("contentType", opts.ContentType)
	}
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}

	path := "/api/ideas"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp IdeaList
	if err := s.client.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Get retrieves one idea
func (s *IdeaService) Get(ctx context.Context, id int64) (*Idea, error) {
	var resp Idea
	if err := s.client.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/ideas/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Null marshals as an explicit JSON null. Assign it to CalendarDate to
// clear a scheduled date; a plain nil is dropped by omitempty.
var Null = jsonNull{}

type jsonNull struct{}

func (jsonNull) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// UpdateRequest is the partial idea update payload. CalendarDate takes
// a date string to schedule or Null to clear; leave it nil to keep the
// current date.
type UpdateRequest struct {
	Title        *string     `json:"title,omitempty"`
	Description  *string     `json:"description,omitempty"`
	Status       *string     `json:"status,omitempty"`
	Keywords     []string    `json:"keywords,omitempty"`
	CalendarDate interface{} `json:"calendarDate,omitempty"`
}

// Update merges the supplied fields into an idea
func (s *IdeaService) Update(ctx context.Context, id int64, req UpdateRequest) (*Idea, error) {
	var resp Idea
	if err := s.client.doRequest(ctx, http.MethodPut, fmt.Sprintf("/api/ideas/%d", id), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Delete removes an idea
func (s *IdeaService) Delete(ctx context.Context, id int64) error {
	return s.client.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/ideas/%d", id), nil, nil)
}
