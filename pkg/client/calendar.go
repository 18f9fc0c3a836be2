package client

import (
	"context"
	"fmt"
	"net/http"
)

// Calendar retrieves scheduled ideas, optionally for one month.
// Pass month and year as zero to list everything scheduled.
func (c *Client) Calendar(ctx context.Context, month, year int) ([]Idea, error) {
	path := "/api/calendar"
	if month != 0 && year != 0 {
		path = fmt.Sprintf("%s?month=%d&year=%d", path, month, year)
	}

	var resp struct {
		Ideas []Idea `json:"ideas"`
	}
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Ideas, nil
}

// Trends retrieves the current trending topics
func (c *Client) Trends(ctx context.Context) ([]Trend, error) {
	var resp struct {
		Trends []Trend `json:"trends"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/api/trends", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Trends, nil
}
