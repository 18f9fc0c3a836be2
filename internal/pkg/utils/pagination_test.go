package utils

import (
	"net/http/httptest"
	"testing"
)

func TestParsePaginationParams(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 1, 10, 0},
		{"explicit", "?page=3&limit=20", 3, 20, 40},
		{"limit clamped to max", "?limit=500", 1, 50, 0},
		{"negative page reset", "?page=-2", 1, 10, 0},
		{"zero limit reset", "?limit=0", 1, 10, 0},
		{"garbage ignored", "?page=abc&limit=xyz", 1, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/ideas"+tt.query, nil)
			p := ParsePaginationParams(req)
			if p.Page != tt.wantPage || p.Limit != tt.wantLimit || p.Offset != tt.wantOffset {
				t.Errorf("Got page=%d limit=%d offset=%d", p.Page, p.Limit, p.Offset)
			}
		})
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		total     int64
		page      int
		limit     int
		wantPages int
	}{
		{0, 1, 10, 0},
		{10, 1, 10, 1},
		{11, 1, 10, 2},
		{15, 2, 10, 2},
		{100, 1, 50, 2},
	}

	for _, tt := range tests {
		p := NewPagination(tt.total, tt.page, tt.limit)
		if p.Pages != tt.wantPages {
			t.Errorf("NewPagination(%d, %d, %d).Pages = %d, want %d",
				tt.total, tt.page, tt.limit, p.Pages, tt.wantPages)
		}
	}
}
