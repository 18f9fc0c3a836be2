package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ideator/internal/api/dto"
	"ideator/internal/domain/idea"
	"ideator/internal/pkg/logger"
	"ideator/internal/services"
	"ideator/internal/testutil"
)

func newCalendarHandler(repo *testutil.MockIdeaRepository) *CalendarHandler {
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	svc := services.NewIdeaService(repo, &stubGenerator{}, log)
	return NewCalendarHandler(svc, log)
}

func TestCalendarHandlerMonthFilter(t *testing.T) {
	repo := testutil.NewMockIdeaRepository()
	ctx := context.Background()

	feb := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	seed := []*idea.ContentIdea{
		{UserID: 1, Title: "February post", Description: "d", ContentType: idea.TypeBlog, Status: idea.StatusScheduled, CalendarDate: &feb},
		{UserID: 1, Title: "March post", Description: "d", ContentType: idea.TypeBlog, Status: idea.StatusScheduled, CalendarDate: &mar},
		{UserID: 1, Title: "Draft", Description: "d", ContentType: idea.TypeBlog, Status: idea.StatusDraft, CalendarDate: &feb},
	}
	for _, ci := range seed {
		if err := repo.Create(ctx, ci); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	h := newCalendarHandler(repo)

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/calendar?month=2&year=2024", nil), 1)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Ideas []dto.IdeaResponse `json:"ideas"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(resp.Ideas) != 1 || resp.Ideas[0].Title != "February post" {
		t.Errorf("Unexpected calendar contents: %+v", resp.Ideas)
	}
}

func TestCalendarHandlerBadMonth(t *testing.T) {
	h := newCalendarHandler(testutil.NewMockIdeaRepository())

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/calendar?month=abc&year=2024", nil), 1)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}
