package services

import (
	"context"
	"testing"
	"time"

	"ideator/internal/domain/idea"
	"ideator/internal/ideagen"
	"ideator/internal/pkg/errors"
	"ideator/internal/pkg/logger"
	"ideator/internal/testutil"
)

type fakeGenerator struct {
	result ideagen.ParseResult
	err    error
}

func (f *fakeGenerator) Generate(ctx context.Context, contentType string, keywords []string, count int) (ideagen.ParseResult, error) {
	if f.err != nil {
		return ideagen.ParseResult{}, f.err
	}
	return f.result, nil
}

func testIdeaService(repo *testutil.MockIdeaRepository, gen IdeaGenerator) *IdeaService {
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	return NewIdeaService(repo, gen, log).(*IdeaService)
}

func TestGeneratePersistsAllIdeas(t *testing.T) {
	repo := testutil.NewMockIdeaRepository()
	gen := &fakeGenerator{
		result: ideagen.ParseResult{
			Mode: ideagen.ModeStructured,
			Ideas: []ideagen.Idea{
				{Title: "One", Description: "First"},
				{Title: "Two", Description: "Second"},
				{Title: "Three", Description: "Third"},
			},
		},
	}
	svc := testIdeaService(repo, gen)

	ideas, err := svc.Generate(context.Background(), 7, "blog", []string{"go"}, 3)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(ideas) != 3 {
		t.Fatalf("Expected 3 ideas, got %d", len(ideas))
	}
	for _, ci := range ideas {
		if ci.ID == 0 {
			t.Error("Idea not persisted, no ID assigned")
		}
		if ci.UserID != 7 {
			t.Errorf("Expected owner 7, got %d", ci.UserID)
		}
		if ci.Status != idea.StatusDraft {
			t.Errorf("Expected draft status, got %s", ci.Status)
		}
		if ci.ContentType != "blog" {
			t.Errorf("Expected blog type, got %s", ci.ContentType)
		}
	}
	if len(repo.Ideas) != 3 {
		t.Errorf("Expected 3 stored ideas, got %d", len(repo.Ideas))
	}
}

func TestGenerateUpstreamFailure(t *testing.T) {
	repo := testutil.NewMockIdeaRepository()
	gen := &fakeGenerator{err: errors.GenerationError("upstream down", nil)}
	svc := testIdeaService(repo, gen)

	_, err := svc.Generate(context.Background(), 1, "blog", nil, 5)
	if err == nil {
		t.Fatal("Expected error")
	}
	if len(repo.Ideas) != 0 {
		t.Errorf("No ideas should be stored on failure, got %d", len(repo.Ideas))
	}
}

func TestUpdateDatePromotesDraft(t *testing.T) {
	repo := testutil.NewMockIdeaRepository()
	svc := testIdeaService(repo, &fakeGenerator{})
	ctx := context.Background()

	ci := &idea.ContentIdea{UserID: 1, Title: "Draft", Description: "d", ContentType: "blog", Status: idea.StatusDraft}
	if err := repo.Create(ctx, ci); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(ctx, 1, ci.ID, idea.Update{
		CalendarDate: idea.CalendarDateUpdate{Set: true, Date: &date},
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Status != idea.StatusScheduled {
		t.Errorf("Expected scheduled after setting date, got %s", updated.Status)
	}
	if updated.CalendarDate == nil || !updated.CalendarDate.Equal(date) {
		t.Errorf("Calendar date not applied: %v", updated.CalendarDate)
	}
}

func TestUpdateClearingDateDemotesScheduled(t *testing.T) {
	repo := testutil.NewMockIdeaRepository()
	svc := testIdeaService(repo, &fakeGenerator{})
	ctx := context.Background()

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	ci := &idea.ContentIdea{UserID: 1, Title: "Planned", Description: "d", ContentType: "blog", Status: idea.StatusScheduled, CalendarDate: &date}
	if err := repo.Create(ctx, ci); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := svc.Update(ctx, 1, ci.ID, idea.Update{
		CalendarDate: idea.CalendarDateUpdate{Set: true, Date: nil},
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Status != idea.StatusDraft {
		t.Errorf("Expected draft after clearing date, got %s", updated.Status)
	}
	if updated.CalendarDate != nil {
		t.Errorf("Calendar date not cleared: %v", updated.CalendarDate)
	}
}

func TestUpdateExplicitStatusWins(t *testing.T) {
	repo := testutil.NewMockIdeaRepository()
	svc := testIdeaService(repo, &fakeGenerator{})
	ctx := context.Background()

	ci := &idea.ContentIdea{UserID: 1, Title: "Post", Description: "d", ContentType: "blog", Status: idea.StatusDraft}
	if err := repo.Create(ctx, ci); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	published := idea.StatusPublished
	updated, err := svc.Update(ctx, 1, ci.ID, idea.Update{
		Status:       &published,
		CalendarDate: idea.CalendarDateUpdate{Set: true, Date: &date},
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Status != idea.StatusPublished {
		t.Errorf("Explicit status should win, got %s", updated.Status)
	}
}

func TestDeleteOtherUsersIdea(t *testing.T) {
	repo := testutil.NewMockIdeaRepository()
	svc := testIdeaService(repo, &fakeGenerator{})
	ctx := context.Background()

	ci := &idea.ContentIdea{UserID: 1, Title: "Mine", Description: "d", ContentType: "blog", Status: idea.StatusDraft}
	if err := repo.Create(ctx, ci); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err := svc.Delete(ctx, 2, ci.ID)
	if err == nil {
		t.Fatal("Expected NotFound for other user's idea")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeNotFound {
		t.Errorf("Expected NotFound, got %v", err)
	}

	if len(repo.Ideas) != 1 {
		t.Errorf("Owner's idea count changed: %d", len(repo.Ideas))
	}
}

func TestCalendarMonthFiltering(t *testing.T) {
	repo := testutil.NewMockIdeaRepository()
	svc := testIdeaService(repo, &fakeGenerator{})
	ctx := context.Background()

	feb10 := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	feb29 := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	mar1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	seed := []*idea.ContentIdea{
		{UserID: 1, Title: "In range", ContentType: "blog", Status: idea.StatusScheduled, CalendarDate: &feb10},
		{UserID: 1, Title: "Leap day", ContentType: "blog", Status: idea.StatusScheduled, CalendarDate: &feb29},
		{UserID: 1, Title: "Next month", ContentType: "blog", Status: idea.StatusScheduled, CalendarDate: &mar1},
		{UserID: 1, Title: "Draft in range", ContentType: "blog", Status: idea.StatusDraft, CalendarDate: &feb10},
		{UserID: 2, Title: "Other user", ContentType: "blog", Status: idea.StatusScheduled, CalendarDate: &feb10},
	}
	for _, ci := range seed {
		if err := repo.Create(ctx, ci); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	ideas, err := svc.Calendar(ctx, 1, 2, 2024)
	if err != nil {
		t.Fatalf("Calendar failed: %v", err)
	}

	if len(ideas) != 2 {
		t.Fatalf("Expected 2 ideas, got %d", len(ideas))
	}
	if ideas[0].Title != "In range" || ideas[1].Title != "Leap day" {
		t.Errorf("Unexpected calendar contents: %s, %s", ideas[0].Title, ideas[1].Title)
	}
}

func TestCalendarRejectsPartialMonthYear(t *testing.T) {
	repo := testutil.NewMockIdeaRepository()
	svc := testIdeaService(repo, &fakeGenerator{})

	if _, err := svc.Calendar(context.Background(), 1, 2, 0); err == nil {
		t.Error("Expected error for month without year")
	}
	if _, err := svc.Calendar(context.Background(), 1, 13, 2024); err == nil {
		t.Error("Expected error for month out of range")
	}
}
