package integration

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"ideator/internal/pkg/errors"
	"ideator/pkg/client"
)

func registerUser(t *testing.T, api *client.Client, email string) {
	t.Helper()
	_, err := api.Auth().Register(context.Background(), client.RegisterRequest{
		Name:     "Test User",
		Email:    email,
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
}

func TestGenerateListScheduleCalendarFlow(t *testing.T) {
	api := startServer(t, defaultGenerator())
	ctx := context.Background()
	registerUser(t, api, "planner@example.com")

	ideas, err := api.Ideas().Generate(ctx, client.GenerateRequest{
		ContentType: "blog",
		Keywords:    []string{"audience", "growth"},
		Count:       2,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(ideas) != 2 {
		t.Fatalf("Expected 2 generated ideas, got %d", len(ideas))
	}
	for _, idea := range ideas {
		if idea.Status != "draft" {
			t.Errorf("Generated idea not draft: %s", idea.Status)
		}
		if len(idea.Keywords) != 2 {
			t.Errorf("Keywords not tagged: %v", idea.Keywords)
		}
	}

	list, err := api.Ideas().List(ctx, client.ListOptions{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if list.Pagination.Total != 2 {
		t.Errorf("Expected total 2, got %d", list.Pagination.Total)
	}

	// Schedule the first idea; it should become visible on the calendar
	target := ideas[0]
	updated, err := api.Ideas().Update(ctx, target.ID, client.UpdateRequest{
		CalendarDate: "2024-06-15",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != "scheduled" {
		t.Errorf("Setting a date should schedule the idea, got %s", updated.Status)
	}

	onCalendar, err := api.Calendar(ctx, 6, 2024)
	if err != nil {
		t.Fatalf("Calendar failed: %v", err)
	}
	if len(onCalendar) != 1 || onCalendar[0].ID != target.ID {
		t.Errorf("Calendar contents wrong: %+v", onCalendar)
	}

	// A different month is empty
	empty, err := api.Calendar(ctx, 7, 2024)
	if err != nil {
		t.Fatalf("Calendar failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected empty July, got %d ideas", len(empty))
	}

	if err := api.Ideas().Delete(ctx, target.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := api.Ideas().Get(ctx, target.ID); !client.IsNotFound(err) {
		t.Errorf("Expected NotFound after delete, got %v", err)
	}
}

func TestClearingDateUnschedulesIdea(t *testing.T) {
	api := startServer(t, defaultGenerator())
	ctx := context.Background()
	registerUser(t, api, "unscheduler@example.com")

	ideas, err := api.Ideas().Generate(ctx, client.GenerateRequest{ContentType: "blog", Count: 1})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	scheduled, err := api.Ideas().Update(ctx, ideas[0].ID, client.UpdateRequest{
		CalendarDate: "2024-06-15",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if scheduled.Status != "scheduled" {
		t.Fatalf("Expected scheduled, got %s", scheduled.Status)
	}

	cleared, err := api.Ideas().Update(ctx, ideas[0].ID, client.UpdateRequest{
		CalendarDate: client.Null,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if cleared.Status != "draft" {
		t.Errorf("Clearing the date should demote to draft, got %s", cleared.Status)
	}
	if cleared.CalendarDate != nil {
		t.Errorf("Date not cleared: %v", cleared.CalendarDate)
	}

	onCalendar, err := api.Calendar(ctx, 6, 2024)
	if err != nil {
		t.Fatalf("Calendar failed: %v", err)
	}
	if len(onCalendar) != 0 {
		t.Errorf("Unscheduled idea still on the calendar: %+v", onCalendar)
	}
}

func TestIdeasAreOwnershipScoped(t *testing.T) {
	api := startServer(t, defaultGenerator())
	ctx := context.Background()

	registerUser(t, api, "owner@example.com")
	ideas, err := api.Ideas().Generate(ctx, client.GenerateRequest{ContentType: "blog", Count: 2})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// Second account on the same server
	other := startClientFrom(t, api)
	registerUser(t, other, "intruder@example.com")

	if _, err := other.Ideas().Get(ctx, ideas[0].ID); !client.IsNotFound(err) {
		t.Errorf("Expected NotFound for foreign idea, got %v", err)
	}
	if err := other.Ideas().Delete(ctx, ideas[0].ID); !client.IsNotFound(err) {
		t.Errorf("Expected NotFound deleting foreign idea, got %v", err)
	}

	list, err := other.Ideas().List(ctx, client.ListOptions{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if list.Pagination.Total != 0 {
		t.Errorf("Foreign ideas leaked into listing: %d", list.Pagination.Total)
	}

	// Owner unaffected
	mine, err := api.Ideas().List(ctx, client.ListOptions{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if mine.Pagination.Total != 2 {
		t.Errorf("Owner's ideas changed: %d", mine.Pagination.Total)
	}
}

func TestListFilterByStatus(t *testing.T) {
	api := startServer(t, defaultGenerator())
	ctx := context.Background()
	registerUser(t, api, "filter@example.com")

	ideas, err := api.Ideas().Generate(ctx, client.GenerateRequest{ContentType: "blog", Count: 2})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	published := "published"
	if _, err := api.Ideas().Update(ctx, ideas[0].ID, client.UpdateRequest{Status: &published}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	drafts, err := api.Ideas().List(ctx, client.ListOptions{Status: "draft"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if drafts.Pagination.Total != 1 {
		t.Errorf("Expected 1 draft, got %d", drafts.Pagination.Total)
	}
	for _, idea := range drafts.Ideas {
		if idea.Status != "draft" {
			t.Errorf("Filter leaked status %s", idea.Status)
		}
	}
}

func TestTrendsEndpoint(t *testing.T) {
	api := startServer(t, defaultGenerator())
	ctx := context.Background()
	registerUser(t, api, "trends@example.com")

	trends, err := api.Trends(ctx)
	if err != nil {
		t.Fatalf("Trends failed: %v", err)
	}
	if len(trends) == 0 {
		t.Fatal("Expected placeholder trends")
	}
	for i := 1; i < len(trends); i++ {
		if trends[i].TrendScore > trends[i-1].TrendScore {
			t.Error("Trends not sorted by score")
			break
		}
	}
}

func TestGenerationFailureSurfacesAsBadGateway(t *testing.T) {
	api := startServer(t, &scriptedGenerator{
		err: errors.GenerationError("Failed to generate ideas", fmt.Errorf("upstream timeout")),
	})
	ctx := context.Background()
	registerUser(t, api, "failing@example.com")

	_, err := api.Ideas().Generate(ctx, client.GenerateRequest{ContentType: "blog"})
	apiErr, ok := err.(*client.APIError)
	if !ok {
		t.Fatalf("Expected an API error, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("Expected 502, got %d", apiErr.StatusCode)
	}

	// Nothing persisted on failure
	list, listErr := api.Ideas().List(ctx, client.ListOptions{})
	if listErr != nil {
		t.Fatalf("List failed: %v", listErr)
	}
	if list.Pagination.Total != 0 {
		t.Errorf("Ideas persisted despite failure: %d", list.Pagination.Total)
	}
}
