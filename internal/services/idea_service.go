package services

import (
	"context"
	"time"

	"ideator/internal/domain/idea"
	"ideator/internal/ideagen"
	"ideator/internal/pkg/errors"
	"ideator/internal/pkg/logger"
	"ideator/internal/pkg/metrics"
)

// IdeaGenerator abstracts the generation adapter so the service can be
// tested without an upstream API.
type IdeaGenerator interface {
	Generate(ctx context.Context, contentType string, keywords []string, count int) (ideagen.ParseResult, error)
}

// IdeaService implements idea.Service
type IdeaService struct {
	repo      idea.Repository
	generator IdeaGenerator
	log       *logger.Logger
}

// NewIdeaService creates a new idea service
func NewIdeaService(repo idea.Repository, generator IdeaGenerator, log *logger.Logger) idea.Service {
	return &IdeaService{repo: repo, generator: generator, log: log}
}

// Generate invokes the generation adapter and persists one idea per
// normalized record. Persistence is sequential; a storage failure
// returns the error without rolling back already stored ideas.
func (s *IdeaService) Generate(ctx context.Context, userID int64, contentType string, keywords []string, count int) ([]*idea.ContentIdea, error) {
	start := time.Now()

	result, err := s.generator.Generate(ctx, contentType, keywords, count)
	if err != nil {
		metrics.RecordGeneration(contentType, ideagen.ModeUnparseable, "error", time.Since(start))
		return nil, err
	}

	metrics.RecordGeneration(contentType, result.Mode, "success", time.Since(start))

	if len(result.Ideas) == 0 {
		return nil, errors.GenerationError("Generation produced no usable ideas", nil)
	}

	persisted := make([]*idea.ContentIdea, 0, len(result.Ideas))
	for _, gen := range result.Ideas {
		ci := &idea.ContentIdea{
			UserID:      userID,
			Title:       gen.Title,
			Description: gen.Description,
			ContentType: contentType,
			Keywords:    keywords,
			Status:      idea.StatusDraft,
		}
		if err := s.repo.Create(ctx, ci); err != nil {
			return nil, err
		}
		persisted = append(persisted, ci)
	}

	s.log.WithFields(map[string]interface{}{
		"user_id":      userID,
		"content_type": contentType,
		"count":        len(persisted),
		"parse_mode":   result.Mode,
	}).Info("Ideas generated")

	return persisted, nil
}

// List retrieves the user's ideas with filters and pagination
func (s *IdeaService) List(ctx context.Context, userID int64, filter idea.Filter, limit, offset int) ([]*idea.ContentIdea, int64, error) {
	return s.repo.List(ctx, userID, filter, limit, offset)
}

// GetByID retrieves one idea owned by the user
func (s *IdeaService) GetByID(ctx context.Context, userID, id int64) (*idea.ContentIdea, error) {
	return s.repo.GetByID(ctx, userID, id)
}

// Update merges the supplied fields into an idea owned by the user.
// Setting a calendar date on a draft promotes it to scheduled, and
// clearing the date of a scheduled idea demotes it to draft; an
// explicit status in the same update wins over both.
func (s *IdeaService) Update(ctx context.Context, userID, id int64, update idea.Update) (*idea.ContentIdea, error) {
	ci, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		ci.Title = *update.Title
	}
	if update.Description != nil {
		ci.Description = *update.Description
	}
	if update.Keywords != nil {
		ci.Keywords = update.Keywords
	}

	if update.CalendarDate.Set {
		ci.CalendarDate = update.CalendarDate.Date
		if ci.CalendarDate != nil && ci.Status == idea.StatusDraft {
			ci.Status = idea.StatusScheduled
		}
		if ci.CalendarDate == nil && ci.Status == idea.StatusScheduled {
			ci.Status = idea.StatusDraft
		}
	}

	if update.Status != nil {
		if !idea.ValidStatus(*update.Status) {
			return nil, errors.BadRequest("Invalid status")
		}
		ci.Status = *update.Status
	}

	if err := s.repo.Update(ctx, ci); err != nil {
		return nil, err
	}

	return ci, nil
}

// Delete removes an idea owned by the user
func (s *IdeaService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}

// Calendar retrieves scheduled ideas, optionally restricted to one month
func (s *IdeaService) Calendar(ctx context.Context, userID int64, month, year int) ([]*idea.ContentIdea, error) {
	if (month == 0) != (year == 0) {
		return nil, errors.BadRequest("month and year must be provided together")
	}
	if month != 0 && (month < 1 || month > 12) {
		return nil, errors.BadRequest("month must be between 1 and 12")
	}
	return s.repo.ListCalendar(ctx, userID, month, year)
}
