package services

import (
	"context"
	"time"

	"ideator/internal/domain/trend"
)

// TrendService serves trend insights. Live ingestion is not wired yet
// so the curated placeholder set backs the endpoint; stored rows are
// preferred once an ingestion source writes them.
type TrendService struct {
	repo trend.Repository
}

// NewTrendService creates a new trend service
func NewTrendService(repo trend.Repository) *TrendService {
	return &TrendService{repo: repo}
}

// Trending returns the current trend set, highest score first
func (s *TrendService) Trending(ctx context.Context, limit int) ([]*trend.TrendData, error) {
	if limit <= 0 {
		limit = 10
	}

	if s.repo != nil {
		stored, err := s.repo.List(ctx, limit)
		if err != nil {
			return nil, err
		}
		if len(stored) > 0 {
			return stored, nil
		}
	}

	return placeholderTrends(), nil
}

func placeholderTrends() []*trend.TrendData {
	now := time.Now()
	return []*trend.TrendData{
		{Keyword: "artificial intelligence", Industry: "technology", TrendScore: 95, Source: "curated", CreatedAt: now},
		{Keyword: "content marketing", Industry: "marketing", TrendScore: 87, Source: "curated", CreatedAt: now},
		{Keyword: "remote work", Industry: "business", TrendScore: 82, Source: "curated", CreatedAt: now},
	}
}
