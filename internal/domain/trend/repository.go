package trend

import (
	"context"
	"time"
)

// Repository defines the interface for trend data access
type Repository interface {
	// Create stores a trend observation
	Create(ctx context.Context, t *TrendData) error

	// List retrieves the most recent trends, highest score first
	List(ctx context.Context, limit int) ([]*TrendData, error)

	// DeleteExpired removes rows created before the cutoff and
	// returns the number removed
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
