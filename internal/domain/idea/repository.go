package idea

import "context"

// Repository defines the interface for idea data access. Every method
// is scoped to an owning user.
type Repository interface {
	// Create creates a new idea
	Create(ctx context.Context, idea *ContentIdea) error

	// GetByID retrieves an idea owned by the user
	GetByID(ctx context.Context, userID, id int64) (*ContentIdea, error)

	// Update updates an idea; the row must belong to idea.UserID
	Update(ctx context.Context, idea *ContentIdea) error

	// Delete deletes an idea owned by the user
	Delete(ctx context.Context, userID, id int64) error

	// List retrieves ideas with filters and offset pagination,
	// newest first, along with the total matching count
	List(ctx context.Context, userID int64, filter Filter, limit, offset int) ([]*ContentIdea, int64, error)

	// ListCalendar retrieves scheduled ideas with a calendar date,
	// optionally restricted to one calendar month, date ascending.
	// month/year of zero mean no date restriction.
	ListCalendar(ctx context.Context, userID int64, month, year int) ([]*ContentIdea, error)
}
