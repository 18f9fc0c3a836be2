package idea

import "context"

// Service defines the interface for idea business logic
type Service interface {
	// Generate builds a prompt, calls the generation API, persists one
	// idea per normalized result and returns the persisted records
	Generate(ctx context.Context, userID int64, contentType string, keywords []string, count int) ([]*ContentIdea, error)

	// List retrieves the user's ideas with filters and pagination
	List(ctx context.Context, userID int64, filter Filter, limit, offset int) ([]*ContentIdea, int64, error)

	// GetByID retrieves one idea owned by the user
	GetByID(ctx context.Context, userID, id int64) (*ContentIdea, error)

	// Update merges the supplied fields into an idea owned by the user
	Update(ctx context.Context, userID, id int64, update Update) (*ContentIdea, error)

	// Delete removes an idea owned by the user
	Delete(ctx context.Context, userID, id int64) error

	// Calendar retrieves scheduled ideas, optionally for one month
	Calendar(ctx context.Context, userID int64, month, year int) ([]*ContentIdea, error)
}
