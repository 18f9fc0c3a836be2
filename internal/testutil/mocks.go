package testutil

import (
	"context"
	"sort"
	"time"

	"ideator/internal/domain/idea"
	"ideator/internal/domain/trend"
	"ideator/internal/domain/user"
	"ideator/internal/pkg/errors"
)

// MockUserRepository is an in-memory implementation of user.Repository
type MockUserRepository struct {
	Users       map[int64]*user.User
	EmailIndex  map[string]*user.User
	NextID      int64
	CreateError error
	GetError    error
	UpdateError error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:      make(map[int64]*user.User),
		EmailIndex: make(map[string]*user.User),
		NextID:     1,
	}
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	u.ID = m.NextID
	m.NextID++
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	m.Users[u.ID] = u
	m.EmailIndex[u.Email] = u
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	u, ok := m.Users[id]
	if !ok {
		return nil, errors.NotFound("User")
	}
	return u, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	u, ok := m.EmailIndex[email]
	if !ok {
		return nil, errors.NotFound("User")
	}
	return u, nil
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if _, ok := m.Users[u.ID]; !ok {
		return errors.NotFound("User")
	}
	u.UpdatedAt = time.Now()
	m.Users[u.ID] = u
	m.EmailIndex[u.Email] = u
	return nil
}

// MockIdeaRepository is an in-memory implementation of idea.Repository.
// It honors ownership scoping, filters, newest-first ordering and
// pagination so service and handler tests exercise real list behavior.
type MockIdeaRepository struct {
	Ideas       map[int64]*idea.ContentIdea
	NextID      int64
	CreateError error
}

func NewMockIdeaRepository() *MockIdeaRepository {
	return &MockIdeaRepository{
		Ideas:  make(map[int64]*idea.ContentIdea),
		NextID: 1,
	}
}

func (m *MockIdeaRepository) Create(ctx context.Context, ci *idea.ContentIdea) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	ci.ID = m.NextID
	m.NextID++
	if ci.CreatedAt.IsZero() {
		ci.CreatedAt = time.Now()
	}
	ci.UpdatedAt = ci.CreatedAt
	stored := *ci
	m.Ideas[ci.ID] = &stored
	return nil
}

func (m *MockIdeaRepository) GetByID(ctx context.Context, userID, id int64) (*idea.ContentIdea, error) {
	ci, ok := m.Ideas[id]
	if !ok || ci.UserID != userID {
		return nil, errors.NotFound("Content idea")
	}
	copied := *ci
	return &copied, nil
}

func (m *MockIdeaRepository) Update(ctx context.Context, ci *idea.ContentIdea) error {
	existing, ok := m.Ideas[ci.ID]
	if !ok || existing.UserID != ci.UserID {
		return errors.NotFound("Content idea")
	}
	ci.UpdatedAt = time.Now()
	stored := *ci
	m.Ideas[ci.ID] = &stored
	return nil
}

func (m *MockIdeaRepository) Delete(ctx context.Context, userID, id int64) error {
	ci, ok := m.Ideas[id]
	if !ok || ci.UserID != userID {
		return errors.NotFound("Content idea")
	}
	delete(m.Ideas, id)
	return nil
}

func (m *MockIdeaRepository) List(ctx context.Context, userID int64, filter idea.Filter, limit, offset int) ([]*idea.ContentIdea, int64, error) {
	matched := m.matching(userID, func(ci *idea.ContentIdea) bool {
		if filter.ContentType != "" && ci.ContentType != filter.ContentType {
			return false
		}
		if filter.Status != "" && ci.Status != filter.Status {
			return false
		}
		return true
	})

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *MockIdeaRepository) ListCalendar(ctx context.Context, userID int64, month, year int) ([]*idea.ContentIdea, error) {
	matched := m.matching(userID, func(ci *idea.ContentIdea) bool {
		if ci.Status != idea.StatusScheduled || ci.CalendarDate == nil {
			return false
		}
		if month != 0 && year != 0 {
			start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
			end := start.AddDate(0, 1, 0)
			d := ci.CalendarDate.UTC()
			if d.Before(start) || !d.Before(end) {
				return false
			}
		}
		return true
	})

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CalendarDate.Before(*matched[j].CalendarDate)
	})
	return matched, nil
}

func (m *MockIdeaRepository) matching(userID int64, keep func(*idea.ContentIdea) bool) []*idea.ContentIdea {
	var out []*idea.ContentIdea
	for _, ci := range m.Ideas {
		if ci.UserID != userID || !keep(ci) {
			continue
		}
		copied := *ci
		out = append(out, &copied)
	}
	return out
}

// MockTrendRepository is an in-memory implementation of trend.Repository
type MockTrendRepository struct {
	Trends []*trend.TrendData
	NextID int64
}

func NewMockTrendRepository() *MockTrendRepository {
	return &MockTrendRepository{NextID: 1}
}

func (m *MockTrendRepository) Create(ctx context.Context, t *trend.TrendData) error {
	t.ID = m.NextID
	m.NextID++
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	m.Trends = append(m.Trends, t)
	return nil
}

func (m *MockTrendRepository) List(ctx context.Context, limit int) ([]*trend.TrendData, error) {
	out := make([]*trend.TrendData, len(m.Trends))
	copy(out, m.Trends)
	sort.Slice(out, func(i, j int) bool {
		return out[i].TrendScore > out[j].TrendScore
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MockTrendRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	var kept []*trend.TrendData
	var removed int64
	for _, t := range m.Trends {
		if t.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	m.Trends = kept
	return removed, nil
}
