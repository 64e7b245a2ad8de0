package ports

import (
	"context"
	"time"

	"github.com/creomotion/agency-api/internal/core/domain"
)

// ListTimeEntriesFilter carries query parameters for listing time entries.
type ListTimeEntriesFilter struct {
	UserID       string
	ProjectID    string
	ProjectIDs   []string
	BillableOnly bool
}

// TimeEntryRepository defines persistence operations for time entries.
type TimeEntryRepository interface {
	Create(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error)
	FindByID(ctx context.Context, id string) (*domain.TimeEntry, error)
	List(ctx context.Context, filter ListTimeEntriesFilter) ([]*domain.TimeEntry, error)
	Update(ctx context.Context, e *domain.TimeEntry) error
	Delete(ctx context.Context, id string) error
	CountByProject(ctx context.Context, projectID string) (int64, error)
}

// CreateTimeEntryInput carries all data for a new time entry. The owning user
// is always taken from the session, never from the payload.
type CreateTimeEntryInput struct {
	ProjectID       string
	TaskID          string
	Description     string
	StartedAt       time.Time
	DurationMinutes int
	Billable        bool
}

// UpdateTimeEntryInput applies partial-field semantics.
type UpdateTimeEntryInput struct {
	Description     *string
	StartedAt       *time.Time
	DurationMinutes *int
	Billable        *bool
}

// TimeEntryService defines time tracking use cases. Admins see everything,
// editors their own entries, portal clients the billable entries on their
// projects.
type TimeEntryService interface {
	Create(ctx context.Context, access Access, input CreateTimeEntryInput) (*domain.TimeEntry, error)
	Get(ctx context.Context, access Access, id string) (*domain.TimeEntry, error)
	List(ctx context.Context, access Access, filter ListTimeEntriesFilter) ([]*domain.TimeEntry, error)
	Update(ctx context.Context, access Access, id string, input UpdateTimeEntryInput) (*domain.TimeEntry, error)
	Delete(ctx context.Context, access Access, id string) error
}
