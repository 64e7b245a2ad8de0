package ports

import (
	"context"
	"time"

	"github.com/creomotion/agency-api/internal/core/domain"
)

// ListProjectsFilter carries query parameters for listing projects. ClientID
// is forced by the service layer for CLIENT callers.
type ListProjectsFilter struct {
	ClientID string
	Status   string
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, filter ListProjectsFilter) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
	// CountByClient supports the dependent-delete check on clients.
	CountByClient(ctx context.Context, clientID string) (int64, error)
	// IDsByClient returns the project ids owned by a client, used to scope
	// child resources (tasks, deliverables, time entries) for portal callers.
	IDsByClient(ctx context.Context, clientID string) ([]string, error)
}

// CreateProjectInput carries all data for a new project.
type CreateProjectInput struct {
	ClientID    string
	Name        string
	Description string
	Status      string
	StartDate   time.Time
	DueDate     time.Time
	BudgetCents int64
}

// UpdateProjectInput applies partial-field semantics. A changed ClientID is
// re-validated against the clients table.
type UpdateProjectInput struct {
	ClientID    *string
	Name        *string
	Description *string
	Status      *string
	StartDate   *time.Time
	DueDate     *time.Time
	BudgetCents *int64
}

// ProjectService defines project use cases with ownership filtering.
type ProjectService interface {
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, access Access, id string) (*domain.Project, error)
	List(ctx context.Context, access Access, filter ListProjectsFilter) ([]*domain.Project, error)
	Update(ctx context.Context, id string, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}
