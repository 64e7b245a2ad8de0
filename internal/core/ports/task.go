package ports

import (
	"context"
	"time"

	"github.com/creomotion/agency-api/internal/core/domain"
)

// ListTasksFilter carries query parameters for listing tasks. ProjectIDs is
// populated by the service layer to scope CLIENT callers to their projects.
type ListTasksFilter struct {
	ProjectID  string
	ProjectIDs []string
	Status     string
	AssigneeID string
}

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, filter ListTasksFilter) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
	CountByProject(ctx context.Context, projectID string) (int64, error)
}

// CreateTaskInput carries all data for a new task.
type CreateTaskInput struct {
	ProjectID   string
	Title       string
	Description string
	Status      string
	Priority    string
	AssigneeID  string
	DueDate     time.Time
}

// UpdateTaskInput applies partial-field semantics.
type UpdateTaskInput struct {
	ProjectID   *string
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	AssigneeID  *string
	DueDate     *time.Time
}

// TaskService defines task use cases with ownership filtering.
type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	Get(ctx context.Context, access Access, id string) (*domain.Task, error)
	List(ctx context.Context, access Access, filter ListTasksFilter) ([]*domain.Task, error)
	Update(ctx context.Context, id string, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}
