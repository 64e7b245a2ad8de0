package ports

import (
	"context"

	"github.com/creomotion/agency-api/internal/core/domain"
)

// ListDeliverablesFilter carries query parameters for listing deliverables.
type ListDeliverablesFilter struct {
	ProjectID  string
	ProjectIDs []string
	Status     string
	Name       string
}

// DeliverableRepository defines persistence operations for deliverables.
type DeliverableRepository interface {
	Create(ctx context.Context, d *domain.Deliverable) (*domain.Deliverable, error)
	FindByID(ctx context.Context, id string) (*domain.Deliverable, error)
	List(ctx context.Context, filter ListDeliverablesFilter) ([]*domain.Deliverable, error)
	Update(ctx context.Context, d *domain.Deliverable) error
	Delete(ctx context.Context, id string) error
	// MaxVersion returns the highest version stored for (projectID, name),
	// or 0 when none exists.
	MaxVersion(ctx context.Context, projectID, name string) (int, error)
	CountByProject(ctx context.Context, projectID string) (int64, error)
}

// CreateDeliverableInput carries all data for a new deliverable version.
type CreateDeliverableInput struct {
	ProjectID string
	Name      string
	FileURL   string
	Notes     string
}

// UpdateDeliverableInput applies partial-field semantics. For CLIENT callers
// only Status is honoured, and it must be a review decision.
type UpdateDeliverableInput struct {
	Name    *string
	Status  *string
	FileURL *string
	Notes   *string
}

// DeliverableService defines deliverable use cases, including the
// (projectID, name)-scoped version counter and the portal review flow.
type DeliverableService interface {
	Create(ctx context.Context, input CreateDeliverableInput) (*domain.Deliverable, error)
	Get(ctx context.Context, access Access, id string) (*domain.Deliverable, error)
	List(ctx context.Context, access Access, filter ListDeliverablesFilter) ([]*domain.Deliverable, error)
	Update(ctx context.Context, access Access, id string, input UpdateDeliverableInput) (*domain.Deliverable, error)
	Delete(ctx context.Context, id string) error
}
