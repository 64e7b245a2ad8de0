package ports

import (
	"context"

	"github.com/creomotion/agency-api/internal/core/domain"
)

// CreateClientInput carries the fields for a new client contact. Password is
// optional: when empty, no portal access is provisioned.
type CreateClientInput struct {
	Email    string
	Password string
	Name     string
	Company  string
	Phone    string
}

// UpdateClientInput applies partial-field semantics.
type UpdateClientInput struct {
	Email    *string
	Password *string
	Name     *string
	Company  *string
	Phone    *string
}

// ClientService defines client contact management. List and Get apply the
// ownership filter: a CLIENT caller only sees the record matching their
// session email.
type ClientService interface {
	Create(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	Get(ctx context.Context, access Access, id string) (*domain.Client, error)
	List(ctx context.Context, access Access) ([]*domain.Client, error)
	Update(ctx context.Context, id string, input UpdateClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
}
