package ports

import (
	"context"

	"github.com/creomotion/agency-api/internal/core/domain"
)

// CreateUserInput carries the fields for provisioning a staff account.
type CreateUserInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// UpdateUserInput applies partial-field semantics: nil pointers leave the
// stored value untouched.
type UpdateUserInput struct {
	Email    *string
	Password *string
	Name     *string
	Role     *string
}

// UserService defines admin-only staff account management.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, access Access, id string) error
}
