package ports

import (
	"context"

	"github.com/creomotion/agency-api/internal/core/domain"
)

// AuthService resolves credentials to a principal and issues session tokens.
//
// Login tries the User table first, then Client; the first match with a valid
// password wins, so a User row always shadows a Client row sharing its email.
// PortalLogin applies the same resolution but rejects staff accounts whose
// role is not CLIENT.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.Principal, error)
	PortalLogin(ctx context.Context, email, password string) (string, *domain.Principal, error)
}

// UserRepository defines persistence for staff user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}

// ClientRepository defines persistence for client contact records.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	FindByEmail(ctx context.Context, email string) (*domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id string) error
}
