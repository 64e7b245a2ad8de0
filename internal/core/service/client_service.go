package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/creomotion/agency-api/internal/core/domain"
	"github.com/creomotion/agency-api/internal/core/ports"
)

// ClientService implements client contact management and the portal
// ownership filter.
type ClientService struct {
	clients  ports.ClientRepository
	projects ports.ProjectRepository
	log      zerolog.Logger
}

func NewClientService(clients ports.ClientRepository, projects ports.ProjectRepository, log zerolog.Logger) *ClientService {
	return &ClientService{clients: clients, projects: projects, log: log}
}

func (s *ClientService) Create(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	if _, err := s.clients.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrClientNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	client := &domain.Client{
		Email:     input.Email,
		Name:      input.Name,
		Company:   input.Company,
		Phone:     input.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		client.PasswordHash = string(hash)
	}

	created, err := s.clients.Create(ctx, client)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Str("company", created.Company).Msg("client created")
	return created, nil
}

func (s *ClientService) Get(ctx context.Context, access ports.Access, id string) (*domain.Client, error) {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if access.IsClient() && client.Email != access.Email {
		return nil, domain.ErrForbidden
	}
	return client, nil
}

func (s *ClientService) List(ctx context.Context, access ports.Access) ([]*domain.Client, error) {
	if access.IsClient() {
		own, err := s.clients.FindByEmail(ctx, access.Email)
		if err != nil {
			if errors.Is(err, domain.ErrClientNotFound) {
				return []*domain.Client{}, nil
			}
			return nil, err
		}
		return []*domain.Client{own}, nil
	}
	return s.clients.List(ctx)
}

func (s *ClientService) Update(ctx context.Context, id string, input ports.UpdateClientInput) (*domain.Client, error) {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != client.Email {
		if existing, err := s.clients.FindByEmail(ctx, *input.Email); err == nil && existing.ID != id {
			return nil, domain.ErrEmailTaken
		} else if err != nil && !errors.Is(err, domain.ErrClientNotFound) {
			return nil, err
		}
		client.Email = *input.Email
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		client.PasswordHash = string(hash)
	}
	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Company != nil {
		client.Company = *input.Company
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	client.UpdatedAt = time.Now().UTC()

	if err := s.clients.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Delete removes a client unless projects still reference it.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	if _, err := s.clients.FindByID(ctx, id); err != nil {
		return err
	}

	n, err := s.projects.CountByClient(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: client still owns %d project(s)", domain.ErrHasDependents, n)
	}

	return s.clients.Delete(ctx, id)
}
