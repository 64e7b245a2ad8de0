package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/creomotion/agency-api/internal/core/domain"
	"github.com/creomotion/agency-api/internal/core/ports"
)

// DeliverableService implements the deliverable review flow, including the
// (project, name)-scoped version counter.
type DeliverableService struct {
	deliverables ports.DeliverableRepository
	projects     ports.ProjectRepository
	clients      ports.ClientRepository
	log          zerolog.Logger
}

func NewDeliverableService(
	deliverables ports.DeliverableRepository,
	projects ports.ProjectRepository,
	clients ports.ClientRepository,
	log zerolog.Logger,
) *DeliverableService {
	return &DeliverableService{deliverables: deliverables, projects: projects, clients: clients, log: log}
}

// Create stores a new deliverable version. The version is the highest stored
// version for (project_id, name) plus one, or 1 when none exists. Two
// concurrent creates for the same pair race on this lookup; the unique index
// on (project_id, name, version) turns a lost race into a duplicate-key
// error instead of a silent duplicate version.
func (s *DeliverableService) Create(ctx context.Context, input ports.CreateDeliverableInput) (*domain.Deliverable, error) {
	if _, err := s.projects.FindByID(ctx, input.ProjectID); err != nil {
		return nil, err
	}

	maxVersion, err := s.deliverables.MaxVersion(ctx, input.ProjectID, input.Name)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	deliverable := &domain.Deliverable{
		ProjectID:   input.ProjectID,
		Name:        input.Name,
		Version:     maxVersion + 1,
		Status:      domain.DeliverableDraft,
		FileURL:     input.FileURL,
		Notes:       input.Notes,
		ReviewToken: uuid.NewString(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.deliverables.Create(ctx, deliverable)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("deliverable", created.ID).
		Str("project_id", created.ProjectID).
		Str("name", created.Name).
		Int("version", created.Version).
		Msg("deliverable created")

	return created, nil
}

func (s *DeliverableService) Get(ctx context.Context, access ports.Access, id string) (*domain.Deliverable, error) {
	deliverable, err := s.deliverables.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if access.IsClient() {
		if err := s.checkClientOwnership(ctx, access, deliverable); err != nil {
			return nil, err
		}
	}
	return deliverable, nil
}

func (s *DeliverableService) List(ctx context.Context, access ports.Access, filter ports.ListDeliverablesFilter) ([]*domain.Deliverable, error) {
	if access.IsClient() {
		ids, err := clientProjectIDs(ctx, s.clients, s.projects, access.Email)
		if err != nil {
			return nil, err
		}
		filter.ProjectIDs = ids
	}
	return s.deliverables.List(ctx, filter)
}

// Update edits a deliverable. Staff may change any field and apply any legal
// status transition. CLIENT callers may only move an IN_REVIEW deliverable on
// one of their own projects to APPROVED or REJECTED.
func (s *DeliverableService) Update(ctx context.Context, access ports.Access, id string, input ports.UpdateDeliverableInput) (*domain.Deliverable, error) {
	deliverable, err := s.deliverables.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if access.IsClient() {
		if err := s.checkClientOwnership(ctx, access, deliverable); err != nil {
			return nil, err
		}
		if input.Name != nil || input.FileURL != nil || input.Notes != nil {
			return nil, domain.ErrForbidden
		}
		if input.Status == nil {
			return nil, domain.ErrValidation
		}
		next := domain.DeliverableStatus(*input.Status)
		if !next.IsReviewDecision() {
			return nil, domain.ErrForbidden
		}
		if !deliverable.Status.CanTransitionTo(next) {
			return nil, domain.ErrInvalidTransition
		}
		deliverable.Status = next
	} else {
		if input.Name != nil {
			deliverable.Name = *input.Name
		}
		if input.FileURL != nil {
			deliverable.FileURL = *input.FileURL
		}
		if input.Notes != nil {
			deliverable.Notes = *input.Notes
		}
		if input.Status != nil {
			next := domain.DeliverableStatus(*input.Status)
			if !domain.ValidDeliverableStatus(next) {
				return nil, domain.ErrValidation
			}
			if next != deliverable.Status {
				if !deliverable.Status.CanTransitionTo(next) {
					return nil, domain.ErrInvalidTransition
				}
				deliverable.Status = next
			}
		}
	}
	deliverable.UpdatedAt = time.Now().UTC()

	if err := s.deliverables.Update(ctx, deliverable); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("deliverable", deliverable.ID).
		Str("status", string(deliverable.Status)).
		Str("by", access.Email).
		Msg("deliverable updated")

	return deliverable, nil
}

func (s *DeliverableService) Delete(ctx context.Context, id string) error {
	if _, err := s.deliverables.FindByID(ctx, id); err != nil {
		return err
	}
	return s.deliverables.Delete(ctx, id)
}

func (s *DeliverableService) checkClientOwnership(ctx context.Context, access ports.Access, d *domain.Deliverable) error {
	project, err := s.projects.FindByID(ctx, d.ProjectID)
	if err != nil {
		return err
	}
	clientID, err := resolveClientID(ctx, s.clients, access.Email)
	if err != nil {
		return err
	}
	if project.ClientID != clientID {
		return domain.ErrForbidden
	}
	return nil
}
