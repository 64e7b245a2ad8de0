package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/creomotion/agency-api/internal/core/domain"
	"github.com/creomotion/agency-api/internal/core/ports"
)

// ProjectService implements project use cases. CLIENT callers are scoped to
// projects owned by the Client record matching their session email.
type ProjectService struct {
	projects     ports.ProjectRepository
	clients      ports.ClientRepository
	tasks        ports.TaskRepository
	deliverables ports.DeliverableRepository
	log          zerolog.Logger
}

func NewProjectService(
	projects ports.ProjectRepository,
	clients ports.ClientRepository,
	tasks ports.TaskRepository,
	deliverables ports.DeliverableRepository,
	log zerolog.Logger,
) *ProjectService {
	return &ProjectService{
		projects:     projects,
		clients:      clients,
		tasks:        tasks,
		deliverables: deliverables,
		log:          log,
	}
}

func (s *ProjectService) Create(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	if _, err := s.clients.FindByID(ctx, input.ClientID); err != nil {
		return nil, err
	}

	status := domain.ProjectStatus(input.Status)
	if status == "" {
		status = domain.ProjectPlanning
	}
	if !domain.ValidProjectStatus(status) {
		return nil, domain.ErrValidation
	}

	now := time.Now().UTC()
	project := &domain.Project{
		ClientID:    input.ClientID,
		Name:        input.Name,
		Description: input.Description,
		Status:      status,
		StartDate:   input.StartDate,
		DueDate:     input.DueDate,
		BudgetCents: input.BudgetCents,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.projects.Create(ctx, project)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("project", created.ID).Str("client_id", created.ClientID).Msg("project created")
	return created, nil
}

func (s *ProjectService) Get(ctx context.Context, access ports.Access, id string) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if access.IsClient() {
		clientID, err := resolveClientID(ctx, s.clients, access.Email)
		if err != nil {
			return nil, err
		}
		if project.ClientID != clientID {
			return nil, domain.ErrForbidden
		}
	}
	return project, nil
}

func (s *ProjectService) List(ctx context.Context, access ports.Access, filter ports.ListProjectsFilter) ([]*domain.Project, error) {
	if access.IsClient() {
		clientID, err := resolveClientID(ctx, s.clients, access.Email)
		if err != nil {
			return nil, err
		}
		filter.ClientID = clientID
	}
	return s.projects.List(ctx, filter)
}

func (s *ProjectService) Update(ctx context.Context, id string, input ports.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ClientID != nil && *input.ClientID != project.ClientID {
		if _, err := s.clients.FindByID(ctx, *input.ClientID); err != nil {
			return nil, err
		}
		project.ClientID = *input.ClientID
	}
	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Status != nil {
		status := domain.ProjectStatus(*input.Status)
		if !domain.ValidProjectStatus(status) {
			return nil, domain.ErrValidation
		}
		project.Status = status
	}
	if input.StartDate != nil {
		project.StartDate = *input.StartDate
	}
	if input.DueDate != nil {
		project.DueDate = *input.DueDate
	}
	if input.BudgetCents != nil {
		project.BudgetCents = *input.BudgetCents
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes a project unless tasks or deliverables still reference it.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if _, err := s.projects.FindByID(ctx, id); err != nil {
		return err
	}

	taskCount, err := s.tasks.CountByProject(ctx, id)
	if err != nil {
		return err
	}
	if taskCount > 0 {
		return fmt.Errorf("%w: project still has %d task(s)", domain.ErrHasDependents, taskCount)
	}

	deliverableCount, err := s.deliverables.CountByProject(ctx, id)
	if err != nil {
		return err
	}
	if deliverableCount > 0 {
		return fmt.Errorf("%w: project still has %d deliverable(s)", domain.ErrHasDependents, deliverableCount)
	}

	return s.projects.Delete(ctx, id)
}
