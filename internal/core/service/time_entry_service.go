package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/creomotion/agency-api/internal/core/domain"
	"github.com/creomotion/agency-api/internal/core/ports"
)

// TimeEntryService implements time tracking. Visibility: admins see all
// entries, editors their own, portal clients the billable entries logged
// against their projects.
type TimeEntryService struct {
	entries  ports.TimeEntryRepository
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
	clients  ports.ClientRepository
	log      zerolog.Logger
}

func NewTimeEntryService(
	entries ports.TimeEntryRepository,
	projects ports.ProjectRepository,
	tasks ports.TaskRepository,
	clients ports.ClientRepository,
	log zerolog.Logger,
) *TimeEntryService {
	return &TimeEntryService{entries: entries, projects: projects, tasks: tasks, clients: clients, log: log}
}

func (s *TimeEntryService) Create(ctx context.Context, access ports.Access, input ports.CreateTimeEntryInput) (*domain.TimeEntry, error) {
	if input.DurationMinutes <= 0 {
		return nil, domain.ErrValidation
	}
	if _, err := s.projects.FindByID(ctx, input.ProjectID); err != nil {
		return nil, err
	}
	if input.TaskID != "" {
		task, err := s.tasks.FindByID(ctx, input.TaskID)
		if err != nil {
			return nil, err
		}
		if task.ProjectID != input.ProjectID {
			return nil, fmt.Errorf("%w: task does not belong to project", domain.ErrValidation)
		}
	}

	entry := &domain.TimeEntry{
		UserID:          access.UserID, // never taken from the payload
		ProjectID:       input.ProjectID,
		TaskID:          input.TaskID,
		Description:     input.Description,
		StartedAt:       input.StartedAt,
		DurationMinutes: input.DurationMinutes,
		Billable:        input.Billable,
		CreatedAt:       time.Now().UTC(),
	}

	created, err := s.entries.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("entry", created.ID).
		Str("project_id", created.ProjectID).
		Int("minutes", created.DurationMinutes).
		Msg("time entry recorded")
	return created, nil
}

func (s *TimeEntryService) Get(ctx context.Context, access ports.Access, id string) (*domain.TimeEntry, error) {
	entry, err := s.entries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkReadAccess(ctx, access, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *TimeEntryService) List(ctx context.Context, access ports.Access, filter ports.ListTimeEntriesFilter) ([]*domain.TimeEntry, error) {
	switch {
	case access.IsAdmin():
		// unrestricted, filter as requested
	case access.IsClient():
		ids, err := clientProjectIDs(ctx, s.clients, s.projects, access.Email)
		if err != nil {
			return nil, err
		}
		filter.ProjectIDs = ids
		filter.UserID = ""
		filter.BillableOnly = true
	default: // editor
		filter.UserID = access.UserID
	}
	return s.entries.List(ctx, filter)
}

func (s *TimeEntryService) Update(ctx context.Context, access ports.Access, id string, input ports.UpdateTimeEntryInput) (*domain.TimeEntry, error) {
	entry, err := s.entries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.IsAdmin() && entry.UserID != access.UserID {
		return nil, domain.ErrForbidden
	}

	if input.Description != nil {
		entry.Description = *input.Description
	}
	if input.StartedAt != nil {
		entry.StartedAt = *input.StartedAt
	}
	if input.DurationMinutes != nil {
		if *input.DurationMinutes <= 0 {
			return nil, domain.ErrValidation
		}
		entry.DurationMinutes = *input.DurationMinutes
	}
	if input.Billable != nil {
		entry.Billable = *input.Billable
	}

	if err := s.entries.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *TimeEntryService) Delete(ctx context.Context, access ports.Access, id string) error {
	entry, err := s.entries.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !access.IsAdmin() && entry.UserID != access.UserID {
		return domain.ErrForbidden
	}
	return s.entries.Delete(ctx, id)
}

func (s *TimeEntryService) checkReadAccess(ctx context.Context, access ports.Access, entry *domain.TimeEntry) error {
	switch {
	case access.IsAdmin():
		return nil
	case access.IsClient():
		ids, err := clientProjectIDs(ctx, s.clients, s.projects, access.Email)
		if err != nil {
			return err
		}
		if !containsID(ids, entry.ProjectID) || !entry.Billable {
			return domain.ErrForbidden
		}
		return nil
	default:
		if entry.UserID != access.UserID {
			return domain.ErrForbidden
		}
		return nil
	}
}
