package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/creomotion/agency-api/internal/core/domain"
	"github.com/creomotion/agency-api/internal/core/ports"
)

// TaskService implements task use cases with portal scoping.
type TaskService struct {
	tasks    ports.TaskRepository
	projects ports.ProjectRepository
	users    ports.UserRepository
	clients  ports.ClientRepository
	log      zerolog.Logger
}

func NewTaskService(
	tasks ports.TaskRepository,
	projects ports.ProjectRepository,
	users ports.UserRepository,
	clients ports.ClientRepository,
	log zerolog.Logger,
) *TaskService {
	return &TaskService{tasks: tasks, projects: projects, users: users, clients: clients, log: log}
}

func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	if _, err := s.projects.FindByID(ctx, input.ProjectID); err != nil {
		return nil, err
	}
	if input.AssigneeID != "" {
		if _, err := s.users.FindByID(ctx, input.AssigneeID); err != nil {
			return nil, err
		}
	}

	status := domain.TaskStatus(input.Status)
	if status == "" {
		status = domain.TaskTodo
	}
	priority := domain.TaskPriority(input.Priority)
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !domain.ValidTaskStatus(status) || !domain.ValidTaskPriority(priority) {
		return nil, domain.ErrValidation
	}

	now := time.Now().UTC()
	task := &domain.Task{
		ProjectID:   input.ProjectID,
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		AssigneeID:  input.AssigneeID,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("task", created.ID).Str("project_id", created.ProjectID).Msg("task created")
	return created, nil
}

func (s *TaskService) Get(ctx context.Context, access ports.Access, id string) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if access.IsClient() {
		ids, err := clientProjectIDs(ctx, s.clients, s.projects, access.Email)
		if err != nil {
			return nil, err
		}
		if !containsID(ids, task.ProjectID) {
			return nil, domain.ErrForbidden
		}
	}
	return task, nil
}

func (s *TaskService) List(ctx context.Context, access ports.Access, filter ports.ListTasksFilter) ([]*domain.Task, error) {
	if access.IsClient() {
		ids, err := clientProjectIDs(ctx, s.clients, s.projects, access.Email)
		if err != nil {
			return nil, err
		}
		filter.ProjectIDs = ids
	}
	return s.tasks.List(ctx, filter)
}

func (s *TaskService) Update(ctx context.Context, id string, input ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ProjectID != nil && *input.ProjectID != task.ProjectID {
		if _, err := s.projects.FindByID(ctx, *input.ProjectID); err != nil {
			return nil, err
		}
		task.ProjectID = *input.ProjectID
	}
	if input.AssigneeID != nil && *input.AssigneeID != task.AssigneeID {
		if *input.AssigneeID != "" {
			if _, err := s.users.FindByID(ctx, *input.AssigneeID); err != nil {
				return nil, err
			}
		}
		task.AssigneeID = *input.AssigneeID
	}
	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		status := domain.TaskStatus(*input.Status)
		if !domain.ValidTaskStatus(status) {
			return nil, domain.ErrValidation
		}
		task.Status = status
	}
	if input.Priority != nil {
		priority := domain.TaskPriority(*input.Priority)
		if !domain.ValidTaskPriority(priority) {
			return nil, domain.ErrValidation
		}
		task.Priority = priority
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	if _, err := s.tasks.FindByID(ctx, id); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, id)
}
