package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/creomotion/agency-api/internal/core/domain"
	"github.com/creomotion/agency-api/internal/core/ports"
)

func TestTaskService_Create_Defaults(t *testing.T) {
	projects := &stubProjectRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Project, error) {
			return &domain.Project{ID: id}, nil
		},
	}
	tasks := &stubTaskRepo{
		createFn: func(ctx context.Context, task *domain.Task) (*domain.Task, error) {
			created := *task
			created.ID = "t1"
			return &created, nil
		},
	}
	svc := NewTaskService(tasks, projects, &stubUserRepo{}, &stubClientRepo{}, zerolog.Nop())

	task, err := svc.Create(context.Background(), ports.CreateTaskInput{ProjectID: "p1", Title: "Storyboard"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.Status != domain.TaskTodo {
		t.Fatalf("expected default TODO status, got %s", task.Status)
	}
	if task.Priority != domain.PriorityMedium {
		t.Fatalf("expected default MEDIUM priority, got %s", task.Priority)
	}
}

func TestTaskService_Create_UnknownAssignee(t *testing.T) {
	projects := &stubProjectRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Project, error) {
			return &domain.Project{ID: id}, nil
		},
	}
	users := &stubUserRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	svc := NewTaskService(&stubTaskRepo{}, projects, users, &stubClientRepo{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateTaskInput{ProjectID: "p1", Title: "x", AssigneeID: "ghost"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestTaskService_Create_InvalidStatus(t *testing.T) {
	projects := &stubProjectRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Project, error) {
			return &domain.Project{ID: id}, nil
		},
	}
	svc := NewTaskService(&stubTaskRepo{}, projects, &stubUserRepo{}, &stubClientRepo{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateTaskInput{ProjectID: "p1", Title: "x", Status: "PARKED"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestTaskService_Get_ClientScopedToOwnProjects(t *testing.T) {
	tasks := &stubTaskRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Task, error) {
			return &domain.Task{ID: id, ProjectID: "p-foreign"}, nil
		},
	}
	projects := &stubProjectRepo{
		idsByClientFn: func(ctx context.Context, clientID string) ([]string, error) {
			return []string{"p1", "p2"}, nil
		},
	}
	clients := &stubClientRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.Client, error) {
			return &domain.Client{ID: "c1", Email: email}, nil
		},
	}
	svc := NewTaskService(tasks, projects, &stubUserRepo{}, clients, zerolog.Nop())
	access := ports.Access{UserID: "c1", Email: "billing@acme.test", Role: domain.RoleClient}

	_, err := svc.Get(context.Background(), access, "t1")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestTaskService_List_ClientProjectFilterInjected(t *testing.T) {
	var gotFilter ports.ListTasksFilter
	tasks := &stubTaskRepo{
		listFn: func(ctx context.Context, filter ports.ListTasksFilter) ([]*domain.Task, error) {
			gotFilter = filter
			return []*domain.Task{}, nil
		},
	}
	projects := &stubProjectRepo{
		idsByClientFn: func(ctx context.Context, clientID string) ([]string, error) {
			return []string{"p1"}, nil
		},
	}
	clients := &stubClientRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.Client, error) {
			return &domain.Client{ID: "c1", Email: email}, nil
		},
	}
	svc := NewTaskService(tasks, projects, &stubUserRepo{}, clients, zerolog.Nop())
	access := ports.Access{UserID: "c1", Email: "billing@acme.test", Role: domain.RoleClient}

	if _, err := svc.List(context.Background(), access, ports.ListTasksFilter{}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(gotFilter.ProjectIDs) != 1 || gotFilter.ProjectIDs[0] != "p1" {
		t.Fatalf("client scope not applied: %+v", gotFilter)
	}
}

func TestTaskService_Update_MoveToUnknownProject(t *testing.T) {
	tasks := &stubTaskRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Task, error) {
			return &domain.Task{ID: id, ProjectID: "p1", Status: domain.TaskTodo, Priority: domain.PriorityMedium}, nil
		},
	}
	projects := &stubProjectRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Project, error) {
			return nil, domain.ErrProjectNotFound
		},
	}
	svc := NewTaskService(tasks, projects, &stubUserRepo{}, &stubClientRepo{}, zerolog.Nop())

	_, err := svc.Update(context.Background(), "t1", ports.UpdateTaskInput{ProjectID: strPtr("p-gone")})
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestTaskService_Update_UnassignAllowed(t *testing.T) {
	tasks := &stubTaskRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Task, error) {
			return &domain.Task{ID: id, ProjectID: "p1", AssigneeID: "u1", Status: domain.TaskTodo, Priority: domain.PriorityMedium}, nil
		},
		updateFn: func(ctx context.Context, task *domain.Task) error { return nil },
	}
	svc := NewTaskService(tasks, &stubProjectRepo{}, &stubUserRepo{}, &stubClientRepo{}, zerolog.Nop())

	task, err := svc.Update(context.Background(), "t1", ports.UpdateTaskInput{AssigneeID: strPtr("")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if task.AssigneeID != "" {
		t.Fatalf("expected unassigned task, got %q", task.AssigneeID)
	}
}
