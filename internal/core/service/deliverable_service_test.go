package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/creomotion/agency-api/internal/core/domain"
	"github.com/creomotion/agency-api/internal/core/ports"
)

func strPtr(s string) *string { return &s }

func TestDeliverableService_Create_FirstVersion(t *testing.T) {
	projects := &stubProjectRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Project, error) {
			return &domain.Project{ID: id, ClientID: "c1"}, nil
		},
	}
	deliverables := &stubDeliverableRepo{
		maxVersionFn: func(ctx context.Context, projectID, name string) (int, error) {
			return 0, nil
		},
		createFn: func(ctx context.Context, d *domain.Deliverable) (*domain.Deliverable, error) {
			created := *d
			created.ID = "d1"
			return &created, nil
		},
	}
	svc := NewDeliverableService(deliverables, projects, &stubClientRepo{}, zerolog.Nop())

	d, err := svc.Create(context.Background(), ports.CreateDeliverableInput{
		ProjectID: "p1",
		Name:      "homepage-hero",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if d.Version != 1 {
		t.Fatalf("expected version 1, got %d", d.Version)
	}
	if d.Status != domain.DeliverableDraft {
		t.Fatalf("expected DRAFT, got %s", d.Status)
	}
	if d.ReviewToken == "" {
		t.Fatalf("expected a review token")
	}
}

// Re-uploading the same name under the same project continues the counter;
// the same name under a different project starts at 1 again.
func TestDeliverableService_Create_VersionScopedToProjectAndName(t *testing.T) {
	versions := map[string]int{"p1/homepage-hero": 3}
	projects := &stubProjectRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Project, error) {
			return &domain.Project{ID: id}, nil
		},
	}
	deliverables := &stubDeliverableRepo{
		maxVersionFn: func(ctx context.Context, projectID, name string) (int, error) {
			return versions[projectID+"/"+name], nil
		},
		createFn: func(ctx context.Context, d *domain.Deliverable) (*domain.Deliverable, error) {
			return d, nil
		},
	}
	svc := NewDeliverableService(deliverables, projects, &stubClientRepo{}, zerolog.Nop())

	d, err := svc.Create(context.Background(), ports.CreateDeliverableInput{ProjectID: "p1", Name: "homepage-hero"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if d.Version != 4 {
		t.Fatalf("expected version 4, got %d", d.Version)
	}

	d, err = svc.Create(context.Background(), ports.CreateDeliverableInput{ProjectID: "p2", Name: "homepage-hero"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if d.Version != 1 {
		t.Fatalf("expected version 1 in other project, got %d", d.Version)
	}
}

func TestDeliverableService_Create_UnknownProject(t *testing.T) {
	projects := &stubProjectRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Project, error) {
			return nil, domain.ErrProjectNotFound
		},
	}
	svc := NewDeliverableService(&stubDeliverableRepo{}, projects, &stubClientRepo{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateDeliverableInput{ProjectID: "nope", Name: "x"})
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func clientReviewFixtures(status domain.DeliverableStatus) (*stubDeliverableRepo, *stubProjectRepo, *stubClientRepo) {
	deliverables := &stubDeliverableRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Deliverable, error) {
			return &domain.Deliverable{ID: id, ProjectID: "p1", Name: "logo", Version: 2, Status: status}, nil
		},
		updateFn: func(ctx context.Context, d *domain.Deliverable) error { return nil },
	}
	projects := &stubProjectRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Project, error) {
			return &domain.Project{ID: id, ClientID: "c1"}, nil
		},
	}
	clients := &stubClientRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.Client, error) {
			return &domain.Client{ID: "c1", Email: email}, nil
		},
	}
	return deliverables, projects, clients
}

func TestDeliverableService_Update_ClientApproves(t *testing.T) {
	deliverables, projects, clients := clientReviewFixtures(domain.DeliverableInReview)
	svc := NewDeliverableService(deliverables, projects, clients, zerolog.Nop())
	access := ports.Access{UserID: "c1", Email: "billing@acme.test", Role: domain.RoleClient}

	d, err := svc.Update(context.Background(), access, "d1", ports.UpdateDeliverableInput{
		Status: strPtr(string(domain.DeliverableApproved)),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if d.Status != domain.DeliverableApproved {
		t.Fatalf("expected APPROVED, got %s", d.Status)
	}
}

func TestDeliverableService_Update_ClientCannotEditFields(t *testing.T) {
	deliverables, projects, clients := clientReviewFixtures(domain.DeliverableInReview)
	svc := NewDeliverableService(deliverables, projects, clients, zerolog.Nop())
	access := ports.Access{UserID: "c1", Email: "billing@acme.test", Role: domain.RoleClient}

	_, err := svc.Update(context.Background(), access, "d1", ports.UpdateDeliverableInput{
		Notes: strPtr("please change the font"),
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestDeliverableService_Update_ClientCannotSetNonReviewStatus(t *testing.T) {
	deliverables, projects, clients := clientReviewFixtures(domain.DeliverableInReview)
	svc := NewDeliverableService(deliverables, projects, clients, zerolog.Nop())
	access := ports.Access{UserID: "c1", Email: "billing@acme.test", Role: domain.RoleClient}

	_, err := svc.Update(context.Background(), access, "d1", ports.UpdateDeliverableInput{
		Status: strPtr(string(domain.DeliverableDraft)),
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestDeliverableService_Update_ClientCannotReviewDraft(t *testing.T) {
	deliverables, projects, clients := clientReviewFixtures(domain.DeliverableDraft)
	svc := NewDeliverableService(deliverables, projects, clients, zerolog.Nop())
	access := ports.Access{UserID: "c1", Email: "billing@acme.test", Role: domain.RoleClient}

	_, err := svc.Update(context.Background(), access, "d1", ports.UpdateDeliverableInput{
		Status: strPtr(string(domain.DeliverableApproved)),
	})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestDeliverableService_Update_ForeignClientForbidden(t *testing.T) {
	deliverables, projects, _ := clientReviewFixtures(domain.DeliverableInReview)
	clients := &stubClientRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.Client, error) {
			return &domain.Client{ID: "c-other", Email: email}, nil
		},
	}
	svc := NewDeliverableService(deliverables, projects, clients, zerolog.Nop())
	access := ports.Access{UserID: "c-other", Email: "other@corp.test", Role: domain.RoleClient}

	_, err := svc.Update(context.Background(), access, "d1", ports.UpdateDeliverableInput{
		Status: strPtr(string(domain.DeliverableApproved)),
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestDeliverableService_Update_StaffRejectedBackToReview(t *testing.T) {
	deliverables, projects, clients := clientReviewFixtures(domain.DeliverableRejected)
	svc := NewDeliverableService(deliverables, projects, clients, zerolog.Nop())
	access := ports.Access{UserID: "u1", Email: "editor@creomotion.test", Role: domain.RoleEditor}

	d, err := svc.Update(context.Background(), access, "d1", ports.UpdateDeliverableInput{
		Status:  strPtr(string(domain.DeliverableInReview)),
		FileURL: strPtr("https://files.creomotion.test/logo-v2.pdf"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if d.Status != domain.DeliverableInReview {
		t.Fatalf("expected IN_REVIEW, got %s", d.Status)
	}
}

func TestDeliverableService_Update_StaffIllegalTransition(t *testing.T) {
	deliverables, projects, clients := clientReviewFixtures(domain.DeliverableApproved)
	svc := NewDeliverableService(deliverables, projects, clients, zerolog.Nop())
	access := ports.Access{UserID: "u1", Email: "editor@creomotion.test", Role: domain.RoleEditor}

	_, err := svc.Update(context.Background(), access, "d1", ports.UpdateDeliverableInput{
		Status: strPtr(string(domain.DeliverableDraft)),
	})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestDeliverableService_List_ClientScopedToOwnProjects(t *testing.T) {
	var gotFilter ports.ListDeliverablesFilter
	deliverables := &stubDeliverableRepo{
		listFn: func(ctx context.Context, filter ports.ListDeliverablesFilter) ([]*domain.Deliverable, error) {
			gotFilter = filter
			return []*domain.Deliverable{}, nil
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
	svc := NewDeliverableService(deliverables, projects, clients, zerolog.Nop())
	access := ports.Access{UserID: "c1", Email: "billing@acme.test", Role: domain.RoleClient}

	if _, err := svc.List(context.Background(), access, ports.ListDeliverablesFilter{}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(gotFilter.ProjectIDs) != 2 {
		t.Fatalf("expected scoping to 2 projects, got %+v", gotFilter.ProjectIDs)
	}
}

// A client with no projects must see nothing, not everything.
func TestDeliverableService_List_ClientWithNoProjects(t *testing.T) {
	var gotFilter ports.ListDeliverablesFilter
	deliverables := &stubDeliverableRepo{
		listFn: func(ctx context.Context, filter ports.ListDeliverablesFilter) ([]*domain.Deliverable, error) {
			gotFilter = filter
			return []*domain.Deliverable{}, nil
		},
	}
	projects := &stubProjectRepo{
		idsByClientFn: func(ctx context.Context, clientID string) ([]string, error) {
			return nil, nil
		},
	}
	clients := &stubClientRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.Client, error) {
			return &domain.Client{ID: "c1", Email: email}, nil
		},
	}
	svc := NewDeliverableService(deliverables, projects, clients, zerolog.Nop())
	access := ports.Access{UserID: "c1", Email: "billing@acme.test", Role: domain.RoleClient}

	if _, err := svc.List(context.Background(), access, ports.ListDeliverablesFilter{}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotFilter.ProjectIDs == nil || len(gotFilter.ProjectIDs) != 0 {
		t.Fatalf("expected an empty (non-nil) scope, got %+v", gotFilter.ProjectIDs)
	}
}
