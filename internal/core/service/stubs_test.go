package service

import (
	"context"

	"github.com/creomotion/agency-api/internal/core/domain"
	"github.com/creomotion/agency-api/internal/core/ports"
)

// Function-field stubs: each test sets only the methods it expects to be
// called; an unset method failing with a nil dereference is the test's way of
// catching unexpected calls.

type stubUserRepo struct {
	createFn      func(ctx context.Context, u *domain.User) (*domain.User, error)
	findByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	findByIDFn    func(ctx context.Context, id string) (*domain.User, error)
	listFn        func(ctx context.Context) ([]*domain.User, error)
	updateFn      func(ctx context.Context, u *domain.User) error
	deleteFn      func(ctx context.Context, id string) error
}

func (s *stubUserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	return s.createFn(ctx, u)
}
func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findByEmailFn(ctx, email)
}
func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.findByIDFn(ctx, id)
}
func (s *stubUserRepo) List(ctx context.Context) ([]*domain.User, error) { return s.listFn(ctx) }
func (s *stubUserRepo) Update(ctx context.Context, u *domain.User) error { return s.updateFn(ctx, u) }
func (s *stubUserRepo) Delete(ctx context.Context, id string) error      { return s.deleteFn(ctx, id) }

type stubClientRepo struct {
	createFn      func(ctx context.Context, c *domain.Client) (*domain.Client, error)
	findByEmailFn func(ctx context.Context, email string) (*domain.Client, error)
	findByIDFn    func(ctx context.Context, id string) (*domain.Client, error)
	listFn        func(ctx context.Context) ([]*domain.Client, error)
	updateFn      func(ctx context.Context, c *domain.Client) error
	deleteFn      func(ctx context.Context, id string) error
}

func (s *stubClientRepo) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	return s.createFn(ctx, c)
}
func (s *stubClientRepo) FindByEmail(ctx context.Context, email string) (*domain.Client, error) {
	return s.findByEmailFn(ctx, email)
}
func (s *stubClientRepo) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	return s.findByIDFn(ctx, id)
}
func (s *stubClientRepo) List(ctx context.Context) ([]*domain.Client, error) { return s.listFn(ctx) }
func (s *stubClientRepo) Update(ctx context.Context, c *domain.Client) error {
	return s.updateFn(ctx, c)
}
func (s *stubClientRepo) Delete(ctx context.Context, id string) error { return s.deleteFn(ctx, id) }

type stubProjectRepo struct {
	createFn        func(ctx context.Context, p *domain.Project) (*domain.Project, error)
	findByIDFn      func(ctx context.Context, id string) (*domain.Project, error)
	listFn          func(ctx context.Context, filter ports.ListProjectsFilter) ([]*domain.Project, error)
	updateFn        func(ctx context.Context, p *domain.Project) error
	deleteFn        func(ctx context.Context, id string) error
	countByClientFn func(ctx context.Context, clientID string) (int64, error)
	idsByClientFn   func(ctx context.Context, clientID string) ([]string, error)
}

func (s *stubProjectRepo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	return s.createFn(ctx, p)
}
func (s *stubProjectRepo) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.findByIDFn(ctx, id)
}
func (s *stubProjectRepo) List(ctx context.Context, filter ports.ListProjectsFilter) ([]*domain.Project, error) {
	return s.listFn(ctx, filter)
}
func (s *stubProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	return s.updateFn(ctx, p)
}
func (s *stubProjectRepo) Delete(ctx context.Context, id string) error { return s.deleteFn(ctx, id) }
func (s *stubProjectRepo) CountByClient(ctx context.Context, clientID string) (int64, error) {
	return s.countByClientFn(ctx, clientID)
}
func (s *stubProjectRepo) IDsByClient(ctx context.Context, clientID string) ([]string, error) {
	return s.idsByClientFn(ctx, clientID)
}

type stubTaskRepo struct {
	createFn         func(ctx context.Context, t *domain.Task) (*domain.Task, error)
	findByIDFn       func(ctx context.Context, id string) (*domain.Task, error)
	listFn           func(ctx context.Context, filter ports.ListTasksFilter) ([]*domain.Task, error)
	updateFn         func(ctx context.Context, t *domain.Task) error
	deleteFn         func(ctx context.Context, id string) error
	countByProjectFn func(ctx context.Context, projectID string) (int64, error)
}

func (s *stubTaskRepo) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	return s.createFn(ctx, t)
}
func (s *stubTaskRepo) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.findByIDFn(ctx, id)
}
func (s *stubTaskRepo) List(ctx context.Context, filter ports.ListTasksFilter) ([]*domain.Task, error) {
	return s.listFn(ctx, filter)
}
func (s *stubTaskRepo) Update(ctx context.Context, t *domain.Task) error { return s.updateFn(ctx, t) }
func (s *stubTaskRepo) Delete(ctx context.Context, id string) error      { return s.deleteFn(ctx, id) }
func (s *stubTaskRepo) CountByProject(ctx context.Context, projectID string) (int64, error) {
	return s.countByProjectFn(ctx, projectID)
}

type stubDeliverableRepo struct {
	createFn         func(ctx context.Context, d *domain.Deliverable) (*domain.Deliverable, error)
	findByIDFn       func(ctx context.Context, id string) (*domain.Deliverable, error)
	listFn           func(ctx context.Context, filter ports.ListDeliverablesFilter) ([]*domain.Deliverable, error)
	updateFn         func(ctx context.Context, d *domain.Deliverable) error
	deleteFn         func(ctx context.Context, id string) error
	maxVersionFn     func(ctx context.Context, projectID, name string) (int, error)
	countByProjectFn func(ctx context.Context, projectID string) (int64, error)
}

func (s *stubDeliverableRepo) Create(ctx context.Context, d *domain.Deliverable) (*domain.Deliverable, error) {
	return s.createFn(ctx, d)
}
func (s *stubDeliverableRepo) FindByID(ctx context.Context, id string) (*domain.Deliverable, error) {
	return s.findByIDFn(ctx, id)
}
func (s *stubDeliverableRepo) List(ctx context.Context, filter ports.ListDeliverablesFilter) ([]*domain.Deliverable, error) {
	return s.listFn(ctx, filter)
}
func (s *stubDeliverableRepo) Update(ctx context.Context, d *domain.Deliverable) error {
	return s.updateFn(ctx, d)
}
func (s *stubDeliverableRepo) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *stubDeliverableRepo) MaxVersion(ctx context.Context, projectID, name string) (int, error) {
	return s.maxVersionFn(ctx, projectID, name)
}
func (s *stubDeliverableRepo) CountByProject(ctx context.Context, projectID string) (int64, error) {
	return s.countByProjectFn(ctx, projectID)
}

type stubTimeEntryRepo struct {
	createFn         func(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error)
	findByIDFn       func(ctx context.Context, id string) (*domain.TimeEntry, error)
	listFn           func(ctx context.Context, filter ports.ListTimeEntriesFilter) ([]*domain.TimeEntry, error)
	updateFn         func(ctx context.Context, e *domain.TimeEntry) error
	deleteFn         func(ctx context.Context, id string) error
	countByProjectFn func(ctx context.Context, projectID string) (int64, error)
}

func (s *stubTimeEntryRepo) Create(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error) {
	return s.createFn(ctx, e)
}
func (s *stubTimeEntryRepo) FindByID(ctx context.Context, id string) (*domain.TimeEntry, error) {
	return s.findByIDFn(ctx, id)
}
func (s *stubTimeEntryRepo) List(ctx context.Context, filter ports.ListTimeEntriesFilter) ([]*domain.TimeEntry, error) {
	return s.listFn(ctx, filter)
}
func (s *stubTimeEntryRepo) Update(ctx context.Context, e *domain.TimeEntry) error {
	return s.updateFn(ctx, e)
}
func (s *stubTimeEntryRepo) Delete(ctx context.Context, id string) error { return s.deleteFn(ctx, id) }
func (s *stubTimeEntryRepo) CountByProject(ctx context.Context, projectID string) (int64, error) {
	return s.countByProjectFn(ctx, projectID)
}

type stubInvoiceRepo struct {
	createFn   func(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	findByIDFn func(ctx context.Context, id string) (*domain.Invoice, error)
	listFn     func(ctx context.Context, filter ports.ListInvoicesFilter) ([]*domain.Invoice, error)
	updateFn   func(ctx context.Context, inv *domain.Invoice) error
	deleteFn   func(ctx context.Context, id string) error
}

func (s *stubInvoiceRepo) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	return s.createFn(ctx, inv)
}
func (s *stubInvoiceRepo) FindByID(ctx context.Context, id string) (*domain.Invoice, error) {
	return s.findByIDFn(ctx, id)
}
func (s *stubInvoiceRepo) List(ctx context.Context, filter ports.ListInvoicesFilter) ([]*domain.Invoice, error) {
	return s.listFn(ctx, filter)
}
func (s *stubInvoiceRepo) Update(ctx context.Context, inv *domain.Invoice) error {
	return s.updateFn(ctx, inv)
}
func (s *stubInvoiceRepo) Delete(ctx context.Context, id string) error { return s.deleteFn(ctx, id) }

type stubNumberAllocator struct {
	nextFn func(ctx context.Context, year int) (int64, error)
}

func (s *stubNumberAllocator) Next(ctx context.Context, year int) (int64, error) {
	return s.nextFn(ctx, year)
}

type stubRenderer struct {
	renderFn func(inv *domain.Invoice, client *domain.Client) ([]byte, error)
}

func (s *stubRenderer) Render(inv *domain.Invoice, client *domain.Client) ([]byte, error) {
	return s.renderFn(inv, client)
}
