package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/creomotion/agency-api/internal/core/domain"
	"github.com/creomotion/agency-api/internal/core/ports"
)

// InvoiceService implements billing: server-side amount computation, atomic
// per-year number allocation, wholesale line-item replacement on update, and
// PDF rendering.
type InvoiceService struct {
	invoices ports.InvoiceRepository
	clients  ports.ClientRepository
	projects ports.ProjectRepository
	numbers  ports.InvoiceNumberAllocator
	renderer ports.InvoiceRenderer
	log      zerolog.Logger
}

func NewInvoiceService(
	invoices ports.InvoiceRepository,
	clients ports.ClientRepository,
	projects ports.ProjectRepository,
	numbers ports.InvoiceNumberAllocator,
	renderer ports.InvoiceRenderer,
	log zerolog.Logger,
) *InvoiceService {
	return &InvoiceService{
		invoices: invoices,
		clients:  clients,
		projects: projects,
		numbers:  numbers,
		renderer: renderer,
		log:      log,
	}
}

func (s *InvoiceService) Create(ctx context.Context, input ports.CreateInvoiceInput) (*domain.Invoice, error) {
	if len(input.LineItems) == 0 {
		return nil, fmt.Errorf("%w: invoice requires at least one line item", domain.ErrValidation)
	}
	if _, err := s.clients.FindByID(ctx, input.ClientID); err != nil {
		return nil, err
	}
	if input.ProjectID != "" {
		project, err := s.projects.FindByID(ctx, input.ProjectID)
		if err != nil {
			return nil, err
		}
		if project.ClientID != input.ClientID {
			return nil, fmt.Errorf("%w: project does not belong to client", domain.ErrValidation)
		}
	}

	issueDate := input.IssueDate
	if issueDate.IsZero() {
		issueDate = time.Now().UTC()
	}
	dueDate := input.DueDate
	if dueDate.IsZero() {
		dueDate = issueDate.AddDate(0, 0, 30)
	}

	number, err := s.allocateNumber(ctx, issueDate.Year())
	if err != nil {
		return nil, err
	}

	items, subtotal, tax, total := computeTotals(input.LineItems, input.TaxRate)

	now := time.Now().UTC()
	invoice := &domain.Invoice{
		Number:        number,
		ClientID:      input.ClientID,
		ProjectID:     input.ProjectID,
		Status:        domain.InvoiceDraft,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		LineItems:     items,
		SubtotalCents: subtotal,
		TaxRate:       input.TaxRate,
		TaxCents:      tax,
		TotalCents:    total,
		PaymentRef:    uuid.NewString(),
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.invoices.Create(ctx, invoice)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("invoice", created.ID).
		Str("number", created.Number).
		Int64("total_cents", created.TotalCents).
		Msg("invoice created")

	return created, nil
}

func (s *InvoiceService) Get(ctx context.Context, access ports.Access, id string) (*domain.Invoice, error) {
	invoice, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if access.IsClient() {
		clientID, err := resolveClientID(ctx, s.clients, access.Email)
		if err != nil {
			return nil, err
		}
		if invoice.ClientID != clientID {
			return nil, domain.ErrForbidden
		}
	}
	return invoice, nil
}

func (s *InvoiceService) List(ctx context.Context, access ports.Access, filter ports.ListInvoicesFilter) ([]*domain.Invoice, error) {
	if access.IsClient() {
		clientID, err := resolveClientID(ctx, s.clients, access.Email)
		if err != nil {
			return nil, err
		}
		filter.ClientID = clientID
	}
	return s.invoices.List(ctx, filter)
}

// Update applies partial fields. A non-nil LineItems slice replaces the
// stored items wholesale and recomputes all totals in the same write, so the
// invoice document never holds a mixed set.
func (s *InvoiceService) Update(ctx context.Context, id string, input ports.UpdateInvoiceInput) (*domain.Invoice, error) {
	invoice, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice.Status == domain.InvoicePaid || invoice.Status == domain.InvoiceCancelled {
		return nil, fmt.Errorf("%w: %s invoices cannot be edited", domain.ErrValidation, invoice.Status)
	}

	if input.ProjectID != nil && *input.ProjectID != invoice.ProjectID {
		if *input.ProjectID != "" {
			project, err := s.projects.FindByID(ctx, *input.ProjectID)
			if err != nil {
				return nil, err
			}
			if project.ClientID != invoice.ClientID {
				return nil, fmt.Errorf("%w: project does not belong to client", domain.ErrValidation)
			}
		}
		invoice.ProjectID = *input.ProjectID
	}
	if input.IssueDate != nil {
		invoice.IssueDate = *input.IssueDate
	}
	if input.DueDate != nil {
		invoice.DueDate = *input.DueDate
	}
	if input.TaxRate != nil {
		invoice.TaxRate = *input.TaxRate
	}
	if input.Notes != nil {
		invoice.Notes = *input.Notes
	}
	if input.LineItems != nil {
		if len(input.LineItems) == 0 {
			return nil, fmt.Errorf("%w: invoice requires at least one line item", domain.ErrValidation)
		}
		invoice.LineItems, invoice.SubtotalCents, invoice.TaxCents, invoice.TotalCents =
			computeTotals(input.LineItems, invoice.TaxRate)
	} else if input.TaxRate != nil {
		// tax changed without new items: recompute from stored lines
		items := make([]ports.LineItemInput, len(invoice.LineItems))
		for i, it := range invoice.LineItems {
			items[i] = ports.LineItemInput{Description: it.Description, Quantity: it.Quantity, UnitPriceCents: it.UnitPriceCents}
		}
		invoice.LineItems, invoice.SubtotalCents, invoice.TaxCents, invoice.TotalCents =
			computeTotals(items, invoice.TaxRate)
	}
	invoice.UpdatedAt = time.Now().UTC()

	if err := s.invoices.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *InvoiceService) UpdateStatus(ctx context.Context, id string, status string) (*domain.Invoice, error) {
	invoice, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := domain.InvoiceStatus(status)
	if next == invoice.Status {
		return invoice, nil
	}
	if !invoice.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, invoice.Status, next)
	}
	invoice.Status = next
	invoice.UpdatedAt = time.Now().UTC()

	if err := s.invoices.Update(ctx, invoice); err != nil {
		return nil, err
	}

	s.log.Info().Str("invoice", invoice.ID).Str("number", invoice.Number).Str("status", status).Msg("invoice status changed")
	return invoice, nil
}

func (s *InvoiceService) Delete(ctx context.Context, id string) error {
	invoice, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice.Status != domain.InvoiceDraft {
		return fmt.Errorf("%w: only draft invoices can be deleted", domain.ErrValidation)
	}
	return s.invoices.Delete(ctx, id)
}

// PDF renders the invoice document, applying the same ownership check as Get.
func (s *InvoiceService) PDF(ctx context.Context, access ports.Access, id string) ([]byte, error) {
	invoice, err := s.Get(ctx, access, id)
	if err != nil {
		return nil, err
	}
	client, err := s.clients.FindByID(ctx, invoice.ClientID)
	if err != nil {
		return nil, err
	}
	return s.renderer.Render(invoice, client)
}

func (s *InvoiceService) allocateNumber(ctx context.Context, year int) (string, error) {
	n, err := s.numbers.Next(ctx, year)
	if err != nil {
		return "", fmt.Errorf("allocate invoice number: %w", err)
	}
	return fmt.Sprintf("INV-%d-%06d", year, n), nil
}

// computeTotals derives per-line amounts and invoice totals from the raw
// inputs. All rounding happens once per line, in cents.
func computeTotals(items []ports.LineItemInput, taxRate float64) ([]domain.LineItem, int64, int64, int64) {
	out := make([]domain.LineItem, len(items))
	var subtotal int64
	for i, it := range items {
		amount := int64(math.Round(it.Quantity * float64(it.UnitPriceCents)))
		out[i] = domain.LineItem{
			Description:    it.Description,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
			AmountCents:    amount,
		}
		subtotal += amount
	}
	tax := int64(math.Round(float64(subtotal) * taxRate / 100))
	return out, subtotal, tax, subtotal + tax
}
