package ports

import (
	"context"
	"time"

	"github.com/creomotion/agency-api/internal/core/domain"
)

// ListInvoicesFilter carries query parameters for listing invoices.
type ListInvoicesFilter struct {
	ClientID string
	Status   string
}

// InvoiceRepository defines persistence operations for invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	FindByID(ctx context.Context, id string) (*domain.Invoice, error)
	List(ctx context.Context, filter ListInvoicesFilter) ([]*domain.Invoice, error)
	Update(ctx context.Context, inv *domain.Invoice) error
	Delete(ctx context.Context, id string) error
}

// InvoiceNumberAllocator hands out monotonically increasing invoice numbers
// per calendar year, atomic across instances.
type InvoiceNumberAllocator interface {
	Next(ctx context.Context, year int) (int64, error)
}

// InvoiceRenderer turns an invoice and its client into a PDF document.
type InvoiceRenderer interface {
	Render(inv *domain.Invoice, client *domain.Client) ([]byte, error)
}

// LineItemInput is a single billed row as supplied by the caller. The amount
// is always recomputed server-side.
type LineItemInput struct {
	Description    string
	Quantity       float64
	UnitPriceCents int64
}

// CreateInvoiceInput carries all data for a new invoice.
type CreateInvoiceInput struct {
	ClientID  string
	ProjectID string
	IssueDate time.Time
	DueDate   time.Time
	LineItems []LineItemInput
	TaxRate   float64
	Notes     string
}

// UpdateInvoiceInput applies partial-field semantics. When LineItems is
// non-nil the stored line items are replaced wholesale and all totals are
// recomputed with the invoice update.
type UpdateInvoiceInput struct {
	ProjectID *string
	IssueDate *time.Time
	DueDate   *time.Time
	LineItems []LineItemInput
	TaxRate   *float64
	Notes     *string
}

// InvoiceService defines billing use cases.
type InvoiceService interface {
	Create(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error)
	Get(ctx context.Context, access Access, id string) (*domain.Invoice, error)
	List(ctx context.Context, access Access, filter ListInvoicesFilter) ([]*domain.Invoice, error)
	Update(ctx context.Context, id string, input UpdateInvoiceInput) (*domain.Invoice, error)
	UpdateStatus(ctx context.Context, id string, status string) (*domain.Invoice, error)
	Delete(ctx context.Context, id string) error
	PDF(ctx context.Context, access Access, id string) ([]byte, error)
}
