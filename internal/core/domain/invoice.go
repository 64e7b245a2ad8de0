package domain

import "time"

// InvoiceStatus represents the billing lifecycle of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "DRAFT"
	InvoiceSent      InvoiceStatus = "SENT"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceOverdue   InvoiceStatus = "OVERDUE"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

// invoiceTransitions defines the allowed billing state machine. Paid is
// terminal; anything unpaid can be cancelled.
var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceDraft:   {InvoiceSent, InvoiceCancelled},
	InvoiceSent:    {InvoicePaid, InvoiceOverdue, InvoiceCancelled},
	InvoiceOverdue: {InvoicePaid, InvoiceCancelled},
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	for _, allowed := range invoiceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// LineItem is a single billed row. Amounts are integer cents; AmountCents is
// derived from Quantity x UnitPriceCents and never taken from input.
type LineItem struct {
	Description    string  `json:"description" bson:"description"`
	Quantity       float64 `json:"quantity" bson:"quantity"`
	UnitPriceCents int64   `json:"unit_price_cents" bson:"unit_price_cents"`
	AmountCents    int64   `json:"amount_cents" bson:"amount_cents"`
}

// Invoice bills a client, optionally tied to one project. Line items are
// embedded so a full replacement updates atomically with the invoice.
type Invoice struct {
	ID            string        `json:"id" bson:"_id,omitempty"`
	Number        string        `json:"number" bson:"number"`
	ClientID      string        `json:"client_id" bson:"client_id"`
	ProjectID     string        `json:"project_id,omitempty" bson:"project_id,omitempty"`
	Status        InvoiceStatus `json:"status" bson:"status"`
	IssueDate     time.Time     `json:"issue_date" bson:"issue_date"`
	DueDate       time.Time     `json:"due_date" bson:"due_date"`
	LineItems     []LineItem    `json:"line_items" bson:"line_items"`
	SubtotalCents int64         `json:"subtotal_cents" bson:"subtotal_cents"`
	TaxRate       float64       `json:"tax_rate" bson:"tax_rate"`
	TaxCents      int64         `json:"tax_cents" bson:"tax_cents"`
	TotalCents    int64         `json:"total_cents" bson:"total_cents"`
	PaymentRef    string        `json:"payment_ref,omitempty" bson:"payment_ref,omitempty"`
	Notes         string        `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" bson:"updated_at"`
}
