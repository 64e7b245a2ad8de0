package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/creomotion/agency-api/internal/core/domain"
)

func sampleInvoice() *domain.Invoice {
	issued := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Invoice{
		ID:        "inv1",
		Number:    "INV-2026-000017",
		ClientID:  "c1",
		Status:    domain.InvoiceSent,
		IssueDate: issued,
		DueDate:   issued.AddDate(0, 0, 30),
		LineItems: []domain.LineItem{
			{Description: "Brand video production", Quantity: 1, UnitPriceCents: 250000, AmountCents: 250000},
			{Description: "Motion graphics", Quantity: 12.5, UnitPriceCents: 8000, AmountCents: 100000},
		},
		SubtotalCents: 350000,
		TaxRate:       21,
		TaxCents:      73500,
		TotalCents:    423500,
		PaymentRef:    "a3e8f2d0-0000-4000-8000-000000000000",
		Notes:         "Net 30. Thank you for your business.",
	}
}

func TestInvoiceRenderer_Render(t *testing.T) {
	r := NewInvoiceRenderer("CreoMotion")
	client := &domain.Client{ID: "c1", Name: "Acme", Company: "Acme Corp", Email: "billing@acme.test"}

	out, err := r.Render(sampleInvoice(), client)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document")
	}
	if len(out) < 500 {
		t.Fatalf("suspiciously small PDF: %d bytes", len(out))
	}
}

func TestInvoiceRenderer_DefaultsAgencyName(t *testing.T) {
	r := NewInvoiceRenderer("")
	if r.agencyName != "CreoMotion" {
		t.Fatalf("expected default agency name, got %q", r.agencyName)
	}
}

func TestFormatCents(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{151250, "$1512.50"},
	}
	for _, tc := range cases {
		if got := formatCents(tc.cents); got != tc.want {
			t.Fatalf("formatCents(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}
