// Package pdf renders invoices into PDF documents.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/creomotion/agency-api/internal/core/domain"
)

const dateLayout = "02 Jan 2006"

// InvoiceRenderer draws an invoice onto an A4 page.
type InvoiceRenderer struct {
	agencyName string
}

// NewInvoiceRenderer creates a renderer stamping agencyName in the header.
func NewInvoiceRenderer(agencyName string) *InvoiceRenderer {
	if agencyName == "" {
		agencyName = "CreoMotion"
	}
	return &InvoiceRenderer{agencyName: agencyName}
}

// Render produces the PDF bytes for an invoice addressed to client.
func (r *InvoiceRenderer) Render(inv *domain.Invoice, client *domain.Client) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %s", inv.Number), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 12, r.agencyName)
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Invoice %s", inv.Number))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Billed to: "+client.Name)
	pdf.Ln(6)
	if client.Company != "" {
		pdf.Cell(0, 6, client.Company)
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, client.Email)
	pdf.Ln(10)

	pdf.Cell(60, 6, "Issue date: "+inv.IssueDate.Format(dateLayout))
	pdf.Cell(60, 6, "Due date: "+inv.DueDate.Format(dateLayout))
	pdf.Cell(0, 6, "Status: "+string(inv.Status))
	pdf.Ln(12)

	// line item table
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(90, 7, "Description")
	pdf.Cell(25, 7, "Qty")
	pdf.Cell(35, 7, "Unit price")
	pdf.Cell(30, 7, "Amount")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 11)
	for _, item := range inv.LineItems {
		pdf.Cell(90, 7, item.Description)
		pdf.Cell(25, 7, fmt.Sprintf("%.2f", item.Quantity))
		pdf.Cell(35, 7, formatCents(item.UnitPriceCents))
		pdf.Cell(30, 7, formatCents(item.AmountCents))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(150, 7, "Subtotal")
	pdf.Cell(30, 7, formatCents(inv.SubtotalCents))
	pdf.Ln(7)
	pdf.Cell(150, 7, fmt.Sprintf("Tax (%.1f%%)", inv.TaxRate))
	pdf.Cell(30, 7, formatCents(inv.TaxCents))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(150, 8, "Total")
	pdf.Cell(30, 8, formatCents(inv.TotalCents))
	pdf.Ln(12)

	if inv.Notes != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, inv.Notes, "", "L", false)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, "Payment reference: "+inv.PaymentRef)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func formatCents(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}
