package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/creomotion/agency-api/internal/api/metrics"
	"github.com/creomotion/agency-api/internal/core/ports"
)

// InvoiceHandler manages billing.
type InvoiceHandler struct {
	service  ports.InvoiceService
	recorder activityRecorder
}

func NewInvoiceHandler(service ports.InvoiceService, recorder activityRecorder) *InvoiceHandler {
	return &InvoiceHandler{service: service, recorder: recorder}
}

type lineItemRequest struct {
	Description    string  `json:"description" validate:"required"`
	Quantity       float64 `json:"quantity" validate:"required,gt=0"`
	UnitPriceCents int64   `json:"unit_price_cents" validate:"required,gt=0"`
}

type createInvoiceRequest struct {
	ClientID  string            `json:"client_id" validate:"required"`
	ProjectID string            `json:"project_id"`
	IssueDate *time.Time        `json:"issue_date"`
	DueDate   *time.Time        `json:"due_date"`
	LineItems []lineItemRequest `json:"line_items" validate:"required,min=1,dive"`
	TaxRate   float64           `json:"tax_rate" validate:"omitempty,min=0,max=100"`
	Notes     string            `json:"notes"`
}

type updateInvoiceRequest struct {
	ProjectID *string           `json:"project_id"`
	IssueDate *time.Time        `json:"issue_date"`
	DueDate   *time.Time        `json:"due_date"`
	LineItems []lineItemRequest `json:"line_items" validate:"omitempty,min=1,dive"`
	TaxRate   *float64          `json:"tax_rate" validate:"omitempty,min=0,max=100"`
	Notes     *string           `json:"notes"`
}

type updateInvoiceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=DRAFT SENT PAID OVERDUE CANCELLED"`
}

func mapLineItems(items []lineItemRequest) []ports.LineItemInput {
	if items == nil {
		return nil
	}
	out := make([]ports.LineItemInput, len(items))
	for i, it := range items {
		out[i] = ports.LineItemInput{
			Description:    it.Description,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
		}
	}
	return out
}

// Create issues a new draft invoice. The invoice number is allocated from the
// per-year sequence and all totals are computed server-side.
//
// @Summary      Create an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      createInvoiceRequest  true  "Invoice details"
// @Success      201   {object}  domain.Invoice
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /invoices [post]
func (h *InvoiceHandler) Create(c echo.Context) error {
	var req createInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	access, err := ctxAccess(c)
	if err != nil {
		return err
	}

	input := ports.CreateInvoiceInput{
		ClientID:  req.ClientID,
		ProjectID: req.ProjectID,
		LineItems: mapLineItems(req.LineItems),
		TaxRate:   req.TaxRate,
		Notes:     req.Notes,
	}
	if req.IssueDate != nil {
		input.IssueDate = *req.IssueDate
	}
	if req.DueDate != nil {
		input.DueDate = *req.DueDate
	}

	invoice, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.InvoicesIssuedTotal.Inc()
	recordActivity(h.recorder, access, "invoice.created", "invoice", invoice.ID)
	return c.JSON(http.StatusCreated, invoice)
}

// Get returns one invoice. Portal callers can only read their own invoices.
//
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Security     SessionCookie
// @Param        id   path      string  true  "Invoice id"
// @Success      200  {object}  domain.Invoice
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) Get(c echo.Context) error {
	access, err := ctxAccess(c)
	if err != nil {
		return err
	}

	invoice, err := h.service.Get(c.Request().Context(), access, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoice)
}

// List returns invoices, optionally filtered by client and status.
//
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Security     SessionCookie
// @Param        client_id  query    string  false  "Filter by client"
// @Param        status     query    string  false  "Filter by status"
// @Success      200        {array}  domain.Invoice
// @Router       /invoices [get]
func (h *InvoiceHandler) List(c echo.Context) error {
	access, err := ctxAccess(c)
	if err != nil {
		return err
	}

	invoices, err := h.service.List(c.Request().Context(), access, ports.ListInvoicesFilter{
		ClientID: c.QueryParam("client_id"),
		Status:   c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoices)
}

// Update edits an invoice. Supplying line_items replaces them wholesale and
// recomputes all totals. Paid and cancelled invoices are immutable.
//
// @Summary      Update an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        id    path      string                true  "Invoice id"
// @Param        body  body      updateInvoiceRequest  true  "Fields to update"
// @Success      200   {object}  domain.Invoice
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /invoices/{id} [put]
func (h *InvoiceHandler) Update(c echo.Context) error {
	var req updateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	access, err := ctxAccess(c)
	if err != nil {
		return err
	}

	invoice, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateInvoiceInput{
		ProjectID: req.ProjectID,
		IssueDate: req.IssueDate,
		DueDate:   req.DueDate,
		LineItems: mapLineItems(req.LineItems),
		TaxRate:   req.TaxRate,
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}

	recordActivity(h.recorder, access, "invoice.updated", "invoice", invoice.ID)
	return c.JSON(http.StatusOK, invoice)
}

// UpdateStatus moves an invoice through its billing lifecycle.
//
// @Summary      Update invoice status
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        id    path      string                      true  "Invoice id"
// @Param        body  body      updateInvoiceStatusRequest  true  "Target status"
// @Success      200   {object}  domain.Invoice
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /invoices/{id}/status [patch]
func (h *InvoiceHandler) UpdateStatus(c echo.Context) error {
	var req updateInvoiceStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	access, err := ctxAccess(c)
	if err != nil {
		return err
	}

	invoice, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}

	recordActivity(h.recorder, access, "invoice.status."+req.Status, "invoice", invoice.ID)
	return c.JSON(http.StatusOK, invoice)
}

// Delete removes a draft invoice. Issued invoices cannot be deleted.
//
// @Summary      Delete an invoice
// @Tags         invoices
// @Produce      json
// @Security     SessionCookie
// @Param        id   path  string  true  "Invoice id"
// @Success      204  "deleted"
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c echo.Context) error {
	access, err := ctxAccess(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	recordActivity(h.recorder, access, "invoice.deleted", "invoice", id)
	return c.NoContent(http.StatusNoContent)
}

// PDF renders the invoice as a PDF document.
//
// @Summary      Download invoice PDF
// @Tags         invoices
// @Produce      application/pdf
// @Security     SessionCookie
// @Param        id   path  string  true  "Invoice id"
// @Success      200  {file}  binary
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /invoices/{id}/pdf [get]
func (h *InvoiceHandler) PDF(c echo.Context) error {
	access, err := ctxAccess(c)
	if err != nil {
		return err
	}

	start := time.Now()
	pdfBytes, err := h.service.PDF(c.Request().Context(), access, c.Param("id"))
	if err != nil {
		return err
	}
	metrics.InvoicePDFRenderDuration.Observe(time.Since(start).Seconds())

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=invoice-%s.pdf", c.Param("id")))
	return c.Blob(http.StatusOK, "application/pdf", pdfBytes)
}
