package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agroflow/agroflow-api/internal/middleware"
	"github.com/agroflow/agroflow-api/internal/services"
)

// InvoiceHandler handles customer invoices and supplier bills.
type InvoiceHandler struct {
	common *CommonServices
}

func NewInvoiceHandler(common *CommonServices) *InvoiceHandler {
	return &InvoiceHandler{common: common}
}

type CreateInvoiceRequest struct {
	InvoiceType string            `json:"invoice_type" binding:"required"`
	CustomerID  *uuid.UUID        `json:"customer_id"`
	SupplierID  *uuid.UUID        `json:"supplier_id"`
	IssueDate   *time.Time        `json:"issue_date"`
	DueDate     *time.Time        `json:"due_date"`
	Notes       *string           `json:"notes"`
	Items       []LineItemRequest `json:"items" binding:"required"`
}

// CreateInvoice godoc
// @Summary Create a standalone invoice or bill
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body CreateInvoiceRequest true "Invoice"
// @Success 201 {object} services.InvoiceWithItems
// @Failure 400 {object} ErrorResponse
// @Router /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	invoice, err := h.common.InvoiceService.CreateInvoice(c.Request.Context(), middleware.GetOrganizationID(c), services.CreateInvoiceParams{
		InvoiceType: req.InvoiceType,
		CustomerID:  req.CustomerID,
		SupplierID:  req.SupplierID,
		IssueDate:   req.IssueDate,
		DueDate:     req.DueDate,
		Notes:       req.Notes,
		Items:       toLineInputs(req.Items),
	})
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusCreated, invoice)
}

// GetInvoice godoc
// @Summary Get an invoice with its lines
// @Tags invoices
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} services.InvoiceWithItems
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{invoice_id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := parseUUIDParam(c, "invoice_id")
	if !ok {
		return
	}
	invoice, err := h.common.InvoiceService.GetInvoice(c.Request.Context(), middleware.GetOrganizationID(c), id)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, invoice)
}

// ListInvoices godoc
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param type query string false "sales or purchase"
// @Param status query string false "Filter by status"
// @Success 200 {array} db.Invoice
// @Router /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.common.InvoiceService.ListInvoices(c.Request.Context(), middleware.GetOrganizationID(c), optionalQuery(c, "type"), optionalQuery(c, "status"))
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, invoices)
}

// UpdateInvoiceStatus godoc
// @Summary Update an invoice's status
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Param status body UpdateStatusRequest true "Target status"
// @Success 200 {object} db.Invoice
// @Failure 409 {object} ErrorResponse
// @Router /invoices/{invoice_id}/status [put]
func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "invoice_id")
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	invoice, err := h.common.InvoiceService.UpdateInvoiceStatus(c.Request.Context(), middleware.GetOrganizationID(c), id, req.Status)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, invoice)
}

// SendInvoice godoc
// @Summary Email a sales invoice to its customer
// @Tags invoices
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} db.Invoice
// @Failure 400 {object} ErrorResponse
// @Router /invoices/{invoice_id}/send [post]
func (h *InvoiceHandler) SendInvoice(c *gin.Context) {
	id, ok := parseUUIDParam(c, "invoice_id")
	if !ok {
		return
	}
	invoice, err := h.common.InvoiceService.SendInvoice(c.Request.Context(), middleware.GetOrganizationID(c), id)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, invoice)
}
