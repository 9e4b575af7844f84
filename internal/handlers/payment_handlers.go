package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agroflow/agroflow-api/internal/middleware"
	"github.com/agroflow/agroflow-api/internal/services"
)

// PaymentHandler handles payments and their allocation against invoices.
type PaymentHandler struct {
	common *CommonServices
}

func NewPaymentHandler(common *CommonServices) *PaymentHandler {
	return &PaymentHandler{common: common}
}

type CreatePaymentRequest struct {
	PaymentType string     `json:"payment_type" binding:"required"`
	CustomerID  *uuid.UUID `json:"customer_id"`
	SupplierID  *uuid.UUID `json:"supplier_id"`
	PaymentDate *time.Time `json:"payment_date"`
	Amount      float64    `json:"amount" binding:"required"`
	Method      *string    `json:"method"`
	Reference   *string    `json:"reference"`
}

type AllocationLineRequest struct {
	InvoiceID uuid.UUID `json:"invoice_id" binding:"required"`
	Amount    float64   `json:"amount" binding:"required"`
}

type AllocateRequest struct {
	Allocations []AllocationLineRequest `json:"allocations" binding:"required"`
}

// CreatePayment godoc
// @Summary Record a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body CreatePaymentRequest true "Payment"
// @Success 201 {object} db.Payment
// @Failure 400 {object} ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	payment, err := h.common.PaymentService.CreatePayment(c.Request.Context(), middleware.GetOrganizationID(c), services.CreatePaymentParams{
		PaymentType: req.PaymentType,
		CustomerID:  req.CustomerID,
		SupplierID:  req.SupplierID,
		PaymentDate: req.PaymentDate,
		Amount:      req.Amount,
		Method:      req.Method,
		Reference:   req.Reference,
	})
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusCreated, payment)
}

// GetPayment godoc
// @Summary Get a payment
// @Tags payments
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Success 200 {object} db.Payment
// @Failure 404 {object} ErrorResponse
// @Router /payments/{payment_id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "payment_id")
	if !ok {
		return
	}
	payment, err := h.common.PaymentService.GetPayment(c.Request.Context(), middleware.GetOrganizationID(c), id)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, payment)
}

// ListPayments godoc
// @Summary List payments
// @Tags payments
// @Produce json
// @Param type query string false "incoming or outgoing"
// @Success 200 {array} db.Payment
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.common.PaymentService.ListPayments(c.Request.Context(), middleware.GetOrganizationID(c), optionalQuery(c, "type"))
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, payments)
}

// GetPaymentAllocations godoc
// @Summary List a payment's allocations
// @Tags payments
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Success 200 {array} db.PaymentAllocation
// @Router /payments/{payment_id}/allocations [get]
func (h *PaymentHandler) GetPaymentAllocations(c *gin.Context) {
	id, ok := parseUUIDParam(c, "payment_id")
	if !ok {
		return
	}
	allocations, err := h.common.PaymentService.GetPaymentAllocations(c.Request.Context(), middleware.GetOrganizationID(c), id)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, allocations)
}

// AllocatePayment godoc
// @Summary Allocate a payment against invoices
// @Tags payments
// @Accept json
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Param allocations body AllocateRequest true "Allocations"
// @Success 200 {object} services.AllocationResult
// @Failure 409 {object} ErrorResponse
// @Router /payments/{payment_id}/allocate [post]
func (h *PaymentHandler) AllocatePayment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "payment_id")
	if !ok {
		return
	}
	var req AllocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	lines := make([]services.AllocationLine, 0, len(req.Allocations))
	for _, a := range req.Allocations {
		lines = append(lines, services.AllocationLine{InvoiceID: a.InvoiceID, Amount: a.Amount})
	}

	result, err := h.common.AllocationService.AllocatePayment(c.Request.Context(), middleware.GetOrganizationID(c), id, lines)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, result)
}

// SuggestAllocations godoc
// @Summary Suggest how to allocate a payment's open amount
// @Tags payments
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Success 200 {array} services.AllocationLine
// @Router /payments/{payment_id}/suggestions [get]
func (h *PaymentHandler) SuggestAllocations(c *gin.Context) {
	id, ok := parseUUIDParam(c, "payment_id")
	if !ok {
		return
	}
	suggestions, err := h.common.AllocationService.SuggestAllocations(c.Request.Context(), middleware.GetOrganizationID(c), id)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, suggestions)
}

// CancelPayment godoc
// @Summary Cancel an unallocated payment
// @Tags payments
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Success 200 {object} db.Payment
// @Failure 400 {object} ErrorResponse
// @Router /payments/{payment_id} [delete]
func (h *PaymentHandler) CancelPayment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "payment_id")
	if !ok {
		return
	}
	payment, err := h.common.PaymentService.CancelPayment(c.Request.Context(), middleware.GetOrganizationID(c), id)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, payment)
}
