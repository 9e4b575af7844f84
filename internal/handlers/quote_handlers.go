package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agroflow/agroflow-api/internal/middleware"
	"github.com/agroflow/agroflow-api/internal/services"
)

// QuoteHandler handles the quote lifecycle and quote conversion.
type QuoteHandler struct {
	common *CommonServices
}

func NewQuoteHandler(common *CommonServices) *QuoteHandler {
	return &QuoteHandler{common: common}
}

type CreateQuoteRequest struct {
	CustomerID uuid.UUID         `json:"customer_id" binding:"required"`
	IssueDate  *time.Time        `json:"issue_date"`
	ExpiryDate *time.Time        `json:"expiry_date"`
	Notes      *string           `json:"notes"`
	Items      []LineItemRequest `json:"items" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateQuote godoc
// @Summary Create a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body CreateQuoteRequest true "Quote"
// @Success 201 {object} services.QuoteWithItems
// @Failure 400 {object} ErrorResponse
// @Router /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	quote, err := h.common.QuoteService.CreateQuote(c.Request.Context(), middleware.GetOrganizationID(c), services.CreateQuoteParams{
		CustomerID: req.CustomerID,
		IssueDate:  req.IssueDate,
		ExpiryDate: req.ExpiryDate,
		Notes:      req.Notes,
		Items:      toLineInputs(req.Items),
	})
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusCreated, quote)
}

// GetQuote godoc
// @Summary Get a quote with its lines
// @Tags quotes
// @Produce json
// @Param quote_id path string true "Quote ID"
// @Success 200 {object} services.QuoteWithItems
// @Failure 404 {object} ErrorResponse
// @Router /quotes/{quote_id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	id, ok := parseUUIDParam(c, "quote_id")
	if !ok {
		return
	}
	quote, err := h.common.QuoteService.GetQuote(c.Request.Context(), middleware.GetOrganizationID(c), id)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, quote)
}

// ListQuotes godoc
// @Summary List quotes
// @Tags quotes
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {array} db.Quote
// @Router /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.common.QuoteService.ListQuotes(c.Request.Context(), middleware.GetOrganizationID(c), optionalQuery(c, "status"))
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, quotes)
}

// UpdateQuoteStatus godoc
// @Summary Update a quote's status
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote_id path string true "Quote ID"
// @Param status body UpdateStatusRequest true "Target status"
// @Success 200 {object} db.Quote
// @Failure 409 {object} ErrorResponse
// @Router /quotes/{quote_id}/status [put]
func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "quote_id")
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	quote, err := h.common.QuoteService.UpdateQuoteStatus(c.Request.Context(), middleware.GetOrganizationID(c), id, req.Status)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, quote)
}

// SendQuote godoc
// @Summary Send a quote to its customer
// @Tags quotes
// @Produce json
// @Param quote_id path string true "Quote ID"
// @Success 200 {object} db.Quote
// @Failure 409 {object} ErrorResponse
// @Router /quotes/{quote_id}/send [post]
func (h *QuoteHandler) SendQuote(c *gin.Context) {
	id, ok := parseUUIDParam(c, "quote_id")
	if !ok {
		return
	}
	quote, err := h.common.QuoteService.SendQuote(c.Request.Context(), middleware.GetOrganizationID(c), id)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, quote)
}

// ConvertQuote godoc
// @Summary Accept a sent quote and convert it into a sales order
// @Tags quotes
// @Produce json
// @Param quote_id path string true "Quote ID"
// @Success 201 {object} services.SalesOrderWithItems
// @Failure 409 {object} ErrorResponse
// @Router /quotes/{quote_id}/convert [post]
func (h *QuoteHandler) ConvertQuote(c *gin.Context) {
	id, ok := parseUUIDParam(c, "quote_id")
	if !ok {
		return
	}
	order, err := h.common.ConversionService.ConvertQuoteToSalesOrder(c.Request.Context(), middleware.GetOrganizationID(c), id)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusCreated, order)
}
