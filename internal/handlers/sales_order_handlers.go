package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agroflow/agroflow-api/internal/middleware"
	"github.com/agroflow/agroflow-api/internal/services"
)

// SalesOrderHandler handles sales orders and their conversion to invoices.
type SalesOrderHandler struct {
	common *CommonServices
}

func NewSalesOrderHandler(common *CommonServices) *SalesOrderHandler {
	return &SalesOrderHandler{common: common}
}

type CreateSalesOrderRequest struct {
	CustomerID   uuid.UUID         `json:"customer_id" binding:"required"`
	OrderDate    *time.Time        `json:"order_date"`
	DeliveryDate *time.Time        `json:"delivery_date"`
	Notes        *string           `json:"notes"`
	Items        []LineItemRequest `json:"items" binding:"required"`
}

type ConversionLineRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity float64   `json:"quantity" binding:"required"`
}

type ConvertRequest struct {
	Lines []ConversionLineRequest `json:"lines"`
}

func toConversionLines(lines []ConversionLineRequest) []services.ConversionLine {
	out := make([]services.ConversionLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, services.ConversionLine{ItemID: line.ItemID, Quantity: line.Quantity})
	}
	return out
}

// CreateSalesOrder godoc
// @Summary Create a sales order
// @Tags sales-orders
// @Accept json
// @Produce json
// @Param order body CreateSalesOrderRequest true "Sales order"
// @Success 201 {object} services.SalesOrderWithItems
// @Failure 400 {object} ErrorResponse
// @Router /sales-orders [post]
func (h *SalesOrderHandler) CreateSalesOrder(c *gin.Context) {
	var req CreateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	order, err := h.common.SalesOrderService.CreateSalesOrder(c.Request.Context(), middleware.GetOrganizationID(c), services.CreateSalesOrderParams{
		CustomerID:   req.CustomerID,
		OrderDate:    req.OrderDate,
		DeliveryDate: req.DeliveryDate,
		Notes:        req.Notes,
		Items:        toLineInputs(req.Items),
	})
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusCreated, order)
}

// GetSalesOrder godoc
// @Summary Get a sales order with its lines
// @Tags sales-orders
// @Produce json
// @Param order_id path string true "Sales order ID"
// @Success 200 {object} services.SalesOrderWithItems
// @Failure 404 {object} ErrorResponse
// @Router /sales-orders/{order_id} [get]
func (h *SalesOrderHandler) GetSalesOrder(c *gin.Context) {
	id, ok := parseUUIDParam(c, "order_id")
	if !ok {
		return
	}
	order, err := h.common.SalesOrderService.GetSalesOrder(c.Request.Context(), middleware.GetOrganizationID(c), id)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, order)
}

// ListSalesOrders godoc
// @Summary List sales orders
// @Tags sales-orders
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {array} db.SalesOrder
// @Router /sales-orders [get]
func (h *SalesOrderHandler) ListSalesOrders(c *gin.Context) {
	orders, err := h.common.SalesOrderService.ListSalesOrders(c.Request.Context(), middleware.GetOrganizationID(c), optionalQuery(c, "status"))
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, orders)
}

// UpdateSalesOrderStatus godoc
// @Summary Update a sales order's status
// @Tags sales-orders
// @Accept json
// @Produce json
// @Param order_id path string true "Sales order ID"
// @Param status body UpdateStatusRequest true "Target status"
// @Success 200 {object} db.SalesOrder
// @Failure 409 {object} ErrorResponse
// @Router /sales-orders/{order_id}/status [put]
func (h *SalesOrderHandler) UpdateSalesOrderStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "order_id")
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	order, err := h.common.SalesOrderService.UpdateSalesOrderStatus(c.Request.Context(), middleware.GetOrganizationID(c), id, req.Status)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, order)
}

// ConvertSalesOrder godoc
// @Summary Invoice a sales order, fully or line by line
// @Tags sales-orders
// @Accept json
// @Produce json
// @Param order_id path string true "Sales order ID"
// @Param conversion body ConvertRequest false "Lines to invoice; omit for everything remaining"
// @Success 201 {object} services.InvoiceWithItems
// @Failure 409 {object} ErrorResponse
// @Router /sales-orders/{order_id}/invoice [post]
func (h *SalesOrderHandler) ConvertSalesOrder(c *gin.Context) {
	id, ok := parseUUIDParam(c, "order_id")
	if !ok {
		return
	}
	var req ConvertRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			sendError(c, http.StatusBadRequest, "invalid request body", err)
			return
		}
	}

	invoice, err := h.common.ConversionService.ConvertSalesOrderToInvoice(c.Request.Context(), middleware.GetOrganizationID(c), id, toConversionLines(req.Lines))
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusCreated, invoice)
}
