package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agroflow/agroflow-api/internal/middleware"
	"github.com/agroflow/agroflow-api/internal/services"
)

// PurchaseOrderHandler handles purchase orders and their conversion to bills.
type PurchaseOrderHandler struct {
	common *CommonServices
}

func NewPurchaseOrderHandler(common *CommonServices) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{common: common}
}

type CreatePurchaseOrderRequest struct {
	SupplierID   uuid.UUID         `json:"supplier_id" binding:"required"`
	OrderDate    *time.Time        `json:"order_date"`
	ExpectedDate *time.Time        `json:"expected_date"`
	Notes        *string           `json:"notes"`
	Items        []LineItemRequest `json:"items" binding:"required"`
}

type UpdatePurchaseOrderItemsRequest struct {
	Items []LineItemRequest `json:"items" binding:"required"`
}

// CreatePurchaseOrder godoc
// @Summary Create a purchase order
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param order body CreatePurchaseOrderRequest true "Purchase order"
// @Success 201 {object} services.PurchaseOrderWithItems
// @Failure 400 {object} ErrorResponse
// @Router /purchase-orders [post]
func (h *PurchaseOrderHandler) CreatePurchaseOrder(c *gin.Context) {
	var req CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	order, err := h.common.PurchaseOrderService.CreatePurchaseOrder(c.Request.Context(), middleware.GetOrganizationID(c), services.CreatePurchaseOrderParams{
		SupplierID:   req.SupplierID,
		OrderDate:    req.OrderDate,
		ExpectedDate: req.ExpectedDate,
		Notes:        req.Notes,
		Items:        toLineInputs(req.Items),
	})
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusCreated, order)
}

// GetPurchaseOrder godoc
// @Summary Get a purchase order with its lines
// @Tags purchase-orders
// @Produce json
// @Param order_id path string true "Purchase order ID"
// @Success 200 {object} services.PurchaseOrderWithItems
// @Failure 404 {object} ErrorResponse
// @Router /purchase-orders/{order_id} [get]
func (h *PurchaseOrderHandler) GetPurchaseOrder(c *gin.Context) {
	id, ok := parseUUIDParam(c, "order_id")
	if !ok {
		return
	}
	order, err := h.common.PurchaseOrderService.GetPurchaseOrder(c.Request.Context(), middleware.GetOrganizationID(c), id)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, order)
}

// ListPurchaseOrders godoc
// @Summary List purchase orders
// @Tags purchase-orders
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {array} db.PurchaseOrder
// @Router /purchase-orders [get]
func (h *PurchaseOrderHandler) ListPurchaseOrders(c *gin.Context) {
	orders, err := h.common.PurchaseOrderService.ListPurchaseOrders(c.Request.Context(), middleware.GetOrganizationID(c), optionalQuery(c, "status"))
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, orders)
}

// UpdatePurchaseOrderItems godoc
// @Summary Replace the lines of a draft purchase order
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param order_id path string true "Purchase order ID"
// @Param items body UpdatePurchaseOrderItemsRequest true "New line set"
// @Success 200 {object} services.PurchaseOrderWithItems
// @Failure 400 {object} ErrorResponse
// @Router /purchase-orders/{order_id}/items [put]
func (h *PurchaseOrderHandler) UpdatePurchaseOrderItems(c *gin.Context) {
	id, ok := parseUUIDParam(c, "order_id")
	if !ok {
		return
	}
	var req UpdatePurchaseOrderItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	order, err := h.common.PurchaseOrderService.UpdatePurchaseOrderItems(c.Request.Context(), middleware.GetOrganizationID(c), id, toLineInputs(req.Items))
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, order)
}

// UpdatePurchaseOrderStatus godoc
// @Summary Update a purchase order's status
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param order_id path string true "Purchase order ID"
// @Param status body UpdateStatusRequest true "Target status"
// @Success 200 {object} db.PurchaseOrder
// @Failure 409 {object} ErrorResponse
// @Router /purchase-orders/{order_id}/status [put]
func (h *PurchaseOrderHandler) UpdatePurchaseOrderStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "order_id")
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	order, err := h.common.PurchaseOrderService.UpdatePurchaseOrderStatus(c.Request.Context(), middleware.GetOrganizationID(c), id, req.Status)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, order)
}

// ConvertPurchaseOrder godoc
// @Summary Bill a purchase order, fully or line by line
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param order_id path string true "Purchase order ID"
// @Param conversion body ConvertRequest false "Lines to bill; omit for everything remaining"
// @Success 201 {object} services.InvoiceWithItems
// @Failure 409 {object} ErrorResponse
// @Router /purchase-orders/{order_id}/bill [post]
func (h *PurchaseOrderHandler) ConvertPurchaseOrder(c *gin.Context) {
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

	bill, err := h.common.ConversionService.ConvertPurchaseOrderToBill(c.Request.Context(), middleware.GetOrganizationID(c), id, toConversionLines(req.Lines))
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusCreated, bill)
}
