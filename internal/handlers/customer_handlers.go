package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agroflow/agroflow-api/internal/middleware"
	"github.com/agroflow/agroflow-api/internal/services"
)

// CustomerHandler handles customer CRUD.
type CustomerHandler struct {
	common *CommonServices
}

func NewCustomerHandler(common *CommonServices) *CustomerHandler {
	return &CustomerHandler{common: common}
}

type CustomerRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	TaxNumber *string `json:"tax_number"`
}

// CreateCustomer godoc
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body CustomerRequest true "Customer"
// @Success 201 {object} db.Customer
// @Failure 400 {object} ErrorResponse
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	customer, err := h.common.CustomerService.CreateCustomer(c.Request.Context(), middleware.GetOrganizationID(c), services.CustomerParams{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		TaxNumber: req.TaxNumber,
	})
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusCreated, customer)
}

// GetCustomer godoc
// @Summary Get a customer
// @Tags customers
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Success 200 {object} db.Customer
// @Failure 404 {object} ErrorResponse
// @Router /customers/{customer_id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := parseUUIDParam(c, "customer_id")
	if !ok {
		return
	}
	customer, err := h.common.CustomerService.GetCustomer(c.Request.Context(), middleware.GetOrganizationID(c), id)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, customer)
}

// ListCustomers godoc
// @Summary List customers
// @Tags customers
// @Produce json
// @Success 200 {array} db.Customer
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.common.CustomerService.ListCustomers(c.Request.Context(), middleware.GetOrganizationID(c))
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, customers)
}

// UpdateCustomer godoc
// @Summary Update a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Param customer body CustomerRequest true "Customer"
// @Success 200 {object} db.Customer
// @Failure 404 {object} ErrorResponse
// @Router /customers/{customer_id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := parseUUIDParam(c, "customer_id")
	if !ok {
		return
	}
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	customer, err := h.common.CustomerService.UpdateCustomer(c.Request.Context(), middleware.GetOrganizationID(c), id, services.CustomerParams{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		TaxNumber: req.TaxNumber,
	})
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, customer)
}

// ArchiveCustomer godoc
// @Summary Archive a customer
// @Tags customers
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Success 200 {object} SuccessResponse
// @Router /customers/{customer_id} [delete]
func (h *CustomerHandler) ArchiveCustomer(c *gin.Context) {
	id, ok := parseUUIDParam(c, "customer_id")
	if !ok {
		return
	}
	if err := h.common.CustomerService.ArchiveCustomer(c.Request.Context(), middleware.GetOrganizationID(c), id); err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, SuccessResponse{Message: "customer archived"})
}
