package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agroflow/agroflow-api/internal/middleware"
	"github.com/agroflow/agroflow-api/internal/services"
)

// SupplierHandler handles supplier CRUD.
type SupplierHandler struct {
	common *CommonServices
}

func NewSupplierHandler(common *CommonServices) *SupplierHandler {
	return &SupplierHandler{common: common}
}

type SupplierRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	TaxNumber *string `json:"tax_number"`
}

// CreateSupplier godoc
// @Summary Create a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplier body SupplierRequest true "Supplier"
// @Success 201 {object} db.Supplier
// @Failure 400 {object} ErrorResponse
// @Router /suppliers [post]
func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	supplier, err := h.common.SupplierService.CreateSupplier(c.Request.Context(), middleware.GetOrganizationID(c), services.SupplierParams{
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
	sendSuccess(c, http.StatusCreated, supplier)
}

// GetSupplier godoc
// @Summary Get a supplier
// @Tags suppliers
// @Produce json
// @Param supplier_id path string true "Supplier ID"
// @Success 200 {object} db.Supplier
// @Failure 404 {object} ErrorResponse
// @Router /suppliers/{supplier_id} [get]
func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	id, ok := parseUUIDParam(c, "supplier_id")
	if !ok {
		return
	}
	supplier, err := h.common.SupplierService.GetSupplier(c.Request.Context(), middleware.GetOrganizationID(c), id)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, supplier)
}

// ListSuppliers godoc
// @Summary List suppliers
// @Tags suppliers
// @Produce json
// @Success 200 {array} db.Supplier
// @Router /suppliers [get]
func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.common.SupplierService.ListSuppliers(c.Request.Context(), middleware.GetOrganizationID(c))
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, suppliers)
}

// UpdateSupplier godoc
// @Summary Update a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplier_id path string true "Supplier ID"
// @Param supplier body SupplierRequest true "Supplier"
// @Success 200 {object} db.Supplier
// @Failure 404 {object} ErrorResponse
// @Router /suppliers/{supplier_id} [put]
func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	id, ok := parseUUIDParam(c, "supplier_id")
	if !ok {
		return
	}
	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	supplier, err := h.common.SupplierService.UpdateSupplier(c.Request.Context(), middleware.GetOrganizationID(c), id, services.SupplierParams{
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
	sendSuccess(c, http.StatusOK, supplier)
}

// ArchiveSupplier godoc
// @Summary Archive a supplier
// @Tags suppliers
// @Produce json
// @Param supplier_id path string true "Supplier ID"
// @Success 200 {object} SuccessResponse
// @Router /suppliers/{supplier_id} [delete]
func (h *SupplierHandler) ArchiveSupplier(c *gin.Context) {
	id, ok := parseUUIDParam(c, "supplier_id")
	if !ok {
		return
	}
	if err := h.common.SupplierService.ArchiveSupplier(c.Request.Context(), middleware.GetOrganizationID(c), id); err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, SuccessResponse{Message: "supplier archived"})
}
