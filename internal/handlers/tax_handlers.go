package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agroflow/agroflow-api/internal/middleware"
	"github.com/agroflow/agroflow-api/internal/services"
)

// TaxHandler handles tax rate configuration.
type TaxHandler struct {
	common *CommonServices
}

func NewTaxHandler(common *CommonServices) *TaxHandler {
	return &TaxHandler{common: common}
}

type TaxRateRequest struct {
	Name    string  `json:"name" binding:"required"`
	Rate    float64 `json:"rate"`
	TaxType string  `json:"tax_type" binding:"required"`
}

// CreateTaxRate godoc
// @Summary Create a tax rate
// @Tags taxes
// @Accept json
// @Produce json
// @Param tax body TaxRateRequest true "Tax rate"
// @Success 201 {object} db.Tax
// @Failure 400 {object} ErrorResponse
// @Router /taxes [post]
func (h *TaxHandler) CreateTaxRate(c *gin.Context) {
	var req TaxRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	tax, err := h.common.TaxRateService.CreateTaxRate(c.Request.Context(), middleware.GetOrganizationID(c), services.TaxRateParams{
		Name:    req.Name,
		Rate:    req.Rate,
		TaxType: req.TaxType,
	})
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusCreated, tax)
}

// GetTaxRate godoc
// @Summary Get a tax rate
// @Tags taxes
// @Produce json
// @Param tax_id path string true "Tax ID"
// @Success 200 {object} db.Tax
// @Router /taxes/{tax_id} [get]
func (h *TaxHandler) GetTaxRate(c *gin.Context) {
	id, ok := parseUUIDParam(c, "tax_id")
	if !ok {
		return
	}
	tax, err := h.common.TaxRateService.GetTaxRate(c.Request.Context(), middleware.GetOrganizationID(c), id)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, tax)
}

// ListTaxRates godoc
// @Summary List active tax rates
// @Tags taxes
// @Produce json
// @Success 200 {array} db.Tax
// @Router /taxes [get]
func (h *TaxHandler) ListTaxRates(c *gin.Context) {
	taxes, err := h.common.TaxRateService.ListTaxRates(c.Request.Context(), middleware.GetOrganizationID(c))
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, taxes)
}

// DeactivateTaxRate godoc
// @Summary Deactivate a tax rate
// @Tags taxes
// @Produce json
// @Param tax_id path string true "Tax ID"
// @Success 200 {object} SuccessResponse
// @Router /taxes/{tax_id} [delete]
func (h *TaxHandler) DeactivateTaxRate(c *gin.Context) {
	id, ok := parseUUIDParam(c, "tax_id")
	if !ok {
		return
	}
	if err := h.common.TaxRateService.DeactivateTaxRate(c.Request.Context(), middleware.GetOrganizationID(c), id); err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, SuccessResponse{Message: "tax rate deactivated"})
}
