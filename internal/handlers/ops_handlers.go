package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agroflow/agroflow-api/internal/middleware"
)

// OpsHandler exposes the scheduled maintenance sweeps so they can be driven
// by an external scheduler hitting the API.
type OpsHandler struct {
	common *CommonServices
}

func NewOpsHandler(common *CommonServices) *OpsHandler {
	return &OpsHandler{common: common}
}

type SweepResponse struct {
	Updated int `json:"updated"`
}

// ExpireQuotes godoc
// @Summary Expire sent quotes whose expiry date has passed
// @Tags ops
// @Produce json
// @Success 200 {object} SweepResponse
// @Router /ops/expire-quotes [post]
func (h *OpsHandler) ExpireQuotes(c *gin.Context) {
	count, err := h.common.QuoteService.ExpireQuotes(c.Request.Context(), middleware.GetOrganizationID(c), time.Now())
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, SweepResponse{Updated: count})
}

// MarkInvoicesOverdue godoc
// @Summary Mark open invoices past their due date as overdue
// @Tags ops
// @Produce json
// @Success 200 {object} SweepResponse
// @Router /ops/mark-overdue [post]
func (h *OpsHandler) MarkInvoicesOverdue(c *gin.Context) {
	count, err := h.common.InvoiceService.MarkOverdue(c.Request.Context(), middleware.GetOrganizationID(c), time.Now())
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, SweepResponse{Updated: count})
}
