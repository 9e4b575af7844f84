package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agroflow/agroflow-api/internal/logger"
	"github.com/agroflow/agroflow-api/internal/services"
)

// CommonServices holds the service layer shared across handlers.
type CommonServices struct {
	CustomerService      *services.CustomerService
	SupplierService      *services.SupplierService
	FarmService          *services.FarmService
	TaxRateService       *services.TaxRateService
	QuoteService         *services.QuoteService
	SalesOrderService    *services.SalesOrderService
	PurchaseOrderService *services.PurchaseOrderService
	InvoiceService       *services.InvoiceService
	PaymentService       *services.PaymentService
	ConversionService    *services.ConversionService
	AllocationService    *services.AllocationService
	logger               *zap.Logger
}

func NewCommonServices(
	customers *services.CustomerService,
	suppliers *services.SupplierService,
	farms *services.FarmService,
	taxRates *services.TaxRateService,
	quotes *services.QuoteService,
	salesOrders *services.SalesOrderService,
	purchaseOrders *services.PurchaseOrderService,
	invoices *services.InvoiceService,
	payments *services.PaymentService,
	conversions *services.ConversionService,
	allocations *services.AllocationService,
) *CommonServices {
	return &CommonServices{
		CustomerService:      customers,
		SupplierService:      suppliers,
		FarmService:          farms,
		TaxRateService:       taxRates,
		QuoteService:         quotes,
		SalesOrderService:    salesOrders,
		PurchaseOrderService: purchaseOrders,
		InvoiceService:       invoices,
		PaymentService:       payments,
		ConversionService:    conversions,
		AllocationService:    allocations,
		logger:               logger.Log,
	}
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the standard message payload.
type SuccessResponse struct {
	Message string `json:"message"`
}

func sendError(c *gin.Context, status int, message string, err error) {
	if err != nil && logger.Log != nil {
		logger.Log.Error(message,
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}
	c.JSON(status, ErrorResponse{Error: message})
}

func sendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// sendServiceError maps the service error taxonomy onto HTTP statuses:
// validation problems are 400, missing resources 404 and lifecycle or
// concurrency conflicts 409. Anything else is a 500.
func sendServiceError(c *gin.Context, err error) {
	var (
		validationErr *services.ValidationError
		notFoundErr   *services.NotFoundError
		transitionErr *services.InvalidTransitionError
		convertedErr  *services.AlreadyFullyConvertedError
		overAllocErr  *services.OverAllocationError
	)
	switch {
	case errors.As(err, &validationErr):
		sendError(c, http.StatusBadRequest, validationErr.Error(), nil)
	case errors.As(err, &notFoundErr):
		sendError(c, http.StatusNotFound, notFoundErr.Error(), nil)
	case errors.As(err, &transitionErr):
		sendError(c, http.StatusConflict, transitionErr.Error(), nil)
	case errors.As(err, &convertedErr):
		sendError(c, http.StatusConflict, convertedErr.Error(), nil)
	case errors.As(err, &overAllocErr):
		sendError(c, http.StatusConflict, overAllocErr.Error(), nil)
	case errors.Is(err, services.ErrStaleVersion):
		sendError(c, http.StatusConflict, services.ErrStaleVersion.Error(), nil)
	default:
		sendError(c, http.StatusInternalServerError, "internal server error", err)
	}
}
