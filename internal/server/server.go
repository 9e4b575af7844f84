package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	awsclient "github.com/agroflow/agroflow-api/internal/client/aws"
	"github.com/agroflow/agroflow-api/internal/db"
	"github.com/agroflow/agroflow-api/internal/handlers"
	"github.com/agroflow/agroflow-api/internal/interfaces"
	"github.com/agroflow/agroflow-api/internal/logger"
	"github.com/agroflow/agroflow-api/internal/middleware"
	"github.com/agroflow/agroflow-api/internal/services"
)

var (
	healthHandler        *handlers.HealthHandler
	customerHandler      *handlers.CustomerHandler
	supplierHandler      *handlers.SupplierHandler
	farmHandler          *handlers.FarmHandler
	taxHandler           *handlers.TaxHandler
	quoteHandler         *handlers.QuoteHandler
	salesOrderHandler    *handlers.SalesOrderHandler
	purchaseOrderHandler *handlers.PurchaseOrderHandler
	invoiceHandler       *handlers.InvoiceHandler
	paymentHandler       *handlers.PaymentHandler
	opsHandler           *handlers.OpsHandler

	// Database
	dbQueries *db.Queries

	commonServices *handlers.CommonServices
)

func InitializeHandlers() {
	// Load environment variables from .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = "local"
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}

	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Minute * 30
	poolConfig.MaxConnIdleTime = time.Minute * 15

	dbpool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool with config", zap.Error(err))
	}

	store := db.NewStore(dbpool)
	dbQueries = db.New(dbpool)

	// Document events go to SQS when a queue is configured. A missing queue
	// URL disables publishing rather than blocking startup.
	var events interfaces.EventPublisher
	if queueURL := os.Getenv("EVENT_QUEUE_URL"); queueURL != "" {
		publisher, err := awsclient.NewSQSEventPublisher(ctx, queueURL)
		if err != nil {
			logger.Fatal("Unable to create SQS event publisher", zap.Error(err))
		}
		events = publisher
	} else {
		logger.Warn("EVENT_QUEUE_URL not set, document events will not be published")
	}

	resendAPIKey := os.Getenv("RESEND_API_KEY")
	if resendAPIKey == "" {
		logger.Warn("RESEND_API_KEY not set, email functionality will be disabled")
	}
	fromEmail := os.Getenv("EMAIL_FROM_ADDRESS")
	if fromEmail == "" {
		fromEmail = "noreply@agroflow.app"
	}
	fromName := os.Getenv("EMAIL_FROM_NAME")
	if fromName == "" {
		fromName = "AgroFlow"
	}

	var emails services.DocumentEmailer
	if resendAPIKey != "" {
		emails = services.NewEmailService(resendAPIKey, fromEmail, fromName, logger.Log)
	}

	calculator := services.NewTaxCalculator(dbQueries)
	ledger := services.NewJournalLedger()

	commonServices = handlers.NewCommonServices(
		services.NewCustomerService(dbQueries),
		services.NewSupplierService(dbQueries),
		services.NewFarmService(dbQueries),
		services.NewTaxRateService(dbQueries),
		services.NewQuoteService(store, calculator, events, emails),
		services.NewSalesOrderService(store, calculator, events),
		services.NewPurchaseOrderService(store, calculator, events),
		services.NewInvoiceService(store, calculator, events, emails),
		services.NewPaymentService(store),
		services.NewConversionService(store, calculator, ledger, events),
		services.NewAllocationService(store, ledger, events),
	)

	healthHandler = handlers.NewHealthHandler()
	customerHandler = handlers.NewCustomerHandler(commonServices)
	supplierHandler = handlers.NewSupplierHandler(commonServices)
	farmHandler = handlers.NewFarmHandler(commonServices)
	taxHandler = handlers.NewTaxHandler(commonServices)
	quoteHandler = handlers.NewQuoteHandler(commonServices)
	salesOrderHandler = handlers.NewSalesOrderHandler(commonServices)
	purchaseOrderHandler = handlers.NewPurchaseOrderHandler(commonServices)
	invoiceHandler = handlers.NewInvoiceHandler(commonServices)
	paymentHandler = handlers.NewPaymentHandler(commonServices)
	opsHandler = handlers.NewOpsHandler(commonServices)
}

func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())

	// Correlation ID first so every later log line can carry it
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health for raw lambda url check
	router.GET("/:stage/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	router.GET("/health", healthHandler.Health)

	// API v1 routes, all scoped to the calling organization
	v1 := router.Group("/api/v1")
	v1.Use(middleware.OrganizationScopeMiddleware(dbQueries))
	{
		customers := v1.Group("/customers")
		{
			customers.GET("", customerHandler.ListCustomers)
			customers.POST("", customerHandler.CreateCustomer)
			customers.GET("/:customer_id", customerHandler.GetCustomer)
			customers.PUT("/:customer_id", customerHandler.UpdateCustomer)
			customers.DELETE("/:customer_id", customerHandler.ArchiveCustomer)
		}

		suppliers := v1.Group("/suppliers")
		{
			suppliers.GET("", supplierHandler.ListSuppliers)
			suppliers.POST("", supplierHandler.CreateSupplier)
			suppliers.GET("/:supplier_id", supplierHandler.GetSupplier)
			suppliers.PUT("/:supplier_id", supplierHandler.UpdateSupplier)
			suppliers.DELETE("/:supplier_id", supplierHandler.ArchiveSupplier)
		}

		farms := v1.Group("/farms")
		{
			farms.GET("", farmHandler.ListFarms)
			farms.POST("", farmHandler.CreateFarm)
			farms.GET("/:farm_id", farmHandler.GetFarm)
			farms.GET("/:farm_id/parcels", farmHandler.ListParcels)
			farms.POST("/:farm_id/parcels", farmHandler.CreateParcel)
		}

		taxes := v1.Group("/tax-rates")
		{
			taxes.GET("", taxHandler.ListTaxRates)
			taxes.POST("", taxHandler.CreateTaxRate)
			taxes.GET("/:tax_id", taxHandler.GetTaxRate)
			taxes.DELETE("/:tax_id", taxHandler.DeactivateTaxRate)
		}

		quotes := v1.Group("/quotes")
		{
			quotes.GET("", quoteHandler.ListQuotes)
			quotes.POST("", quoteHandler.CreateQuote)
			quotes.GET("/:quote_id", quoteHandler.GetQuote)
			quotes.PATCH("/:quote_id/status", quoteHandler.UpdateQuoteStatus)
			quotes.POST("/:quote_id/send", quoteHandler.SendQuote)
			quotes.POST("/:quote_id/convert", middleware.RequirePlan("basic"), quoteHandler.ConvertQuote)
		}

		salesOrders := v1.Group("/sales-orders")
		{
			salesOrders.GET("", salesOrderHandler.ListSalesOrders)
			salesOrders.POST("", salesOrderHandler.CreateSalesOrder)
			salesOrders.GET("/:order_id", salesOrderHandler.GetSalesOrder)
			salesOrders.PATCH("/:order_id/status", salesOrderHandler.UpdateSalesOrderStatus)
			salesOrders.POST("/:order_id/invoice", middleware.RequirePlan("basic"), salesOrderHandler.ConvertSalesOrder)
		}

		purchaseOrders := v1.Group("/purchase-orders")
		{
			purchaseOrders.GET("", purchaseOrderHandler.ListPurchaseOrders)
			purchaseOrders.POST("", purchaseOrderHandler.CreatePurchaseOrder)
			purchaseOrders.GET("/:order_id", purchaseOrderHandler.GetPurchaseOrder)
			purchaseOrders.PUT("/:order_id/items", purchaseOrderHandler.UpdatePurchaseOrderItems)
			purchaseOrders.PATCH("/:order_id/status", purchaseOrderHandler.UpdatePurchaseOrderStatus)
			purchaseOrders.POST("/:order_id/bill", middleware.RequirePlan("basic"), purchaseOrderHandler.ConvertPurchaseOrder)
		}

		invoices := v1.Group("/invoices")
		{
			invoices.GET("", invoiceHandler.ListInvoices)
			invoices.POST("", invoiceHandler.CreateInvoice)
			invoices.GET("/:invoice_id", invoiceHandler.GetInvoice)
			invoices.PATCH("/:invoice_id/status", invoiceHandler.UpdateInvoiceStatus)
			invoices.POST("/:invoice_id/send", invoiceHandler.SendInvoice)
		}

		payments := v1.Group("/payments")
		{
			payments.GET("", paymentHandler.ListPayments)
			payments.POST("", paymentHandler.CreatePayment)
			payments.GET("/:payment_id", paymentHandler.GetPayment)
			payments.DELETE("/:payment_id", paymentHandler.CancelPayment)
			payments.GET("/:payment_id/allocations", paymentHandler.GetPaymentAllocations)
			payments.POST("/:payment_id/allocate", middleware.RequirePlan("basic"), paymentHandler.AllocatePayment)
			payments.GET("/:payment_id/suggestions", middleware.RequirePlan("basic"), paymentHandler.SuggestAllocations)
		}

		ops := v1.Group("/ops")
		ops.Use(middleware.RequirePlan("basic"))
		{
			ops.POST("/expire-quotes", opsHandler.ExpireQuotes)
			ops.POST("/mark-overdue", opsHandler.MarkInvoicesOverdue)
		}
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Organization-ID", "X-Correlation-ID"}
	corsConfig.ExposeHeaders = []string{"X-Correlation-ID"}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
