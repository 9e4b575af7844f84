package db

import (
	"context"

	"github.com/google/uuid"
)

// Querier is the full query surface. Services depend on this interface (or on
// Store when they need transactions) so tests can substitute a generated mock.
type Querier interface {
	GetOrganization(ctx context.Context, id uuid.UUID) (Organization, error)
	CreateOrganization(ctx context.Context, arg CreateOrganizationParams) (Organization, error)

	CreateCustomer(ctx context.Context, arg CreateCustomerParams) (Customer, error)
	GetCustomer(ctx context.Context, arg GetCustomerParams) (Customer, error)
	ListCustomers(ctx context.Context, organizationID uuid.UUID) ([]Customer, error)
	UpdateCustomer(ctx context.Context, arg UpdateCustomerParams) (Customer, error)
	ArchiveCustomer(ctx context.Context, arg ArchiveCustomerParams) error

	CreateSupplier(ctx context.Context, arg CreateSupplierParams) (Supplier, error)
	GetSupplier(ctx context.Context, arg GetSupplierParams) (Supplier, error)
	ListSuppliers(ctx context.Context, organizationID uuid.UUID) ([]Supplier, error)
	UpdateSupplier(ctx context.Context, arg UpdateSupplierParams) (Supplier, error)
	ArchiveSupplier(ctx context.Context, arg ArchiveSupplierParams) error

	CreateFarm(ctx context.Context, arg CreateFarmParams) (Farm, error)
	GetFarm(ctx context.Context, arg GetFarmParams) (Farm, error)
	ListFarms(ctx context.Context, organizationID uuid.UUID) ([]Farm, error)
	CreateParcel(ctx context.Context, arg CreateParcelParams) (Parcel, error)
	ListParcels(ctx context.Context, arg ListParcelsParams) ([]Parcel, error)

	CreateTax(ctx context.Context, arg CreateTaxParams) (Tax, error)
	GetTax(ctx context.Context, arg GetTaxParams) (Tax, error)
	GetTaxesByIDs(ctx context.Context, arg GetTaxesByIDsParams) ([]Tax, error)
	ListTaxes(ctx context.Context, organizationID uuid.UUID) ([]Tax, error)
	DeactivateTax(ctx context.Context, arg DeactivateTaxParams) error

	NextDocumentNumber(ctx context.Context, arg NextDocumentNumberParams) (int32, error)

	CreateQuote(ctx context.Context, arg CreateQuoteParams) (Quote, error)
	CreateQuoteItem(ctx context.Context, arg CreateQuoteItemParams) (QuoteItem, error)
	GetQuote(ctx context.Context, arg GetQuoteParams) (Quote, error)
	GetQuoteItems(ctx context.Context, quoteID uuid.UUID) ([]QuoteItem, error)
	ListQuotes(ctx context.Context, arg ListQuotesParams) ([]Quote, error)
	UpdateQuoteStatus(ctx context.Context, arg UpdateQuoteStatusParams) (Quote, error)
	MarkQuoteConverted(ctx context.Context, arg MarkQuoteConvertedParams) (Quote, error)
	ExpireQuotes(ctx context.Context, arg ExpireQuotesParams) ([]uuid.UUID, error)

	CreateSalesOrder(ctx context.Context, arg CreateSalesOrderParams) (SalesOrder, error)
	CreateSalesOrderItem(ctx context.Context, arg CreateSalesOrderItemParams) (SalesOrderItem, error)
	GetSalesOrder(ctx context.Context, arg GetSalesOrderParams) (SalesOrder, error)
	GetSalesOrderItems(ctx context.Context, salesOrderID uuid.UUID) ([]SalesOrderItem, error)
	ListSalesOrders(ctx context.Context, arg ListSalesOrdersParams) ([]SalesOrder, error)
	UpdateSalesOrderStatus(ctx context.Context, arg UpdateSalesOrderStatusParams) (SalesOrder, error)
	ApplySalesOrderConversion(ctx context.Context, arg ApplySalesOrderConversionParams) (SalesOrder, error)
	SetSalesOrderItemInvoicedQuantity(ctx context.Context, arg SetSalesOrderItemInvoicedQuantityParams) error

	CreatePurchaseOrder(ctx context.Context, arg CreatePurchaseOrderParams) (PurchaseOrder, error)
	CreatePurchaseOrderItem(ctx context.Context, arg CreatePurchaseOrderItemParams) (PurchaseOrderItem, error)
	GetPurchaseOrder(ctx context.Context, arg GetPurchaseOrderParams) (PurchaseOrder, error)
	GetPurchaseOrderItems(ctx context.Context, purchaseOrderID uuid.UUID) ([]PurchaseOrderItem, error)
	ListPurchaseOrders(ctx context.Context, arg ListPurchaseOrdersParams) ([]PurchaseOrder, error)
	UpdatePurchaseOrderStatus(ctx context.Context, arg UpdatePurchaseOrderStatusParams) (PurchaseOrder, error)
	UpdatePurchaseOrderTotals(ctx context.Context, arg UpdatePurchaseOrderTotalsParams) (PurchaseOrder, error)
	DeletePurchaseOrderItems(ctx context.Context, purchaseOrderID uuid.UUID) error
	ApplyPurchaseOrderConversion(ctx context.Context, arg ApplyPurchaseOrderConversionParams) (PurchaseOrder, error)
	SetPurchaseOrderItemBilledQuantity(ctx context.Context, arg SetPurchaseOrderItemBilledQuantityParams) error

	CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error)
	CreateInvoiceItem(ctx context.Context, arg CreateInvoiceItemParams) (InvoiceItem, error)
	GetInvoice(ctx context.Context, arg GetInvoiceParams) (Invoice, error)
	GetInvoiceItems(ctx context.Context, invoiceID uuid.UUID) ([]InvoiceItem, error)
	ListInvoices(ctx context.Context, arg ListInvoicesParams) ([]Invoice, error)
	ListInvoicesByIDs(ctx context.Context, arg ListInvoicesByIDsParams) ([]Invoice, error)
	ListOpenInvoices(ctx context.Context, arg ListOpenInvoicesParams) ([]Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, arg UpdateInvoiceStatusParams) (Invoice, error)
	ApplyInvoiceAllocation(ctx context.Context, arg ApplyInvoiceAllocationParams) (Invoice, error)
	MarkInvoicesOverdue(ctx context.Context, arg MarkInvoicesOverdueParams) ([]uuid.UUID, error)

	CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error)
	GetPayment(ctx context.Context, arg GetPaymentParams) (Payment, error)
	ListPayments(ctx context.Context, arg ListPaymentsParams) ([]Payment, error)
	ApplyPaymentAllocation(ctx context.Context, arg ApplyPaymentAllocationParams) (Payment, error)
	CancelPayment(ctx context.Context, arg CancelPaymentParams) (Payment, error)
	CreatePaymentAllocation(ctx context.Context, arg CreatePaymentAllocationParams) (PaymentAllocation, error)
	GetPaymentAllocations(ctx context.Context, paymentID uuid.UUID) ([]PaymentAllocation, error)
}

var _ Querier = (*Queries)(nil)
