package services

// DocumentType identifies which lifecycle table applies to a document.
type DocumentType string

const (
	DocumentTypeQuote         DocumentType = "quote"
	DocumentTypeSalesOrder    DocumentType = "sales_order"
	DocumentTypePurchaseOrder DocumentType = "purchase_order"
	DocumentTypeInvoice       DocumentType = "invoice"
)

// Quote statuses.
const (
	QuoteStatusDraft     = "draft"
	QuoteStatusSent      = "sent"
	QuoteStatusAccepted  = "accepted"
	QuoteStatusRejected  = "rejected"
	QuoteStatusExpired   = "expired"
	QuoteStatusConverted = "converted"
	QuoteStatusCancelled = "cancelled"
)

// Sales order statuses.
const (
	SalesOrderStatusDraft              = "draft"
	SalesOrderStatusConfirmed          = "confirmed"
	SalesOrderStatusProcessing         = "processing"
	SalesOrderStatusPartiallyDelivered = "partially_delivered"
	SalesOrderStatusDelivered          = "delivered"
	SalesOrderStatusPartiallyInvoiced  = "partially_invoiced"
	SalesOrderStatusInvoiced           = "invoiced"
	SalesOrderStatusCancelled          = "cancelled"
)

// Purchase order statuses.
const (
	PurchaseOrderStatusDraft             = "draft"
	PurchaseOrderStatusSubmitted         = "submitted"
	PurchaseOrderStatusConfirmed         = "confirmed"
	PurchaseOrderStatusPartiallyReceived = "partially_received"
	PurchaseOrderStatusReceived          = "received"
	PurchaseOrderStatusPartiallyBilled   = "partially_billed"
	PurchaseOrderStatusBilled            = "billed"
	PurchaseOrderStatusCancelled         = "cancelled"
)

// Invoice statuses.
const (
	InvoiceStatusDraft         = "draft"
	InvoiceStatusSubmitted     = "submitted"
	InvoiceStatusPaid          = "paid"
	InvoiceStatusPartiallyPaid = "partially_paid"
	InvoiceStatusOverdue       = "overdue"
	InvoiceStatusCancelled     = "cancelled"
)

// transitions lists the caller-requestable moves per document type. A status
// missing from the inner map is terminal.
var transitions = map[DocumentType]map[string][]string{
	DocumentTypeQuote: {
		QuoteStatusDraft: {QuoteStatusSent, QuoteStatusCancelled},
		QuoteStatusSent:  {QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusCancelled},
	},
	DocumentTypeSalesOrder: {
		SalesOrderStatusDraft:              {SalesOrderStatusConfirmed, SalesOrderStatusCancelled},
		SalesOrderStatusConfirmed:          {SalesOrderStatusProcessing, SalesOrderStatusCancelled},
		SalesOrderStatusProcessing:         {SalesOrderStatusPartiallyDelivered, SalesOrderStatusDelivered, SalesOrderStatusCancelled},
		SalesOrderStatusPartiallyDelivered: {SalesOrderStatusDelivered, SalesOrderStatusCancelled},
	},
	DocumentTypePurchaseOrder: {
		PurchaseOrderStatusDraft:             {PurchaseOrderStatusSubmitted, PurchaseOrderStatusCancelled},
		PurchaseOrderStatusSubmitted:         {PurchaseOrderStatusConfirmed, PurchaseOrderStatusCancelled},
		PurchaseOrderStatusConfirmed:         {PurchaseOrderStatusPartiallyReceived, PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled},
		PurchaseOrderStatusPartiallyReceived: {PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled},
	},
	DocumentTypeInvoice: {
		InvoiceStatusDraft:     {InvoiceStatusSubmitted, InvoiceStatusCancelled},
		InvoiceStatusSubmitted: {InvoiceStatusCancelled},
	},
}

// derivedOnly statuses are set by the system (conversions, allocations, the
// expiry and overdue sweeps) and can never be requested directly.
var derivedOnly = map[DocumentType]map[string]bool{
	DocumentTypeQuote: {
		QuoteStatusExpired:   true,
		QuoteStatusConverted: true,
	},
	DocumentTypeSalesOrder: {
		SalesOrderStatusPartiallyInvoiced: true,
		SalesOrderStatusInvoiced:          true,
	},
	DocumentTypePurchaseOrder: {
		PurchaseOrderStatusPartiallyBilled: true,
		PurchaseOrderStatusBilled:          true,
	},
	DocumentTypeInvoice: {
		InvoiceStatusPaid:          true,
		InvoiceStatusPartiallyPaid: true,
		InvoiceStatusOverdue:       true,
	},
}

// CanTransition reports whether a caller may move a document from one status
// to another.
func CanTransition(docType DocumentType, from, to string) bool {
	if derivedOnly[docType][to] {
		return false
	}
	for _, allowed := range transitions[docType][from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// CheckTransition validates a requested status change and returns a typed
// error when the lifecycle does not allow it.
func CheckTransition(docType DocumentType, from, to string) error {
	if !CanTransition(docType, from, to) {
		return &InvalidTransitionError{DocumentType: string(docType), From: from, To: to}
	}
	return nil
}

// IsTerminal reports whether no caller-requestable transition leaves the
// given status.
func IsTerminal(docType DocumentType, status string) bool {
	return len(transitions[docType][status]) == 0
}
