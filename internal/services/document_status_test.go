package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agroflow/agroflow-api/internal/services"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		docType services.DocumentType
		from    string
		to      string
		want    bool
	}{
		{"quote draft to sent", services.DocumentTypeQuote, services.QuoteStatusDraft, services.QuoteStatusSent, true},
		{"quote draft to cancelled", services.DocumentTypeQuote, services.QuoteStatusDraft, services.QuoteStatusCancelled, true},
		{"quote sent to accepted", services.DocumentTypeQuote, services.QuoteStatusSent, services.QuoteStatusAccepted, true},
		{"quote sent to rejected", services.DocumentTypeQuote, services.QuoteStatusSent, services.QuoteStatusRejected, true},
		{"quote draft cannot skip to accepted", services.DocumentTypeQuote, services.QuoteStatusDraft, services.QuoteStatusAccepted, false},
		{"quote cannot be expired by a caller", services.DocumentTypeQuote, services.QuoteStatusSent, services.QuoteStatusExpired, false},
		{"quote cannot be converted by a caller", services.DocumentTypeQuote, services.QuoteStatusAccepted, services.QuoteStatusConverted, false},
		{"quote accepted is caller-terminal", services.DocumentTypeQuote, services.QuoteStatusAccepted, services.QuoteStatusSent, false},

		{"sales order draft to confirmed", services.DocumentTypeSalesOrder, services.SalesOrderStatusDraft, services.SalesOrderStatusConfirmed, true},
		{"sales order confirmed to processing", services.DocumentTypeSalesOrder, services.SalesOrderStatusConfirmed, services.SalesOrderStatusProcessing, true},
		{"sales order processing to delivered", services.DocumentTypeSalesOrder, services.SalesOrderStatusProcessing, services.SalesOrderStatusDelivered, true},
		{"sales order partially delivered to delivered", services.DocumentTypeSalesOrder, services.SalesOrderStatusPartiallyDelivered, services.SalesOrderStatusDelivered, true},
		{"sales order cannot be invoiced by a caller", services.DocumentTypeSalesOrder, services.SalesOrderStatusDelivered, services.SalesOrderStatusInvoiced, false},
		{"sales order draft cannot skip to delivered", services.DocumentTypeSalesOrder, services.SalesOrderStatusDraft, services.SalesOrderStatusDelivered, false},

		{"purchase order draft to submitted", services.DocumentTypePurchaseOrder, services.PurchaseOrderStatusDraft, services.PurchaseOrderStatusSubmitted, true},
		{"purchase order submitted to confirmed", services.DocumentTypePurchaseOrder, services.PurchaseOrderStatusSubmitted, services.PurchaseOrderStatusConfirmed, true},
		{"purchase order confirmed to received", services.DocumentTypePurchaseOrder, services.PurchaseOrderStatusConfirmed, services.PurchaseOrderStatusReceived, true},
		{"purchase order cannot be billed by a caller", services.DocumentTypePurchaseOrder, services.PurchaseOrderStatusReceived, services.PurchaseOrderStatusBilled, false},

		{"invoice draft to submitted", services.DocumentTypeInvoice, services.InvoiceStatusDraft, services.InvoiceStatusSubmitted, true},
		{"invoice submitted to cancelled", services.DocumentTypeInvoice, services.InvoiceStatusSubmitted, services.InvoiceStatusCancelled, true},
		{"invoice cannot be paid by a caller", services.DocumentTypeInvoice, services.InvoiceStatusSubmitted, services.InvoiceStatusPaid, false},
		{"invoice cannot be marked overdue by a caller", services.DocumentTypeInvoice, services.InvoiceStatusSubmitted, services.InvoiceStatusOverdue, false},
		{"paid invoice is terminal", services.DocumentTypeInvoice, services.InvoiceStatusPaid, services.InvoiceStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.CanTransition(tt.docType, tt.from, tt.to))
		})
	}
}

func TestCheckTransition(t *testing.T) {
	err := services.CheckTransition(services.DocumentTypeQuote, services.QuoteStatusDraft, services.QuoteStatusAccepted)
	assert.Error(t, err)

	var transitionErr *services.InvalidTransitionError
	assert.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "quote", transitionErr.DocumentType)
	assert.Equal(t, services.QuoteStatusDraft, transitionErr.From)
	assert.Equal(t, services.QuoteStatusAccepted, transitionErr.To)

	assert.NoError(t, services.CheckTransition(services.DocumentTypeQuote, services.QuoteStatusDraft, services.QuoteStatusSent))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, services.IsTerminal(services.DocumentTypeQuote, services.QuoteStatusRejected))
	assert.True(t, services.IsTerminal(services.DocumentTypeQuote, services.QuoteStatusCancelled))
	assert.True(t, services.IsTerminal(services.DocumentTypeSalesOrder, services.SalesOrderStatusDelivered))
	assert.True(t, services.IsTerminal(services.DocumentTypeInvoice, services.InvoiceStatusPaid))
	assert.False(t, services.IsTerminal(services.DocumentTypeQuote, services.QuoteStatusDraft))
	assert.False(t, services.IsTerminal(services.DocumentTypeInvoice, services.InvoiceStatusSubmitted))
}
