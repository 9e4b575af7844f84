package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agroflow/agroflow-api/internal/db"
	"github.com/agroflow/agroflow-api/internal/interfaces"
	"github.com/agroflow/agroflow-api/internal/logger"
)

// InvoiceService manages standalone invoices and bills. Invoices produced
// from orders come out of the conversion engine; both kinds share the same
// lifecycle from submission onward.
type InvoiceService struct {
	store      db.Store
	calculator *TaxCalculator
	events     interfaces.EventPublisher
	emails     DocumentEmailer
}

func NewInvoiceService(store db.Store, calculator *TaxCalculator, events interfaces.EventPublisher, emails DocumentEmailer) *InvoiceService {
	return &InvoiceService{
		store:      store,
		calculator: calculator,
		events:     events,
		emails:     emails,
	}
}

type CreateInvoiceParams struct {
	InvoiceType string
	CustomerID  *uuid.UUID
	SupplierID  *uuid.UUID
	IssueDate   *time.Time
	DueDate     *time.Time
	Notes       *string
	Items       []LineInput
}

type InvoiceWithItems struct {
	Invoice db.Invoice
	Items   []db.InvoiceItem
}

// CreateInvoice creates a standalone invoice or bill that is not tied to an
// order. Sales invoices need a customer, purchase bills a supplier.
func (s *InvoiceService) CreateInvoice(ctx context.Context, organizationID uuid.UUID, params CreateInvoiceParams) (InvoiceWithItems, error) {
	prefix := numberPrefixInvoice
	switch params.InvoiceType {
	case TaxDirectionSales:
		if params.CustomerID == nil {
			return InvoiceWithItems{}, &ValidationError{Field: "customer_id", Message: "is required for sales invoices"}
		}
		if _, err := s.store.GetCustomer(ctx, db.GetCustomerParams{ID: *params.CustomerID, OrganizationID: organizationID}); err != nil {
			return InvoiceWithItems{}, noRowsAs(err, &NotFoundError{Resource: "customer", ID: params.CustomerID.String()})
		}
	case TaxDirectionPurchase:
		prefix = numberPrefixBill
		if params.SupplierID == nil {
			return InvoiceWithItems{}, &ValidationError{Field: "supplier_id", Message: "is required for purchase bills"}
		}
		if _, err := s.store.GetSupplier(ctx, db.GetSupplierParams{ID: *params.SupplierID, OrganizationID: organizationID}); err != nil {
			return InvoiceWithItems{}, noRowsAs(err, &NotFoundError{Resource: "supplier", ID: params.SupplierID.String()})
		}
	default:
		return InvoiceWithItems{}, &ValidationError{Field: "invoice_type", Message: "must be sales or purchase"}
	}

	totals, err := s.calculator.CalculateDocumentTotals(ctx, organizationID, params.InvoiceType, params.Items)
	if err != nil {
		return InvoiceWithItems{}, err
	}

	var result InvoiceWithItems
	err = s.store.ExecTx(ctx, func(q db.Querier) error {
		number, err := nextDocumentNumber(ctx, q, organizationID, prefix, time.Now())
		if err != nil {
			return err
		}

		invoice, err := q.CreateInvoice(ctx, db.CreateInvoiceParams{
			OrganizationID: organizationID,
			InvoiceType:    params.InvoiceType,
			CustomerID:     uuidPtrToPgtype(params.CustomerID),
			SupplierID:     uuidPtrToPgtype(params.SupplierID),
			InvoiceNumber:  number,
			IssueDate:      datePtrToPgtype(params.IssueDate),
			DueDate:        datePtrToPgtype(params.DueDate),
			Subtotal:       totals.Subtotal,
			TaxAmount:      totals.TaxAmount,
			Total:          totals.Total,
			Notes:          stringPtrToPgtype(params.Notes),
		})
		if err != nil {
			return fmt.Errorf("failed to create invoice: %w", err)
		}

		items := make([]db.InvoiceItem, 0, len(params.Items))
		for i, line := range params.Items {
			item, err := q.CreateInvoiceItem(ctx, db.CreateInvoiceItemParams{
				InvoiceID:   invoice.ID,
				Description: line.Description,
				Quantity:    line.Quantity,
				Rate:        line.UnitPrice,
				TaxID:       uuidPtrToPgtype(line.TaxID),
				LineTotal:   totals.Lines[i].Subtotal,
			})
			if err != nil {
				return fmt.Errorf("failed to create invoice item: %w", err)
			}
			items = append(items, item)
		}

		result = InvoiceWithItems{Invoice: invoice, Items: items}
		return nil
	})
	if err != nil {
		return InvoiceWithItems{}, err
	}

	s.publishEvent(ctx, result.Invoice, "invoice.created")
	return result, nil
}

func (s *InvoiceService) GetInvoice(ctx context.Context, organizationID, id uuid.UUID) (InvoiceWithItems, error) {
	invoice, err := s.store.GetInvoice(ctx, db.GetInvoiceParams{ID: id, OrganizationID: organizationID})
	if err != nil {
		return InvoiceWithItems{}, noRowsAs(err, &NotFoundError{Resource: "invoice", ID: id.String()})
	}
	items, err := s.store.GetInvoiceItems(ctx, invoice.ID)
	if err != nil {
		return InvoiceWithItems{}, fmt.Errorf("failed to load invoice items: %w", err)
	}
	return InvoiceWithItems{Invoice: invoice, Items: items}, nil
}

func (s *InvoiceService) ListInvoices(ctx context.Context, organizationID uuid.UUID, invoiceType, status *string) ([]db.Invoice, error) {
	invoices, err := s.store.ListInvoices(ctx, db.ListInvoicesParams{
		OrganizationID: organizationID,
		InvoiceType:    stringPtrToPgtype(invoiceType),
		Status:         stringPtrToPgtype(status),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

// UpdateInvoiceStatus applies a caller-requested transition. Payment statuses
// are derived by the allocation engine, overdue by the sweep.
func (s *InvoiceService) UpdateInvoiceStatus(ctx context.Context, organizationID, id uuid.UUID, toStatus string) (db.Invoice, error) {
	invoice, err := s.store.GetInvoice(ctx, db.GetInvoiceParams{ID: id, OrganizationID: organizationID})
	if err != nil {
		return db.Invoice{}, noRowsAs(err, &NotFoundError{Resource: "invoice", ID: id.String()})
	}

	if toStatus == InvoiceStatusCancelled && invoice.AmountPaid > amountTolerance {
		return db.Invoice{}, &ValidationError{Field: "status", Message: "cannot cancel an invoice with allocated payments"}
	}
	if err := CheckTransition(DocumentTypeInvoice, invoice.Status, toStatus); err != nil {
		return db.Invoice{}, err
	}

	updated, err := s.store.UpdateInvoiceStatus(ctx, db.UpdateInvoiceStatusParams{
		ID:             id,
		OrganizationID: organizationID,
		FromStatus:     invoice.Status,
		ToStatus:       toStatus,
	})
	if err != nil {
		return db.Invoice{}, noRowsAs(err, ErrStaleVersion)
	}

	s.publishEvent(ctx, updated, "invoice."+toStatus)
	return updated, nil
}

// SendInvoice emails a sales invoice to its customer. The invoice must have
// left draft.
func (s *InvoiceService) SendInvoice(ctx context.Context, organizationID, id uuid.UUID) (db.Invoice, error) {
	invoice, err := s.store.GetInvoice(ctx, db.GetInvoiceParams{ID: id, OrganizationID: organizationID})
	if err != nil {
		return db.Invoice{}, noRowsAs(err, &NotFoundError{Resource: "invoice", ID: id.String()})
	}
	if invoice.InvoiceType != TaxDirectionSales {
		return db.Invoice{}, &ValidationError{Field: "invoice_type", Message: "only sales invoices can be emailed"}
	}
	if invoice.Status == InvoiceStatusDraft {
		return db.Invoice{}, &ValidationError{Field: "status", Message: "submit the invoice before sending it"}
	}
	if s.emails == nil {
		return db.Invoice{}, &ValidationError{Field: "email", Message: "email delivery is not configured"}
	}

	customer, err := s.store.GetCustomer(ctx, db.GetCustomerParams{ID: pgtypeToUUID(invoice.CustomerID), OrganizationID: organizationID})
	if err != nil {
		return db.Invoice{}, noRowsAs(err, &NotFoundError{Resource: "customer", ID: invoice.CustomerID.String()})
	}
	if !customer.Email.Valid || customer.Email.String == "" {
		return db.Invoice{}, &ValidationError{Field: "customer", Message: "has no email address on file"}
	}

	org, err := s.store.GetOrganization(ctx, organizationID)
	if err != nil {
		return db.Invoice{}, fmt.Errorf("failed to load organization: %w", err)
	}

	data := DocumentEmailData{
		RecipientName:  customer.Name,
		DocumentNumber: invoice.InvoiceNumber,
		DocumentKind:   "invoice",
		Total:          fmt.Sprintf("%.2f", invoice.Total),
		Currency:       org.Currency,
		SenderName:     org.Name,
	}
	if invoice.DueDate.Valid {
		data.DueDate = invoice.DueDate.Time.Format("2006-01-02")
	}
	subject := fmt.Sprintf("Invoice %s from %s", invoice.InvoiceNumber, org.Name)
	if _, err := s.emails.SendDocumentEmail(ctx, customer.Email.String, subject, data); err != nil {
		return db.Invoice{}, fmt.Errorf("failed to email invoice: %w", err)
	}
	return invoice, nil
}

// MarkOverdue moves the organization's open invoices past their due date to
// overdue. Invoices already paid to within the rounding tolerance are left
// alone. It is meant to run from a daily scheduler alongside the quote expiry
// sweep.
func (s *InvoiceService) MarkOverdue(ctx context.Context, organizationID uuid.UUID, now time.Time) (int, error) {
	ids, err := s.store.MarkInvoicesOverdue(ctx, db.MarkInvoicesOverdueParams{
		OrganizationID: organizationID,
		Before:         dateToPgtype(now),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to mark invoices overdue: %w", err)
	}
	if len(ids) > 0 {
		logger.Log.Info("Marked invoices overdue",
			zap.String("organizationId", organizationID.String()),
			zap.Int("count", len(ids)))
	}
	return len(ids), nil
}

func (s *InvoiceService) publishEvent(ctx context.Context, invoice db.Invoice, eventType string) {
	if s.events == nil {
		return
	}
	err := s.events.PublishDocumentEvent(ctx, interfaces.DocumentEvent{
		OrganizationID: invoice.OrganizationID,
		DocumentType:   string(DocumentTypeInvoice),
		DocumentID:     invoice.ID,
		EventType:      eventType,
		OccurredAt:     time.Now(),
	})
	if err != nil {
		logger.Log.Warn("Failed to publish invoice event",
			zap.String("invoiceId", invoice.ID.String()),
			zap.String("eventType", eventType),
			zap.Error(err))
	}
}
