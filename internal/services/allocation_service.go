package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agroflow/agroflow-api/internal/db"
	"github.com/agroflow/agroflow-api/internal/interfaces"
	"github.com/agroflow/agroflow-api/internal/logger"
)

// AllocationService matches payments against invoices. An allocation never
// exceeds the payment's unallocated amount or an invoice's outstanding
// balance, and the invoice's paid status is derived from the balance that
// remains afterwards.
type AllocationService struct {
	store  db.Store
	ledger interfaces.LedgerPoster
	events interfaces.EventPublisher
}

func NewAllocationService(store db.Store, ledger interfaces.LedgerPoster, events interfaces.EventPublisher) *AllocationService {
	return &AllocationService{
		store:  store,
		ledger: ledger,
		events: events,
	}
}

// AllocationLine assigns part of a payment to one invoice.
type AllocationLine struct {
	InvoiceID uuid.UUID
	Amount    float64
}

// AllocationResult reports the state after an allocation went through.
type AllocationResult struct {
	Payment     db.Payment
	Invoices    []db.Invoice
	Allocations []db.PaymentAllocation
}

// Invoice statuses that can still receive allocations.
var allocatable = map[string]bool{
	InvoiceStatusSubmitted:     true,
	InvoiceStatusPartiallyPaid: true,
	InvoiceStatusOverdue:       true,
}

// AllocatePayment applies the requested lines in one transaction. Every line
// is validated against the state read up front; version guards on the payment
// and each invoice make a concurrent allocation roll the whole thing back.
func (s *AllocationService) AllocatePayment(ctx context.Context, organizationID, paymentID uuid.UUID, lines []AllocationLine) (AllocationResult, error) {
	if len(lines) == 0 {
		return AllocationResult{}, &ValidationError{Field: "allocations", Message: "at least one allocation is required"}
	}

	payment, err := s.store.GetPayment(ctx, db.GetPaymentParams{ID: paymentID, OrganizationID: organizationID})
	if err != nil {
		return AllocationResult{}, noRowsAs(err, &NotFoundError{Resource: "payment", ID: paymentID.String()})
	}
	if payment.Status == PaymentStatusCancelled {
		return AllocationResult{}, &ValidationError{Field: "payment", Message: "is cancelled"}
	}

	wantType := TaxDirectionSales
	if payment.PaymentType == PaymentTypeOutgoing {
		wantType = TaxDirectionPurchase
	}

	var requestedTotal float64
	seen := make(map[uuid.UUID]bool, len(lines))
	ids := make([]uuid.UUID, 0, len(lines))
	for i, line := range lines {
		if line.Amount <= 0 {
			return AllocationResult{}, &ValidationError{
				Field:   fmt.Sprintf("allocations[%d].amount", i),
				Message: "must be positive",
			}
		}
		if seen[line.InvoiceID] {
			return AllocationResult{}, &ValidationError{
				Field:   fmt.Sprintf("allocations[%d].invoice_id", i),
				Message: "appears more than once",
			}
		}
		seen[line.InvoiceID] = true
		ids = append(ids, line.InvoiceID)
		requestedTotal += line.Amount
	}
	requestedTotal = RoundCurrency(requestedTotal)

	unallocated := RoundCurrency(payment.Amount - payment.AllocatedAmount)
	if requestedTotal > unallocated+amountTolerance {
		return AllocationResult{}, &OverAllocationError{
			Reason:    "payment over-allocation",
			Requested: requestedTotal,
			Available: unallocated,
		}
	}

	invoices, err := s.store.ListInvoicesByIDs(ctx, db.ListInvoicesByIDsParams{
		OrganizationID: organizationID,
		IDs:            ids,
	})
	if err != nil {
		return AllocationResult{}, fmt.Errorf("failed to load invoices: %w", err)
	}
	byID := make(map[uuid.UUID]db.Invoice, len(invoices))
	for _, inv := range invoices {
		byID[inv.ID] = inv
	}

	type invoiceUpdate struct {
		invoice   db.Invoice
		newPaid   float64
		newStatus string
	}
	updates := make([]invoiceUpdate, 0, len(lines))
	for i, line := range lines {
		inv, ok := byID[line.InvoiceID]
		if !ok {
			return AllocationResult{}, &NotFoundError{Resource: "invoice", ID: line.InvoiceID.String()}
		}
		if inv.InvoiceType != wantType {
			return AllocationResult{}, &ValidationError{
				Field:   fmt.Sprintf("allocations[%d].invoice_id", i),
				Message: fmt.Sprintf("%s payments cannot settle %s invoices", payment.PaymentType, inv.InvoiceType),
			}
		}
		if !allocatable[inv.Status] {
			return AllocationResult{}, &ValidationError{
				Field:   fmt.Sprintf("allocations[%d].invoice_id", i),
				Message: fmt.Sprintf("invoice in status %s cannot receive payments", inv.Status),
			}
		}

		outstanding := RoundCurrency(inv.Total - inv.AmountPaid)
		if line.Amount > outstanding+amountTolerance {
			return AllocationResult{}, &OverAllocationError{
				Reason:    "invoice over-allocation",
				Requested: line.Amount,
				Available: outstanding,
			}
		}

		newPaid := RoundCurrency(inv.AmountPaid + line.Amount)
		newStatus := InvoiceStatusPartiallyPaid
		if inv.Total-newPaid <= amountTolerance {
			newStatus = InvoiceStatusPaid
		}
		updates = append(updates, invoiceUpdate{invoice: inv, newPaid: newPaid, newStatus: newStatus})
	}

	var result AllocationResult
	err = s.store.ExecTx(ctx, func(q db.Querier) error {
		for i, line := range lines {
			allocation, err := q.CreatePaymentAllocation(ctx, db.CreatePaymentAllocationParams{
				PaymentID: payment.ID,
				InvoiceID: line.InvoiceID,
				Amount:    RoundCurrency(line.Amount),
			})
			if err != nil {
				return fmt.Errorf("failed to record allocation: %w", err)
			}
			result.Allocations = append(result.Allocations, allocation)

			upd := updates[i]
			invoice, err := q.ApplyInvoiceAllocation(ctx, db.ApplyInvoiceAllocationParams{
				ID:             upd.invoice.ID,
				OrganizationID: organizationID,
				Version:        upd.invoice.Version,
				AmountPaid:     upd.newPaid,
				Status:         upd.newStatus,
			})
			if err != nil {
				return noRowsAs(err, ErrStaleVersion)
			}
			result.Invoices = append(result.Invoices, invoice)
		}

		updated, err := q.ApplyPaymentAllocation(ctx, db.ApplyPaymentAllocationParams{
			ID:              payment.ID,
			OrganizationID:  organizationID,
			Version:         payment.Version,
			AllocatedAmount: RoundCurrency(payment.AllocatedAmount + requestedTotal),
		})
		if err != nil {
			return noRowsAs(err, ErrStaleVersion)
		}
		result.Payment = updated
		return nil
	})
	if err != nil {
		return AllocationResult{}, err
	}

	s.postAllocationToLedger(ctx, result.Payment, requestedTotal)
	s.publishEvent(ctx, result.Payment, "payment.allocated")
	return result, nil
}

// SuggestAllocations proposes how to spread the payment's unallocated amount
// over the party's open invoices. A single invoice whose outstanding balance
// matches the amount to the cent wins; otherwise invoices fill oldest due
// date first.
func (s *AllocationService) SuggestAllocations(ctx context.Context, organizationID, paymentID uuid.UUID) ([]AllocationLine, error) {
	payment, err := s.store.GetPayment(ctx, db.GetPaymentParams{ID: paymentID, OrganizationID: organizationID})
	if err != nil {
		return nil, noRowsAs(err, &NotFoundError{Resource: "payment", ID: paymentID.String()})
	}

	invoiceType := TaxDirectionSales
	partyID := pgtypeToUUID(payment.CustomerID)
	if payment.PaymentType == PaymentTypeOutgoing {
		invoiceType = TaxDirectionPurchase
		partyID = pgtypeToUUID(payment.SupplierID)
	}

	open, err := s.store.ListOpenInvoices(ctx, db.ListOpenInvoicesParams{
		OrganizationID: organizationID,
		InvoiceType:    invoiceType,
		PartyID:        partyID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load open invoices: %w", err)
	}

	available := RoundCurrency(payment.Amount - payment.AllocatedAmount)
	if available <= amountTolerance {
		return nil, nil
	}

	for _, inv := range open {
		outstanding := RoundCurrency(inv.Total - inv.AmountPaid)
		if math.Abs(outstanding-available) <= amountTolerance {
			return []AllocationLine{{InvoiceID: inv.ID, Amount: available}}, nil
		}
	}

	var suggestions []AllocationLine
	remaining := available
	for _, inv := range open {
		if remaining <= amountTolerance {
			break
		}
		outstanding := RoundCurrency(inv.Total - inv.AmountPaid)
		take := math.Min(outstanding, remaining)
		if take <= 0 {
			continue
		}
		suggestions = append(suggestions, AllocationLine{InvoiceID: inv.ID, Amount: RoundCurrency(take)})
		remaining = RoundCurrency(remaining - take)
	}
	return suggestions, nil
}

func (s *AllocationService) postAllocationToLedger(ctx context.Context, payment db.Payment, amount float64) {
	if s.ledger == nil {
		return
	}

	var entries []interfaces.LedgerEntry
	if payment.PaymentType == PaymentTypeIncoming {
		entries = []interfaces.LedgerEntry{
			{Account: "1000 cash", Debit: amount},
			{Account: "1200 accounts receivable", Credit: amount},
		}
	} else {
		entries = []interfaces.LedgerEntry{
			{Account: "2100 accounts payable", Debit: amount},
			{Account: "1000 cash", Credit: amount},
		}
	}

	err := s.ledger.Post(ctx, interfaces.LedgerPosting{
		OrganizationID: payment.OrganizationID,
		DocumentType:   "payment",
		DocumentID:     payment.ID,
		Reference:      payment.Reference.String,
		PostedAt:       time.Now(),
		Entries:        entries,
	})
	if err != nil {
		logger.Log.Warn("Failed to post allocation to ledger",
			zap.String("paymentId", payment.ID.String()),
			zap.Error(err))
	}
}

func (s *AllocationService) publishEvent(ctx context.Context, payment db.Payment, eventType string) {
	if s.events == nil {
		return
	}
	err := s.events.PublishDocumentEvent(ctx, interfaces.DocumentEvent{
		OrganizationID: payment.OrganizationID,
		DocumentType:   "payment",
		DocumentID:     payment.ID,
		EventType:      eventType,
		OccurredAt:     time.Now(),
	})
	if err != nil {
		logger.Log.Warn("Failed to publish payment event",
			zap.String("paymentId", payment.ID.String()),
			zap.String("eventType", eventType),
			zap.Error(err))
	}
}
