package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agroflow/agroflow-api/internal/db"
)

// Payment directions. Incoming payments settle sales invoices, outgoing
// payments settle supplier bills.
const (
	PaymentTypeIncoming = "incoming"
	PaymentTypeOutgoing = "outgoing"
)

const (
	PaymentStatusReceived  = "received"
	PaymentStatusCancelled = "cancelled"
)

// PaymentService records payments. Matching them against invoices is the
// allocation engine's job.
type PaymentService struct {
	store db.Store
}

func NewPaymentService(store db.Store) *PaymentService {
	return &PaymentService{store: store}
}

type CreatePaymentParams struct {
	PaymentType string
	CustomerID  *uuid.UUID
	SupplierID  *uuid.UUID
	PaymentDate *time.Time
	Amount      float64
	Method      *string
	Reference   *string
}

func (s *PaymentService) CreatePayment(ctx context.Context, organizationID uuid.UUID, params CreatePaymentParams) (db.Payment, error) {
	if params.Amount <= 0 {
		return db.Payment{}, &ValidationError{Field: "amount", Message: "must be positive"}
	}
	switch params.PaymentType {
	case PaymentTypeIncoming:
		if params.CustomerID == nil {
			return db.Payment{}, &ValidationError{Field: "customer_id", Message: "is required for incoming payments"}
		}
		if _, err := s.store.GetCustomer(ctx, db.GetCustomerParams{ID: *params.CustomerID, OrganizationID: organizationID}); err != nil {
			return db.Payment{}, noRowsAs(err, &NotFoundError{Resource: "customer", ID: params.CustomerID.String()})
		}
	case PaymentTypeOutgoing:
		if params.SupplierID == nil {
			return db.Payment{}, &ValidationError{Field: "supplier_id", Message: "is required for outgoing payments"}
		}
		if _, err := s.store.GetSupplier(ctx, db.GetSupplierParams{ID: *params.SupplierID, OrganizationID: organizationID}); err != nil {
			return db.Payment{}, noRowsAs(err, &NotFoundError{Resource: "supplier", ID: params.SupplierID.String()})
		}
	default:
		return db.Payment{}, &ValidationError{Field: "payment_type", Message: "must be incoming or outgoing"}
	}

	payment, err := s.store.CreatePayment(ctx, db.CreatePaymentParams{
		OrganizationID: organizationID,
		PaymentType:    params.PaymentType,
		CustomerID:     uuidPtrToPgtype(params.CustomerID),
		SupplierID:     uuidPtrToPgtype(params.SupplierID),
		PaymentDate:    datePtrToPgtype(params.PaymentDate),
		Amount:         RoundCurrency(params.Amount),
		Method:         stringPtrToPgtype(params.Method),
		Reference:      stringPtrToPgtype(params.Reference),
	})
	if err != nil {
		return db.Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}
	return payment, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, organizationID, id uuid.UUID) (db.Payment, error) {
	payment, err := s.store.GetPayment(ctx, db.GetPaymentParams{ID: id, OrganizationID: organizationID})
	if err != nil {
		return db.Payment{}, noRowsAs(err, &NotFoundError{Resource: "payment", ID: id.String()})
	}
	return payment, nil
}

func (s *PaymentService) ListPayments(ctx context.Context, organizationID uuid.UUID, paymentType *string) ([]db.Payment, error) {
	payments, err := s.store.ListPayments(ctx, db.ListPaymentsParams{
		OrganizationID: organizationID,
		PaymentType:    stringPtrToPgtype(paymentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

func (s *PaymentService) GetPaymentAllocations(ctx context.Context, organizationID, id uuid.UUID) ([]db.PaymentAllocation, error) {
	if _, err := s.GetPayment(ctx, organizationID, id); err != nil {
		return nil, err
	}
	allocations, err := s.store.GetPaymentAllocations(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment allocations: %w", err)
	}
	return allocations, nil
}

// CancelPayment voids a payment that has no allocations. Allocated payments
// must have their allocations reversed first, which is not supported yet.
func (s *PaymentService) CancelPayment(ctx context.Context, organizationID, id uuid.UUID) (db.Payment, error) {
	payment, err := s.GetPayment(ctx, organizationID, id)
	if err != nil {
		return db.Payment{}, err
	}
	if payment.AllocatedAmount > 0 {
		return db.Payment{}, &ValidationError{Field: "payment", Message: "cannot cancel a payment with allocations"}
	}

	cancelled, err := s.store.CancelPayment(ctx, db.CancelPaymentParams{ID: id, OrganizationID: organizationID})
	if err != nil {
		return db.Payment{}, noRowsAs(err, ErrStaleVersion)
	}
	return cancelled, nil
}
