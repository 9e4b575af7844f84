package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/agroflow/agroflow-api/internal/db"
	"github.com/agroflow/agroflow-api/internal/mocks"
	"github.com/agroflow/agroflow-api/internal/services"
)

func TestAllocationService_AllocatePayment(t *testing.T) {
	organizationID := uuid.New()
	customerID := uuid.New()
	paymentID := uuid.New()
	invoiceID := uuid.New()

	payment := db.Payment{
		ID:              paymentID,
		OrganizationID:  organizationID,
		PaymentType:     services.PaymentTypeIncoming,
		CustomerID:      pgtype.UUID{Bytes: customerID, Valid: true},
		Amount:          500,
		AllocatedAmount: 0,
		Status:          services.PaymentStatusReceived,
		Version:         1,
	}
	invoice := db.Invoice{
		ID:             invoiceID,
		OrganizationID: organizationID,
		InvoiceType:    services.TaxDirectionSales,
		CustomerID:     pgtype.UUID{Bytes: customerID, Valid: true},
		InvoiceNumber:  "INV-2026-0001",
		Status:         services.InvoiceStatusSubmitted,
		Total:          300,
		AmountPaid:     0,
		Version:        1,
	}

	t.Run("full settlement derives paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().
			GetPayment(gomock.Any(), db.GetPaymentParams{ID: paymentID, OrganizationID: organizationID}).
			Return(payment, nil)
		mockStore.EXPECT().
			ListInvoicesByIDs(gomock.Any(), db.ListInvoicesByIDsParams{
				OrganizationID: organizationID,
				IDs:            []uuid.UUID{invoiceID},
			}).
			Return([]db.Invoice{invoice}, nil)
		passthroughTx(mockStore)
		mockStore.EXPECT().
			CreatePaymentAllocation(gomock.Any(), db.CreatePaymentAllocationParams{
				PaymentID: paymentID,
				InvoiceID: invoiceID,
				Amount:    300,
			}).
			Return(db.PaymentAllocation{ID: uuid.New(), PaymentID: paymentID, InvoiceID: invoiceID, Amount: 300}, nil)
		mockStore.EXPECT().
			ApplyInvoiceAllocation(gomock.Any(), db.ApplyInvoiceAllocationParams{
				ID:             invoiceID,
				OrganizationID: organizationID,
				Version:        1,
				AmountPaid:     300,
				Status:         services.InvoiceStatusPaid,
			}).
			Return(db.Invoice{ID: invoiceID, Status: services.InvoiceStatusPaid, AmountPaid: 300}, nil)
		mockStore.EXPECT().
			ApplyPaymentAllocation(gomock.Any(), db.ApplyPaymentAllocationParams{
				ID:              paymentID,
				OrganizationID:  organizationID,
				Version:         1,
				AllocatedAmount: 300,
			}).
			Return(db.Payment{ID: paymentID, AllocatedAmount: 300}, nil)

		service := services.NewAllocationService(mockStore, nil, nil)
		result, err := service.AllocatePayment(context.Background(), organizationID, paymentID, []services.AllocationLine{
			{InvoiceID: invoiceID, Amount: 300},
		})

		require.NoError(t, err)
		require.Len(t, result.Invoices, 1)
		assert.Equal(t, services.InvoiceStatusPaid, result.Invoices[0].Status)
		assert.Equal(t, 300.0, result.Payment.AllocatedAmount)
	})

	t.Run("partial settlement derives partially paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetPayment(gomock.Any(), gomock.Any()).Return(payment, nil)
		mockStore.EXPECT().ListInvoicesByIDs(gomock.Any(), gomock.Any()).Return([]db.Invoice{invoice}, nil)
		passthroughTx(mockStore)
		mockStore.EXPECT().CreatePaymentAllocation(gomock.Any(), gomock.Any()).
			Return(db.PaymentAllocation{}, nil)
		mockStore.EXPECT().
			ApplyInvoiceAllocation(gomock.Any(), db.ApplyInvoiceAllocationParams{
				ID:             invoiceID,
				OrganizationID: organizationID,
				Version:        1,
				AmountPaid:     100,
				Status:         services.InvoiceStatusPartiallyPaid,
			}).
			Return(db.Invoice{ID: invoiceID, Status: services.InvoiceStatusPartiallyPaid}, nil)
		mockStore.EXPECT().ApplyPaymentAllocation(gomock.Any(), gomock.Any()).
			Return(db.Payment{ID: paymentID, AllocatedAmount: 100}, nil)

		service := services.NewAllocationService(mockStore, nil, nil)
		result, err := service.AllocatePayment(context.Background(), organizationID, paymentID, []services.AllocationLine{
			{InvoiceID: invoiceID, Amount: 100},
		})

		require.NoError(t, err)
		assert.Equal(t, services.InvoiceStatusPartiallyPaid, result.Invoices[0].Status)
	})

	t.Run("settling within tolerance still derives paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetPayment(gomock.Any(), gomock.Any()).Return(payment, nil)
		mockStore.EXPECT().ListInvoicesByIDs(gomock.Any(), gomock.Any()).Return([]db.Invoice{invoice}, nil)
		passthroughTx(mockStore)
		mockStore.EXPECT().CreatePaymentAllocation(gomock.Any(), gomock.Any()).Return(db.PaymentAllocation{}, nil)
		mockStore.EXPECT().
			ApplyInvoiceAllocation(gomock.Any(), db.ApplyInvoiceAllocationParams{
				ID:             invoiceID,
				OrganizationID: organizationID,
				Version:        1,
				AmountPaid:     299.99,
				Status:         services.InvoiceStatusPaid,
			}).
			Return(db.Invoice{ID: invoiceID, Status: services.InvoiceStatusPaid}, nil)
		mockStore.EXPECT().ApplyPaymentAllocation(gomock.Any(), gomock.Any()).Return(db.Payment{}, nil)

		service := services.NewAllocationService(mockStore, nil, nil)
		_, err := service.AllocatePayment(context.Background(), organizationID, paymentID, []services.AllocationLine{
			{InvoiceID: invoiceID, Amount: 299.99},
		})

		require.NoError(t, err)
	})

	t.Run("rejects totals beyond the payment's unallocated amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		partiallyUsed := payment
		partiallyUsed.AllocatedAmount = 450
		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetPayment(gomock.Any(), gomock.Any()).Return(partiallyUsed, nil)

		service := services.NewAllocationService(mockStore, nil, nil)
		_, err := service.AllocatePayment(context.Background(), organizationID, paymentID, []services.AllocationLine{
			{InvoiceID: invoiceID, Amount: 100},
		})

		var overErr *services.OverAllocationError
		require.ErrorAs(t, err, &overErr)
		assert.Equal(t, 100.0, overErr.Requested)
		assert.Equal(t, 50.0, overErr.Available)
	})

	t.Run("rejects amounts beyond the invoice outstanding balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		halfPaid := invoice
		halfPaid.AmountPaid = 250
		halfPaid.Status = services.InvoiceStatusPartiallyPaid
		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetPayment(gomock.Any(), gomock.Any()).Return(payment, nil)
		mockStore.EXPECT().ListInvoicesByIDs(gomock.Any(), gomock.Any()).Return([]db.Invoice{halfPaid}, nil)

		service := services.NewAllocationService(mockStore, nil, nil)
		_, err := service.AllocatePayment(context.Background(), organizationID, paymentID, []services.AllocationLine{
			{InvoiceID: invoiceID, Amount: 100},
		})

		var overErr *services.OverAllocationError
		require.ErrorAs(t, err, &overErr)
		assert.Equal(t, 50.0, overErr.Available)
	})

	t.Run("rejects direction mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		bill := invoice
		bill.InvoiceType = services.TaxDirectionPurchase
		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetPayment(gomock.Any(), gomock.Any()).Return(payment, nil)
		mockStore.EXPECT().ListInvoicesByIDs(gomock.Any(), gomock.Any()).Return([]db.Invoice{bill}, nil)

		service := services.NewAllocationService(mockStore, nil, nil)
		_, err := service.AllocatePayment(context.Background(), organizationID, paymentID, []services.AllocationLine{
			{InvoiceID: invoiceID, Amount: 100},
		})

		var validationErr *services.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, err.Error(), "cannot settle")
	})

	t.Run("rejects draft invoices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		draft := invoice
		draft.Status = services.InvoiceStatusDraft
		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetPayment(gomock.Any(), gomock.Any()).Return(payment, nil)
		mockStore.EXPECT().ListInvoicesByIDs(gomock.Any(), gomock.Any()).Return([]db.Invoice{draft}, nil)

		service := services.NewAllocationService(mockStore, nil, nil)
		_, err := service.AllocatePayment(context.Background(), organizationID, paymentID, []services.AllocationLine{
			{InvoiceID: invoiceID, Amount: 100},
		})

		var validationErr *services.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, err.Error(), "cannot receive payments")
	})

	t.Run("rejects duplicate invoice ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetPayment(gomock.Any(), gomock.Any()).Return(payment, nil)

		service := services.NewAllocationService(mockStore, nil, nil)
		_, err := service.AllocatePayment(context.Background(), organizationID, paymentID, []services.AllocationLine{
			{InvoiceID: invoiceID, Amount: 100},
			{InvoiceID: invoiceID, Amount: 100},
		})

		var validationErr *services.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, err.Error(), "appears more than once")
	})

	t.Run("rejects cancelled payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cancelled := payment
		cancelled.Status = services.PaymentStatusCancelled
		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetPayment(gomock.Any(), gomock.Any()).Return(cancelled, nil)

		service := services.NewAllocationService(mockStore, nil, nil)
		_, err := service.AllocatePayment(context.Background(), organizationID, paymentID, []services.AllocationLine{
			{InvoiceID: invoiceID, Amount: 100},
		})

		var validationErr *services.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("concurrent invoice update rolls everything back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetPayment(gomock.Any(), gomock.Any()).Return(payment, nil)
		mockStore.EXPECT().ListInvoicesByIDs(gomock.Any(), gomock.Any()).Return([]db.Invoice{invoice}, nil)
		passthroughTx(mockStore)
		mockStore.EXPECT().CreatePaymentAllocation(gomock.Any(), gomock.Any()).Return(db.PaymentAllocation{}, nil)
		mockStore.EXPECT().ApplyInvoiceAllocation(gomock.Any(), gomock.Any()).Return(db.Invoice{}, pgx.ErrNoRows)

		service := services.NewAllocationService(mockStore, nil, nil)
		_, err := service.AllocatePayment(context.Background(), organizationID, paymentID, []services.AllocationLine{
			{InvoiceID: invoiceID, Amount: 100},
		})

		assert.ErrorIs(t, err, services.ErrStaleVersion)
	})
}

func TestAllocationService_SuggestAllocations(t *testing.T) {
	organizationID := uuid.New()
	customerID := uuid.New()
	paymentID := uuid.New()

	payment := db.Payment{
		ID:             paymentID,
		OrganizationID: organizationID,
		PaymentType:    services.PaymentTypeIncoming,
		CustomerID:     pgtype.UUID{Bytes: customerID, Valid: true},
		Amount:         250,
		Status:         services.PaymentStatusReceived,
		Version:        1,
	}
	oldest := db.Invoice{ID: uuid.New(), Total: 200, AmountPaid: 0, Status: services.InvoiceStatusOverdue}
	newer := db.Invoice{ID: uuid.New(), Total: 300, AmountPaid: 0, Status: services.InvoiceStatusSubmitted}
	exact := db.Invoice{ID: uuid.New(), Total: 250, AmountPaid: 0, Status: services.InvoiceStatusSubmitted}

	t.Run("exact outstanding match wins over order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetPayment(gomock.Any(), gomock.Any()).Return(payment, nil)
		mockStore.EXPECT().
			ListOpenInvoices(gomock.Any(), db.ListOpenInvoicesParams{
				OrganizationID: organizationID,
				InvoiceType:    services.TaxDirectionSales,
				PartyID:        customerID,
			}).
			Return([]db.Invoice{oldest, exact, newer}, nil)

		service := services.NewAllocationService(mockStore, nil, nil)
		got, err := service.SuggestAllocations(context.Background(), organizationID, paymentID)

		require.NoError(t, err)
		assert.Equal(t, []services.AllocationLine{{InvoiceID: exact.ID, Amount: 250}}, got)
	})

	t.Run("falls back to oldest due first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetPayment(gomock.Any(), gomock.Any()).Return(payment, nil)
		mockStore.EXPECT().ListOpenInvoices(gomock.Any(), gomock.Any()).Return([]db.Invoice{oldest, newer}, nil)

		service := services.NewAllocationService(mockStore, nil, nil)
		got, err := service.SuggestAllocations(context.Background(), organizationID, paymentID)

		require.NoError(t, err)
		assert.Equal(t, []services.AllocationLine{
			{InvoiceID: oldest.ID, Amount: 200},
			{InvoiceID: newer.ID, Amount: 50},
		}, got)
	})

	t.Run("fully allocated payment suggests nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		used := payment
		used.AllocatedAmount = 250
		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetPayment(gomock.Any(), gomock.Any()).Return(used, nil)
		mockStore.EXPECT().ListOpenInvoices(gomock.Any(), gomock.Any()).Return([]db.Invoice{oldest}, nil)

		service := services.NewAllocationService(mockStore, nil, nil)
		got, err := service.SuggestAllocations(context.Background(), organizationID, paymentID)

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
