package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/agroflow/agroflow-api/internal/db"
	"github.com/agroflow/agroflow-api/internal/mocks"
	"github.com/agroflow/agroflow-api/internal/services"
)

func TestPaymentService_CreatePayment(t *testing.T) {
	organizationID := uuid.New()
	customerID := uuid.New()
	supplierID := uuid.New()

	tests := []struct {
		name       string
		params     services.CreatePaymentParams
		setupMocks func(m *mocks.MockStore)
		wantField  string
		wantAmount float64
	}{
		{
			name: "incoming payment rounds the amount",
			params: services.CreatePaymentParams{
				PaymentType: services.PaymentTypeIncoming,
				CustomerID:  &customerID,
				Amount:      149.996,
			},
			setupMocks: func(m *mocks.MockStore) {
				m.EXPECT().
					GetCustomer(gomock.Any(), db.GetCustomerParams{ID: customerID, OrganizationID: organizationID}).
					Return(db.Customer{ID: customerID}, nil)
				m.EXPECT().
					CreatePayment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg db.CreatePaymentParams) (db.Payment, error) {
						assert.Equal(t, 150.0, arg.Amount)
						return db.Payment{ID: uuid.New(), Amount: arg.Amount, PaymentType: arg.PaymentType, Status: services.PaymentStatusReceived}, nil
					})
			},
			wantAmount: 150.0,
		},
		{
			name: "outgoing payment needs a supplier",
			params: services.CreatePaymentParams{
				PaymentType: services.PaymentTypeOutgoing,
				SupplierID:  &supplierID,
				Amount:      80,
			},
			setupMocks: func(m *mocks.MockStore) {
				m.EXPECT().
					GetSupplier(gomock.Any(), db.GetSupplierParams{ID: supplierID, OrganizationID: organizationID}).
					Return(db.Supplier{ID: supplierID}, nil)
				m.EXPECT().
					CreatePayment(gomock.Any(), gomock.Any()).
					Return(db.Payment{ID: uuid.New(), Amount: 80, Status: services.PaymentStatusReceived}, nil)
			},
			wantAmount: 80,
		},
		{
			name: "zero amount rejected",
			params: services.CreatePaymentParams{
				PaymentType: services.PaymentTypeIncoming,
				CustomerID:  &customerID,
				Amount:      0,
			},
			setupMocks: func(m *mocks.MockStore) {},
			wantField:  "amount",
		},
		{
			name: "incoming without customer rejected",
			params: services.CreatePaymentParams{
				PaymentType: services.PaymentTypeIncoming,
				Amount:      50,
			},
			setupMocks: func(m *mocks.MockStore) {},
			wantField:  "customer_id",
		},
		{
			name: "outgoing without supplier rejected",
			params: services.CreatePaymentParams{
				PaymentType: services.PaymentTypeOutgoing,
				Amount:      50,
			},
			setupMocks: func(m *mocks.MockStore) {},
			wantField:  "supplier_id",
		},
		{
			name: "unknown payment type rejected",
			params: services.CreatePaymentParams{
				PaymentType: "internal",
				Amount:      50,
			},
			setupMocks: func(m *mocks.MockStore) {},
			wantField:  "payment_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := mocks.NewMockStore(ctrl)
			tt.setupMocks(mockStore)

			service := services.NewPaymentService(mockStore)
			payment, err := service.CreatePayment(context.Background(), organizationID, tt.params)

			if tt.wantField != "" {
				var validationErr *services.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.wantField, validationErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, payment.Amount)
		})
	}

	t.Run("unknown customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetCustomer(gomock.Any(), gomock.Any()).Return(db.Customer{}, pgx.ErrNoRows)

		service := services.NewPaymentService(mockStore)
		_, err := service.CreatePayment(context.Background(), organizationID, services.CreatePaymentParams{
			PaymentType: services.PaymentTypeIncoming,
			CustomerID:  &customerID,
			Amount:      50,
		})

		var notFoundErr *services.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})
}

func TestPaymentService_CancelPayment(t *testing.T) {
	organizationID := uuid.New()
	paymentID := uuid.New()

	t.Run("unallocated payment cancels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().
			GetPayment(gomock.Any(), db.GetPaymentParams{ID: paymentID, OrganizationID: organizationID}).
			Return(db.Payment{ID: paymentID, Status: services.PaymentStatusReceived, AllocatedAmount: 0}, nil)
		mockStore.EXPECT().
			CancelPayment(gomock.Any(), db.CancelPaymentParams{ID: paymentID, OrganizationID: organizationID}).
			Return(db.Payment{ID: paymentID, Status: services.PaymentStatusCancelled}, nil)

		service := services.NewPaymentService(mockStore)
		cancelled, err := service.CancelPayment(context.Background(), organizationID, paymentID)

		require.NoError(t, err)
		assert.Equal(t, services.PaymentStatusCancelled, cancelled.Status)
	})

	t.Run("allocated payment cannot cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().
			GetPayment(gomock.Any(), gomock.Any()).
			Return(db.Payment{ID: paymentID, Status: services.PaymentStatusReceived, AllocatedAmount: 120}, nil)

		service := services.NewPaymentService(mockStore)
		_, err := service.CancelPayment(context.Background(), organizationID, paymentID)

		var validationErr *services.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("concurrent cancel surfaces as stale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().
			GetPayment(gomock.Any(), gomock.Any()).
			Return(db.Payment{ID: paymentID, Status: services.PaymentStatusReceived}, nil)
		mockStore.EXPECT().
			CancelPayment(gomock.Any(), gomock.Any()).
			Return(db.Payment{}, pgx.ErrNoRows)

		service := services.NewPaymentService(mockStore)
		_, err := service.CancelPayment(context.Background(), organizationID, paymentID)

		assert.ErrorIs(t, err, services.ErrStaleVersion)
	})
}
