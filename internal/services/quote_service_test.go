package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

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

func TestQuoteService_CreateQuote(t *testing.T) {
	organizationID := uuid.New()
	customerID := uuid.New()
	quoteID := uuid.New()

	t.Run("persists quote and items atomically", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().
			GetCustomer(gomock.Any(), db.GetCustomerParams{ID: customerID, OrganizationID: organizationID}).
			Return(db.Customer{ID: customerID, OrganizationID: organizationID, Name: "Ferme Dupont"}, nil)
		passthroughTx(mockStore)
		mockStore.EXPECT().
			NextDocumentNumber(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.NextDocumentNumberParams) (int32, error) {
				assert.Equal(t, "QT", arg.DocumentType)
				assert.Equal(t, int32(time.Now().Year()), arg.Year)
				return 42, nil
			})
		mockStore.EXPECT().
			CreateQuote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateQuoteParams) (db.Quote, error) {
				assert.Regexp(t, `^QT-\d{4}-0042$`, arg.QuoteNumber)
				assert.Equal(t, 120.0, arg.Total)
				return db.Quote{ID: quoteID, OrganizationID: organizationID, QuoteNumber: arg.QuoteNumber, Status: services.QuoteStatusDraft, Total: arg.Total, Version: 1}, nil
			})
		mockStore.EXPECT().
			CreateQuoteItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateQuoteItemParams) (db.QuoteItem, error) {
				assert.Equal(t, quoteID, arg.QuoteID)
				assert.Equal(t, 120.0, arg.LineTotal)
				return db.QuoteItem{ID: uuid.New(), QuoteID: quoteID, LineTotal: arg.LineTotal}, nil
			})

		service := services.NewQuoteService(mockStore, services.NewTaxCalculator(mockStore), nil, nil)
		result, err := service.CreateQuote(context.Background(), organizationID, services.CreateQuoteParams{
			CustomerID: customerID,
			Items: []services.LineInput{
				{Description: "Soil analysis", Quantity: 2, UnitPrice: 60},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, services.QuoteStatusDraft, result.Quote.Status)
		assert.Len(t, result.Items, 1)
	})

	t.Run("unknown customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetCustomer(gomock.Any(), gomock.Any()).Return(db.Customer{}, pgx.ErrNoRows)

		service := services.NewQuoteService(mockStore, services.NewTaxCalculator(mockStore), nil, nil)
		_, err := service.CreateQuote(context.Background(), organizationID, services.CreateQuoteParams{
			CustomerID: customerID,
			Items:      []services.LineInput{{Description: "Soil analysis", Quantity: 1, UnitPrice: 60}},
		})

		var notFoundErr *services.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})
}

func TestQuoteService_UpdateQuoteStatus(t *testing.T) {
	organizationID := uuid.New()
	quoteID := uuid.New()

	draft := db.Quote{
		ID:             quoteID,
		OrganizationID: organizationID,
		Status:         services.QuoteStatusDraft,
		Version:        1,
	}

	tests := []struct {
		name       string
		current    db.Quote
		toStatus   string
		setupMocks func(m *mocks.MockStore)
		wantErr    error
	}{
		{
			name:     "draft to sent stamps sent_at",
			current:  draft,
			toStatus: services.QuoteStatusSent,
			setupMocks: func(m *mocks.MockStore) {
				m.EXPECT().
					UpdateQuoteStatus(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg db.UpdateQuoteStatusParams) (db.Quote, error) {
						assert.Equal(t, services.QuoteStatusDraft, arg.FromStatus)
						assert.Equal(t, services.QuoteStatusSent, arg.ToStatus)
						assert.True(t, arg.SentAt.Valid)
						assert.False(t, arg.AcceptedAt.Valid)
						return db.Quote{ID: quoteID, Status: arg.ToStatus}, nil
					})
			},
		},
		{
			name:       "draft cannot jump to accepted",
			current:    draft,
			toStatus:   services.QuoteStatusAccepted,
			setupMocks: func(m *mocks.MockStore) {},
			wantErr:    &services.InvalidTransitionError{},
		},
		{
			name:       "converted cannot be requested",
			current:    draft,
			toStatus:   services.QuoteStatusConverted,
			setupMocks: func(m *mocks.MockStore) {},
			wantErr:    &services.InvalidTransitionError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := mocks.NewMockStore(ctrl)
			mockStore.EXPECT().
				GetQuote(gomock.Any(), db.GetQuoteParams{ID: quoteID, OrganizationID: organizationID}).
				Return(tt.current, nil)
			tt.setupMocks(mockStore)

			service := services.NewQuoteService(mockStore, services.NewTaxCalculator(mockStore), nil, nil)
			got, err := service.UpdateQuoteStatus(context.Background(), organizationID, quoteID, tt.toStatus)

			if tt.wantErr != nil {
				var transitionErr *services.InvalidTransitionError
				assert.ErrorAs(t, err, &transitionErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.toStatus, got.Status)
		})
	}

	t.Run("accepting converts into a sales order atomically", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		customerID := uuid.New()
		orderID := uuid.New()
		sent := db.Quote{
			ID:             quoteID,
			OrganizationID: organizationID,
			CustomerID:     customerID,
			QuoteNumber:    "QT-2026-0009",
			Status:         services.QuoteStatusSent,
			Subtotal:       500,
			TaxAmount:      100,
			Total:          600,
			Version:        2,
		}

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().
			GetQuote(gomock.Any(), db.GetQuoteParams{ID: quoteID, OrganizationID: organizationID}).
			Return(sent, nil)
		mockStore.EXPECT().
			GetQuoteItems(gomock.Any(), quoteID).
			Return([]db.QuoteItem{
				{ID: uuid.New(), QuoteID: quoteID, Description: "Irrigation pipe", Quantity: 50, UnitPrice: 10, LineTotal: 500},
			}, nil)
		passthroughTx(mockStore)
		mockStore.EXPECT().
			UpdateQuoteStatus(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.UpdateQuoteStatusParams) (db.Quote, error) {
				assert.Equal(t, services.QuoteStatusSent, arg.FromStatus)
				assert.Equal(t, services.QuoteStatusAccepted, arg.ToStatus)
				assert.True(t, arg.AcceptedAt.Valid)
				accepted := sent
				accepted.Status = arg.ToStatus
				return accepted, nil
			})
		mockStore.EXPECT().NextDocumentNumber(gomock.Any(), gomock.Any()).Return(int32(3), nil)
		mockStore.EXPECT().
			CreateSalesOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateSalesOrderParams) (db.SalesOrder, error) {
				assert.Equal(t, services.SalesOrderStatusConfirmed, arg.Status)
				assert.Equal(t, 600.0, arg.Total)
				return db.SalesOrder{ID: orderID, Status: arg.Status, Total: arg.Total}, nil
			})
		mockStore.EXPECT().
			CreateSalesOrderItem(gomock.Any(), gomock.Any()).
			Return(db.SalesOrderItem{ID: uuid.New(), SalesOrderID: orderID}, nil)
		mockStore.EXPECT().
			MarkQuoteConverted(gomock.Any(), db.MarkQuoteConvertedParams{
				ID:             quoteID,
				OrganizationID: organizationID,
				SalesOrderID:   pgtype.UUID{Bytes: orderID, Valid: true},
			}).
			Return(db.Quote{ID: quoteID, Status: services.QuoteStatusConverted, ConvertedToOrderID: pgtype.UUID{Bytes: orderID, Valid: true}}, nil)

		service := services.NewQuoteService(mockStore, services.NewTaxCalculator(mockStore), nil, nil)
		got, err := service.UpdateQuoteStatus(context.Background(), organizationID, quoteID, services.QuoteStatusAccepted)

		require.NoError(t, err)
		assert.Equal(t, services.QuoteStatusConverted, got.Status)
		assert.Equal(t, orderID, uuid.UUID(got.ConvertedToOrderID.Bytes))
	})

	t.Run("conversion failure rolls the acceptance back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sent := db.Quote{
			ID:             quoteID,
			OrganizationID: organizationID,
			Status:         services.QuoteStatusSent,
			Total:          600,
			Version:        2,
		}

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetQuote(gomock.Any(), gomock.Any()).Return(sent, nil)
		mockStore.EXPECT().GetQuoteItems(gomock.Any(), quoteID).Return([]db.QuoteItem{{ID: uuid.New(), QuoteID: quoteID}}, nil)
		passthroughTx(mockStore)
		mockStore.EXPECT().
			UpdateQuoteStatus(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.UpdateQuoteStatusParams) (db.Quote, error) {
				accepted := sent
				accepted.Status = arg.ToStatus
				return accepted, nil
			})
		mockStore.EXPECT().NextDocumentNumber(gomock.Any(), gomock.Any()).Return(int32(4), nil)
		mockStore.EXPECT().CreateSalesOrder(gomock.Any(), gomock.Any()).Return(db.SalesOrder{}, errors.New("insert failed"))

		service := services.NewQuoteService(mockStore, services.NewTaxCalculator(mockStore), nil, nil)
		_, err := service.UpdateQuoteStatus(context.Background(), organizationID, quoteID, services.QuoteStatusAccepted)

		// The transaction callback fails, so the acceptance never commits.
		assert.ErrorContains(t, err, "failed to create sales order")
	})

	t.Run("concurrent status change surfaces as stale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetQuote(gomock.Any(), gomock.Any()).Return(draft, nil)
		mockStore.EXPECT().UpdateQuoteStatus(gomock.Any(), gomock.Any()).Return(db.Quote{}, pgx.ErrNoRows)

		service := services.NewQuoteService(mockStore, services.NewTaxCalculator(mockStore), nil, nil)
		_, err := service.UpdateQuoteStatus(context.Background(), organizationID, quoteID, services.QuoteStatusSent)

		assert.ErrorIs(t, err, services.ErrStaleVersion)
	})
}

func TestQuoteService_ExpireQuotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	organizationID := uuid.New()

	mockStore := mocks.NewMockStore(ctrl)
	mockStore.EXPECT().
		ExpireQuotes(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.ExpireQuotesParams) ([]uuid.UUID, error) {
			// The sweep only touches the caller's organization.
			assert.Equal(t, organizationID, arg.OrganizationID)
			return []uuid.UUID{uuid.New(), uuid.New()}, nil
		})

	service := services.NewQuoteService(mockStore, services.NewTaxCalculator(mockStore), nil, nil)
	count, err := service.ExpireQuotes(context.Background(), organizationID, time.Now())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
