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

// passthroughTx wires the mock's ExecTx to run the callback against the mock
// itself, so expectations cover the statements inside the transaction.
func passthroughTx(m *mocks.MockStore) {
	m.EXPECT().
		ExecTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(db.Querier) error) error {
			return fn(m)
		})
}

func newConversionService(m *mocks.MockStore) *services.ConversionService {
	return services.NewConversionService(m, services.NewTaxCalculator(m), nil, nil)
}

func TestConversionService_ConvertQuoteToSalesOrder(t *testing.T) {
	organizationID := uuid.New()
	customerID := uuid.New()
	quoteID := uuid.New()
	orderID := uuid.New()

	sentQuote := db.Quote{
		ID:             quoteID,
		OrganizationID: organizationID,
		CustomerID:     customerID,
		QuoteNumber:    "QT-2026-0007",
		Status:         services.QuoteStatusSent,
		Subtotal:       500,
		TaxAmount:      100,
		Total:          600,
		Version:        2,
	}
	quoteItems := []db.QuoteItem{
		{ID: uuid.New(), QuoteID: quoteID, Description: "Irrigation pipe", Quantity: 50, UnitPrice: 10, LineTotal: 500},
	}

	t.Run("accepts the quote and copies lines onto a confirmed order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().
			GetQuote(gomock.Any(), db.GetQuoteParams{ID: quoteID, OrganizationID: organizationID}).
			Return(sentQuote, nil)
		mockStore.EXPECT().
			GetQuoteItems(gomock.Any(), quoteID).
			Return(quoteItems, nil)
		passthroughTx(mockStore)
		mockStore.EXPECT().
			UpdateQuoteStatus(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.UpdateQuoteStatusParams) (db.Quote, error) {
				assert.Equal(t, services.QuoteStatusSent, arg.FromStatus)
				assert.Equal(t, services.QuoteStatusAccepted, arg.ToStatus)
				assert.True(t, arg.AcceptedAt.Valid)
				return db.Quote{ID: quoteID, Status: arg.ToStatus}, nil
			})
		mockStore.EXPECT().
			NextDocumentNumber(gomock.Any(), gomock.Any()).
			Return(int32(12), nil)
		mockStore.EXPECT().
			CreateSalesOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateSalesOrderParams) (db.SalesOrder, error) {
				assert.Equal(t, services.SalesOrderStatusConfirmed, arg.Status)
				assert.Equal(t, 500.0, arg.Subtotal)
				assert.Equal(t, 600.0, arg.Total)
				assert.Equal(t, quoteID, uuid.UUID(arg.QuoteID.Bytes))
				return db.SalesOrder{
					ID:             orderID,
					OrganizationID: organizationID,
					CustomerID:     customerID,
					OrderNumber:    arg.OrderNumber,
					Status:         arg.Status,
					Subtotal:       arg.Subtotal,
					TaxAmount:      arg.TaxAmount,
					Total:          arg.Total,
					Version:        1,
				}, nil
			})
		mockStore.EXPECT().
			CreateSalesOrderItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateSalesOrderItemParams) (db.SalesOrderItem, error) {
				assert.Equal(t, orderID, arg.SalesOrderID)
				assert.Equal(t, 50.0, arg.Quantity)
				return db.SalesOrderItem{ID: uuid.New(), SalesOrderID: orderID, Quantity: arg.Quantity}, nil
			})
		mockStore.EXPECT().
			MarkQuoteConverted(gomock.Any(), db.MarkQuoteConvertedParams{
				ID:             quoteID,
				OrganizationID: organizationID,
				SalesOrderID:   pgtype.UUID{Bytes: orderID, Valid: true},
			}).
			Return(db.Quote{ID: quoteID, Status: services.QuoteStatusConverted}, nil)

		service := newConversionService(mockStore)
		result, err := service.ConvertQuoteToSalesOrder(context.Background(), organizationID, quoteID)

		require.NoError(t, err)
		assert.Equal(t, services.SalesOrderStatusConfirmed, result.SalesOrder.Status)
		assert.Equal(t, 600.0, result.SalesOrder.Total)
		assert.Len(t, result.Items, 1)
	})

	t.Run("rejects draft quotes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		draftQuote := sentQuote
		draftQuote.Status = services.QuoteStatusDraft
		mockStore.EXPECT().
			GetQuote(gomock.Any(), gomock.Any()).
			Return(draftQuote, nil)

		service := newConversionService(mockStore)
		_, err := service.ConvertQuoteToSalesOrder(context.Background(), organizationID, quoteID)

		var transitionErr *services.InvalidTransitionError
		assert.ErrorAs(t, err, &transitionErr)
	})

	t.Run("converted quotes cannot be converted again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		convertedQuote := sentQuote
		convertedQuote.Status = services.QuoteStatusConverted
		mockStore.EXPECT().
			GetQuote(gomock.Any(), gomock.Any()).
			Return(convertedQuote, nil)

		service := newConversionService(mockStore)
		_, err := service.ConvertQuoteToSalesOrder(context.Background(), organizationID, quoteID)

		var convertedErr *services.AlreadyFullyConvertedError
		assert.ErrorAs(t, err, &convertedErr)
	})

	t.Run("concurrent conversion rolls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetQuote(gomock.Any(), gomock.Any()).Return(sentQuote, nil)
		mockStore.EXPECT().GetQuoteItems(gomock.Any(), quoteID).Return(quoteItems, nil)
		passthroughTx(mockStore)
		// The status guard matched no row: another caller accepted first.
		mockStore.EXPECT().UpdateQuoteStatus(gomock.Any(), gomock.Any()).Return(db.Quote{}, pgx.ErrNoRows)

		service := newConversionService(mockStore)
		_, err := service.ConvertQuoteToSalesOrder(context.Background(), organizationID, quoteID)

		assert.ErrorIs(t, err, services.ErrStaleVersion)
	})
}

func TestConversionService_ConvertSalesOrderToInvoice(t *testing.T) {
	organizationID := uuid.New()
	customerID := uuid.New()
	orderID := uuid.New()
	itemID := uuid.New()
	invoiceID := uuid.New()

	order := db.SalesOrder{
		ID:             orderID,
		OrganizationID: organizationID,
		CustomerID:     customerID,
		OrderNumber:    "SO-2026-0003",
		Status:         services.SalesOrderStatusConfirmed,
		Subtotal:       1000,
		TaxAmount:      0,
		Total:          1000,
		InvoicedTotal:  0,
		Version:        1,
	}
	items := []db.SalesOrderItem{
		{ID: itemID, SalesOrderID: orderID, Description: "Wheat", Quantity: 100, UnitPrice: 10, LineTotal: 1000, InvoicedQuantity: 0},
	}

	t.Run("partial conversion keeps the order partially invoiced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetSalesOrder(gomock.Any(), gomock.Any()).Return(order, nil)
		mockStore.EXPECT().GetSalesOrderItems(gomock.Any(), orderID).Return(items, nil)
		passthroughTx(mockStore)
		mockStore.EXPECT().NextDocumentNumber(gomock.Any(), gomock.Any()).Return(int32(1), nil)
		mockStore.EXPECT().
			CreateInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateInvoiceParams) (db.Invoice, error) {
				assert.Equal(t, services.TaxDirectionSales, arg.InvoiceType)
				assert.Equal(t, 400.0, arg.Total)
				assert.Equal(t, orderID, uuid.UUID(arg.SalesOrderID.Bytes))
				return db.Invoice{ID: invoiceID, OrganizationID: organizationID, InvoiceType: arg.InvoiceType, Total: arg.Total, Version: 1}, nil
			})
		mockStore.EXPECT().
			CreateInvoiceItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateInvoiceItemParams) (db.InvoiceItem, error) {
				assert.Equal(t, 40.0, arg.Quantity)
				assert.Equal(t, itemID, uuid.UUID(arg.SourceItemID.Bytes))
				return db.InvoiceItem{ID: uuid.New(), InvoiceID: invoiceID, Quantity: arg.Quantity}, nil
			})
		mockStore.EXPECT().
			SetSalesOrderItemInvoicedQuantity(gomock.Any(), db.SetSalesOrderItemInvoicedQuantityParams{
				ID:               itemID,
				InvoicedQuantity: 40,
			}).
			Return(nil)
		mockStore.EXPECT().
			ApplySalesOrderConversion(gomock.Any(), db.ApplySalesOrderConversionParams{
				ID:             orderID,
				OrganizationID: organizationID,
				Version:        1,
				InvoicedTotal:  400,
				Status:         services.SalesOrderStatusPartiallyInvoiced,
			}).
			Return(db.SalesOrder{ID: orderID, Status: services.SalesOrderStatusPartiallyInvoiced}, nil)

		service := newConversionService(mockStore)
		result, err := service.ConvertSalesOrderToInvoice(context.Background(), organizationID, orderID, []services.ConversionLine{
			{ItemID: itemID, Quantity: 40},
		})

		require.NoError(t, err)
		assert.Equal(t, 400.0, result.Invoice.Total)
	})

	t.Run("invoicing the remainder flips the order to invoiced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		partial := order
		partial.Status = services.SalesOrderStatusPartiallyInvoiced
		partial.InvoicedTotal = 400
		partial.Version = 2
		remainingItems := []db.SalesOrderItem{
			{ID: itemID, SalesOrderID: orderID, Description: "Wheat", Quantity: 100, UnitPrice: 10, LineTotal: 1000, InvoicedQuantity: 40},
		}

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetSalesOrder(gomock.Any(), gomock.Any()).Return(partial, nil)
		mockStore.EXPECT().GetSalesOrderItems(gomock.Any(), orderID).Return(remainingItems, nil)
		passthroughTx(mockStore)
		mockStore.EXPECT().NextDocumentNumber(gomock.Any(), gomock.Any()).Return(int32(2), nil)
		mockStore.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateInvoiceParams) (db.Invoice, error) {
				assert.Equal(t, 600.0, arg.Total)
				return db.Invoice{ID: invoiceID, Total: arg.Total}, nil
			})
		mockStore.EXPECT().CreateInvoiceItem(gomock.Any(), gomock.Any()).Return(db.InvoiceItem{}, nil)
		mockStore.EXPECT().
			SetSalesOrderItemInvoicedQuantity(gomock.Any(), db.SetSalesOrderItemInvoicedQuantityParams{
				ID:               itemID,
				InvoicedQuantity: 100,
			}).
			Return(nil)
		mockStore.EXPECT().
			ApplySalesOrderConversion(gomock.Any(), db.ApplySalesOrderConversionParams{
				ID:             orderID,
				OrganizationID: organizationID,
				Version:        2,
				InvoicedTotal:  1000,
				Status:         services.SalesOrderStatusInvoiced,
			}).
			Return(db.SalesOrder{ID: orderID, Status: services.SalesOrderStatusInvoiced}, nil)

		service := newConversionService(mockStore)
		// Empty lines means everything that is left.
		result, err := service.ConvertSalesOrderToInvoice(context.Background(), organizationID, orderID, nil)

		require.NoError(t, err)
		assert.Equal(t, 600.0, result.Invoice.Total)
	})

	t.Run("rejects quantities beyond the remaining amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetSalesOrder(gomock.Any(), gomock.Any()).Return(order, nil)
		mockStore.EXPECT().GetSalesOrderItems(gomock.Any(), orderID).Return(items, nil)

		service := newConversionService(mockStore)
		_, err := service.ConvertSalesOrderToInvoice(context.Background(), organizationID, orderID, []services.ConversionLine{
			{ItemID: itemID, Quantity: 150},
		})

		var validationErr *services.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Contains(t, err.Error(), "exceeds remaining")
	})

	t.Run("rejects items from another order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetSalesOrder(gomock.Any(), gomock.Any()).Return(order, nil)
		mockStore.EXPECT().GetSalesOrderItems(gomock.Any(), orderID).Return(items, nil)

		service := newConversionService(mockStore)
		_, err := service.ConvertSalesOrderToInvoice(context.Background(), organizationID, orderID, []services.ConversionLine{
			{ItemID: uuid.New(), Quantity: 1},
		})

		var validationErr *services.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Contains(t, err.Error(), "does not belong to this order")
	})

	t.Run("fully invoiced order cannot be converted again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		done := order
		done.Status = services.SalesOrderStatusInvoiced
		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetSalesOrder(gomock.Any(), gomock.Any()).Return(done, nil)

		service := newConversionService(mockStore)
		_, err := service.ConvertSalesOrderToInvoice(context.Background(), organizationID, orderID, nil)

		var convertedErr *services.AlreadyFullyConvertedError
		assert.ErrorAs(t, err, &convertedErr)
	})

	t.Run("draft orders cannot be invoiced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		draft := order
		draft.Status = services.SalesOrderStatusDraft
		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetSalesOrder(gomock.Any(), gomock.Any()).Return(draft, nil)

		service := newConversionService(mockStore)
		_, err := service.ConvertSalesOrderToInvoice(context.Background(), organizationID, orderID, nil)

		var transitionErr *services.InvalidTransitionError
		assert.ErrorAs(t, err, &transitionErr)
	})
}

func TestConversionService_ConvertPurchaseOrderToBill(t *testing.T) {
	organizationID := uuid.New()
	supplierID := uuid.New()
	orderID := uuid.New()
	itemID := uuid.New()

	order := db.PurchaseOrder{
		ID:             orderID,
		OrganizationID: organizationID,
		SupplierID:     supplierID,
		OrderNumber:    "PO-2026-0009",
		Status:         services.PurchaseOrderStatusReceived,
		Subtotal:       200,
		Total:          200,
		BilledTotal:    0,
		Version:        3,
	}
	items := []db.PurchaseOrderItem{
		{ID: itemID, PurchaseOrderID: orderID, Description: "Feed", Quantity: 20, UnitPrice: 10, LineTotal: 200, BilledQuantity: 0},
	}

	t.Run("billing everything marks the order billed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetPurchaseOrder(gomock.Any(), gomock.Any()).Return(order, nil)
		mockStore.EXPECT().GetPurchaseOrderItems(gomock.Any(), orderID).Return(items, nil)
		passthroughTx(mockStore)
		mockStore.EXPECT().NextDocumentNumber(gomock.Any(), gomock.Any()).Return(int32(1), nil)
		mockStore.EXPECT().
			CreateInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateInvoiceParams) (db.Invoice, error) {
				assert.Equal(t, services.TaxDirectionPurchase, arg.InvoiceType)
				assert.Equal(t, supplierID, uuid.UUID(arg.SupplierID.Bytes))
				assert.Equal(t, orderID, uuid.UUID(arg.PurchaseOrderID.Bytes))
				return db.Invoice{ID: uuid.New(), InvoiceType: arg.InvoiceType, Total: arg.Total}, nil
			})
		mockStore.EXPECT().CreateInvoiceItem(gomock.Any(), gomock.Any()).Return(db.InvoiceItem{}, nil)
		mockStore.EXPECT().
			SetPurchaseOrderItemBilledQuantity(gomock.Any(), db.SetPurchaseOrderItemBilledQuantityParams{
				ID:             itemID,
				BilledQuantity: 20,
			}).
			Return(nil)
		mockStore.EXPECT().
			ApplyPurchaseOrderConversion(gomock.Any(), db.ApplyPurchaseOrderConversionParams{
				ID:             orderID,
				OrganizationID: organizationID,
				Version:        3,
				BilledTotal:    200,
				Status:         services.PurchaseOrderStatusBilled,
			}).
			Return(db.PurchaseOrder{ID: orderID, Status: services.PurchaseOrderStatusBilled}, nil)

		service := newConversionService(mockStore)
		result, err := service.ConvertPurchaseOrderToBill(context.Background(), organizationID, orderID, nil)

		require.NoError(t, err)
		assert.Equal(t, 200.0, result.Invoice.Total)
	})

	t.Run("stale order version rolls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockStore.EXPECT().GetPurchaseOrder(gomock.Any(), gomock.Any()).Return(order, nil)
		mockStore.EXPECT().GetPurchaseOrderItems(gomock.Any(), orderID).Return(items, nil)
		passthroughTx(mockStore)
		mockStore.EXPECT().NextDocumentNumber(gomock.Any(), gomock.Any()).Return(int32(2), nil)
		mockStore.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(db.Invoice{ID: uuid.New()}, nil)
		mockStore.EXPECT().CreateInvoiceItem(gomock.Any(), gomock.Any()).Return(db.InvoiceItem{}, nil)
		mockStore.EXPECT().SetPurchaseOrderItemBilledQuantity(gomock.Any(), gomock.Any()).Return(nil)
		mockStore.EXPECT().ApplyPurchaseOrderConversion(gomock.Any(), gomock.Any()).Return(db.PurchaseOrder{}, pgx.ErrNoRows)

		service := newConversionService(mockStore)
		_, err := service.ConvertPurchaseOrderToBill(context.Background(), organizationID, orderID, nil)

		assert.ErrorIs(t, err, services.ErrStaleVersion)
	})
}
