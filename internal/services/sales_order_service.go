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

// SalesOrderService manages sales orders created directly. Orders produced
// from accepted quotes come out of the conversion engine instead.
type SalesOrderService struct {
	store      db.Store
	calculator *TaxCalculator
	events     interfaces.EventPublisher
}

func NewSalesOrderService(store db.Store, calculator *TaxCalculator, events interfaces.EventPublisher) *SalesOrderService {
	return &SalesOrderService{
		store:      store,
		calculator: calculator,
		events:     events,
	}
}

type CreateSalesOrderParams struct {
	CustomerID   uuid.UUID
	OrderDate    *time.Time
	DeliveryDate *time.Time
	Notes        *string
	Items        []LineInput
}

type SalesOrderWithItems struct {
	SalesOrder db.SalesOrder
	Items      []db.SalesOrderItem
}

func (s *SalesOrderService) CreateSalesOrder(ctx context.Context, organizationID uuid.UUID, params CreateSalesOrderParams) (SalesOrderWithItems, error) {
	if _, err := s.store.GetCustomer(ctx, db.GetCustomerParams{ID: params.CustomerID, OrganizationID: organizationID}); err != nil {
		return SalesOrderWithItems{}, noRowsAs(err, &NotFoundError{Resource: "customer", ID: params.CustomerID.String()})
	}

	totals, err := s.calculator.CalculateDocumentTotals(ctx, organizationID, TaxDirectionSales, params.Items)
	if err != nil {
		return SalesOrderWithItems{}, err
	}

	var result SalesOrderWithItems
	err = s.store.ExecTx(ctx, func(q db.Querier) error {
		number, err := nextDocumentNumber(ctx, q, organizationID, numberPrefixSalesOrder, time.Now())
		if err != nil {
			return err
		}

		order, err := q.CreateSalesOrder(ctx, db.CreateSalesOrderParams{
			OrganizationID: organizationID,
			CustomerID:     params.CustomerID,
			OrderNumber:    number,
			Status:         SalesOrderStatusDraft,
			OrderDate:      datePtrToPgtype(params.OrderDate),
			DeliveryDate:   datePtrToPgtype(params.DeliveryDate),
			Subtotal:       totals.Subtotal,
			TaxAmount:      totals.TaxAmount,
			Total:          totals.Total,
			Notes:          stringPtrToPgtype(params.Notes),
		})
		if err != nil {
			return fmt.Errorf("failed to create sales order: %w", err)
		}

		items := make([]db.SalesOrderItem, 0, len(params.Items))
		for i, line := range params.Items {
			item, err := q.CreateSalesOrderItem(ctx, db.CreateSalesOrderItemParams{
				SalesOrderID: order.ID,
				Description:  line.Description,
				Quantity:     line.Quantity,
				UnitPrice:    line.UnitPrice,
				TaxID:        uuidPtrToPgtype(line.TaxID),
				LineTotal:    totals.Lines[i].Subtotal,
			})
			if err != nil {
				return fmt.Errorf("failed to create sales order item: %w", err)
			}
			items = append(items, item)
		}

		result = SalesOrderWithItems{SalesOrder: order, Items: items}
		return nil
	})
	if err != nil {
		return SalesOrderWithItems{}, err
	}

	s.publishEvent(ctx, result.SalesOrder, "sales_order.created")
	return result, nil
}

func (s *SalesOrderService) GetSalesOrder(ctx context.Context, organizationID, id uuid.UUID) (SalesOrderWithItems, error) {
	order, err := s.store.GetSalesOrder(ctx, db.GetSalesOrderParams{ID: id, OrganizationID: organizationID})
	if err != nil {
		return SalesOrderWithItems{}, noRowsAs(err, &NotFoundError{Resource: "sales order", ID: id.String()})
	}
	items, err := s.store.GetSalesOrderItems(ctx, order.ID)
	if err != nil {
		return SalesOrderWithItems{}, fmt.Errorf("failed to load sales order items: %w", err)
	}
	return SalesOrderWithItems{SalesOrder: order, Items: items}, nil
}

func (s *SalesOrderService) ListSalesOrders(ctx context.Context, organizationID uuid.UUID, status *string) ([]db.SalesOrder, error) {
	orders, err := s.store.ListSalesOrders(ctx, db.ListSalesOrdersParams{
		OrganizationID: organizationID,
		Status:         stringPtrToPgtype(status),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sales orders: %w", err)
	}
	return orders, nil
}

// UpdateSalesOrderStatus applies a caller-requested transition. The invoiced
// statuses are derived by the conversion engine and rejected here.
func (s *SalesOrderService) UpdateSalesOrderStatus(ctx context.Context, organizationID, id uuid.UUID, toStatus string) (db.SalesOrder, error) {
	order, err := s.store.GetSalesOrder(ctx, db.GetSalesOrderParams{ID: id, OrganizationID: organizationID})
	if err != nil {
		return db.SalesOrder{}, noRowsAs(err, &NotFoundError{Resource: "sales order", ID: id.String()})
	}

	if err := CheckTransition(DocumentTypeSalesOrder, order.Status, toStatus); err != nil {
		return db.SalesOrder{}, err
	}

	updated, err := s.store.UpdateSalesOrderStatus(ctx, db.UpdateSalesOrderStatusParams{
		ID:             id,
		OrganizationID: organizationID,
		FromStatus:     order.Status,
		ToStatus:       toStatus,
	})
	if err != nil {
		return db.SalesOrder{}, noRowsAs(err, ErrStaleVersion)
	}

	s.publishEvent(ctx, updated, "sales_order."+toStatus)
	return updated, nil
}

func (s *SalesOrderService) publishEvent(ctx context.Context, order db.SalesOrder, eventType string) {
	if s.events == nil {
		return
	}
	err := s.events.PublishDocumentEvent(ctx, interfaces.DocumentEvent{
		OrganizationID: order.OrganizationID,
		DocumentType:   string(DocumentTypeSalesOrder),
		DocumentID:     order.ID,
		EventType:      eventType,
		OccurredAt:     time.Now(),
	})
	if err != nil {
		logger.Log.Warn("Failed to publish sales order event",
			zap.String("salesOrderId", order.ID.String()),
			zap.String("eventType", eventType),
			zap.Error(err))
	}
}
