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

// PurchaseOrderService manages purchase orders up to the point the conversion
// engine turns them into supplier bills.
type PurchaseOrderService struct {
	store      db.Store
	calculator *TaxCalculator
	events     interfaces.EventPublisher
}

func NewPurchaseOrderService(store db.Store, calculator *TaxCalculator, events interfaces.EventPublisher) *PurchaseOrderService {
	return &PurchaseOrderService{
		store:      store,
		calculator: calculator,
		events:     events,
	}
}

type CreatePurchaseOrderParams struct {
	SupplierID   uuid.UUID
	OrderDate    *time.Time
	ExpectedDate *time.Time
	Notes        *string
	Items        []LineInput
}

type PurchaseOrderWithItems struct {
	PurchaseOrder db.PurchaseOrder
	Items         []db.PurchaseOrderItem
}

func (s *PurchaseOrderService) CreatePurchaseOrder(ctx context.Context, organizationID uuid.UUID, params CreatePurchaseOrderParams) (PurchaseOrderWithItems, error) {
	if _, err := s.store.GetSupplier(ctx, db.GetSupplierParams{ID: params.SupplierID, OrganizationID: organizationID}); err != nil {
		return PurchaseOrderWithItems{}, noRowsAs(err, &NotFoundError{Resource: "supplier", ID: params.SupplierID.String()})
	}

	totals, err := s.calculator.CalculateDocumentTotals(ctx, organizationID, TaxDirectionPurchase, params.Items)
	if err != nil {
		return PurchaseOrderWithItems{}, err
	}

	var result PurchaseOrderWithItems
	err = s.store.ExecTx(ctx, func(q db.Querier) error {
		number, err := nextDocumentNumber(ctx, q, organizationID, numberPrefixPurchaseOrder, time.Now())
		if err != nil {
			return err
		}

		order, err := q.CreatePurchaseOrder(ctx, db.CreatePurchaseOrderParams{
			OrganizationID: organizationID,
			SupplierID:     params.SupplierID,
			OrderNumber:    number,
			OrderDate:      datePtrToPgtype(params.OrderDate),
			ExpectedDate:   datePtrToPgtype(params.ExpectedDate),
			Subtotal:       totals.Subtotal,
			TaxAmount:      totals.TaxAmount,
			Total:          totals.Total,
			Notes:          stringPtrToPgtype(params.Notes),
		})
		if err != nil {
			return fmt.Errorf("failed to create purchase order: %w", err)
		}

		items, err := s.insertItems(ctx, q, order.ID, params.Items, totals)
		if err != nil {
			return err
		}

		result = PurchaseOrderWithItems{PurchaseOrder: order, Items: items}
		return nil
	})
	if err != nil {
		return PurchaseOrderWithItems{}, err
	}

	s.publishEvent(ctx, result.PurchaseOrder, "purchase_order.created")
	return result, nil
}

func (s *PurchaseOrderService) insertItems(ctx context.Context, q db.Querier, orderID uuid.UUID, lines []LineInput, totals DocumentTotals) ([]db.PurchaseOrderItem, error) {
	items := make([]db.PurchaseOrderItem, 0, len(lines))
	for i, line := range lines {
		item, err := q.CreatePurchaseOrderItem(ctx, db.CreatePurchaseOrderItemParams{
			PurchaseOrderID: orderID,
			Description:     line.Description,
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice,
			TaxID:           uuidPtrToPgtype(line.TaxID),
			LineTotal:       totals.Lines[i].Subtotal,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create purchase order item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *PurchaseOrderService) GetPurchaseOrder(ctx context.Context, organizationID, id uuid.UUID) (PurchaseOrderWithItems, error) {
	order, err := s.store.GetPurchaseOrder(ctx, db.GetPurchaseOrderParams{ID: id, OrganizationID: organizationID})
	if err != nil {
		return PurchaseOrderWithItems{}, noRowsAs(err, &NotFoundError{Resource: "purchase order", ID: id.String()})
	}
	items, err := s.store.GetPurchaseOrderItems(ctx, order.ID)
	if err != nil {
		return PurchaseOrderWithItems{}, fmt.Errorf("failed to load purchase order items: %w", err)
	}
	return PurchaseOrderWithItems{PurchaseOrder: order, Items: items}, nil
}

func (s *PurchaseOrderService) ListPurchaseOrders(ctx context.Context, organizationID uuid.UUID, status *string) ([]db.PurchaseOrder, error) {
	orders, err := s.store.ListPurchaseOrders(ctx, db.ListPurchaseOrdersParams{
		OrganizationID: organizationID,
		Status:         stringPtrToPgtype(status),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}
	return orders, nil
}

// UpdatePurchaseOrderItems replaces the line set of a draft order and
// recomputes its totals. Once the order leaves draft its lines are frozen.
func (s *PurchaseOrderService) UpdatePurchaseOrderItems(ctx context.Context, organizationID, id uuid.UUID, lines []LineInput) (PurchaseOrderWithItems, error) {
	order, err := s.store.GetPurchaseOrder(ctx, db.GetPurchaseOrderParams{ID: id, OrganizationID: organizationID})
	if err != nil {
		return PurchaseOrderWithItems{}, noRowsAs(err, &NotFoundError{Resource: "purchase order", ID: id.String()})
	}
	if order.Status != PurchaseOrderStatusDraft {
		return PurchaseOrderWithItems{}, &ValidationError{Field: "status", Message: "items can only be changed while the order is a draft"}
	}

	totals, err := s.calculator.CalculateDocumentTotals(ctx, organizationID, TaxDirectionPurchase, lines)
	if err != nil {
		return PurchaseOrderWithItems{}, err
	}

	var result PurchaseOrderWithItems
	err = s.store.ExecTx(ctx, func(q db.Querier) error {
		if err := q.DeletePurchaseOrderItems(ctx, order.ID); err != nil {
			return fmt.Errorf("failed to clear purchase order items: %w", err)
		}

		items, err := s.insertItems(ctx, q, order.ID, lines, totals)
		if err != nil {
			return err
		}

		updated, err := q.UpdatePurchaseOrderTotals(ctx, db.UpdatePurchaseOrderTotalsParams{
			ID:             order.ID,
			OrganizationID: organizationID,
			Version:        order.Version,
			Subtotal:       totals.Subtotal,
			TaxAmount:      totals.TaxAmount,
			Total:          totals.Total,
		})
		if err != nil {
			return noRowsAs(err, ErrStaleVersion)
		}

		result = PurchaseOrderWithItems{PurchaseOrder: updated, Items: items}
		return nil
	})
	if err != nil {
		return PurchaseOrderWithItems{}, err
	}
	return result, nil
}

// UpdatePurchaseOrderStatus applies a caller-requested transition. The billed
// statuses are derived by the conversion engine and rejected here.
func (s *PurchaseOrderService) UpdatePurchaseOrderStatus(ctx context.Context, organizationID, id uuid.UUID, toStatus string) (db.PurchaseOrder, error) {
	order, err := s.store.GetPurchaseOrder(ctx, db.GetPurchaseOrderParams{ID: id, OrganizationID: organizationID})
	if err != nil {
		return db.PurchaseOrder{}, noRowsAs(err, &NotFoundError{Resource: "purchase order", ID: id.String()})
	}

	if err := CheckTransition(DocumentTypePurchaseOrder, order.Status, toStatus); err != nil {
		return db.PurchaseOrder{}, err
	}

	updated, err := s.store.UpdatePurchaseOrderStatus(ctx, db.UpdatePurchaseOrderStatusParams{
		ID:             id,
		OrganizationID: organizationID,
		FromStatus:     order.Status,
		ToStatus:       toStatus,
	})
	if err != nil {
		return db.PurchaseOrder{}, noRowsAs(err, ErrStaleVersion)
	}

	s.publishEvent(ctx, updated, "purchase_order."+toStatus)
	return updated, nil
}

func (s *PurchaseOrderService) publishEvent(ctx context.Context, order db.PurchaseOrder, eventType string) {
	if s.events == nil {
		return
	}
	err := s.events.PublishDocumentEvent(ctx, interfaces.DocumentEvent{
		OrganizationID: order.OrganizationID,
		DocumentType:   string(DocumentTypePurchaseOrder),
		DocumentID:     order.ID,
		EventType:      eventType,
		OccurredAt:     time.Now(),
	})
	if err != nil {
		logger.Log.Warn("Failed to publish purchase order event",
			zap.String("purchaseOrderId", order.ID.String()),
			zap.String("eventType", eventType),
			zap.Error(err))
	}
}
