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

// ConversionService moves value along the document chain: accepted quotes
// become sales orders, sales orders become customer invoices and purchase
// orders become supplier bills. Each conversion runs in a single transaction
// and is guarded by the source document's version, so a concurrent conversion
// either fully applies or leaves no trace.
type ConversionService struct {
	store      db.Store
	calculator *TaxCalculator
	ledger     interfaces.LedgerPoster
	events     interfaces.EventPublisher
}

func NewConversionService(store db.Store, calculator *TaxCalculator, ledger interfaces.LedgerPoster, events interfaces.EventPublisher) *ConversionService {
	return &ConversionService{
		store:      store,
		calculator: calculator,
		ledger:     ledger,
		events:     events,
	}
}

// ConversionLine requests a quantity of one source item to carry into the
// target document.
type ConversionLine struct {
	ItemID   uuid.UUID
	Quantity float64
}

// Statuses from which an order can be (further) converted.
var salesOrderInvoiceable = map[string]bool{
	SalesOrderStatusConfirmed:          true,
	SalesOrderStatusProcessing:         true,
	SalesOrderStatusPartiallyDelivered: true,
	SalesOrderStatusDelivered:          true,
	SalesOrderStatusPartiallyInvoiced:  true,
}

var purchaseOrderBillable = map[string]bool{
	PurchaseOrderStatusConfirmed:         true,
	PurchaseOrderStatusPartiallyReceived: true,
	PurchaseOrderStatusReceived:          true,
	PurchaseOrderStatusPartiallyBilled:   true,
}

// ConvertQuoteToSalesOrder accepts a sent quote and turns it into a confirmed
// sales order carrying the quote's lines and totals, in one transaction. The
// quote ends up converted with a reference to the new order.
func (s *ConversionService) ConvertQuoteToSalesOrder(ctx context.Context, organizationID, quoteID uuid.UUID) (SalesOrderWithItems, error) {
	quote, err := s.store.GetQuote(ctx, db.GetQuoteParams{ID: quoteID, OrganizationID: organizationID})
	if err != nil {
		return SalesOrderWithItems{}, noRowsAs(err, &NotFoundError{Resource: "quote", ID: quoteID.String()})
	}
	if quote.Status != QuoteStatusSent {
		if quote.Status == QuoteStatusConverted {
			return SalesOrderWithItems{}, &AlreadyFullyConvertedError{DocumentType: string(DocumentTypeQuote), ID: quote.ID.String()}
		}
		return SalesOrderWithItems{}, &InvalidTransitionError{
			DocumentType: string(DocumentTypeQuote),
			From:         quote.Status,
			To:           QuoteStatusConverted,
		}
	}

	quoteItems, err := s.store.GetQuoteItems(ctx, quote.ID)
	if err != nil {
		return SalesOrderWithItems{}, fmt.Errorf("failed to load quote items: %w", err)
	}

	var result SalesOrderWithItems
	err = s.store.ExecTx(ctx, func(q db.Querier) error {
		order, _, err := acceptAndConvertQuoteTx(ctx, q, organizationID, quote, quoteItems)
		if err != nil {
			return err
		}
		result = order
		return nil
	})
	if err != nil {
		return SalesOrderWithItems{}, err
	}

	s.publishEvent(ctx, organizationID, DocumentTypeSalesOrder, result.SalesOrder.ID, "sales_order.created_from_quote")
	return result, nil
}

// acceptAndConvertQuoteTx stamps the sent quote accepted and immediately
// converts it, all against the caller's transaction. The status guard doubles
// as the concurrency check.
func acceptAndConvertQuoteTx(ctx context.Context, q db.Querier, organizationID uuid.UUID, quote db.Quote, quoteItems []db.QuoteItem) (SalesOrderWithItems, db.Quote, error) {
	if _, err := q.UpdateQuoteStatus(ctx, db.UpdateQuoteStatusParams{
		ID:             quote.ID,
		OrganizationID: organizationID,
		FromStatus:     quote.Status,
		ToStatus:       QuoteStatusAccepted,
		AcceptedAt:     timeToPgtype(time.Now()),
	}); err != nil {
		return SalesOrderWithItems{}, db.Quote{}, noRowsAs(err, ErrStaleVersion)
	}
	return convertQuoteTx(ctx, q, organizationID, quote, quoteItems)
}

// convertQuoteTx copies an accepted quote's lines into a confirmed sales order
// and marks the quote converted, all against the caller's transaction. The
// converted guard matches only status accepted, so a concurrent conversion
// rolls the whole transaction back.
func convertQuoteTx(ctx context.Context, q db.Querier, organizationID uuid.UUID, quote db.Quote, quoteItems []db.QuoteItem) (SalesOrderWithItems, db.Quote, error) {
	number, err := nextDocumentNumber(ctx, q, organizationID, numberPrefixSalesOrder, time.Now())
	if err != nil {
		return SalesOrderWithItems{}, db.Quote{}, err
	}

	order, err := q.CreateSalesOrder(ctx, db.CreateSalesOrderParams{
		OrganizationID: organizationID,
		CustomerID:     quote.CustomerID,
		OrderNumber:    number,
		Status:         SalesOrderStatusConfirmed,
		OrderDate:      dateToPgtype(time.Now()),
		Subtotal:       quote.Subtotal,
		TaxAmount:      quote.TaxAmount,
		Total:          quote.Total,
		Notes:          quote.Notes,
		QuoteID:        uuidToPgtype(quote.ID),
	})
	if err != nil {
		return SalesOrderWithItems{}, db.Quote{}, fmt.Errorf("failed to create sales order from quote: %w", err)
	}

	items := make([]db.SalesOrderItem, 0, len(quoteItems))
	for _, qi := range quoteItems {
		item, err := q.CreateSalesOrderItem(ctx, db.CreateSalesOrderItemParams{
			SalesOrderID: order.ID,
			Description:  qi.Description,
			Quantity:     qi.Quantity,
			UnitPrice:    qi.UnitPrice,
			TaxID:        qi.TaxID,
			LineTotal:    qi.LineTotal,
		})
		if err != nil {
			return SalesOrderWithItems{}, db.Quote{}, fmt.Errorf("failed to copy quote item: %w", err)
		}
		items = append(items, item)
	}

	converted, err := q.MarkQuoteConverted(ctx, db.MarkQuoteConvertedParams{
		ID:             quote.ID,
		OrganizationID: organizationID,
		SalesOrderID:   uuidToPgtype(order.ID),
	})
	if err != nil {
		return SalesOrderWithItems{}, db.Quote{}, noRowsAs(err, ErrStaleVersion)
	}

	return SalesOrderWithItems{SalesOrder: order, Items: items}, converted, nil
}

// ConvertSalesOrderToInvoice creates a customer invoice from a sales order.
// An empty lines slice invoices every remaining quantity; otherwise only the
// requested item quantities are invoiced and the order keeps track of what is
// left. Requesting more than an item's remaining quantity is rejected.
func (s *ConversionService) ConvertSalesOrderToInvoice(ctx context.Context, organizationID, salesOrderID uuid.UUID, lines []ConversionLine) (InvoiceWithItems, error) {
	order, err := s.store.GetSalesOrder(ctx, db.GetSalesOrderParams{ID: salesOrderID, OrganizationID: organizationID})
	if err != nil {
		return InvoiceWithItems{}, noRowsAs(err, &NotFoundError{Resource: "sales order", ID: salesOrderID.String()})
	}
	if !salesOrderInvoiceable[order.Status] {
		if order.Status == SalesOrderStatusInvoiced {
			return InvoiceWithItems{}, &AlreadyFullyConvertedError{DocumentType: string(DocumentTypeSalesOrder), ID: order.ID.String()}
		}
		return InvoiceWithItems{}, &InvalidTransitionError{
			DocumentType: string(DocumentTypeSalesOrder),
			From:         order.Status,
			To:           SalesOrderStatusPartiallyInvoiced,
		}
	}

	items, err := s.store.GetSalesOrderItems(ctx, order.ID)
	if err != nil {
		return InvoiceWithItems{}, fmt.Errorf("failed to load sales order items: %w", err)
	}

	plan, err := planConversion(string(DocumentTypeSalesOrder), order.ID, lines, salesOrderConversionSources(items))
	if err != nil {
		return InvoiceWithItems{}, err
	}

	totals, err := s.calculator.CalculateDocumentTotals(ctx, organizationID, TaxDirectionSales, plan.invoiceLines)
	if err != nil {
		return InvoiceWithItems{}, err
	}

	newInvoicedTotal := RoundCurrency(order.InvoicedTotal + totals.Total)
	newStatus := SalesOrderStatusPartiallyInvoiced
	if plan.exhaustsSource && order.Total-newInvoicedTotal <= amountTolerance {
		newStatus = SalesOrderStatusInvoiced
	}

	var result InvoiceWithItems
	err = s.store.ExecTx(ctx, func(q db.Querier) error {
		number, err := nextDocumentNumber(ctx, q, organizationID, numberPrefixInvoice, time.Now())
		if err != nil {
			return err
		}

		invoice, err := q.CreateInvoice(ctx, db.CreateInvoiceParams{
			OrganizationID: organizationID,
			InvoiceType:    TaxDirectionSales,
			CustomerID:     uuidToPgtype(order.CustomerID),
			InvoiceNumber:  number,
			IssueDate:      dateToPgtype(time.Now()),
			Subtotal:       totals.Subtotal,
			TaxAmount:      totals.TaxAmount,
			Total:          totals.Total,
			SalesOrderID:   uuidToPgtype(order.ID),
		})
		if err != nil {
			return fmt.Errorf("failed to create invoice: %w", err)
		}

		invItems, err := s.insertInvoiceItems(ctx, q, invoice.ID, plan, totals)
		if err != nil {
			return err
		}

		for _, step := range plan.steps {
			if err := q.SetSalesOrderItemInvoicedQuantity(ctx, db.SetSalesOrderItemInvoicedQuantityParams{
				ID:               step.itemID,
				InvoicedQuantity: step.newConverted,
			}); err != nil {
				return fmt.Errorf("failed to update invoiced quantity: %w", err)
			}
		}

		if _, err := q.ApplySalesOrderConversion(ctx, db.ApplySalesOrderConversionParams{
			ID:             order.ID,
			OrganizationID: organizationID,
			Version:        order.Version,
			InvoicedTotal:  newInvoicedTotal,
			Status:         newStatus,
		}); err != nil {
			return noRowsAs(err, ErrStaleVersion)
		}

		result = InvoiceWithItems{Invoice: invoice, Items: invItems}
		return nil
	})
	if err != nil {
		return InvoiceWithItems{}, err
	}

	s.postInvoiceToLedger(ctx, result.Invoice)
	s.publishEvent(ctx, organizationID, DocumentTypeInvoice, result.Invoice.ID, "invoice.created_from_sales_order")
	return result, nil
}

// ConvertPurchaseOrderToBill creates a supplier bill from a purchase order,
// mirroring the sales side with billed quantities and the running billed
// total.
func (s *ConversionService) ConvertPurchaseOrderToBill(ctx context.Context, organizationID, purchaseOrderID uuid.UUID, lines []ConversionLine) (InvoiceWithItems, error) {
	order, err := s.store.GetPurchaseOrder(ctx, db.GetPurchaseOrderParams{ID: purchaseOrderID, OrganizationID: organizationID})
	if err != nil {
		return InvoiceWithItems{}, noRowsAs(err, &NotFoundError{Resource: "purchase order", ID: purchaseOrderID.String()})
	}
	if !purchaseOrderBillable[order.Status] {
		if order.Status == PurchaseOrderStatusBilled {
			return InvoiceWithItems{}, &AlreadyFullyConvertedError{DocumentType: string(DocumentTypePurchaseOrder), ID: order.ID.String()}
		}
		return InvoiceWithItems{}, &InvalidTransitionError{
			DocumentType: string(DocumentTypePurchaseOrder),
			From:         order.Status,
			To:           PurchaseOrderStatusPartiallyBilled,
		}
	}

	items, err := s.store.GetPurchaseOrderItems(ctx, order.ID)
	if err != nil {
		return InvoiceWithItems{}, fmt.Errorf("failed to load purchase order items: %w", err)
	}

	plan, err := planConversion(string(DocumentTypePurchaseOrder), order.ID, lines, purchaseOrderConversionSources(items))
	if err != nil {
		return InvoiceWithItems{}, err
	}

	totals, err := s.calculator.CalculateDocumentTotals(ctx, organizationID, TaxDirectionPurchase, plan.invoiceLines)
	if err != nil {
		return InvoiceWithItems{}, err
	}

	newBilledTotal := RoundCurrency(order.BilledTotal + totals.Total)
	newStatus := PurchaseOrderStatusPartiallyBilled
	if plan.exhaustsSource && order.Total-newBilledTotal <= amountTolerance {
		newStatus = PurchaseOrderStatusBilled
	}

	var result InvoiceWithItems
	err = s.store.ExecTx(ctx, func(q db.Querier) error {
		number, err := nextDocumentNumber(ctx, q, organizationID, numberPrefixBill, time.Now())
		if err != nil {
			return err
		}

		invoice, err := q.CreateInvoice(ctx, db.CreateInvoiceParams{
			OrganizationID:  organizationID,
			InvoiceType:     TaxDirectionPurchase,
			SupplierID:      uuidToPgtype(order.SupplierID),
			InvoiceNumber:   number,
			IssueDate:       dateToPgtype(time.Now()),
			Subtotal:        totals.Subtotal,
			TaxAmount:       totals.TaxAmount,
			Total:           totals.Total,
			PurchaseOrderID: uuidToPgtype(order.ID),
		})
		if err != nil {
			return fmt.Errorf("failed to create bill: %w", err)
		}

		invItems, err := s.insertInvoiceItems(ctx, q, invoice.ID, plan, totals)
		if err != nil {
			return err
		}

		for _, step := range plan.steps {
			if err := q.SetPurchaseOrderItemBilledQuantity(ctx, db.SetPurchaseOrderItemBilledQuantityParams{
				ID:             step.itemID,
				BilledQuantity: step.newConverted,
			}); err != nil {
				return fmt.Errorf("failed to update billed quantity: %w", err)
			}
		}

		if _, err := q.ApplyPurchaseOrderConversion(ctx, db.ApplyPurchaseOrderConversionParams{
			ID:             order.ID,
			OrganizationID: organizationID,
			Version:        order.Version,
			BilledTotal:    newBilledTotal,
			Status:         newStatus,
		}); err != nil {
			return noRowsAs(err, ErrStaleVersion)
		}

		result = InvoiceWithItems{Invoice: invoice, Items: invItems}
		return nil
	})
	if err != nil {
		return InvoiceWithItems{}, err
	}

	s.postInvoiceToLedger(ctx, result.Invoice)
	s.publishEvent(ctx, organizationID, DocumentTypeInvoice, result.Invoice.ID, "bill.created_from_purchase_order")
	return result, nil
}

// conversionSource is the view of one order item the planner works on.
type conversionSource struct {
	itemID      uuid.UUID
	description string
	quantity    float64
	unitPrice   float64
	taxID       *uuid.UUID
	converted   float64
}

type conversionStep struct {
	itemID       uuid.UUID
	newConverted float64
}

type conversionPlan struct {
	invoiceLines   []LineInput
	sourceItemIDs  []uuid.UUID
	steps          []conversionStep
	exhaustsSource bool
}

func salesOrderConversionSources(items []db.SalesOrderItem) []conversionSource {
	sources := make([]conversionSource, 0, len(items))
	for _, item := range items {
		sources = append(sources, conversionSource{
			itemID:      item.ID,
			description: item.Description,
			quantity:    item.Quantity,
			unitPrice:   item.UnitPrice,
			taxID:       pgtypeUUIDPtr(item.TaxID),
			converted:   item.InvoicedQuantity,
		})
	}
	return sources
}

func purchaseOrderConversionSources(items []db.PurchaseOrderItem) []conversionSource {
	sources := make([]conversionSource, 0, len(items))
	for _, item := range items {
		sources = append(sources, conversionSource{
			itemID:      item.ID,
			description: item.Description,
			quantity:    item.Quantity,
			unitPrice:   item.UnitPrice,
			taxID:       pgtypeUUIDPtr(item.TaxID),
			converted:   item.BilledQuantity,
		})
	}
	return sources
}

// planConversion resolves the requested lines against the source items. An
// empty request means "everything that is left". The plan records the new
// converted quantity per touched item and whether the conversion leaves no
// remaining quantity on any item.
func planConversion(docType string, orderID uuid.UUID, requested []ConversionLine, sources []conversionSource) (conversionPlan, error) {
	byID := make(map[uuid.UUID]conversionSource, len(sources))
	for _, src := range sources {
		byID[src.itemID] = src
	}

	if len(requested) == 0 {
		requested = make([]ConversionLine, 0, len(sources))
		for _, src := range sources {
			remaining := src.quantity - src.converted
			if remaining > 0 {
				requested = append(requested, ConversionLine{ItemID: src.itemID, Quantity: remaining})
			}
		}
		if len(requested) == 0 {
			return conversionPlan{}, &AlreadyFullyConvertedError{DocumentType: docType, ID: orderID.String()}
		}
	}

	var plan conversionPlan
	taken := make(map[uuid.UUID]float64, len(requested))
	for i, line := range requested {
		src, ok := byID[line.ItemID]
		if !ok {
			return conversionPlan{}, &ValidationError{
				Field:   fmt.Sprintf("lines[%d].item_id", i),
				Message: "does not belong to this order",
			}
		}
		if line.Quantity <= 0 {
			return conversionPlan{}, &ValidationError{
				Field:   fmt.Sprintf("lines[%d].quantity", i),
				Message: "must be positive",
			}
		}
		remaining := src.quantity - src.converted - taken[line.ItemID]
		if line.Quantity > remaining+amountTolerance {
			return conversionPlan{}, &ValidationError{
				Field:   fmt.Sprintf("lines[%d].quantity", i),
				Message: fmt.Sprintf("requested %.2f exceeds remaining %.2f", line.Quantity, remaining),
			}
		}
		taken[line.ItemID] += line.Quantity

		plan.invoiceLines = append(plan.invoiceLines, LineInput{
			Description: src.description,
			Quantity:    line.Quantity,
			UnitPrice:   src.unitPrice,
			TaxID:       src.taxID,
		})
		plan.sourceItemIDs = append(plan.sourceItemIDs, src.itemID)
	}

	plan.exhaustsSource = true
	for _, src := range sources {
		newConverted := src.converted + taken[src.itemID]
		if take, touched := taken[src.itemID]; touched && take > 0 {
			plan.steps = append(plan.steps, conversionStep{itemID: src.itemID, newConverted: newConverted})
		}
		if src.quantity-newConverted > amountTolerance {
			plan.exhaustsSource = false
		}
	}
	return plan, nil
}

func (s *ConversionService) insertInvoiceItems(ctx context.Context, q db.Querier, invoiceID uuid.UUID, plan conversionPlan, totals DocumentTotals) ([]db.InvoiceItem, error) {
	items := make([]db.InvoiceItem, 0, len(plan.invoiceLines))
	for i, line := range plan.invoiceLines {
		item, err := q.CreateInvoiceItem(ctx, db.CreateInvoiceItemParams{
			InvoiceID:    invoiceID,
			Description:  line.Description,
			Quantity:     line.Quantity,
			Rate:         line.UnitPrice,
			TaxID:        uuidPtrToPgtype(line.TaxID),
			LineTotal:    totals.Lines[i].Subtotal,
			SourceItemID: uuidToPgtype(plan.sourceItemIDs[i]),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create invoice item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *ConversionService) postInvoiceToLedger(ctx context.Context, invoice db.Invoice) {
	if s.ledger == nil {
		return
	}

	var entries []interfaces.LedgerEntry
	if invoice.InvoiceType == TaxDirectionSales {
		entries = []interfaces.LedgerEntry{
			{Account: "1200 accounts receivable", Debit: invoice.Total},
			{Account: "4000 revenue", Credit: invoice.Subtotal},
		}
		if invoice.TaxAmount != 0 {
			entries = append(entries, interfaces.LedgerEntry{Account: "2200 tax payable", Credit: invoice.TaxAmount})
		}
	} else {
		entries = []interfaces.LedgerEntry{
			{Account: "5000 cost of goods", Debit: invoice.Subtotal},
			{Account: "2100 accounts payable", Credit: invoice.Total},
		}
		if invoice.TaxAmount != 0 {
			entries = append(entries, interfaces.LedgerEntry{Account: "1300 tax receivable", Debit: invoice.TaxAmount})
		}
	}

	posting := interfaces.LedgerPosting{
		OrganizationID: invoice.OrganizationID,
		DocumentType:   string(DocumentTypeInvoice),
		DocumentID:     invoice.ID,
		Reference:      invoice.InvoiceNumber,
		PostedAt:       time.Now(),
		Entries:        entries,
	}
	if err := s.ledger.Post(ctx, posting); err != nil {
		logger.Log.Warn("Failed to post invoice to ledger",
			zap.String("invoiceId", invoice.ID.String()),
			zap.Error(err))
	}
}

func (s *ConversionService) publishEvent(ctx context.Context, organizationID uuid.UUID, docType DocumentType, documentID uuid.UUID, eventType string) {
	if s.events == nil {
		return
	}
	err := s.events.PublishDocumentEvent(ctx, interfaces.DocumentEvent{
		OrganizationID: organizationID,
		DocumentType:   string(docType),
		DocumentID:     documentID,
		EventType:      eventType,
		OccurredAt:     time.Now(),
	})
	if err != nil {
		logger.Log.Warn("Failed to publish conversion event",
			zap.String("documentId", documentID.String()),
			zap.String("eventType", eventType),
			zap.Error(err))
	}
}
