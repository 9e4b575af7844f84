package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/agroflow/agroflow-api/internal/db"
	"github.com/agroflow/agroflow-api/internal/interfaces"
	"github.com/agroflow/agroflow-api/internal/logger"
)

// DocumentEmailer is the slice of EmailService the quote and invoice flows
// need. Kept narrow so tests can stub it.
type DocumentEmailer interface {
	SendDocumentEmail(ctx context.Context, toEmail string, subject string, data DocumentEmailData) (string, error)
}

// QuoteService manages the quote lifecycle up to the point a quote is handed
// to the conversion engine.
type QuoteService struct {
	store      db.Store
	calculator *TaxCalculator
	events     interfaces.EventPublisher
	emails     DocumentEmailer
}

func NewQuoteService(store db.Store, calculator *TaxCalculator, events interfaces.EventPublisher, emails DocumentEmailer) *QuoteService {
	return &QuoteService{
		store:      store,
		calculator: calculator,
		events:     events,
		emails:     emails,
	}
}

type CreateQuoteParams struct {
	CustomerID uuid.UUID
	IssueDate  *time.Time
	ExpiryDate *time.Time
	Notes      *string
	Items      []LineInput
}

// QuoteWithItems bundles a quote with its lines for read paths.
type QuoteWithItems struct {
	Quote db.Quote
	Items []db.QuoteItem
}

// CreateQuote computes totals from the submitted lines and persists the quote
// and its items atomically. The document number is claimed inside the same
// transaction.
func (s *QuoteService) CreateQuote(ctx context.Context, organizationID uuid.UUID, params CreateQuoteParams) (QuoteWithItems, error) {
	if _, err := s.store.GetCustomer(ctx, db.GetCustomerParams{ID: params.CustomerID, OrganizationID: organizationID}); err != nil {
		return QuoteWithItems{}, noRowsAs(err, &NotFoundError{Resource: "customer", ID: params.CustomerID.String()})
	}

	totals, err := s.calculator.CalculateDocumentTotals(ctx, organizationID, TaxDirectionSales, params.Items)
	if err != nil {
		return QuoteWithItems{}, err
	}

	var result QuoteWithItems
	err = s.store.ExecTx(ctx, func(q db.Querier) error {
		number, err := nextDocumentNumber(ctx, q, organizationID, numberPrefixQuote, time.Now())
		if err != nil {
			return err
		}

		quote, err := q.CreateQuote(ctx, db.CreateQuoteParams{
			OrganizationID: organizationID,
			CustomerID:     params.CustomerID,
			QuoteNumber:    number,
			IssueDate:      datePtrToPgtype(params.IssueDate),
			ExpiryDate:     datePtrToPgtype(params.ExpiryDate),
			Subtotal:       totals.Subtotal,
			TaxAmount:      totals.TaxAmount,
			Total:          totals.Total,
			Notes:          stringPtrToPgtype(params.Notes),
		})
		if err != nil {
			return fmt.Errorf("failed to create quote: %w", err)
		}

		items := make([]db.QuoteItem, 0, len(params.Items))
		for i, line := range params.Items {
			item, err := q.CreateQuoteItem(ctx, db.CreateQuoteItemParams{
				QuoteID:     quote.ID,
				Description: line.Description,
				Quantity:    line.Quantity,
				UnitPrice:   line.UnitPrice,
				TaxID:       uuidPtrToPgtype(line.TaxID),
				LineTotal:   totals.Lines[i].Subtotal,
			})
			if err != nil {
				return fmt.Errorf("failed to create quote item: %w", err)
			}
			items = append(items, item)
		}

		result = QuoteWithItems{Quote: quote, Items: items}
		return nil
	})
	if err != nil {
		return QuoteWithItems{}, err
	}

	s.publishEvent(ctx, result.Quote, "quote.created")
	return result, nil
}

func (s *QuoteService) GetQuote(ctx context.Context, organizationID, id uuid.UUID) (QuoteWithItems, error) {
	quote, err := s.store.GetQuote(ctx, db.GetQuoteParams{ID: id, OrganizationID: organizationID})
	if err != nil {
		return QuoteWithItems{}, noRowsAs(err, &NotFoundError{Resource: "quote", ID: id.String()})
	}
	items, err := s.store.GetQuoteItems(ctx, quote.ID)
	if err != nil {
		return QuoteWithItems{}, fmt.Errorf("failed to load quote items: %w", err)
	}
	return QuoteWithItems{Quote: quote, Items: items}, nil
}

func (s *QuoteService) ListQuotes(ctx context.Context, organizationID uuid.UUID, status *string) ([]db.Quote, error) {
	quotes, err := s.store.ListQuotes(ctx, db.ListQuotesParams{
		OrganizationID: organizationID,
		Status:         stringPtrToPgtype(status),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	return quotes, nil
}

// UpdateQuoteStatus applies a caller-requested transition. Derived statuses
// (expired, converted) are rejected here; they are only produced by the
// sweeps and the conversion engine. Accepting a quote immediately converts it
// into a sales order in the same transaction.
func (s *QuoteService) UpdateQuoteStatus(ctx context.Context, organizationID, id uuid.UUID, toStatus string) (db.Quote, error) {
	quote, err := s.store.GetQuote(ctx, db.GetQuoteParams{ID: id, OrganizationID: organizationID})
	if err != nil {
		return db.Quote{}, noRowsAs(err, &NotFoundError{Resource: "quote", ID: id.String()})
	}

	if err := CheckTransition(DocumentTypeQuote, quote.Status, toStatus); err != nil {
		return db.Quote{}, err
	}

	if toStatus == QuoteStatusAccepted {
		return s.acceptQuote(ctx, organizationID, quote)
	}

	var sentAt pgtype.Timestamptz
	if toStatus == QuoteStatusSent {
		sentAt = timeToPgtype(time.Now())
	}

	updated, err := s.store.UpdateQuoteStatus(ctx, db.UpdateQuoteStatusParams{
		ID:             id,
		OrganizationID: organizationID,
		FromStatus:     quote.Status,
		ToStatus:       toStatus,
		SentAt:         sentAt,
	})
	if err != nil {
		return db.Quote{}, noRowsAs(err, ErrStaleVersion)
	}

	s.publishEvent(ctx, updated, "quote."+toStatus)
	return updated, nil
}

// acceptQuote marks the quote accepted and converts it into a sales order in
// one transaction. If any conversion step fails the acceptance rolls back
// with it, so the quote stays sent.
func (s *QuoteService) acceptQuote(ctx context.Context, organizationID uuid.UUID, quote db.Quote) (db.Quote, error) {
	items, err := s.store.GetQuoteItems(ctx, quote.ID)
	if err != nil {
		return db.Quote{}, fmt.Errorf("failed to load quote items: %w", err)
	}

	var converted db.Quote
	var order SalesOrderWithItems
	err = s.store.ExecTx(ctx, func(q db.Querier) error {
		o, c, err := acceptAndConvertQuoteTx(ctx, q, organizationID, quote, items)
		if err != nil {
			return err
		}
		order, converted = o, c
		return nil
	})
	if err != nil {
		return db.Quote{}, err
	}

	logger.Log.Info("Quote accepted and converted",
		zap.String("quoteId", quote.ID.String()),
		zap.String("salesOrderId", order.SalesOrder.ID.String()))
	s.publishEvent(ctx, converted, "quote.accepted")
	s.publishEvent(ctx, converted, "quote.converted")
	return converted, nil
}

// SendQuote transitions the quote to sent and emails it to the customer when
// an address is on file.
func (s *QuoteService) SendQuote(ctx context.Context, organizationID, id uuid.UUID) (db.Quote, error) {
	quote, err := s.UpdateQuoteStatus(ctx, organizationID, id, QuoteStatusSent)
	if err != nil {
		return db.Quote{}, err
	}

	if s.emails == nil {
		return quote, nil
	}

	customer, err := s.store.GetCustomer(ctx, db.GetCustomerParams{ID: quote.CustomerID, OrganizationID: organizationID})
	if err != nil {
		return db.Quote{}, noRowsAs(err, &NotFoundError{Resource: "customer", ID: quote.CustomerID.String()})
	}
	if !customer.Email.Valid || customer.Email.String == "" {
		logger.Log.Warn("Quote sent without email, customer has no address on file",
			zap.String("quoteId", quote.ID.String()))
		return quote, nil
	}

	org, err := s.store.GetOrganization(ctx, organizationID)
	if err != nil {
		return db.Quote{}, fmt.Errorf("failed to load organization: %w", err)
	}

	data := DocumentEmailData{
		RecipientName:  customer.Name,
		DocumentNumber: quote.QuoteNumber,
		DocumentKind:   "quote",
		Total:          fmt.Sprintf("%.2f", quote.Total),
		Currency:       org.Currency,
		SenderName:     org.Name,
	}
	if quote.ExpiryDate.Valid {
		data.ExpiryDate = quote.ExpiryDate.Time.Format("2006-01-02")
	}
	subject := fmt.Sprintf("Quote %s from %s", quote.QuoteNumber, org.Name)
	if _, err := s.emails.SendDocumentEmail(ctx, customer.Email.String, subject, data); err != nil {
		// The status change stands; delivery can be retried by resending.
		logger.Log.Error("Failed to email quote",
			zap.String("quoteId", quote.ID.String()),
			zap.Error(err))
	}
	return quote, nil
}

// ExpireQuotes moves the organization's sent quotes past their expiry date to
// expired. It is meant to run from a daily scheduler.
func (s *QuoteService) ExpireQuotes(ctx context.Context, organizationID uuid.UUID, now time.Time) (int, error) {
	ids, err := s.store.ExpireQuotes(ctx, db.ExpireQuotesParams{
		OrganizationID: organizationID,
		Before:         dateToPgtype(now),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to expire quotes: %w", err)
	}
	if len(ids) > 0 {
		logger.Log.Info("Expired quotes past their expiry date",
			zap.String("organizationId", organizationID.String()),
			zap.Int("count", len(ids)))
	}
	return len(ids), nil
}

func (s *QuoteService) publishEvent(ctx context.Context, quote db.Quote, eventType string) {
	if s.events == nil {
		return
	}
	err := s.events.PublishDocumentEvent(ctx, interfaces.DocumentEvent{
		OrganizationID: quote.OrganizationID,
		DocumentType:   string(DocumentTypeQuote),
		DocumentID:     quote.ID,
		EventType:      eventType,
		OccurredAt:     time.Now(),
	})
	if err != nil {
		logger.Log.Warn("Failed to publish quote event",
			zap.String("quoteId", quote.ID.String()),
			zap.String("eventType", eventType),
			zap.Error(err))
	}
}
