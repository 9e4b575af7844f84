package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const quoteColumns = `id, organization_id, customer_id, quote_number, status, issue_date, expiry_date,
	subtotal, tax_amount, total, notes, converted_to_order_id, sent_at, accepted_at, version, created_at, updated_at`

func scanQuote(row pgx.Row) (Quote, error) {
	var qt Quote
	err := row.Scan(
		&qt.ID,
		&qt.OrganizationID,
		&qt.CustomerID,
		&qt.QuoteNumber,
		&qt.Status,
		&qt.IssueDate,
		&qt.ExpiryDate,
		&qt.Subtotal,
		&qt.TaxAmount,
		&qt.Total,
		&qt.Notes,
		&qt.ConvertedToOrderID,
		&qt.SentAt,
		&qt.AcceptedAt,
		&qt.Version,
		&qt.CreatedAt,
		&qt.UpdatedAt,
	)
	return qt, err
}

const createQuote = `
INSERT INTO quotes (organization_id, customer_id, quote_number, issue_date, expiry_date,
	subtotal, tax_amount, total, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + quoteColumns

type CreateQuoteParams struct {
	OrganizationID uuid.UUID
	CustomerID     uuid.UUID
	QuoteNumber    string
	IssueDate      pgtype.Date
	ExpiryDate     pgtype.Date
	Subtotal       float64
	TaxAmount      float64
	Total          float64
	Notes          pgtype.Text
}

func (q *Queries) CreateQuote(ctx context.Context, arg CreateQuoteParams) (Quote, error) {
	row := q.db.QueryRow(ctx, createQuote,
		arg.OrganizationID,
		arg.CustomerID,
		arg.QuoteNumber,
		arg.IssueDate,
		arg.ExpiryDate,
		arg.Subtotal,
		arg.TaxAmount,
		arg.Total,
		arg.Notes,
	)
	return scanQuote(row)
}

const createQuoteItem = `
INSERT INTO quote_items (quote_id, description, quantity, unit_price, tax_id, line_total)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, quote_id, description, quantity, unit_price, tax_id, line_total, created_at
`

type CreateQuoteItemParams struct {
	QuoteID     uuid.UUID
	Description string
	Quantity    float64
	UnitPrice   float64
	TaxID       pgtype.UUID
	LineTotal   float64
}

func (q *Queries) CreateQuoteItem(ctx context.Context, arg CreateQuoteItemParams) (QuoteItem, error) {
	row := q.db.QueryRow(ctx, createQuoteItem,
		arg.QuoteID,
		arg.Description,
		arg.Quantity,
		arg.UnitPrice,
		arg.TaxID,
		arg.LineTotal,
	)
	var item QuoteItem
	err := row.Scan(
		&item.ID,
		&item.QuoteID,
		&item.Description,
		&item.Quantity,
		&item.UnitPrice,
		&item.TaxID,
		&item.LineTotal,
		&item.CreatedAt,
	)
	return item, err
}

const getQuote = `
SELECT ` + quoteColumns + `
FROM quotes
WHERE id = $1 AND organization_id = $2
`

type GetQuoteParams struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
}

func (q *Queries) GetQuote(ctx context.Context, arg GetQuoteParams) (Quote, error) {
	return scanQuote(q.db.QueryRow(ctx, getQuote, arg.ID, arg.OrganizationID))
}

const getQuoteItems = `
SELECT id, quote_id, description, quantity, unit_price, tax_id, line_total, created_at
FROM quote_items
WHERE quote_id = $1
ORDER BY created_at
`

func (q *Queries) GetQuoteItems(ctx context.Context, quoteID uuid.UUID) ([]QuoteItem, error) {
	rows, err := q.db.Query(ctx, getQuoteItems, quoteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []QuoteItem
	for rows.Next() {
		var item QuoteItem
		if err := rows.Scan(
			&item.ID,
			&item.QuoteID,
			&item.Description,
			&item.Quantity,
			&item.UnitPrice,
			&item.TaxID,
			&item.LineTotal,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

const listQuotes = `
SELECT ` + quoteColumns + `
FROM quotes
WHERE organization_id = $1 AND ($2::text IS NULL OR status = $2)
ORDER BY created_at DESC
`

type ListQuotesParams struct {
	OrganizationID uuid.UUID
	Status         pgtype.Text
}

func (q *Queries) ListQuotes(ctx context.Context, arg ListQuotesParams) ([]Quote, error) {
	rows, err := q.db.Query(ctx, listQuotes, arg.OrganizationID, arg.Status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Quote
	for rows.Next() {
		qt, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, qt)
	}
	return items, rows.Err()
}

// updateQuoteStatus only moves the row when it is still in the expected status,
// so a concurrent transition loses cleanly instead of clobbering.
const updateQuoteStatus = `
UPDATE quotes
SET status = $4,
    sent_at = COALESCE($5, sent_at),
    accepted_at = COALESCE($6, accepted_at),
    version = version + 1,
    updated_at = now()
WHERE id = $1 AND organization_id = $2 AND status = $3
RETURNING ` + quoteColumns

type UpdateQuoteStatusParams struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	FromStatus     string
	ToStatus       string
	SentAt         pgtype.Timestamptz
	AcceptedAt     pgtype.Timestamptz
}

func (q *Queries) UpdateQuoteStatus(ctx context.Context, arg UpdateQuoteStatusParams) (Quote, error) {
	row := q.db.QueryRow(ctx, updateQuoteStatus,
		arg.ID,
		arg.OrganizationID,
		arg.FromStatus,
		arg.ToStatus,
		arg.SentAt,
		arg.AcceptedAt,
	)
	return scanQuote(row)
}

const markQuoteConverted = `
UPDATE quotes
SET status = 'converted',
    converted_to_order_id = $3,
    version = version + 1,
    updated_at = now()
WHERE id = $1 AND organization_id = $2 AND status = 'accepted'
RETURNING ` + quoteColumns

type MarkQuoteConvertedParams struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	SalesOrderID   pgtype.UUID
}

func (q *Queries) MarkQuoteConverted(ctx context.Context, arg MarkQuoteConvertedParams) (Quote, error) {
	row := q.db.QueryRow(ctx, markQuoteConverted, arg.ID, arg.OrganizationID, arg.SalesOrderID)
	return scanQuote(row)
}

const expireQuotes = `
UPDATE quotes
SET status = 'expired', version = version + 1, updated_at = now()
WHERE organization_id = $1 AND status = 'sent' AND expiry_date IS NOT NULL AND expiry_date < $2
RETURNING id
`

type ExpireQuotesParams struct {
	OrganizationID uuid.UUID
	Before         pgtype.Date
}

func (q *Queries) ExpireQuotes(ctx context.Context, arg ExpireQuotesParams) ([]uuid.UUID, error) {
	rows, err := q.db.Query(ctx, expireQuotes, arg.OrganizationID, arg.Before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
