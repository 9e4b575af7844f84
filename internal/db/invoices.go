package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const invoiceColumns = `id, organization_id, invoice_type, customer_id, supplier_id, invoice_number, status,
	issue_date, due_date, subtotal, tax_amount, total, amount_paid, notes,
	sales_order_id, purchase_order_id, version, created_at, updated_at`

func scanInvoice(row pgx.Row) (Invoice, error) {
	var inv Invoice
	err := row.Scan(
		&inv.ID,
		&inv.OrganizationID,
		&inv.InvoiceType,
		&inv.CustomerID,
		&inv.SupplierID,
		&inv.InvoiceNumber,
		&inv.Status,
		&inv.IssueDate,
		&inv.DueDate,
		&inv.Subtotal,
		&inv.TaxAmount,
		&inv.Total,
		&inv.AmountPaid,
		&inv.Notes,
		&inv.SalesOrderID,
		&inv.PurchaseOrderID,
		&inv.Version,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	return inv, err
}

const createInvoice = `
INSERT INTO invoices (organization_id, invoice_type, customer_id, supplier_id, invoice_number,
	issue_date, due_date, subtotal, tax_amount, total, notes, sales_order_id, purchase_order_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING ` + invoiceColumns

type CreateInvoiceParams struct {
	OrganizationID  uuid.UUID
	InvoiceType     string
	CustomerID      pgtype.UUID
	SupplierID      pgtype.UUID
	InvoiceNumber   string
	IssueDate       pgtype.Date
	DueDate         pgtype.Date
	Subtotal        float64
	TaxAmount       float64
	Total           float64
	Notes           pgtype.Text
	SalesOrderID    pgtype.UUID
	PurchaseOrderID pgtype.UUID
}

func (q *Queries) CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, createInvoice,
		arg.OrganizationID,
		arg.InvoiceType,
		arg.CustomerID,
		arg.SupplierID,
		arg.InvoiceNumber,
		arg.IssueDate,
		arg.DueDate,
		arg.Subtotal,
		arg.TaxAmount,
		arg.Total,
		arg.Notes,
		arg.SalesOrderID,
		arg.PurchaseOrderID,
	)
	return scanInvoice(row)
}

const createInvoiceItem = `
INSERT INTO invoice_items (invoice_id, description, quantity, rate, tax_id, line_total, source_item_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, invoice_id, description, quantity, rate, tax_id, line_total, source_item_id, created_at
`

type CreateInvoiceItemParams struct {
	InvoiceID    uuid.UUID
	Description  string
	Quantity     float64
	Rate         float64
	TaxID        pgtype.UUID
	LineTotal    float64
	SourceItemID pgtype.UUID
}

func (q *Queries) CreateInvoiceItem(ctx context.Context, arg CreateInvoiceItemParams) (InvoiceItem, error) {
	row := q.db.QueryRow(ctx, createInvoiceItem,
		arg.InvoiceID,
		arg.Description,
		arg.Quantity,
		arg.Rate,
		arg.TaxID,
		arg.LineTotal,
		arg.SourceItemID,
	)
	var item InvoiceItem
	err := row.Scan(
		&item.ID,
		&item.InvoiceID,
		&item.Description,
		&item.Quantity,
		&item.Rate,
		&item.TaxID,
		&item.LineTotal,
		&item.SourceItemID,
		&item.CreatedAt,
	)
	return item, err
}

const getInvoice = `
SELECT ` + invoiceColumns + `
FROM invoices
WHERE id = $1 AND organization_id = $2
`

type GetInvoiceParams struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
}

func (q *Queries) GetInvoice(ctx context.Context, arg GetInvoiceParams) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, getInvoice, arg.ID, arg.OrganizationID))
}

const getInvoiceItems = `
SELECT id, invoice_id, description, quantity, rate, tax_id, line_total, source_item_id, created_at
FROM invoice_items
WHERE invoice_id = $1
ORDER BY created_at
`

func (q *Queries) GetInvoiceItems(ctx context.Context, invoiceID uuid.UUID) ([]InvoiceItem, error) {
	rows, err := q.db.Query(ctx, getInvoiceItems, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []InvoiceItem
	for rows.Next() {
		var item InvoiceItem
		if err := rows.Scan(
			&item.ID,
			&item.InvoiceID,
			&item.Description,
			&item.Quantity,
			&item.Rate,
			&item.TaxID,
			&item.LineTotal,
			&item.SourceItemID,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

const listInvoices = `
SELECT ` + invoiceColumns + `
FROM invoices
WHERE organization_id = $1
  AND ($2::text IS NULL OR invoice_type = $2)
  AND ($3::text IS NULL OR status = $3)
ORDER BY created_at DESC
`

type ListInvoicesParams struct {
	OrganizationID uuid.UUID
	InvoiceType    pgtype.Text
	Status         pgtype.Text
}

func (q *Queries) ListInvoices(ctx context.Context, arg ListInvoicesParams) ([]Invoice, error) {
	rows, err := q.db.Query(ctx, listInvoices, arg.OrganizationID, arg.InvoiceType, arg.Status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, inv)
	}
	return items, rows.Err()
}

const listInvoicesByIDs = `
SELECT ` + invoiceColumns + `
FROM invoices
WHERE organization_id = $1 AND id = ANY($2::uuid[])
`

type ListInvoicesByIDsParams struct {
	OrganizationID uuid.UUID
	IDs            []uuid.UUID
}

func (q *Queries) ListInvoicesByIDs(ctx context.Context, arg ListInvoicesByIDsParams) ([]Invoice, error) {
	rows, err := q.db.Query(ctx, listInvoicesByIDs, arg.OrganizationID, arg.IDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, inv)
	}
	return items, rows.Err()
}

// listOpenInvoices returns invoices of the given type for the given party that
// still carry an outstanding balance, oldest due date first.
const listOpenInvoices = `
SELECT ` + invoiceColumns + `
FROM invoices
WHERE organization_id = $1
  AND invoice_type = $2
  AND status IN ('submitted', 'partially_paid', 'overdue')
  AND (($2 = 'sales' AND customer_id = $3) OR ($2 = 'purchase' AND supplier_id = $3))
ORDER BY due_date NULLS LAST, created_at
`

type ListOpenInvoicesParams struct {
	OrganizationID uuid.UUID
	InvoiceType    string
	PartyID        uuid.UUID
}

func (q *Queries) ListOpenInvoices(ctx context.Context, arg ListOpenInvoicesParams) ([]Invoice, error) {
	rows, err := q.db.Query(ctx, listOpenInvoices, arg.OrganizationID, arg.InvoiceType, arg.PartyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, inv)
	}
	return items, rows.Err()
}

const updateInvoiceStatus = `
UPDATE invoices
SET status = $4, version = version + 1, updated_at = now()
WHERE id = $1 AND organization_id = $2 AND status = $3
RETURNING ` + invoiceColumns

type UpdateInvoiceStatusParams struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	FromStatus     string
	ToStatus       string
}

func (q *Queries) UpdateInvoiceStatus(ctx context.Context, arg UpdateInvoiceStatusParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, updateInvoiceStatus,
		arg.ID,
		arg.OrganizationID,
		arg.FromStatus,
		arg.ToStatus,
	)
	return scanInvoice(row)
}

// applyInvoiceAllocation commits the new paid amount and derived status under
// the version read when the allocation was validated.
const applyInvoiceAllocation = `
UPDATE invoices
SET amount_paid = $4, status = $5, version = version + 1, updated_at = now()
WHERE id = $1 AND organization_id = $2 AND version = $3
RETURNING ` + invoiceColumns

type ApplyInvoiceAllocationParams struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Version        int32
	AmountPaid     float64
	Status         string
}

func (q *Queries) ApplyInvoiceAllocation(ctx context.Context, arg ApplyInvoiceAllocationParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, applyInvoiceAllocation,
		arg.ID,
		arg.OrganizationID,
		arg.Version,
		arg.AmountPaid,
		arg.Status,
	)
	return scanInvoice(row)
}

const markInvoicesOverdue = `
UPDATE invoices
SET status = 'overdue', version = version + 1, updated_at = now()
WHERE organization_id = $1
  AND status IN ('submitted', 'partially_paid')
  AND due_date IS NOT NULL AND due_date < $2
  AND total - amount_paid > 0.01
RETURNING id
`

type MarkInvoicesOverdueParams struct {
	OrganizationID uuid.UUID
	Before         pgtype.Date
}

func (q *Queries) MarkInvoicesOverdue(ctx context.Context, arg MarkInvoicesOverdueParams) ([]uuid.UUID, error) {
	rows, err := q.db.Query(ctx, markInvoicesOverdue, arg.OrganizationID, arg.Before)
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
