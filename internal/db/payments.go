package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const paymentColumns = `id, organization_id, payment_type, customer_id, supplier_id, payment_date,
	amount, allocated_amount, method, reference, status, version, created_at, updated_at`

func scanPayment(row pgx.Row) (Payment, error) {
	var p Payment
	err := row.Scan(
		&p.ID,
		&p.OrganizationID,
		&p.PaymentType,
		&p.CustomerID,
		&p.SupplierID,
		&p.PaymentDate,
		&p.Amount,
		&p.AllocatedAmount,
		&p.Method,
		&p.Reference,
		&p.Status,
		&p.Version,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

const createPayment = `
INSERT INTO payments (organization_id, payment_type, customer_id, supplier_id, payment_date,
	amount, method, reference)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + paymentColumns

type CreatePaymentParams struct {
	OrganizationID uuid.UUID
	PaymentType    string
	CustomerID     pgtype.UUID
	SupplierID     pgtype.UUID
	PaymentDate    pgtype.Date
	Amount         float64
	Method         pgtype.Text
	Reference      pgtype.Text
}

func (q *Queries) CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error) {
	row := q.db.QueryRow(ctx, createPayment,
		arg.OrganizationID,
		arg.PaymentType,
		arg.CustomerID,
		arg.SupplierID,
		arg.PaymentDate,
		arg.Amount,
		arg.Method,
		arg.Reference,
	)
	return scanPayment(row)
}

const getPayment = `
SELECT ` + paymentColumns + `
FROM payments
WHERE id = $1 AND organization_id = $2
`

type GetPaymentParams struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
}

func (q *Queries) GetPayment(ctx context.Context, arg GetPaymentParams) (Payment, error) {
	return scanPayment(q.db.QueryRow(ctx, getPayment, arg.ID, arg.OrganizationID))
}

const listPayments = `
SELECT ` + paymentColumns + `
FROM payments
WHERE organization_id = $1 AND ($2::text IS NULL OR payment_type = $2)
ORDER BY created_at DESC
`

type ListPaymentsParams struct {
	OrganizationID uuid.UUID
	PaymentType    pgtype.Text
}

func (q *Queries) ListPayments(ctx context.Context, arg ListPaymentsParams) ([]Payment, error) {
	rows, err := q.db.Query(ctx, listPayments, arg.OrganizationID, arg.PaymentType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

const applyPaymentAllocation = `
UPDATE payments
SET allocated_amount = $4, version = version + 1, updated_at = now()
WHERE id = $1 AND organization_id = $2 AND version = $3
RETURNING ` + paymentColumns

type ApplyPaymentAllocationParams struct {
	ID              uuid.UUID
	OrganizationID  uuid.UUID
	Version         int32
	AllocatedAmount float64
}

func (q *Queries) ApplyPaymentAllocation(ctx context.Context, arg ApplyPaymentAllocationParams) (Payment, error) {
	row := q.db.QueryRow(ctx, applyPaymentAllocation,
		arg.ID,
		arg.OrganizationID,
		arg.Version,
		arg.AllocatedAmount,
	)
	return scanPayment(row)
}

const cancelPayment = `
UPDATE payments
SET status = 'cancelled', version = version + 1, updated_at = now()
WHERE id = $1 AND organization_id = $2 AND allocated_amount = 0 AND status <> 'cancelled'
RETURNING ` + paymentColumns

type CancelPaymentParams struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
}

func (q *Queries) CancelPayment(ctx context.Context, arg CancelPaymentParams) (Payment, error) {
	return scanPayment(q.db.QueryRow(ctx, cancelPayment, arg.ID, arg.OrganizationID))
}

const createPaymentAllocation = `
INSERT INTO payment_allocations (payment_id, invoice_id, amount)
VALUES ($1, $2, $3)
RETURNING id, payment_id, invoice_id, amount, created_at
`

type CreatePaymentAllocationParams struct {
	PaymentID uuid.UUID
	InvoiceID uuid.UUID
	Amount    float64
}

func (q *Queries) CreatePaymentAllocation(ctx context.Context, arg CreatePaymentAllocationParams) (PaymentAllocation, error) {
	row := q.db.QueryRow(ctx, createPaymentAllocation, arg.PaymentID, arg.InvoiceID, arg.Amount)
	var pa PaymentAllocation
	err := row.Scan(
		&pa.ID,
		&pa.PaymentID,
		&pa.InvoiceID,
		&pa.Amount,
		&pa.CreatedAt,
	)
	return pa, err
}

const getPaymentAllocations = `
SELECT id, payment_id, invoice_id, amount, created_at
FROM payment_allocations
WHERE payment_id = $1
ORDER BY created_at
`

func (q *Queries) GetPaymentAllocations(ctx context.Context, paymentID uuid.UUID) ([]PaymentAllocation, error) {
	rows, err := q.db.Query(ctx, getPaymentAllocations, paymentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []PaymentAllocation
	for rows.Next() {
		var pa PaymentAllocation
		if err := rows.Scan(
			&pa.ID,
			&pa.PaymentID,
			&pa.InvoiceID,
			&pa.Amount,
			&pa.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, pa)
	}
	return items, rows.Err()
}
