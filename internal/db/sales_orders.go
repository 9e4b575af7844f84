package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const salesOrderColumns = `id, organization_id, customer_id, order_number, status, order_date, delivery_date,
	subtotal, tax_amount, total, invoiced_total, notes, quote_id, version, created_at, updated_at`

func scanSalesOrder(row pgx.Row) (SalesOrder, error) {
	var so SalesOrder
	err := row.Scan(
		&so.ID,
		&so.OrganizationID,
		&so.CustomerID,
		&so.OrderNumber,
		&so.Status,
		&so.OrderDate,
		&so.DeliveryDate,
		&so.Subtotal,
		&so.TaxAmount,
		&so.Total,
		&so.InvoicedTotal,
		&so.Notes,
		&so.QuoteID,
		&so.Version,
		&so.CreatedAt,
		&so.UpdatedAt,
	)
	return so, err
}

const createSalesOrder = `
INSERT INTO sales_orders (organization_id, customer_id, order_number, status, order_date, delivery_date,
	subtotal, tax_amount, total, notes, quote_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + salesOrderColumns

type CreateSalesOrderParams struct {
	OrganizationID uuid.UUID
	CustomerID     uuid.UUID
	OrderNumber    string
	Status         string
	OrderDate      pgtype.Date
	DeliveryDate   pgtype.Date
	Subtotal       float64
	TaxAmount      float64
	Total          float64
	Notes          pgtype.Text
	QuoteID        pgtype.UUID
}

func (q *Queries) CreateSalesOrder(ctx context.Context, arg CreateSalesOrderParams) (SalesOrder, error) {
	row := q.db.QueryRow(ctx, createSalesOrder,
		arg.OrganizationID,
		arg.CustomerID,
		arg.OrderNumber,
		arg.Status,
		arg.OrderDate,
		arg.DeliveryDate,
		arg.Subtotal,
		arg.TaxAmount,
		arg.Total,
		arg.Notes,
		arg.QuoteID,
	)
	return scanSalesOrder(row)
}

const createSalesOrderItem = `
INSERT INTO sales_order_items (sales_order_id, description, quantity, unit_price, tax_id, line_total)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, sales_order_id, description, quantity, unit_price, tax_id, line_total, invoiced_quantity, created_at
`

type CreateSalesOrderItemParams struct {
	SalesOrderID uuid.UUID
	Description  string
	Quantity     float64
	UnitPrice    float64
	TaxID        pgtype.UUID
	LineTotal    float64
}

func (q *Queries) CreateSalesOrderItem(ctx context.Context, arg CreateSalesOrderItemParams) (SalesOrderItem, error) {
	row := q.db.QueryRow(ctx, createSalesOrderItem,
		arg.SalesOrderID,
		arg.Description,
		arg.Quantity,
		arg.UnitPrice,
		arg.TaxID,
		arg.LineTotal,
	)
	var item SalesOrderItem
	err := row.Scan(
		&item.ID,
		&item.SalesOrderID,
		&item.Description,
		&item.Quantity,
		&item.UnitPrice,
		&item.TaxID,
		&item.LineTotal,
		&item.InvoicedQuantity,
		&item.CreatedAt,
	)
	return item, err
}

const getSalesOrder = `
SELECT ` + salesOrderColumns + `
FROM sales_orders
WHERE id = $1 AND organization_id = $2
`

type GetSalesOrderParams struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
}

func (q *Queries) GetSalesOrder(ctx context.Context, arg GetSalesOrderParams) (SalesOrder, error) {
	return scanSalesOrder(q.db.QueryRow(ctx, getSalesOrder, arg.ID, arg.OrganizationID))
}

const getSalesOrderItems = `
SELECT id, sales_order_id, description, quantity, unit_price, tax_id, line_total, invoiced_quantity, created_at
FROM sales_order_items
WHERE sales_order_id = $1
ORDER BY created_at
`

func (q *Queries) GetSalesOrderItems(ctx context.Context, salesOrderID uuid.UUID) ([]SalesOrderItem, error) {
	rows, err := q.db.Query(ctx, getSalesOrderItems, salesOrderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SalesOrderItem
	for rows.Next() {
		var item SalesOrderItem
		if err := rows.Scan(
			&item.ID,
			&item.SalesOrderID,
			&item.Description,
			&item.Quantity,
			&item.UnitPrice,
			&item.TaxID,
			&item.LineTotal,
			&item.InvoicedQuantity,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

const listSalesOrders = `
SELECT ` + salesOrderColumns + `
FROM sales_orders
WHERE organization_id = $1 AND ($2::text IS NULL OR status = $2)
ORDER BY created_at DESC
`

type ListSalesOrdersParams struct {
	OrganizationID uuid.UUID
	Status         pgtype.Text
}

func (q *Queries) ListSalesOrders(ctx context.Context, arg ListSalesOrdersParams) ([]SalesOrder, error) {
	rows, err := q.db.Query(ctx, listSalesOrders, arg.OrganizationID, arg.Status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SalesOrder
	for rows.Next() {
		so, err := scanSalesOrder(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, so)
	}
	return items, rows.Err()
}

const updateSalesOrderStatus = `
UPDATE sales_orders
SET status = $4, version = version + 1, updated_at = now()
WHERE id = $1 AND organization_id = $2 AND status = $3
RETURNING ` + salesOrderColumns

type UpdateSalesOrderStatusParams struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	FromStatus     string
	ToStatus       string
}

func (q *Queries) UpdateSalesOrderStatus(ctx context.Context, arg UpdateSalesOrderStatusParams) (SalesOrder, error) {
	row := q.db.QueryRow(ctx, updateSalesOrderStatus,
		arg.ID,
		arg.OrganizationID,
		arg.FromStatus,
		arg.ToStatus,
	)
	return scanSalesOrder(row)
}

// applySalesOrderConversion commits the running invoiced total and resulting
// status in one statement, guarded by the version read at the start of the
// conversion. No row comes back when someone else converted in between.
const applySalesOrderConversion = `
UPDATE sales_orders
SET invoiced_total = $4, status = $5, version = version + 1, updated_at = now()
WHERE id = $1 AND organization_id = $2 AND version = $3
RETURNING ` + salesOrderColumns

type ApplySalesOrderConversionParams struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Version        int32
	InvoicedTotal  float64
	Status         string
}

func (q *Queries) ApplySalesOrderConversion(ctx context.Context, arg ApplySalesOrderConversionParams) (SalesOrder, error) {
	row := q.db.QueryRow(ctx, applySalesOrderConversion,
		arg.ID,
		arg.OrganizationID,
		arg.Version,
		arg.InvoicedTotal,
		arg.Status,
	)
	return scanSalesOrder(row)
}

const setSalesOrderItemInvoicedQuantity = `
UPDATE sales_order_items
SET invoiced_quantity = $2
WHERE id = $1
`

type SetSalesOrderItemInvoicedQuantityParams struct {
	ID               uuid.UUID
	InvoicedQuantity float64
}

func (q *Queries) SetSalesOrderItemInvoicedQuantity(ctx context.Context, arg SetSalesOrderItemInvoicedQuantityParams) error {
	_, err := q.db.Exec(ctx, setSalesOrderItemInvoicedQuantity, arg.ID, arg.InvoicedQuantity)
	return err
}
