package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const purchaseOrderColumns = `id, organization_id, supplier_id, order_number, status, order_date, expected_date,
	subtotal, tax_amount, total, billed_total, notes, version, created_at, updated_at`

func scanPurchaseOrder(row pgx.Row) (PurchaseOrder, error) {
	var po PurchaseOrder
	err := row.Scan(
		&po.ID,
		&po.OrganizationID,
		&po.SupplierID,
		&po.OrderNumber,
		&po.Status,
		&po.OrderDate,
		&po.ExpectedDate,
		&po.Subtotal,
		&po.TaxAmount,
		&po.Total,
		&po.BilledTotal,
		&po.Notes,
		&po.Version,
		&po.CreatedAt,
		&po.UpdatedAt,
	)
	return po, err
}

const createPurchaseOrder = `
INSERT INTO purchase_orders (organization_id, supplier_id, order_number, order_date, expected_date,
	subtotal, tax_amount, total, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + purchaseOrderColumns

type CreatePurchaseOrderParams struct {
	OrganizationID uuid.UUID
	SupplierID     uuid.UUID
	OrderNumber    string
	OrderDate      pgtype.Date
	ExpectedDate   pgtype.Date
	Subtotal       float64
	TaxAmount      float64
	Total          float64
	Notes          pgtype.Text
}

func (q *Queries) CreatePurchaseOrder(ctx context.Context, arg CreatePurchaseOrderParams) (PurchaseOrder, error) {
	row := q.db.QueryRow(ctx, createPurchaseOrder,
		arg.OrganizationID,
		arg.SupplierID,
		arg.OrderNumber,
		arg.OrderDate,
		arg.ExpectedDate,
		arg.Subtotal,
		arg.TaxAmount,
		arg.Total,
		arg.Notes,
	)
	return scanPurchaseOrder(row)
}

const createPurchaseOrderItem = `
INSERT INTO purchase_order_items (purchase_order_id, description, quantity, unit_price, tax_id, line_total)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, purchase_order_id, description, quantity, unit_price, tax_id, line_total, billed_quantity, created_at
`

type CreatePurchaseOrderItemParams struct {
	PurchaseOrderID uuid.UUID
	Description     string
	Quantity        float64
	UnitPrice       float64
	TaxID           pgtype.UUID
	LineTotal       float64
}

func (q *Queries) CreatePurchaseOrderItem(ctx context.Context, arg CreatePurchaseOrderItemParams) (PurchaseOrderItem, error) {
	row := q.db.QueryRow(ctx, createPurchaseOrderItem,
		arg.PurchaseOrderID,
		arg.Description,
		arg.Quantity,
		arg.UnitPrice,
		arg.TaxID,
		arg.LineTotal,
	)
	var item PurchaseOrderItem
	err := row.Scan(
		&item.ID,
		&item.PurchaseOrderID,
		&item.Description,
		&item.Quantity,
		&item.UnitPrice,
		&item.TaxID,
		&item.LineTotal,
		&item.BilledQuantity,
		&item.CreatedAt,
	)
	return item, err
}

const getPurchaseOrder = `
SELECT ` + purchaseOrderColumns + `
FROM purchase_orders
WHERE id = $1 AND organization_id = $2
`

type GetPurchaseOrderParams struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
}

func (q *Queries) GetPurchaseOrder(ctx context.Context, arg GetPurchaseOrderParams) (PurchaseOrder, error) {
	return scanPurchaseOrder(q.db.QueryRow(ctx, getPurchaseOrder, arg.ID, arg.OrganizationID))
}

const getPurchaseOrderItems = `
SELECT id, purchase_order_id, description, quantity, unit_price, tax_id, line_total, billed_quantity, created_at
FROM purchase_order_items
WHERE purchase_order_id = $1
ORDER BY created_at
`

func (q *Queries) GetPurchaseOrderItems(ctx context.Context, purchaseOrderID uuid.UUID) ([]PurchaseOrderItem, error) {
	rows, err := q.db.Query(ctx, getPurchaseOrderItems, purchaseOrderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []PurchaseOrderItem
	for rows.Next() {
		var item PurchaseOrderItem
		if err := rows.Scan(
			&item.ID,
			&item.PurchaseOrderID,
			&item.Description,
			&item.Quantity,
			&item.UnitPrice,
			&item.TaxID,
			&item.LineTotal,
			&item.BilledQuantity,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

const listPurchaseOrders = `
SELECT ` + purchaseOrderColumns + `
FROM purchase_orders
WHERE organization_id = $1 AND ($2::text IS NULL OR status = $2)
ORDER BY created_at DESC
`

type ListPurchaseOrdersParams struct {
	OrganizationID uuid.UUID
	Status         pgtype.Text
}

func (q *Queries) ListPurchaseOrders(ctx context.Context, arg ListPurchaseOrdersParams) ([]PurchaseOrder, error) {
	rows, err := q.db.Query(ctx, listPurchaseOrders, arg.OrganizationID, arg.Status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []PurchaseOrder
	for rows.Next() {
		po, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, po)
	}
	return items, rows.Err()
}

const updatePurchaseOrderStatus = `
UPDATE purchase_orders
SET status = $4, version = version + 1, updated_at = now()
WHERE id = $1 AND organization_id = $2 AND status = $3
RETURNING ` + purchaseOrderColumns

type UpdatePurchaseOrderStatusParams struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	FromStatus     string
	ToStatus       string
}

func (q *Queries) UpdatePurchaseOrderStatus(ctx context.Context, arg UpdatePurchaseOrderStatusParams) (PurchaseOrder, error) {
	row := q.db.QueryRow(ctx, updatePurchaseOrderStatus,
		arg.ID,
		arg.OrganizationID,
		arg.FromStatus,
		arg.ToStatus,
	)
	return scanPurchaseOrder(row)
}

const updatePurchaseOrderTotals = `
UPDATE purchase_orders
SET subtotal = $4, tax_amount = $5, total = $6, version = version + 1, updated_at = now()
WHERE id = $1 AND organization_id = $2 AND version = $3
RETURNING ` + purchaseOrderColumns

type UpdatePurchaseOrderTotalsParams struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Version        int32
	Subtotal       float64
	TaxAmount      float64
	Total          float64
}

func (q *Queries) UpdatePurchaseOrderTotals(ctx context.Context, arg UpdatePurchaseOrderTotalsParams) (PurchaseOrder, error) {
	row := q.db.QueryRow(ctx, updatePurchaseOrderTotals,
		arg.ID,
		arg.OrganizationID,
		arg.Version,
		arg.Subtotal,
		arg.TaxAmount,
		arg.Total,
	)
	return scanPurchaseOrder(row)
}

const deletePurchaseOrderItems = `
DELETE FROM purchase_order_items
WHERE purchase_order_id = $1
`

func (q *Queries) DeletePurchaseOrderItems(ctx context.Context, purchaseOrderID uuid.UUID) error {
	_, err := q.db.Exec(ctx, deletePurchaseOrderItems, purchaseOrderID)
	return err
}

const applyPurchaseOrderConversion = `
UPDATE purchase_orders
SET billed_total = $4, status = $5, version = version + 1, updated_at = now()
WHERE id = $1 AND organization_id = $2 AND version = $3
RETURNING ` + purchaseOrderColumns

type ApplyPurchaseOrderConversionParams struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Version        int32
	BilledTotal    float64
	Status         string
}

func (q *Queries) ApplyPurchaseOrderConversion(ctx context.Context, arg ApplyPurchaseOrderConversionParams) (PurchaseOrder, error) {
	row := q.db.QueryRow(ctx, applyPurchaseOrderConversion,
		arg.ID,
		arg.OrganizationID,
		arg.Version,
		arg.BilledTotal,
		arg.Status,
	)
	return scanPurchaseOrder(row)
}

const setPurchaseOrderItemBilledQuantity = `
UPDATE purchase_order_items
SET billed_quantity = $2
WHERE id = $1
`

type SetPurchaseOrderItemBilledQuantityParams struct {
	ID             uuid.UUID
	BilledQuantity float64
}

func (q *Queries) SetPurchaseOrderItemBilledQuantity(ctx context.Context, arg SetPurchaseOrderItemBilledQuantityParams) error {
	_, err := q.db.Exec(ctx, setPurchaseOrderItemBilledQuantity, arg.ID, arg.BilledQuantity)
	return err
}
