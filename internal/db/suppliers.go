package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const supplierColumns = `id, organization_id, name, email, phone, address, tax_number, archived, created_at, updated_at`

func scanSupplier(row pgx.Row) (Supplier, error) {
	var s Supplier
	err := row.Scan(
		&s.ID,
		&s.OrganizationID,
		&s.Name,
		&s.Email,
		&s.Phone,
		&s.Address,
		&s.TaxNumber,
		&s.Archived,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

const createSupplier = `
INSERT INTO suppliers (organization_id, name, email, phone, address, tax_number)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + supplierColumns

type CreateSupplierParams struct {
	OrganizationID uuid.UUID
	Name           string
	Email          pgtype.Text
	Phone          pgtype.Text
	Address        pgtype.Text
	TaxNumber      pgtype.Text
}

func (q *Queries) CreateSupplier(ctx context.Context, arg CreateSupplierParams) (Supplier, error) {
	row := q.db.QueryRow(ctx, createSupplier,
		arg.OrganizationID,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.Address,
		arg.TaxNumber,
	)
	return scanSupplier(row)
}

const getSupplier = `
SELECT ` + supplierColumns + `
FROM suppliers
WHERE id = $1 AND organization_id = $2
`

type GetSupplierParams struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
}

func (q *Queries) GetSupplier(ctx context.Context, arg GetSupplierParams) (Supplier, error) {
	return scanSupplier(q.db.QueryRow(ctx, getSupplier, arg.ID, arg.OrganizationID))
}

const listSuppliers = `
SELECT ` + supplierColumns + `
FROM suppliers
WHERE organization_id = $1 AND archived = false
ORDER BY name
`

func (q *Queries) ListSuppliers(ctx context.Context, organizationID uuid.UUID) ([]Supplier, error) {
	rows, err := q.db.Query(ctx, listSuppliers, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

const updateSupplier = `
UPDATE suppliers
SET name = $3, email = $4, phone = $5, address = $6, tax_number = $7, updated_at = now()
WHERE id = $1 AND organization_id = $2
RETURNING ` + supplierColumns

type UpdateSupplierParams struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	Email          pgtype.Text
	Phone          pgtype.Text
	Address        pgtype.Text
	TaxNumber      pgtype.Text
}

func (q *Queries) UpdateSupplier(ctx context.Context, arg UpdateSupplierParams) (Supplier, error) {
	row := q.db.QueryRow(ctx, updateSupplier,
		arg.ID,
		arg.OrganizationID,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.Address,
		arg.TaxNumber,
	)
	return scanSupplier(row)
}

const archiveSupplier = `
UPDATE suppliers
SET archived = true, updated_at = now()
WHERE id = $1 AND organization_id = $2
`

type ArchiveSupplierParams struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
}

func (q *Queries) ArchiveSupplier(ctx context.Context, arg ArchiveSupplierParams) error {
	_, err := q.db.Exec(ctx, archiveSupplier, arg.ID, arg.OrganizationID)
	return err
}
