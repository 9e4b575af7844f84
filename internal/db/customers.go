package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const customerColumns = `id, organization_id, name, email, phone, address, tax_number, archived, created_at, updated_at`

func scanCustomer(row pgx.Row) (Customer, error) {
	var c Customer
	err := row.Scan(
		&c.ID,
		&c.OrganizationID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Address,
		&c.TaxNumber,
		&c.Archived,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

const createCustomer = `
INSERT INTO customers (organization_id, name, email, phone, address, tax_number)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + customerColumns

type CreateCustomerParams struct {
	OrganizationID uuid.UUID
	Name           string
	Email          pgtype.Text
	Phone          pgtype.Text
	Address        pgtype.Text
	TaxNumber      pgtype.Text
}

func (q *Queries) CreateCustomer(ctx context.Context, arg CreateCustomerParams) (Customer, error) {
	row := q.db.QueryRow(ctx, createCustomer,
		arg.OrganizationID,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.Address,
		arg.TaxNumber,
	)
	return scanCustomer(row)
}

const getCustomer = `
SELECT ` + customerColumns + `
FROM customers
WHERE id = $1 AND organization_id = $2
`

type GetCustomerParams struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
}

func (q *Queries) GetCustomer(ctx context.Context, arg GetCustomerParams) (Customer, error) {
	return scanCustomer(q.db.QueryRow(ctx, getCustomer, arg.ID, arg.OrganizationID))
}

const listCustomers = `
SELECT ` + customerColumns + `
FROM customers
WHERE organization_id = $1 AND archived = false
ORDER BY name
`

func (q *Queries) ListCustomers(ctx context.Context, organizationID uuid.UUID) ([]Customer, error) {
	rows, err := q.db.Query(ctx, listCustomers, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

const updateCustomer = `
UPDATE customers
SET name = $3, email = $4, phone = $5, address = $6, tax_number = $7, updated_at = now()
WHERE id = $1 AND organization_id = $2
RETURNING ` + customerColumns

type UpdateCustomerParams struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	Email          pgtype.Text
	Phone          pgtype.Text
	Address        pgtype.Text
	TaxNumber      pgtype.Text
}

func (q *Queries) UpdateCustomer(ctx context.Context, arg UpdateCustomerParams) (Customer, error) {
	row := q.db.QueryRow(ctx, updateCustomer,
		arg.ID,
		arg.OrganizationID,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.Address,
		arg.TaxNumber,
	)
	return scanCustomer(row)
}

const archiveCustomer = `
UPDATE customers
SET archived = true, updated_at = now()
WHERE id = $1 AND organization_id = $2
`

type ArchiveCustomerParams struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
}

func (q *Queries) ArchiveCustomer(ctx context.Context, arg ArchiveCustomerParams) error {
	_, err := q.db.Exec(ctx, archiveCustomer, arg.ID, arg.OrganizationID)
	return err
}
