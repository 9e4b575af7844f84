package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const taxColumns = `id, organization_id, name, rate, tax_type, active, created_at, updated_at`

func scanTax(row pgx.Row) (Tax, error) {
	var t Tax
	err := row.Scan(
		&t.ID,
		&t.OrganizationID,
		&t.Name,
		&t.Rate,
		&t.TaxType,
		&t.Active,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	return t, err
}

const createTax = `
INSERT INTO taxes (organization_id, name, rate, tax_type)
VALUES ($1, $2, $3, $4)
RETURNING ` + taxColumns

type CreateTaxParams struct {
	OrganizationID uuid.UUID
	Name           string
	Rate           float64
	TaxType        string
}

func (q *Queries) CreateTax(ctx context.Context, arg CreateTaxParams) (Tax, error) {
	row := q.db.QueryRow(ctx, createTax,
		arg.OrganizationID,
		arg.Name,
		arg.Rate,
		arg.TaxType,
	)
	return scanTax(row)
}

const getTax = `
SELECT ` + taxColumns + `
FROM taxes
WHERE id = $1 AND organization_id = $2
`

type GetTaxParams struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
}

func (q *Queries) GetTax(ctx context.Context, arg GetTaxParams) (Tax, error) {
	return scanTax(q.db.QueryRow(ctx, getTax, arg.ID, arg.OrganizationID))
}

const getTaxesByIDs = `
SELECT ` + taxColumns + `
FROM taxes
WHERE organization_id = $1 AND id = ANY($2::uuid[]) AND active = true
`

type GetTaxesByIDsParams struct {
	OrganizationID uuid.UUID
	IDs            []uuid.UUID
}

func (q *Queries) GetTaxesByIDs(ctx context.Context, arg GetTaxesByIDsParams) ([]Tax, error) {
	rows, err := q.db.Query(ctx, getTaxesByIDs, arg.OrganizationID, arg.IDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Tax
	for rows.Next() {
		t, err := scanTax(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

const listTaxes = `
SELECT ` + taxColumns + `
FROM taxes
WHERE organization_id = $1 AND active = true
ORDER BY name
`

func (q *Queries) ListTaxes(ctx context.Context, organizationID uuid.UUID) ([]Tax, error) {
	rows, err := q.db.Query(ctx, listTaxes, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Tax
	for rows.Next() {
		t, err := scanTax(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

const deactivateTax = `
UPDATE taxes
SET active = false, updated_at = now()
WHERE id = $1 AND organization_id = $2
`

type DeactivateTaxParams struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
}

func (q *Queries) DeactivateTax(ctx context.Context, arg DeactivateTaxParams) error {
	_, err := q.db.Exec(ctx, deactivateTax, arg.ID, arg.OrganizationID)
	return err
}
