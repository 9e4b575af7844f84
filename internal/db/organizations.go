package db

import (
	"context"

	"github.com/google/uuid"
)

const getOrganization = `
SELECT id, name, plan, currency, created_at, updated_at
FROM organizations
WHERE id = $1
`

func (q *Queries) GetOrganization(ctx context.Context, id uuid.UUID) (Organization, error) {
	row := q.db.QueryRow(ctx, getOrganization, id)
	var o Organization
	err := row.Scan(
		&o.ID,
		&o.Name,
		&o.Plan,
		&o.Currency,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

const createOrganization = `
INSERT INTO organizations (name, plan, currency)
VALUES ($1, $2, $3)
RETURNING id, name, plan, currency, created_at, updated_at
`

type CreateOrganizationParams struct {
	Name     string
	Plan     string
	Currency string
}

func (q *Queries) CreateOrganization(ctx context.Context, arg CreateOrganizationParams) (Organization, error) {
	row := q.db.QueryRow(ctx, createOrganization, arg.Name, arg.Plan, arg.Currency)
	var o Organization
	err := row.Scan(
		&o.ID,
		&o.Name,
		&o.Plan,
		&o.Currency,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}
