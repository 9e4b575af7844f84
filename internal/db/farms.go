package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func scanFarm(row pgx.Row) (Farm, error) {
	var f Farm
	err := row.Scan(
		&f.ID,
		&f.OrganizationID,
		&f.Name,
		&f.Location,
		&f.AreaHectares,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	return f, err
}

const createFarm = `
INSERT INTO farms (organization_id, name, location, area_hectares)
VALUES ($1, $2, $3, $4)
RETURNING id, organization_id, name, location, area_hectares, created_at, updated_at
`

type CreateFarmParams struct {
	OrganizationID uuid.UUID
	Name           string
	Location       pgtype.Text
	AreaHectares   pgtype.Float8
}

func (q *Queries) CreateFarm(ctx context.Context, arg CreateFarmParams) (Farm, error) {
	row := q.db.QueryRow(ctx, createFarm,
		arg.OrganizationID,
		arg.Name,
		arg.Location,
		arg.AreaHectares,
	)
	return scanFarm(row)
}

const getFarm = `
SELECT id, organization_id, name, location, area_hectares, created_at, updated_at
FROM farms
WHERE id = $1 AND organization_id = $2
`

type GetFarmParams struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
}

func (q *Queries) GetFarm(ctx context.Context, arg GetFarmParams) (Farm, error) {
	return scanFarm(q.db.QueryRow(ctx, getFarm, arg.ID, arg.OrganizationID))
}

const listFarms = `
SELECT id, organization_id, name, location, area_hectares, created_at, updated_at
FROM farms
WHERE organization_id = $1
ORDER BY name
`

func (q *Queries) ListFarms(ctx context.Context, organizationID uuid.UUID) ([]Farm, error) {
	rows, err := q.db.Query(ctx, listFarms, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Farm
	for rows.Next() {
		f, err := scanFarm(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

const createParcel = `
INSERT INTO parcels (farm_id, name, area_hectares, crop_type)
VALUES ($1, $2, $3, $4)
RETURNING id, farm_id, name, area_hectares, crop_type, created_at, updated_at
`

type CreateParcelParams struct {
	FarmID       uuid.UUID
	Name         string
	AreaHectares pgtype.Float8
	CropType     pgtype.Text
}

func (q *Queries) CreateParcel(ctx context.Context, arg CreateParcelParams) (Parcel, error) {
	row := q.db.QueryRow(ctx, createParcel,
		arg.FarmID,
		arg.Name,
		arg.AreaHectares,
		arg.CropType,
	)
	var p Parcel
	err := row.Scan(
		&p.ID,
		&p.FarmID,
		&p.Name,
		&p.AreaHectares,
		&p.CropType,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

const listParcels = `
SELECT p.id, p.farm_id, p.name, p.area_hectares, p.crop_type, p.created_at, p.updated_at
FROM parcels p
JOIN farms f ON f.id = p.farm_id
WHERE p.farm_id = $1 AND f.organization_id = $2
ORDER BY p.name
`

type ListParcelsParams struct {
	FarmID         uuid.UUID
	OrganizationID uuid.UUID
}

func (q *Queries) ListParcels(ctx context.Context, arg ListParcelsParams) ([]Parcel, error) {
	rows, err := q.db.Query(ctx, listParcels, arg.FarmID, arg.OrganizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Parcel
	for rows.Next() {
		var p Parcel
		if err := rows.Scan(
			&p.ID,
			&p.FarmID,
			&p.Name,
			&p.AreaHectares,
			&p.CropType,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
