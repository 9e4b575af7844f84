package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agroflow/agroflow-api/internal/db"
)

// FarmService manages farms and their parcels. Parcels are referenced from
// document notes for traceability but carry no money of their own.
type FarmService struct {
	queries db.Querier
}

func NewFarmService(queries db.Querier) *FarmService {
	return &FarmService{queries: queries}
}

type FarmParams struct {
	Name         string
	Location     *string
	AreaHectares *float64
}

func (s *FarmService) CreateFarm(ctx context.Context, organizationID uuid.UUID, params FarmParams) (db.Farm, error) {
	if params.Name == "" {
		return db.Farm{}, &ValidationError{Field: "name", Message: "is required"}
	}

	farm, err := s.queries.CreateFarm(ctx, db.CreateFarmParams{
		OrganizationID: organizationID,
		Name:           params.Name,
		Location:       stringPtrToPgtype(params.Location),
		AreaHectares:   float64PtrToPgtype(params.AreaHectares),
	})
	if err != nil {
		return db.Farm{}, fmt.Errorf("failed to create farm: %w", err)
	}
	return farm, nil
}

func (s *FarmService) GetFarm(ctx context.Context, organizationID, id uuid.UUID) (db.Farm, error) {
	farm, err := s.queries.GetFarm(ctx, db.GetFarmParams{ID: id, OrganizationID: organizationID})
	if err != nil {
		return db.Farm{}, noRowsAs(err, &NotFoundError{Resource: "farm", ID: id.String()})
	}
	return farm, nil
}

func (s *FarmService) ListFarms(ctx context.Context, organizationID uuid.UUID) ([]db.Farm, error) {
	farms, err := s.queries.ListFarms(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list farms: %w", err)
	}
	return farms, nil
}

type ParcelParams struct {
	Name         string
	AreaHectares *float64
	CropType     *string
}

func (s *FarmService) CreateParcel(ctx context.Context, organizationID, farmID uuid.UUID, params ParcelParams) (db.Parcel, error) {
	if params.Name == "" {
		return db.Parcel{}, &ValidationError{Field: "name", Message: "is required"}
	}

	// The farm lookup doubles as the organization scope check.
	if _, err := s.GetFarm(ctx, organizationID, farmID); err != nil {
		return db.Parcel{}, err
	}

	parcel, err := s.queries.CreateParcel(ctx, db.CreateParcelParams{
		FarmID:       farmID,
		Name:         params.Name,
		AreaHectares: float64PtrToPgtype(params.AreaHectares),
		CropType:     stringPtrToPgtype(params.CropType),
	})
	if err != nil {
		return db.Parcel{}, fmt.Errorf("failed to create parcel: %w", err)
	}
	return parcel, nil
}

func (s *FarmService) ListParcels(ctx context.Context, organizationID, farmID uuid.UUID) ([]db.Parcel, error) {
	parcels, err := s.queries.ListParcels(ctx, db.ListParcelsParams{
		FarmID:         farmID,
		OrganizationID: organizationID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list parcels: %w", err)
	}
	return parcels, nil
}
