package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agroflow/agroflow-api/internal/db"
)

// SupplierService manages the suppliers a farm buys from.
type SupplierService struct {
	queries db.Querier
}

func NewSupplierService(queries db.Querier) *SupplierService {
	return &SupplierService{queries: queries}
}

type SupplierParams struct {
	Name      string
	Email     *string
	Phone     *string
	Address   *string
	TaxNumber *string
}

func (s *SupplierService) CreateSupplier(ctx context.Context, organizationID uuid.UUID, params SupplierParams) (db.Supplier, error) {
	if params.Name == "" {
		return db.Supplier{}, &ValidationError{Field: "name", Message: "is required"}
	}

	supplier, err := s.queries.CreateSupplier(ctx, db.CreateSupplierParams{
		OrganizationID: organizationID,
		Name:           params.Name,
		Email:          stringPtrToPgtype(params.Email),
		Phone:          stringPtrToPgtype(params.Phone),
		Address:        stringPtrToPgtype(params.Address),
		TaxNumber:      stringPtrToPgtype(params.TaxNumber),
	})
	if err != nil {
		return db.Supplier{}, fmt.Errorf("failed to create supplier: %w", err)
	}
	return supplier, nil
}

func (s *SupplierService) GetSupplier(ctx context.Context, organizationID, id uuid.UUID) (db.Supplier, error) {
	supplier, err := s.queries.GetSupplier(ctx, db.GetSupplierParams{ID: id, OrganizationID: organizationID})
	if err != nil {
		return db.Supplier{}, noRowsAs(err, &NotFoundError{Resource: "supplier", ID: id.String()})
	}
	return supplier, nil
}

func (s *SupplierService) ListSuppliers(ctx context.Context, organizationID uuid.UUID) ([]db.Supplier, error) {
	suppliers, err := s.queries.ListSuppliers(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, nil
}

func (s *SupplierService) UpdateSupplier(ctx context.Context, organizationID, id uuid.UUID, params SupplierParams) (db.Supplier, error) {
	if params.Name == "" {
		return db.Supplier{}, &ValidationError{Field: "name", Message: "is required"}
	}

	supplier, err := s.queries.UpdateSupplier(ctx, db.UpdateSupplierParams{
		ID:             id,
		OrganizationID: organizationID,
		Name:           params.Name,
		Email:          stringPtrToPgtype(params.Email),
		Phone:          stringPtrToPgtype(params.Phone),
		Address:        stringPtrToPgtype(params.Address),
		TaxNumber:      stringPtrToPgtype(params.TaxNumber),
	})
	if err != nil {
		return db.Supplier{}, noRowsAs(err, &NotFoundError{Resource: "supplier", ID: id.String()})
	}
	return supplier, nil
}

func (s *SupplierService) ArchiveSupplier(ctx context.Context, organizationID, id uuid.UUID) error {
	if err := s.queries.ArchiveSupplier(ctx, db.ArchiveSupplierParams{ID: id, OrganizationID: organizationID}); err != nil {
		return fmt.Errorf("failed to archive supplier: %w", err)
	}
	return nil
}
