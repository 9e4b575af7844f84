package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agroflow/agroflow-api/internal/db"
)

// CustomerService manages the customers a farm sells to.
type CustomerService struct {
	queries db.Querier
}

func NewCustomerService(queries db.Querier) *CustomerService {
	return &CustomerService{queries: queries}
}

type CustomerParams struct {
	Name      string
	Email     *string
	Phone     *string
	Address   *string
	TaxNumber *string
}

func (s *CustomerService) CreateCustomer(ctx context.Context, organizationID uuid.UUID, params CustomerParams) (db.Customer, error) {
	if params.Name == "" {
		return db.Customer{}, &ValidationError{Field: "name", Message: "is required"}
	}

	customer, err := s.queries.CreateCustomer(ctx, db.CreateCustomerParams{
		OrganizationID: organizationID,
		Name:           params.Name,
		Email:          stringPtrToPgtype(params.Email),
		Phone:          stringPtrToPgtype(params.Phone),
		Address:        stringPtrToPgtype(params.Address),
		TaxNumber:      stringPtrToPgtype(params.TaxNumber),
	})
	if err != nil {
		return db.Customer{}, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, organizationID, id uuid.UUID) (db.Customer, error) {
	customer, err := s.queries.GetCustomer(ctx, db.GetCustomerParams{ID: id, OrganizationID: organizationID})
	if err != nil {
		return db.Customer{}, noRowsAs(err, &NotFoundError{Resource: "customer", ID: id.String()})
	}
	return customer, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context, organizationID uuid.UUID) ([]db.Customer, error) {
	customers, err := s.queries.ListCustomers(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, organizationID, id uuid.UUID, params CustomerParams) (db.Customer, error) {
	if params.Name == "" {
		return db.Customer{}, &ValidationError{Field: "name", Message: "is required"}
	}

	customer, err := s.queries.UpdateCustomer(ctx, db.UpdateCustomerParams{
		ID:             id,
		OrganizationID: organizationID,
		Name:           params.Name,
		Email:          stringPtrToPgtype(params.Email),
		Phone:          stringPtrToPgtype(params.Phone),
		Address:        stringPtrToPgtype(params.Address),
		TaxNumber:      stringPtrToPgtype(params.TaxNumber),
	})
	if err != nil {
		return db.Customer{}, noRowsAs(err, &NotFoundError{Resource: "customer", ID: id.String()})
	}
	return customer, nil
}

func (s *CustomerService) ArchiveCustomer(ctx context.Context, organizationID, id uuid.UUID) error {
	if err := s.queries.ArchiveCustomer(ctx, db.ArchiveCustomerParams{ID: id, OrganizationID: organizationID}); err != nil {
		return fmt.Errorf("failed to archive customer: %w", err)
	}
	return nil
}
