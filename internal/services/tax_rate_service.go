package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agroflow/agroflow-api/internal/db"
)

// TaxRateService manages the configurable tax rates of an organization.
type TaxRateService struct {
	queries db.Querier
}

func NewTaxRateService(queries db.Querier) *TaxRateService {
	return &TaxRateService{queries: queries}
}

type TaxRateParams struct {
	Name    string
	Rate    float64
	TaxType string
}

func (s *TaxRateService) CreateTaxRate(ctx context.Context, organizationID uuid.UUID, params TaxRateParams) (db.Tax, error) {
	if params.Name == "" {
		return db.Tax{}, &ValidationError{Field: "name", Message: "is required"}
	}
	if params.Rate < 0 || params.Rate > 100 {
		return db.Tax{}, &ValidationError{Field: "rate", Message: "must be between 0 and 100"}
	}
	switch params.TaxType {
	case TaxDirectionSales, TaxDirectionPurchase, "both":
	default:
		return db.Tax{}, &ValidationError{Field: "tax_type", Message: "must be sales, purchase or both"}
	}

	tax, err := s.queries.CreateTax(ctx, db.CreateTaxParams{
		OrganizationID: organizationID,
		Name:           params.Name,
		Rate:           params.Rate,
		TaxType:        params.TaxType,
	})
	if err != nil {
		return db.Tax{}, fmt.Errorf("failed to create tax rate: %w", err)
	}
	return tax, nil
}

func (s *TaxRateService) GetTaxRate(ctx context.Context, organizationID, id uuid.UUID) (db.Tax, error) {
	tax, err := s.queries.GetTax(ctx, db.GetTaxParams{ID: id, OrganizationID: organizationID})
	if err != nil {
		return db.Tax{}, noRowsAs(err, &NotFoundError{Resource: "tax rate", ID: id.String()})
	}
	return tax, nil
}

func (s *TaxRateService) ListTaxRates(ctx context.Context, organizationID uuid.UUID) ([]db.Tax, error) {
	taxes, err := s.queries.ListTaxes(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax rates: %w", err)
	}
	return taxes, nil
}

// DeactivateTaxRate soft-disables a rate. Existing documents keep the amounts
// they were computed with; the rate just stops being offered for new lines.
func (s *TaxRateService) DeactivateTaxRate(ctx context.Context, organizationID, id uuid.UUID) error {
	if err := s.queries.DeactivateTax(ctx, db.DeactivateTaxParams{ID: id, OrganizationID: organizationID}); err != nil {
		return fmt.Errorf("failed to deactivate tax rate: %w", err)
	}
	return nil
}
