package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agroflow/agroflow-api/internal/db"
	"github.com/agroflow/agroflow-api/internal/logger"
)

// TaxDirection selects which tax rates apply to a document. Rates configured
// as "both" match either direction.
const (
	TaxDirectionSales    = "sales"
	TaxDirectionPurchase = "purchase"
)

// LineInput is one document line as submitted by the caller.
type LineInput struct {
	Description string
	Quantity    float64
	UnitPrice   float64
	TaxID       *uuid.UUID
}

// LineTotals is the computed money for a single line.
type LineTotals struct {
	Subtotal  float64
	TaxAmount float64
}

// TaxBreakdownLine sums every line taxed at the same rate. Untaxed lines do
// not appear in the breakdown.
type TaxBreakdownLine struct {
	TaxID     uuid.UUID
	TaxName   string
	Rate      float64
	Subtotal  float64
	TaxAmount float64
}

// DocumentTotals is the computed money for a whole document.
type DocumentTotals struct {
	Lines     []LineTotals
	Breakdown []TaxBreakdownLine
	Subtotal  float64
	TaxAmount float64
	Total     float64
}

// TaxCalculator computes line and document totals from submitted lines and
// the organization's configured tax rates.
type TaxCalculator struct {
	queries db.Querier
}

func NewTaxCalculator(queries db.Querier) *TaxCalculator {
	return &TaxCalculator{queries: queries}
}

// CalculateTotals is the pure aggregation: each line's subtotal and tax are
// rounded to cents before summing, so the document total always equals the
// sum of its rounded lines. A line whose tax is missing from the map, is
// deactivated or does not match the direction contributes zero tax. The breakdown groups taxed
// lines by rate in first-seen line order, so its tax amounts sum to the
// document tax amount.
func CalculateTotals(lines []LineInput, taxes map[uuid.UUID]db.Tax, direction string) DocumentTotals {
	totals := DocumentTotals{Lines: make([]LineTotals, 0, len(lines))}
	breakdownIndex := make(map[uuid.UUID]int)
	for _, line := range lines {
		lineSubtotal := RoundCurrency(line.Quantity * line.UnitPrice)
		lineTax := 0.0
		if line.TaxID != nil {
			tax, ok := taxes[*line.TaxID]
			if !ok {
				logger.Log.Warn("Tax rate not found, treating line as untaxed",
					zap.String("taxId", line.TaxID.String()))
			} else if !tax.Active {
				logger.Log.Warn("Tax rate is deactivated, treating line as untaxed",
					zap.String("taxId", line.TaxID.String()))
			} else if !taxApplies(tax, direction) {
				logger.Log.Warn("Tax rate does not apply to document direction, treating line as untaxed",
					zap.String("taxId", line.TaxID.String()),
					zap.String("taxType", tax.TaxType),
					zap.String("direction", direction))
			} else {
				lineTax = RoundCurrency(lineSubtotal * tax.Rate / 100)
				i, seen := breakdownIndex[tax.ID]
				if !seen {
					i = len(totals.Breakdown)
					breakdownIndex[tax.ID] = i
					totals.Breakdown = append(totals.Breakdown, TaxBreakdownLine{
						TaxID:   tax.ID,
						TaxName: tax.Name,
						Rate:    tax.Rate,
					})
				}
				totals.Breakdown[i].Subtotal = RoundCurrency(totals.Breakdown[i].Subtotal + lineSubtotal)
				totals.Breakdown[i].TaxAmount = RoundCurrency(totals.Breakdown[i].TaxAmount + lineTax)
			}
		}
		totals.Lines = append(totals.Lines, LineTotals{Subtotal: lineSubtotal, TaxAmount: lineTax})
		totals.Subtotal += lineSubtotal
		totals.TaxAmount += lineTax
	}
	totals.Subtotal = RoundCurrency(totals.Subtotal)
	totals.TaxAmount = RoundCurrency(totals.TaxAmount)
	totals.Total = RoundCurrency(totals.Subtotal + totals.TaxAmount)
	return totals
}

func taxApplies(tax db.Tax, direction string) bool {
	return tax.TaxType == "both" || tax.TaxType == direction
}

// CalculateDocumentTotals validates the lines, loads the referenced tax rates
// for the organization and returns the computed totals.
func (c *TaxCalculator) CalculateDocumentTotals(ctx context.Context, organizationID uuid.UUID, direction string, lines []LineInput) (DocumentTotals, error) {
	if len(lines) == 0 {
		return DocumentTotals{}, &ValidationError{Field: "items", Message: "at least one line is required"}
	}
	for i, line := range lines {
		if line.Quantity < 0 {
			return DocumentTotals{}, &ValidationError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "must not be negative",
			}
		}
		if line.UnitPrice < 0 {
			return DocumentTotals{}, &ValidationError{
				Field:   fmt.Sprintf("items[%d].unit_price", i),
				Message: "must not be negative",
			}
		}
	}

	taxes, err := c.loadTaxes(ctx, organizationID, lines)
	if err != nil {
		return DocumentTotals{}, err
	}
	return CalculateTotals(lines, taxes, direction), nil
}

func (c *TaxCalculator) loadTaxes(ctx context.Context, organizationID uuid.UUID, lines []LineInput) (map[uuid.UUID]db.Tax, error) {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, line := range lines {
		if line.TaxID != nil && !seen[*line.TaxID] {
			seen[*line.TaxID] = true
			ids = append(ids, *line.TaxID)
		}
	}
	if len(ids) == 0 {
		return map[uuid.UUID]db.Tax{}, nil
	}

	taxes, err := c.queries.GetTaxesByIDs(ctx, db.GetTaxesByIDsParams{
		OrganizationID: organizationID,
		IDs:            ids,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load tax rates: %w", err)
	}

	byID := make(map[uuid.UUID]db.Tax, len(taxes))
	for _, tax := range taxes {
		byID[tax.ID] = tax
	}
	return byID, nil
}
