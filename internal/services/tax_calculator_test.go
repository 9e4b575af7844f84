package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/agroflow/agroflow-api/internal/db"
	"github.com/agroflow/agroflow-api/internal/logger"
	"github.com/agroflow/agroflow-api/internal/mocks"
	"github.com/agroflow/agroflow-api/internal/services"
)

func init() {
	logger.InitLogger("test")
}

func TestCalculateTotals(t *testing.T) {
	vatID := uuid.New()
	reducedID := uuid.New()
	purchaseOnlyID := uuid.New()
	retiredID := uuid.New()
	missingID := uuid.New()

	taxes := map[uuid.UUID]db.Tax{
		vatID:          {ID: vatID, Name: "VAT 20", Rate: 20, TaxType: "both", Active: true},
		reducedID:      {ID: reducedID, Name: "Reduced 5.5", Rate: 5.5, TaxType: "sales", Active: true},
		purchaseOnlyID: {ID: purchaseOnlyID, Name: "Import 10", Rate: 10, TaxType: "purchase", Active: true},
		retiredID:      {ID: retiredID, Name: "Old VAT 20", Rate: 20, TaxType: "both", Active: false},
	}

	tests := []struct {
		name        string
		lines       []services.LineInput
		direction   string
		wantSub     float64
		wantTax     float64
		wantTotal   float64
		wantPerLine []services.LineTotals
	}{
		{
			name: "single taxed line",
			lines: []services.LineInput{
				{Description: "Seed potatoes", Quantity: 10, UnitPrice: 25, TaxID: &vatID},
			},
			direction: services.TaxDirectionSales,
			wantSub:   250,
			wantTax:   50,
			wantTotal: 300,
		},
		{
			name: "line subtotal rounds before tax",
			lines: []services.LineInput{
				{Description: "Fertilizer", Quantity: 3, UnitPrice: 33.333, TaxID: &vatID},
			},
			direction: services.TaxDirectionSales,
			// 3 * 33.333 = 99.999 -> 100.00, then 20% of that
			wantSub:   100,
			wantTax:   20,
			wantTotal: 120,
		},
		{
			name: "tax rounds per line then sums",
			lines: []services.LineInput{
				{Description: "Bags", Quantity: 1, UnitPrice: 0.125, TaxID: &vatID},
				{Description: "Bags", Quantity: 1, UnitPrice: 0.125, TaxID: &vatID},
			},
			direction: services.TaxDirectionSales,
			// each line: 0.13 subtotal, 0.03 tax (20% of 0.13 = 0.026 -> 0.03)
			wantSub:   0.26,
			wantTax:   0.06,
			wantTotal: 0.32,
			wantPerLine: []services.LineTotals{
				{Subtotal: 0.13, TaxAmount: 0.03},
				{Subtotal: 0.13, TaxAmount: 0.03},
			},
		},
		{
			name: "mixed rates",
			lines: []services.LineInput{
				{Description: "Equipment", Quantity: 2, UnitPrice: 100, TaxID: &vatID},
				{Description: "Produce", Quantity: 4, UnitPrice: 12.5, TaxID: &reducedID},
				{Description: "Delivery", Quantity: 1, UnitPrice: 30},
			},
			direction: services.TaxDirectionSales,
			wantSub:   280,
			wantTax:   42.75, // 40 + 2.75
			wantTotal: 322.75,
		},
		{
			name: "direction mismatch contributes zero tax",
			lines: []services.LineInput{
				{Description: "Tractor parts", Quantity: 1, UnitPrice: 500, TaxID: &purchaseOnlyID},
			},
			direction: services.TaxDirectionSales,
			wantSub:   500,
			wantTax:   0,
			wantTotal: 500,
		},
		{
			name: "both type applies to purchases",
			lines: []services.LineInput{
				{Description: "Diesel", Quantity: 100, UnitPrice: 1.5, TaxID: &vatID},
			},
			direction: services.TaxDirectionPurchase,
			wantSub:   150,
			wantTax:   30,
			wantTotal: 180,
		},
		{
			name: "deactivated tax contributes zero tax",
			lines: []services.LineInput{
				{Description: "Misc", Quantity: 1, UnitPrice: 100, TaxID: &retiredID},
			},
			direction: services.TaxDirectionSales,
			wantSub:   100,
			wantTax:   0,
			wantTotal: 100,
		},
		{
			name: "unknown tax id contributes zero tax",
			lines: []services.LineInput{
				{Description: "Misc", Quantity: 1, UnitPrice: 100, TaxID: &missingID},
			},
			direction: services.TaxDirectionSales,
			wantSub:   100,
			wantTax:   0,
			wantTotal: 100,
		},
		{
			name: "zero quantity line",
			lines: []services.LineInput{
				{Description: "Placeholder", Quantity: 0, UnitPrice: 99, TaxID: &vatID},
				{Description: "Hay bales", Quantity: 5, UnitPrice: 8},
			},
			direction: services.TaxDirectionSales,
			wantSub:   40,
			wantTax:   0,
			wantTotal: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.CalculateTotals(tt.lines, taxes, tt.direction)

			assert.Equal(t, tt.wantSub, got.Subtotal)
			assert.Equal(t, tt.wantTax, got.TaxAmount)
			assert.Equal(t, tt.wantTotal, got.Total)
			assert.Len(t, got.Lines, len(tt.lines))
			if tt.wantPerLine != nil {
				assert.Equal(t, tt.wantPerLine, got.Lines)
			}
		})
	}
}

func TestCalculateTotals_Breakdown(t *testing.T) {
	vatID := uuid.New()
	reducedID := uuid.New()

	taxes := map[uuid.UUID]db.Tax{
		vatID:     {ID: vatID, Name: "VAT 20", Rate: 20, TaxType: "both", Active: true},
		reducedID: {ID: reducedID, Name: "Reduced 5.5", Rate: 5.5, TaxType: "sales", Active: true},
	}

	got := services.CalculateTotals([]services.LineInput{
		{Description: "Equipment", Quantity: 2, UnitPrice: 100, TaxID: &vatID},
		{Description: "Produce", Quantity: 4, UnitPrice: 12.5, TaxID: &reducedID},
		{Description: "Delivery", Quantity: 1, UnitPrice: 30},
		{Description: "Spare parts", Quantity: 1, UnitPrice: 50, TaxID: &vatID},
	}, taxes, services.TaxDirectionSales)

	// Grouped by tax in first-seen line order; the untaxed delivery line is
	// absent from the breakdown.
	assert.Equal(t, []services.TaxBreakdownLine{
		{TaxID: vatID, TaxName: "VAT 20", Rate: 20, Subtotal: 250, TaxAmount: 50},
		{TaxID: reducedID, TaxName: "Reduced 5.5", Rate: 5.5, Subtotal: 50, TaxAmount: 2.75},
	}, got.Breakdown)

	breakdownTax := 0.0
	for _, b := range got.Breakdown {
		breakdownTax += b.TaxAmount
	}
	assert.Equal(t, got.TaxAmount, services.RoundCurrency(breakdownTax))
}

func TestTaxCalculator_CalculateDocumentTotals(t *testing.T) {
	organizationID := uuid.New()
	taxID := uuid.New()

	tests := []struct {
		name        string
		lines       []services.LineInput
		setupMocks  func(m *mocks.MockQuerier)
		wantErr     bool
		errContains string
		wantTotal   float64
	}{
		{
			name:        "no lines",
			lines:       nil,
			setupMocks:  func(m *mocks.MockQuerier) {},
			wantErr:     true,
			errContains: "items",
		},
		{
			name: "negative quantity",
			lines: []services.LineInput{
				{Description: "Seeds", Quantity: -1, UnitPrice: 10},
			},
			setupMocks:  func(m *mocks.MockQuerier) {},
			wantErr:     true,
			errContains: "items[0].quantity",
		},
		{
			name: "negative unit price",
			lines: []services.LineInput{
				{Description: "Seeds", Quantity: 1, UnitPrice: -10},
			},
			setupMocks:  func(m *mocks.MockQuerier) {},
			wantErr:     true,
			errContains: "items[0].unit_price",
		},
		{
			name: "untaxed lines skip the tax lookup",
			lines: []services.LineInput{
				{Description: "Labor", Quantity: 8, UnitPrice: 45},
			},
			setupMocks: func(m *mocks.MockQuerier) {},
			wantTotal:  360,
		},
		{
			name: "duplicate tax ids are loaded once",
			lines: []services.LineInput{
				{Description: "Seeds", Quantity: 1, UnitPrice: 100, TaxID: &taxID},
				{Description: "Fertilizer", Quantity: 1, UnitPrice: 100, TaxID: &taxID},
			},
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().
					GetTaxesByIDs(gomock.Any(), db.GetTaxesByIDsParams{
						OrganizationID: organizationID,
						IDs:            []uuid.UUID{taxID},
					}).
					Return([]db.Tax{{ID: taxID, Rate: 10, TaxType: "both", Active: true}}, nil)
			},
			wantTotal: 220,
		},
		{
			name: "tax lookup failure",
			lines: []services.LineInput{
				{Description: "Seeds", Quantity: 1, UnitPrice: 100, TaxID: &taxID},
			},
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().
					GetTaxesByIDs(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			wantErr:     true,
			errContains: "failed to load tax rates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			tt.setupMocks(mockQuerier)

			calculator := services.NewTaxCalculator(mockQuerier)
			got, err := calculator.CalculateDocumentTotals(context.Background(), organizationID, services.TaxDirectionSales, tt.lines)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, got.Total)
		})
	}
}
