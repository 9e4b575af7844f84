package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agroflow/agroflow-api/internal/db"
)

// Document number prefixes. Sequences run per organization, per prefix, per
// calendar year.
const (
	numberPrefixQuote         = "QT"
	numberPrefixSalesOrder    = "SO"
	numberPrefixPurchaseOrder = "PO"
	numberPrefixInvoice       = "INV"
	numberPrefixBill          = "BILL"
)

// nextDocumentNumber formats the next number in the organization's sequence,
// e.g. INV-2026-0042. It must run inside the same transaction as the document
// insert so an aborted create does not burn a number.
func nextDocumentNumber(ctx context.Context, q db.Querier, organizationID uuid.UUID, prefix string, now time.Time) (string, error) {
	year := int32(now.Year())
	n, err := q.NextDocumentNumber(ctx, db.NextDocumentNumberParams{
		OrganizationID: organizationID,
		DocumentType:   prefix,
		Year:           year,
	})
	if err != nil {
		return "", fmt.Errorf("failed to claim document number: %w", err)
	}
	return fmt.Sprintf("%s-%d-%04d", prefix, year, n), nil
}
