package db

import (
	"context"

	"github.com/google/uuid"
)

// nextDocumentNumber claims the next sequence value for a document type within
// an organization and year. The upsert takes a row lock, so two concurrent
// callers in separate transactions always receive distinct numbers.
const nextDocumentNumber = `
INSERT INTO document_sequences (organization_id, document_type, year, next_number)
VALUES ($1, $2, $3, 2)
ON CONFLICT (organization_id, document_type, year)
DO UPDATE SET next_number = document_sequences.next_number + 1
RETURNING next_number - 1
`

type NextDocumentNumberParams struct {
	OrganizationID uuid.UUID
	DocumentType   string
	Year           int32
}

func (q *Queries) NextDocumentNumber(ctx context.Context, arg NextDocumentNumberParams) (int32, error) {
	row := q.db.QueryRow(ctx, nextDocumentNumber, arg.OrganizationID, arg.DocumentType, arg.Year)
	var n int32
	err := row.Scan(&n)
	return n, err
}
