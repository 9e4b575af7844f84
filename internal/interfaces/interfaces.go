package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LedgerEntry is one side of a double-entry posting handed to the ledger.
type LedgerEntry struct {
	Account string  `json:"account"`
	Debit   float64 `json:"debit"`
	Credit  float64 `json:"credit"`
}

// LedgerPosting is a balanced set of entries tied back to the document that
// produced it.
type LedgerPosting struct {
	OrganizationID uuid.UUID     `json:"organization_id"`
	DocumentType   string        `json:"document_type"`
	DocumentID     uuid.UUID     `json:"document_id"`
	Reference      string        `json:"reference"`
	PostedAt       time.Time     `json:"posted_at"`
	Entries        []LedgerEntry `json:"entries"`
}

// LedgerPoster forwards finalized financial movements to the accounting ledger.
type LedgerPoster interface {
	Post(ctx context.Context, posting LedgerPosting) error
}

// DocumentEvent describes a lifecycle change on a billing document.
type DocumentEvent struct {
	OrganizationID uuid.UUID `json:"organization_id"`
	DocumentType   string    `json:"document_type"`
	DocumentID     uuid.UUID `json:"document_id"`
	EventType      string    `json:"event_type"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// EventPublisher fans document lifecycle events out to downstream consumers.
type EventPublisher interface {
	PublishDocumentEvent(ctx context.Context, event DocumentEvent) error
}
