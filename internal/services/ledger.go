package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/agroflow/agroflow-api/internal/interfaces"
	"github.com/agroflow/agroflow-api/internal/logger"
)

// JournalLedger is the built-in LedgerPoster. It writes each posting to the
// structured log; a real general ledger integration can replace it through
// the interface.
type JournalLedger struct{}

func NewJournalLedger() *JournalLedger {
	return &JournalLedger{}
}

func (l *JournalLedger) Post(ctx context.Context, posting interfaces.LedgerPosting) error {
	fields := []zap.Field{
		zap.String("organizationId", posting.OrganizationID.String()),
		zap.String("documentType", posting.DocumentType),
		zap.String("documentId", posting.DocumentID.String()),
		zap.String("reference", posting.Reference),
	}
	for _, entry := range posting.Entries {
		fields = append(fields, zap.Float64("entry:"+entry.Account, entry.Debit-entry.Credit))
	}
	logger.Log.Info("Ledger posting", fields...)
	return nil
}

var _ interfaces.LedgerPoster = (*JournalLedger)(nil)
