package storage

import (
	"context"

	"github.com/chris/debt-ledger/pkg/models"
)

// AuditReader defines the interface for reading the audit trail.
type AuditReader interface {
	// ListAuditEntries retrieves the most recent audit entries.
	ListAuditEntries(ctx context.Context, limit int32) ([]models.AuditEntry, error)
}

// AuditWriter appends to the audit trail. Only the event consumers need it.
type AuditWriter interface {
	AppendAuditEntry(ctx context.Context, entry *models.AuditEntry) error
}

// AuditStore combines the reader and writer interfaces.
type AuditStore interface {
	AuditReader
	AuditWriter
}
