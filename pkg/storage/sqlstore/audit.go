package sqlstore

import (
	"context"
	"fmt"

	"github.com/chris/debt-ledger/pkg/models"
	"gorm.io/gorm/clause"
)

// AppendAuditEntry stores an audit entry. Redelivered entries are ignored.
func (s *Store) AppendAuditEntry(ctx context.Context, entry *models.AuditEntry) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "entry_id"}}, DoNothing: true}).
		Create(toAuditRecord(entry)).Error
	if err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

// ListAuditEntries returns the most recent audit entries, newest first.
func (s *Store) ListAuditEntries(ctx context.Context, limit int32) ([]models.AuditEntry, error) {
	var records []AuditRecord
	err := s.db.WithContext(ctx).Order("recorded_at DESC, entry_id DESC").Limit(int(limit)).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entries := make([]models.AuditEntry, len(records))
	for i := range records {
		entries[i] = records[i].model()
	}
	return entries, nil
}
