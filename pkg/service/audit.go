package service

import (
	"context"

	"github.com/chris/debt-ledger/pkg/models"
)

func (s *Ledger) ListAuditEntries(ctx context.Context, limit int) ([]models.AuditEntry, error) {
	return s.store.ListAuditEntries(ctx, int32(clampLimit(limit, DefaultAuditLimit)))
}
