package sqlstore

import (
	"context"
	"fmt"

	"github.com/chris/debt-ledger/pkg/models"
)

// ListPayments returns a debt's payments, oldest first.
func (s *Store) ListPayments(ctx context.Context, debtID string) ([]models.Payment, error) {
	var records []PaymentRecord
	err := s.db.WithContext(ctx).Where("debt_id = ?", debtID).Order("seq ASC").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	payments := make([]models.Payment, len(records))
	for i := range records {
		payments[i] = records[i].model()
	}
	return payments, nil
}
