package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/chris/debt-ledger/pkg/ledger"
	"github.com/chris/debt-ledger/pkg/models"
	"github.com/chris/debt-ledger/pkg/storage"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetDebt retrieves a single debt by ID.
func (s *Store) GetDebt(ctx context.Context, debtID string) (*models.Debt, error) {
	record, err := s.findDebt(s.db.WithContext(ctx), debtID, false)
	if err != nil {
		return nil, err
	}
	return record.model(), nil
}

// CreateDebt inserts the debt and, for a new client, the client record in one transaction.
func (s *Store) CreateDebt(ctx context.Context, in storage.NewDebt) (*models.Debt, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if in.NewClient {
			if err := tx.Create(toClientRecord(in.Client)).Error; err != nil {
				return fmt.Errorf("failed to insert client: %w", err)
			}
		} else {
			var client ClientRecord
			err := tx.Where("id = ?", in.Debt.ClientID).Take(&client).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ledger.NotFoundError("client", in.Debt.ClientID)
			}
			if err != nil {
				return fmt.Errorf("failed to get client: %w", err)
			}
			if in.PhotoRef != "" {
				err := tx.Model(&ClientRecord{}).Where("id = ?", client.ID).Update("photo_ref", in.PhotoRef).Error
				if err != nil {
					return fmt.Errorf("failed to update client photo: %w", err)
				}
			}
		}

		if err := tx.Create(toDebtRecord(in.Debt)).Error; err != nil {
			return fmt.Errorf("failed to insert debt: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return in.Debt, nil
}

// RecordPayment applies a payment under a row lock and a version check.
func (s *Store) RecordPayment(ctx context.Context, debtID string, in ledger.PaymentInput) (*models.Debt, *models.Payment, error) {
	var (
		next    *models.Debt
		payment *models.Payment
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record, err := s.findDebt(tx, debtID, true)
		if err != nil {
			return err
		}
		current := record.model()

		next, payment, err = ledger.ApplyPayment(current, in, s.now())
		if err != nil {
			return err
		}

		if err := saveDebt(tx, next, current.Version); err != nil {
			return err
		}
		if err := tx.Create(toPaymentRecord(payment)).Error; err != nil {
			return fmt.Errorf("failed to insert payment: %w", err)
		}

		if next.Status == models.PAID {
			err := tx.Model(&ClientRecord{}).
				Where("id = ?", next.ClientID).
				Update("reputation", string(ledger.ReputationFor(next.Rating))).Error
			if err != nil {
				return fmt.Errorf("failed to update client reputation: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return next, payment, nil
}

// DeleteDebt soft-deletes an active debt under a row lock and a version check.
func (s *Store) DeleteDebt(ctx context.Context, debtID, reason string) (*models.Debt, error) {
	var next *models.Debt
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record, err := s.findDebt(tx, debtID, true)
		if err != nil {
			return err
		}
		current := record.model()

		next, err = ledger.Delete(current, reason, s.now())
		if err != nil {
			return err
		}
		return saveDebt(tx, next, current.Version)
	})
	if err != nil {
		return nil, err
	}
	return next, nil
}

// findDebt loads a debt row, locking it for update on databases that support row locks.
func (s *Store) findDebt(tx *gorm.DB, debtID string, forUpdate bool) (*DebtRecord, error) {
	q := tx
	if forUpdate && s.dialect == DriverPostgres {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var record DebtRecord
	err := q.Where("id = ?", debtID).Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ledger.NotFoundError("debt", debtID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get debt: %w", err)
	}
	return &record, nil
}

// saveDebt writes the mutable debt columns if the stored version still matches.
func saveDebt(tx *gorm.DB, d *models.Debt, expectedVersion int64) error {
	record := toDebtRecord(d)
	result := tx.Model(&DebtRecord{}).
		Where("id = ? AND version = ?", d.ID, expectedVersion).
		Updates(map[string]any{
			"remaining_amount": record.RemainingAmount,
			"status":           record.Status,
			"rating":           record.Rating,
			"paid_at":          record.PaidAt,
			"deleted_at":       record.DeletedAt,
			"delete_comment":   record.DeleteComment,
			"payment_count":    record.PaymentCount,
			"version":          record.Version,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update debt: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ledger.ConcurrencyError("debt %s was modified concurrently", d.ID)
	}
	return nil
}
