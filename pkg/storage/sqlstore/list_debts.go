package sqlstore

import (
	"context"
	"fmt"

	"github.com/chris/debt-ledger/pkg/models"
	"gorm.io/gorm"
)

const debtViewColumns = "debts.*, clients.fullname AS client_name, clients.phone AS client_phone, " +
	"clients.address AS client_address, clients.photo_ref AS client_photo_ref, clients.reputation AS client_reputation"

// ListDebts returns one page of debts joined with their clients.
func (s *Store) ListDebts(ctx context.Context, filter models.DebtFilter) (*models.Page[models.DebtView], error) {
	dateColumn := "debts.created_at"
	if filter.Status == models.DELETED {
		dateColumn = "debts.deleted_at"
	}

	base := func() *gorm.DB {
		q := s.db.WithContext(ctx).Table("debts").Joins("JOIN clients ON clients.id = debts.client_id")
		if filter.Status != "" {
			q = q.Where("debts.status = ?", string(filter.Status))
		}
		if filter.ClientID != "" {
			q = q.Where("debts.client_id = ?", filter.ClientID)
		}
		if filter.Search != "" {
			q = q.Where(`clients.fullname_lower LIKE ? ESCAPE '\'`, likePattern(filter.Search))
		}
		if filter.Date != nil {
			q = q.Where(dateColumn+" >= ? AND "+dateColumn+" < ?", filter.Date.From.UTC(), filter.Date.To.UTC())
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count debts: %w", err)
	}

	var records []debtViewRecord
	q := base().Select(debtViewColumns).Order(debtOrder(filter.SortBy, dateColumn))
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset())
	}
	if err := q.Scan(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}

	views := make([]models.DebtView, len(records))
	for i := range records {
		r := &records[i]
		views[i] = models.DebtView{
			Debt:             *r.DebtRecord.model(),
			ClientName:       r.ClientName,
			ClientPhone:      r.ClientPhone,
			ClientAddress:    r.ClientAddress,
			ClientPhotoRef:   r.ClientPhotoRef,
			ClientReputation: models.Reputation(r.ClientReputation),
		}
	}

	return &models.Page[models.DebtView]{Items: views, Total: total}, nil
}

// debtOrder breaks every tie newest first so pages are stable.
func debtOrder(sortBy, dateColumn string) string {
	newest := dateColumn + " DESC, debts.id DESC"
	switch sortBy {
	case models.SortDateOld:
		return dateColumn + " ASC, debts.id ASC"
	case models.SortName:
		return "clients.fullname_lower ASC, " + newest
	case models.SortAmountDesc:
		return "debts.original_amount DESC, " + newest
	case models.SortAmountAsc:
		return "debts.original_amount ASC, " + newest
	default:
		return newest
	}
}
