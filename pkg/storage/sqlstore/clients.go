package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/chris/debt-ledger/pkg/ledger"
	"github.com/chris/debt-ledger/pkg/models"
	"gorm.io/gorm"
)

const clientSummaryColumns = "clients.*, EXISTS (SELECT 1 FROM debts WHERE debts.client_id = clients.id AND debts.status = 'active') AS has_active_debt"

// GetClient retrieves a single client by ID.
func (s *Store) GetClient(ctx context.Context, clientID string) (*models.Client, error) {
	var record ClientRecord
	err := s.db.WithContext(ctx).Where("id = ?", clientID).Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ledger.NotFoundError("client", clientID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return record.model(), nil
}

// SearchClients returns every client whose full name contains query, ordered by name.
func (s *Store) SearchClients(ctx context.Context, query string) ([]models.ClientSummary, error) {
	var records []clientSummaryRecord
	err := s.db.WithContext(ctx).
		Table("clients").
		Select(clientSummaryColumns).
		Where(`clients.fullname_lower LIKE ? ESCAPE '\'`, likePattern(query)).
		Order("clients.fullname_lower ASC, clients.id ASC").
		Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search clients: %w", err)
	}
	return summaries(records), nil
}

// ListClients returns one page of clients, newest first.
func (s *Store) ListClients(ctx context.Context, filter models.ClientFilter) (*models.Page[models.ClientSummary], error) {
	base := func() *gorm.DB {
		q := s.db.WithContext(ctx).Table("clients")
		if filter.Search != "" {
			pattern := likePattern(filter.Search)
			q = q.Where(`(clients.fullname_lower LIKE ? ESCAPE '\' OR LOWER(clients.phone) LIKE ? ESCAPE '\' OR clients.address_lower LIKE ? ESCAPE '\')`,
				pattern, pattern, pattern)
		}
		if filter.Date != nil {
			q = q.Where("clients.created_at >= ? AND clients.created_at < ?", filter.Date.From.UTC(), filter.Date.To.UTC())
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}

	var records []clientSummaryRecord
	q := base().Select(clientSummaryColumns).Order("clients.created_at DESC, clients.id DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset())
	}
	if err := q.Scan(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	return &models.Page[models.ClientSummary]{Items: summaries(records), Total: total}, nil
}

func summaries(records []clientSummaryRecord) []models.ClientSummary {
	out := make([]models.ClientSummary, len(records))
	for i := range records {
		out[i] = models.ClientSummary{
			Client:        *records[i].ClientRecord.model(),
			HasActiveDebt: records[i].HasActiveDebt,
		}
	}
	return out
}
