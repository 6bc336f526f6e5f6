package service

import (
	"context"
	"strings"

	"github.com/chris/debt-ledger/pkg/models"
)

// SearchClients matches clients by name. A blank query matches nobody.
func (s *Ledger) SearchClients(ctx context.Context, query string) ([]models.ClientSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.ClientSummary{}, nil
	}
	return s.store.SearchClients(ctx, query)
}

func (s *Ledger) ListClients(ctx context.Context, req ListClientsRequest) (*models.Page[models.ClientSummary], error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	return s.store.ListClients(ctx, models.ClientFilter{
		Search: strings.TrimSpace(req.Search),
		Date:   dayRange(req.Date, s.location),
		Page:   page,
		Limit:  clampLimit(req.Limit, DefaultClientLimit),
	})
}
