package storage

import (
	"context"

	"github.com/chris/debt-ledger/pkg/models"
)

// ClientStore defines the interface for the client directory.
type ClientStore interface {
	// GetClient retrieves a client by ID. Unknown IDs return ledger.ErrNotFound.
	GetClient(ctx context.Context, clientID string) (*models.Client, error)

	// SearchClients returns every client whose full name contains query, case-insensitively.
	SearchClients(ctx context.Context, query string) ([]models.ClientSummary, error)

	// ListClients returns one page of clients, newest first.
	ListClients(ctx context.Context, filter models.ClientFilter) (*models.Page[models.ClientSummary], error)
}
