// Package backend opens the storage implementation selected by configuration.
package backend

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/debt-ledger/pkg/config"
	"github.com/chris/debt-ledger/pkg/storage"
	dydbstore "github.com/chris/debt-ledger/pkg/storage/dynamodb"
	"github.com/chris/debt-ledger/pkg/storage/sqlstore"
)

// Open returns the configured store and a function that releases its resources.
func Open(ctx context.Context, cfg *config.Config) (storage.Storage, func() error, error) {
	switch cfg.StorageBackend {
	case config.StorageDynamoDB:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to load SDK config: %w", err)
		}
		d := cfg.DynamoDB
		store := dydbstore.New(dynamodb.NewFromConfig(awsCfg), d.ClientsTable, d.DebtsTable, d.PaymentsTable, d.AuditTable)
		return store, func() error { return nil }, nil

	case config.StorageSQL:
		store, err := sqlstore.Open(sqlstore.Config{
			Driver:          cfg.Database.Driver,
			DSN:             cfg.Database.DSN,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
