package dynamodb

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/debt-ledger/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the Store.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

const (
	statusCreatedAtGSI = "status-created_at-index"
	clientCreatedAtGSI = "client_id-created_at-index"
	auditGSI           = "gsi1pk-timestamp-index"
)

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client            DynamoDBAPI
	ClientsTableName  string
	DebtsTableName    string
	PaymentsTableName string
	AuditTableName    string

	// Now stamps created_at, paid_at and deleted_at. Defaults to UTC wall time.
	Now func() time.Time
}

// New creates a new Store.
func New(client DynamoDBAPI, clientsTable, debtsTable, paymentsTable, auditTable string) *Store {
	return &Store{
		Client:            client,
		ClientsTableName:  clientsTable,
		DebtsTableName:    debtsTable,
		PaymentsTableName: paymentsTable,
		AuditTableName:    auditTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}
