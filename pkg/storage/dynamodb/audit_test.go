package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/debt-ledger/pkg/models"
	"github.com/chris/debt-ledger/pkg/storage/dynamodb/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAppendAuditEntry(t *testing.T) {
	entry := &models.AuditEntry{EntryID: uuid.New().String(), EventType: "debt.paid", DebtID: "d1"}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)
		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
			return in.Item["gsi1pk"].(*types.AttributeValueMemberS).Value == models.AuditPartition
		})).Return(&dynamodb.PutItemOutput{}, nil)

		err := store.AppendAuditEntry(context.Background(), entry)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Duplicate Delivery", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		err := store.AppendAuditEntry(context.Background(), entry)

		assert.NoError(t, err)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		err := store.AppendAuditEntry(context.Background(), entry)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to put audit entry")
	})
}

func TestListAuditEntries(t *testing.T) {
	entries := []models.AuditEntry{{EntryID: uuid.New().String()}, {EntryID: uuid.New().String()}}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		var entriesAV []map[string]types.AttributeValue
		for _, entry := range entries {
			av, err := attributevalue.MarshalMap(entry)
			assert.NoError(t, err)
			entriesAV = append(entriesAV, av)
		}
		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{Items: entriesAV}, nil)

		result, err := store.ListAuditEntries(context.Background(), 2)

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		mockClient.AssertExpectations(t)
	})

	t.Run("Query Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)
		mockClient.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("query failed"))

		_, err := store.ListAuditEntries(context.Background(), 2)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to query for audit entries")
	})
}
