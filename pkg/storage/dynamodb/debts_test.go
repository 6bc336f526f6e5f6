package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/debt-ledger/pkg/ledger"
	"github.com/chris/debt-ledger/pkg/models"
	"github.com/chris/debt-ledger/pkg/storage"
	"github.com/chris/debt-ledger/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(client DynamoDBAPI) *Store {
	store := New(client, "clients", "debts", "payments", "audit")
	store.Now = func() time.Time { return fixedNow }
	return store
}

func debtFixture(t *testing.T, amount int64) *models.Debt {
	t.Helper()
	d, err := ledger.NewDebt("client-1", amount, "groceries", fixedNow.Add(-time.Hour))
	require.NoError(t, err)
	return d
}

func debtItemAV(t *testing.T, d *models.Debt) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(newDebtItem(d, "Alice Smith"))
	require.NoError(t, err)
	return av
}

func conditionFailed() error {
	return &types.TransactionCanceledException{
		Message: aws.String("Transaction cancelled"),
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("ConditionalCheckFailed")},
			{Code: aws.String("None")},
		},
	}
}

func TestGetDebt(t *testing.T) {
	debt := debtFixture(t, 500)

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		mockClient.On("GetItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.GetItemInput) bool {
			return aws.ToString(in.TableName) == "debts" && aws.ToBool(in.ConsistentRead)
		})).Return(&dynamodb.GetItemOutput{Item: debtItemAV(t, debt)}, nil)

		got, err := store.GetDebt(context.Background(), debt.ID)

		require.NoError(t, err)
		assert.Equal(t, debt.ID, got.ID)
		assert.Equal(t, int64(500), got.RemainingAmount)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

		_, err := store.GetDebt(context.Background(), "missing")

		assert.ErrorIs(t, err, ledger.ErrNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(nil, errors.New("dynamodb unavailable"))

		_, err := store.GetDebt(context.Background(), debt.ID)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get debt from DynamoDB")
		mockClient.AssertExpectations(t)
	})
}

func TestCreateDebt(t *testing.T) {
	t.Run("New Client", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)
		client := &models.Client{ID: "client-1", Fullname: "Alice Smith", PhotoRef: "/uploads/2024-05/alice.jpg"}
		debt := debtFixture(t, 500)

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(in *dynamodb.TransactWriteItemsInput) bool {
			if len(in.TransactItems) != 2 || in.TransactItems[0].Put == nil {
				return false
			}
			var stored clientItem
			if err := attributevalue.UnmarshalMap(in.TransactItems[0].Put.Item, &stored); err != nil {
				return false
			}
			return stored.ActiveDebts == 1 &&
				stored.FullnameLower == "alice smith" &&
				stored.Reputation == models.ReputationNew &&
				aws.ToString(in.TransactItems[1].Put.TableName) == "debts"
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		got, err := store.CreateDebt(context.Background(), storage.NewDebt{Debt: debt, Client: client, NewClient: true})

		require.NoError(t, err)
		assert.Equal(t, fixedNow, got.CreatedAt)
		assert.Equal(t, fixedNow, client.CreatedAt)
		mockClient.AssertExpectations(t)
	})

	t.Run("Existing Client With Photo", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)
		existing, _ := attributevalue.MarshalMap(newClientItem(&models.Client{ID: "client-1", Fullname: "Alice Smith"}, 0))
		debt := debtFixture(t, 500)

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: existing}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(in *dynamodb.TransactWriteItemsInput) bool {
			update := in.TransactItems[0].Update
			return update != nil &&
				aws.ToString(update.UpdateExpression) == "SET photo_ref = :photo ADD active_debts :one" &&
				aws.ToString(update.ConditionExpression) == "attribute_exists(id)"
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		_, err := store.CreateDebt(context.Background(), storage.NewDebt{Debt: debt, PhotoRef: "/uploads/new.jpg"})

		require.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Unknown Client", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

		_, err := store.CreateDebt(context.Background(), storage.NewDebt{Debt: debtFixture(t, 500)})

		assert.ErrorIs(t, err, ledger.ErrNotFound)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})

	t.Run("Transaction Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)
		client := &models.Client{ID: "client-1", Fullname: "Alice Smith"}
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("throttled"))

		_, err := store.CreateDebt(context.Background(), storage.NewDebt{Debt: debtFixture(t, 500), Client: client, NewClient: true})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to execute create debt transaction")
		mockClient.AssertExpectations(t)
	})
}

func TestRecordPayment(t *testing.T) {
	t.Run("Partial Payment", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)
		debt := debtFixture(t, 500)

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: debtItemAV(t, debt)}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(in *dynamodb.TransactWriteItemsInput) bool {
			put := in.TransactItems[0].Put
			version := put.ExpressionAttributeValues[":version"].(*types.AttributeValueMemberN).Value
			return len(in.TransactItems) == 2 && version == "1"
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		next, payment, err := store.RecordPayment(context.Background(), debt.ID, ledger.PaymentInput{Amount: 200, Comment: "first"})

		require.NoError(t, err)
		assert.Equal(t, models.ACTIVE, next.Status)
		assert.Equal(t, int64(300), next.RemainingAmount)
		assert.Equal(t, int64(300), payment.RemainingAmount)
		assert.Equal(t, fixedNow, payment.CreatedAt)
		mockClient.AssertExpectations(t)
	})

	t.Run("Closing Payment Updates Reputation", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)
		debt := debtFixture(t, 500)

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: debtItemAV(t, debt)}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(in *dynamodb.TransactWriteItemsInput) bool {
			if len(in.TransactItems) != 3 || in.TransactItems[2].Update == nil {
				return false
			}
			rep := in.TransactItems[2].Update.ExpressionAttributeValues[":reputation"].(*types.AttributeValueMemberS).Value
			return rep == string(models.ReputationGood)
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		next, _, err := store.RecordPayment(context.Background(), debt.ID, ledger.PaymentInput{Amount: 500, Comment: "cash", Rating: models.RatingGood})

		require.NoError(t, err)
		assert.Equal(t, models.PAID, next.Status)
		mockClient.AssertExpectations(t)
	})

	t.Run("Overpayment Writes Nothing", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)
		debt := debtFixture(t, 500)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: debtItemAV(t, debt)}, nil)

		_, _, err := store.RecordPayment(context.Background(), debt.ID, ledger.PaymentInput{Amount: 600, Comment: "too much"})

		assert.ErrorIs(t, err, ledger.ErrOverpayment)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})

	t.Run("Lost Race", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)
		debt := debtFixture(t, 500)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: debtItemAV(t, debt)}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, conditionFailed())

		_, _, err := store.RecordPayment(context.Background(), debt.ID, ledger.PaymentInput{Amount: 300, Comment: "second"})

		assert.ErrorIs(t, err, ledger.ErrConcurrency)
		mockClient.AssertExpectations(t)
	})

	t.Run("Paid Debt", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)
		debt := debtFixture(t, 500)
		debt.Status = models.PAID
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: debtItemAV(t, debt)}, nil)

		_, _, err := store.RecordPayment(context.Background(), debt.ID, ledger.PaymentInput{Amount: 100, Comment: "late"})

		assert.ErrorIs(t, err, ledger.ErrInvalidState)
		mockClient.AssertExpectations(t)
	})
}

func TestDeleteDebt(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)
		debt := debtFixture(t, 500)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: debtItemAV(t, debt)}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		got, err := store.DeleteDebt(context.Background(), debt.ID, "duplicate entry")

		require.NoError(t, err)
		assert.Equal(t, models.DELETED, got.Status)
		assert.Equal(t, "duplicate entry", got.DeleteComment)
		require.NotNil(t, got.DeletedAt)
		assert.Equal(t, fixedNow, *got.DeletedAt)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Deleted", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)
		debt := debtFixture(t, 500)
		deleted, err := ledger.Delete(debt, "first", fixedNow)
		require.NoError(t, err)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: debtItemAV(t, deleted)}, nil)

		_, err = store.DeleteDebt(context.Background(), debt.ID, "again")

		assert.ErrorIs(t, err, ledger.ErrInvalidState)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

		_, err := store.DeleteDebt(context.Background(), "missing", "duplicate entry")

		assert.ErrorIs(t, err, ledger.ErrNotFound)
		assert.Contains(t, err.Error(), "failed to get debt for deletion")
	})

	t.Run("Lost Race", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)
		debt := debtFixture(t, 500)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: debtItemAV(t, debt)}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, conditionFailed())

		_, err := store.DeleteDebt(context.Background(), debt.ID, "duplicate entry")

		assert.ErrorIs(t, err, ledger.ErrConcurrency)
	})
}
