package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/debt-ledger/pkg/ledger"
	"github.com/chris/debt-ledger/pkg/models"
	"github.com/chris/debt-ledger/pkg/storage"
)

// CreateDebt writes the debt and its client change in a single transaction.
// A new client is put with one active debt; an existing client gets its active counter
// bumped and, when supplied, its photo replaced.
func (s *Store) CreateDebt(ctx context.Context, in storage.NewDebt) (*models.Debt, error) {
	debt := in.Debt
	now := s.now()
	debt.CreatedAt = now

	var clientOp types.TransactWriteItem
	var clientName string

	if in.NewClient {
		client := in.Client
		client.CreatedAt = now
		if client.Reputation == "" {
			client.Reputation = models.ReputationNew
		}
		clientName = client.Fullname

		clientAV, err := attributevalue.MarshalMap(newClientItem(client, 1))
		if err != nil {
			return nil, fmt.Errorf("failed to marshal client: %w", err)
		}
		clientOp = types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(s.ClientsTableName),
				Item:                clientAV,
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			},
		}
	} else {
		existing, err := s.getClientItem(ctx, debt.ClientID)
		if err != nil {
			return nil, err
		}
		clientName = existing.Fullname

		update := "ADD active_debts :one"
		values := map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		}
		if in.PhotoRef != "" {
			update = "SET photo_ref = :photo " + update
			values[":photo"] = &types.AttributeValueMemberS{Value: in.PhotoRef}
		}
		clientOp = types.TransactWriteItem{
			Update: &types.Update{
				TableName:                 aws.String(s.ClientsTableName),
				Key:                       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: debt.ClientID}},
				UpdateExpression:          aws.String(update),
				ConditionExpression:       aws.String("attribute_exists(id)"),
				ExpressionAttributeValues: values,
			},
		}
	}

	debtAV, err := attributevalue.MarshalMap(newDebtItem(debt, clientName))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal debt: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			clientOp,
			{
				Put: &types.Put{
					TableName:           aws.String(s.DebtsTableName),
					Item:                debtAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if isConflict(err) {
			return nil, ledger.ConcurrencyError("debt %s could not be created, retry", debt.ID)
		}
		return nil, fmt.Errorf("failed to execute create debt transaction: %w", err)
	}

	return debt, nil
}
