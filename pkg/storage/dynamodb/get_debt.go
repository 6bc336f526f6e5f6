package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/debt-ledger/pkg/ledger"
	"github.com/chris/debt-ledger/pkg/models"
)

// GetDebt retrieves a debt from DynamoDB by its ID.
func (s *Store) GetDebt(ctx context.Context, debtID string) (*models.Debt, error) {
	item, err := s.getDebtItem(ctx, debtID)
	if err != nil {
		return nil, err
	}
	return &item.Debt, nil
}

func (s *Store) getDebtItem(ctx context.Context, debtID string) (*debtItem, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": debtID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal debt ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName:      aws.String(s.DebtsTableName),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get debt from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, ledger.NotFoundError("debt", debtID)
	}

	var item debtItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal debt: %w", err)
	}

	return &item, nil
}
