package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/debt-ledger/pkg/models"
)

// ListPayments returns the payment history of a debt in sequence order, oldest first.
func (s *Store) ListPayments(ctx context.Context, debtID string) ([]models.Payment, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.PaymentsTableName),
		KeyConditionExpression: aws.String("debt_id = :debt_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":debt_id": &types.AttributeValueMemberS{Value: debtID},
		},
		ScanIndexForward: aws.Bool(true),
		ConsistentRead:   aws.Bool(true),
	}

	raw, err := s.queryAll(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for payments: %w", err)
	}

	payments := []models.Payment{}
	if err := attributevalue.UnmarshalListOfMaps(raw, &payments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payments: %w", err)
	}

	return payments, nil
}
