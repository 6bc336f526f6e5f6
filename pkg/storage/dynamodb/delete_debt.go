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
)

// DeleteDebt soft-deletes an active debt and releases the client's active counter.
func (s *Store) DeleteDebt(ctx context.Context, debtID, reason string) (*models.Debt, error) {
	current, err := s.getDebtItem(ctx, debtID)
	if err != nil {
		return nil, fmt.Errorf("failed to get debt for deletion: %w", err)
	}

	next, err := ledger.Delete(&current.Debt, reason, s.now())
	if err != nil {
		return nil, err
	}

	debtAV, err := attributevalue.MarshalMap(newDebtItem(next, current.ClientName))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal debt: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(s.DebtsTableName),
					Item:                debtAV,
					ConditionExpression: aws.String("version = :version AND #status = :active"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", current.Version)},
						":active":  &types.AttributeValueMemberS{Value: string(models.ACTIVE)},
					},
				},
			},
			{
				Update: &types.Update{
					TableName:           aws.String(s.ClientsTableName),
					Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: next.ClientID}},
					UpdateExpression:    aws.String("ADD active_debts :dec"),
					ConditionExpression: aws.String("attribute_exists(id)"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":dec": &types.AttributeValueMemberN{Value: "-1"},
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if isConflict(err) {
			return nil, ledger.ConcurrencyError("debt %s was modified concurrently, retry", debtID)
		}
		return nil, fmt.Errorf("failed to execute delete transaction: %w", err)
	}

	return next, nil
}
