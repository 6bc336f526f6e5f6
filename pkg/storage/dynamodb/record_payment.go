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

// RecordPayment applies a payment with optimistic locking on the debt's version.
// The debt, the payment row and, for a closing payment, the client's reputation are written in one transaction;
// if another writer got there first the whole transaction is cancelled and nothing is recorded.
func (s *Store) RecordPayment(ctx context.Context, debtID string, in ledger.PaymentInput) (*models.Debt, *models.Payment, error) {
	// 1. Read the current debt.
	current, err := s.getDebtItem(ctx, debtID)
	if err != nil {
		return nil, nil, err
	}

	// 2. Apply the ledger rules.
	next, payment, err := ledger.ApplyPayment(&current.Debt, in, s.now())
	if err != nil {
		return nil, nil, err
	}

	debtAV, err := attributevalue.MarshalMap(newDebtItem(next, current.ClientName))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal debt: %w", err)
	}
	paymentAV, err := attributevalue.MarshalMap(payment)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal payment: %w", err)
	}

	// 3. Write everything conditioned on the version we read.
	items := []types.TransactWriteItem{
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
			Put: &types.Put{
				TableName:           aws.String(s.PaymentsTableName),
				Item:                paymentAV,
				ConditionExpression: aws.String("attribute_not_exists(debt_id)"),
			},
		},
	}

	if next.Status == models.PAID {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(s.ClientsTableName),
				Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: next.ClientID}},
				UpdateExpression:    aws.String("SET reputation = :reputation ADD active_debts :dec"),
				ConditionExpression: aws.String("attribute_exists(id)"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":reputation": &types.AttributeValueMemberS{Value: string(ledger.ReputationFor(next.Rating))},
					":dec":        &types.AttributeValueMemberN{Value: "-1"},
				},
			},
		})
	}

	if _, err := s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		if isConflict(err) {
			return nil, nil, ledger.ConcurrencyError("debt %s was modified by another payment, retry", debtID)
		}
		return nil, nil, fmt.Errorf("failed to execute payment transaction: %w", err)
	}

	return next, payment, nil
}
