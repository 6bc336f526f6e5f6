package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/debt-ledger/pkg/models"
)

// AppendAuditEntry stores an audit entry. Redelivered entries are ignored.
func (s *Store) AppendAuditEntry(ctx context.Context, entry *models.AuditEntry) error {
	entry.GSI1PK = models.AuditPartition

	av, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal audit entry: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.AuditTableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(entry_id)"),
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil
		}
		return fmt.Errorf("failed to put audit entry: %w", err)
	}

	return nil
}

// ListAuditEntries retrieves the most recent audit entries.
func (s *Store) ListAuditEntries(ctx context.Context, limit int32) ([]models.AuditEntry, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.AuditTableName),
		IndexName:              aws.String(auditGSI),
		KeyConditionExpression: aws.String("gsi1pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: models.AuditPartition},
		},
		ScanIndexForward: aws.Bool(false), // Sort by timestamp in descending order
		Limit:            &limit,
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for audit entries: %w", err)
	}

	entries := []models.AuditEntry{}
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal audit entries: %w", err)
	}

	return entries, nil
}
