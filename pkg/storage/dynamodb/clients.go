package dynamodb

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/debt-ledger/pkg/ledger"
	"github.com/chris/debt-ledger/pkg/models"
)

// batchGetLimit is the maximum number of keys DynamoDB accepts in one BatchGetItem request.
const batchGetLimit = 100

// GetClient retrieves a client from DynamoDB by its ID.
func (s *Store) GetClient(ctx context.Context, clientID string) (*models.Client, error) {
	item, err := s.getClientItem(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return &item.Client, nil
}

func (s *Store) getClientItem(ctx context.Context, clientID string) (*clientItem, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": clientID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal client ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.ClientsTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get client from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, ledger.NotFoundError("client", clientID)
	}

	var item clientItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal client: %w", err)
	}

	return &item, nil
}

// SearchClients scans for clients whose lower-cased name contains the query.
func (s *Store) SearchClients(ctx context.Context, query string) ([]models.ClientSummary, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(s.ClientsTableName),
		FilterExpression: aws.String("contains(fullname_lower, :q)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":q": &types.AttributeValueMemberS{Value: strings.ToLower(strings.TrimSpace(query))},
		},
	}

	raw, err := s.scanAll(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan clients: %w", err)
	}

	var items []clientItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal clients: %w", err)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].FullnameLower != items[j].FullnameLower {
			return items[i].FullnameLower < items[j].FullnameLower
		}
		return items[i].ID < items[j].ID
	})

	summaries := make([]models.ClientSummary, len(items))
	for i, item := range items {
		summaries[i] = item.summary()
	}
	return summaries, nil
}

// ListClients returns one page of clients, newest first.
// Filtering on phone and address happens after the scan, since DynamoDB cannot match them case-insensitively.
func (s *Store) ListClients(ctx context.Context, filter models.ClientFilter) (*models.Page[models.ClientSummary], error) {
	raw, err := s.scanAll(ctx, &dynamodb.ScanInput{TableName: aws.String(s.ClientsTableName)})
	if err != nil {
		return nil, fmt.Errorf("failed to scan clients: %w", err)
	}

	var items []clientItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal clients: %w", err)
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	matched := make([]models.ClientSummary, 0, len(items))
	for _, item := range items {
		if search != "" &&
			!strings.Contains(item.FullnameLower, search) &&
			!strings.Contains(strings.ToLower(item.Phone), search) &&
			!strings.Contains(strings.ToLower(item.Address), search) {
			continue
		}
		if filter.Date != nil && !filter.Date.Contains(item.CreatedAt) {
			continue
		}
		matched = append(matched, item.summary())
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	return &models.Page[models.ClientSummary]{
		Items: paginate(matched, filter.Offset(), filter.Limit),
		Total: int64(len(matched)),
	}, nil
}

// batchGetClients loads the given clients, keyed by ID. Missing clients are absent from the map.
func (s *Store) batchGetClients(ctx context.Context, ids []string) (map[string]clientItem, error) {
	out := make(map[string]clientItem, len(ids))
	for start := 0; start < len(ids); start += batchGetLimit {
		end := start + batchGetLimit
		if end > len(ids) {
			end = len(ids)
		}

		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}})
		}

		request := map[string]types.KeysAndAttributes{
			s.ClientsTableName: {Keys: keys},
		}
		for len(request) > 0 {
			result, err := s.Client.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, fmt.Errorf("failed to batch get clients: %w", err)
			}

			var items []clientItem
			if err := attributevalue.UnmarshalListOfMaps(result.Responses[s.ClientsTableName], &items); err != nil {
				return nil, fmt.Errorf("failed to unmarshal clients: %w", err)
			}
			for _, item := range items {
				out[item.ID] = item
			}
			request = result.UnprocessedKeys
		}
	}
	return out, nil
}
