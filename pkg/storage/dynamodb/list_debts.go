package dynamodb

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/debt-ledger/pkg/models"
)

// ListDebts returns one page of debts joined with their clients.
// The status and client indexes narrow the read; search, date, ordering and paging run in process.
func (s *Store) ListDebts(ctx context.Context, filter models.DebtFilter) (*models.Page[models.DebtView], error) {
	raw, err := s.readDebts(ctx, filter)
	if err != nil {
		return nil, err
	}

	var items []debtItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal debts: %w", err)
	}

	if filter.Date != nil {
		matched := items[:0]
		for _, item := range items {
			if filter.Date.Contains(debtDate(&item.Debt, filter.Status)) {
				matched = append(matched, item)
			}
		}
		items = matched
	}

	sortDebts(items, filter.SortBy, filter.Status)
	page := paginate(items, filter.Offset(), filter.Limit)

	views, err := s.joinClients(ctx, page)
	if err != nil {
		return nil, err
	}

	return &models.Page[models.DebtView]{Items: views, Total: int64(len(items))}, nil
}

func (s *Store) readDebts(ctx context.Context, filter models.DebtFilter) ([]map[string]types.AttributeValue, error) {
	var conditions []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		conditions = append(conditions, "contains(client_name_lower, :search)")
		values[":search"] = &types.AttributeValueMemberS{Value: search}
	}

	switch {
	case filter.Status != "":
		if filter.ClientID != "" {
			conditions = append(conditions, "client_id = :client_id")
			values[":client_id"] = &types.AttributeValueMemberS{Value: filter.ClientID}
		}
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}

		input := &dynamodb.QueryInput{
			TableName:                 aws.String(s.DebtsTableName),
			IndexName:                 aws.String(statusCreatedAtGSI),
			KeyConditionExpression:    aws.String("#status = :status"),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ScanIndexForward:          aws.Bool(false),
		}
		if len(conditions) > 0 {
			input.FilterExpression = aws.String(strings.Join(conditions, " AND "))
		}
		raw, err := s.queryAll(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query debts by status: %w", err)
		}
		return raw, nil

	case filter.ClientID != "":
		values[":client_id"] = &types.AttributeValueMemberS{Value: filter.ClientID}

		input := &dynamodb.QueryInput{
			TableName:                 aws.String(s.DebtsTableName),
			IndexName:                 aws.String(clientCreatedAtGSI),
			KeyConditionExpression:    aws.String("client_id = :client_id"),
			ExpressionAttributeValues: values,
			ScanIndexForward:          aws.Bool(false),
		}
		if len(conditions) > 0 {
			input.FilterExpression = aws.String(strings.Join(conditions, " AND "))
		}
		raw, err := s.queryAll(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query debts by client: %w", err)
		}
		return raw, nil

	default:
		input := &dynamodb.ScanInput{TableName: aws.String(s.DebtsTableName)}
		if len(conditions) > 0 {
			input.FilterExpression = aws.String(strings.Join(conditions, " AND "))
			input.ExpressionAttributeValues = values
		}
		raw, err := s.scanAll(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debts: %w", err)
		}
		return raw, nil
	}
}

// debtDate is the timestamp a listing filters and orders by: deletion time for the deleted partition, creation time otherwise.
func debtDate(d *models.Debt, status models.DebtStatus) time.Time {
	if status == models.DELETED && d.DeletedAt != nil {
		return *d.DeletedAt
	}
	return d.CreatedAt
}

func sortDebts(items []debtItem, sortBy string, status models.DebtStatus) {
	newest := func(a, b *debtItem) bool {
		ta, tb := debtDate(&a.Debt, status), debtDate(&b.Debt, status)
		if !ta.Equal(tb) {
			return ta.After(tb)
		}
		return a.ID > b.ID
	}

	var less func(a, b *debtItem) bool
	switch sortBy {
	case models.SortDateOld:
		less = func(a, b *debtItem) bool { return newest(b, a) }
	case models.SortName:
		less = func(a, b *debtItem) bool {
			if a.ClientNameLower != b.ClientNameLower {
				return a.ClientNameLower < b.ClientNameLower
			}
			return newest(a, b)
		}
	case models.SortAmountDesc:
		less = func(a, b *debtItem) bool {
			if a.OriginalAmount != b.OriginalAmount {
				return a.OriginalAmount > b.OriginalAmount
			}
			return newest(a, b)
		}
	case models.SortAmountAsc:
		less = func(a, b *debtItem) bool {
			if a.OriginalAmount != b.OriginalAmount {
				return a.OriginalAmount < b.OriginalAmount
			}
			return newest(a, b)
		}
	default:
		less = newest
	}

	sort.SliceStable(items, func(i, j int) bool { return less(&items[i], &items[j]) })
}

func (s *Store) joinClients(ctx context.Context, page []debtItem) ([]models.DebtView, error) {
	seen := make(map[string]bool, len(page))
	var ids []string
	for _, item := range page {
		if !seen[item.ClientID] {
			seen[item.ClientID] = true
			ids = append(ids, item.ClientID)
		}
	}

	clients, err := s.batchGetClients(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]models.DebtView, len(page))
	for i, item := range page {
		view := models.DebtView{Debt: item.Debt, ClientName: item.ClientName}
		if c, ok := clients[item.ClientID]; ok {
			view.ClientName = c.Fullname
			view.ClientPhone = c.Phone
			view.ClientAddress = c.Address
			view.ClientPhotoRef = c.PhotoRef
			view.ClientReputation = c.Reputation
		}
		views[i] = view
	}
	return views, nil
}
