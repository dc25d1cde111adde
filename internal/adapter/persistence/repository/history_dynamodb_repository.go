package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"patoz_consumer/internal/domain/entities"
	"patoz_consumer/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultHistoryTableName = "repair_history"

type historyItem struct {
	ID            string `dynamodbav:"id"`
	DeviceID      string `dynamodbav:"device_id"`
	Title         string `dynamodbav:"title"`
	Center        string `dynamodbav:"center"`
	ReceivedDate  string `dynamodbav:"received_date"`
	CompletedDate string `dynamodbav:"completed_date,omitempty"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// HistoryDynamoRepository persists the maintenance log in DynamoDB.
// created_at (RFC3339Nano) preserves the prepend order the in-memory
// store gets for free; List sorts on it descending.

type HistoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IHistoryRepository = (*HistoryDynamoRepository)(nil)

func NewHistoryDynamoRepository(ddb *dynamodb.Client) *HistoryDynamoRepository {
	return &HistoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("HISTORY_TABLE", defaultHistoryTableName),
	}
}

func (r *HistoryDynamoRepository) Create(ctx context.Context, h entities.HistoryItem) (entities.HistoryItem, error) {
	it := toHistoryItem(h)
	it.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.HistoryItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.HistoryItem{}, err
	}
	return h, nil
}

func (r *HistoryDynamoRepository) GetByID(ctx context.Context, id string) (entities.HistoryItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.HistoryItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.HistoryItem{}, nil
	}

	var it historyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.HistoryItem{}, err
	}
	return fromHistoryItem(it), nil
}

func (r *HistoryDynamoRepository) List(ctx context.Context) ([]entities.HistoryItem, error) {
	return r.scan(ctx, nil, nil)
}

func (r *HistoryDynamoRepository) ListByDeviceID(ctx context.Context, deviceID string) ([]entities.HistoryItem, error) {
	filter := aws.String("#device_id = :device_id")
	values := map[string]types.AttributeValue{
		":device_id": &types.AttributeValueMemberS{Value: deviceID},
	}
	return r.scan(ctx, filter, values)
}

// CompleteOpen stamps the most recent in-progress item for the device.
// The read-then-update pair is not atomic; the condition expression keeps
// a lost race from overwriting a date another writer stamped first.
func (r *HistoryDynamoRepository) CompleteOpen(ctx context.Context, deviceID, completedDate string) (entities.HistoryItem, error) {
	items, err := r.ListByDeviceID(ctx, deviceID)
	if err != nil {
		return entities.HistoryItem{}, err
	}

	var open *entities.HistoryItem
	for i := range items {
		if items[i].CompletedDate == "" {
			open = &items[i]
			break
		}
	}
	if open == nil {
		return entities.HistoryItem{}, nil
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: open.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#completed_date)"),
		UpdateExpression:    aws.String("SET #completed_date = :completed_date"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#completed_date": "completed_date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":completed_date": &types.AttributeValueMemberS{Value: completedDate},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.HistoryItem{}, nil
		}
		return entities.HistoryItem{}, err
	}

	var it historyItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.HistoryItem{}, err
	}
	return fromHistoryItem(it), nil
}

func (r *HistoryDynamoRepository) scan(ctx context.Context, filter *string, values map[string]types.AttributeValue) ([]entities.HistoryItem, error) {
	input := &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	}
	if filter != nil {
		input.FilterExpression = filter
		input.ExpressionAttributeNames = map[string]string{
			"#device_id": "device_id",
		}
		input.ExpressionAttributeValues = values
	}

	out, err := r.ddb.Scan(ctx, input)
	if err != nil {
		return nil, err
	}

	var items []historyItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt > items[j].CreatedAt })

	result := make([]entities.HistoryItem, 0, len(items))
	for _, it := range items {
		result = append(result, fromHistoryItem(it))
	}
	return result, nil
}

func toHistoryItem(h entities.HistoryItem) historyItem {
	return historyItem{
		ID:            h.ID,
		DeviceID:      h.DeviceID,
		Title:         h.Title,
		Center:        h.Center,
		ReceivedDate:  h.ReceivedDate,
		CompletedDate: h.CompletedDate,
		Status:        h.Status,
	}
}

func fromHistoryItem(it historyItem) entities.HistoryItem {
	return entities.HistoryItem{
		ID:            it.ID,
		DeviceID:      it.DeviceID,
		Title:         it.Title,
		Center:        it.Center,
		ReceivedDate:  it.ReceivedDate,
		CompletedDate: it.CompletedDate,
		Status:        it.Status,
	}
}
