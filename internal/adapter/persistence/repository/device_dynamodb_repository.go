package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"patoz_consumer/internal/domain/entities"
	"patoz_consumer/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDevicesTableName = "devices"

// selectionItemID is a reserved PK holding the current device selection.
// Device ids are UUIDs, so it can never collide with a real device.
const selectionItemID = "__selected__"

type deviceItem struct {
	ID                  string `dynamodbav:"id"`
	Brand               string `dynamodbav:"brand"`
	ModelName           string `dynamodbav:"model_name"`
	SerialNumber        string `dynamodbav:"serial_number"`
	Color               string `dynamodbav:"color"`
	RegisteredYear      int    `dynamodbav:"registered_year"`
	ImageURI            string `dynamodbav:"image_uri,omitempty"`
	ServiceStatus       string `dynamodbav:"service_status"`
	ConfirmedEstimateID string `dynamodbav:"confirmed_estimate_id,omitempty"`
	Position            int    `dynamodbav:"position"`
}

type selectionItem struct {
	ID       string `dynamodbav:"id"`
	DeviceID string `dynamodbav:"device_id"`
}

// DeviceDynamoRepository persists the device sequence in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The sequence order lives in the position attribute; List scans the table
// and sorts by it.

type DeviceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDeviceRepository = (*DeviceDynamoRepository)(nil)

func NewDeviceDynamoRepository(ddb *dynamodb.Client) *DeviceDynamoRepository {
	return &DeviceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEVICES_TABLE", defaultDevicesTableName),
	}
}

func (r *DeviceDynamoRepository) Create(ctx context.Context, d entities.Device) (entities.Device, error) {
	current, err := r.List(ctx)
	if err != nil {
		return entities.Device{}, err
	}
	d.Position = len(current)

	av, err := attributevalue.MarshalMap(toDeviceItem(d))
	if err != nil {
		return entities.Device{}, err
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
		return entities.Device{}, err
	}
	return d, nil
}

func (r *DeviceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Device, error) {
	if id == selectionItemID {
		return entities.Device{}, nil
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Device{}, err
	}
	if len(out.Item) == 0 {
		return entities.Device{}, nil
	}

	var it deviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Device{}, err
	}
	return fromDeviceItem(it), nil
}

func (r *DeviceDynamoRepository) List(ctx context.Context) ([]entities.Device, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#id <> :selection"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":selection": &types.AttributeValueMemberS{Value: selectionItemID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	var items []deviceItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Position < items[j].Position })

	devices := make([]entities.Device, 0, len(items))
	for _, it := range items {
		devices = append(devices, fromDeviceItem(it))
	}
	return devices, nil
}

func (r *DeviceDynamoRepository) SaveOrder(ctx context.Context, ids []string) error {
	for i, id := range ids {
		_, err := r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #position = :position"
			vals := map[string]types.AttributeValue{
				":position": &types.AttributeValueMemberN{Value: strconv.Itoa(i)},
			}
			names := map[string]string{
				"#position": "position",
			}
			return expr, vals, names
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *DeviceDynamoRepository) UpdateServiceStatus(ctx context.Context, id string, status entities.ServiceStatus) (entities.Device, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #service_status = :service_status"
		vals := map[string]types.AttributeValue{
			":service_status": &types.AttributeValueMemberS{Value: string(status)},
		}
		names := map[string]string{
			"#service_status": "service_status",
		}
		return expr, vals, names
	})
}

func (r *DeviceDynamoRepository) UpdateConfirmedEstimate(ctx context.Context, id, estimateID string, status entities.ServiceStatus) (entities.Device, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #confirmed_estimate_id = :confirmed_estimate_id, #service_status = :service_status"
		vals := map[string]types.AttributeValue{
			":confirmed_estimate_id": &types.AttributeValueMemberS{Value: estimateID},
			":service_status":        &types.AttributeValueMemberS{Value: string(status)},
		}
		names := map[string]string{
			"#confirmed_estimate_id": "confirmed_estimate_id",
			"#service_status":        "service_status",
		}
		return expr, vals, names
	})
}

func (r *DeviceDynamoRepository) GetSelectedID(ctx context.Context) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: selectionItemID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}

	var it selectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", err
	}
	return it.DeviceID, nil
}

func (r *DeviceDynamoRepository) SetSelectedID(ctx context.Context, id string) error {
	av, err := attributevalue.MarshalMap(selectionItem{ID: selectionItemID, DeviceID: id})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *DeviceDynamoRepository) update(
	ctx context.Context,
	id string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Device, error) {
	updateExpr, values, names := build()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Device{}, nil
		}
		return entities.Device{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Device{}, nil
	}

	var it deviceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Device{}, err
	}
	return fromDeviceItem(it), nil
}

func toDeviceItem(d entities.Device) deviceItem {
	return deviceItem{
		ID:                  d.ID,
		Brand:               d.Brand,
		ModelName:           d.ModelName,
		SerialNumber:        d.SerialNumber,
		Color:               d.Color,
		RegisteredYear:      d.RegisteredYear,
		ImageURI:            d.ImageURI,
		ServiceStatus:       string(d.ServiceStatus),
		ConfirmedEstimateID: d.ConfirmedEstimateID,
		Position:            d.Position,
	}
}

func fromDeviceItem(it deviceItem) entities.Device {
	return entities.Device{
		ID:                  it.ID,
		Brand:               it.Brand,
		ModelName:           it.ModelName,
		SerialNumber:        it.SerialNumber,
		Color:               it.Color,
		RegisteredYear:      it.RegisteredYear,
		ImageURI:            it.ImageURI,
		ServiceStatus:       entities.ServiceStatus(it.ServiceStatus),
		ConfirmedEstimateID: it.ConfirmedEstimateID,
		Position:            it.Position,
	}
}
