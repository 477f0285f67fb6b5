package repository

import (
	"context"
	"encoding/json"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "service_orders"
	ordersTenantIndexName  = "tenant_id-index"
)

type serviceOrderItem struct {
	ID            string `dynamodbav:"id"`
	TenantID      string `dynamodbav:"tenant_id"`
	Code          string `dynamodbav:"code"`
	CustomerID    string `dynamodbav:"customer_id"`
	VehicleID     string `dynamodbav:"vehicle_id"`
	MechanicID    string `dynamodbav:"mechanic_id,omitempty"`
	Status        string `dynamodbav:"status"`
	ScheduledAt   string `dynamodbav:"scheduled_at"`
	StartedAt     string `dynamodbav:"started_at,omitempty"`
	CompletedAt   string `dynamodbav:"completed_at,omitempty"`
	Items         string `dynamodbav:"items"`
	Subtotal      string `dynamodbav:"subtotal"`
	DiscountType  string `dynamodbav:"discount_type,omitempty"`
	DiscountValue string `dynamodbav:"discount_value,omitempty"`
	Total         string `dynamodbav:"total"`
	Version       int64  `dynamodbav:"version"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (tenant_id-index): tenant_id
//
// Status writes are compare-and-swap on the current status, and billing writes
// compare-and-swap on the version counter, so a read-validate-write sequence
// that lost a race fails its condition instead of clobbering the winner.

type ServiceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

// TableName exposes the resolved table name for the payment repository's
// cross-table transaction.
func (r *ServiceOrderDynamoRepository) TableName() string {
	return r.tableName
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	it, err := toServiceOrderItem(o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ServiceOrder{}, err
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
		if isConditionalCheckFailure(err) {
			return entities.ServiceOrder{}, interfaces.ErrAlreadyExists
		}
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	// Cross-tenant reads answer exactly like missing rows.
	if it.TenantID != tenantID {
		return entities.ServiceOrder{}, nil
	}
	return fromServiceOrderItem(it)
}

func (r *ServiceOrderDynamoRepository) ListByTenant(ctx context.Context, tenantID string) ([]entities.ServiceOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersTenantIndexName),
		KeyConditionExpression: aws.String("#tenant_id = :tenant_id"),
		ExpressionAttributeNames: map[string]string{
			"#tenant_id": "tenant_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tenant_id": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.ServiceOrder, 0, len(out.Items))
	for _, raw := range out.Items {
		var it serviceOrderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		o, err := fromServiceOrderItem(it)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *ServiceOrderDynamoRepository) UpdateBilling(ctx context.Context, o entities.ServiceOrder, expectedVersion int64) (entities.ServiceOrder, error) {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	now := formatTime(time.Now())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: o.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #tenant_id = :tenant_id AND #version = :expected"),
		UpdateExpression:    aws.String("SET #items = :items, #discount_type = :discount_type, #discount_value = :discount_value, #subtotal = :subtotal, #total = :total, #updated_at = :updated_at, #version = #version + :one"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#tenant_id":      "tenant_id",
			"#version":        "version",
			"#items":          "items",
			"#discount_type":  "discount_type",
			"#discount_value": "discount_value",
			"#subtotal":       "subtotal",
			"#total":          "total",
			"#updated_at":     "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tenant_id":      &types.AttributeValueMemberS{Value: o.TenantID},
			":expected":       &types.AttributeValueMemberN{Value: int64ToString(expectedVersion)},
			":items":          &types.AttributeValueMemberS{Value: string(itemsJSON)},
			":discount_type":  &types.AttributeValueMemberS{Value: string(o.DiscountType)},
			":discount_value": &types.AttributeValueMemberS{Value: floatToString(o.DiscountValue)},
			":subtotal":       &types.AttributeValueMemberS{Value: floatToString(o.Subtotal)},
			":total":          &types.AttributeValueMemberS{Value: floatToString(o.Total)},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
			":one":            &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailure(err) {
			return entities.ServiceOrder{}, interfaces.ErrConditionalCheckFailed
		}
		return entities.ServiceOrder{}, err
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it)
}

func (r *ServiceOrderDynamoRepository) TransitionStatus(ctx context.Context, tenantID, id string, from, to entities.OrderStatus, startedAt, completedAt *time.Time) (entities.ServiceOrder, error) {
	now := formatTime(time.Now())

	updateExpr := "SET #status = :to, #updated_at = :updated_at, #version = #version + :one"
	names := map[string]string{
		"#id":         "id",
		"#tenant_id":  "tenant_id",
		"#status":     "status",
		"#updated_at": "updated_at",
		"#version":    "version",
	}
	values := map[string]types.AttributeValue{
		":tenant_id":  &types.AttributeValueMemberS{Value: tenantID},
		":from":       &types.AttributeValueMemberS{Value: string(from)},
		":to":         &types.AttributeValueMemberS{Value: string(to)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
		":one":        &types.AttributeValueMemberN{Value: "1"},
	}
	if startedAt != nil {
		// if_not_exists keeps the first EM_EXECUCAO entry's stamp forever.
		updateExpr += ", #started_at = if_not_exists(#started_at, :started_at)"
		names["#started_at"] = "started_at"
		values[":started_at"] = &types.AttributeValueMemberS{Value: formatTime(*startedAt)}
	}
	if completedAt != nil {
		updateExpr += ", #completed_at = :completed_at"
		names["#completed_at"] = "completed_at"
		values[":completed_at"] = &types.AttributeValueMemberS{Value: formatTime(*completedAt)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #tenant_id = :tenant_id AND #status = :from"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailure(err) {
			return entities.ServiceOrder{}, interfaces.ErrConditionalCheckFailed
		}
		return entities.ServiceOrder{}, err
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it)
}

func toServiceOrderItem(o entities.ServiceOrder) (serviceOrderItem, error) {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return serviceOrderItem{}, err
	}
	return serviceOrderItem{
		ID:            o.ID,
		TenantID:      o.TenantID,
		Code:          o.Code,
		CustomerID:    o.CustomerID,
		VehicleID:     o.VehicleID,
		MechanicID:    o.MechanicID,
		Status:        string(o.Status),
		ScheduledAt:   formatTime(o.ScheduledAt),
		StartedAt:     formatTimePtr(o.StartedAt),
		CompletedAt:   formatTimePtr(o.CompletedAt),
		Items:         string(itemsJSON),
		Subtotal:      floatToString(o.Subtotal),
		DiscountType:  string(o.DiscountType),
		DiscountValue: floatToString(o.DiscountValue),
		Total:         floatToString(o.Total),
		Version:       o.Version,
		CreatedAt:     formatTime(o.CreatedAt),
		UpdatedAt:     formatTime(o.UpdatedAt),
	}, nil
}

func fromServiceOrderItem(it serviceOrderItem) (entities.ServiceOrder, error) {
	var items []entities.OrderItem
	if it.Items != "" {
		if err := json.Unmarshal([]byte(it.Items), &items); err != nil {
			return entities.ServiceOrder{}, err
		}
	}
	return entities.ServiceOrder{
		ID:            it.ID,
		TenantID:      it.TenantID,
		Code:          it.Code,
		CustomerID:    it.CustomerID,
		VehicleID:     it.VehicleID,
		MechanicID:    it.MechanicID,
		Status:        entities.OrderStatus(it.Status),
		ScheduledAt:   parseTime(it.ScheduledAt),
		StartedAt:     parseTimePtr(it.StartedAt),
		CompletedAt:   parseTimePtr(it.CompletedAt),
		Items:         items,
		Subtotal:      stringToFloat(it.Subtotal),
		DiscountType:  entities.DiscountType(it.DiscountType),
		DiscountValue: stringToFloat(it.DiscountValue),
		Total:         stringToFloat(it.Total),
		Version:       it.Version,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}, nil
}
