package repository

import (
	"context"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsOrderIndexName   = "order_id-index"
)

type paymentRow struct {
	ID         string `dynamodbav:"id"`
	TenantID   string `dynamodbav:"tenant_id"`
	OrderID    string `dynamodbav:"order_id"`
	Method     string `dynamodbav:"method"`
	Amount     string `dynamodbav:"amount"`
	PaidAt     string `dynamodbav:"paid_at"`
	ReceivedBy string `dynamodbav:"received_by"`
	Notes      string `dynamodbav:"notes,omitempty"`

	ProviderPaymentID  string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderStatus     string `dynamodbav:"provider_status,omitempty"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists Payment receipts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (order_id-index): order_id
//
// Rows are append-only. The insert is a transaction that also bumps the order
// row's version, conditioned on the version the caller's balance read observed;
// concurrent payments on the same order therefore serialize, and the loser's
// balance check is re-run after a retry.

type PaymentDynamoRepository struct {
	ddb         *dynamodb.Client
	tableName   string
	ordersTable string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:         ddb,
		tableName:   getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
		ordersTable: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *PaymentDynamoRepository) CreateWithOrderVersion(ctx context.Context, p entities.Payment, expectedOrderVersion int64) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentRow(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.ordersTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: p.OrderID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #tenant_id = :tenant_id AND #version = :expected"),
					UpdateExpression:    aws.String("SET #version = #version + :one, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#tenant_id":  "tenant_id",
						"#version":    "version",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":tenant_id":  &types.AttributeValueMemberS{Value: p.TenantID},
						":expected":   &types.AttributeValueMemberN{Value: int64ToString(expectedOrderVersion)},
						":one":        &types.AttributeValueMemberN{Value: "1"},
						":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
					},
				},
			},
		},
	})
	if err != nil {
		if isConditionalCheckFailure(err) {
			return entities.Payment{}, interfaces.ErrConditionalCheckFailed
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var row paymentRow
	if err := attributevalue.UnmarshalMap(out.Item, &row); err != nil {
		return entities.Payment{}, err
	}
	if row.TenantID != tenantID {
		return entities.Payment{}, nil
	}
	return fromPaymentRow(row), nil
}

func (r *PaymentDynamoRepository) ListByOrderID(ctx context.Context, tenantID, orderID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsOrderIndexName),
		KeyConditionExpression: aws.String("#order_id = :order_id"),
		FilterExpression:       aws.String("#tenant_id = :tenant_id"),
		ExpressionAttributeNames: map[string]string{
			"#order_id":  "order_id",
			"#tenant_id": "tenant_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id":  &types.AttributeValueMemberS{Value: orderID},
			":tenant_id": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var row paymentRow
		if err := attributevalue.UnmarshalMap(raw, &row); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentRow(row))
	}
	return payments, nil
}

func toPaymentRow(p entities.Payment) paymentRow {
	return paymentRow{
		ID:                 p.ID,
		TenantID:           p.TenantID,
		OrderID:            p.OrderID,
		Method:             string(p.Method),
		Amount:             floatToString(p.Amount),
		PaidAt:             formatTime(p.PaidAt),
		ReceivedBy:         p.ReceivedBy,
		Notes:              p.Notes,
		ProviderPaymentID:  p.ProviderPaymentID,
		ProviderStatus:     p.ProviderStatus,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPaymentRow(row paymentRow) entities.Payment {
	p := entities.Payment{
		ID:                row.ID,
		TenantID:          row.TenantID,
		OrderID:           row.OrderID,
		Method:            entities.PaymentMethod(row.Method),
		Amount:            stringToFloat(row.Amount),
		PaidAt:            parseTime(row.PaidAt),
		ReceivedBy:        row.ReceivedBy,
		Notes:             row.Notes,
		ProviderPaymentID: row.ProviderPaymentID,
		ProviderStatus:    row.ProviderStatus,
	}
	if row.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = []byte(row.ProviderPayloadRaw)
	}
	return p
}
