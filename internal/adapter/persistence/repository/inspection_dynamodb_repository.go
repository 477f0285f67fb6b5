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
	defaultInspectionsTableName       = "inspections"
	defaultInspectionItemsTableName   = "inspection_items"
	defaultInspectionDamagesTableName = "inspection_damages"
	damagesInspectionIndexName        = "inspection_id-index"
)

type inspectionItemRow struct {
	InspectionID string `dynamodbav:"inspection_id"`
	ItemKey      string `dynamodbav:"item_key"`
	Category     string `dynamodbav:"category"`
	Label        string `dynamodbav:"label"`
	IsRequired   bool   `dynamodbav:"is_required"`
	IsCritical   bool   `dynamodbav:"is_critical"`
	Status       string `dynamodbav:"status"`
	PhotoURL     string `dynamodbav:"photo_url,omitempty"`
	Notes        string `dynamodbav:"notes,omitempty"`
	DamageType   string `dynamodbav:"damage_type,omitempty"`
	Severity     string `dynamodbav:"severity,omitempty"`
	CompletedAt  string `dynamodbav:"completed_at,omitempty"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

type inspectionRow struct {
	ID            string `dynamodbav:"id"`
	TenantID      string `dynamodbav:"tenant_id"`
	OrderID       string `dynamodbav:"order_id"`
	Type          string `dynamodbav:"type"`
	Status        string `dynamodbav:"status"`
	SignedAt      string `dynamodbav:"signed_at,omitempty"`
	FinalVideoURL string `dynamodbav:"final_video_url,omitempty"`
	Version       int64  `dynamodbav:"version"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

type damageRow struct {
	ID             string  `dynamodbav:"id"`
	TenantID       string  `dynamodbav:"tenant_id"`
	InspectionID   string  `dynamodbav:"inspection_id"`
	Zone           string  `dynamodbav:"zone,omitempty"`
	CustomPosition string  `dynamodbav:"custom_position,omitempty"`
	PosX           *string `dynamodbav:"pos_x,omitempty"`
	PosY           *string `dynamodbav:"pos_y,omitempty"`
	PosZ           *string `dynamodbav:"pos_z,omitempty"`
	NormX          *string `dynamodbav:"norm_x,omitempty"`
	NormY          *string `dynamodbav:"norm_y,omitempty"`
	NormZ          *string `dynamodbav:"norm_z,omitempty"`
	DamageType     string  `dynamodbav:"damage_type"`
	Severity       string  `dynamodbav:"severity"`
	Notes          string  `dynamodbav:"notes,omitempty"`
	PhotoURL       string  `dynamodbav:"photo_url,omitempty"`
	CreatedAt      string  `dynamodbav:"created_at"`
}

// InspectionDynamoRepository persists inspections, checklist items and damage
// annotations in DynamoDB.
//
// Table requirements:
//   - inspections: PK id (string). The deterministic "<order_id>#<type>" id
//     enforces one inspection per (order, type).
//   - inspection_items: PK inspection_id (HASH) + item_key (RANGE)
//   - inspection_damages: PK id, GSI1 (inspection_id-index): inspection_id
//
// Item writes and the completion flip are guarded by the inspection row's
// status/version, executed as transactions so the guard and the write commit
// together.

type InspectionDynamoRepository struct {
	ddb          *dynamodb.Client
	tableName    string
	itemsTable   string
	damagesTable string
}

var _ interfaces.IInspectionRepository = (*InspectionDynamoRepository)(nil)

func NewInspectionDynamoRepository(ddb *dynamodb.Client) *InspectionDynamoRepository {
	return &InspectionDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault("INSPECTIONS_TABLE", defaultInspectionsTableName),
		itemsTable:   getenvDefault("INSPECTION_ITEMS_TABLE", defaultInspectionItemsTableName),
		damagesTable: getenvDefault("INSPECTION_DAMAGES_TABLE", defaultInspectionDamagesTableName),
	}
}

func (r *InspectionDynamoRepository) Create(ctx context.Context, insp entities.Inspection, items []entities.InspectionItem) (entities.Inspection, error) {
	inspAV, err := attributevalue.MarshalMap(toInspectionRow(insp))
	if err != nil {
		return entities.Inspection{}, err
	}

	writes := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                inspAV,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		},
	}
	for _, it := range items {
		av, err := attributevalue.MarshalMap(toInspectionItemRow(it))
		if err != nil {
			return entities.Inspection{}, err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.itemsTable),
				Item:      av,
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	if err != nil {
		if isConditionalCheckFailure(err) {
			return entities.Inspection{}, interfaces.ErrAlreadyExists
		}
		return entities.Inspection{}, err
	}
	return insp, nil
}

func (r *InspectionDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Inspection, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Inspection{}, err
	}
	if len(out.Item) == 0 {
		return entities.Inspection{}, nil
	}

	var row inspectionRow
	if err := attributevalue.UnmarshalMap(out.Item, &row); err != nil {
		return entities.Inspection{}, err
	}
	if row.TenantID != tenantID {
		return entities.Inspection{}, nil
	}
	return fromInspectionRow(row), nil
}

func (r *InspectionDynamoRepository) ListItems(ctx context.Context, inspectionID string) ([]entities.InspectionItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.itemsTable),
		KeyConditionExpression: aws.String("#inspection_id = :inspection_id"),
		ExpressionAttributeNames: map[string]string{
			"#inspection_id": "inspection_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":inspection_id": &types.AttributeValueMemberS{Value: inspectionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.InspectionItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var row inspectionItemRow
		if err := attributevalue.UnmarshalMap(raw, &row); err != nil {
			return nil, err
		}
		items = append(items, fromInspectionItemRow(row))
	}
	return items, nil
}

func (r *InspectionDynamoRepository) ListDamages(ctx context.Context, tenantID, inspectionID string) ([]entities.InspectionDamage, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.damagesTable),
		IndexName:              aws.String(damagesInspectionIndexName),
		KeyConditionExpression: aws.String("#inspection_id = :inspection_id"),
		FilterExpression:       aws.String("#tenant_id = :tenant_id"),
		ExpressionAttributeNames: map[string]string{
			"#inspection_id": "inspection_id",
			"#tenant_id":     "tenant_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":inspection_id": &types.AttributeValueMemberS{Value: inspectionID},
			":tenant_id":     &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, err
	}

	damages := make([]entities.InspectionDamage, 0, len(out.Items))
	for _, raw := range out.Items {
		var row damageRow
		if err := attributevalue.UnmarshalMap(raw, &row); err != nil {
			return nil, err
		}
		damages = append(damages, fromDamageRow(row))
	}
	return damages, nil
}

func (r *InspectionDynamoRepository) InsertMissingItems(ctx context.Context, items []entities.InspectionItem) error {
	for _, it := range items {
		av, err := attributevalue.MarshalMap(toInspectionItemRow(it))
		if err != nil {
			return err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.itemsTable),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#inspection_id)"),
			ExpressionAttributeNames: map[string]string{
				"#inspection_id": "inspection_id",
			},
		})
		if err != nil {
			// A concurrent drift sync already inserted this key; the existing
			// row wins.
			if isConditionalCheckFailure(err) {
				continue
			}
			return err
		}
	}
	return nil
}

func (r *InspectionDynamoRepository) UpdateItemGuarded(ctx context.Context, tenantID string, item entities.InspectionItem) (entities.InspectionItem, error) {
	now := formatTime(time.Now())

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Guard + version bump: the item write only commits while the
				// inspection is still em_andamento, and any committed write
				// invalidates an in-flight completion's read.
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: item.InspectionID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #tenant_id = :tenant_id AND #status = :em_andamento"),
					UpdateExpression:    aws.String("SET #version = #version + :one, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#tenant_id":  "tenant_id",
						"#status":     "status",
						"#version":    "version",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":tenant_id":    &types.AttributeValueMemberS{Value: tenantID},
						":em_andamento": &types.AttributeValueMemberS{Value: string(entities.InspectionStatusEmAndamento)},
						":one":          &types.AttributeValueMemberN{Value: "1"},
						":updated_at":   &types.AttributeValueMemberS{Value: now},
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.itemsTable),
					Key: map[string]types.AttributeValue{
						"inspection_id": &types.AttributeValueMemberS{Value: item.InspectionID},
						"item_key":      &types.AttributeValueMemberS{Value: item.ItemKey},
					},
					ConditionExpression: aws.String("attribute_exists(#inspection_id)"),
					UpdateExpression:    aws.String("SET #status = :status, #photo_url = :photo_url, #notes = :notes, #damage_type = :damage_type, #severity = :severity, #completed_at = :completed_at, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#inspection_id": "inspection_id",
						"#status":        "status",
						"#photo_url":     "photo_url",
						"#notes":         "notes",
						"#damage_type":   "damage_type",
						"#severity":      "severity",
						"#completed_at":  "completed_at",
						"#updated_at":    "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":status":       &types.AttributeValueMemberS{Value: string(item.Status)},
						":photo_url":    &types.AttributeValueMemberS{Value: item.PhotoURL},
						":notes":        &types.AttributeValueMemberS{Value: item.Notes},
						":damage_type":  &types.AttributeValueMemberS{Value: item.DamageType},
						":severity":     &types.AttributeValueMemberS{Value: item.Severity},
						":completed_at": &types.AttributeValueMemberS{Value: formatTimePtr(item.CompletedAt)},
						":updated_at":   &types.AttributeValueMemberS{Value: now},
					},
				},
			},
		},
	})
	if err != nil {
		if isConditionalCheckFailure(err) {
			return entities.InspectionItem{}, interfaces.ErrConditionalCheckFailed
		}
		return entities.InspectionItem{}, err
	}
	return item, nil
}

func (r *InspectionDynamoRepository) Complete(ctx context.Context, tenantID, inspectionID string, expectedVersion int64, signedAt time.Time) (entities.Inspection, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: inspectionID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #tenant_id = :tenant_id AND #status = :em_andamento AND #version = :expected"),
		UpdateExpression:    aws.String("SET #status = :concluida, #signed_at = :signed_at, #updated_at = :updated_at, #version = #version + :one"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#tenant_id":  "tenant_id",
			"#status":     "status",
			"#signed_at":  "signed_at",
			"#updated_at": "updated_at",
			"#version":    "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tenant_id":    &types.AttributeValueMemberS{Value: tenantID},
			":em_andamento": &types.AttributeValueMemberS{Value: string(entities.InspectionStatusEmAndamento)},
			":expected":     &types.AttributeValueMemberN{Value: int64ToString(expectedVersion)},
			":concluida":    &types.AttributeValueMemberS{Value: string(entities.InspectionStatusConcluida)},
			":signed_at":    &types.AttributeValueMemberS{Value: formatTime(signedAt)},
			":updated_at":   &types.AttributeValueMemberS{Value: formatTime(time.Now())},
			":one":          &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailure(err) {
			return entities.Inspection{}, interfaces.ErrConditionalCheckFailed
		}
		return entities.Inspection{}, err
	}

	var row inspectionRow
	if err := attributevalue.UnmarshalMap(out.Attributes, &row); err != nil {
		return entities.Inspection{}, err
	}
	return fromInspectionRow(row), nil
}

func (r *InspectionDynamoRepository) SetFinalVideo(ctx context.Context, tenantID, inspectionID, url string) (entities.Inspection, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: inspectionID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #tenant_id = :tenant_id AND #status = :em_andamento"),
		UpdateExpression:    aws.String("SET #final_video_url = :url, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":              "id",
			"#tenant_id":       "tenant_id",
			"#status":          "status",
			"#final_video_url": "final_video_url",
			"#updated_at":      "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tenant_id":    &types.AttributeValueMemberS{Value: tenantID},
			":em_andamento": &types.AttributeValueMemberS{Value: string(entities.InspectionStatusEmAndamento)},
			":url":          &types.AttributeValueMemberS{Value: url},
			":updated_at":   &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailure(err) {
			return entities.Inspection{}, interfaces.ErrConditionalCheckFailed
		}
		return entities.Inspection{}, err
	}

	var row inspectionRow
	if err := attributevalue.UnmarshalMap(out.Attributes, &row); err != nil {
		return entities.Inspection{}, err
	}
	return fromInspectionRow(row), nil
}

func (r *InspectionDynamoRepository) CreateDamages(ctx context.Context, damages []entities.InspectionDamage) ([]entities.InspectionDamage, error) {
	writes := make([]types.TransactWriteItem, 0, len(damages))
	for _, d := range damages {
		av, err := attributevalue.MarshalMap(toDamageRow(d))
		if err != nil {
			return nil, err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.damagesTable),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		})
	}

	// All-or-nothing: a partial batch never leaves orphan rows, so the client
	// can safely resend the same drafts after a failure.
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	if err != nil {
		return nil, err
	}
	return damages, nil
}

func (r *InspectionDynamoRepository) DeleteDamage(ctx context.Context, tenantID, inspectionID, damageID string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.damagesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: damageID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #tenant_id = :tenant_id AND #inspection_id = :inspection_id"),
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#tenant_id":     "tenant_id",
			"#inspection_id": "inspection_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tenant_id":     &types.AttributeValueMemberS{Value: tenantID},
			":inspection_id": &types.AttributeValueMemberS{Value: inspectionID},
		},
	})
	if err != nil {
		if isConditionalCheckFailure(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toInspectionRow(i entities.Inspection) inspectionRow {
	return inspectionRow{
		ID:            i.ID,
		TenantID:      i.TenantID,
		OrderID:       i.OrderID,
		Type:          string(i.Type),
		Status:        string(i.Status),
		SignedAt:      formatTimePtr(i.SignedAt),
		FinalVideoURL: i.FinalVideoURL,
		Version:       i.Version,
		CreatedAt:     formatTime(i.CreatedAt),
		UpdatedAt:     formatTime(i.UpdatedAt),
	}
}

func fromInspectionRow(row inspectionRow) entities.Inspection {
	return entities.Inspection{
		ID:            row.ID,
		TenantID:      row.TenantID,
		OrderID:       row.OrderID,
		Type:          entities.InspectionType(row.Type),
		Status:        entities.InspectionStatus(row.Status),
		SignedAt:      parseTimePtr(row.SignedAt),
		FinalVideoURL: row.FinalVideoURL,
		Version:       row.Version,
		CreatedAt:     parseTime(row.CreatedAt),
		UpdatedAt:     parseTime(row.UpdatedAt),
	}
}

func toInspectionItemRow(it entities.InspectionItem) inspectionItemRow {
	return inspectionItemRow{
		InspectionID: it.InspectionID,
		ItemKey:      it.ItemKey,
		Category:     it.Category,
		Label:        it.Label,
		IsRequired:   it.IsRequired,
		IsCritical:   it.IsCritical,
		Status:       string(it.Status),
		PhotoURL:     it.PhotoURL,
		Notes:        it.Notes,
		DamageType:   it.DamageType,
		Severity:     it.Severity,
		CompletedAt:  formatTimePtr(it.CompletedAt),
		UpdatedAt:    formatTime(it.UpdatedAt),
	}
}

func fromInspectionItemRow(row inspectionItemRow) entities.InspectionItem {
	return entities.InspectionItem{
		InspectionID: row.InspectionID,
		ItemKey:      row.ItemKey,
		Category:     row.Category,
		Label:        row.Label,
		IsRequired:   row.IsRequired,
		IsCritical:   row.IsCritical,
		Status:       entities.ItemStatus(row.Status),
		PhotoURL:     row.PhotoURL,
		Notes:        row.Notes,
		DamageType:   row.DamageType,
		Severity:     row.Severity,
		CompletedAt:  parseTimePtr(row.CompletedAt),
		UpdatedAt:    parseTime(row.UpdatedAt),
	}
}

func toDamageRow(d entities.InspectionDamage) damageRow {
	row := damageRow{
		ID:             d.ID,
		TenantID:       d.TenantID,
		InspectionID:   d.InspectionID,
		Zone:           d.Zone,
		CustomPosition: d.CustomPosition,
		DamageType:     d.DamageType,
		Severity:       d.Severity,
		Notes:          d.Notes,
		PhotoURL:       d.PhotoURL,
		CreatedAt:      formatTime(d.CreatedAt),
	}
	if d.Position != nil {
		x, y, z := floatToString(d.Position.X), floatToString(d.Position.Y), floatToString(d.Position.Z)
		row.PosX, row.PosY, row.PosZ = &x, &y, &z
	}
	if d.Normal != nil {
		x, y, z := floatToString(d.Normal.X), floatToString(d.Normal.Y), floatToString(d.Normal.Z)
		row.NormX, row.NormY, row.NormZ = &x, &y, &z
	}
	return row
}

func fromDamageRow(row damageRow) entities.InspectionDamage {
	d := entities.InspectionDamage{
		ID:             row.ID,
		TenantID:       row.TenantID,
		InspectionID:   row.InspectionID,
		Zone:           row.Zone,
		CustomPosition: row.CustomPosition,
		DamageType:     row.DamageType,
		Severity:       row.Severity,
		Notes:          row.Notes,
		PhotoURL:       row.PhotoURL,
		CreatedAt:      parseTime(row.CreatedAt),
	}
	if row.PosX != nil && row.PosY != nil && row.PosZ != nil {
		d.Position = &entities.Vec3{X: stringToFloat(*row.PosX), Y: stringToFloat(*row.PosY), Z: stringToFloat(*row.PosZ)}
	}
	if row.NormX != nil && row.NormY != nil && row.NormZ != nil {
		d.Normal = &entities.Vec3{X: stringToFloat(*row.NormX), Y: stringToFloat(*row.NormY), Z: stringToFloat(*row.NormZ)}
	}
	return d
}
