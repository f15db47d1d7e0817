package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"fitmarket/internal/domain/entities"
	"fitmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	orderCounterItemID     = "_order_number_counter"
)

type orderItem struct {
	ID          string `dynamodbav:"id"`
	OrderNumber string `dynamodbav:"order_number"`

	UserID    string `dynamodbav:"user_id"`
	UserName  string `dynamodbav:"user_name"`
	UserEmail string `dynamodbav:"user_email"`
	UserPhone string `dynamodbav:"user_phone,omitempty"`

	PartnerID   string `dynamodbav:"partner_id"`
	PartnerName string `dynamodbav:"partner_name"`

	ServiceID   string `dynamodbav:"service_id"`
	ServiceName string `dynamodbav:"service_name"`
	ServiceType string `dynamodbav:"service_type"`
	Price       string `dynamodbav:"price"`

	Status        string `dynamodbav:"status"`
	PaymentStatus string `dynamodbav:"payment_status"`

	ScheduledDate string `dynamodbav:"scheduled_date,omitempty"`
	ScheduledTime string `dynamodbav:"scheduled_time,omitempty"`
	Notes         string `dynamodbav:"notes,omitempty"`

	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
	ConfirmedAt string `dynamodbav:"confirmed_at,omitempty"`
	CompletedAt string `dynamodbav:"completed_at,omitempty"`
}

// OrderDynamoRepository persists ServiceOrder entities in DynamoDB,
// the durable backend of the repository port.
//
// Table requirements:
//   - PK: id (string)
//   - a reserved counter item (id = _order_number_counter) backs the
//     monotonic OrderNumber sequence via an atomic ADD.
//
// Listings Scan the table and filter/sort in memory; order volume per
// partner stays far below the point where a GSI would pay off.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	if o.OrderNumber == "" {
		seq, err := r.nextSequence(ctx)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		o.OrderNumber = fmt.Sprintf("PED-%d-%04d", time.Now().Year(), seq)
	}

	it := toOrderItem(o)
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
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
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

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.ServiceOrder, error) {
	var orders []entities.ServiceOrder

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			if it.ID == "" || it.ID == orderCounterItemID {
				continue
			}
			o := fromOrderItem(it)
			if filter.Matches(o) {
				orders = append(orders, o)
			}
		}
	}

	// Newest-first, matching the memory store's prepend behavior.
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

// UpdateIf guards the put with a condition on the stored status, so a
// transition that lost the race fails instead of overwriting the winner.
func (r *OrderDynamoRepository) UpdateIf(ctx context.Context, o entities.ServiceOrder, from entities.OrderStatus) (entities.ServiceOrder, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// The condition also fails when the item is gone;
			// re-read to keep the not-found convention.
			current, getErr := r.GetByID(ctx, o.ID)
			if getErr != nil {
				return entities.ServiceOrder{}, getErr
			}
			if current.ID == "" {
				return entities.ServiceOrder{}, nil
			}
			return entities.ServiceOrder{}, interfaces.ErrStatusConflict
		}
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) nextSequence(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderCounterItemID},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	var counter struct {
		Seq int64 `dynamodbav:"seq"`
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, &counter); err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

func toOrderItem(o entities.ServiceOrder) orderItem {
	it := orderItem{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		UserID:        o.UserID,
		UserName:      o.UserName,
		UserEmail:     o.UserEmail,
		UserPhone:     o.UserPhone,
		PartnerID:     o.PartnerID,
		PartnerName:   o.PartnerName,
		ServiceID:     o.ServiceID,
		ServiceName:   o.ServiceName,
		ServiceType:   string(o.ServiceType),
		Price:         floatToString(o.Price),
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		ScheduledDate: o.ScheduledDate,
		ScheduledTime: o.ScheduledTime,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.ConfirmedAt != nil {
		it.ConfirmedAt = o.ConfirmedAt.UTC().Format(time.RFC3339Nano)
	}
	if o.CompletedAt != nil {
		it.CompletedAt = o.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromOrderItem(it orderItem) entities.ServiceOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	price, _ := parseFloat(it.Price)

	o := entities.ServiceOrder{
		ID:            it.ID,
		OrderNumber:   it.OrderNumber,
		UserID:        it.UserID,
		UserName:      it.UserName,
		UserEmail:     it.UserEmail,
		UserPhone:     it.UserPhone,
		PartnerID:     it.PartnerID,
		PartnerName:   it.PartnerName,
		ServiceID:     it.ServiceID,
		ServiceName:   it.ServiceName,
		ServiceType:   entities.ServiceType(it.ServiceType),
		Price:         price,
		Status:        entities.OrderStatus(it.Status),
		PaymentStatus: entities.PaymentStatus(it.PaymentStatus),
		ScheduledDate: it.ScheduledDate,
		ScheduledTime: it.ScheduledTime,
		Notes:         it.Notes,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
	if it.ConfirmedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ConfirmedAt); err == nil {
			o.ConfirmedAt = &t
		}
	}
	if it.CompletedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.CompletedAt); err == nil {
			o.CompletedAt = &t
		}
	}
	return o
}
