package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/samaladyasa/spice-and-soul-backend/internal/domain"
)

// OrderRepository defines persistence access for food orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	ListByEmail(ctx context.Context, email string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
}

type orderRepository struct {
	client *dynamodb.Client
	table  string
}

// NewOrderRepository returns a DynamoDB-backed implementation.
func NewOrderRepository(client *dynamodb.Client, table string) OrderRepository {
	return &orderRepository{client: client, table: table}
}

// fillOrderDefaults assigns the generated order id, initial status and
// timestamps before the first write.
func fillOrderDefaults(order *domain.Order) {
	now := time.Now().UTC()
	order.UserEmail = domain.NormalizeEmail(order.UserEmail)
	if order.OrderID == "" {
		order.OrderID = fmt.Sprintf("ORDER-%d", now.UnixMilli())
	}
	if order.Status == "" {
		order.Status = domain.OrderStatusPending
	}
	order.CreatedAt = now.Format(time.RFC3339)
	order.UpdatedAt = now.Format(time.RFC3339)
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	fillOrderDefaults(order)

	item, err := attributevalue.MarshalMap(order)
	if err != nil {
		return err
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	return err
}

func (r *orderRepository) ListByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		KeyConditionExpression: aws.String("userEmail = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: domain.NormalizeEmail(email)},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) ListAll(ctx context.Context) ([]domain.Order, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
