package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/samaladyasa/spice-and-soul-backend/internal/domain"
)

// CodeRepository stores password-reset verification codes keyed by email.
// Save overwrites any existing record for the same email.
type CodeRepository interface {
	Save(ctx context.Context, code *domain.VerificationCode) error
	Get(ctx context.Context, email string) (*domain.VerificationCode, error)
	Delete(ctx context.Context, email string) error
	List(ctx context.Context) ([]domain.VerificationCode, error)
}

type codeRepository struct {
	client *dynamodb.Client
	table  string
}

// NewCodeRepository returns a DynamoDB-backed implementation.
func NewCodeRepository(client *dynamodb.Client, table string) CodeRepository {
	return &codeRepository{client: client, table: table}
}

func (r *codeRepository) Save(ctx context.Context, code *domain.VerificationCode) error {
	code.Email = domain.NormalizeEmail(code.Email)
	item, err := attributevalue.MarshalMap(code)
	if err != nil {
		return err
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	return err
}

func (r *codeRepository) Get(ctx context.Context, email string) (*domain.VerificationCode, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: domain.NormalizeEmail(email)},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, ErrNotFound
	}

	var code domain.VerificationCode
	if err := attributevalue.UnmarshalMap(out.Item, &code); err != nil {
		return nil, err
	}
	return &code, nil
}

func (r *codeRepository) Delete(ctx context.Context, email string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: domain.NormalizeEmail(email)},
		},
	})
	return err
}

func (r *codeRepository) List(ctx context.Context) ([]domain.VerificationCode, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	if err != nil {
		return nil, err
	}

	codes := make([]domain.VerificationCode, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &codes); err != nil {
		return nil, err
	}
	return codes, nil
}
