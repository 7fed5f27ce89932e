package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/portfolio-api/internal/domain"
)

// ContactRepo provides typed DynamoDB operations for the contact_messages table.
type ContactRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewContactRepo(client *dynamodb.Client, tableName string) *ContactRepo {
	return &ContactRepo{client: client, tableName: tableName}
}

func (r *ContactRepo) Put(ctx context.Context, m *domain.ContactMessage) error {
	item, err := attributevalue.MarshalMap(m)
	if err != nil {
		return fmt.Errorf("marshal contact message: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *ContactRepo) Get(ctx context.Context, messageID string) (*domain.ContactMessage, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("message_id", messageID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("contact message not found: %w", domain.ErrNotFound)
	}
	var m domain.ContactMessage
	if err := attributevalue.UnmarshalMap(out.Item, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Scan returns all messages; the admin service sorts newest-first.
func (r *ContactRepo) Scan(ctx context.Context) ([]domain.ContactMessage, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	var msgs []domain.ContactMessage
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// MarkRead flags the message as handled.
func (r *ContactRepo) MarkRead(ctx context.Context, messageID string) error {
	ue, err := buildUpdateExpr(map[string]interface{}{fieldRead: true})
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("message_id", messageID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}

// HardDelete permanently removes a contact message.
func (r *ContactRepo) HardDelete(ctx context.Context, messageID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("message_id", messageID),
	})
	return err
}
