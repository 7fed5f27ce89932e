package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/portfolio-api/internal/domain"
)

// SettingRepo provides typed DynamoDB operations for the site_settings table.
// PK: setting_key, so Put is an upsert by key.
type SettingRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewSettingRepo(client *dynamodb.Client, tableName string) *SettingRepo {
	return &SettingRepo{client: client, tableName: tableName}
}

func (r *SettingRepo) Put(ctx context.Context, s *domain.Setting) error {
	s.UpdatedAt = time.Now().UTC()
	item, err := attributevalue.MarshalMap(s)
	if err != nil {
		return fmt.Errorf("marshal setting: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *SettingRepo) Get(ctx context.Context, key string) (*domain.Setting, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("setting_key", key),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("setting not found: %w", domain.ErrNotFound)
	}
	var s domain.Setting
	if err := attributevalue.UnmarshalMap(out.Item, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingRepo) Scan(ctx context.Context) ([]domain.Setting, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	var settings []domain.Setting
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// HardDelete permanently removes a setting (no soft delete for settings).
func (r *SettingRepo) HardDelete(ctx context.Context, key string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("setting_key", key),
	})
	return err
}
