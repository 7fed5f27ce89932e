package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/portfolio-api/internal/domain"
)

// ProjectRepo provides typed DynamoDB operations for the projects table.
type ProjectRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewProjectRepo(client *dynamodb.Client, tableName string) *ProjectRepo {
	return &ProjectRepo{client: client, tableName: tableName}
}

func (r *ProjectRepo) Put(ctx context.Context, p *domain.Project) error {
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *ProjectRepo) Get(ctx context.Context, projectID string) (*domain.Project, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("project_id", projectID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("project not found: %w", domain.ErrNotFound)
	}
	var p domain.Project
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetBySlug resolves the public URL slug via the `slug-index` GSI.
func (r *ProjectRepo) GetBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("slug-index"),
		KeyConditionExpression: aws.String("slug = :s"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":s": &types.AttributeValueMemberS{Value: slug},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, fmt.Errorf("project not found: %w", domain.ErrNotFound)
	}
	var p domain.Project
	if err := attributevalue.UnmarshalMap(out.Items[0], &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Scan returns all projects, deleted ones included; callers filter.
// The portfolio has tens of projects at most, so a table scan is fine.
func (r *ProjectRepo) Scan(ctx context.Context) ([]domain.Project, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	var projects []domain.Project
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepo) Update(ctx context.Context, projectID string, updates map[string]interface{}) error {
	updates[fieldUpdatedAt] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("project_id", projectID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}

// SoftDelete disables a project and stamps deleted_at; the row stays for audit.
func (r *ProjectRepo) SoftDelete(ctx context.Context, projectID string) error {
	return r.Update(ctx, projectID, map[string]interface{}{
		fieldEnable:    false,
		fieldDeletedAt: time.Now().UTC().Format(time.RFC3339),
	})
}
