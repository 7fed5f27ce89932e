package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/portfolio-api/internal/domain"
)

// PinRepo stores one-time login PINs.
// PK: email (hash key only). A PutItem is therefore an atomic per-email
// upsert: there is no delete-then-insert window in which two live PINs for
// the same address could coexist, even under concurrent requests.
type PinRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewPinRepo(client *dynamodb.Client, tableName string) *PinRepo {
	return &PinRepo{client: client, tableName: tableName}
}

// Put inserts a PIN record, unconditionally superseding any existing record
// for the same email.
func (r *PinRepo) Put(ctx context.Context, rec *domain.PinRecord) error {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshal pin record: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// GetActive returns the live PIN record for email, or nil if there is none.
// An expired record still present in the table (TTL reaping lags) is treated
// as absent.
func (r *PinRepo) GetActive(ctx context.Context, email string) (*domain.PinRecord, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("email", email),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}
	var rec domain.PinRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, err
	}
	if !rec.Active(time.Now()) {
		return nil, nil
	}
	return &rec, nil
}

// Delete removes the record for email only if it still carries pinID.
// Consuming a PIN must never delete a fresher PIN issued concurrently, so
// the delete is conditioned on the record identity; a failed condition or an
// already-absent record is a no-op, making Delete idempotent.
func (r *PinRepo) Delete(ctx context.Context, email, pinID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 strKey("email", email),
		ConditionExpression: aws.String("pin_id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: pinID},
		},
	})
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return nil
	}
	return err
}

// PurgeExpired deletes every record whose expiry has passed and returns the
// number removed. Housekeeping only: GetActive independently re-checks
// expiry, and the table's TTL attribute reaps stragglers server-side.
func (r *PinRepo) PurgeExpired(ctx context.Context) (int, error) {
	now := time.Now().Unix()
	count := 0
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("expires_at <= :now"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":now": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", now)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return count, err
		}
		var recs []domain.PinRecord
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &recs); err != nil {
			return count, err
		}
		for _, rec := range recs {
			if err := r.Delete(ctx, rec.Email, rec.PinID); err != nil {
				return count, err
			}
			count++
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return count, nil
}
