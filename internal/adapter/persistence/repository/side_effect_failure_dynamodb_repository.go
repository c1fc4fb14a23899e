package repository

import (
	"context"
	"sort"

	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

type sideEffectFailureItem struct {
	IntentID  string `dynamodbav:"intent_id"`
	BuyerID   string `dynamodbav:"buyer_id"`
	CourseID  string `dynamodbav:"course_id"`
	Stage     string `dynamodbav:"stage"`
	Error     string `dynamodbav:"error"`
	Attempts  int    `dynamodbav:"attempts"`
	FailedAt  string `dynamodbav:"failed_at"`
	InvoiceID string `dynamodbav:"invoice_id,omitempty"`
}

// SideEffectFailureDynamoRepository keeps the manual-retry queue.
//
// Table requirements:
//   - PK: intent_id (string)
//
// The queue is expected to stay small, List is a full scan.
type SideEffectFailureDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ISideEffectFailureRepository = (*SideEffectFailureDynamoRepository)(nil)

func NewSideEffectFailureDynamoRepository(ddb DynamoDBAPI, tableName string) *SideEffectFailureDynamoRepository {
	return &SideEffectFailureDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SideEffectFailureDynamoRepository) Record(ctx context.Context, f entities.SideEffectFailure) error {
	av, err := attributevalue.MarshalMap(toSideEffectFailureItem(f))
	if err != nil {
		return errors.Wrap(err, "marshal side effect failure")
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return errors.Wrap(err, "put side effect failure")
}

func (r *SideEffectFailureDynamoRepository) List(ctx context.Context) ([]entities.SideEffectFailure, error) {
	failures := make([]entities.SideEffectFailure, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, errors.Wrap(err, "scan side effect failures")
		}
		for _, raw := range out.Items {
			var it sideEffectFailureItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, errors.Wrap(err, "unmarshal side effect failure")
			}
			failures = append(failures, fromSideEffectFailureItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	sort.Slice(failures, func(i, j int) bool { return failures[i].FailedAt.Before(failures[j].FailedAt) })
	return failures, nil
}

func (r *SideEffectFailureDynamoRepository) Get(ctx context.Context, intentID string) (entities.SideEffectFailure, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"intent_id": &types.AttributeValueMemberS{Value: intentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SideEffectFailure{}, errors.Wrap(err, "get side effect failure")
	}
	if len(out.Item) == 0 {
		return entities.SideEffectFailure{}, nil
	}
	var it sideEffectFailureItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SideEffectFailure{}, errors.Wrap(err, "unmarshal side effect failure")
	}
	return fromSideEffectFailureItem(it), nil
}

func (r *SideEffectFailureDynamoRepository) Resolve(ctx context.Context, intentID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"intent_id": &types.AttributeValueMemberS{Value: intentID},
		},
	})
	return errors.Wrap(err, "delete side effect failure")
}

func toSideEffectFailureItem(f entities.SideEffectFailure) sideEffectFailureItem {
	return sideEffectFailureItem{
		IntentID:  f.IntentID,
		BuyerID:   f.BuyerID,
		CourseID:  f.CourseID,
		Stage:     string(f.Stage),
		Error:     f.Error,
		Attempts:  f.Attempts,
		FailedAt:  formatTime(f.FailedAt),
		InvoiceID: f.InvoiceID,
	}
}

func fromSideEffectFailureItem(it sideEffectFailureItem) entities.SideEffectFailure {
	return entities.SideEffectFailure{
		IntentID:  it.IntentID,
		BuyerID:   it.BuyerID,
		CourseID:  it.CourseID,
		Stage:     entities.SideEffectStage(it.Stage),
		Error:     it.Error,
		Attempts:  it.Attempts,
		FailedAt:  parseTime(it.FailedAt),
		InvoiceID: it.InvoiceID,
	}
}
