package repository

import (
	"context"

	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

const grantsBuyerIndex = "buyer_id-index"

type accessGrantItem struct {
	GrantKey  string `dynamodbav:"grant_key"`
	BuyerID   string `dynamodbav:"buyer_id"`
	CourseID  string `dynamodbav:"course_id"`
	IntentID  string `dynamodbav:"intent_id"`
	GrantedAt string `dynamodbav:"granted_at"`
}

// AccessGrantDynamoRepository persists grants in DynamoDB.
//
// Table requirements:
//   - PK: grant_key (string, "buyer#course")
//   - GSI: buyer_id-index (PK: buyer_id)
type AccessGrantDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IAccessGrantRepository = (*AccessGrantDynamoRepository)(nil)

func NewAccessGrantDynamoRepository(ddb DynamoDBAPI, tableName string) *AccessGrantDynamoRepository {
	return &AccessGrantDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AccessGrantDynamoRepository) GetGrant(ctx context.Context, buyerID, courseID string) (entities.AccessGrant, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"grant_key": &types.AttributeValueMemberS{Value: entities.GrantKey(buyerID, courseID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AccessGrant{}, errors.Wrap(err, "get access grant")
	}
	if len(out.Item) == 0 {
		return entities.AccessGrant{}, nil
	}

	var it accessGrantItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AccessGrant{}, errors.Wrap(err, "unmarshal access grant")
	}
	return fromAccessGrantItem(it), nil
}

func (r *AccessGrantDynamoRepository) InsertGrantIfAbsent(ctx context.Context, grant entities.AccessGrant) (bool, error) {
	av, err := attributevalue.MarshalMap(toAccessGrantItem(grant))
	if err != nil {
		return false, errors.Wrap(err, "marshal access grant")
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#grant_key)"),
		ExpressionAttributeNames: map[string]string{
			"#grant_key": "grant_key",
		},
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return false, nil
		}
		return false, errors.Wrap(err, "put access grant")
	}
	return true, nil
}

func (r *AccessGrantDynamoRepository) ListByBuyer(ctx context.Context, buyerID string) ([]entities.AccessGrant, error) {
	grants := make([]entities.AccessGrant, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(grantsBuyerIndex),
			KeyConditionExpression: aws.String("buyer_id = :bid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":bid": &types.AttributeValueMemberS{Value: buyerID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, errors.Wrap(err, "query access grants by buyer")
		}
		for _, raw := range out.Items {
			var it accessGrantItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, errors.Wrap(err, "unmarshal access grant")
			}
			grants = append(grants, fromAccessGrantItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return grants, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toAccessGrantItem(g entities.AccessGrant) accessGrantItem {
	return accessGrantItem{
		GrantKey:  entities.GrantKey(g.BuyerID, g.CourseID),
		BuyerID:   g.BuyerID,
		CourseID:  g.CourseID,
		IntentID:  g.IntentID,
		GrantedAt: formatTime(g.GrantedAt),
	}
}

func fromAccessGrantItem(it accessGrantItem) entities.AccessGrant {
	return entities.AccessGrant{
		BuyerID:   it.BuyerID,
		CourseID:  it.CourseID,
		IntentID:  it.IntentID,
		GrantedAt: parseTime(it.GrantedAt),
	}
}
