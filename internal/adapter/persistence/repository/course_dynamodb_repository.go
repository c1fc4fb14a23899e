package repository

import (
	"context"
	"strconv"
	"time"

	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

type courseItem struct {
	ID        string `dynamodbav:"id"`
	Title     string `dynamodbav:"title"`
	Price     int64  `dynamodbav:"price"`
	Currency  string `dynamodbav:"currency"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CourseDynamoRepository persists the course catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type CourseDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ICourseRepository = (*CourseDynamoRepository)(nil)

func NewCourseDynamoRepository(ddb DynamoDBAPI, tableName string) *CourseDynamoRepository {
	return &CourseDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CourseDynamoRepository) Create(ctx context.Context, c entities.Course) (entities.Course, error) {
	av, err := attributevalue.MarshalMap(toCourseItem(c))
	if err != nil {
		return entities.Course{}, errors.Wrap(err, "marshal course")
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
		if _, ok := conditionFailed(err); ok {
			return entities.Course{}, interfaces.ErrCourseAlreadyExists
		}
		return entities.Course{}, errors.Wrap(err, "put course")
	}
	return c, nil
}

func (r *CourseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Course, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Course{}, errors.Wrap(err, "get course")
	}
	if len(out.Item) == 0 {
		return entities.Course{}, nil
	}

	var it courseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Course{}, errors.Wrap(err, "unmarshal course")
	}
	return fromCourseItem(it), nil
}

func (r *CourseDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.CourseStatus) (entities.Course, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *CourseDynamoRepository) UpdatePriceByID(ctx context.Context, id string, price int64, currency string) (entities.Course, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #price = :price, #currency = :currency, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":price":      &types.AttributeValueMemberN{Value: strconv.FormatInt(price, 10)},
			":currency":   &types.AttributeValueMemberS{Value: currency},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#price":      "price",
			"#currency":   "currency",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *CourseDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Course, error) {
	updateExpr, values, names := build(formatTime(time.Now()))

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return entities.Course{}, nil
		}
		return entities.Course{}, errors.Wrap(err, "update course")
	}
	if len(out.Attributes) == 0 {
		return entities.Course{}, nil
	}
	var it courseItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Course{}, errors.Wrap(err, "unmarshal course")
	}
	return fromCourseItem(it), nil
}

func toCourseItem(c entities.Course) courseItem {
	return courseItem{
		ID:        c.ID,
		Title:     c.Title,
		Price:     c.Price,
		Currency:  c.Currency,
		Status:    string(c.Status),
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func fromCourseItem(it courseItem) entities.Course {
	return entities.Course{
		ID:        it.ID,
		Title:     it.Title,
		Price:     it.Price,
		Currency:  it.Currency,
		Status:    entities.CourseStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
