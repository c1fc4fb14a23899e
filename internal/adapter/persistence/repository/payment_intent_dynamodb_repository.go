package repository

import (
	"context"
	"sort"
	"time"

	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

const intentsStatusIndex = "status-index"

type paymentIntentItem struct {
	ID                 string `dynamodbav:"id"`
	BuyerID            string `dynamodbav:"buyer_id"`
	CourseID           string `dynamodbav:"course_id"`
	Amount             int64  `dynamodbav:"amount"`
	Currency           string `dynamodbav:"currency"`
	SettlementAmount   int64  `dynamodbav:"settlement_amount"`
	SettlementCurrency string `dynamodbav:"settlement_currency"`
	Gateway            string `dynamodbav:"gateway"`
	Status             string `dynamodbav:"status"`
	ExternalRef        string `dynamodbav:"external_ref,omitempty"`
	CheckoutSessionID  string `dynamodbav:"checkout_session_id,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// PaymentIntentDynamoRepository is the payment ledger on DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status, SK: created_at)
//
// Status changes are single UpdateItem calls conditioned on the current status, so two
// concurrent notifications can never both move the same intent.
type PaymentIntentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPaymentIntentRepository = (*PaymentIntentDynamoRepository)(nil)

func NewPaymentIntentDynamoRepository(ddb DynamoDBAPI, tableName string) *PaymentIntentDynamoRepository {
	return &PaymentIntentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentIntentDynamoRepository) Insert(ctx context.Context, intent entities.PaymentIntent) error {
	av, err := attributevalue.MarshalMap(toPaymentIntentItem(intent))
	if err != nil {
		return errors.Wrap(err, "marshal payment intent")
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
			return interfaces.ErrIntentAlreadyExists
		}
		return errors.Wrap(err, "put payment intent")
	}
	return nil
}

func (r *PaymentIntentDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentIntent, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentIntent{}, errors.Wrap(err, "get payment intent")
	}
	if len(out.Item) == 0 {
		return entities.PaymentIntent{}, nil
	}
	return unmarshalPaymentIntent(out.Item)
}

func (r *PaymentIntentDynamoRepository) CompareAndTransition(ctx context.Context, id string, from, to entities.PaymentStatus, externalRef string) (entities.PaymentIntent, error) {
	expr := "SET #status = :to, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":from":       &types.AttributeValueMemberS{Value: string(from)},
		":to":         &types.AttributeValueMemberS{Value: string(to)},
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
	}
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if externalRef != "" {
		expr += ", #external_ref = :external_ref"
		values[":external_ref"] = &types.AttributeValueMemberS{Value: externalRef}
		names["#external_ref"] = "external_ref"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:                 aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:                    aws.String(expr),
		ExpressionAttributeValues:           values,
		ExpressionAttributeNames:            names,
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		cfe, ok := conditionFailed(err)
		if !ok {
			return entities.PaymentIntent{}, errors.Wrap(err, "transition payment intent")
		}
		if len(cfe.Item) == 0 {
			return entities.PaymentIntent{}, interfaces.ErrIntentNotFound
		}
		current, uerr := unmarshalPaymentIntent(cfe.Item)
		if uerr != nil {
			return entities.PaymentIntent{}, uerr
		}
		if current.Status.Terminal() {
			return current, interfaces.ErrIntentAlreadyTerminal
		}
		return current, interfaces.ErrIntentStatusConflict
	}
	return unmarshalPaymentIntent(out.Attributes)
}

func (r *PaymentIntentDynamoRepository) ListByStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.PaymentIntent, error) {
	items := make([]entities.PaymentIntent, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(intentsStatusIndex),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, errors.Wrap(err, "query payment intents by status")
		}
		for _, raw := range out.Items {
			intent, err := unmarshalPaymentIntent(raw)
			if err != nil {
				return nil, err
			}
			items = append(items, intent)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func unmarshalPaymentIntent(av map[string]types.AttributeValue) (entities.PaymentIntent, error) {
	var it paymentIntentItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.PaymentIntent{}, errors.Wrap(err, "unmarshal payment intent")
	}
	return fromPaymentIntentItem(it), nil
}

func toPaymentIntentItem(p entities.PaymentIntent) paymentIntentItem {
	return paymentIntentItem{
		ID:                 p.ID,
		BuyerID:            p.BuyerID,
		CourseID:           p.CourseID,
		Amount:             p.Amount,
		Currency:           p.Currency,
		SettlementAmount:   p.SettlementAmount,
		SettlementCurrency: p.SettlementCurrency,
		Gateway:            string(p.Gateway),
		Status:             string(p.Status),
		ExternalRef:        p.ExternalRef,
		CheckoutSessionID:  p.CheckoutSessionID,
		CreatedAt:          formatTime(p.CreatedAt),
		UpdatedAt:          formatTime(p.UpdatedAt),
	}
}

func fromPaymentIntentItem(it paymentIntentItem) entities.PaymentIntent {
	return entities.PaymentIntent{
		ID:                 it.ID,
		BuyerID:            it.BuyerID,
		CourseID:           it.CourseID,
		Amount:             it.Amount,
		Currency:           it.Currency,
		SettlementAmount:   it.SettlementAmount,
		SettlementCurrency: it.SettlementCurrency,
		Gateway:            entities.Gateway(it.Gateway),
		Status:             entities.PaymentStatus(it.Status),
		ExternalRef:        it.ExternalRef,
		CheckoutSessionID:  it.CheckoutSessionID,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
