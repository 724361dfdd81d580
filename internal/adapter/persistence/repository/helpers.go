package repository

import (
	"context"
	"errors"
	"time"

	"claims_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rotisserie/eris"
)

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// table wraps the item-level operations shared by every repository. Items are
// keyed by a string attribute named "id" unless keyName says otherwise.
type table struct {
	ddb     DynamoAPI
	name    string
	keyName string
}

func newTable(ddb DynamoAPI, name string) table {
	return table{ddb: ddb, name: name, keyName: "id"}
}

// putNew writes item only if its key is not taken yet.
func (t table) putNew(ctx context.Context, item interface{}) error {
	return t.put(ctx, item, "attribute_not_exists(#pk)")
}

// putExisting replaces item only if its key already exists. It reports false
// when nothing was replaced.
func (t table) putExisting(ctx context.Context, item interface{}) (bool, error) {
	err := t.put(ctx, item, "attribute_exists(#pk)")
	if errors.Is(err, errConditionFailed) {
		return false, nil
	}
	return err == nil, err
}

// putAny writes item unconditionally.
func (t table) putAny(ctx context.Context, item interface{}) error {
	return t.put(ctx, item, "")
}

var errConditionFailed = errors.New("condition failed")

func (t table) put(ctx context.Context, item interface{}, condition string) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return eris.Wrapf(err, "%s: marshal item", t.name)
	}

	in := &dynamodb.PutItemInput{
		TableName: aws.String(t.name),
		Item:      av,
	}
	if condition != "" {
		in.ConditionExpression = aws.String(condition)
		in.ExpressionAttributeNames = map[string]string{"#pk": t.keyName}
	}

	if _, err := t.ddb.PutItem(ctx, in); err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if condition == "attribute_not_exists(#pk)" {
				return interfaces.ErrAlreadyExists
			}
			return errConditionFailed
		}
		return eris.Wrapf(err, "%s: put item", t.name)
	}
	return nil
}

// get loads the item with the given key into out. It reports false when the
// item does not exist.
func (t table) get(ctx context.Context, key string, out interface{}) (bool, error) {
	res, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(t.name),
		Key: map[string]types.AttributeValue{
			t.keyName: &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, eris.Wrapf(err, "%s: get item %s", t.name, key)
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, eris.Wrapf(err, "%s: unmarshal item %s", t.name, key)
	}
	return true, nil
}

// queryIndex returns every item of a GSI whose partition attribute equals
// value, following pagination. out must be a pointer to a slice.
func (t table) queryIndex(ctx context.Context, index, attribute, value string, out interface{}) error {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		res, err := t.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(t.name),
			IndexName:              aws.String(index),
			KeyConditionExpression: aws.String("#attr = :v"),
			ExpressionAttributeNames: map[string]string{
				"#attr": attribute,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":v": &types.AttributeValueMemberS{Value: value},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return eris.Wrapf(err, "%s: query %s", t.name, index)
		}
		items = append(items, res.Items...)
		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		startKey = res.LastEvaluatedKey
	}

	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return eris.Wrapf(err, "%s: unmarshal %s results", t.name, index)
	}
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}
