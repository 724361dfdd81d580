package repository

import (
	"context"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory DynamoAPI. It understands the condition and key
// expressions the repositories emit and nothing else.
type fakeDynamo struct {
	mu       sync.Mutex
	keys     map[string]string
	tables   map[string][]map[string]types.AttributeValue
	pageSize int
	err      error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{
		keys:   map[string]string{},
		tables: map[string][]map[string]types.AttributeValue{},
	}
}

func (f *fakeDynamo) keyOf(table string) string {
	if k, ok := f.keys[table]; ok {
		return k
	}
	return "id"
}

func (f *fakeDynamo) indexOf(table, key string) int {
	name := f.keyOf(table)
	for i, item := range f.tables[table] {
		if s, ok := item[name].(*types.AttributeValueMemberS); ok && s.Value == key {
			return i
		}
	}
	return -1
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	table := *in.TableName
	key := in.Item[f.keyOf(table)].(*types.AttributeValueMemberS).Value
	idx := f.indexOf(table, key)

	if in.ConditionExpression != nil {
		switch *in.ConditionExpression {
		case "attribute_not_exists(#pk)":
			if idx >= 0 {
				return nil, &types.ConditionalCheckFailedException{}
			}
		case "attribute_exists(#pk)":
			if idx < 0 {
				return nil, &types.ConditionalCheckFailedException{}
			}
		}
	}

	if idx >= 0 {
		f.tables[table][idx] = in.Item
	} else {
		f.tables[table] = append(f.tables[table], in.Item)
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	table := *in.TableName
	key := in.Key[f.keyOf(table)].(*types.AttributeValueMemberS).Value
	if idx := f.indexOf(table, key); idx >= 0 {
		return &dynamodb.GetItemOutput{Item: f.tables[table][idx]}, nil
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	attr := in.ExpressionAttributeNames["#attr"]
	value := in.ExpressionAttributeValues[":v"].(*types.AttributeValueMemberS).Value

	var matches []map[string]types.AttributeValue
	for _, item := range f.tables[*in.TableName] {
		if s, ok := item[attr].(*types.AttributeValueMemberS); ok && s.Value == value {
			matches = append(matches, item)
		}
	}

	start := 0
	if off, ok := in.ExclusiveStartKey["offset"].(*types.AttributeValueMemberN); ok {
		start, _ = strconv.Atoi(off.Value)
	}
	end := len(matches)
	out := &dynamodb.QueryOutput{}
	if f.pageSize > 0 && start+f.pageSize < end {
		end = start + f.pageSize
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"offset": &types.AttributeValueMemberN{Value: strconv.Itoa(end)},
		}
	}
	out.Items = matches[start:end]
	out.Count = int32(len(out.Items))
	return out, nil
}
