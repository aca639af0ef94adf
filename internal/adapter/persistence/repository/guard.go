package repository

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Unique values (request numbers, folios, order numbers, emails, category names) are claimed
// as items of one guard table; a conditional put on the guard is what enforces uniqueness.
const (
	guardRequestNumber = "request_number"
	guardFolio         = "folio"
	guardOrderNumber   = "order_number"
	guardEmail         = "email"
	guardCategory      = "category"
)

type guardItem struct {
	ID    string `dynamodbav:"id"`
	Owner string `dynamodbav:"owner"`
}

func guardKey(namespace, value string) string {
	return namespace + "#" + strings.ToLower(value)
}

func (t table) claim(namespace, value, owner string) (types.TransactWriteItem, error) {
	item, err := attributevalue.MarshalMap(guardItem{ID: guardKey(namespace, value), Owner: owner})
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(t.name),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}}, nil
}

func (t table) release(namespace, value string) types.TransactWriteItem {
	return types.TransactWriteItem{Delete: &types.Delete{
		TableName: aws.String(t.name),
		Key:       idKey(guardKey(namespace, value)),
	}}
}

func (t table) putItem(item interface{}) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(t.name),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}}, nil
}

func (t table) deleteItem(id string) types.TransactWriteItem {
	return types.TransactWriteItem{Delete: &types.Delete{
		TableName: aws.String(t.name),
		Key:       idKey(id),
	}}
}
