package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Index names shared by the entity tables.
const (
	kindCreatedIndex      = "kind-created_at-index"
	recipientCreatedIndex = "recipient-created_at-index"
	roleIndex             = "role-index"
)

// table wraps the calls every repository makes against its own table.
type table struct {
	ddb  *dynamodb.Client
	name string
}

func (t table) get(ctx context.Context, id string, out interface{}) (bool, error) {
	res, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.name),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	return true, attributevalue.UnmarshalMap(res.Item, out)
}

func (t table) putNew(ctx context.Context, item interface{}) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(t.name),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	return err
}

func (t table) delete(ctx context.Context, id string) error {
	_, err := t.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(t.name),
		Key:       idKey(id),
	})
	return err
}

// update runs an UpdateItem on an existing item and decodes the new image into out. Extra
// conditions are ANDed with the existence check. found is false when the item is missing;
// errConditionFailed means the item exists but cond did not hold.
func (t table) update(
	ctx context.Context,
	id string,
	expr string,
	cond string,
	names map[string]string,
	values map[string]interface{},
	out interface{},
) (bool, error) {
	condition := "attribute_exists(#id)"
	if cond != "" {
		condition += " AND " + cond
	}
	in := &dynamodb.UpdateItemInput{
		TableName:                           aws.String(t.name),
		Key:                                 idKey(id),
		UpdateExpression:                    aws.String(expr),
		ConditionExpression:                 aws.String(condition),
		ExpressionAttributeNames:            mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	}
	if len(values) > 0 {
		av, err := marshalValues(values)
		if err != nil {
			return false, err
		}
		in.ExpressionAttributeValues = av
	}
	res, err := t.ddb.UpdateItem(ctx, in)
	if err != nil {
		if old, ok := conditionFailed(err); ok {
			if len(old) == 0 {
				return false, nil
			}
			return true, errConditionFailed
		}
		return false, err
	}
	if len(res.Attributes) == 0 {
		return false, nil
	}
	return true, attributevalue.UnmarshalMap(res.Attributes, out)
}

func (t table) scanAll(ctx context.Context, in *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	in.TableName = aws.String(t.name)
	var items []map[string]types.AttributeValue
	p := dynamodb.NewScanPaginator(t.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

func (t table) queryAll(ctx context.Context, in *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	in.TableName = aws.String(t.name)
	var items []map[string]types.AttributeValue
	p := dynamodb.NewQueryPaginator(t.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

// latestIdentifier returns the idAttr of the newest item of kind from the kind/created_at
// index. Items sharing the newest created_at are ordered by their trailing sequence number.
func (t table) latestIdentifier(ctx context.Context, kind, idAttr string) (string, error) {
	in := &dynamodb.QueryInput{
		TableName:                 aws.String(t.name),
		IndexName:                 aws.String(kindCreatedIndex),
		KeyConditionExpression:    aws.String("#kind = :kind"),
		ProjectionExpression:      aws.String("#created, #id"),
		ExpressionAttributeNames:  map[string]string{"#kind": "kind", "#created": "created_at", "#id": idAttr},
		ExpressionAttributeValues: map[string]types.AttributeValue{":kind": str(kind)},
		ScanIndexForward:          aws.Bool(false),
		Limit:                     aws.Int32(1),
	}
	res, err := t.ddb.Query(ctx, in)
	if err != nil {
		return "", err
	}
	if len(res.Items) == 0 {
		return "", nil
	}

	in.KeyConditionExpression = aws.String("#kind = :kind AND #created = :created")
	in.ExpressionAttributeValues[":created"] = res.Items[0]["created_at"]
	in.Limit = nil
	tied, err := t.queryAll(ctx, in)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(tied)+1)
	ids = append(ids, stringAttr(res.Items[0], idAttr))
	for _, item := range tied {
		ids = append(ids, stringAttr(item, idAttr))
	}
	return highestSequence(ids), nil
}

func marshalValues(values map[string]interface{}) (map[string]types.AttributeValue, error) {
	out := make(map[string]types.AttributeValue, len(values))
	for k, v := range values {
		if av, ok := v.(types.AttributeValue); ok {
			out[k] = av
			continue
		}
		av, err := attributevalue.Marshal(v)
		if err != nil {
			return nil, err
		}
		out[k] = av
	}
	return out, nil
}

func unmarshalAll[T any](items []map[string]types.AttributeValue) ([]T, error) {
	out := make([]T, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &out); err != nil {
		return nil, err
	}
	return out, nil
}
