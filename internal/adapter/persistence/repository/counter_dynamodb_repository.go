package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"fieldops/internal/usecase/interfaces"
)

var errCounterValue = errors.New("counter update returned no usable seq")

type CounterDynamoRepository struct {
	t table
}

var _ interfaces.ICounterRepository = (*CounterDynamoRepository)(nil)

func NewCounterDynamoRepository(ddb *dynamodb.Client, tables TableNames) *CounterDynamoRepository {
	return &CounterDynamoRepository{
		t: table{ddb: ddb, name: tableName(tables.Counters, "COUNTERS_TABLE", "counters")},
	}
}

// Next atomically increments the counter stored under key. ADD creates the item on first use.
func (r *CounterDynamoRepository) Next(ctx context.Context, key string) (int64, error) {
	res, err := r.t.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.t.name),
		Key:                       idKey(key),
		UpdateExpression:          aws.String("ADD #seq :one"),
		ExpressionAttributeNames:  map[string]string{"#seq": "seq"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":one": &types.AttributeValueMemberN{Value: "1"}},
		ReturnValues:              types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	seq, err := counterValue(res.Attributes)
	if err != nil {
		return 0, fmt.Errorf("counter %s: %w", key, err)
	}
	return seq, nil
}

// counterValue reads the post-increment seq, which is always a positive number.
func counterValue(attrs map[string]types.AttributeValue) (int64, error) {
	n, ok := attrs["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errCounterValue
	}
	seq, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil || seq < 1 {
		return 0, fmt.Errorf("%w: %q", errCounterValue, n.Value)
	}
	return seq, nil
}
