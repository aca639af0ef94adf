package database

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	log "github.com/sirupsen/logrus"

	"fieldops/internal/infrastructure/config"
)

// TableSpec describes one table: a string hash key "id" plus optional GSIs keyed by
// (hash, created_at).
type TableSpec struct {
	Name    string
	Indexes []IndexSpec
}

type IndexSpec struct {
	Name    string
	HashKey string
	SortKey string
}

// Schema lists the tables the repositories expect, with their configured names.
func Schema(t config.TableConfig) []TableSpec {
	byKind := IndexSpec{Name: "kind-created_at-index", HashKey: "kind", SortKey: "created_at"}
	return []TableSpec{
		{Name: or(t.Projects, "projects")},
		{Name: or(t.ServiceRequests, "service_requests"), Indexes: []IndexSpec{byKind}},
		{Name: or(t.Renditions, "renditions"), Indexes: []IndexSpec{byKind}},
		{Name: or(t.Notifications, "notifications"), Indexes: []IndexSpec{
			{Name: "recipient-created_at-index", HashKey: "recipient", SortKey: "created_at"},
		}},
		{Name: or(t.Users, "users"), Indexes: []IndexSpec{
			{Name: "role-index", HashKey: "role"},
		}},
		{Name: or(t.ExpenseCategories, "expense_categories")},
		{Name: or(t.Counters, "counters")},
		{Name: or(t.Identifiers, "identifiers")},
	}
}

// EnsureTables creates the missing tables in on-demand mode. Meant for DynamoDB Local and
// first deploys; existing tables are left untouched.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client, specs []TableSpec) error {
	for _, spec := range specs {
		_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.Name)})
		if err == nil {
			continue
		}
		var missing *types.ResourceNotFoundException
		if !errors.As(err, &missing) {
			return err
		}
		if _, err := ddb.CreateTable(ctx, createTableInput(spec)); err != nil {
			return err
		}
		log.WithField("table", spec.Name).Info("[database] table created")
	}
	return nil
}

func createTableInput(spec TableSpec) *dynamodb.CreateTableInput {
	attrs := map[string]bool{"id": true}
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(spec.Name),
		BillingMode: types.BillingModePayPerRequest,
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
	}
	for _, idx := range spec.Indexes {
		keys := []types.KeySchemaElement{{AttributeName: aws.String(idx.HashKey), KeyType: types.KeyTypeHash}}
		attrs[idx.HashKey] = true
		if idx.SortKey != "" {
			keys = append(keys, types.KeySchemaElement{AttributeName: aws.String(idx.SortKey), KeyType: types.KeyTypeRange})
			attrs[idx.SortKey] = true
		}
		in.GlobalSecondaryIndexes = append(in.GlobalSecondaryIndexes, types.GlobalSecondaryIndex{
			IndexName:  aws.String(idx.Name),
			KeySchema:  keys,
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}
	for name := range attrs {
		in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(name),
			AttributeType: types.ScalarAttributeTypeS,
		})
	}
	return in
}

func or(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
