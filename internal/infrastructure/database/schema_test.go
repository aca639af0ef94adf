package database

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"

	"fieldops/internal/infrastructure/config"
)

func TestSchema_TableNames(t *testing.T) {
	specs := Schema(config.TableConfig{Projects: "prod-projects"})
	if len(specs) != 8 {
		t.Fatalf("expected 8 tables, got %d", len(specs))
	}
	if specs[0].Name != "prod-projects" {
		t.Fatalf("expected override, got %s", specs[0].Name)
	}
	if specs[1].Name != "service_requests" {
		t.Fatalf("expected default name, got %s", specs[1].Name)
	}
}

func TestCreateTableInput_Indexes(t *testing.T) {
	in := createTableInput(TableSpec{
		Name:    "notifications",
		Indexes: []IndexSpec{{Name: "recipient-created_at-index", HashKey: "recipient", SortKey: "created_at"}},
	})
	if aws.ToString(in.TableName) != "notifications" {
		t.Fatalf("unexpected table %s", aws.ToString(in.TableName))
	}
	if len(in.GlobalSecondaryIndexes) != 1 || len(in.GlobalSecondaryIndexes[0].KeySchema) != 2 {
		t.Fatalf("expected one index with hash and range keys, got %+v", in.GlobalSecondaryIndexes)
	}
	if len(in.AttributeDefinitions) != 3 {
		t.Fatalf("expected id, recipient and created_at definitions, got %d", len(in.AttributeDefinitions))
	}
}
