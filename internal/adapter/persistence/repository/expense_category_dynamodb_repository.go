package repository

import (
	"context"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
)

type ExpenseCategoryDynamoRepository struct {
	ddb    *dynamodb.Client
	t      table
	guards table
}

var _ interfaces.IExpenseCategoryRepository = (*ExpenseCategoryDynamoRepository)(nil)

type expenseCategoryItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description"`
	Active      bool   `dynamodbav:"active"`
	CreatedBy   string `dynamodbav:"created_by"`
	CreatedAt   string `dynamodbav:"created_at"`
}

func NewExpenseCategoryDynamoRepository(ddb *dynamodb.Client, tables TableNames) *ExpenseCategoryDynamoRepository {
	return &ExpenseCategoryDynamoRepository{
		ddb:    ddb,
		t:      table{ddb: ddb, name: tableName(tables.ExpenseCategories, "EXPENSE_CATEGORIES_TABLE", "expense_categories")},
		guards: table{ddb: ddb, name: tableName(tables.Identifiers, "IDENTIFIERS_TABLE", "identifiers")},
	}
}

// Create stores the category and claims its name, case-insensitively.
func (r *ExpenseCategoryDynamoRepository) Create(ctx context.Context, c entities.ExpenseCategory) (entities.ExpenseCategory, error) {
	put, err := r.t.putItem(expenseCategoryItem{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Active:      c.Active,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   formatTime(c.CreatedAt),
	})
	if err != nil {
		return entities.ExpenseCategory{}, err
	}
	guard, err := r.guards.claim(guardCategory, c.Name, c.ID)
	if err != nil {
		return entities.ExpenseCategory{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{put, guard},
	})
	if err != nil {
		if _, ok := cancelledAt(err); ok {
			return entities.ExpenseCategory{}, interfaces.ErrDuplicateKey
		}
		return entities.ExpenseCategory{}, err
	}
	return c, nil
}

// List returns categories sorted by name.
func (r *ExpenseCategoryDynamoRepository) List(ctx context.Context, activeOnly bool) ([]entities.ExpenseCategory, error) {
	f := newFilter()
	if activeOnly {
		f.parts = append(f.parts, "#active = :active")
		f.names["#active"] = "active"
		f.values[":active"] = true
	}
	in, err := f.scan()
	if err != nil {
		return nil, err
	}
	raw, err := r.t.scanAll(ctx, in)
	if err != nil {
		return nil, err
	}
	items, err := unmarshalAll[expenseCategoryItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ExpenseCategory, 0, len(items))
	for _, it := range items {
		out = append(out, entities.ExpenseCategory{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Active:      it.Active,
			CreatedBy:   it.CreatedBy,
			CreatedAt:   parseTime(it.CreatedAt),
		})
	}
	slices.SortFunc(out, func(a, b entities.ExpenseCategory) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}
