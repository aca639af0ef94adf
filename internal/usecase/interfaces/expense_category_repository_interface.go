package interfaces

//go:generate mockgen -source=expense_category_repository_interface.go -destination=mocks/expense_category_repository_interface_mock.go -package=mock_interfaces

import (
	"context"

	"fieldops/internal/domain/entities"
)

type IExpenseCategoryRepository interface {
	Create(ctx context.Context, c entities.ExpenseCategory) (entities.ExpenseCategory, error)
	List(ctx context.Context, activeOnly bool) ([]entities.ExpenseCategory, error)
}
