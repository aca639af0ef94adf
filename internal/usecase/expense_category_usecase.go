package usecase

//go:generate mockgen -source=expense_category_usecase.go -destination=../adapter/http/handlers/mocks/expense_category_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"strings"
	"time"

	"fieldops/internal/domain/access"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type IExpenseCategoryUseCase interface {
	List(ctx context.Context, includeInactive bool) ([]entities.ExpenseCategory, error)
	Create(ctx context.Context, actor access.Subject, name, description string) (entities.ExpenseCategory, error)
	SeedDefaults(ctx context.Context) (int, error)
}

type ExpenseCategoryUseCase struct {
	categories interfaces.IExpenseCategoryRepository
	now        func() time.Time
}

var _ IExpenseCategoryUseCase = (*ExpenseCategoryUseCase)(nil)

func NewExpenseCategoryUseCase(categories interfaces.IExpenseCategoryRepository) *ExpenseCategoryUseCase {
	return &ExpenseCategoryUseCase{categories: categories, now: utcNow}
}

func (u *ExpenseCategoryUseCase) List(ctx context.Context, includeInactive bool) ([]entities.ExpenseCategory, error) {
	return u.categories.List(ctx, !includeInactive)
}

func (u *ExpenseCategoryUseCase) Create(ctx context.Context, actor access.Subject, name, description string) (entities.ExpenseCategory, error) {
	if err := access.RequireAdmin(actor, "only admins can manage expense categories"); err != nil {
		return entities.ExpenseCategory{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.ExpenseCategory{}, invalid("category name is required")
	}
	c, err := u.categories.Create(ctx, entities.ExpenseCategory{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(description),
		Active:      true,
		CreatedBy:   actor.ID,
		CreatedAt:   u.now(),
	})
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		return entities.ExpenseCategory{}, ErrDuplicateCategory
	}
	return c, err
}

// SeedDefaults inserts the default catalog when no category exists yet.
func (u *ExpenseCategoryUseCase) SeedDefaults(ctx context.Context) (int, error) {
	existing, err := u.categories.List(ctx, false)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	now := u.now()
	for i, c := range entities.DefaultExpenseCategories {
		c.ID = uuid.NewString()
		c.Active = true
		c.CreatedAt = now
		if _, err := u.categories.Create(ctx, c); err != nil && !errors.Is(err, interfaces.ErrDuplicateKey) {
			return i, err
		}
	}
	n := len(entities.DefaultExpenseCategories)
	log.Printf("[category][usecase] seeded default expense categories count=%d", n)
	return n, nil
}
