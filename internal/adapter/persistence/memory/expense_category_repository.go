package memory

import (
	"context"
	"slices"
	"strings"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
)

type ExpenseCategoryRepository struct {
	s *Store
}

var _ interfaces.IExpenseCategoryRepository = (*ExpenseCategoryRepository)(nil)

func (r *ExpenseCategoryRepository) Create(ctx context.Context, c entities.ExpenseCategory) (entities.ExpenseCategory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.categories {
		if strings.EqualFold(existing.Name, c.Name) {
			return entities.ExpenseCategory{}, interfaces.ErrDuplicateKey
		}
	}
	r.s.categories[c.ID] = c
	return c, nil
}

// List returns categories sorted by name.
func (r *ExpenseCategoryRepository) List(ctx context.Context, activeOnly bool) ([]entities.ExpenseCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.ExpenseCategory, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		if activeOnly && !c.Active {
			continue
		}
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b entities.ExpenseCategory) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}
