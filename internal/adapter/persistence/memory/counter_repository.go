package memory

import (
	"context"

	"fieldops/internal/usecase/interfaces"
)

type CounterRepository struct {
	s *Store
}

var _ interfaces.ICounterRepository = (*CounterRepository)(nil)

func (r *CounterRepository) Next(ctx context.Context, key string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.counters[key]++
	return r.s.counters[key], nil
}
