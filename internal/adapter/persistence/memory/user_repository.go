package memory

import (
	"context"
	"strings"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
)

type UserRepository struct {
	s *Store
}

var _ interfaces.IUserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u.Email = strings.ToLower(u.Email)
	if _, ok := r.s.users[u.ID]; ok {
		return entities.User{}, interfaces.ErrDuplicateKey
	}
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return entities.User{}, interfaces.ErrDuplicateKey
		}
	}
	r.s.users[u.ID] = u
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.users[id], nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	email = strings.ToLower(email)
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return entities.User{}, nil
}

// List returns every user with role, or all users when role is empty.
func (r *UserRepository) List(ctx context.Context, role entities.Role) ([]entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		if role == "" || u.Role == role {
			out = append(out, u)
		}
	}
	newestFirst(out, func(u entities.User) time.Time { return u.CreatedAt }, func(u entities.User) string { return u.ID })
	return out, nil
}

func (r *UserRepository) Update(ctx context.Context, u entities.User) (entities.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return entities.User{}, nil
	}
	r.s.users[u.ID] = u
	return u, nil
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil
	}
	u.LastLogin = &at
	r.s.users[id] = u
	return nil
}
