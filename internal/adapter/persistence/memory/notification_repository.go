package memory

import (
	"context"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
)

type NotificationRepository struct {
	s *Store
}

var _ interfaces.INotificationRepository = (*NotificationRepository)(nil)

func (r *NotificationRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.notifications[n.ID]; ok {
		return entities.Notification{}, interfaces.ErrDuplicateKey
	}
	r.s.notifications[n.ID] = n
	return n, nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id string) (entities.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.notifications[id], nil
}

func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipient string, unreadOnly bool, q interfaces.PageQuery) ([]entities.Notification, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.Notification{}
	for _, n := range r.s.notifications {
		if n.Recipient != recipient || (unreadOnly && n.Read) {
			continue
		}
		out = append(out, n)
	}
	newestFirst(out, func(n entities.Notification) time.Time { return n.CreatedAt }, func(n entities.Notification) string { return n.ID })
	items, total := page(out, q)
	return items, total, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id string, at time.Time) (entities.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notifications[id]
	if !ok {
		return entities.Notification{}, nil
	}
	n.Read = true
	n.ReadAt = &at
	r.s.notifications[id] = n
	return n, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, recipient string, at time.Time) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for id, n := range r.s.notifications {
		if n.Recipient != recipient || n.Read {
			continue
		}
		n.Read = true
		n.ReadAt = &at
		r.s.notifications[id] = n
		count++
	}
	return count, nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.notifications, id)
	return nil
}
