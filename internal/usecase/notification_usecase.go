package usecase

//go:generate mockgen -source=notification_usecase.go -destination=../adapter/http/handlers/mocks/notification_usecase_mock.go -package=mocks

import (
	"context"
	"strings"
	"time"

	"fieldops/internal/domain/access"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

// INotificationUseCase exposes a caller's own inbox. Notifications belonging to someone
// else are reported as not found.
type INotificationUseCase interface {
	List(ctx context.Context, actor access.Subject, unreadOnly bool, q interfaces.PageQuery) ([]entities.Notification, int, error)
	MarkRead(ctx context.Context, actor access.Subject, id string) (entities.Notification, error)
	MarkAllRead(ctx context.Context, actor access.Subject) (int, error)
	Delete(ctx context.Context, actor access.Subject, id string) error
}

type NotificationUseCase struct {
	notifications interfaces.INotificationRepository
	now           func() time.Time
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(notifications interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications, now: utcNow}
}

func (u *NotificationUseCase) List(ctx context.Context, actor access.Subject, unreadOnly bool, q interfaces.PageQuery) ([]entities.Notification, int, error) {
	return u.notifications.ListByRecipient(ctx, actor.ID, unreadOnly, q.Normalize(interfaces.DefaultLimit))
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, actor access.Subject, id string) (entities.Notification, error) {
	n, err := u.own(ctx, actor, id)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.Read {
		return n, nil
	}
	return u.notifications.MarkRead(ctx, n.ID, u.now())
}

func (u *NotificationUseCase) MarkAllRead(ctx context.Context, actor access.Subject) (int, error) {
	count, err := u.notifications.MarkAllRead(ctx, actor.ID, u.now())
	if err != nil {
		return 0, err
	}
	log.Printf("[notification][usecase] marked all read recipient=%s count=%d", actor.ID, count)
	return count, nil
}

func (u *NotificationUseCase) Delete(ctx context.Context, actor access.Subject, id string) error {
	n, err := u.own(ctx, actor, id)
	if err != nil {
		return err
	}
	return u.notifications.Delete(ctx, n.ID)
}

func (u *NotificationUseCase) own(ctx context.Context, actor access.Subject, id string) (entities.Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, ErrInvalidID
	}
	n, err := u.notifications.GetByID(ctx, id)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" || n.Recipient != actor.ID {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}
