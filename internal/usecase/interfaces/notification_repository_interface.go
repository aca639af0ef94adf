package interfaces

//go:generate mockgen -source=notification_repository_interface.go -destination=mocks/notification_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"time"

	"fieldops/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for Notification.
// Listings are newest first.
type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	GetByID(ctx context.Context, id string) (entities.Notification, error)
	ListByRecipient(ctx context.Context, recipient string, unreadOnly bool, q PageQuery) ([]entities.Notification, int, error)
	MarkRead(ctx context.Context, id string, at time.Time) (entities.Notification, error)
	MarkAllRead(ctx context.Context, recipient string, at time.Time) (int, error)
	Delete(ctx context.Context, id string) error
}
