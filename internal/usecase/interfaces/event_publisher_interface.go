package interfaces

//go:generate mockgen -source=event_publisher_interface.go -destination=mocks/event_publisher_interface_mock.go -package=mock_interfaces

import (
	"context"

	"fieldops/internal/domain/entities"
)

// IEventPublisher hands a committed business event to the notification pipeline.
type IEventPublisher interface {
	Publish(ctx context.Context, e entities.Event) error
}

// IEventQueue is the buffer between publishers and the dispatcher worker.
// Consume blocks until an event is available or ctx is done.
type IEventQueue interface {
	IEventPublisher
	Consume(ctx context.Context) (entities.Event, error)
}
