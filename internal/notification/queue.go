package notification

import (
	"context"
	"errors"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
)

// ErrQueueFull is returned by ChannelQueue.Publish when the buffer is exhausted.
var ErrQueueFull = errors.New("notification queue is full")

const DefaultQueueSize = 1024

// ChannelQueue is the in-process event queue. Events are lost on restart.
type ChannelQueue struct {
	events chan entities.Event
}

var _ interfaces.IEventQueue = (*ChannelQueue)(nil)

func NewChannelQueue(size int) *ChannelQueue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &ChannelQueue{events: make(chan entities.Event, size)}
}

// Publish never blocks the caller's request.
func (q *ChannelQueue) Publish(ctx context.Context, e entities.Event) error {
	select {
	case q.events <- e:
		return nil
	default:
		return ErrQueueFull
	}
}

func (q *ChannelQueue) Consume(ctx context.Context) (entities.Event, error) {
	select {
	case e := <-q.events:
		return e, nil
	case <-ctx.Done():
		return entities.Event{}, ctx.Err()
	}
}

// Len reports the number of buffered events.
func (q *ChannelQueue) Len() int {
	return len(q.events)
}
