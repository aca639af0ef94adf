package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldops/internal/domain/entities"
	mock_interfaces "fieldops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTestDispatcher(ctrl *gomock.Controller, queue *ChannelQueue, attempts int) (*Dispatcher, *mock_interfaces.MockINotificationRepository, *mock_interfaces.MockIUserRepository) {
	notifications := mock_interfaces.NewMockINotificationRepository(ctrl)
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	d := NewDispatcher(queue, notifications, users, DispatcherConfig{MaxAttempts: attempts, BaseBackoff: time.Millisecond})
	d.sleep = func(ctx context.Context, _ time.Duration) error { return ctx.Err() }
	return d, notifications, users
}

func TestDispatcher_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("creates one notification per recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d, notifications, _ := newTestDispatcher(ctrl, NewChannelQueue(1), 3)

		var got []entities.Notification
		notifications.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				got = append(got, n)
				return n, nil
			}).Times(2)

		n := d.Handle(ctx, entities.Event{
			Kind:              entities.EventProjectStatusChanged,
			Subject:           entities.RelatedTo{Model: entities.RelatedProject, ID: "p-1"},
			ProjectTechnician: "tech-1",
			ProjectClients:    []string{"c1"},
		})
		if n != 2 {
			t.Fatalf("expected 2 deliveries, got %d", n)
		}
		if got[0].RelatedTo == nil || got[0].RelatedTo.ID != "p-1" {
			t.Fatalf("expected reference to p-1, got %+v", got[0].RelatedTo)
		}
		if got[0].ID == "" || got[0].ID == got[1].ID {
			t.Fatalf("expected distinct ids, got %q and %q", got[0].ID, got[1].ID)
		}
	})

	t.Run("retries a failed write then succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d, notifications, _ := newTestDispatcher(ctrl, NewChannelQueue(1), 3)

		gomock.InOrder(
			notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Notification{}, errors.New("throttled")),
			notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Notification{ID: "n-1"}, nil),
		)

		n := d.Handle(ctx, entities.Event{Kind: entities.EventRenditionApproved, RenditionTechnician: "tech-1"})
		if n != 1 {
			t.Fatalf("expected 1 delivery, got %d", n)
		}
	})

	t.Run("drops after max attempts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d, notifications, _ := newTestDispatcher(ctrl, NewChannelQueue(1), 3)

		notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Notification{}, errors.New("down")).Times(3)

		n := d.Handle(ctx, entities.Event{Kind: entities.EventRenditionApproved, RenditionTechnician: "tech-1"})
		if n != 0 {
			t.Fatalf("expected 0 deliveries, got %d", n)
		}
	})

	t.Run("resolves active admins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d, notifications, users := newTestDispatcher(ctrl, NewChannelQueue(1), 3)

		users.EXPECT().List(gomock.Any(), entities.RoleAdmin).Return([]entities.User{
			{ID: "admin-1", Active: true},
			{ID: "admin-2", Active: false},
		}, nil)
		notifications.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.Recipient != "admin-1" {
					t.Fatalf("expected admin-1, got %s", n.Recipient)
				}
				return n, nil
			})

		if n := d.Handle(ctx, entities.Event{Kind: entities.EventRenditionCreated, Folio: "RND-250517-001"}); n != 1 {
			t.Fatalf("expected 1 delivery, got %d", n)
		}
	})

	t.Run("requeues when admins cannot be resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		queue := NewChannelQueue(1)
		d, _, users := newTestDispatcher(ctrl, queue, 3)

		users.EXPECT().List(gomock.Any(), entities.RoleAdmin).Return(nil, errors.New("db"))

		d.Handle(ctx, entities.Event{ID: "e-1", Kind: entities.EventRequestCreated})
		if queue.Len() != 1 {
			t.Fatalf("expected requeued event, got %d", queue.Len())
		}
		e, err := queue.Consume(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Attempt != 1 {
			t.Fatalf("expected attempt 1, got %d", e.Attempt)
		}
	})

	t.Run("drops a requeued event at the attempt limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		queue := NewChannelQueue(1)
		d, _, users := newTestDispatcher(ctrl, queue, 3)

		users.EXPECT().List(gomock.Any(), entities.RoleAdmin).Return(nil, errors.New("db"))

		d.Handle(ctx, entities.Event{ID: "e-1", Kind: entities.EventRequestCreated, Attempt: 2})
		if queue.Len() != 0 {
			t.Fatalf("expected no requeue, got %d", queue.Len())
		}
	})
}

func TestDispatcher_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	queue := NewChannelQueue(4)
	d, notifications, _ := newTestDispatcher(ctrl, queue, 3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	notifications.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n entities.Notification) (entities.Notification, error) {
			close(done)
			return n, nil
		})

	if err := queue.Publish(ctx, entities.Event{Kind: entities.EventRequestAssigned, TargetUserID: "tech-1"}); err != nil {
		t.Fatalf("unexpected publish error: %v", err)
	}

	stopped := make(chan error, 1)
	go func() { stopped <- d.Run(ctx) }()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected the event to be delivered")
	}
	cancel()
	if err := <-stopped; err != nil {
		t.Fatalf("expected clean stop, got %v", err)
	}
}

func TestChannelQueue(t *testing.T) {
	t.Run("full queue rejects publish", func(t *testing.T) {
		q := NewChannelQueue(1)
		if err := q.Publish(context.Background(), entities.Event{ID: "1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := q.Publish(context.Background(), entities.Event{ID: "2"}); !errors.Is(err, ErrQueueFull) {
			t.Fatalf("expected ErrQueueFull, got %v", err)
		}
	})

	t.Run("consume honours cancellation", func(t *testing.T) {
		q := NewChannelQueue(1)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := q.Consume(ctx); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}
