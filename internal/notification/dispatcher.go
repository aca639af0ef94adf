package notification

import (
	"context"
	"errors"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/infrastructure/metrics"
	"fieldops/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultMaxAttempts = 5
	defaultBaseBackoff = 200 * time.Millisecond
	maxBackoff         = 10 * time.Second
)

type DispatcherConfig struct {
	MaxAttempts int
	BaseBackoff time.Duration
}

// Dispatcher is the single background worker that turns business events into
// notification records. Delivery is at-least-once per recipient within MaxAttempts; events
// that still fail are dropped with an error log.
type Dispatcher struct {
	queue         interfaces.IEventQueue
	notifications interfaces.INotificationRepository
	users         interfaces.IUserRepository
	maxAttempts   int
	baseBackoff   time.Duration
	now           func() time.Time
	sleep         func(ctx context.Context, d time.Duration) error
}

func NewDispatcher(
	queue interfaces.IEventQueue,
	notifications interfaces.INotificationRepository,
	users interfaces.IUserRepository,
	cfg DispatcherConfig,
) *Dispatcher {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = defaultBaseBackoff
	}
	return &Dispatcher{
		queue:         queue,
		notifications: notifications,
		users:         users,
		maxAttempts:   cfg.MaxAttempts,
		baseBackoff:   cfg.BaseBackoff,
		now:           func() time.Time { return time.Now().UTC() },
		sleep:         sleepCtx,
	}
}

// Run consumes until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	log.Printf("[notification][dispatcher] started max_attempts=%d", d.maxAttempts)
	for {
		e, err := d.queue.Consume(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Printf("[notification][dispatcher] stopped")
				return nil
			}
			log.Printf("[notification][dispatcher] consume failed err=%v", err)
			if err := d.sleep(ctx, d.backoff(1)); err != nil {
				return nil
			}
			continue
		}
		d.Handle(ctx, e)
	}
}

// Handle delivers one event. Recipient resolution failures requeue the event with a bumped
// attempt counter; individual record writes are retried in place.
func (d *Dispatcher) Handle(ctx context.Context, e entities.Event) int {
	var admins []string
	if needsAdmins(e.Kind) {
		var err error
		if admins, err = d.adminIDs(ctx); err != nil {
			d.requeue(ctx, e, err)
			return 0
		}
	}

	delivered := 0
	for _, draft := range compose(e, admins) {
		if err := d.deliver(ctx, draft); err != nil {
			metrics.NotificationFailures.WithLabelValues("dropped").Inc()
			log.WithFields(log.Fields{
				"event":     e.ID,
				"kind":      e.Kind,
				"recipient": draft.Recipient,
			}).Errorf("[notification][dispatcher] giving up after %d attempts err=%v", d.maxAttempts, err)
			continue
		}
		delivered++
	}
	return delivered
}

func (d *Dispatcher) deliver(ctx context.Context, draft Draft) error {
	related := draft.RelatedTo
	n := entities.Notification{
		ID:        uuid.NewString(),
		Recipient: draft.Recipient,
		Title:     draft.Title,
		Message:   draft.Message,
		Type:      draft.Type,
		RelatedTo: &related,
		Link:      draft.Link,
		CreatedAt: d.now(),
	}
	var err error
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		if _, err = d.notifications.Create(ctx, n); err == nil {
			metrics.NotificationsDelivered.Inc()
			return nil
		}
		if attempt == d.maxAttempts {
			break
		}
		metrics.NotificationFailures.WithLabelValues("retried").Inc()
		if serr := d.sleep(ctx, d.backoff(attempt)); serr != nil {
			return errors.Join(err, serr)
		}
	}
	return err
}

func (d *Dispatcher) requeue(ctx context.Context, e entities.Event, cause error) {
	e.Attempt++
	if e.Attempt >= d.maxAttempts {
		metrics.NotificationFailures.WithLabelValues("dropped").Inc()
		log.WithFields(log.Fields{"event": e.ID, "kind": e.Kind}).
			Errorf("[notification][dispatcher] dropping event after %d attempts err=%v", e.Attempt, cause)
		return
	}
	if d.queue == nil {
		log.Printf("[notification][dispatcher] no queue to retry event=%s err=%v", e.ID, cause)
		return
	}
	metrics.NotificationFailures.WithLabelValues("retried").Inc()
	log.Printf("[notification][dispatcher] requeue event=%s kind=%s attempt=%d err=%v", e.ID, e.Kind, e.Attempt, cause)
	if err := d.sleep(ctx, d.backoff(e.Attempt)); err != nil {
		return
	}
	if err := d.queue.Publish(ctx, e); err != nil {
		log.Printf("[notification][dispatcher] requeue failed event=%s err=%v", e.ID, err)
	}
}

func (d *Dispatcher) adminIDs(ctx context.Context) ([]string, error) {
	admins, err := d.users.List(ctx, entities.RoleAdmin)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(admins))
	for _, a := range admins {
		if a.Active {
			ids = append(ids, a.ID)
		}
	}
	return ids, nil
}

// backoff doubles from the base per attempt, capped.
func (d *Dispatcher) backoff(attempt int) time.Duration {
	b := d.baseBackoff
	for i := 1; i < attempt && b < maxBackoff; i++ {
		b *= 2
	}
	return min(b, maxBackoff)
}

func sleepCtx(ctx context.Context, dur time.Duration) error {
	t := time.NewTimer(dur)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Inline delivers events on the publisher's goroutine, for tools and tests that run
// without the background worker.
type Inline struct {
	dispatcher *Dispatcher
}

var _ interfaces.IEventPublisher = (*Inline)(nil)

func NewInline(d *Dispatcher) *Inline {
	return &Inline{dispatcher: d}
}

func (p *Inline) Publish(ctx context.Context, e entities.Event) error {
	p.dispatcher.Handle(ctx, e)
	return nil
}
