package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultRedisQueueKey = "fieldops:events"
	redisPollTimeout     = 5 * time.Second
)

// RedisQueue keeps events in a Redis list so they survive API restarts and can be drained
// by any replica. Producers LPUSH, the dispatcher BRPOPs.
type RedisQueue struct {
	client *redis.Client
	key    string
}

var _ interfaces.IEventQueue = (*RedisQueue)(nil)

func NewRedisQueue(client *redis.Client, key string) *RedisQueue {
	if key == "" {
		key = DefaultRedisQueueKey
	}
	return &RedisQueue{client: client, key: key}
}

func (q *RedisQueue) Publish(ctx context.Context, e entities.Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	return q.client.LPush(ctx, q.key, payload).Err()
}

func (q *RedisQueue) Consume(ctx context.Context) (entities.Event, error) {
	for {
		if err := ctx.Err(); err != nil {
			return entities.Event{}, err
		}
		res, err := q.client.BRPop(ctx, redisPollTimeout, q.key).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return entities.Event{}, err
		}
		// res is [key, value]
		var e entities.Event
		if err := json.Unmarshal([]byte(res[1]), &e); err != nil {
			log.Printf("[notification][queue] dropping undecodable event err=%v", err)
			continue
		}
		return e, nil
	}
}
