// Package events publishes dashboard lifecycle events to Redis pub/sub so a
// gateway can forward them to clients over SSE.
package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Event channel names. The channel doubles as the "type" field of the JSON
// payload.
const (
	OrderCreated  = "EVENT_ORDER_CREATED"
	OrderClosed   = "EVENT_ORDER_CLOSED"
	OrderDeleted  = "EVENT_ORDER_DELETED"
	OrderAnalyzed = "EVENT_ORDER_ANALYZED"
)

// Publisher fans out engine events. Implementations must be non-fatal:
// a failed publish is logged and swallowed.
type Publisher interface {
	Publish(ctx context.Context, event string, payload map[string]string)
}

// RedisPublisher publishes events on Redis pub/sub channels.
type RedisPublisher struct {
	rdb *redis.Client
}

// NewRedisPublisher returns a RedisPublisher backed by rdb.
func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

// Publish sends the payload as JSON on the channel named by event, adding
// the event name as the "type" field. Failures are logged, never returned.
func (p *RedisPublisher) Publish(ctx context.Context, event string, payload map[string]string) {
	body := make(map[string]string, len(payload)+1)
	for k, v := range payload {
		body[k] = v
	}
	body["type"] = event

	data, _ := json.Marshal(body)
	if err := p.rdb.Publish(ctx, event, data).Err(); err != nil {
		slog.Warn("publish failed", "event", event, "err", err)
	}
}
