package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisRelay publishes each room to <prefix><room> and pattern-subscribes
// to <prefix>*.
type RedisRelay struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

func NewRedisRelay(client *redis.Client, prefix string, logger *zap.Logger) *RedisRelay {
	return &RedisRelay{client: client, prefix: prefix, logger: logger}
}

func (r *RedisRelay) Channel(room string) string {
	return r.prefix + room
}

func (r *RedisRelay) Publish(ctx context.Context, ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	if err := r.client.Publish(ctx, r.Channel(ev.Room), data).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", r.Channel(ev.Room), err)
	}
	return nil
}

func (r *RedisRelay) Run(ctx context.Context, deliver func(Event)) error {
	sub := r.client.PSubscribe(ctx, r.prefix+"*")
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s*: %w", r.prefix, err)
	}
	r.logger.Info("relay subscribed", zap.String("pattern", r.prefix+"*"))

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}

			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				r.logger.Warn("dropping undecodable relay payload", zap.String("channel", msg.Channel), zap.Error(err))
				continue
			}
			if ev.Room == "" {
				ev.Room = strings.TrimPrefix(msg.Channel, r.prefix)
			}
			deliver(ev)
		}
	}
}
