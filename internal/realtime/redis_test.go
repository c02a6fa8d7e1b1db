package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testRedisAddr = "localhost:6379"

func setupRelay(t *testing.T) *RedisRelay {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: testRedisAddr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available at %s: %v", testRedisAddr, err)
	}
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisRelay(client, "huddle:test:"+t.Name()+":", zap.NewNop())
}

func TestRedisRelay_Channel(t *testing.T) {
	relay := NewRedisRelay(nil, "huddle:room:", zap.NewNop())
	assert.Equal(t, "huddle:room:abc", relay.Channel("abc"))
}

func TestRedisRelay_RoundTrip(t *testing.T) {
	relay := setupRelay(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Event, 64)
	go func() { _ = relay.Run(ctx, func(ev Event) { received <- ev }) }()

	// The subscription is live once a publish comes back.
	require.Eventually(t, func() bool {
		if err := relay.Publish(ctx, SystemEvent("room-1", "hello")); err != nil {
			return false
		}
		select {
		case ev := <-received:
			return ev.Room == "room-1" && ev.Content == "hello"
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 3*time.Second, 100*time.Millisecond)
}

func TestHub_RunDeliversRelayedEvents(t *testing.T) {
	relay := setupRelay(t)
	hub := NewHub(relay, zap.NewNop())
	c := newTestClient("a")
	hub.Join("room-1", c)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = hub.Run(ctx) }()

	require.Eventually(t, func() bool {
		hub.Broadcast(ctx, RefreshEvent("room-1"))
		return len(drain(c)) > 0
	}, 3*time.Second, 100*time.Millisecond)
}
