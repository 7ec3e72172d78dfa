package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisBroadcaster publishes cross-module signals on Redis pub/sub
// channels named after the topic, so downstream modules can run in
// separate processes.
type RedisBroadcaster struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewRedisBroadcaster(url string, log zerolog.Logger) (*RedisBroadcaster, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		// Fallback to a bare host:port address
		opt = &redis.Options{Addr: url}
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisBroadcaster{client: client, log: log}, nil
}

func (b *RedisBroadcaster) Publish(ctx context.Context, s Signal) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal signal: %w", err)
	}
	return b.client.Publish(ctx, s.Topic, payload).Err()
}

// Listen consumes a topic until the context is cancelled, decoding each
// message into a Signal. Malformed payloads are logged and skipped.
func (b *RedisBroadcaster) Listen(ctx context.Context, topic string, fn func(Signal)) {
	sub := b.client.Subscribe(ctx, topic)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var s Signal
			if err := json.Unmarshal([]byte(msg.Payload), &s); err != nil {
				b.log.Warn().Str("topic", topic).Err(err).Msg("dropping malformed signal")
				continue
			}
			fn(s)
		}
	}
}

func (b *RedisBroadcaster) Close() error {
	return b.client.Close()
}
