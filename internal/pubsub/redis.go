package pubsub

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Connect opens a Redis client and verifies it answers.
func Connect(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// RedisBus is a Bus on Redis PUBLISH/SUBSCRIBE, for running several server
// instances behind one load balancer.
type RedisBus struct {
	client *redis.Client
	buffer int
}

// NewRedisBus returns a bus publishing through client.
func NewRedisBus(client *redis.Client, buffer int) *RedisBus {
	if buffer <= 0 {
		buffer = 64
	}
	return &RedisBus{client: client, buffer: buffer}
}

// Publish sends payload to every subscriber of topic on any instance.
func (b *RedisBus) Publish(ctx context.Context, topic string, payload []byte) error {
	return b.client.Publish(ctx, topic, payload).Err()
}

// Subscribe waits for Redis to confirm the subscription before returning,
// so a publish issued after Subscribe returns is not missed.
func (b *RedisBus) Subscribe(ctx context.Context, topic string) (*Subscription, error) {
	ps := b.client.Subscribe(ctx, topic)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("subscribe %s: %w", topic, err)
	}

	out := make(chan []byte, b.buffer)
	stopped := make(chan struct{})
	sub := NewSubscription(topic, out, func() {
		close(stopped)
		_ = ps.Close()
	})

	go func() {
		defer close(out)
		in := ps.Channel()
		for {
			select {
			case m, ok := <-in:
				if !ok {
					return
				}
				select {
				case out <- []byte(m.Payload):
				case <-stopped:
					return
				}
			case <-stopped:
				return
			}
		}
	}()
	closeOnDone(ctx, sub, stopped)
	return sub, nil
}

// Close closes the underlying client.
func (b *RedisBus) Close() error {
	return b.client.Close()
}
