package pubsub

import (
	"context"
	"fmt"
	"sync"
)

// MemoryBus is an in-process Bus for a single server instance. It maps
// topics to subscriber channels; a subscriber whose buffer is full when a
// message arrives is dropped rather than allowed to stall publishers.
type MemoryBus struct {
	mu     sync.RWMutex
	topics map[string]map[string]*memorySub
	buffer int
	closed bool
}

type memorySub struct {
	ch      chan []byte
	stopped chan struct{}
}

// NewMemoryBus creates a bus whose subscribers buffer up to buffer messages.
func NewMemoryBus(buffer int) *MemoryBus {
	if buffer <= 0 {
		buffer = 64
	}
	return &MemoryBus{topics: make(map[string]map[string]*memorySub), buffer: buffer}
}

// Subscribe registers a new subscriber for topic.
func (b *MemoryBus) Subscribe(ctx context.Context, topic string) (*Subscription, error) {
	ms := &memorySub{ch: make(chan []byte, b.buffer), stopped: make(chan struct{})}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrClosed
	}
	if _, ok := b.topics[topic]; !ok {
		b.topics[topic] = make(map[string]*memorySub)
	}

	var sub *Subscription
	sub = NewSubscription(topic, ms.ch, func() { b.remove(topic, sub.ID) })
	b.topics[topic][sub.ID] = ms
	closeOnDone(ctx, sub, ms.stopped)
	return sub, nil
}

// remove unregisters a subscriber and closes its channel.
func (b *MemoryBus) remove(topic, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.topics[topic]
	if !ok {
		return
	}
	ms, ok := subs[id]
	if !ok {
		return
	}
	delete(subs, id)
	if len(subs) == 0 {
		delete(b.topics, topic)
	}
	close(ms.ch)
	close(ms.stopped)
}

// Publish delivers payload to every current subscriber of topic. Publishing
// to a topic nobody listens on is not an error. Subscribers that cannot
// keep up are unregistered and reported in the returned error.
func (b *MemoryBus) Publish(ctx context.Context, topic string, payload []byte) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrClosed
	}
	var failedIDs []string
	for id, ms := range b.topics[topic] {
		select {
		case ms.ch <- payload:
		default:
			failedIDs = append(failedIDs, id)
		}
	}
	b.mu.RUnlock()

	for _, id := range failedIDs {
		b.remove(topic, id)
	}
	if len(failedIDs) > 0 {
		return fmt.Errorf("pubsub: dropped %d slow subscriber(s) on %s", len(failedIDs), topic)
	}
	return nil
}

// Close unregisters every subscriber and rejects further use.
func (b *MemoryBus) Close() error {
	b.mu.Lock()
	b.closed = true
	var all [][2]string
	for topic, subs := range b.topics {
		for id := range subs {
			all = append(all, [2]string{topic, id})
		}
	}
	b.mu.Unlock()

	for _, ts := range all {
		b.remove(ts[0], ts[1])
	}
	return nil
}
