// Package pubsub carries append and read notifications between the message
// service and its subscribers. Delivery is at-least-once with no ordering
// guarantee across topics; consumers dedupe by message id.
package pubsub

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ErrClosed is returned by a bus that has been shut down.
var ErrClosed = errors.New("pubsub: bus closed")

// Bus is a topic based publish/subscribe channel.
type Bus interface {
	Publish(ctx context.Context, topic string, payload []byte) error
	// Subscribe starts delivery for topic. The subscription ends when ctx
	// is done or Close is called; C is closed either way.
	Subscribe(ctx context.Context, topic string) (*Subscription, error)
	Close() error
}

// Subscription is one consumer of a topic.
type Subscription struct {
	ID    string
	Topic string
	C     <-chan []byte

	once   sync.Once
	cancel func()
}

// NewSubscription wraps a delivery channel. cancel must stop delivery and
// close c; it runs at most once.
func NewSubscription(topic string, c <-chan []byte, cancel func()) *Subscription {
	return &Subscription{ID: uuid.NewString(), Topic: topic, C: c, cancel: cancel}
}

// Close stops delivery.
func (s *Subscription) Close() {
	s.once.Do(s.cancel)
}

// closeOnDone closes s once ctx is done. The goroutine exits when either
// side finishes first.
func closeOnDone(ctx context.Context, s *Subscription, stopped <-chan struct{}) {
	go func() {
		select {
		case <-ctx.Done():
			s.Close()
		case <-stopped:
		}
	}()
}

// ThreadTopic names the topic of one conversation. The user pair is
// unordered so both participants resolve the same topic.
func ThreadTopic(listingID, userA, userB string) string {
	if userB < userA {
		userA, userB = userB, userA
	}
	return strings.Join([]string{"thread", listingID, userA, userB}, ":")
}

// UserTopic names the topic that carries every event concerning userID.
func UserTopic(userID string) string {
	return "user:" + userID
}
