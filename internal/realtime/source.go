// Package realtime keeps a client's view of its conversations current from
// bus events: the open thread, the conversation list and the notification
// counts.
package realtime

import (
	"context"
	"errors"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/data"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/pubsub"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrUnsubscribed is returned by loops whose event subscription closed.
var ErrUnsubscribed = errors.New("realtime: subscription closed")

// Source opens event subscriptions for one client.
type Source interface {
	SubscribeThread(ctx context.Context, listingID, userA, userB string) (*pubsub.Subscription, error)
	SubscribeUser(ctx context.Context, userID string) (*pubsub.Subscription, error)
}

// BusSource subscribes straight to a pubsub.Bus.
type BusSource struct {
	Bus pubsub.Bus
}

// SubscribeThread subscribes to the thread topic of the pair.
func (b BusSource) SubscribeThread(ctx context.Context, listingID, userA, userB string) (*pubsub.Subscription, error) {
	return b.Bus.Subscribe(ctx, pubsub.ThreadTopic(listingID, userA, userB))
}

// SubscribeUser subscribes to the user's topic.
func (b BusSource) SubscribeUser(ctx context.Context, userID string) (*pubsub.Subscription, error) {
	return b.Bus.Subscribe(ctx, pubsub.UserTopic(userID))
}

// Reader fetches authoritative state from the store.
type Reader interface {
	ListAllForUser(ctx context.Context, userID string) ([]*data.Message, error)
	ListThread(ctx context.Context, listingID, userA, userB string) ([]*data.Message, error)
}

// ReadMarker flips read flags and reports how many messages transitioned.
type ReadMarker interface {
	MarkRead(ctx context.Context, listingID, fromUser, toUser string) (int64, error)
	MarkMessageRead(ctx context.Context, listingID, senderID string, id bson.ObjectID, recipientID string) (int64, error)
}
