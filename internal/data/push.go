package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/normalize"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// PushStore keeps the single push endpoint of each user.
type PushStore struct {
	coll *mongo.Collection
}

// NewPushStore returns a PushStore using the provided collection.
func NewPushStore(coll *mongo.Collection) *PushStore {
	return &PushStore{coll: coll}
}

// UpsertSubscription stores sub as the user's only subscription, replacing any previous
// endpoint.
func (p *PushStore) UpsertSubscription(ctx context.Context, sub PushSubscription) error {
	sub.UserID = normalize.ID(sub.UserID)
	if sub.UserID == "" || sub.Endpoint == "" {
		return fmt.Errorf("%w: user id and endpoint are required", ErrValidation)
	}
	sub.UpdatedAt = time.Now().UTC()

	_, err := p.coll.ReplaceOne(ctx, bson.M{"user_id": sub.UserID}, sub, options.Replace().SetUpsert(true))
	if err != nil {
		return persistErr("upsert push subscription", err)
	}
	return nil
}

// GetSubscription returns the subscription of userID or ErrNotFound.
func (p *PushStore) GetSubscription(ctx context.Context, userID string) (*PushSubscription, error) {
	var sub PushSubscription
	err := p.coll.FindOne(ctx, bson.M{"user_id": normalize.ID(userID)}).Decode(&sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, persistErr("get push subscription", err)
	}
	return &sub, nil
}
