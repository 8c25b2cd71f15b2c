package chat

import (
	"context"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/normalize"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/pubsub"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ReadMarker performs the conditional read-flag updates.
type ReadMarker interface {
	MarkRead(ctx context.Context, listingID, fromUser, toUser string) (int64, error)
	MarkMessageRead(ctx context.Context, id bson.ObjectID, recipientID string) (int64, error)
}

// Reconciler flips messages to read when a thread is viewed, raises the
// local read signal and tells the reader's other sessions about it.
type Reconciler struct {
	store ReadMarker
	bus   pubsub.Bus
	read  *pubsub.Signal
	log   zerolog.Logger
}

// NewReconciler returns a Reconciler announcing transitions on bus. read is
// raised after every call that transitioned something; it may be nil.
func NewReconciler(store ReadMarker, bus pubsub.Bus, read *pubsub.Signal, log zerolog.Logger) *Reconciler {
	return &Reconciler{store: store, bus: bus, read: read, log: log}
}

// MarkRead marks every unread message fromUser sent toUser on listingID and
// returns how many actually transitioned. Calling it again with nothing
// left unread returns 0 and announces nothing. On error no message changed
// and the call is safe to retry.
func (r *Reconciler) MarkRead(ctx context.Context, listingID, fromUser, toUser string) (int64, error) {
	n, err := r.store.MarkRead(ctx, listingID, fromUser, toUser)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.announce(ctx, listingID, toUser, fromUser, n)
	}
	return n, nil
}

// MarkMessageRead marks a single message read by its recipient. listingID
// and senderID only scope the announcement.
func (r *Reconciler) MarkMessageRead(ctx context.Context, listingID, senderID string, id bson.ObjectID, recipientID string) (int64, error) {
	n, err := r.store.MarkMessageRead(ctx, id, recipientID)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.announce(ctx, listingID, recipientID, senderID, n)
	}
	return n, nil
}

func (r *Reconciler) announce(ctx context.Context, listingID, readerID, counterpartID string, n int64) {
	if r.read != nil {
		r.read.Notify()
	}

	readerID = normalize.ID(readerID)
	ev := Event{
		Kind:          EventRead,
		ListingID:     normalize.ID(listingID),
		ReaderID:      readerID,
		CounterpartID: normalize.ID(counterpartID),
		Transitioned:  n,
	}
	if err := publish(context.WithoutCancel(ctx), r.bus, ev, pubsub.UserTopic(readerID)); err != nil {
		// other sessions self-heal on their next rebuild
		r.log.Warn().Err(err).Str("user_id", readerID).Msg("read announcement not delivered")
	}
}
