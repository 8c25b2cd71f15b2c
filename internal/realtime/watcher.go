package realtime

import (
	"context"
	"fmt"
	"sync"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/chat"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/data"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/normalize"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/pubsub"

	"github.com/rs/zerolog"
)

// CountSource computes the notification counts of a user.
type CountSource interface {
	ComputeCounts(ctx context.Context, userID string) (data.NotificationCounts, error)
}

// BadgeSink shows the unread message count outside the app.
type BadgeSink interface {
	SetBadge(n int64)
	ClearBadge()
}

// Watcher keeps the notification counts of one user current. It recomputes
// when it starts, when the local read signal fires, and when a user-topic
// event concerns the user. It never polls.
type Watcher struct {
	user   string
	counts CountSource
	source Source
	read   *pubsub.Signal
	badge  BadgeSink
	log    zerolog.Logger

	// OnUpdate, when set, receives every recomputed value.
	OnUpdate func(data.NotificationCounts)

	mu      sync.Mutex
	current data.NotificationCounts
}

// NewWatcher returns a Watcher. badge may be nil.
func NewWatcher(userID string, counts CountSource, source Source, read *pubsub.Signal, badge BadgeSink, log zerolog.Logger) *Watcher {
	userID = normalize.ID(userID)
	if read == nil {
		read = &pubsub.Signal{}
	}
	return &Watcher{
		user:   userID,
		counts: counts,
		source: source,
		read:   read,
		badge:  badge,
		log:    log.With().Str("user_id", userID).Logger(),
	}
}

// Counts returns the last computed value.
func (w *Watcher) Counts() data.NotificationCounts {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Run watches until ctx is done or the user subscription drops.
func (w *Watcher) Run(ctx context.Context) error {
	sub, err := w.source.SubscribeUser(ctx, w.user)
	if err != nil {
		return fmt.Errorf("subscribe user: %w", err)
	}
	defer sub.Close()

	wake, stop := w.read.Watch()
	defer stop()

	w.recompute(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-wake:
			w.recompute(ctx)
		case p, ok := <-sub.C:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return ErrUnsubscribed
			}
			if w.relevant(p) {
				w.recompute(ctx)
			}
		}
	}
}

func (w *Watcher) relevant(payload []byte) bool {
	ev, err := chat.DecodeEvent(payload)
	if err != nil {
		w.log.Warn().Err(err).Msg("dropping undecodable event")
		return false
	}
	switch ev.Kind {
	case chat.EventAppended:
		return ev.Message.RecipientID == w.user
	case chat.EventRead:
		return ev.ReaderID == w.user
	}
	return false
}

func (w *Watcher) recompute(ctx context.Context) {
	c, err := w.counts.ComputeCounts(ctx, w.user)
	if err != nil {
		// keep showing the previous value
		w.log.Warn().Err(err).Msg("count recompute failed")
		return
	}

	w.mu.Lock()
	w.current = c
	w.mu.Unlock()

	if w.badge != nil {
		if c.UnreadMessages > 0 {
			w.badge.SetBadge(c.UnreadMessages)
		} else {
			w.badge.ClearBadge()
		}
	}
	if w.OnUpdate != nil {
		w.OnUpdate(c)
	}
}
