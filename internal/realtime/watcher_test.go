package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/chat"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/data"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/pubsub"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// badgeLog records badge updates; ClearBadge is recorded as 0.
type badgeLog struct {
	c chan int64
}

func newBadgeLog() *badgeLog { return &badgeLog{c: make(chan int64, 16)} }

func (b *badgeLog) SetBadge(n int64) { b.c <- n }
func (b *badgeLog) ClearBadge()      { b.c <- 0 }

func (b *badgeLog) next(t *testing.T) int64 {
	t.Helper()
	select {
	case n := <-b.c:
		return n
	case <-time.After(time.Second):
		t.Fatal("no badge update")
		return -1
	}
}

func startWatcher(t *testing.T, f *fixture, read *pubsub.Signal, badge *badgeLog) *Watcher {
	t.Helper()
	counter := chat.NewCounter(f.store, f.store)
	w := NewWatcher(alice, counter, f.src, read, badge, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return w
}

func TestWatcher_RecomputesOnStartAndIncomingMessage(t *testing.T) {
	f := newFixture(t)
	f.send(t, listingL, bob, alice, "hi")

	badge := newBadgeLog()
	w := startWatcher(t, f, nil, badge)
	assert.EqualValues(t, 1, badge.next(t))

	f.send(t, listingL, bob, alice, "again")
	assert.EqualValues(t, 2, badge.next(t))
	assert.EqualValues(t, 2, w.Counts().UnreadMessages)
}

func TestWatcher_IgnoresOwnOutgoingMessages(t *testing.T) {
	f := newFixture(t)
	badge := newBadgeLog()
	startWatcher(t, f, nil, badge)
	assert.EqualValues(t, 0, badge.next(t))

	f.send(t, listingL, alice, bob, "outgoing")
	// a message to alice still triggers; the outgoing one must not have
	f.send(t, listingL, bob, alice, "incoming")
	assert.EqualValues(t, 1, badge.next(t))

	select {
	case n := <-badge.c:
		t.Fatalf("unexpected extra badge update %d", n)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestWatcher_LocalReadSignalClearsBadge(t *testing.T) {
	f := newFixture(t)
	f.send(t, listingL, bob, alice, "hi")

	read := &pubsub.Signal{}
	badge := newBadgeLog()
	startWatcher(t, f, read, badge)
	require.EqualValues(t, 1, badge.next(t))

	s := f.session(alice, read)
	_, err := s.Open(context.Background(), listingL, bob)
	require.NoError(t, err)

	// the local signal and the read event on the user topic both recompute
	assert.EqualValues(t, 0, badge.next(t))
}

func TestWatcher_CountsUnratedSales(t *testing.T) {
	f := newFixture(t)
	f.store.PutListing(data.Listing{ID: listingL, UserID: alice, Title: "Radio", Status: data.StatusSold, SoldTo: bob})

	var got []data.NotificationCounts
	updates := make(chan struct{}, 4)
	counter := chat.NewCounter(f.store, f.store)
	w := NewWatcher(alice, counter, f.src, nil, nil, zerolog.Nop())
	w.OnUpdate = func(c data.NotificationCounts) {
		got = append(got, c)
		updates <- struct{}{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	require.True(t, fired(updates))
	assert.Equal(t, data.NotificationCounts{UnratedSales: 1}, got[0])
}
