package realtime

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/chat"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/data"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/pubsub"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	listingL = "8d3c6c62-5d8e-4b55-a8e5-2a4a9cf0e101"
	listingM = "9e4d7d73-6e9f-4c66-b9f6-3b5bade1f202"
	alice    = "1b7f5c10-4a63-4d8f-9b0a-7c6f1e2d3a01"
	bob      = "2c8a6d21-5b74-4e90-8c1b-8d7a2f3e4b02"
	carol    = "3d9b7e32-6c85-4fa1-9d2c-9e8b3a4f5c03"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func msg(listing, from, to, content string, offset int) data.Message {
	return data.Message{
		ID:          bson.NewObjectID(),
		ListingID:   listing,
		SenderID:    from,
		RecipientID: to,
		Content:     content,
		CreatedAt:   t0.Add(time.Duration(offset) * time.Second),
	}
}

func appended(t *testing.T, m data.Message) []byte {
	t.Helper()
	p, err := json.Marshal(chat.Event{Kind: chat.EventAppended, Message: &m})
	require.NoError(t, err)
	return p
}

// subscribedSource reports every user-topic subscription it opens, so
// tests can wait for a Run loop to be listening.
type subscribedSource struct {
	BusSource
	users chan string
}

func newSubscribedSource(bus pubsub.Bus) *subscribedSource {
	return &subscribedSource{BusSource: BusSource{Bus: bus}, users: make(chan string, 8)}
}

func (s *subscribedSource) SubscribeUser(ctx context.Context, userID string) (*pubsub.Subscription, error) {
	sub, err := s.BusSource.SubscribeUser(ctx, userID)
	if err == nil {
		s.users <- userID
	}
	return sub, err
}

func (s *subscribedSource) waitUser(t *testing.T) {
	t.Helper()
	select {
	case <-s.users:
	case <-time.After(time.Second):
		t.Fatal("user subscription never opened")
	}
}

// fixture is one server side (store, bus, services) shared by clients.
type fixture struct {
	store *data.MemoryStore
	bus   *pubsub.MemoryBus
	rec   *chat.Reconciler
	svc   *chat.Service
	src   *subscribedSource
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := data.NewMemoryStore()
	tick := 0
	store.Now = func() time.Time { tick++; return t0.Add(time.Duration(tick) * time.Second) }

	bus := pubsub.NewMemoryBus(64)
	t.Cleanup(func() { _ = bus.Close() })

	return &fixture{
		store: store,
		bus:   bus,
		rec:   chat.NewReconciler(store, bus, nil, zerolog.Nop()),
		svc:   chat.NewService(store, bus, nil, time.Second, zerolog.Nop()),
		src:   newSubscribedSource(bus),
	}
}

func (f *fixture) session(user string, read *pubsub.Signal) *Session {
	return NewSession(user, f.store, f.rec, f.src, read, zerolog.Nop())
}

func (f *fixture) send(t *testing.T, listing, from, to, content string) *data.Message {
	t.Helper()
	m, err := f.svc.Send(context.Background(), listing, from, to, content)
	require.NoError(t, err)
	return m
}

func fired(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	case <-time.After(time.Second):
		return false
	}
}
