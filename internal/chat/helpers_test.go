package chat

import (
	"context"
	"testing"
	"time"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/data"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/pubsub"

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

// msg builds a stored message at t0 plus offset seconds.
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

func ptrs(ms ...data.Message) []*data.Message {
	out := make([]*data.Message, len(ms))
	for i := range ms {
		out[i] = &ms[i]
	}
	return out
}

// steppedStore returns a MemoryStore whose clock advances one second per append.
func steppedStore() *data.MemoryStore {
	s := data.NewMemoryStore()
	tick := 0
	s.Now = func() time.Time { tick++; return t0.Add(time.Duration(tick) * time.Second) }
	return s
}

func nextEvent(t *testing.T, sub *pubsub.Subscription) Event {
	t.Helper()
	select {
	case p, ok := <-sub.C:
		require.True(t, ok, "subscription closed")
		ev, err := DecodeEvent(p)
		require.NoError(t, err)
		return ev
	case <-time.After(time.Second):
		t.Fatalf("no event on %s", sub.Topic)
		return Event{}
	}
}

func subscribe(t *testing.T, bus pubsub.Bus, topic string) *pubsub.Subscription {
	t.Helper()
	sub, err := bus.Subscribe(context.Background(), topic)
	require.NoError(t, err)
	t.Cleanup(sub.Close)
	return sub
}
