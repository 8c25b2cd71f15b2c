package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, sub *Subscription) []byte {
	t.Helper()
	select {
	case p, ok := <-sub.C:
		require.True(t, ok, "subscription closed unexpectedly")
		return p
	case <-time.After(time.Second):
		t.Fatalf("no message on %s", sub.Topic)
		return nil
	}
}

func TestMemoryBus_PublishReachesEverySubscriber(t *testing.T) {
	bus := NewMemoryBus(4)
	ctx := context.Background()

	a, err := bus.Subscribe(ctx, "user:alice")
	require.NoError(t, err)
	b, err := bus.Subscribe(ctx, "user:alice")
	require.NoError(t, err)
	other, err := bus.Subscribe(ctx, "user:bob")
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, "user:alice", []byte("m1")))

	assert.Equal(t, "m1", string(receive(t, a)))
	assert.Equal(t, "m1", string(receive(t, b)))
	assert.Empty(t, other.C)

	// a closed subscriber no longer receives
	a.Close()
	require.NoError(t, bus.Publish(ctx, "user:alice", []byte("m2")))
	assert.Equal(t, "m2", string(receive(t, b)))
	_, open := <-a.C
	assert.False(t, open)
}

func TestMemoryBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewMemoryBus(1)
	assert.NoError(t, bus.Publish(context.Background(), "user:nobody", []byte("x")))
}

func TestMemoryBus_DropsSlowSubscriber(t *testing.T) {
	bus := NewMemoryBus(1)
	ctx := context.Background()

	slow, err := bus.Subscribe(ctx, "t")
	require.NoError(t, err)
	fast, err := bus.Subscribe(ctx, "t")
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, "t", []byte("1")))
	assert.Equal(t, "1", string(receive(t, fast)))

	// slow never drained its buffer, so the second publish overflows it
	assert.Error(t, bus.Publish(ctx, "t", []byte("2")))
	assert.Equal(t, "2", string(receive(t, fast)))

	assert.Equal(t, "1", string(receive(t, slow)))
	_, open := <-slow.C
	assert.False(t, open, "slow subscriber should have been unregistered")

	require.NoError(t, bus.Publish(ctx, "t", []byte("3")))
	assert.Equal(t, "3", string(receive(t, fast)))
}

func TestMemoryBus_ContextCancelEndsSubscription(t *testing.T) {
	bus := NewMemoryBus(1)
	ctx, cancel := context.WithCancel(context.Background())

	sub, err := bus.Subscribe(ctx, "t")
	require.NoError(t, err)
	cancel()

	select {
	case _, open := <-sub.C:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("subscription not closed after cancel")
	}
}

func TestMemoryBus_Close(t *testing.T) {
	bus := NewMemoryBus(1)
	sub, err := bus.Subscribe(context.Background(), "t")
	require.NoError(t, err)

	require.NoError(t, bus.Close())
	_, open := <-sub.C
	assert.False(t, open)

	_, err = bus.Subscribe(context.Background(), "t")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, bus.Publish(context.Background(), "t", nil), ErrClosed)
	sub.Close()
}

func TestThreadTopicIsSymmetric(t *testing.T) {
	assert.Equal(t, ThreadTopic("l1", "alice", "bob"), ThreadTopic("l1", "bob", "alice"))
	assert.NotEqual(t, ThreadTopic("l1", "alice", "bob"), ThreadTopic("l2", "alice", "bob"))
	assert.Equal(t, "user:alice", UserTopic("alice"))
}

func TestSignal_NotifyCoalesces(t *testing.T) {
	var s Signal
	ch, stop := s.Watch()
	defer stop()

	s.Notify()
	s.Notify()

	<-ch
	select {
	case <-ch:
		t.Fatal("expected notifications to coalesce")
	default:
	}

	stop()
	s.Notify()
	select {
	case <-ch:
		t.Fatal("unregistered watcher should not be notified")
	default:
	}
}
