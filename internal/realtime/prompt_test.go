package realtime

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/data"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedPermission struct {
	grant bool
	err   error
	asked int
}

func (p *fixedPermission) Request(ctx context.Context) (Grant, bool, error) {
	p.asked++
	if p.err != nil || !p.grant {
		return Grant{}, false, p.err
	}
	return Grant{Endpoint: "https://push.example/alice", P256dh: "key", Auth: "secret"}, true, nil
}

// storeRegistrar writes straight to the store for alice.
type storeRegistrar struct {
	store *data.MemoryStore
	calls int
}

func (r *storeRegistrar) RegisterPush(ctx context.Context, endpoint, p256dh, auth string) error {
	r.calls++
	return r.store.UpsertSubscription(ctx, data.PushSubscription{
		UserID:   alice,
		Endpoint: endpoint,
		Keys:     data.PushKeys{P256dh: p256dh, Auth: auth},
	})
}

func TestPushPrompt_GrantRegistersOnce(t *testing.T) {
	store := data.NewMemoryStore()
	perm := &fixedPermission{grant: true}
	reg := &storeRegistrar{store: store}
	p := NewPushPrompt(perm, reg, time.Millisecond, zerolog.Nop())
	assert.Equal(t, NotRequested, p.State())

	require.NoError(t, p.Run(context.Background()))
	require.NoError(t, p.Run(context.Background()))

	assert.Equal(t, Granted, p.State())
	assert.Equal(t, 1, perm.asked)
	assert.Equal(t, 1, reg.calls)

	sub, err := store.GetSubscription(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, "https://push.example/alice", sub.Endpoint)
}

func TestPushPrompt_DeniedIsTerminal(t *testing.T) {
	perm := &fixedPermission{}
	reg := &storeRegistrar{store: data.NewMemoryStore()}
	p := NewPushPrompt(perm, reg, time.Millisecond, zerolog.Nop())

	require.NoError(t, p.Run(context.Background()))
	require.NoError(t, p.Run(context.Background()))

	assert.Equal(t, Denied, p.State())
	assert.Equal(t, 1, perm.asked)
	assert.Zero(t, reg.calls)
}

func TestPushPrompt_WaitsForDelay(t *testing.T) {
	perm := &fixedPermission{grant: true}
	p := NewPushPrompt(perm, &storeRegistrar{store: data.NewMemoryStore()}, time.Hour, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, p.Run(ctx), context.DeadlineExceeded)
	assert.Equal(t, NotRequested, p.State())
	assert.Zero(t, perm.asked)
}

func TestPushPrompt_RequestErrorIsNotRetried(t *testing.T) {
	perm := &fixedPermission{err: errors.New("no service worker")}
	p := NewPushPrompt(perm, &storeRegistrar{store: data.NewMemoryStore()}, time.Millisecond, zerolog.Nop())

	assert.Error(t, p.Run(context.Background()))
	assert.NoError(t, p.Run(context.Background()))
	assert.Equal(t, Requested, p.State())
	assert.Equal(t, 1, perm.asked)
}

func TestNewPushPrompt_DefaultDelay(t *testing.T) {
	p := NewPushPrompt(&fixedPermission{}, nil, 0, zerolog.Nop())
	assert.Equal(t, DefaultPromptDelay, p.delay)
}
