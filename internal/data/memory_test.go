package data

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_AppendValidates(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	cases := []struct {
		name                          string
		listing, sender, recipient, c string
	}{
		{"empty content", listingL, alice, bob, ""},
		{"whitespace content", listingL, alice, bob, " \n\t "},
		{"self message", listingL, alice, " " + alice + " ", "hello"},
		{"missing listing", "", alice, bob, "hello"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Append(ctx, tc.listing, tc.sender, tc.recipient, tc.c)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	all, err := s.ListAllForUser(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, all, "rejected messages must not be stored")
}

func TestMemoryStore_ThreadIsSymmetricAndOrdered(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	s.Now = func() time.Time { tick++; return base.Add(time.Duration(tick) * time.Second) }

	_, err := s.Append(ctx, listingL, alice, bob, "one")
	require.NoError(t, err)
	_, err = s.Append(ctx, listingL, bob, alice, "two")
	require.NoError(t, err)
	_, err = s.Append(ctx, listingL, alice, carol, "elsewhere")
	require.NoError(t, err)

	ab, err := s.ListThread(ctx, listingL, alice, bob)
	require.NoError(t, err)
	ba, err := s.ListThread(ctx, listingL, bob, alice)
	require.NoError(t, err)

	require.Len(t, ab, 2)
	assert.Equal(t, ab, ba)
	assert.Equal(t, "one", ab[0].Content)
	assert.Equal(t, "two", ab[1].Content)

	all, err := s.ListAllForUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "elsewhere", all[0].Content)
}

func TestMemoryStore_MarkReadTransitionsOnce(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	m, err := s.Append(ctx, listingL, alice, bob, "hi")
	require.NoError(t, err)
	_, err = s.Append(ctx, listingL, bob, alice, "reply")
	require.NoError(t, err)

	n, err := s.MarkRead(ctx, listingL, alice, bob)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = s.MarkRead(ctx, listingL, alice, bob)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	n, err = s.MarkMessageRead(ctx, m.ID, bob)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	// alice's incoming reply is untouched
	unread, err := s.CountUnread(ctx, alice)
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread)
}

func TestMemoryStore_PushSubscriptionIsSinglePerUser(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.UpsertSubscription(ctx, PushSubscription{UserID: alice, Endpoint: "https://push.example/a"}))
	require.NoError(t, s.UpsertSubscription(ctx, PushSubscription{UserID: alice, Endpoint: "https://push.example/b"}))

	sub, err := s.GetSubscription(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, "https://push.example/b", sub.Endpoint)

	_, err = s.GetSubscription(ctx, bob)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileName(t *testing.T) {
	var missing *Profile
	assert.Equal(t, "User", missing.Name("User"))
	assert.Equal(t, "ham42", (&Profile{Callsign: "ham42"}).Name("User"))
	assert.Equal(t, "Ham Radio", (&Profile{Callsign: "ham42", DisplayName: "Ham Radio"}).Name("User"))
}
