package chat

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/data"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestAggregate_FirstMessageShowsForRecipient(t *testing.T) {
	m := msg(listingL, alice, bob, "Is this still available?", 0)

	convs := Aggregate(bob, ptrs(m))

	require.Len(t, convs, 1)
	assert.Equal(t, listingL, convs[0].ListingID)
	assert.Equal(t, alice, convs[0].OtherUserID)
	assert.Equal(t, 1, convs[0].UnreadCount)
	assert.Equal(t, "Is this still available?", convs[0].LastMessage.Content)

	// the sender sees the same conversation with nothing unread
	mine := Aggregate(alice, ptrs(m))
	require.Len(t, mine, 1)
	assert.Equal(t, bob, mine[0].OtherUserID)
	assert.Equal(t, 0, mine[0].UnreadCount)
}

func TestAggregate_BothDirectionsShareOneConversation(t *testing.T) {
	msgs := ptrs(
		msg(listingL, alice, bob, "hi", 0),
		msg(listingL, bob, alice, "hello", 1),
		msg(listingL, alice, bob, "still there?", 2),
	)

	for _, viewer := range []string{alice, bob} {
		convs := Aggregate(viewer, msgs)
		require.Len(t, convs, 1, "viewer %s", viewer)
		assert.Equal(t, "still there?", convs[0].LastMessage.Content)
	}
	assert.Equal(t, 2, Aggregate(bob, msgs)[0].UnreadCount)
	assert.Equal(t, 1, Aggregate(alice, msgs)[0].UnreadCount)
}

func TestAggregate_SeparatesListingsAndCounterparts(t *testing.T) {
	msgs := ptrs(
		msg(listingL, alice, bob, "L with bob", 0),
		msg(listingM, alice, bob, "M with bob", 1),
		msg(listingL, carol, alice, "L with carol", 2),
	)

	convs := Aggregate(alice, msgs)

	require.Len(t, convs, 3)
	assert.Equal(t, "L with carol", convs[0].LastMessage.Content)
	assert.Equal(t, "M with bob", convs[1].LastMessage.Content)
	assert.Equal(t, "L with bob", convs[2].LastMessage.Content)
}

func TestAggregate_ReadMessagesAreNotCounted(t *testing.T) {
	read := msg(listingL, alice, bob, "old", 0)
	read.Read = true
	unread := msg(listingL, alice, bob, "new", 1)

	convs := Aggregate(bob, ptrs(read, unread))
	require.Len(t, convs, 1)
	assert.Equal(t, 1, convs[0].UnreadCount)
}

func TestSortConversations_TiesBrokenByIDDescending(t *testing.T) {
	a := msg(listingL, alice, bob, "a", 0)
	b := msg(listingM, alice, carol, "b", 0)
	require.NotEqual(t, a.ID, b.ID)
	// b was generated after a, so its id is larger
	convs := Aggregate(alice, ptrs(a, b))

	require.Len(t, convs, 2)
	assert.Equal(t, "b", convs[0].LastMessage.Content)
	assert.Equal(t, "a", convs[1].LastMessage.Content)

	// and strictly by time when timestamps differ, regardless of id
	c := msg(listingL, carol, alice, "c", -5)
	convs = Aggregate(alice, ptrs(c, a, b))
	assert.Equal(t, "c", convs[2].LastMessage.Content)
}

func TestIndex_LastMessageTieOnTimestamp(t *testing.T) {
	first := msg(listingL, alice, bob, "first", 0)
	second := msg(listingL, bob, alice, "second", 0)

	x := NewIndex(alice)
	x.Add(second)
	x.Add(first)

	convs := x.Conversations()
	require.Len(t, convs, 1)
	assert.Equal(t, "second", convs[0].LastMessage.Content, "larger id wins the tie")
}

func TestIndex_DuplicateAddIsNoop(t *testing.T) {
	m := msg(listingL, alice, bob, "ping", 0)
	x := NewIndex(bob)

	assert.True(t, x.Add(m))
	assert.False(t, x.Add(m))
	assert.Equal(t, 1, x.Unread(data.ConversationKey{ListingID: listingL, OtherUserID: alice}))
}

func TestIndex_IgnoresForeignMessages(t *testing.T) {
	x := NewIndex(carol)
	assert.False(t, x.Add(msg(listingL, alice, bob, "not yours", 0)))
	assert.Empty(t, x.Conversations())
}

func TestIndex_OutOfOrderDoesNotRegressLastMessage(t *testing.T) {
	newer := msg(listingL, alice, bob, "newer", 10)
	older := msg(listingL, alice, bob, "older", 1)

	x := NewIndex(bob)
	x.Add(newer)
	x.Add(older)

	convs := x.Conversations()
	require.Len(t, convs, 1)
	assert.Equal(t, "newer", convs[0].LastMessage.Content)
	assert.Equal(t, 2, convs[0].UnreadCount)
}

func TestIndex_IncrementalMatchesRebuild(t *testing.T) {
	users := []string{alice, bob, carol}
	listings := []string{listingL, listingM}
	r := rand.New(rand.NewSource(7))

	var log []data.Message
	for i := 0; i < 200; i++ {
		from := users[r.Intn(len(users))]
		to := users[r.Intn(len(users))]
		if from == to {
			continue
		}
		m := msg(listings[r.Intn(len(listings))], from, to, "m", r.Intn(50))
		m.Read = r.Intn(3) == 0
		log = append(log, m)
	}

	for _, viewer := range users {
		want := Aggregate(viewer, ptrs(log...))

		// replay shuffled with every event delivered twice
		x := NewIndex(viewer)
		order := r.Perm(len(log))
		for _, i := range order {
			x.Add(log[i])
			x.Add(log[i])
		}
		assert.Equal(t, want, x.Conversations(), "viewer %s", viewer)
	}
}

func TestIndex_ClearUnreadAndMerge(t *testing.T) {
	m1 := msg(listingL, alice, bob, "one", 0)
	m2 := msg(listingL, alice, bob, "two", 1)
	key := data.ConversationKey{ListingID: listingL, OtherUserID: alice}

	x := NewIndex(bob)
	x.Add(m1)
	x.Add(m2)
	require.Equal(t, 2, x.Unread(key))

	x.MarkMessageRead(m1.ID)
	assert.Equal(t, 1, x.Unread(key))

	x.ClearUnread(key)
	assert.Equal(t, 0, x.Unread(key))
	assert.True(t, x.Conversations()[0].LastMessage.Read)

	// a fetch still showing m2 unread does not bring it back; m3 is new
	m3 := msg(listingL, alice, bob, "three", 2)
	x.Merge(key, ptrs(m1, m2, m3))
	assert.Equal(t, 1, x.Unread(key))
	assert.Equal(t, "three", x.Conversations()[0].LastMessage.Content)
	assert.True(t, x.Has(m3.ID))
}

func TestIndex_MergeKeepsNewerMessages(t *testing.T) {
	m1 := msg(listingL, alice, bob, "hi", 0)
	m2 := msg(listingL, alice, bob, "still there?", 1)
	key := data.ConversationKey{ListingID: listingL, OtherUserID: alice}

	x := NewIndex(bob)
	x.Add(m1)
	x.Add(m2)

	// the fetch was taken before m2 and after m1 was read elsewhere
	read := m1
	read.Read = true
	x.Merge(key, ptrs(read))

	assert.Equal(t, 1, x.Unread(key))
	convs := x.Conversations()
	require.Len(t, convs, 1)
	assert.Equal(t, m2.ID, convs[0].LastMessage.ID)
	assert.False(t, convs[0].LastMessage.Read)

	// messages of other conversations in the fetch are ignored
	other := msg(listingM, carol, bob, "elsewhere", 2)
	x.Merge(key, ptrs(other))
	assert.False(t, x.Has(other.ID))
}

type failingLister struct{}

func (failingLister) ListAllForUser(ctx context.Context, userID string) ([]*data.Message, error) {
	return nil, errors.New("connection reset")
}

type fakeDirectory struct {
	listings map[string]string
	profiles map[string]*data.Profile
	calls    int
}

func (f *fakeDirectory) GetListing(ctx context.Context, id string) (*data.Listing, error) {
	f.calls++
	title, ok := f.listings[id]
	if !ok {
		return nil, data.ErrNotFound
	}
	return &data.Listing{ID: id, Title: title}, nil
}

func (f *fakeDirectory) GetProfile(ctx context.Context, userID string) (*data.Profile, error) {
	f.calls++
	p, ok := f.profiles[userID]
	if !ok {
		return nil, data.ErrNotFound
	}
	return p, nil
}

func TestAggregator_BuildConversationsEnriches(t *testing.T) {
	store := steppedStore()
	ctx := context.Background()
	_, err := store.Append(ctx, listingL, alice, bob, "hi")
	require.NoError(t, err)
	_, err = store.Append(ctx, listingM, carol, bob, "yo")
	require.NoError(t, err)
	_, err = store.Append(ctx, listingL, carol, bob, "me too")
	require.NoError(t, err)

	dir := &fakeDirectory{
		listings: map[string]string{listingL: "Mountain bike"},
		profiles: map[string]*data.Profile{alice: {ID: alice, Callsign: "ally", DisplayName: "Alice"}},
	}
	agg := NewAggregator(store, dir)

	convs, err := agg.BuildConversations(ctx, bob)
	require.NoError(t, err)
	require.Len(t, convs, 3)

	assert.Equal(t, "Mountain bike", convs[0].ListingTitle)
	assert.Equal(t, "User", convs[0].OtherUserName)
	assert.Equal(t, "Listing", convs[1].ListingTitle)
	assert.Equal(t, "Alice", convs[2].OtherUserName)
	// two listings and two counterparts, each looked up once
	assert.Equal(t, 4, dir.calls)
}

func TestAggregator_PropagatesStoreError(t *testing.T) {
	agg := NewAggregator(failingLister{}, nil)
	convs, err := agg.BuildConversations(context.Background(), bob)
	assert.Error(t, err)
	assert.Nil(t, convs)
}

func TestIndex_MarkMessageReadUnknownID(t *testing.T) {
	x := NewIndex(bob)
	x.MarkMessageRead(bson.NewObjectID())
	assert.Empty(t, x.Conversations())
}
