package chat

import (
	"bytes"
	"context"
	"sort"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/data"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/normalize"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	fallbackTitle = "Listing"
	fallbackName  = "User"
)

// Index groups one user's messages into conversations. A full rebuild and
// a stream of incremental additions go through the same Add, so both
// produce the same view. Index is not safe for concurrent use.
type Index struct {
	userID  string
	entries map[data.ConversationKey]*entry
	seen    map[bson.ObjectID]data.ConversationKey
}

type entry struct {
	last   data.Message
	unread map[bson.ObjectID]struct{}
}

// NewIndex returns an empty index for userID.
func NewIndex(userID string) *Index {
	return &Index{
		userID:  normalize.ID(userID),
		entries: make(map[data.ConversationKey]*entry),
		seen:    make(map[bson.ObjectID]data.ConversationKey),
	}
}

// Add folds m into the index. It returns false when m was already added or
// does not involve the index owner.
func (x *Index) Add(m data.Message) bool {
	if _, ok := x.seen[m.ID]; ok {
		return false
	}
	if m.SenderID != x.userID && m.RecipientID != x.userID {
		return false
	}
	key := data.KeyFor(&m, x.userID)
	x.seen[m.ID] = key

	e, ok := x.entries[key]
	if !ok {
		e = &entry{last: m, unread: make(map[bson.ObjectID]struct{})}
		x.entries[key] = e
	} else if m.After(&e.last) {
		// last_message only moves forward, whatever order events arrive in
		e.last = m
	}
	if m.RecipientID == x.userID && !m.Read {
		e.unread[m.ID] = struct{}{}
	}
	return true
}

// Has reports whether a message id is already indexed.
func (x *Index) Has(id bson.ObjectID) bool {
	_, ok := x.seen[id]
	return ok
}

// ClearUnread marks every indexed message of key as read.
func (x *Index) ClearUnread(key data.ConversationKey) {
	e, ok := x.entries[key]
	if !ok {
		return
	}
	clear(e.unread)
	if e.last.RecipientID == x.userID {
		e.last.Read = true
	}
}

// MarkMessageRead drops one message from its conversation's unread set.
func (x *Index) MarkMessageRead(id bson.ObjectID) {
	key, ok := x.seen[id]
	if !ok {
		return
	}
	e := x.entries[key]
	delete(e.unread, id)
	if e.last.ID == id {
		e.last.Read = true
	}
}

// Unread returns the unread count of key.
func (x *Index) Unread(key data.ConversationKey) int {
	if e, ok := x.entries[key]; ok {
		return len(e.unread)
	}
	return 0
}

// Merge folds a fetched thread of key into the index. Unknown messages are
// added and known ones only ever move from unread to read, so a fetch that
// raced newer events cannot take the conversation backwards.
func (x *Index) Merge(key data.ConversationKey, thread []*data.Message) {
	for _, m := range thread {
		if data.KeyFor(m, x.userID) != key {
			continue
		}
		if !x.Add(*m) && m.Read {
			x.MarkMessageRead(m.ID)
		}
	}
}

// Conversations returns the current view, newest conversation first.
func (x *Index) Conversations() []data.Conversation {
	convs := make([]data.Conversation, 0, len(x.entries))
	for key, e := range x.entries {
		convs = append(convs, data.Conversation{
			ListingID:   key.ListingID,
			OtherUserID: key.OtherUserID,
			LastMessage: e.last,
			UnreadCount: len(e.unread),
		})
	}
	SortConversations(convs)
	return convs
}

// SortConversations orders by last message created_at descending, with the
// message id descending as tiebreak.
func SortConversations(convs []data.Conversation) {
	sort.Slice(convs, func(i, j int) bool {
		a, b := &convs[i].LastMessage, &convs[j].LastMessage
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return bytes.Compare(a.ID[:], b.ID[:]) > 0
	})
}

// Aggregate is the full rebuild: a pure function of the user's messages.
func Aggregate(userID string, msgs []*data.Message) []data.Conversation {
	x := NewIndex(userID)
	for _, m := range msgs {
		x.Add(*m)
	}
	return x.Conversations()
}

// MessageLister reads a user's whole message log.
type MessageLister interface {
	ListAllForUser(ctx context.Context, userID string) ([]*data.Message, error)
}

// Directory resolves the foreign listing and profile lookups shown next to
// a conversation.
type Directory interface {
	GetListing(ctx context.Context, id string) (*data.Listing, error)
	GetProfile(ctx context.Context, userID string) (*data.Profile, error)
}

// Aggregator builds conversation lists from the Message Store. It holds no
// state between calls.
type Aggregator struct {
	messages MessageLister
	dir      Directory
}

// NewAggregator returns an Aggregator. dir may be nil, in which case titles
// and names are left empty.
func NewAggregator(messages MessageLister, dir Directory) *Aggregator {
	return &Aggregator{messages: messages, dir: dir}
}

// BuildConversations fetches every message of userID and groups them.
func (a *Aggregator) BuildConversations(ctx context.Context, userID string) ([]data.Conversation, error) {
	msgs, err := a.messages.ListAllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	convs := Aggregate(userID, msgs)
	a.Enrich(ctx, convs)
	return convs, nil
}

// Enrich fills listing titles and counterpart names, one lookup per
// distinct id. Missing or failing lookups fall back to generic labels.
func (a *Aggregator) Enrich(ctx context.Context, convs []data.Conversation) {
	if a.dir == nil {
		return
	}
	titles := make(map[string]string)
	names := make(map[string]string)

	for i := range convs {
		c := &convs[i]
		title, ok := titles[c.ListingID]
		if !ok {
			title = fallbackTitle
			if l, err := a.dir.GetListing(ctx, c.ListingID); err == nil && l.Title != "" {
				title = l.Title
			}
			titles[c.ListingID] = title
		}
		c.ListingTitle = title

		name, ok := names[c.OtherUserID]
		if !ok {
			p, err := a.dir.GetProfile(ctx, c.OtherUserID)
			if err != nil {
				p = nil
			}
			name = p.Name(fallbackName)
			names[c.OtherUserID] = name
		}
		c.OtherUserName = name
	}
}
