package realtime

import (
	"sort"
	"sync"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/data"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/pubsub"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// State is the subscription state of an open thread.
type State int

const (
	Idle State = iota
	Subscribed
	Unsubscribed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Subscribed:
		return "subscribed"
	case Unsubscribed:
		return "unsubscribed"
	}
	return "unknown"
}

// Thread is the client copy of one conversation, kept in (created_at, id)
// order whatever order messages arrive in.
type Thread struct {
	ListingID string
	Me        string
	Other     string

	mu      sync.Mutex
	state   State
	msgs    []data.Message
	ids     map[bson.ObjectID]struct{}
	stop    func()
	changed pubsub.Signal
}

func newThread(listingID, me, other string) *Thread {
	return &Thread{
		ListingID: listingID,
		Me:        me,
		Other:     other,
		ids:       make(map[bson.ObjectID]struct{}),
	}
}

// Key is the conversation list entry this thread maps to.
func (t *Thread) Key() data.ConversationKey {
	return data.ConversationKey{ListingID: t.ListingID, OtherUserID: t.Other}
}

// Matches reports whether m belongs to this thread.
func (t *Thread) Matches(m *data.Message) bool {
	return m.Involves(t.ListingID, t.Me, t.Other)
}

// Insert places m by order. It returns false for a message already held.
func (t *Thread) Insert(m data.Message) bool {
	t.mu.Lock()
	ok := t.insert(m)
	t.mu.Unlock()
	if ok {
		t.changed.Notify()
	}
	return ok
}

func (t *Thread) insert(m data.Message) bool {
	if _, ok := t.ids[m.ID]; ok {
		return false
	}
	i := sort.Search(len(t.msgs), func(i int) bool { return t.msgs[i].After(&m) })
	t.msgs = append(t.msgs, data.Message{})
	copy(t.msgs[i+1:], t.msgs[i:])
	t.msgs[i] = m
	t.ids[m.ID] = struct{}{}
	return true
}

// Merge folds a fetched thread in by id. New messages are inserted; known
// ones can only turn read.
func (t *Thread) Merge(msgs []*data.Message) {
	t.mu.Lock()
	for _, m := range msgs {
		if _, ok := t.ids[m.ID]; !ok {
			t.insert(*m)
			continue
		}
		for i := range t.msgs {
			if t.msgs[i].ID == m.ID {
				t.msgs[i].Read = t.msgs[i].Read || m.Read
				break
			}
		}
	}
	t.mu.Unlock()
	t.changed.Notify()
}

// Messages returns a copy of the thread, oldest first.
func (t *Thread) Messages() []data.Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]data.Message(nil), t.msgs...)
}

// State returns the subscription state.
func (t *Thread) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Changes fires after the thread content or state changed.
func (t *Thread) Changes() (<-chan struct{}, func()) {
	return t.changed.Watch()
}

func (t *Thread) subscribed(stop func()) {
	t.mu.Lock()
	t.state = Subscribed
	t.stop = stop
	t.mu.Unlock()
	t.changed.Notify()
}

func (t *Thread) unsubscribed() {
	t.mu.Lock()
	t.state = Unsubscribed
	t.mu.Unlock()
	t.changed.Notify()
}

// Close ends the thread subscription.
func (t *Thread) Close() {
	t.mu.Lock()
	stop := t.stop
	t.mu.Unlock()
	if stop != nil {
		stop()
	}
}
