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

// Session is one signed-in client. It holds the conversation list and at
// most one open thread, and patches both from bus events. State changes
// happen under mu; store and network calls happen outside it.
type Session struct {
	user   string
	reader Reader
	marker ReadMarker
	source Source
	read   *pubsub.Signal
	log    zerolog.Logger

	mu     sync.Mutex
	index  *chat.Index
	thread *Thread

	// while a rebuild is fetching, every change made to index is also
	// queued here and replayed onto the rebuilt index before the swap
	rebuilds int
	pending  []func(*chat.Index)
}

// NewSession returns a session for userID. read is raised whenever this
// session turned messages read.
func NewSession(userID string, reader Reader, marker ReadMarker, source Source, read *pubsub.Signal, log zerolog.Logger) *Session {
	userID = normalize.ID(userID)
	if read == nil {
		read = &pubsub.Signal{}
	}
	return &Session{
		user:   userID,
		reader: reader,
		marker: marker,
		source: source,
		read:   read,
		log:    log.With().Str("user_id", userID).Logger(),
		index:  chat.NewIndex(userID),
	}
}

// Refresh rebuilds the conversation list from the store. Changes applied
// while the fetch runs are carried over. On failure the list is empty and
// the error is returned.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.rebuilds++
	s.mu.Unlock()

	msgs, err := s.reader.ListAllForUser(ctx, s.user)

	x := chat.NewIndex(s.user)
	if err == nil {
		for _, m := range msgs {
			x.Add(*m)
		}
	}

	s.mu.Lock()
	if err == nil {
		for _, fn := range s.pending {
			fn(x)
		}
		if t := s.thread; t != nil {
			x.ClearUnread(t.Key())
		}
	}
	s.rebuilds--
	if s.rebuilds == 0 {
		s.pending = nil
	}
	s.index = x
	s.mu.Unlock()

	if err != nil {
		s.log.Error().Err(err).Msg("conversation rebuild failed")
		return fmt.Errorf("refresh conversations: %w", err)
	}
	return nil
}

// mutate applies fn to the index and queues it for any rebuild in flight.
// Callers hold mu.
func (s *Session) mutate(fn func(*chat.Index)) {
	fn(s.index)
	if s.rebuilds > 0 {
		s.pending = append(s.pending, fn)
	}
}

// Conversations returns the current list, newest first.
func (s *Session) Conversations() []data.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Conversations()
}

// Unread returns the unread count of one conversation.
func (s *Session) Unread(key data.ConversationKey) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Unread(key)
}

// Open makes the thread with other on listingID the open thread. The
// previous thread, if any, is closed. The thread stays subscribed until ctx
// is done, it is replaced, or the subscription drops.
func (s *Session) Open(ctx context.Context, listingID, other string) (*Thread, error) {
	listingID, other = normalize.ID(listingID), normalize.ID(other)
	t := newThread(listingID, s.user, other)

	// subscribe before fetching so nothing sent in between is missed
	sub, err := s.source.SubscribeThread(ctx, listingID, s.user, other)
	if err != nil {
		return nil, fmt.Errorf("subscribe thread: %w", err)
	}
	t.subscribed(sub.Close)

	msgs, err := s.reader.ListThread(ctx, listingID, s.user, other)
	if err != nil {
		s.log.Warn().Err(err).Str("listing_id", listingID).Msg("thread fetch failed")
		msgs = nil
	}
	t.Merge(msgs)

	s.mu.Lock()
	prev := s.thread
	s.thread = t
	s.mu.Unlock()
	if prev != nil {
		prev.Close()
	}

	go s.pump(ctx, t, sub)

	s.markThreadRead(ctx, t)
	return t, nil
}

// Thread returns the open thread or nil.
func (s *Session) Thread() *Thread {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.thread
}

// CloseThread closes the open thread.
func (s *Session) CloseThread() {
	s.mu.Lock()
	t := s.thread
	s.thread = nil
	s.mu.Unlock()
	if t != nil {
		t.Close()
	}
}

// Run consumes the user topic until ctx is done or the subscription drops.
func (s *Session) Run(ctx context.Context) error {
	sub, err := s.source.SubscribeUser(ctx, s.user)
	if err != nil {
		return fmt.Errorf("subscribe user: %w", err)
	}
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case p, ok := <-sub.C:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return ErrUnsubscribed
			}
			s.handle(ctx, p)
		}
	}
}

func (s *Session) pump(ctx context.Context, t *Thread, sub *pubsub.Subscription) {
	defer t.unsubscribed()
	for p := range sub.C {
		s.handle(ctx, p)
	}
}

func (s *Session) handle(ctx context.Context, payload []byte) {
	ev, err := chat.DecodeEvent(payload)
	if err != nil {
		s.log.Warn().Err(err).Msg("dropping undecodable event")
		return
	}
	switch ev.Kind {
	case chat.EventAppended:
		s.applyAppended(ctx, *ev.Message)
	case chat.EventRead:
		s.applyRead(ctx, ev)
	}
}

func (s *Session) applyAppended(ctx context.Context, m data.Message) {
	s.mu.Lock()
	t := s.thread
	open := t != nil && t.Matches(&m)
	inThread := open && t.Insert(m)
	inIndex := !s.index.Has(m.ID)
	s.mutate(func(x *chat.Index) { x.Add(m) })
	autoRead := open && (inThread || inIndex) && m.RecipientID == s.user && !m.Read
	if autoRead {
		s.mutate(func(x *chat.Index) { x.MarkMessageRead(m.ID) })
	}
	s.mu.Unlock()

	if !autoRead {
		return
	}
	n, err := s.marker.MarkMessageRead(ctx, m.ListingID, m.SenderID, m.ID, s.user)
	if err != nil {
		s.log.Warn().Err(err).Str("msg_id", m.ID.Hex()).Msg("auto-read failed")
		return
	}
	if n > 0 {
		s.read.Notify()
	}
}

// applyRead handles another session of this user reading a thread. The
// conversation is refetched and merged; read flags only move forward, so
// messages that arrived after the fetch keep their state.
func (s *Session) applyRead(ctx context.Context, ev chat.Event) {
	if ev.ReaderID != s.user {
		return
	}
	key := data.ConversationKey{ListingID: ev.ListingID, OtherUserID: ev.CounterpartID}
	msgs, err := s.reader.ListThread(ctx, ev.ListingID, s.user, ev.CounterpartID)
	if err != nil {
		s.log.Warn().Err(err).Str("listing_id", ev.ListingID).Msg("thread refetch failed")
		return
	}

	s.mu.Lock()
	s.mutate(func(x *chat.Index) { x.Merge(key, msgs) })
	t := s.thread
	if t != nil && t.Key() == key {
		s.mutate(func(x *chat.Index) { x.ClearUnread(key) })
	}
	s.mu.Unlock()

	if t != nil && t.Key() == key {
		t.Merge(msgs)
	}
}

func (s *Session) markThreadRead(ctx context.Context, t *Thread) {
	n, err := s.marker.MarkRead(ctx, t.ListingID, t.Other, s.user)
	if err != nil {
		// rows stay unread; the next Open retries
		s.log.Warn().Err(err).Str("listing_id", t.ListingID).Msg("mark read failed")
	}

	key := t.Key()
	s.mu.Lock()
	s.mutate(func(x *chat.Index) { x.ClearUnread(key) })
	s.mu.Unlock()

	if n > 0 {
		s.read.Notify()
	}
}
