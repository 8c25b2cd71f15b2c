package chat

import (
	"context"
	"sync"
	"time"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/data"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/pubsub"

	"github.com/rs/zerolog"
)

// Appender is the write side of the Message Store.
type Appender interface {
	Append(ctx context.Context, listingID, senderID, recipientID, content string) (*data.Message, error)
}

// Notifier alerts a recipient out-of-band about a new message.
type Notifier interface {
	NotifyNewMessage(ctx context.Context, m data.Message) error
}

// Service sends messages: persist, publish, then notify.
type Service struct {
	store         Appender
	bus           pubsub.Bus
	notifier      Notifier
	notifyTimeout time.Duration
	log           zerolog.Logger

	wg sync.WaitGroup
}

// NewService returns a Service. notifier may be nil.
func NewService(store Appender, bus pubsub.Bus, notifier Notifier, notifyTimeout time.Duration, log zerolog.Logger) *Service {
	if notifyTimeout <= 0 {
		notifyTimeout = 10 * time.Second
	}
	return &Service{store: store, bus: bus, notifier: notifier, notifyTimeout: notifyTimeout, log: log}
}

// Send stores a message and returns it once persisted. Nothing is published
// or pushed when the append fails; there is no retry.
func (s *Service) Send(ctx context.Context, listingID, senderID, recipientID, content string) (*data.Message, error) {
	m, err := s.store.Append(ctx, listingID, senderID, recipientID, content)
	if err != nil {
		return nil, err
	}

	// The message is committed; a caller hanging up must not stop subscribers
	// from hearing about it.
	pubCtx := context.WithoutCancel(ctx)
	ev := Event{Kind: EventAppended, Message: m}
	err = publish(pubCtx, s.bus, ev,
		pubsub.ThreadTopic(m.ListingID, m.SenderID, m.RecipientID),
		pubsub.UserTopic(m.SenderID),
		pubsub.UserTopic(m.RecipientID),
	)
	if err != nil {
		s.log.Warn().Err(err).Str("msg_id", m.ID.Hex()).Msg("append event not fully delivered")
	}

	if s.notifier != nil {
		s.wg.Add(1)
		go s.notify(*m)
	}
	return m, nil
}

func (s *Service) notify(m data.Message) {
	defer s.wg.Done()
	ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
	defer cancel()

	if err := s.notifier.NotifyNewMessage(ctx, m); err != nil {
		s.log.Error().Err(err).
			Str("msg_id", m.ID.Hex()).
			Str("user_id", m.RecipientID).
			Msg("push notification failed")
	}
}

// Wait blocks until in-flight notifications finish.
func (s *Service) Wait() {
	s.wg.Wait()
}
