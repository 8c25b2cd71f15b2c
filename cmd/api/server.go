package main

import (
	"context"
	"time"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/chat"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/data"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/pubsub"
	v1 "github.com/PaulBabatuyi/listingChat-gRPC/proto/market/v1"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
)

// Store is everything the service reads and writes. *data.MemoryStore
// implements it, and so does mongoStore.
type Store interface {
	Append(ctx context.Context, listingID, senderID, recipientID, content string) (*data.Message, error)
	ListThread(ctx context.Context, listingID, userA, userB string) ([]*data.Message, error)
	ListAllForUser(ctx context.Context, userID string) ([]*data.Message, error)
	chat.ReadMarker
	chat.UnreadCounter
	chat.Directory
	chat.SalesDirectory
	UpsertSubscription(ctx context.Context, sub data.PushSubscription) error
	GetSubscription(ctx context.Context, userID string) (*data.PushSubscription, error)
}

// mongoStore joins the MongoDB stores into one Store.
type mongoStore struct {
	*data.MessagesStore
	*data.DirectoryStore
	*data.PushStore
}

// Server implements the messaging service on top of the chat components.
type Server struct {
	v1.UnimplementedMessagingServiceServer

	store      Store
	bus        pubsub.Bus
	sender     *chat.Service
	aggregator *chat.Aggregator
	reconciler *chat.Reconciler
	counter    *chat.Counter
	log        zerolog.Logger
}

// newServer returns a ready-to-use Server. notifier may be nil.
func newServer(store Store, bus pubsub.Bus, notifier chat.Notifier, notifyTimeout time.Duration, log zerolog.Logger) *Server {
	return &Server{
		store:      store,
		bus:        bus,
		sender:     chat.NewService(store, bus, notifier, notifyTimeout, log),
		aggregator: chat.NewAggregator(store, store),
		reconciler: chat.NewReconciler(store, bus, nil, log),
		counter:    chat.NewCounter(store, store),
		log:        log,
	}
}

// registerService registers the MessagingService on the given gRPC server.
func registerService(s *grpc.Server, srv *Server) {
	v1.RegisterMessagingServiceServer(s, srv)
}
