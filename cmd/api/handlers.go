package main

import (
	"context"
	"errors"
	"strings"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/data"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/normalize"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/pubsub"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/wire"
	v1 "github.com/PaulBabatuyi/listingChat-gRPC/proto/market/v1"

	"go.mongodb.org/mongo-driver/v2/bson"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// toStatus maps domain errors onto gRPC codes. Persistence details stay in
// the log.
func (s *Server) toStatus(op string, err error) error {
	switch {
	case errors.Is(err, data.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, data.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request cancelled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	}
	s.log.Error().Err(err).Str("op", op).Msg("request failed")
	return status.Errorf(codes.Internal, "failed to %s", op)
}

// SendMessage stores a message from the caller and fans it out.
func (s *Server) SendMessage(ctx context.Context, req *v1.SendMessageRequest) (*v1.Message, error) {
	me, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	m, err := s.sender.Send(ctx, req.GetListingId(), me, req.GetRecipientId(), req.GetContent())
	if err != nil {
		return nil, s.toStatus("send message", err)
	}
	return wire.FromMessage(m), nil
}

// ListConversations returns the caller's conversation list. A storage
// failure yields an empty list rather than an error.
func (s *Server) ListConversations(ctx context.Context, _ *emptypb.Empty) (*v1.ListConversationsResponse, error) {
	me, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	resp := &v1.ListConversationsResponse{Conversations: []*v1.Conversation{}}
	convs, err := s.aggregator.BuildConversations(ctx, me)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", me).Msg("conversation list degraded to empty")
		return resp, nil
	}
	for i := range convs {
		resp.Conversations = append(resp.Conversations, wire.FromConversation(&convs[i]))
	}
	return resp, nil
}

// ListMessages returns every message the caller sent or received.
func (s *Server) ListMessages(ctx context.Context, _ *emptypb.Empty) (*v1.ListMessagesResponse, error) {
	me, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	msgs, err := s.store.ListAllForUser(ctx, me)
	if err != nil {
		return nil, s.toStatus("list messages", err)
	}
	return &v1.ListMessagesResponse{Messages: wire.FromMessages(msgs)}, nil
}

// GetThread returns the caller's thread with another user, oldest first.
// A storage failure yields an empty thread.
func (s *Server) GetThread(ctx context.Context, req *v1.GetThreadRequest) (*v1.GetThreadResponse, error) {
	me, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireIDs(req.GetListingId(), req.GetOtherUserId()); err != nil {
		return nil, err
	}
	msgs, err := s.store.ListThread(ctx, req.GetListingId(), me, req.GetOtherUserId())
	if err != nil {
		s.log.Error().Err(err).Str("user_id", me).Str("listing_id", req.GetListingId()).Msg("thread degraded to empty")
		msgs = nil
	}
	return &v1.GetThreadResponse{Messages: wire.FromMessages(msgs)}, nil
}

// MarkRead marks what the other user sent the caller on a listing as read.
func (s *Server) MarkRead(ctx context.Context, req *v1.MarkReadRequest) (*v1.MarkReadResponse, error) {
	me, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireIDs(req.GetListingId(), req.GetOtherUserId()); err != nil {
		return nil, err
	}
	n, err := s.reconciler.MarkRead(ctx, req.GetListingId(), req.GetOtherUserId(), me)
	if err != nil {
		return nil, s.toStatus("mark read", err)
	}
	return &v1.MarkReadResponse{Transitioned: n}, nil
}

// MarkMessageRead marks a single message addressed to the caller as read.
func (s *Server) MarkMessageRead(ctx context.Context, req *v1.MarkMessageReadRequest) (*v1.MarkReadResponse, error) {
	me, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := bson.ObjectIDFromHex(strings.TrimSpace(req.GetMessageId()))
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid message_id %q", req.GetMessageId())
	}
	n, err := s.reconciler.MarkMessageRead(ctx, req.GetListingId(), req.GetSenderId(), id, me)
	if err != nil {
		return nil, s.toStatus("mark message read", err)
	}
	return &v1.MarkReadResponse{Transitioned: n}, nil
}

// GetNotificationCounts returns the caller's badge breakdown.
func (s *Server) GetNotificationCounts(ctx context.Context, _ *emptypb.Empty) (*v1.NotificationCounts, error) {
	me, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.counter.ComputeCounts(ctx, me)
	if err != nil {
		return nil, s.toStatus("compute counts", err)
	}
	return wire.FromCounts(c), nil
}

// RegisterPush stores the caller's push endpoint, replacing any previous one.
func (s *Server) RegisterPush(ctx context.Context, req *v1.RegisterPushRequest) (*emptypb.Empty, error) {
	me, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if req.GetEndpoint() == "" || req.GetP256Dh() == "" || req.GetAuth() == "" {
		return nil, status.Error(codes.InvalidArgument, "endpoint, p256dh and auth are required")
	}
	err = s.store.UpsertSubscription(ctx, data.PushSubscription{
		UserID:   me,
		Endpoint: req.GetEndpoint(),
		Keys:     data.PushKeys{P256dh: req.GetP256Dh(), Auth: req.GetAuth()},
	})
	if err != nil {
		return nil, s.toStatus("register push", err)
	}
	return &emptypb.Empty{}, nil
}

// Subscribe relays bus events to the caller until the stream ends. The
// response header is sent once the bus subscription is live, so a client
// that waits for it cannot miss later events.
func (s *Server) Subscribe(req *v1.SubscribeRequest, stream grpc.ServerStreamingServer[v1.Event]) error {
	ctx := stream.Context()
	me, err := callerID(ctx)
	if err != nil {
		return err
	}

	var topic string
	listing, other := normalize.ID(req.GetListingId()), normalize.ID(req.GetOtherUserId())
	switch {
	case listing == "" && other == "":
		topic = pubsub.UserTopic(me)
	case listing != "" && other != "":
		topic = pubsub.ThreadTopic(listing, me, other)
	default:
		return status.Error(codes.InvalidArgument, "listing_id and other_user_id must be given together")
	}

	sub, err := s.bus.Subscribe(ctx, topic)
	if err != nil {
		return s.toStatus("subscribe", err)
	}
	defer sub.Close()

	if err := stream.SendHeader(metadata.Pairs(wire.SubscriptionHeader, sub.ID)); err != nil {
		return err
	}
	s.log.Debug().Str("user_id", me).Str("topic", topic).Msg("subscriber attached")

	for payload := range sub.C {
		if err := stream.Send(&v1.Event{Topic: topic, Payload: payload}); err != nil {
			return err
		}
	}
	if ctx.Err() != nil {
		return nil
	}
	return status.Error(codes.Unavailable, "subscription closed")
}

func requireIDs(listingID, otherUserID string) error {
	if normalize.ID(listingID) == "" || normalize.ID(otherUserID) == "" {
		return status.Error(codes.InvalidArgument, "listing_id and other_user_id are required")
	}
	return nil
}
