// Package remote lets the realtime client run against the gRPC API instead
// of in-process stores. Client satisfies realtime.Reader, ReadMarker,
// Source, CountSource and Registrar.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/data"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/normalize"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/pubsub"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/wire"
	v1 "github.com/PaulBabatuyi/listingChat-gRPC/proto/market/v1"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const eventBuffer = 64

// Client calls the messaging service as one user.
type Client struct {
	rpc   v1.MessagingServiceClient
	token string
	log   zerolog.Logger
}

// New returns a Client sending token as the bearer credential.
func New(cc grpc.ClientConnInterface, token string, log zerolog.Logger) *Client {
	return &Client{rpc: v1.NewMessagingServiceClient(cc), token: token, log: log}
}

func (c *Client) auth(ctx context.Context) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+c.token)
}

// fromStatus turns validation and lookup codes back into data sentinels.
func fromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", data.ErrValidation, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", data.ErrNotFound, st.Message())
	}
	return err
}

// Send sends a message as the signed-in user.
func (c *Client) Send(ctx context.Context, listingID, recipientID, content string) (*data.Message, error) {
	m, err := c.rpc.SendMessage(c.auth(ctx), &v1.SendMessageRequest{
		ListingId:   listingID,
		RecipientId: recipientID,
		Content:     content,
	})
	if err != nil {
		return nil, fromStatus(err)
	}
	return wire.ToMessage(m)
}

// Conversations returns the server-built, enriched conversation list.
func (c *Client) Conversations(ctx context.Context) ([]*v1.Conversation, error) {
	resp, err := c.rpc.ListConversations(c.auth(ctx), &emptypb.Empty{})
	if err != nil {
		return nil, fromStatus(err)
	}
	return resp.GetConversations(), nil
}

// ListAllForUser ignores userID; the server answers for the token's user.
func (c *Client) ListAllForUser(ctx context.Context, _ string) ([]*data.Message, error) {
	resp, err := c.rpc.ListMessages(c.auth(ctx), &emptypb.Empty{})
	if err != nil {
		return nil, fromStatus(err)
	}
	return wire.ToMessages(resp.GetMessages())
}

// ListThread fetches the thread between the signed-in user and whichever of
// userA and userB is the other participant. Both are passed so the call
// matches the store signature; the server resolves the caller from the
// token.
func (c *Client) ListThread(ctx context.Context, listingID, userA, userB string) ([]*data.Message, error) {
	resp, err := c.rpc.GetThread(c.auth(ctx), &v1.GetThreadRequest{ListingId: listingID, OtherUserId: userB})
	if err != nil {
		return nil, fromStatus(err)
	}
	return wire.ToMessages(resp.GetMessages())
}

// MarkRead marks what fromUser sent the signed-in user as read. toUser must
// be the signed-in user.
func (c *Client) MarkRead(ctx context.Context, listingID, fromUser, toUser string) (int64, error) {
	resp, err := c.rpc.MarkRead(c.auth(ctx), &v1.MarkReadRequest{ListingId: listingID, OtherUserId: fromUser})
	if err != nil {
		return 0, fromStatus(err)
	}
	return resp.GetTransitioned(), nil
}

// MarkMessageRead marks one message addressed to the signed-in user.
func (c *Client) MarkMessageRead(ctx context.Context, listingID, senderID string, id bson.ObjectID, _ string) (int64, error) {
	resp, err := c.rpc.MarkMessageRead(c.auth(ctx), &v1.MarkMessageReadRequest{
		MessageId: id.Hex(),
		ListingId: listingID,
		SenderId:  senderID,
	})
	if err != nil {
		return 0, fromStatus(err)
	}
	return resp.GetTransitioned(), nil
}

// ComputeCounts fetches the signed-in user's notification counts.
func (c *Client) ComputeCounts(ctx context.Context, _ string) (data.NotificationCounts, error) {
	resp, err := c.rpc.GetNotificationCounts(c.auth(ctx), &emptypb.Empty{})
	if err != nil {
		return data.NotificationCounts{}, fromStatus(err)
	}
	return wire.ToCounts(resp), nil
}

// RegisterPush stores the signed-in user's push endpoint.
func (c *Client) RegisterPush(ctx context.Context, endpoint, p256dh, auth string) error {
	_, err := c.rpc.RegisterPush(c.auth(ctx), &v1.RegisterPushRequest{Endpoint: endpoint, P256Dh: p256dh, Auth: auth})
	return fromStatus(err)
}

// SubscribeThread streams the thread topic between the signed-in user
// (userA) and userB.
func (c *Client) SubscribeThread(ctx context.Context, listingID, userA, userB string) (*pubsub.Subscription, error) {
	topic := pubsub.ThreadTopic(normalize.ID(listingID), normalize.ID(userA), normalize.ID(userB))
	return c.subscribe(ctx, topic, &v1.SubscribeRequest{ListingId: listingID, OtherUserId: userB})
}

// SubscribeUser streams the signed-in user's topic.
func (c *Client) SubscribeUser(ctx context.Context, userID string) (*pubsub.Subscription, error) {
	return c.subscribe(ctx, pubsub.UserTopic(normalize.ID(userID)), &v1.SubscribeRequest{})
}

// subscribe returns once the server confirmed the subscription with its
// response header.
func (c *Client) subscribe(ctx context.Context, topic string, req *v1.SubscribeRequest) (*pubsub.Subscription, error) {
	ctx, cancel := context.WithCancel(c.auth(ctx))
	stream, err := c.rpc.Subscribe(ctx, req)
	if err != nil {
		cancel()
		return nil, fromStatus(err)
	}
	md, err := stream.Header()
	if err == nil && len(md.Get(wire.SubscriptionHeader)) == 0 {
		// rejected before subscribing; the status arrives on Recv
		if _, err = stream.Recv(); err == nil {
			err = errors.New("subscription not confirmed")
		}
	}
	if err != nil {
		cancel()
		return nil, fromStatus(err)
	}

	out := make(chan []byte, eventBuffer)
	go func() {
		defer close(out)
		for {
			ev, err := stream.Recv()
			if err != nil {
				if !errors.Is(err, io.EOF) && status.Code(err) != codes.Canceled {
					c.log.Warn().Err(err).Str("topic", topic).Msg("event stream ended")
				}
				return
			}
			select {
			case out <- ev.GetPayload():
			case <-ctx.Done():
				return
			}
		}
	}()
	return pubsub.NewSubscription(topic, out, cancel), nil
}
