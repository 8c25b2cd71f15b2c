// Package wire converts between stored records and market.v1 messages.
package wire

import (
	"fmt"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/data"
	v1 "github.com/PaulBabatuyi/listingChat-gRPC/proto/market/v1"

	"go.mongodb.org/mongo-driver/v2/bson"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// SubscriptionHeader is sent once a Subscribe stream is attached to its
// topic.
const SubscriptionHeader = "x-subscription-id"

// FromMessage converts a stored message to its wire form.
func FromMessage(m *data.Message) *v1.Message {
	return &v1.Message{
		Id:          m.ID.Hex(),
		ListingId:   m.ListingID,
		SenderId:    m.SenderID,
		RecipientId: m.RecipientID,
		Content:     m.Content,
		Read:        m.Read,
		CreatedAt:   timestamppb.New(m.CreatedAt),
	}
}

func FromMessages(ms []*data.Message) []*v1.Message {
	out := make([]*v1.Message, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMessage(m))
	}
	return out
}

// ToMessage converts a wire message back to the stored form. A missing
// created_at stays the zero time.
func ToMessage(m *v1.Message) (*data.Message, error) {
	id, err := bson.ObjectIDFromHex(m.GetId())
	if err != nil {
		return nil, fmt.Errorf("message id %q: %w", m.GetId(), err)
	}
	out := &data.Message{
		ID:          id,
		ListingID:   m.GetListingId(),
		SenderID:    m.GetSenderId(),
		RecipientID: m.GetRecipientId(),
		Content:     m.GetContent(),
		Read:        m.GetRead(),
	}
	if m.GetCreatedAt() != nil {
		out.CreatedAt = m.GetCreatedAt().AsTime()
	}
	return out, nil
}

// ToMessages converts a wire slice, failing on the first bad id.
func ToMessages(ms []*v1.Message) ([]*data.Message, error) {
	out := make([]*data.Message, 0, len(ms))
	for _, m := range ms {
		dm, err := ToMessage(m)
		if err != nil {
			return nil, err
		}
		out = append(out, dm)
	}
	return out, nil
}

func FromConversation(c *data.Conversation) *v1.Conversation {
	return &v1.Conversation{
		ListingId:     c.ListingID,
		OtherUserId:   c.OtherUserID,
		ListingTitle:  c.ListingTitle,
		OtherUserName: c.OtherUserName,
		LastMessage:   FromMessage(&c.LastMessage),
		UnreadCount:   int32(c.UnreadCount),
	}
}

func FromCounts(c data.NotificationCounts) *v1.NotificationCounts {
	return &v1.NotificationCounts{
		UnreadMessages:   c.UnreadMessages,
		UnratedSales:     c.UnratedSales,
		UnratedPurchases: c.UnratedPurchases,
	}
}

func ToCounts(c *v1.NotificationCounts) data.NotificationCounts {
	return data.NotificationCounts{
		UnreadMessages:   c.GetUnreadMessages(),
		UnratedSales:     c.GetUnratedSales(),
		UnratedPurchases: c.GetUnratedPurchases(),
	}
}
