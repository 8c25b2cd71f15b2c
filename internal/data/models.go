package data

import (
	"bytes"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// StatusSold is the listing status set once a listing has a buyer.
const StatusSold = "sold"

// Message maps to messages collection. Only Read ever changes after insert.
type Message struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	ListingID   string        `bson:"listing_id" json:"listing_id"`
	SenderID    string        `bson:"sender_id" json:"sender_id"`
	RecipientID string        `bson:"recipient_id" json:"recipient_id"`
	Content     string        `bson:"content" json:"content"`
	Read        bool          `bson:"read" json:"read"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
}

// Counterpart returns the participant of m that is not userID.
func (m *Message) Counterpart(userID string) string {
	if m.SenderID == userID {
		return m.RecipientID
	}
	return m.SenderID
}

// Involves reports whether m was exchanged between a and b on listingID,
// in either direction.
func (m *Message) Involves(listingID, a, b string) bool {
	if m.ListingID != listingID {
		return false
	}
	return (m.SenderID == a && m.RecipientID == b) || (m.SenderID == b && m.RecipientID == a)
}

// After reports whether m sorts after o in thread order: created_at first,
// then id.
func (m *Message) After(o *Message) bool {
	if !m.CreatedAt.Equal(o.CreatedAt) {
		return m.CreatedAt.After(o.CreatedAt)
	}
	return bytes.Compare(m.ID[:], o.ID[:]) > 0
}

// ConversationKey identifies a conversation from one participant's point of view.
type ConversationKey struct {
	ListingID   string
	OtherUserID string
}

// KeyFor returns the conversation key of m as seen by userID.
func KeyFor(m *Message, userID string) ConversationKey {
	return ConversationKey{ListingID: m.ListingID, OtherUserID: m.Counterpart(userID)}
}

// Conversation is derived from the message log and never stored.
type Conversation struct {
	ListingID     string  `json:"listing_id"`
	OtherUserID   string  `json:"other_user_id"`
	ListingTitle  string  `json:"listing_title,omitempty"`
	OtherUserName string  `json:"other_user_name,omitempty"`
	LastMessage   Message `json:"last_message"`
	UnreadCount   int     `json:"unread_count"`
}

// Key returns the conversation key of c.
func (c *Conversation) Key() ConversationKey {
	return ConversationKey{ListingID: c.ListingID, OtherUserID: c.OtherUserID}
}

// NotificationCounts is the per-user badge breakdown. Never persisted.
type NotificationCounts struct {
	UnreadMessages   int64 `json:"unread_messages"`
	UnratedSales     int64 `json:"unrated_sales"`
	UnratedPurchases int64 `json:"unrated_purchases"`
}

// Listing maps to listings collection. Read-only here.
type Listing struct {
	ID     string `bson:"_id" json:"id"`
	UserID string `bson:"user_id" json:"user_id"`
	Title  string `bson:"title" json:"title"`
	Status string `bson:"status" json:"status"`
	SoldTo string `bson:"sold_to,omitempty" json:"sold_to,omitempty"`
}

// Rating maps to ratings collection. Read-only here.
type Rating struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	ListingID   string        `bson:"listing_id"`
	RaterUserID string        `bson:"rater_user_id"`
	RatedUserID string        `bson:"rated_user_id"`
	CreatedAt   time.Time     `bson:"created_at"`
}

// Profile maps to profiles collection. Read-only here.
type Profile struct {
	ID          string `bson:"_id"`
	Callsign    string `bson:"callsign"`
	DisplayName string `bson:"display_name,omitempty"`
}

// Name returns the display name, then the callsign, then fallback.
func (p *Profile) Name(fallback string) string {
	if p == nil {
		return fallback
	}
	if p.DisplayName != "" {
		return p.DisplayName
	}
	if p.Callsign != "" {
		return p.Callsign
	}
	return fallback
}

// PushKeys are the client keys of a Web Push subscription.
type PushKeys struct {
	P256dh string `bson:"p256dh" json:"p256dh"`
	Auth   string `bson:"auth" json:"auth"`
}

// PushSubscription maps to push_subscriptions collection, one per user.
type PushSubscription struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Endpoint  string    `bson:"endpoint" json:"endpoint"`
	Keys      PushKeys  `bson:"keys" json:"keys"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
