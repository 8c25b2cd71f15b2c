package data

import (
	"context"
	"time"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/normalize"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MessagesStore is the system of record for messages.
type MessagesStore struct {
	// coll is reference to "messages" collection in MongoDB
	// Set via NewMessagesStore() and used in all methods below
	coll *mongo.Collection
}

// NewMessagesStore returns a MessagesStore using given collection.
func NewMessagesStore(coll *mongo.Collection) *MessagesStore {
	return &MessagesStore{coll: coll} // Store reference to MongoDB collection
}

// Append validates and inserts a message and returns the saved record.
func (m *MessagesStore) Append(ctx context.Context, listingID, senderID, recipientID, content string) (*Message, error) {
	// Trim ids and content, reject empty content and self-messages
	// before anything touches the database
	msg, err := NewMessage(listingID, senderID, recipientID, content)
	if err != nil {
		return nil, err // ErrValidation, nothing stored
	}

	// The id is assigned here rather than by the server so that the
	// timestamp embedded in it and created_at agree. Mongo keeps
	// milliseconds, so truncate before the record is handed to subscribers.
	msg.ID = bson.NewObjectID()
	msg.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	// InsertOne adds the message document to MongoDB collection
	if _, err := m.coll.InsertOne(ctx, msg); err != nil {
		return nil, persistErr("insert message", err) // connection, write concern, etc
	}

	// Return the saved message; the caller publishes it to subscribers
	return msg, nil
}

// threadFilter matches every message of the conversation between a and b
// on listingID, in both directions.
func threadFilter(listingID, a, b string) bson.M {
	return bson.M{
		"listing_id": listingID,
		// "$or" means either direction of the conversation
		"$or": bson.A{
			// Messages sent FROM a TO b
			bson.M{"sender_id": a, "recipient_id": b},
			// Messages sent FROM b TO a (opposite direction)
			bson.M{"sender_id": b, "recipient_id": a},
		},
	}
}

// ListThread returns all messages between userA and userB on listingID,
// oldest first.
func (m *MessagesStore) ListThread(ctx context.Context, listingID, userA, userB string) ([]*Message, error) {
	// Normalize the ids before building the query so padded input still
	// matches stored messages; the filter is symmetric in userA and userB
	filter := threadFilter(normalize.ID(listingID), normalize.ID(userA), normalize.ID(userB))

	// Chronological order; _id breaks ties between equal timestamps
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	return m.find(ctx, filter, opts)
}

// ListAllForUser returns every message the user sent or received, newest
// first. Only the full conversation rebuild reads this.
func (m *MessagesStore) ListAllForUser(ctx context.Context, userID string) ([]*Message, error) {
	userID = normalize.ID(userID)
	filter := bson.M{"$or": bson.A{
		// Messages sent BY this user
		bson.M{"sender_id": userID},
		// Messages sent TO this user
		bson.M{"recipient_id": userID},
	}}

	// -1 means descending order (newest first)
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	return m.find(ctx, filter, opts)
}

func (m *MessagesStore) find(ctx context.Context, filter bson.M, opts *options.FindOptionsBuilder) ([]*Message, error) {
	// Execute the query; Find returns a cursor to iterate results
	cursor, err := m.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, persistErr("find messages", err)
	}
	// Ensure cursor is closed when done (cleanup)
	defer cursor.Close(ctx)

	// All() reads all documents from cursor and decodes into messages slice
	var messages []*Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, persistErr("decode messages", err) // Error decoding documents
	}
	return messages, nil
}

// MarkRead flips every unread message fromUser sent toUser on listingID and
// returns how many documents actually changed. The read=false condition
// makes each document transition at most once, so concurrent callers never
// count the same message twice and a repeated call returns 0.
func (m *MessagesStore) MarkRead(ctx context.Context, listingID, fromUser, toUser string) (int64, error) {
	filter := bson.M{
		"listing_id":   normalize.ID(listingID),
		"sender_id":    normalize.ID(fromUser), // the counterpart who wrote them
		"recipient_id": normalize.ID(toUser),   // the viewer reading them
		"read":         false,                  // only unread rows are touched
	}

	// UpdateMany is atomic per document, not across the batch
	res, err := m.coll.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return 0, persistErr("mark read", err) // rows stay unread; safe to retry
	}

	// ModifiedCount counts only documents whose read flag changed
	return res.ModifiedCount, nil
}

// MarkMessageRead flips a single message addressed to recipientID.
func (m *MessagesStore) MarkMessageRead(ctx context.Context, id bson.ObjectID, recipientID string) (int64, error) {
	// recipient_id in the filter stops anyone else from reading it for them
	filter := bson.M{"_id": id, "recipient_id": normalize.ID(recipientID), "read": false}
	res, err := m.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return 0, persistErr("mark message read", err)
	}
	return res.ModifiedCount, nil // 0 when already read or not theirs
}

// CountUnread returns the number of unread messages addressed to userID
// across all conversations.
func (m *MessagesStore) CountUnread(ctx context.Context, userID string) (int64, error) {
	// Served by the (recipient_id, read) index
	n, err := m.coll.CountDocuments(ctx, bson.M{"recipient_id": normalize.ID(userID), "read": false})
	if err != nil {
		return 0, persistErr("count unread", err)
	}
	return n, nil
}
