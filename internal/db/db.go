// Package db manages MongoDB connections and collections.
package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Client wraps mongo.Client and exposes collections.
type Client struct {
	// client is the underlying MongoDB connection (thread-safe, can be reused)
	client *mongo.Client

	// db is the marketplace database; messages and push_subscriptions are
	// owned here, listings, ratings and profiles are only read
	db *mongo.Database
}

// New connects to MongoDB and returns a Client for the named database.
func New(ctx context.Context, mongoURI, database string) (*Client, error) {
	// Client options from the connection URI; give up quickly when the
	// server is unreachable instead of hanging startup
	opts := options.Client().
		ApplyURI(mongoURI).                 // host, credentials, replica set
		SetConnectTimeout(10 * time.Second) // Max time to connect

	// Connect only builds the client; no round trip happens yet
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping so a bad URI fails at startup instead of on the first request
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel() // release the timer either way
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		// drop the pool the failed client already opened
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	// The database handle is lazy: nothing is created until the first write
	return &Client{
		client: client,                    // kept for Close
		db:     client.Database(database), // collections hang off this
	}, nil
}

// MessagesCollection returns the messages collection.
func (c *Client) MessagesCollection() *mongo.Collection {
	// Owned by this service: written by Append and the read updates
	return c.db.Collection("messages")
}

// ListingsCollection returns the listings collection.
func (c *Client) ListingsCollection() *mongo.Collection {
	// Owned by the listings service; read here for titles and sales
	return c.db.Collection("listings")
}

// RatingsCollection returns the ratings collection.
func (c *Client) RatingsCollection() *mongo.Collection {
	return c.db.Collection("ratings")
}

// ProfilesCollection returns the profiles collection.
func (c *Client) ProfilesCollection() *mongo.Collection {
	return c.db.Collection("profiles")
}

// PushSubscriptionsCollection returns the push_subscriptions collection.
func (c *Client) PushSubscriptionsCollection() *mongo.Collection {
	// One document per user, replaced on every registration
	return c.db.Collection("push_subscriptions")
}

// Close disconnects from MongoDB.
func (c *Client) Close(ctx context.Context) error {
	// ctx bounds how long in-flight operations get before the pool closes
	return c.client.Disconnect(ctx)
}

// CreateIndexes creates the indexes the message and push queries rely on.
func (c *Client) CreateIndexes(ctx context.Context) error {
	messageIndexes := []mongo.IndexModel{
		{
			// ListThread and MarkRead: one conversation in one direction, by time
			Keys: bson.D{
				{Key: "listing_id", Value: 1},
				{Key: "sender_id", Value: 1},
				{Key: "recipient_id", Value: 1},
				{Key: "created_at", Value: 1},
			},
		},
		{
			// CountUnread
			Keys: bson.D{{Key: "recipient_id", Value: 1}, {Key: "read", Value: 1}},
		},
		{
			// ListAllForUser, sender half of the $or
			Keys: bson.D{{Key: "sender_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			// ListAllForUser, recipient half of the $or
			Keys: bson.D{{Key: "recipient_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
	}
	// CreateMany is idempotent for identical specs, so migrate can rerun
	if _, err := c.MessagesCollection().Indexes().CreateMany(ctx, messageIndexes); err != nil {
		return fmt.Errorf("failed to create message indexes: %w", err)
	}

	// One push endpoint per user
	pushIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := c.PushSubscriptionsCollection().Indexes().CreateOne(ctx, pushIndex); err != nil {
		return fmt.Errorf("failed to create push subscription index: %w", err)
	}

	return nil
}
