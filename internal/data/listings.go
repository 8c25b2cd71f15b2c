package data

import (
	"context"
	"errors"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/normalize"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DirectoryStore performs read-only lookups against the collections owned by
// the rest of the marketplace: listings, ratings and profiles.
type DirectoryStore struct {
	listings *mongo.Collection
	ratings  *mongo.Collection
	profiles *mongo.Collection
}

// NewDirectoryStore returns a DirectoryStore using the provided collections.
func NewDirectoryStore(listings, ratings, profiles *mongo.Collection) *DirectoryStore {
	return &DirectoryStore{listings: listings, ratings: ratings, profiles: profiles}
}

// GetListing finds a listing by id.
func (d *DirectoryStore) GetListing(ctx context.Context, id string) (*Listing, error) {
	var l Listing
	err := d.listings.FindOne(ctx, bson.M{"_id": normalize.ID(id)}).Decode(&l)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, persistErr("get listing", err)
	}
	return &l, nil
}

// GetProfile finds a profile by user id.
func (d *DirectoryStore) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	var p Profile
	err := d.profiles.FindOne(ctx, bson.M{"_id": normalize.ID(userID)}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, persistErr("get profile", err)
	}
	return &p, nil
}

// SoldBy returns the sold listings whose seller is userID.
func (d *DirectoryStore) SoldBy(ctx context.Context, userID string) ([]*Listing, error) {
	return d.findListings(ctx, bson.M{"user_id": normalize.ID(userID), "status": StatusSold})
}

// PurchasedBy returns the sold listings whose buyer is userID.
func (d *DirectoryStore) PurchasedBy(ctx context.Context, userID string) ([]*Listing, error) {
	return d.findListings(ctx, bson.M{"sold_to": normalize.ID(userID), "status": StatusSold})
}

func (d *DirectoryStore) findListings(ctx context.Context, filter bson.M) ([]*Listing, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1, "user_id": 1, "title": 1, "status": 1, "sold_to": 1})
	cursor, err := d.listings.Find(ctx, filter, opts)
	if err != nil {
		return nil, persistErr("find listings", err)
	}
	defer cursor.Close(ctx)

	var listings []*Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, persistErr("decode listings", err)
	}
	return listings, nil
}

// HasRated reports whether raterID already rated ratedID for listingID.
func (d *DirectoryStore) HasRated(ctx context.Context, listingID, raterID, ratedID string) (bool, error) {
	filter := bson.M{
		"listing_id":    normalize.ID(listingID),
		"rater_user_id": normalize.ID(raterID),
		"rated_user_id": normalize.ID(ratedID),
	}
	// Limit 1: only existence matters
	count, err := d.ratings.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, persistErr("count ratings", err)
	}
	return count > 0, nil
}
