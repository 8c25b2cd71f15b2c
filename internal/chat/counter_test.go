package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/data"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	listingSold1 = "a1000000-0000-4000-8000-000000000001"
	listingSold2 = "a1000000-0000-4000-8000-000000000002"
	listingOpen  = "a1000000-0000-4000-8000-000000000003"
	listingBuy   = "a1000000-0000-4000-8000-000000000004"
)

func TestCounter_NoMessagesAnywhere(t *testing.T) {
	store := steppedStore()
	counts, err := NewCounter(store, store).ComputeCounts(context.Background(), carol)
	require.NoError(t, err)
	assert.Equal(t, data.NotificationCounts{}, counts)
}

func TestCounter_UnreadIsGlobal(t *testing.T) {
	store := steppedStore()
	ctx := context.Background()
	for _, l := range []string{listingL, listingM} {
		_, err := store.Append(ctx, l, alice, bob, "hi")
		require.NoError(t, err)
	}
	_, err := store.Append(ctx, listingL, carol, bob, "also hi")
	require.NoError(t, err)
	_, err = store.Append(ctx, listingL, bob, alice, "sent by bob")
	require.NoError(t, err)

	counts, err := NewCounter(store, store).ComputeCounts(ctx, bob)
	require.NoError(t, err)
	assert.EqualValues(t, 3, counts.UnreadMessages)
}

func TestCounter_UnratedSalesAndPurchases(t *testing.T) {
	store := steppedStore()
	store.PutListing(data.Listing{ID: listingSold1, UserID: alice, Title: "Radio", Status: data.StatusSold, SoldTo: bob})
	store.PutListing(data.Listing{ID: listingSold2, UserID: alice, Title: "Antenna", Status: data.StatusSold, SoldTo: carol})
	store.PutListing(data.Listing{ID: listingOpen, UserID: alice, Title: "Tuner", Status: "active"})
	store.PutListing(data.Listing{ID: listingBuy, UserID: carol, Title: "Mic", Status: data.StatusSold, SoldTo: alice})

	// alice already rated carol as a buyer
	store.PutRating(data.Rating{ListingID: listingSold2, RaterUserID: alice, RatedUserID: carol})
	// a rating of someone else on the same listing does not count
	store.PutRating(data.Rating{ListingID: listingBuy, RaterUserID: alice, RatedUserID: bob})

	c := NewCounter(store, store)
	ctx := context.Background()

	counts, err := c.ComputeCounts(ctx, alice)
	require.NoError(t, err)
	assert.EqualValues(t, 1, counts.UnratedSales)
	assert.EqualValues(t, 1, counts.UnratedPurchases)

	counts, err = c.ComputeCounts(ctx, bob)
	require.NoError(t, err)
	assert.EqualValues(t, 0, counts.UnratedSales)
	assert.EqualValues(t, 1, counts.UnratedPurchases)

	store.PutRating(data.Rating{ListingID: listingSold1, RaterUserID: bob, RatedUserID: alice})
	counts, err = c.ComputeCounts(ctx, bob)
	require.NoError(t, err)
	assert.EqualValues(t, 0, counts.UnratedPurchases)
}

type failingSales struct{ *data.MemoryStore }

func (failingSales) HasRated(ctx context.Context, listingID, raterID, ratedID string) (bool, error) {
	return false, errors.New("timeout")
}

func TestCounter_RatingLookupFailure(t *testing.T) {
	store := steppedStore()
	store.PutListing(data.Listing{ID: listingSold1, UserID: alice, Status: data.StatusSold, SoldTo: bob})

	_, err := NewCounter(store, failingSales{store}).ComputeCounts(context.Background(), alice)
	assert.ErrorContains(t, err, listingSold1)
}
