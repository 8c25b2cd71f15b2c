package chat

import (
	"context"
	"fmt"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/data"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/normalize"
)

// UnreadCounter counts unread messages addressed to a user.
type UnreadCounter interface {
	CountUnread(ctx context.Context, userID string) (int64, error)
}

// SalesDirectory answers the rating-prompt questions.
type SalesDirectory interface {
	SoldBy(ctx context.Context, userID string) ([]*data.Listing, error)
	PurchasedBy(ctx context.Context, userID string) ([]*data.Listing, error)
	HasRated(ctx context.Context, listingID, raterID, ratedID string) (bool, error)
}

// Counter computes the notification badge breakdown.
type Counter struct {
	messages UnreadCounter
	sales    SalesDirectory
}

// NewCounter returns a Counter.
func NewCounter(messages UnreadCounter, sales SalesDirectory) *Counter {
	return &Counter{messages: messages, sales: sales}
}

// ComputeCounts returns the current counts for userID.
func (c *Counter) ComputeCounts(ctx context.Context, userID string) (data.NotificationCounts, error) {
	userID = normalize.ID(userID)
	var counts data.NotificationCounts

	unread, err := c.messages.CountUnread(ctx, userID)
	if err != nil {
		return counts, fmt.Errorf("count unread messages: %w", err)
	}
	counts.UnreadMessages = unread

	sold, err := c.sales.SoldBy(ctx, userID)
	if err != nil {
		return counts, fmt.Errorf("list sold listings: %w", err)
	}
	counts.UnratedSales, err = c.countUnrated(ctx, userID, sold, func(l *data.Listing) string { return l.SoldTo })
	if err != nil {
		return counts, err
	}

	bought, err := c.sales.PurchasedBy(ctx, userID)
	if err != nil {
		return counts, fmt.Errorf("list purchased listings: %w", err)
	}
	counts.UnratedPurchases, err = c.countUnrated(ctx, userID, bought, func(l *data.Listing) string { return l.UserID })
	if err != nil {
		return counts, err
	}
	return counts, nil
}

// countUnrated checks each listing in turn, one rating lookup per listing.
// counterpart picks who userID is expected to rate.
func (c *Counter) countUnrated(ctx context.Context, userID string, listings []*data.Listing, counterpart func(*data.Listing) string) (int64, error) {
	var n int64
	for _, l := range listings {
		other := counterpart(l)
		if other == "" || other == userID {
			continue
		}
		rated, err := c.sales.HasRated(ctx, l.ID, userID, other)
		if err != nil {
			return 0, fmt.Errorf("check rating for listing %s: %w", l.ID, err)
		}
		if !rated {
			n++
		}
	}
	return n, nil
}
