package push

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/data"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/normalize"

	"github.com/rs/zerolog"
)

const previewRunes = 100

// SubscriptionReader loads the stored endpoint of a user.
type SubscriptionReader interface {
	GetSubscription(ctx context.Context, userID string) (*data.PushSubscription, error)
}

// Directory resolves the sender name and listing title for the payload.
type Directory interface {
	GetListing(ctx context.Context, id string) (*data.Listing, error)
	GetProfile(ctx context.Context, userID string) (*data.Profile, error)
}

// Notifier builds and sends new-message pushes.
type Notifier struct {
	subs   SubscriptionReader
	dir    Directory
	gw     Gateway
	appURL string
	log    zerolog.Logger
}

// NewNotifier returns a Notifier linking to appURL/messages.
func NewNotifier(subs SubscriptionReader, dir Directory, gw Gateway, appURL string, log zerolog.Logger) *Notifier {
	return &Notifier{subs: subs, dir: dir, gw: gw, appURL: strings.TrimRight(appURL, "/"), log: log}
}

// NotifyNewMessage pushes m to its recipient's endpoint. A recipient who
// never subscribed is not an error.
func (n *Notifier) NotifyNewMessage(ctx context.Context, m data.Message) error {
	sub, err := n.subs.GetSubscription(ctx, m.RecipientID)
	if errors.Is(err, data.ErrNotFound) {
		n.log.Debug().Str("user_id", m.RecipientID).Msg("no push subscription")
		return nil
	}
	if err != nil {
		return fmt.Errorf("load push subscription: %w", err)
	}

	p := n.payload(ctx, m)
	if err := n.gw.Send(ctx, *sub, p); err != nil {
		return err
	}
	n.log.Debug().Str("user_id", m.RecipientID).Str("msg_id", m.ID.Hex()).Msg("push sent")
	return nil
}

func (n *Notifier) payload(ctx context.Context, m data.Message) Payload {
	var sender *data.Profile
	if p, err := n.dir.GetProfile(ctx, m.SenderID); err == nil {
		sender = p
	}
	title := "Listing"
	if l, err := n.dir.GetListing(ctx, m.ListingID); err == nil && l.Title != "" {
		title = l.Title
	}
	return Payload{
		Title: "New message from " + sender.Name("User"),
		Body:  title + ": " + normalize.Preview(m.Content, previewRunes),
		URL:   n.appURL + "/messages",
	}
}
