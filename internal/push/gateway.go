// Package push alerts an offline recipient about a new message through the
// single Web Push endpoint stored for them.
package push

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/data"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// Payload is what the browser's service worker receives.
type Payload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
}

// Gateway delivers a payload to one subscription.
type Gateway interface {
	Send(ctx context.Context, sub data.PushSubscription, p Payload) error
}

// VAPID identifies this server to push services.
type VAPID struct {
	PublicKey  string
	PrivateKey string
	Subject    string
}

// WebPush is a Gateway speaking the Web Push protocol.
type WebPush struct {
	vapid  VAPID
	ttl    int
	client *http.Client
}

// NewWebPush returns a WebPush gateway. Notifications are kept by the push
// service for ttlSeconds when the device is offline.
func NewWebPush(vapid VAPID, ttlSeconds int, client *http.Client) *WebPush {
	if client == nil {
		client = http.DefaultClient
	}
	return &WebPush{vapid: vapid, ttl: ttlSeconds, client: client}
}

// Send encrypts and posts p to the subscription endpoint.
func (w *WebPush) Send(ctx context.Context, sub data.PushSubscription, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode push payload: %w", err)
	}

	resp, err := webpush.SendNotificationWithContext(ctx, body, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.Keys.P256dh,
			Auth:   sub.Keys.Auth,
		},
	}, &webpush.Options{
		HTTPClient:      w.client,
		Subscriber:      w.vapid.Subject,
		VAPIDPublicKey:  w.vapid.PublicKey,
		VAPIDPrivateKey: w.vapid.PrivateKey,
		TTL:             w.ttl,
	})
	if err != nil {
		return fmt.Errorf("send push: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("send push: endpoint answered %s", resp.Status)
	}
	return nil
}
