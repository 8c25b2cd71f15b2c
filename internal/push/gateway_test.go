package push

import (
	"context"
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/data"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func browserKeys(t *testing.T) data.PushKeys {
	t.Helper()
	priv, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)
	secret := make([]byte, 16)
	_, err = rand.Read(secret)
	require.NoError(t, err)
	return data.PushKeys{
		P256dh: base64.RawURLEncoding.EncodeToString(priv.PublicKey().Bytes()),
		Auth:   base64.RawURLEncoding.EncodeToString(secret),
	}
}

func testVAPID(t *testing.T) VAPID {
	t.Helper()
	priv, pub, err := webpush.GenerateVAPIDKeys()
	require.NoError(t, err)
	return VAPID{PublicKey: pub, PrivateKey: priv, Subject: "mailto:ops@market.example"}
}

func TestWebPush_PostsEncryptedPayload(t *testing.T) {
	var gotTTL, gotEncoding string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTTL = r.Header.Get("TTL")
		gotEncoding = r.Header.Get("Content-Encoding")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	gw := NewWebPush(testVAPID(t), 60, srv.Client())
	err := gw.Send(context.Background(), data.PushSubscription{
		UserID:   bob,
		Endpoint: srv.URL + "/push/bob",
		Keys:     browserKeys(t),
	}, Payload{Title: "t", Body: "b", URL: "u"})
	require.NoError(t, err)

	assert.Equal(t, "60", gotTTL)
	assert.Equal(t, "aes128gcm", gotEncoding)
}

func TestWebPush_RejectedByEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
	}))
	defer srv.Close()

	gw := NewWebPush(testVAPID(t), 60, srv.Client())
	err := gw.Send(context.Background(), data.PushSubscription{
		UserID:   bob,
		Endpoint: srv.URL + "/push/bob",
		Keys:     browserKeys(t),
	}, Payload{Title: "t"})
	assert.ErrorContains(t, err, "410")
}
