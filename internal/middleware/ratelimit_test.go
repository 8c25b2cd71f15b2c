package middleware

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

func TestLimiterStore_AllowAndCleanup(t *testing.T) {
	// allow 5 events immediately then the 6th should be rejected
	s := NewLimiterStore(5, 5, 50*time.Millisecond)
	defer s.Stop()

	key := "user:alice"
	for i := 0; i < 5; i++ {
		require.Truef(t, s.Allow(key), "expected allow at iteration %d", i)
	}
	assert.False(t, s.Allow(key), "expected limiter to block after burst consumed")

	// other keys have their own bucket
	assert.True(t, s.Allow("user:bob"))

	// nothing is idle yet
	assert.Zero(t, s.sweep(time.Now().Add(-time.Minute)))
	assert.Equal(t, 2, s.sweep(time.Now().Add(time.Second)))
	assert.True(t, s.Allow(key), "a swept key starts with a full bucket")

	s.Stop()
}

func okHandler(ctx context.Context, req interface{}) (interface{}, error) {
	return "ok", nil
}

func TestRateLimitUnaryInterceptor_KeysByFunc(t *testing.T) {
	s := NewLimiterStore(60, 1, time.Minute)
	defer s.Stop()

	const method = "/market.v1.MessagingService/SendMessage"
	user := ""
	ic := RateLimitUnaryInterceptor(s, map[string]bool{method: true}, func(ctx context.Context, req interface{}) string {
		return user
	})
	info := &grpc.UnaryServerInfo{FullMethod: method}

	user = "user:alice"
	_, err := ic(context.Background(), nil, info, okHandler)
	require.NoError(t, err)
	_, err = ic(context.Background(), nil, info, okHandler)
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))

	user = "user:bob"
	_, err = ic(context.Background(), nil, info, okHandler)
	assert.NoError(t, err)
}

func TestRateLimitUnaryInterceptor_SkipsOtherMethodsAndFallsBackToPeer(t *testing.T) {
	s := NewLimiterStore(60, 1, time.Minute)
	defer s.Stop()

	const limited = "/market.v1.MessagingService/SendMessage"
	ic := RateLimitUnaryInterceptor(s, map[string]bool{limited: true}, nil)

	free := &grpc.UnaryServerInfo{FullMethod: "/market.v1.MessagingService/GetThread"}
	for i := 0; i < 3; i++ {
		_, err := ic(context.Background(), nil, free, okHandler)
		require.NoError(t, err)
	}

	ctx := peer.NewContext(context.Background(), &peer.Peer{Addr: &net.TCPAddr{IP: net.IPv4(10, 0, 0, 1), Port: 4000}})
	info := &grpc.UnaryServerInfo{FullMethod: limited}
	_, err := ic(ctx, nil, info, okHandler)
	require.NoError(t, err)
	_, err = ic(ctx, nil, info, okHandler)
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
	assert.Equal(t, "peer:10.0.0.1:4000", PeerKey(ctx, nil))
}
