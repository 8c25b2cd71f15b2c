package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestLoggingUnaryInterceptor(t *testing.T) {
	var buf bytes.Buffer
	ic := LoggingUnaryInterceptor(zerolog.New(&buf))
	info := &grpc.UnaryServerInfo{FullMethod: "/market.v1.MessagingService/MarkRead"}

	_, err := ic(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.InvalidArgument, "listing_id is required")
	})
	require.Error(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "/market.v1.MessagingService/MarkRead", line["method"])
	assert.Equal(t, "InvalidArgument", line["code"])
	assert.Contains(t, line, "duration")
}

func TestLoggingStreamInterceptor(t *testing.T) {
	var buf bytes.Buffer
	ic := LoggingStreamInterceptor(zerolog.New(&buf))
	info := &grpc.StreamServerInfo{FullMethod: "/market.v1.MessagingService/Subscribe"}

	err := ic(nil, nil, info, func(srv interface{}, ss grpc.ServerStream) error {
		return status.Error(codes.Internal, "boom")
	})
	require.Error(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "Internal", line["code"])
}
