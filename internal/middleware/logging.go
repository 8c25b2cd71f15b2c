package middleware

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoggingUnaryInterceptor logs every unary call with its status code and
// duration. Server-side failures are logged at error level.
func LoggingUnaryInterceptor(log zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logCall(log, info.FullMethod, start, err)
		return resp, err
	}
}

// LoggingStreamInterceptor logs a stream once it ends.
func LoggingStreamInterceptor(log zerolog.Logger) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, ss)
		logCall(log, info.FullMethod, start, err)
		return err
	}
}

func logCall(log zerolog.Logger, method string, start time.Time, err error) {
	code := status.Code(err)
	ev := log.Info()
	switch code {
	case codes.OK, codes.Canceled:
	case codes.Internal, codes.Unknown, codes.Unavailable, codes.DataLoss:
		ev = log.Error().Err(err)
	default:
		ev = log.Warn().Err(err)
	}
	ev.Str("method", method).
		Str("code", code.String()).
		Dur("duration", time.Since(start)).
		Msg("rpc")
}
