package main

import (
	"context"
	"strings"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/auth"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// context key type for storing auth claims in context
type authContextKey struct{}

// getClaimsFromContext extracts auth claims from the context, if present.
func getClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(authContextKey{}).(*auth.Claims)
	return c, ok && c != nil
}

// callerID returns the authenticated user id or an Unauthenticated status.
func callerID(ctx context.Context) (string, error) {
	c, ok := getClaimsFromContext(ctx)
	if !ok {
		return "", status.Errorf(codes.Unauthenticated, "missing auth claims")
	}
	return c.UserID, nil
}

// userRateKey buckets rate limiting by the authenticated user.
func userRateKey(ctx context.Context, _ interface{}) string {
	if c, ok := getClaimsFromContext(ctx); ok {
		return "user:" + c.UserID
	}
	return ""
}

// authenticate verifies the bearer token in ctx and attaches its claims.
func authenticate(ctx context.Context, j *auth.JWTManager) (context.Context, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Errorf(codes.Unauthenticated, "missing metadata")
	}
	authHeaders := md.Get("authorization")
	if len(authHeaders) == 0 {
		return nil, status.Errorf(codes.Unauthenticated, "missing authorization header")
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeaders[0], "Bearer"))
	if token == "" {
		return nil, status.Errorf(codes.Unauthenticated, "invalid token")
	}

	claims, err := j.VerifyToken(token)
	if err != nil {
		return nil, status.Errorf(codes.Unauthenticated, "unauthenticated: %v", err)
	}
	return context.WithValue(ctx, authContextKey{}, claims), nil
}

// authUnaryInterceptor returns a UnaryServerInterceptor that enforces JWT
// authentication on every method.
func authUnaryInterceptor(j *auth.JWTManager) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		ctx, err := authenticate(ctx, j)
		if err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

// authStreamInterceptor is the stream equivalent of authUnaryInterceptor.
func authStreamInterceptor(j *auth.JWTManager) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx, err := authenticate(ss.Context(), j)
		if err != nil {
			return err
		}
		return handler(srv, authedServerStream{ServerStream: ss, ctx: ctx})
	}
}

// authedServerStream wraps grpc.ServerStream to override Context()
type authedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

// Context returns the wrapped context (with claims)
func (g authedServerStream) Context() context.Context { return g.ctx }
