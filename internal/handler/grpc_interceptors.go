package handler

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/pesio-ai/be-hotel-bookings/internal/platform/auth"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/errors"
)

// publicMethodPrefixes bypass authentication.
var publicMethodPrefixes = []string{
	"/grpc.health.v1.Health/",
	"/grpc.reflection.",
}

// AuthInterceptor validates the Bearer token in the "authorization" metadata
// and stores the claims on the request context.
func AuthInterceptor(verifier *auth.Verifier) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		for _, p := range publicMethodPrefixes {
			if strings.HasPrefix(info.FullMethod, p) {
				return handler(ctx, req)
			}
		}

		md, _ := metadata.FromIncomingContext(ctx)
		var token string
		if vals := md.Get("authorization"); len(vals) > 0 {
			token = strings.TrimPrefix(vals[0], "Bearer ")
		}
		if token == "" {
			return nil, mapErrorToGRPC(errors.Unauthorized("missing bearer token"))
		}
		claims, err := verifier.ParseValidate(token)
		if err != nil {
			return nil, mapErrorToGRPC(errors.Unauthorized("invalid token"))
		}
		return handler(auth.WithClaims(ctx, claims), req)
	}
}

// LoggingInterceptor logs one line per unary call.
func LoggingInterceptor(logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		ev := logger.Debug()
		if err != nil {
			ev = logger.Warn().Err(err)
		}
		ev.Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("latency", time.Since(start)).
			Msg("gRPC request")
		return resp, err
	}
}
