package grpc

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/abrar2030/FinovaBank/internal/domain"
)

// ActorMetadataKey carries the identity performing a mutation.
const ActorMetadataKey = "x-actor"

// ActorInterceptor copies the x-actor metadata value into the request context.
func ActorInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(ActorMetadataKey); len(values) > 0 && values[0] != "" {
				ctx = domain.WithActor(ctx, values[0])
			}
		}
		return handler(ctx, req)
	}
}

// LoggingInterceptor logs every unary call with its status code and latency.
func LoggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelWarn
		}
		logger.Log(ctx, level, "grpc call",
			"method", info.FullMethod,
			"code", status.Code(err).String(),
			"duration", time.Since(start))
		return resp, err
	}
}

// recoverPanic logs a handler panic and reports it to the caller as Internal.
func recoverPanic(logger *slog.Logger) recovery.RecoveryHandlerFuncContext {
	return func(ctx context.Context, p any) error {
		logger.ErrorContext(ctx, "panic in grpc handler",
			"panic", p,
			"stack", string(debug.Stack()))
		return status.Error(codes.Internal, "internal error")
	}
}

// WithActor returns an outgoing context that sends actor in the call metadata.
func WithActor(ctx context.Context, actor string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, ActorMetadataKey, actor)
}
