package grpc

import (
	"log/slog"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	pb "github.com/abrar2030/FinovaBank/proto/account/v1"
)

// ServiceName is the fully qualified gRPC service name.
var ServiceName = pb.AccountService_ServiceDesc.ServiceName

// NewGRPCServer creates a gRPC server with the account service and the
// standard health service registered.
func NewGRPCServer(ledger Ledger, logger *slog.Logger) *grpc.Server {
	opts := []grpc.ServerOption{
		grpc.MaxRecvMsgSize(1024 * 1024 * 4), // 4MB max receive message size
		grpc.MaxSendMsgSize(1024 * 1024 * 4), // 4MB max send message size
		grpc.ChainUnaryInterceptor(
			LoggingInterceptor(logger),
			recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(recoverPanic(logger))),
			ActorInterceptor(),
		),
	}

	s := grpc.NewServer(opts...)
	pb.RegisterAccountServiceServer(s, NewAccountServer(ledger))

	healthServer := health.NewServer()
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, healthServer)

	return s
}
