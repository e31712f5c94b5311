package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abrar2030/FinovaBank/internal/config"
	"github.com/abrar2030/FinovaBank/internal/db"
	"github.com/abrar2030/FinovaBank/internal/db/memory"
	"github.com/abrar2030/FinovaBank/internal/domain"
	"github.com/abrar2030/FinovaBank/internal/events"
	grpcserver "github.com/abrar2030/FinovaBank/internal/grpc"
	"github.com/abrar2030/FinovaBank/internal/handlers"
	"github.com/abrar2030/FinovaBank/internal/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("account-service stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize account store
	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	// Initialize event publisher
	var publisher domain.EventPublisher
	if cfg.RabbitMQ.URL != "" {
		rabbit, err := events.NewRabbitMQPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, cfg.RabbitMQ.RoutingPrefix)
		if err != nil {
			return err
		}
		defer rabbit.Close()
		publisher = rabbit
		log.Info("rabbitmq publisher initialized", "exchange", cfg.RabbitMQ.Exchange)
	} else {
		log.Info("RABBITMQ_URL not set, account events are disabled")
	}

	// Create ledger
	numbers, err := domain.NewNumberGenerator(cfg.Ledger.BankCode, cfg.Ledger.NumberAttempts)
	if err != nil {
		return err
	}
	ledger, err := domain.NewLedger(store, domain.Options{
		Retry: domain.RetryPolicy{
			MaxAttempts:     cfg.Ledger.MaxAttempts,
			InitialInterval: cfg.Ledger.RetryInitialInterval,
			MaxInterval:     cfg.Ledger.RetryMaxInterval,
		},
		Numbers:   numbers,
		Publisher: publisher,
		Logger:    log,
	})
	if err != nil {
		return err
	}
	log.Info("account ledger initialized")

	// Create servers
	grpcServer := grpcserver.NewGRPCServer(ledger, log)
	httpServer := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handlers.NewRouter(handlers.NewHandler(ledger, log)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", cfg.GRPCPort, err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("gRPC server starting", "port", cfg.GRPCPort)
		return grpcServer.Serve(lis)
	})

	g.Go(func() error {
		log.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Wait for interrupt signal or a server failure, then shut down both
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down servers...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		grpcServer.GracefulStop()
		return httpServer.Shutdown(shutdownCtx)
	})

	serveErr := g.Wait()

	// Publishes still in flight must finish before the deferred publisher close
	drainCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := ledger.WaitForEvents(drainCtx); err != nil {
		log.Warn("account events still pending at shutdown", "error", err)
	}

	if serveErr != nil {
		return serveErr
	}
	log.Info("servers stopped")
	return nil
}

// openStore builds the configured account store and returns its cleanup.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (domain.AccountStore, func(), error) {
	switch cfg.Database.Backend {
	case config.StoreBackendMemory:
		log.Warn("using in-memory account store, data is not persisted")
		return memory.NewAccountStore(), func() {}, nil

	case config.StoreBackendPostgres:
		if cfg.Database.MigrateOnStart {
			if err := db.RunMigrations(ctx, cfg.Database.URL); err != nil {
				return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
			}
			log.Info("database migrations applied")
		}

		pool, err := db.NewPool(ctx, cfg.Database.URL, db.PoolSettings{
			MaxConns:        int32(cfg.Database.MaxConns),
			MinConns:        int32(cfg.Database.MinConns),
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info("database connection pool initialized")
		return db.NewAccountRepository(pool.Pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.Database.Backend)
	}
}
