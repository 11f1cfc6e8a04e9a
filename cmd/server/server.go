package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	grpc_auth "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	arcanumv1alpha1 "github.com/KirkDiggler/arcanum-api/internal/api/arcanum/v1alpha1"
	"github.com/KirkDiggler/arcanum-api/internal/auth"
	"github.com/KirkDiggler/arcanum-api/internal/catalog"
	"github.com/KirkDiggler/arcanum-api/internal/config"
	"github.com/KirkDiggler/arcanum-api/internal/engine"
	"github.com/KirkDiggler/arcanum-api/internal/engine/dnd5e"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
	"github.com/KirkDiggler/arcanum-api/internal/handlers/arcanum/v1alpha1"
	"github.com/KirkDiggler/arcanum-api/internal/orchestrators/account"
	"github.com/KirkDiggler/arcanum-api/internal/orchestrators/character"
	"github.com/KirkDiggler/arcanum-api/internal/pkg/clock"
	"github.com/KirkDiggler/arcanum-api/internal/pkg/idgen"
	"github.com/KirkDiggler/arcanum-api/internal/redis"
	characterrepo "github.com/KirkDiggler/arcanum-api/internal/repositories/character"
	gamestaterepo "github.com/KirkDiggler/arcanum-api/internal/repositories/gamestate"
	inventoryrepo "github.com/KirkDiggler/arcanum-api/internal/repositories/inventory"
	userrepo "github.com/KirkDiggler/arcanum-api/internal/repositories/user"
)

var (
	grpcPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the arcanum gRPC server with the account, catalog and character services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port (overrides ARCANUM_GRPC_PORT)")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address list (overrides ARCANUM_REDIS_ADDR)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := connectRedis(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close() // nolint:errcheck // shutting down
	}()

	srv, err := newGRPCServer(cfg, client)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// newGRPCServer wires storage, the rules engine and the handlers into a
// server with logging, recovery and auth interceptors.
func newGRPCServer(cfg *config.Config, client redis.Client) (*grpc.Server, error) {
	clk := clock.New()

	cat, err := catalog.LoadDefault()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}
	eng, err := dnd5e.New(&dnd5e.Config{Catalog: cat})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}

	tokens, err := auth.NewTokenManager(&auth.TokenManagerConfig{
		Secret: cfg.JWTSecret,
		TTL:    cfg.TokenTTL,
		Clock:  clk,
	})
	if err != nil {
		return nil, err
	}

	users, err := userrepo.NewRedis(&userrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	characters, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	states, err := gamestaterepo.NewRedis(&gamestaterepo.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	inventory, err := inventoryrepo.NewRedis(&inventoryrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}

	accountService, err := account.New(&account.Config{
		UserRepo:     users,
		Tokens:       tokens,
		IDGenerator:  idgen.NewUUID("user"),
		Clock:        clk,
		PasswordCost: cfg.BcryptCost,
	})
	if err != nil {
		return nil, err
	}
	characterService, err := character.New(&character.Config{
		CharacterRepo:   characters,
		GameStateRepo:   states,
		InventoryRepo:   inventory,
		Engine:          eng,
		IDGenerator:     idgen.NewUUID("char"),
		ItemIDGenerator: idgen.NewUUID("item"),
		Clock:           clk,
		HealthPolicy:    engine.HealthPolicy(cfg.HealthPolicy),
	})
	if err != nil {
		return nil, err
	}

	accountHandler, err := v1alpha1.NewAccountHandler(&v1alpha1.AccountHandlerConfig{
		AccountService: accountService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create account handler: %w", err)
	}
	catalogHandler, err := v1alpha1.NewCatalogHandler(&v1alpha1.CatalogHandlerConfig{
		Catalog: cat,
		Engine:  eng,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog handler: %w", err)
	}
	characterHandler, err := v1alpha1.NewCharacterHandler(&v1alpha1.CharacterHandlerConfig{
		CharacterService: characterService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create character handler: %w", err)
	}

	logger := grpc_logging.LoggerFunc(logFunc)
	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(recoverPanic)
	authFunc := auth.AuthFunc(tokens)

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
			grpc_auth.UnaryServerInterceptor(authFunc),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
			grpc_auth.StreamServerInterceptor(authFunc),
		),
	)

	arcanumv1alpha1.RegisterAccountServiceServer(srv, accountHandler)
	arcanumv1alpha1.RegisterCatalogServiceServer(srv, catalogHandler)
	arcanumv1alpha1.RegisterCharacterServiceServer(srv, characterHandler)

	// health checks run through the auth interceptor, so the health server
	// opts out the same way the public services do
	healthServer := publicHealthServer{health.NewServer()}
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	for _, name := range []string{
		arcanumv1alpha1.AccountServiceName,
		arcanumv1alpha1.CatalogServiceName,
		arcanumv1alpha1.CharacterServiceName,
	} {
		healthServer.SetServingStatus(name, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	return srv, nil
}

type publicHealthServer struct {
	*health.Server
}

func (publicHealthServer) AuthFuncOverride(ctx context.Context, _ string) (context.Context, error) {
	return ctx, nil
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}

func recoverPanic(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "recovered from panic", "panic", fmt.Sprint(p))
	return errors.ToGRPCError(errors.Internal("internal error"))
}
