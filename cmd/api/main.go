package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/auth"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/chat"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/config"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/data"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/db"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/logger"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/middleware"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/pubsub"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/push"
	v1 "github.com/PaulBabatuyi/listingChat-gRPC/proto/market/v1"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

const (
	tokenTTL = 24 * time.Hour
	pushTTL  = 24 * 60 * 60 // seconds a push service holds an undelivered alert
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string
	root := &cobra.Command{
		Use:          "api",
		Short:        "Listing messaging gRPC server",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file")

	root.AddCommand(newServeCmd(&envFile), newMigrateCmd(&envFile), newTokenCmd(&envFile))
	return root
}

func newServeCmd(envFile *string) *cobra.Command {
	var storeKind string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the messaging service",
		RunE: func(cmd *cobra.Command, args []string) error {
			if storeKind != "mongo" && storeKind != "memory" {
				return fmt.Errorf("--store must be mongo or memory, got %q", storeKind)
			}
			cfg, err := config.Load(*envFile)
			if err != nil {
				return err
			}
			if err := cfg.Validate(storeKind == "mongo"); err != nil {
				return err
			}
			log := logger.Init(cfg.LogEnv)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, storeKind, log)
		},
	}
	cmd.Flags().StringVar(&storeKind, "store", "mongo", "message store: mongo or memory")
	return cmd
}

func newMigrateCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the MongoDB indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*envFile)
			if err != nil {
				return err
			}
			if cfg.MongoURI == "" {
				return errors.New("MONGODB_URI must be set")
			}
			log := logger.Init(cfg.LogEnv)

			dbClient, err := db.New(cmd.Context(), cfg.MongoURI, cfg.MongoDatabase)
			if err != nil {
				return err
			}
			defer func() { _ = dbClient.Close(context.Background()) }()

			if err := dbClient.CreateIndexes(cmd.Context()); err != nil {
				return err
			}
			log.Info().Str("database", cfg.MongoDatabase).Msg("indexes created")
			return nil
		},
	}
}

// newTokenCmd mints a token for local testing with chatctl.
func newTokenCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "token <user-id>",
		Short: "Print a signed token for a user id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*envFile)
			if err != nil {
				return err
			}
			jwtMgr, err := newJWTManager(cfg)
			if err != nil {
				return err
			}
			token, _, err := jwtMgr.GenerateToken(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}

// newJWTManager prefers JWT_KEYS so tokens can be rotated, falling back to
// the single JWT_SECRET.
func newJWTManager(cfg *config.Config) (*auth.JWTManager, error) {
	if cfg.JWTKeys != "" {
		keys, err := cfg.SigningKeys()
		if err != nil {
			return nil, err
		}
		return auth.NewJWTManagerFromKeys(keys, cfg.JWTActiveKid, tokenTTL), nil
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("either JWT_SECRET or JWT_KEYS must be set")
	}
	return auth.NewJWTManager(cfg.JWTSecret, tokenTTL), nil
}

func openStore(ctx context.Context, cfg *config.Config, kind string) (Store, func(), error) {
	if kind == "memory" {
		return data.NewMemoryStore(), func() {}, nil
	}
	dbClient, err := db.New(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, nil, err
	}
	// Ensure indexes exist
	if err := dbClient.CreateIndexes(ctx); err != nil {
		_ = dbClient.Close(context.Background())
		return nil, nil, err
	}
	store := mongoStore{
		MessagesStore:  data.NewMessagesStore(dbClient.MessagesCollection()),
		DirectoryStore: data.NewDirectoryStore(dbClient.ListingsCollection(), dbClient.RatingsCollection(), dbClient.ProfilesCollection()),
		PushStore:      data.NewPushStore(dbClient.PushSubscriptionsCollection()),
	}
	return store, func() { _ = dbClient.Close(context.Background()) }, nil
}

func openBus(ctx context.Context, cfg *config.Config) (pubsub.Bus, error) {
	if cfg.RedisAddr == "" {
		return pubsub.NewMemoryBus(0), nil
	}
	client, err := pubsub.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}
	return pubsub.NewRedisBus(client, 0), nil
}

func newNotifier(cfg *config.Config, store Store, log zerolog.Logger) chat.Notifier {
	if !cfg.PushEnabled() {
		log.Info().Msg("VAPID keys not set; push notifications disabled")
		return nil
	}
	gw := push.NewWebPush(push.VAPID{
		PublicKey:  cfg.VAPIDPublicKey,
		PrivateKey: cfg.VAPIDPrivateKey,
		Subject:    cfg.VAPIDSubject,
	}, pushTTL, nil)
	return push.NewNotifier(store, store, gw, cfg.AppURL, log)
}

// serverOptions assembles TLS and the interceptor chains:
// logging -> auth -> rate limit.
func serverOptions(cfg *config.Config, jwtMgr *auth.JWTManager, limiter *middleware.LimiterStore, log zerolog.Logger) ([]grpc.ServerOption, error) {
	var opts []grpc.ServerOption

	// If TLS certs are configured, create server credentials and require TLS
	if cfg.TLSCert != "" && cfg.TLSKey != "" {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLSCert, cfg.TLSKey)
		if err != nil {
			return nil, fmt.Errorf("failed to load TLS certs: %w", err)
		}
		opts = append(opts, grpc.Creds(creds))
	} else if cfg.RequireTLS {
		return nil, errors.New("REQUIRE_TLS is true but TLS_CERT/TLS_KEY are not configured")
	}

	limited := map[string]bool{v1.MessagingService_SendMessage_FullMethodName: true}
	opts = append(opts,
		grpc.ChainUnaryInterceptor(
			middleware.LoggingUnaryInterceptor(log),
			authUnaryInterceptor(jwtMgr),
			middleware.RateLimitUnaryInterceptor(limiter, limited, userRateKey),
		),
		grpc.ChainStreamInterceptor(
			middleware.LoggingStreamInterceptor(log),
			authStreamInterceptor(jwtMgr),
		),
	)
	return opts, nil
}

func serve(ctx context.Context, cfg *config.Config, storeKind string, log zerolog.Logger) error {
	store, closeStore, err := openStore(ctx, cfg, storeKind)
	if err != nil {
		return err
	}
	defer closeStore()

	bus, err := openBus(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = bus.Close() }()

	jwtMgr, err := newJWTManager(cfg)
	if err != nil {
		return err
	}

	// small burst so a user can fire off a couple of quick replies
	limiter := middleware.NewLimiterStore(cfg.RateLimitRPM, 3, time.Minute)
	defer limiter.Stop()

	opts, err := serverOptions(cfg, jwtMgr, limiter, log)
	if err != nil {
		return err
	}
	grpcServer := grpc.NewServer(opts...)

	srv := newServer(store, bus, newNotifier(cfg, store, log), cfg.PushTimeout, log)
	registerService(grpcServer, srv)

	listenAddr := fmt.Sprintf(":%s", cfg.Port)
	lis, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", listenAddr).Str("store", storeKind).Msg("gRPC server listening")
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down gRPC server")
		// closing the bus ends Subscribe streams, which GracefulStop waits for
		_ = bus.Close()
		grpcServer.GracefulStop()
		return nil
	})
	err = g.Wait()

	// let in-flight push notifications finish
	srv.sender.Wait()
	return err
}
