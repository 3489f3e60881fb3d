package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/scavhall/scavrack/internal/catalog"
	"github.com/scavhall/scavrack/internal/claims"
	"github.com/scavhall/scavrack/internal/collection"
	"github.com/scavhall/scavrack/internal/config"
	"github.com/scavhall/scavrack/internal/database"
	"github.com/scavhall/scavrack/internal/feed"
	"github.com/scavhall/scavrack/internal/handler"
	"github.com/scavhall/scavrack/internal/rotation"
	"github.com/scavhall/scavrack/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	ctx := context.Background()

	// Listing feed: a local file wins over the upstream URL for dev catalogs
	var source feed.Source
	if cfg.FeedFile != "" {
		source = feed.NewFileSource(cfg.FeedFile)
		slog.Info("Using file listing source", "path", cfg.FeedFile)
	} else {
		source = feed.NewHTTPSource(cfg.FeedURL)
		slog.Info("Using HTTP listing source", "url", cfg.FeedURL)
	}
	snapshotService := feed.NewService(source, catalog.NewNormalizer(), cfg.FeedCacheTTL)

	registry, err := collection.NewRegistry(config.ConfigPathCollections)
	if err != nil {
		slog.Error("Failed to load collection config", "error", err)
		os.Exit(1)
	}

	claimStore, cleanup, err := buildClaimStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize claim store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	claimService := claims.NewService(ctx, claimStore)
	rotationManager := rotation.NewManager()

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, snapshotService, registry, rotationManager, claimService)

	// Serve until interrupted, then drain in-flight requests
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			slog.Error("Server forced shutdown", "error", err)
		}
	}

	slog.Info("Server stopped")
}

// buildClaimStore creates the configured claim persistence backend. The
// returned cleanup closes any held resources and is safe to call once.
func buildClaimStore(ctx context.Context, cfg *config.Config) (claims.Store, func(), error) {
	switch cfg.ClaimsBackend {
	case config.ClaimsBackendPostgres:
		connString := cfg.GetDBConnString()

		if err := database.Migrate(ctx, connString); err != nil {
			return nil, nil, err
		}

		pool, err := database.NewPool(ctx, connString, database.PoolConfig{})
		if err != nil {
			return nil, nil, err
		}
		return claims.NewPostgresStore(pool), pool.Close, nil

	case config.ClaimsBackendMemory:
		return claims.NewMemoryStore(), func() {}, nil

	default:
		return claims.NewFileStore(cfg.ClaimsFile), func() {}, nil
	}
}
