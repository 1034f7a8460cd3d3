package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/auth"
	bidding "storefront/internal/biddingService"
	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/config"
	"storefront/internal/repository"
	"storefront/internal/savedcart"
	"storefront/internal/server"
	"storefront/internal/session"
	"storefront/internal/storage"
	"storefront/internal/store"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

// backend is the remote data backend: auctions, bids, products, profiles and carts
type backend interface {
	repository.AuctionDB
	repository.CatalogDB
	repository.CartDB
}

func main() {
	cfg := config.Load()
	utils.ConfigureLogger(cfg.LogLevel, nil)
	gin.SetMode(gin.ReleaseMode)

	kv, closeKV := openKV(cfg)
	defer closeKV()

	repo, closeRepo := openBackend(cfg)
	defer closeRepo()

	authSvc := auth.NewMemoryService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.BcryptCost)
	registry := store.NewRegistry(kv, store.Options{PersistTimeout: cfg.PersistTimeout})

	router := server.SetupRouter(server.Services{
		Stores:         registry,
		Sessions:       session.NewManager(authSvc, repo),
		Bidding:        bidding.NewBiddingService(repo, cfg.BidIncrement),
		Catalog:        catalog.NewService(repo, repo).WithReadTimeout(cfg.RequestTimeout),
		Checkout:       checkout.NewService(),
		SavedCarts:     savedcart.NewService(repo, repo),
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		utils.Info("starting storefront server", map[string]any{"addr": cfg.Port, "storage": cfg.StorageBackend})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Error("server shutdown failed", map[string]any{"error": err.Error()})
		return
	}
	utils.Info("server stopped", nil)
}

// openKV selects the storage behind every client's persisted store
func openKV(cfg config.Config) (storage.KV, func()) {
	if cfg.StorageBackend != config.StorageRedis {
		return storage.NewMemoryKV(), func() {}
	}

	client, err := storage.DialRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, false)
	if err != nil {
		utils.Fatal("failed to connect to redis", map[string]any{"addr": cfg.RedisAddr, "error": err.Error()})
	}
	return storage.NewRedisKV(client), func() { _ = client.Close() }
}

// openBackend connects to Postgres when DATABASE_URL is set, otherwise it
// returns an in-memory backend seeded with demo data
func openBackend(cfg config.Config) (backend, func()) {
	if cfg.DatabaseURL == "" {
		repo := repository.NewMemoryRepo()
		repository.SeedDemo(repo, time.Now().UTC())
		utils.Info("using seeded in-memory backend", nil)
		return repo, func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := repository.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		utils.Fatal("failed to connect to postgres", map[string]any{"error": err.Error()})
	}
	if err := repository.RunMigrations(db, cfg.MigrationsPath); err != nil {
		utils.Fatal("failed to run migrations", map[string]any{"path": cfg.MigrationsPath, "error": err.Error()})
	}
	return repository.NewPostgresRepo(db), func() { _ = db.Close() }
}
