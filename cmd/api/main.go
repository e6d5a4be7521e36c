// @title        Urbanova Storefront API
// @version      1.0
// @description  Cart, account, and catalog service for the Urbanova storefront.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/urbanova/storefront/internal/api"
	"github.com/urbanova/storefront/internal/api/metrics"
	"github.com/urbanova/storefront/internal/catalog"
	"github.com/urbanova/storefront/internal/core/ports"
	"github.com/urbanova/storefront/internal/core/service"
	"github.com/urbanova/storefront/internal/infrastructure/config"
	kvfile "github.com/urbanova/storefront/internal/infrastructure/kv/file"
	kvmemory "github.com/urbanova/storefront/internal/infrastructure/kv/memory"
	kvmongo "github.com/urbanova/storefront/internal/infrastructure/kv/mongo"
	kvredis "github.com/urbanova/storefront/internal/infrastructure/kv/redis"
	"github.com/urbanova/storefront/internal/infrastructure/worker"
	"github.com/urbanova/storefront/pkg/logger"
)

const sweepInterval = time.Minute

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Store.Backend).Msg("failed to open persistence store")
	}
	defer cleanup()

	products := catalog.New(nil)
	accounts := service.NewAccountService(ctx, store, log)
	carts := service.NewCartService(products, log)

	sweeper := worker.NewSweeper(carts, cfg.CartTTL, sweepInterval, log, func(n int) {
		metrics.CartsEvictedTotal.Add(float64(n))
		metrics.CartsActive.Sub(float64(n))
	})
	sweeper.Start(ctx)

	e := api.NewRouter(api.Deps{
		Accounts:  accounts,
		Carts:     carts,
		Catalog:   products,
		Store:     store,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  24 * time.Hour,
		Logger:    log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("backend", cfg.Store.Backend).Msg("storefront API listening")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// openStore builds the persistence adapter selected by configuration and
// returns a cleanup function for any underlying client.
func openStore(ctx context.Context, cfg *config.Config) (ports.KV, func(), error) {
	noop := func() {}

	switch cfg.Store.Backend {
	case config.BackendFile:
		store, err := kvfile.New(cfg.Store.File)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil

	case config.BackendRedis:
		client, err := kvredis.Connect(ctx, kvredis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, noop, err
		}
		return kvredis.NewStore(client), func() { _ = client.Close() }, nil

	case config.BackendMongo:
		client, db, err := kvmongo.Connect(ctx, kvmongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, noop, err
		}
		cleanup := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}
		return kvmongo.NewStore(db), cleanup, nil

	case config.BackendMemory:
		return kvmemory.New(), noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
