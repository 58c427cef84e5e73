package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/addisavenue/storefront-backend/api/routes"
	"github.com/addisavenue/storefront-backend/internal/cart"
	"github.com/addisavenue/storefront-backend/internal/catalog"
	"github.com/addisavenue/storefront-backend/internal/images"
	"github.com/addisavenue/storefront-backend/internal/orders"
	sessionsvc "github.com/addisavenue/storefront-backend/internal/session"
	"github.com/addisavenue/storefront-backend/internal/wishlist"
	"github.com/addisavenue/storefront-backend/pkg/auth/session"
	"github.com/addisavenue/storefront-backend/pkg/config"
	"github.com/addisavenue/storefront-backend/pkg/db"
	"github.com/addisavenue/storefront-backend/pkg/kvstore"
	"github.com/addisavenue/storefront-backend/pkg/logger"
	"github.com/addisavenue/storefront-backend/pkg/metrics"
	"github.com/addisavenue/storefront-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx := context.Background()

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(ctx, "error closing database", err)
		}
	}()

	kv, err := kvstore.New(dbClient.DB())
	if err != nil {
		logg.Error(ctx, "failed to prepare key-value store", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	var checker session.AccessSessionChecker
	var sessionManager *session.Manager
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			logg.Error(ctx, "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(ctx, "error closing redis", err)
			}
		}()

		sessionManager, err = session.NewManager(redisClient, cfg.JWT)
		if err != nil {
			logg.Error(ctx, "failed to create session manager", err)
			os.Exit(1)
		}
		checker = sessionManager
	} else {
		logg.Warn(ctx, "redis not configured, rate limiting and session liveness disabled")
	}

	storeMetrics := metrics.NewStoreMetrics(prometheus.DefaultRegisterer)

	catalogSvc, err := catalog.NewService(catalog.Seed(), storeMetrics)
	if err != nil {
		logg.Error(ctx, "failed to create catalog service", err)
		os.Exit(1)
	}

	cartStore, err := cart.NewStore(ctx, kv, logg, storeMetrics)
	if err != nil {
		logg.Error(ctx, "failed to create cart store", err)
		os.Exit(1)
	}

	wishlistStore, err := wishlist.NewStore(ctx, kv, logg, storeMetrics)
	if err != nil {
		logg.Error(ctx, "failed to create wishlist store", err)
		os.Exit(1)
	}

	sessionStore, err := sessionsvc.NewStore(ctx, kv, logg, storeMetrics)
	if err != nil {
		logg.Error(ctx, "failed to create session store", err)
		os.Exit(1)
	}

	sessionService, err := sessionsvc.NewService(sessionStore, sessionManager, cfg.JWT, cfg.Password, cfg.Auth, logg)
	if err != nil {
		logg.Error(ctx, "failed to create session service", err)
		os.Exit(1)
	}

	imageStore, err := images.NewStore(ctx, kv, logg, storeMetrics)
	if err != nil {
		logg.Error(ctx, "failed to create image store", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	startCtx := logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(startCtx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:   cfg,
			Logger:   logg,
			DB:       dbClient,
			Redis:    redisClient,
			Checker:  checker,
			Catalog:  catalogSvc,
			Cart:     cartStore,
			Wishlist: wishlistStore,
			Session:  sessionService,
			Orders:   orders.NewService(),
			Images:   imageStore,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(startCtx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
