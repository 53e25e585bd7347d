// @title           Storefront E-commerce API
// @version         1.0
// @description     Users, products, carts, orders and checkout behind JWT authentication.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/storefront/ecommerce-api/docs"
	"github.com/storefront/ecommerce-api/internal/api"
	"github.com/storefront/ecommerce-api/internal/api/handler"
	"github.com/storefront/ecommerce-api/internal/core/ports"
	"github.com/storefront/ecommerce-api/internal/core/service"
	"github.com/storefront/ecommerce-api/internal/infrastructure/db/mongo"
	"github.com/storefront/ecommerce-api/internal/infrastructure/db/redis"
	"github.com/storefront/ecommerce-api/internal/infrastructure/payment"
	"github.com/storefront/ecommerce-api/internal/infrastructure/security"
	"github.com/storefront/ecommerce-api/internal/pkg/config"
	"github.com/storefront/ecommerce-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic("load config: " + err.Error())
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "ecommerce-api",
	})
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting")

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  "ecommerce-api",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongo")
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(dctx)
	}()
	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("ensure mongo indexes")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}
	defer rdb.Close()

	tokens, err := security.NewTokenManager(cfg.JWTSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("token manager")
	}
	hasher := security.NewBcryptHasher(security.DefaultCost)

	userRepo := mongo.NewUserRepository(db)
	productRepo := mongo.NewProductRepository(db)
	cartRepo := mongo.NewCartRepository(db)
	orderRepo := mongo.NewOrderRepository(db)

	var gateway ports.PaymentGateway = payment.Unavailable{}
	if cfg.Payment.StripeKey != "" {
		gateway = payment.NewStripeGateway(cfg.Payment.StripeKey)
	} else {
		log.Warn().Msg("STRIPE_KEY not set, checkout will answer 503")
	}

	e := api.NewRouter(api.Dependencies{
		Logger:   log,
		Verifier: tokens,
		Auth:     service.NewAuthService(userRepo, hasher, tokens, logger.Component("auth")),
		Users:    service.NewUserService(userRepo, hasher, logger.Component("users")),
		Products: service.NewProductService(productRepo, logger.Component("products")),
		Carts:    service.NewCartService(cartRepo, logger.Component("carts")),
		Orders:   service.NewOrderService(orderRepo, logger.Component("orders")),
		Checkout: service.NewCheckoutService(
			gateway,
			orderRepo,
			redis.NewIdempotencyGuard(rdb, "checkout"),
			cfg.Payment.Currency,
			logger.Component("checkout"),
		),
		Readiness: map[string]handler.Pinger{
			"mongo": handler.PingFunc(func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }),
			"redis": handler.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() }),
		},
		Metrics: true,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
}
