package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eventra/event-console/internal/api"
	"github.com/eventra/event-console/internal/infrastructure/config"
	"github.com/eventra/event-console/internal/infrastructure/db/mongo"
	"github.com/eventra/event-console/internal/infrastructure/db/redis"
	"github.com/eventra/event-console/internal/infrastructure/fixtures"
	"github.com/eventra/event-console/pkg/logger"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// @title        Event Console API
// @version      1.0
// @description  Admin console backend for society event management.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.Init(logger.Options{Service: "event-console"})
		boot.Fatal().Err(err).Msg("configuration failed")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "event-console",
		Pretty:  cfg.Env == "development",
	})

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	var db *mongodriver.Database
	var providers api.Providers
	switch cfg.DataBackend {
	case "mongo":
		client, database, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()

		db = database
		users := mongo.NewUserRepository(database)
		events := mongo.NewEventRepository(database)
		if err := users.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("user indexes failed")
		}
		if err := events.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("event indexes failed")
		}

		providers = api.Providers{
			Users:      users,
			Events:     events,
			Societies:  mongo.NewSocietyRepository(database),
			Vendors:    mongo.NewVendorRepository(database),
			Exhibitors: mongo.NewExhibitorRepository(database),
			Billing:    mongo.NewBillingRepository(database),
		}
	default:
		providers = api.Providers{
			Users:      fixtures.NewUserRepository(),
			Events:     fixtures.NewEventRepository(),
			Societies:  fixtures.NewSocietyRepository(),
			Vendors:    fixtures.NewVendorRepository(),
			Exhibitors: fixtures.NewExhibitorRepository(),
			Billing:    fixtures.NewBillingRepository(),
		}
	}

	e := api.NewRouter(providers, redis.NewKV(rdb), db, rdb, api.Options{
		JWTSecret:    cfg.JWTSecret,
		AuthMode:     cfg.AuthMode,
		SharedSecret: cfg.SharedSecret,
		SubmitDelay:  cfg.SubmitDelay,
		DraftTTL:     cfg.DraftTTL,
	}, log)

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("backend", cfg.DataBackend).
			Msg("event console listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
