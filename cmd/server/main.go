// Command server runs the wallet dashboard gateway.
//
//	@title			Wallet Dashboard API
//	@version		1.0
//	@description	Browser-facing gateway of the crypto wallet dashboard. Keeps backend bearer tokens server-side and gates signed-in and administrator pages.
//	@BasePath		/
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/proyecto-awi/wallet-dashboard/internal/api"
	"github.com/proyecto-awi/wallet-dashboard/internal/api/middleware"
	"github.com/proyecto-awi/wallet-dashboard/internal/core/service"
	"github.com/proyecto-awi/wallet-dashboard/internal/infrastructure/backend"
	"github.com/proyecto-awi/wallet-dashboard/internal/infrastructure/config"
	mongodb "github.com/proyecto-awi/wallet-dashboard/internal/infrastructure/db/mongo"
	redisdb "github.com/proyecto-awi/wallet-dashboard/internal/infrastructure/db/redis"
	"github.com/proyecto-awi/wallet-dashboard/internal/infrastructure/http/handlers"
	"github.com/proyecto-awi/wallet-dashboard/internal/infrastructure/pricefeed"
	"github.com/proyecto-awi/wallet-dashboard/internal/infrastructure/queue"
	"github.com/proyecto-awi/wallet-dashboard/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.IsDevelopment()})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis unavailable")
	}
	defer rdb.Close()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo unavailable")
	}
	defer func() {
		if err := mongodb.Disconnect(mongoClient, shutdownTimeout); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	auditRepo := mongodb.NewAuditRepository(db, cfg.Audit.Retention)
	if err := auditRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("audit indexes")
	}

	// --- Audit trail ---
	auditCtx, stopAudit := context.WithCancel(context.Background())
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, auditRepo, logger.For("audit"))
	dispatcher.Start(auditCtx)

	// --- Upstreams ---
	client := backend.NewClient(backend.Config{
		APIURL:  cfg.Backend.APIURL,
		AuthURL: cfg.Backend.AuthURL,
		Timeout: cfg.Backend.Timeout,
	}, logger.For("backend"))
	feed := pricefeed.NewCoinbase(pricefeed.Config{
		PriceURL:    cfg.Market.PriceURL,
		ExchangeURL: cfg.Market.ExchangeURL,
		Timeout:     cfg.Market.Timeout,
	}, logger.For("pricefeed"))

	// --- Services ---
	stores := redisdb.NewCredentialStore(rdb, cfg.Session.CredentialsTTL, logger.For("credentials"))
	validator := service.NewSessionValidator(client, cfg.Backend.ValidationTimeout, logger.For("session"))
	authService := service.NewAuthService(client, logger.For("auth"))
	tradeService := service.NewTradeService(client, client, feed, logger.For("trade"))

	profileKey, err := middleware.DeriveProfileKey(cfg.Session.Secret)
	if err != nil {
		log.Fatal().Err(err).Msg("derive profile key")
	}

	e := api.NewRouter(api.Dependencies{
		Stores:        stores,
		ProfileKey:    profileKey,
		SecureCookies: cfg.Session.SecureCookies,
		Validator:     validator,
		Auth:          authService,
		Trade:         tradeService,
		Wallet:        client,
		Crypto:        client,
		Admin:         client,
		Prices:        feed,
		AuditLog:      auditRepo,
		Gate: middleware.GateOptions{
			LoginPath: cfg.Session.LoginPath,
			Timeout:   cfg.Session.GateTimeout,
			Audit:     dispatcher,
		},
		Checks: map[string]handlers.Check{
			"redis":   handlers.RedisCheck(rdb),
			"mongo":   handlers.MongoCheck(db),
			"backend": client.Ping,
		},
		Log: log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	// No request can record a decision any more; flush what is queued.
	stopAudit()
	dispatcher.Wait()
	log.Info().Msg("server exited")
}
