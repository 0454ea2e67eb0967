// Command server runs the catalog search HTTP API.
//
// Startup sequence: load config, configure logging, initialize tracing, open
// the database and migrate, optionally seed demo data, then serve until
// SIGINT/SIGTERM triggers a graceful shutdown.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/graphityenvato-oss/prime-elec-sub000/internal/config"
	httpapi "github.com/graphityenvato-oss/prime-elec-sub000/internal/http"
	"github.com/graphityenvato-oss/prime-elec-sub000/internal/observability"
	"github.com/graphityenvato-oss/prime-elec-sub000/internal/repo"
	"github.com/graphityenvato-oss/prime-elec-sub000/internal/sysutil"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg := config.MustLoad()

	// Logging
	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	log.Info().Str("version", version).Str("port", cfg.Port).Msg("starting catalog search API")

	// Tracing
	ctx := context.Background()
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	// Database
	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}
	if cfg.OTEL.Enabled {
		if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
			log.Warn().Err(err).Msg("gorm tracing plugin")
		}
	}
	if cfg.SeedDemoData {
		if err := repo.SeedDemoCatalog(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("demo seed failed")
		}
		log.Info().Msg("demo catalog seeded")
	}

	// HTTP
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, db, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()
	log.Info().Str("addr", srv.Addr).Msg("listening")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("stopped")
}
