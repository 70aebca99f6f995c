package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "cupid_fragments/internal/adapters/http_server"
	"cupid_fragments/internal/adapters/observability"
	redisad "cupid_fragments/internal/adapters/redis"
	"cupid_fragments/internal/amenities"
	"cupid_fragments/internal/app"
	"cupid_fragments/internal/grid"
	"cupid_fragments/internal/profileheader"
	"cupid_fragments/internal/shared"
	mysqlrepo "cupid_fragments/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(os.Stdout, cfg.AppEnv, "api", cfg.LogLevel)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	mode, err := grid.ParseMode(cfg.GridMode)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid GRID_MODE")
	}

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cache.Ping(context.Background()); err != nil {
		// fragments still render without a cache; every read goes to MySQL
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis ping failed")
	}
	frags := app.NewFragmentService(repo, cache, cfg.CacheTTL,
		amenities.New(grid.Pin(grid.DefaultSettings(), mode)),
		profileheader.NewComposer(),
	)

	// http
	srv := server.New(log.Logger)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{F: frags, QAHooks: cfg.QAHooks})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Str("grid", string(mode)).Msg("API listening")
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("API stopped")
}
