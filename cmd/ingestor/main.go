package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"cupid_fragments/internal/adapters/cupid"
	"cupid_fragments/internal/adapters/observability"
	redisad "cupid_fragments/internal/adapters/redis"
	"cupid_fragments/internal/app"
	"cupid_fragments/internal/shared"
	mysqlrepo "cupid_fragments/internal/storage/mysql"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(os.Stdout, cfg.AppEnv, "ingestor", cfg.LogLevel)

	log.Info().
		Str("base", cfg.CupidBase).
		Int("workers", cfg.Workers).
		Int("properties", len(cfg.PropertyIDs)).
		Msg("ingestor starting")

	observability.Serve(cfg.MetricsAddr, observability.InitRegistry())

	if len(cfg.PropertyIDs) == 0 {
		log.Warn().Msg("INGEST_PROPERTY_IDS is empty, nothing to do")
		return
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	client, err := cupid.New(cfg.CupidBase, cfg.CupidKey, 5)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Cupid client")
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	ing := app.NewIngestionService(client, repo, cache)
	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, id := range cfg.PropertyIDs {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Warn().Err(err).Msg("ingestion interrupted")
			break
		}

		wg.Add(1)
		go func(propertyID int64) {
			defer wg.Done()
			defer sem.Release(1)

			if err := ing.IngestProperty(ctx, propertyID); err != nil {
				log.Warn().Int64("id", propertyID).Err(err).Msg("ingest failed")
				return
			}
			log.Info().Int64("id", propertyID).Msg("ingest ok")
		}(id)
	}

	wg.Wait()
	log.Info().Msg("ingestion completed")
}
