package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gobro228/ambulance-site/internal/config"
	"github.com/gobro228/ambulance-site/internal/infra"
	"github.com/gobro228/ambulance-site/internal/repository"
	"github.com/gobro228/ambulance-site/internal/router"
	"github.com/gobro228/ambulance-site/internal/seed"
	"github.com/gobro228/ambulance-site/internal/service"
	"github.com/gobro228/ambulance-site/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Env == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// Start goroutine worker pool for async low-stock alerts. Worker handlers
	// are wired here (composition root) so that the pool has full access to
	// all infrastructure dependencies.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := infra.NewMailer(cfg)
	dispatcher := worker.NewDispatcher(rdb)
	handlers := &worker.Handlers{
		StockAlert: worker.NewStockAlertWorker(mailer, cfg.AlertEmailTo),
	}
	worker.StartPool(ctx, rdb, handlers, cfg.WorkerPoolSize)

	runStartupTasks(ctx, cfg, db, dispatcher)

	r := router.New(cfg, db, rdb, dispatcher)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("inventory backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}

// runStartupTasks seeds the catalog fixtures and, when enabled, backfills
// usage history for calls recorded before the ledger existed. Both are
// idempotent; seeding failures are fatal because the kit and category
// fixtures are load-bearing for the rest of the API.
func runStartupTasks(ctx context.Context, cfg *config.Config, db *gorm.DB, dispatcher *worker.Dispatcher) {
	itemRepo := repository.NewItemRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	kitRepo := repository.NewKitRepository(db)
	usageRepo := repository.NewUsageRepository(db)
	callRepo := repository.NewCallRepository(db)

	kitSvc := service.NewKitService(kitRepo, itemRepo)

	var rng *rand.Rand
	if cfg.BackfillSeed != 0 {
		rng = rand.New(rand.NewSource(cfg.BackfillSeed))
	}
	stockSvc := service.NewStockService(itemRepo, categoryRepo, usageRepo, callRepo, kitSvc, dispatcher, rng)

	if cfg.SeedOnStart {
		if err := stockSvc.SeedCatalogAndKits(ctx, seed.DefaultItems, seed.DefaultKits); err != nil {
			log.Fatal().Err(err).Msg("failed to seed catalog")
		}
	}
	if cfg.BackfillOnStart {
		if err := stockSvc.BackfillUsage(ctx); err != nil {
			log.Error().Err(err).Msg("usage backfill failed")
		}
	}
}
