package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/astrion_panel/internal/httpserver"
	"github.com/Skotchmaster/astrion_panel/internal/models"
	"github.com/Skotchmaster/astrion_panel/internal/repo"
	"github.com/Skotchmaster/astrion_panel/internal/service"
	"github.com/Skotchmaster/astrion_panel/pkg/config"
	pkgdb "github.com/Skotchmaster/astrion_panel/pkg/db"
	"github.com/Skotchmaster/astrion_panel/pkg/events"
	"github.com/Skotchmaster/astrion_panel/pkg/logging"
	"github.com/Skotchmaster/astrion_panel/pkg/metrics"
)

type store interface {
	repo.ProductRepo
	repo.UserRepo
}

func seeds(cfg config.Config) ([]models.Product, []models.User) {
	if !cfg.SeedData {
		return nil, nil
	}
	return repo.SeedProducts(), repo.SeedUsers()
}

func openStore(ctx context.Context, cfg config.Config) (store, *gorm.DB, error) {
	products, users := seeds(cfg)
	if cfg.Store == config.StoreMemory {
		return repo.NewMemoryRepo(products, users), nil, nil
	}

	db, err := pkgdb.Open(ctx, pkgdb.MemoryDSN)
	if err != nil {
		return nil, nil, err
	}
	r := &repo.GormRepo{DB: db}
	if err := r.Migrate(ctx); err != nil {
		_ = pkgdb.Close(db)
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	if err := r.Seed(ctx, products, users); err != nil {
		_ = pkgdb.Close(db)
		return nil, nil, fmt.Errorf("seed: %w", err)
	}
	return r, db, nil
}

func publisher(cfg config.Config, logger *slog.Logger) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		return events.Noop{}
	}
	p, err := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopicPrefix)
	if err != nil {
		logger.Warn("kafka_disabled", "error", err)
		return events.Noop{}
	}
	return p
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	st, db, err := openStore(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("store open: %v", err)
	}

	pub := publisher(cfg, logger)
	m := metrics.New()
	rt := service.Runtime{Publisher: pub, Metrics: m, Latency: cfg.SimulatedLatency}

	e := echo.New()
	e.HideBanner = true
	e.Use(httpserver.Common(logger, m)...)

	httpserver.Register(e, &httpserver.Deps{
		CatalogHandler: &httpserver.CatalogHTTP{Svc: &service.CatalogService{Repo: st, Runtime: rt}},
		UserHandler:    &httpserver.UserHTTP{Svc: &service.UserService{Repo: st, Runtime: rt}},
		Metrics:        m,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		logger.Info("panel_listening", "addr", srv.Addr, "store", cfg.Store, "latency", cfg.SimulatedLatency.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown_error", "error", err)
	}
	if err := pub.Close(); err != nil {
		logger.Error("kafka_close_error", "error", err)
	}
	if db != nil {
		_ = pkgdb.Close(db)
	}

	logger.Info("panel_stopped")
}
