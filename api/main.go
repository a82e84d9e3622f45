package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rogerio-castellano/product-manager/internal/auth"
	"github.com/rogerio-castellano/product-manager/internal/config"
	"github.com/rogerio-castellano/product-manager/internal/db"
	api "github.com/rogerio-castellano/product-manager/internal/http"
	"github.com/rogerio-castellano/product-manager/internal/http/handlers"
	rl "github.com/rogerio-castellano/product-manager/internal/http/rate_limiter"
	"github.com/rogerio-castellano/product-manager/internal/logging"
	"github.com/rogerio-castellano/product-manager/internal/repo"
	"go.uber.org/zap"
)

const (
	shutdownTimeout     = 10 * time.Second
	visitorCleanupEvery = time.Minute
	visitorMaxIdle      = 3 * time.Minute
)

// @title Product Manager API
// @version 1.0
// @description REST API for managing a product catalog keyed by unique product codes.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", "", "path to an optional config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		productRepo repo.ProductRepository
		metricsRepo repo.MetricsRepository
	)
	switch cfg.Storage {
	case config.StoragePostgres:
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
		if err := db.Migrate(database); err != nil {
			return err
		}
		productRepo = repo.NewPostgresProductRepository(database)
		metricsRepo = repo.NewPostgresMetricsRepository(database)
	default:
		memRepo := repo.NewInMemoryProductRepository()
		productRepo = memRepo
		metricsRepo = repo.NewInMemoryMetricsRepository(memRepo)
	}
	logger.Info("storage ready", zap.String("storage", cfg.Storage))

	var authSvc *auth.Service
	if cfg.AuthEnabled() {
		authSvc = auth.NewService(cfg.JWTSecret, cfg.AdminUsername, cfg.AdminPasswordHash, cfg.TokenTTL)
	} else {
		logger.Warn("authentication disabled: write routes are open")
	}

	opts := api.Options{Registry: prometheus.NewRegistry()}
	opts.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if cfg.RateLimitRPS > 0 {
		opts.Limiter = rl.New(cfg.RateLimitRPS, cfg.RateLimitBurst)
		go opts.Limiter.StartCleanupLoop(ctx, visitorCleanupEvery, visitorMaxIdle)
	}

	server := handlers.NewServer(productRepo, metricsRepo, authSvc, logger)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(server, opts),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
