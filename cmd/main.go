package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/adapters/http/api"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/adapters/http/swagger"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/adapters/repository"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/adapters/roster"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/app"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/config"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout            = 10 * time.Second
	writeTimeout           = 10 * time.Second
	idleTimeout            = 60 * time.Second
	readHeaderTimeout      = 5 * time.Second
	shutdownTimeout        = 30 * time.Second
	serviceMetricsInterval = 15 * time.Second
)

func main() {
	// Optional .env for local runs; absence is fine.
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	store, cleanup, err := buildStore(ctx, cfg)
	if err != nil {
		log.Error(ctx, "failed to open score store", logger.Error(err))
		return
	}
	defer cleanup()

	var source roster.Source
	if cfg.RosterCSV != "" {
		source = roster.NewCSVSource(cfg.RosterCSV)
	}

	svc := app.New(
		app.WithLogger(log),
		app.WithStore(store, cfg.StoreBackend),
		app.WithRoster(roster.NewFallback(source, log)),
	)
	if err := svc.Start(ctx); err != nil {
		log.Error(ctx, "failed to start service", logger.Error(err))
		return
	}
	defer svc.Stop()

	go startServiceMetricsUpdater(ctx, svc)

	mux := http.NewServeMux()
	swagger.Register(ctx, mux)

	apiServer := api.NewServer(svc, svc, api.Config{
		SessionSecret: cfg.SessionSecret,
		AdminKey:      cfg.AdminKey,
		SessionTTL:    time.Duration(cfg.SessionTTLMinutes) * time.Minute,
	})
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server",
			logger.String("addr", cfg.Addr),
			logger.String("backend", cfg.StoreBackend),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "HTTP server failed", logger.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}
	log.Info(ctx, "server stopped")
}

// buildStore selects the backend per config. The returned cleanup closes
// whatever the backend holds open.
func buildStore(ctx context.Context, cfg *config.Config) (repository.Store, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := repository.OpenPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, func() {}, err
		}
		store := repository.NewBunStore(db)
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, func() {}, err
		}
		return store, func() { _ = store.Close() }, nil
	default:
		return repository.NewFileStore(cfg.ScoreFile), func() {}, nil
	}
}

// startServiceMetricsUpdater refreshes the teams/judges gauges.
func startServiceMetricsUpdater(ctx context.Context, svc *app.Service) {
	ticker := time.NewTicker(serviceMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// GetStats refreshes the gauges as a side effect.
			_ = svc.GetStats()
		}
	}
}
