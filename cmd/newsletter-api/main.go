// Command newsletter-api serves newsletter subscription intake over HTTP
package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"newsletter/internal/core/version"
	"newsletter/internal/platform/config"
	"newsletter/internal/platform/logger"
	phttp "newsletter/internal/platform/net/http"
	"newsletter/internal/platform/store"
	"newsletter/internal/services/api"
	subsrepo "newsletter/internal/services/api/subscriptions/repo"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	logger.Init(logger.FromEnv())
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log); err != nil {
		stop()
		log.Fatal().Err(err).Msg("newsletter-api stopped")
	}
	log.Info().Msg("shutdown complete")
}

// run wires settings, postgres and the API, then serves until ctx ends
// CORE_API_* tunes the HTTP edge and SERVICE_PGSQL_* the pool
func run(ctx context.Context, log *logger.Logger) error {
	settings, err := config.LoadSettings(config.SettingsDir)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	log.Info().Object("settings", settings).Interface("build", version.Info()).Msg("starting")

	env := config.New()
	apiEnv := env.Prefix("CORE_API_")

	st, err := store.Open(ctx, store.Config{
		AppName: version.Service,
		PG:      store.PGFromEnv(settings.Database.ConnectionString()),
	}, store.WithLogger(*log))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close store")
		}
	}()
	if err := st.Guard(ctx); err != nil {
		return fmt.Errorf("store guard: %w", err)
	}

	if env.Prefix("SERVICE_PGSQL_").MayBool("MIGRATE", false) {
		if err := subsrepo.Migrate(ctx, st.PG); err != nil {
			return err
		}
		log.Info().Msg("schema is up to date")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := phttp.NewServer(settings.Application.Addr(),
		phttp.WithShutdownTimeout(apiEnv.MayDuration("SHUTDOWN_TIMEOUT", phttp.DefaultShutdownTimeout)),
	)
	api.Mount(srv.Router(), api.Options{
		Config:         apiEnv,
		Store:          st,
		Logger:         log,
		Registry:       reg,
		EnableProfiler: apiEnv.MayBool("PROFILER", false),
		EnableMetrics:  apiEnv.MayBool("METRICS", true),
		CORSOrigins:    apiEnv.MayCSV("CORS_ORIGINS", nil),
		RequestTimeout: apiEnv.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		SlowRequest:    apiEnv.MayDuration("SLOW_REQUEST", time.Second),
	})

	return srv.Run(ctx)
}
